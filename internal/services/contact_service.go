package services

import (
	"context"

	"greenroots_backend/internal/email"
	"greenroots_backend/internal/logger"
	"greenroots_backend/internal/services/dto"
	"greenroots_backend/internal/validator"
	"greenroots_backend/pkg/apperrors"
)

type ContactService interface {
	SendMessage(ctx context.Context, req *dto.ContactRequest) error
}

type contactService struct {
	sender    email.Sender
	validator *validator.Validator
}

func NewContactService(sender email.Sender, v *validator.Validator) ContactService {
	return &contactService{
		sender:    sender,
		validator: v,
	}
}

// SendMessage relays one contact-form submission to the operator inbox. The
// submission is not persisted anywhere.
func (s *contactService) SendMessage(ctx context.Context, req *dto.ContactRequest) error {
	if err := s.validator.Validate(req); err != nil {
		if verr, ok := err.(*validator.ValidationError); ok {
			return apperrors.ValidationError(verr.Errors)
		}
		return apperrors.InternalError(err)
	}

	if err := s.sender.SendContactMessage(req.Name, req.Email, req.Message); err != nil {
		logger.CtxWithError(ctx, "contact message delivery failed", err, "from", req.Email)
		return apperrors.Internal(err, "Failed to send message")
	}

	logger.CtxInfo(ctx, "contact message relayed", "from", req.Email)
	return nil
}

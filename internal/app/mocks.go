package app

import (
	"greenroots_backend/internal/logger"
)

// MockEmailSender logs contact messages instead of sending them. Used when no
// SMTP host is configured and by the HTTP tests.
type MockEmailSender struct {
	Sent []MockEmail
}

type MockEmail struct {
	Name    string
	From    string
	Message string
}

func (m *MockEmailSender) SendContactMessage(name, from, message string) error {
	m.Sent = append(m.Sent, MockEmail{Name: name, From: from, Message: message})
	logger.Info("[MOCK EMAIL] contact message", "name", name, "from", from)
	return nil
}

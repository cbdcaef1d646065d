package handlers

import (
	"net/http"
	"strconv"

	"greenroots_backend/internal/logger"
	"greenroots_backend/internal/validator"
	"greenroots_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the pieces every handler needs and is embedded by the
// resource handlers.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind request body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "service error",
			"error", appErr.Message,
			"details", appErr.Details,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// RespondData writes the success envelope with a data payload.
func (h *BaseHandler) RespondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// RespondMessage writes the success envelope with a message instead of data.
func (h *BaseHandler) RespondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
	})
}

// ParseParamInt parses an integer path parameter or responds 400 itself.
func (h *BaseHandler) ParseParamInt(c *gin.Context, key string) (int, bool) {
	valueStr := c.Param(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid path parameter: "+key+" is not an integer"))
		return 0, false
	}
	return value, true
}

// FormInt reads an integer form field, returning the fallback when absent.
// The bool reports whether the value parsed cleanly.
func FormInt(c *gin.Context, key string, fallback int) (int, bool) {
	valueStr := c.PostForm(key)
	if valueStr == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, false
	}
	return value, true
}

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger files spill to temp files.
const maxMultipartMemory = 32 << 20

func parseMultipart(c *gin.Context) bool {
	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil && err != http.ErrNotMultipart {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Failed to parse form: "+err.Error()))
		return false
	}
	return true
}

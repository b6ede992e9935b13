package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/domain"
	"taskboard/pkg/apierrors"
)

var validationMessages = []struct {
	err    error
	msgKey string
}{
	{domain.ErrEmptyField, apierrors.MsgEmptyField},
	{domain.ErrDueDateInPast, apierrors.MsgDueDateInPast},
	{domain.ErrPasswordMismatch, apierrors.MsgPasswordMismatch},
	{domain.ErrNoProfileChanges, apierrors.MsgNoProfileChanges},
}

// respondError writes the error envelope for an operation outcome. fallback
// is the message used when the failure came from the remote service and
// carries nothing more specific.
func respondError(c *gin.Context, err error, fallback string) {
	lang := middleware.GetLang(c)

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang))
		return
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang))
		return
	case errors.Is(err, domain.ErrAlreadyAuthenticated):
		c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgAlreadyAuthenticated, lang))
		return
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		msgKey := apierrors.MsgInvalidTaskPayload
		for _, candidate := range validationMessages {
			if errors.Is(validationErr, candidate.err) {
				msgKey = candidate.msgKey
				break
			}
		}
		c.JSON(http.StatusBadRequest, apierrors.CreateFieldError(http.StatusBadRequest, validationErr.Field, msgKey, lang))
		return
	}

	var serviceErr *domain.ServiceError
	if errors.As(err, &serviceErr) && serviceErr.Message != "" {
		status := http.StatusBadGateway
		if serviceErr.Field != "" {
			status = http.StatusBadRequest
		}
		c.JSON(status, apierrors.CreateRawError(status, serviceErr.Field, serviceErr.Message))
		return
	}

	zap.L().Error("remote operation failed", zap.String("route", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadGateway, apierrors.CreateError(http.StatusBadGateway, fallback, lang))
}

func respondInvalidPayload(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}

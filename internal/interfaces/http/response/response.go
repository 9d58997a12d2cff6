package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "care-connect.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Domain sentinel errors map to their HTTP
// status; anything unrecognised becomes a 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid email or password", err)
	case errors.Is(err, domainerrors.ErrAccountLocked):
		return domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeAccountLocked, "Account temporarily locked after too many failed logins", err)
	case errors.Is(err, domainerrors.ErrAccountSuspended):
		return domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeAccountSuspended, "Account suspended", err)
	case errors.Is(err, domainerrors.ErrEmailNotVerified):
		return domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeEmailNotVerified, "Email address not verified", err)
	case errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, "Token is invalid or expired", err)
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("forbidden")
	case errors.Is(err, domainerrors.ErrInvalidState):
		return domainerrors.InvalidState(err.Error())
	default:
		return domainerrors.InternalError(err)
	}
}

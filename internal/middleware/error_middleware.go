package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selimk/coursehub/internal/app/models/dto"
	"github.com/selimk/coursehub/internal/pkg/apperrors"
	"github.com/selimk/coursehub/internal/pkg/logger"
)

// HandleAPIError translates application errors into HTTP responses. Every
// controller funnels service errors through here so status codes stay
// consistent across resources.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	message := ""
	if errors.As(err, &customErr) {
		message = customErr.Message
	}

	respond := func(status int, code dto.ErrorCode, fallback string) {
		if message == "" {
			message = fallback
		}
		c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
	}

	switch {
	// Not found
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Department not found")
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found")
	case errors.Is(err, apperrors.ErrDocumentNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Document not found")
	case errors.Is(err, apperrors.ErrNoteNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course note not found")
	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Enrollment not found")
	case errors.Is(err, apperrors.ErrMessageNotFound):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Message not found")

	// Authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respond(http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked")

	// Authorization
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	// Conflicts
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Username already exists")
	case errors.Is(err, apperrors.ErrDepartmentAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Department with this name or code already exists")
	case errors.Is(err, apperrors.ErrCourseAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Course with this code already exists")
	case errors.Is(err, apperrors.ErrDuplicateDocument):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "A document with this title already exists for the course")
	case errors.Is(err, apperrors.ErrConflict):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Conflict")

	// Bad requests. Enrollment duplicates report 400, not 409.
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Already enrolled in this course")
	case errors.Is(err, apperrors.ErrWrongPassword):
		respond(http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Wrong password")
	case errors.Is(err, apperrors.ErrInvalidPassword):
		respond(http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Invalid password")
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		respond(http.StatusBadRequest, dto.ErrorCodeUnsupportedFileType, "Unsupported file type")
	case errors.Is(err, apperrors.ErrMissingParameter):
		respond(http.StatusBadRequest, dto.ErrorCodeMissingParameter, "Required parameter missing")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")
	case errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request")

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

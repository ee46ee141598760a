package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/logger"
	"github.com/rsharma/collegium/internal/pkg/validation"
)

// HandleAPIError converts service errors into the standard error envelope.
// Duplicate-resource conflicts map to 400 alongside validation failures;
// only lookup misses get 404 and only auth failures get 401.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, errorMessage(err, "Validation failed")),
		))

	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrDepartmentAlreadyExists,
		apperrors.ErrSubjectAlreadyExists,
		apperrors.ErrTestAlreadyExists,
		apperrors.ErrNoticeAlreadyExists,
		apperrors.ErrMaterialAlreadyExists,
		apperrors.ErrMarksAlreadyUploaded):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, errorMessage(err, "Resource already exists")),
		))

	case apperrors.Is(err, apperrors.ErrAccountNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrSubjectNotFound,
		apperrors.ErrTestNotFound,
		apperrors.ErrMaterialNotFound,
		apperrors.ErrAttendanceNotFound,
		apperrors.ErrNoStudentsFound,
		apperrors.ErrNoTestsFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, errorMessage(err, "Resource not found")),
		))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		))

	case apperrors.Is(err, apperrors.ErrTokenExpired,
		apperrors.ErrTokenInvalid,
		apperrors.ErrTokenMissing,
		apperrors.ErrHeaderMissing,
		apperrors.ErrInvalidAuthFormat):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required"),
		))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Permission denied"),
		))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		if gin.Mode() != gin.ReleaseMode {
			detail = detail.WithDebugInfo(err.Error())
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	}
}

// HandleValidationError converts a gin binding failure into the per-field
// validation tree with a 400 status.
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(validation.Flatten(err)))
}

// errorMessage prefers the wrapped CustomError message over the fallback
func errorMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

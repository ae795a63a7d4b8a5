package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emredok/studenthub/internal/app/models/dto"
	"github.com/emredok/studenthub/internal/pkg/apperrors"
)

// HandleAPIError maps domain errors to HTTP responses. Every domain failure
// surfaces as a structured JSON body; unknown errors fall through to a
// generic 500 with no internals leaked.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		if errors.As(err, &customErr) && customErr.Field != "" {
			errorDetail = errorDetail.WithField(customErr.Field)
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	case errors.Is(err, apperrors.ErrRegistrationNoExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Student already exists")))
	case errors.Is(err, apperrors.ErrCourseAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Course already exists")))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		// Deliberately undifferentiated: same body for unknown user and
		// wrong password.
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")))
	case errors.Is(err, apperrors.ErrEnrollmentsNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No enrollments found for student")))
	case errors.Is(err, apperrors.ErrResultsNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "No results found for student")))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found")))
	case errors.Is(err, apperrors.ErrInvalidData):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, "Invalid data")))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

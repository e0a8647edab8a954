package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/merdan/studentinfo/internal/app/models/dto"
	"github.com/merdan/studentinfo/internal/pkg/apperrors"
	"github.com/merdan/studentinfo/internal/pkg/logger"
)

// notFoundErrors are the sentinels that translate to a 404 with the
// sentinel's own text as the detail message ("Student not found" etc.).
var notFoundErrors = []error{
	apperrors.ErrFacultyNotFound,
	apperrors.ErrGroupNotFound,
	apperrors.ErrScholarshipNotFound,
	apperrors.ErrLessonNotFound,
	apperrors.ErrSemesterNotFound,
	apperrors.ErrStudentNotFound,
	apperrors.ErrMarkNotFound,
	apperrors.ErrResourceNotFound,
}

// HandleAPIError maps service errors onto HTTP responses. Every failure
// surfaces as a plain {"detail": ...} message; nothing is retried or
// recovered locally.
func HandleAPIError(c *gin.Context, err error) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, dto.NewDetailResponse(sentinel.Error()))
			return
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrStudentIDExists):
		c.JSON(http.StatusConflict, dto.NewDetailResponse("Student with this student ID already exists"))
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidMarkType),
		errors.Is(err, apperrors.ErrInvalidMarkValue),
		errors.Is(err, apperrors.ErrRelatedNotFound),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewDetailResponse(err.Error()))
	default:
		// Includes slug collisions: UUID entropy makes them unexpected
		// enough to treat as an internal failure rather than retry.
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewDetailResponse("Internal server error"))
	}
}

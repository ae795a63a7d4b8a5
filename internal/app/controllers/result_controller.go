package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emredok/studenthub/internal/app/models/dto"
	"github.com/emredok/studenthub/internal/app/services"
	"github.com/emredok/studenthub/internal/middleware"
)

// ResultController handles grade/marks retrieval
type ResultController struct {
	resultService *services.ResultService
	logger        zerolog.Logger
}

// NewResultController creates a new ResultController
func NewResultController(resultService *services.ResultService, logger zerolog.Logger) *ResultController {
	return &ResultController{
		resultService: resultService,
		logger:        logger,
	}
}

// GetGradesAndMarks returns per-course grades for a student and semester
// @Summary Get grades and marks
// @Description Aggregates a student's enrollments and results for a semester into a course-keyed grade/marks map
// @Tags results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ResultRequest true "Student and semester"
// @Success 200 {object} dto.APIResponse{data=dto.ResultResponse} "Grades retrieved"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "No enrollments or no results found"
// @Router /result [post]
func (c *ResultController) GetGradesAndMarks(ctx *gin.Context) {
	var req dto.ResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid result request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.resultService.GetGradesAndMarks(ctx.Request.Context(), req.StudentID, req.Semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

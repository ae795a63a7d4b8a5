package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emredok/studenthub/internal/app/models/dto"
	"github.com/emredok/studenthub/internal/app/services"
	"github.com/emredok/studenthub/internal/middleware"
)

// CourseController handles course catalog operations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses lists the course catalog
// @Summary List courses
// @Description Retrieves the full course catalog
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Description Retrieves a specific catalog course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

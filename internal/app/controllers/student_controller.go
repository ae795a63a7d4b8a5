package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emredok/studenthub/internal/app/models/dto"
	"github.com/emredok/studenthub/internal/app/services"
	"github.com/emredok/studenthub/internal/middleware"
)

// StudentController handles student profile operations
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// Homepage returns the authenticated student's profile
// @Summary Get own profile
// @Description Retrieves the profile of the student identified by the session token. The password hash is never included.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /homepage [get]
func (c *StudentController) Homepage(ctx *gin.Context) {
	studentID, ok := ctx.Get(middleware.ContextStudentID)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.studentService.GetProfile(ctx.Request.Context(), studentID.(int64))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

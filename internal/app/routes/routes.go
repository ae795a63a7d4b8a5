package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emredok/studenthub/internal/app/controllers"
	"github.com/emredok/studenthub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	resultController *controllers.ResultController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/register", authController.Register)
	v1.POST("/login", authController.Login)

	// Course catalog (public access)
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	// --- Private routes, gated by session token verification ---
	private := v1.Group("")
	private.Use(authMiddleware.JWTAuth())
	{
		private.GET("/homepage", studentController.Homepage)
		private.POST("/result", resultController.GetGradesAndMarks)
	}
}

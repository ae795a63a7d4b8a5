// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emredok/studenthub/internal/app/models/dto"
	"github.com/emredok/studenthub/internal/app/services"
	"github.com/emredok/studenthub/internal/middleware"
)

// AuthController handles registration and login
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles student registration
// @Summary Register a new student
// @Description Creates a new student account and returns its public projection with a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Student registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Missing field"
// @Failure 409 {object} dto.ErrorResponse "Registration number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	registerResponse, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("registrationNo", req.RegistrationNo).Msg("Failed to register student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("studentID", registerResponse.ID).
		Str("registrationNo", registerResponse.RegistrationNo).
		Msg("Student registered successfully")

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(registerResponse))
}

// Login handles student login
// @Summary Student login
// @Description Authenticates a student by registration number and password and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	loginResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("registrationNo", req.RegistrationNo).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("registrationNo", req.RegistrationNo).
		Msg("Student logged in successfully")

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(loginResponse))
}

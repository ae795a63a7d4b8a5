package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emredok/studenthub/internal/app/models"
	"github.com/emredok/studenthub/internal/app/models/dto"
	"github.com/emredok/studenthub/internal/app/repositories"
	"github.com/emredok/studenthub/internal/pkg/apperrors"
	"github.com/emredok/studenthub/internal/pkg/auth"
)

// AuthService handles student registration and authentication
type AuthService struct {
	studentRepo repositories.IStudentRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(studentRepo repositories.IStudentRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// registrationField pairs a request value with the name reported when it is missing
type registrationField struct {
	value   string
	name    string
	message string
}

// validateRegistration checks field presence in a fixed order; the first
// missing field determines the reported error.
func (s *AuthService) validateRegistration(req *dto.RegisterRequest) error {
	fields := []registrationField{
		{req.Name, "name", "Please include name"},
		{req.Email, "email", "Please include email"},
		{req.Address, "address", "Please include address"},
		{req.PhoneNo, "phn_no", "Please include phone number"},
		{req.Password, "password", "Please include password"},
		{req.RegistrationNo, "registration_no", "Please include registration number"},
		{req.Program, "program", "Please include program"},
	}

	for _, f := range fields {
		if f.value == "" {
			return apperrors.NewMissingFieldError(f.name, f.message)
		}
	}

	return nil
}

// Register creates a new student account. It enforces registration-number
// uniqueness, stores only the bcrypt hash of the password, and returns the
// public projection of the identity together with a fresh session token.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	// Check if the registration number is already taken
	exists, err := s.studentRepo.RegistrationNoExists(ctx, req.RegistrationNo)
	if err != nil {
		return nil, fmt.Errorf("error checking if registration number exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRegistrationNoExists
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		RegistrationNo: req.RegistrationNo,
		Name:           req.Name,
		Email:          req.Email,
		Address:        req.Address,
		PhoneNo:        req.PhoneNo,
		Program:        req.Program,
		Password:       hashedPassword,
	}

	// The existence probe above races concurrent registrations; the unique
	// index on registration_no settles the race at insert time.
	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if errors.Is(err, apperrors.ErrRegistrationNoExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("registrationNo", req.RegistrationNo).Msg("Student insert failed")
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidData, "Invalid data")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(id)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &dto.RegisterResponse{
		ID:             id,
		Name:           student.Name,
		Email:          student.Email,
		PhoneNo:        student.PhoneNo,
		Address:        student.Address,
		Program:        student.Program,
		RegistrationNo: student.RegistrationNo,
		Token:          token,
		ExpiresIn:      expiresIn,
	}, nil
}

// Login authenticates a student by registration number and password. Unknown
// registration numbers and wrong passwords both come back as the same
// ErrInvalidCredentials so callers cannot probe for account existence.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	student, err := s.studentRepo.GetByRegistrationNo(ctx, req.RegistrationNo)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(student.ID)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	// Best effort; a failed stamp must not fail the login
	if err := s.studentRepo.UpdateLastLogin(ctx, student.ID); err != nil {
		s.logger.Warn().Err(err).Int64("studentID", student.ID).Msg("Failed to update last login time")
	}

	return &dto.LoginResponse{
		ID:             student.ID,
		Name:           student.Name,
		RegistrationNo: student.RegistrationNo,
		Token:          token,
		ExpiresIn:      expiresIn,
	}, nil
}

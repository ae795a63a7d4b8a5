package services

import (
	"context"

	"github.com/emredok/studenthub/internal/app/models/dto"
	"github.com/emredok/studenthub/internal/app/repositories"
)

// StudentService handles student profile operations
type StudentService struct {
	studentRepo repositories.IStudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// GetProfile returns a student's profile without credential material.
// Repository lookup failures surface unchanged (ErrStudentNotFound maps to
// 404 at the boundary).
func (s *StudentService) GetProfile(ctx context.Context, studentID int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentResponse{
		ID:             student.ID,
		Name:           student.Name,
		Email:          student.Email,
		PhoneNo:        student.PhoneNo,
		Address:        student.Address,
		Program:        student.Program,
		RegistrationNo: student.RegistrationNo,
		CreatedAt:      student.CreatedAt,
		LastLoginAt:    student.LastLoginAt,
	}, nil
}

package services

import (
	"context"

	"github.com/emredok/studenthub/internal/app/models/dto"
	"github.com/emredok/studenthub/internal/app/repositories"
)

// CourseService exposes the course catalog
type CourseService struct {
	courseRepo repositories.ICourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repositories.ICourseRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

// GetAllCourses lists the catalog
func (s *CourseService) GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.CourseResponse{
			ID:   course.ID,
			Code: course.Code,
			Name: course.Name,
		})
	}

	return responses, nil
}

// GetCourseByID retrieves a single catalog course
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.CourseResponse{
		ID:   course.ID,
		Code: course.Code,
		Name: course.Name,
	}, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emredok/studenthub/internal/app/models/dto"
	"github.com/emredok/studenthub/internal/app/repositories"
	"github.com/emredok/studenthub/internal/pkg/apperrors"
)

// ResultService aggregates a student's per-course grades for a semester
type ResultService struct {
	enrollmentRepo repositories.IEnrollmentRepository
	resultRepo     repositories.IResultRepository
	logger         zerolog.Logger
}

// NewResultService creates a new ResultService
func NewResultService(enrollmentRepo repositories.IEnrollmentRepository, resultRepo repositories.IResultRepository, logger zerolog.Logger) *ResultService {
	return &ResultService{
		enrollmentRepo: enrollmentRepo,
		resultRepo:     resultRepo,
		logger:         logger,
	}
}

// GetGradesAndMarks resolves a student's enrollments for the semester, then
// fetches all matching results in one batched query keyed by the collected
// enrollment-id set, and projects each result onto the enrolling course's
// code. The whole operation stays O(enrollments + results).
//
// Results arrive ordered by enrollment id, so if two enrollments of the same
// course carry results, the later enrollment wins deterministically.
func (s *ResultService) GetGradesAndMarks(ctx context.Context, studentID int64, semester string) (*dto.ResultResponse, error) {
	enrollments, err := s.enrollmentRepo.ListByStudentAndSemester(ctx, studentID, semester)
	if err != nil {
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	if len(enrollments) == 0 {
		return nil, apperrors.ErrEnrollmentsNotFound
	}

	enrollmentIDs := make([]int64, 0, len(enrollments))
	courseByEnrollment := make(map[int64]string, len(enrollments))
	for _, enrollment := range enrollments {
		enrollmentIDs = append(enrollmentIDs, enrollment.ID)
		courseByEnrollment[enrollment.ID] = enrollment.Course.Code
	}

	results, err := s.resultRepo.ListByEnrollmentIDs(ctx, enrollmentIDs)
	if err != nil {
		return nil, fmt.Errorf("error listing results: %w", err)
	}
	if len(results) == 0 {
		return nil, apperrors.ErrResultsNotFound
	}

	gradeAndMarks := make(map[string]dto.GradeMarks, len(results))
	for _, result := range results {
		courseCode, ok := courseByEnrollment[result.EnrollmentID]
		if !ok {
			// The batch query is keyed by the id set, so this means the
			// store returned a row we never asked for.
			s.logger.Warn().Int64("enrollmentID", result.EnrollmentID).Msg("Result references unknown enrollment, skipping")
			continue
		}
		gradeAndMarks[courseCode] = dto.GradeMarks{
			Grade: result.Grade,
			Marks: result.Marks,
		}
	}

	return &dto.ResultResponse{GradeAndMarks: gradeAndMarks}, nil
}

package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emredok/studenthub/internal/app/models"
	"github.com/emredok/studenthub/internal/app/models/dto"
	"github.com/emredok/studenthub/internal/app/services"
	"github.com/emredok/studenthub/internal/pkg/apperrors"
)

// fakeEnrollmentRepo serves a fixed enrollment set
type fakeEnrollmentRepo struct {
	enrollments []*models.Enrollment
}

func (r *fakeEnrollmentRepo) ListByStudentAndSemester(ctx context.Context, studentID int64, semester string) ([]*models.Enrollment, error) {
	var matched []*models.Enrollment
	for _, e := range r.enrollments {
		if e.StudentID == studentID && e.Semester == semester {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

func (r *fakeEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	r.enrollments = append(r.enrollments, enrollment)
	return enrollment.ID, nil
}

// fakeResultRepo records how it is queried so tests can assert batching
type fakeResultRepo struct {
	results []*models.Result
	calls   [][]int64
}

func (r *fakeResultRepo) ListByEnrollmentIDs(ctx context.Context, enrollmentIDs []int64) ([]*models.Result, error) {
	r.calls = append(r.calls, enrollmentIDs)

	wanted := make(map[int64]bool, len(enrollmentIDs))
	for _, id := range enrollmentIDs {
		wanted[id] = true
	}

	var matched []*models.Result
	for _, result := range r.results {
		if wanted[result.EnrollmentID] {
			matched = append(matched, result)
		}
	}
	return matched, nil
}

func (r *fakeResultRepo) Create(ctx context.Context, result *models.Result) (int64, error) {
	r.results = append(r.results, result)
	return result.ID, nil
}

func enrollment(id, studentID, courseID int64, semester, courseCode string) *models.Enrollment {
	return &models.Enrollment{
		ID:        id,
		StudentID: studentID,
		CourseID:  courseID,
		Semester:  semester,
		Course:    &models.Course{ID: courseID, Code: courseCode},
	}
}

func TestGetGradesAndMarks(t *testing.T) {
	enrollmentRepo := &fakeEnrollmentRepo{enrollments: []*models.Enrollment{
		enrollment(1, 7, 101, "FALL-2024", "CS101"),
		enrollment(2, 7, 102, "FALL-2024", "MA101"),
		enrollment(3, 7, 103, "SPRING-2025", "PH101"), // other semester, excluded
	}}
	resultRepo := &fakeResultRepo{results: []*models.Result{
		{ID: 10, EnrollmentID: 1, Grade: "A", Marks: 90},
		{ID: 11, EnrollmentID: 2, Grade: "B", Marks: 75},
	}}
	svc := services.NewResultService(enrollmentRepo, resultRepo, zerolog.Nop())

	resp, err := svc.GetGradesAndMarks(context.Background(), 7, "FALL-2024")
	require.NoError(t, err)

	assert.Equal(t, map[string]dto.GradeMarks{
		"CS101": {Grade: "A", Marks: 90},
		"MA101": {Grade: "B", Marks: 75},
	}, resp.GradeAndMarks)

	// The second stage is one batched query over the gathered id set,
	// not one query per enrollment
	require.Len(t, resultRepo.calls, 1)
	assert.ElementsMatch(t, []int64{1, 2}, resultRepo.calls[0])
}

func TestGetGradesAndMarksNoEnrollments(t *testing.T) {
	svc := services.NewResultService(&fakeEnrollmentRepo{}, &fakeResultRepo{}, zerolog.Nop())

	_, err := svc.GetGradesAndMarks(context.Background(), 7, "FALL-2024")
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentsNotFound)
}

func TestGetGradesAndMarksNoResults(t *testing.T) {
	enrollmentRepo := &fakeEnrollmentRepo{enrollments: []*models.Enrollment{
		enrollment(1, 7, 101, "FALL-2024", "CS101"),
	}}
	svc := services.NewResultService(enrollmentRepo, &fakeResultRepo{}, zerolog.Nop())

	_, err := svc.GetGradesAndMarks(context.Background(), 7, "FALL-2024")
	assert.ErrorIs(t, err, apperrors.ErrResultsNotFound)
}

func TestGetGradesAndMarksDuplicateCourseLastWriteWins(t *testing.T) {
	// Two enrollments of the same course, both graded; the result of the
	// later enrollment wins because results come back ordered by
	// enrollment id
	enrollmentRepo := &fakeEnrollmentRepo{enrollments: []*models.Enrollment{
		enrollment(1, 7, 101, "FALL-2024", "CS101"),
		enrollment(2, 7, 101, "FALL-2024", "CS101"),
	}}
	resultRepo := &fakeResultRepo{results: []*models.Result{
		{ID: 10, EnrollmentID: 1, Grade: "F", Marks: 30},
		{ID: 11, EnrollmentID: 2, Grade: "A", Marks: 95},
	}}
	svc := services.NewResultService(enrollmentRepo, resultRepo, zerolog.Nop())

	resp, err := svc.GetGradesAndMarks(context.Background(), 7, "FALL-2024")
	require.NoError(t, err)

	assert.Equal(t, map[string]dto.GradeMarks{
		"CS101": {Grade: "A", Marks: 95},
	}, resp.GradeAndMarks)
}

package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/emredok/studenthub/internal/app/models"
	"github.com/emredok/studenthub/internal/pkg/logger"
)

// IEnrollmentRepository defines the interface for enrollment lookups
type IEnrollmentRepository interface {
	ListByStudentAndSemester(ctx context.Context, studentID int64, semester string) ([]*models.Enrollment, error)
	Create(ctx context.Context, enrollment *models.Enrollment) (int64, error)
}

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListByStudentAndSemester retrieves a student's enrollments for one semester,
// each carrying the enrolled course so callers can project results onto
// course identity without further queries.
func (r *EnrollmentRepository) ListByStudentAndSemester(ctx context.Context, studentID int64, semester string) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select("e.id", "e.student_id", "e.course_id", "e.semester", "c.code", "c.name").
		From("enrollments e").
		Join("courses c ON c.id = e.course_id").
		Where(squirrel.Eq{"e.student_id": studentID, "e.semester": semester}).
		OrderBy("e.id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list enrollments SQL")
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Str("semester", semester).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error listing enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment := &models.Enrollment{Course: &models.Course{}}
		if err := rows.Scan(
			&enrollment.ID, &enrollment.StudentID, &enrollment.CourseID, &enrollment.Semester,
			&enrollment.Course.Code, &enrollment.Course.Name); err != nil {
			return nil, fmt.Errorf("error scanning enrollment: %w", err)
		}
		enrollment.Course.ID = enrollment.CourseID
		enrollments = append(enrollments, enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollments: %w", err)
	}

	return enrollments, nil
}

// Create inserts a new enrollment and returns the assigned id
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_id", "semester").
		Values(enrollment.StudentID, enrollment.CourseID, enrollment.Semester).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return 0, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("studentID", enrollment.StudentID).Msg("Error executing create enrollment query")
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}

	return id, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/emredok/studenthub/internal/app/models"
	"github.com/emredok/studenthub/internal/pkg/apperrors"
	"github.com/emredok/studenthub/internal/pkg/dberrors"
	"github.com/emredok/studenthub/internal/pkg/logger"
)

// ICourseRepository defines the interface for course catalog operations
type ICourseRepository interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves the full course catalog ordered by code
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("id", "code", "name").
		From("courses").
		OrderBy("code").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Code, &course.Name); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a course by id
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course := &models.Course{}
	err := r.db.QueryRow(ctx, `
		SELECT id, code, name FROM courses WHERE id = $1`, id).
		Scan(&course.ID, &course.Code, &course.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course: %w", err)
	}

	return course, nil
}

// Create inserts a new catalog course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("code", "name").
		Values(course.Code, course.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Str("code", course.Code).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// Count returns the number of catalog courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}

	return count, nil
}

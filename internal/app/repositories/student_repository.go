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

// IStudentRepository defines the interface for student-related database operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByRegistrationNo(ctx context.Context, registrationNo string) (*models.Student, error)
	RegistrationNoExists(ctx context.Context, registrationNo string) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentColumns = "id, registration_no, name, email, address, phn_no, program, password, created_at, updated_at, last_login_at"

// Create inserts a new student and returns the assigned id. The unique index
// on registration_no is the final arbiter against concurrent duplicates.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("registration_no", "name", "email", "address", "phn_no", "program", "password").
		Values(student.RegistrationNo, student.Name, student.Email, student.Address, student.PhoneNo, student.Program, student.Password).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_registration_no_key") {
			logger.Warn().Str("registrationNo", student.RegistrationNo).Msg("Attempted to create student with duplicate registration number")
			return 0, apperrors.ErrRegistrationNoExists
		}
		logger.Error().Err(err).Str("registrationNo", student.RegistrationNo).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Int64("studentID", id).Str("registrationNo", student.RegistrationNo).Msg("Student created successfully")
	return id, nil
}

// GetByID retrieves a student by internal id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	return r.scanStudent(r.db.QueryRow(ctx, sql, args...))
}

// GetByRegistrationNo retrieves a student by registration number
func (r *StudentRepository) GetByRegistrationNo(ctx context.Context, registrationNo string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"registration_no": registrationNo}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by registration number SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	return r.scanStudent(r.db.QueryRow(ctx, sql, args...))
}

// RegistrationNoExists checks if a registration number is already taken
func (r *StudentRepository) RegistrationNoExists(ctx context.Context, registrationNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE registration_no = $1)`,
		registrationNo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking registration number: %w", err)
	}

	return exists, nil
}

// UpdateLastLogin updates the last login time
func (r *StudentRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE students SET last_login_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}

	return nil
}

func (r *StudentRepository) scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID, &student.RegistrationNo, &student.Name, &student.Email,
		&student.Address, &student.PhoneNo, &student.Program, &student.Password,
		&student.CreatedAt, &student.UpdatedAt, &student.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}

	return student, nil
}

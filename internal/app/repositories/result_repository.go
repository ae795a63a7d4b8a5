package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/emredok/studenthub/internal/app/models"
	"github.com/emredok/studenthub/internal/pkg/logger"
)

// IResultRepository defines the interface for result lookups
type IResultRepository interface {
	ListByEnrollmentIDs(ctx context.Context, enrollmentIDs []int64) ([]*models.Result, error)
	Create(ctx context.Context, result *models.Result) (int64, error)
}

// ResultRepository handles result database operations
type ResultRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db DBTX) *ResultRepository {
	return &ResultRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// listByEnrollmentIDsSQL builds the batched result lookup. Ordering by
// enrollment id with the row id as tie-breaker makes the returned order
// fully deterministic, including multiple result rows for one enrollment.
func (r *ResultRepository) listByEnrollmentIDsSQL(enrollmentIDs []int64) (string, []interface{}, error) {
	return r.sb.Select("id", "enrollment_id", "grade", "marks").
		From("results").
		Where(squirrel.Eq{"enrollment_id": enrollmentIDs}).
		OrderBy("enrollment_id", "id").
		ToSql()
}

// ListByEnrollmentIDs retrieves all results for a set of enrollments in a
// single batched query. Rows come back in a deterministic order so that
// duplicate-course projection downstream is deterministic.
func (r *ResultRepository) ListByEnrollmentIDs(ctx context.Context, enrollmentIDs []int64) ([]*models.Result, error) {
	if len(enrollmentIDs) == 0 {
		return nil, nil
	}

	sql, args, err := r.listByEnrollmentIDsSQL(enrollmentIDs)
	if err != nil {
		logger.Error().Err(err).Msg("Error building list results SQL")
		return nil, fmt.Errorf("failed to build list results query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list results query")
		return nil, fmt.Errorf("error listing results: %w", err)
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		result := &models.Result{}
		if err := rows.Scan(&result.ID, &result.EnrollmentID, &result.Grade, &result.Marks); err != nil {
			return nil, fmt.Errorf("error scanning result: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}

	return results, nil
}

// Create inserts a new result and returns the assigned id
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) (int64, error) {
	sql, args, err := r.sb.Insert("results").
		Columns("enrollment_id", "grade", "marks").
		Values(result.EnrollmentID, result.Grade, result.Marks).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create result SQL")
		return 0, fmt.Errorf("failed to build create result query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("enrollmentID", result.EnrollmentID).Msg("Error executing create result query")
		return 0, fmt.Errorf("error creating result: %w", err)
	}

	return id, nil
}

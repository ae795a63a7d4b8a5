package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the query surface repositories need. Both *pgxpool.Pool and
// pgx.Tx satisfy it, so the same repository can run on the pool or inside
// a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	_ DBTX = (*pgxpool.Pool)(nil)
	_ DBTX = (pgx.Tx)(nil)
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	ResultRepository     *ResultRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		ResultRepository:     NewResultRepository(db),
	}
}

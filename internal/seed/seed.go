package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	appModels "github.com/emredok/studenthub/internal/app/models"
	appRepos "github.com/emredok/studenthub/internal/app/repositories"
	"github.com/emredok/studenthub/internal/db"
)

// CreateDefaultData seeds the course catalog when it is empty. The whole
// seed runs in one transaction, so the catalog is either fully populated or
// untouched. Failures are reported to the caller but are not meant to abort
// startup.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	return database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		courseRepo := appRepos.NewCourseRepository(tx)

		count, err := courseRepo.Count(ctx)
		if err != nil {
			lgr.Error().Err(err).Msg("Error counting courses for seeding")
			return err
		}
		if count > 0 {
			lgr.Debug().Int64("count", count).Msg("Course catalog already populated, skipping seed")
			return nil
		}

		lgr.Info().Msg("Seeding default course catalog...")

		defaultCourses := []*appModels.Course{
			{Code: "CS101", Name: "Introduction to Programming"},
			{Code: "CS201", Name: "Data Structures"},
			{Code: "MA101", Name: "Calculus I"},
			{Code: "PH101", Name: "Physics I"},
			{Code: "EN101", Name: "Academic English"},
		}

		for _, course := range defaultCourses {
			if _, err := courseRepo.Create(ctx, course); err != nil {
				lgr.Error().Err(err).Str("code", course.Code).Msg("Error seeding course")
				return fmt.Errorf("seeding course %s: %w", course.Code, err)
			}
		}

		return nil
	})
}

package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/edaguler/scholarhub/internal/app/models"
	"github.com/edaguler/scholarhub/internal/app/repositories"
)

// CreateDefaultData seeds the success stats and a handful of featured
// listings so a fresh install does not start with an empty front page.
// Both seeds only run when their table is empty.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	statRepo := repositories.NewStatRepository(dbPool)
	opportunityRepo := repositories.NewOpportunityRepository(dbPool)

	var finalErr error

	if err := seedStats(ctx, statRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedOpportunities(ctx, opportunityRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedStats(ctx context.Context, statRepo *repositories.StatRepository, lgr zerolog.Logger) error {
	count, err := statRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting success stats")
		return err
	}
	if count > 0 {
		return nil
	}

	lgr.Info().Msg("Seeding default success stats...")

	defaults := []*models.SuccessStat{
		{Metric: "students_helped", Value: "12,000+", Description: "Students who found an opportunity through the portal"},
		{Metric: "scholarships_awarded", Value: "3,400+", Description: "Scholarships awarded to our students"},
		{Metric: "partner_institutions", Value: "250+", Description: "Institutions posting opportunities"},
		{Metric: "success_rate", Value: "87%", Description: "Applications that reached a decision"},
	}

	var finalErr error
	for _, stat := range defaults {
		if err := statRepo.Create(ctx, stat); err != nil {
			lgr.Error().Err(err).Str("metric", stat.Metric).Msg("Error seeding success stat")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func seedOpportunities(ctx context.Context, opportunityRepo *repositories.OpportunityRepository, lgr zerolog.Logger) error {
	existing, err := opportunityRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing opportunities")
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	lgr.Info().Msg("Seeding sample opportunities...")

	amount := "$10,000"
	deadline := time.Now().AddDate(0, 6, 0)

	samples := []*models.Opportunity{
		{
			Title:          "National Merit Scholarship",
			Institution:    "National Education Foundation",
			Type:           models.TypeScholarship,
			Description:    "Full tuition support for high-achieving students.",
			Deadline:       deadline,
			Amount:         &amount,
			Eligibility:    "Minimum GPA of 3.5",
			ApplicationURL: "https://example.org/merit",
			Featured:       true,
		},
		{
			Title:          "Early Admission Program",
			Institution:    "State University",
			Type:           models.TypeAdmission,
			Description:    "Priority admission track for final-year students.",
			Deadline:       deadline,
			Eligibility:    "Final-year students",
			ApplicationURL: "https://example.org/early-admission",
			Featured:       true,
		},
		{
			Title:          "Summer Research Program",
			Institution:    "Institute of Technology",
			Type:           models.TypeProgram,
			Description:    "Eight-week mentored research placement.",
			Deadline:       deadline,
			Eligibility:    "Open to all students",
			ApplicationURL: "https://example.org/summer-research",
			Featured:       false,
		},
	}

	var finalErr error
	for _, opp := range samples {
		if err := opportunityRepo.Create(ctx, opp); err != nil {
			lgr.Error().Err(err).Str("title", opp.Title).Msg("Error seeding opportunity")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/altruist/ucp-payments/internal/model"
	"github.com/altruist/ucp-payments/internal/repository"
)

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

func defaultCountryRules() []*model.CountryPaymentRule {
	return []*model.CountryPaymentRule{
		{
			CountryCode:        "IN",
			MinAmount:          f64(100),
			MaxAmount:          f64(200000),
			OperationStartTime: str("06:00"),
			OperationEndTime:   str("22:00"),
			Timezone:           "Asia/Kolkata",
			Enabled:            true,
			Description:        "India payment rules: ₹100 - ₹200,000, 6AM-10PM IST",
		},
		{
			CountryCode:        "US",
			MinAmount:          f64(10),
			MaxAmount:          f64(10000),
			OperationStartTime: str("08:00"),
			OperationEndTime:   str("20:00"),
			Timezone:           "America/New_York",
			Enabled:            true,
			Description:        "USA payment rules: $10 - $10,000, 8AM-8PM EST",
		},
		{
			CountryCode:        "GB",
			MinAmount:          f64(5),
			MaxAmount:          f64(5000),
			OperationStartTime: str("07:00"),
			OperationEndTime:   str("21:00"),
			Timezone:           "Europe/London",
			Enabled:            true,
			Description:        "UK payment rules: £5 - £5,000, 7AM-9PM GMT",
		},
		{
			CountryCode:        "SG",
			MinAmount:          f64(20),
			MaxAmount:          f64(50000),
			OperationStartTime: str("08:00"),
			OperationEndTime:   str("23:00"),
			Timezone:           "Asia/Singapore",
			Enabled:            true,
			Description:        "Singapore payment rules: S$20 - S$50,000, 8AM-11PM SGT",
		},
		{
			CountryCode:        "AU",
			MinAmount:          f64(10),
			MaxAmount:          f64(15000),
			OperationStartTime: str("07:00"),
			OperationEndTime:   str("22:00"),
			Timezone:           "Australia/Sydney",
			Enabled:            true,
			Description:        "Australia payment rules: A$10 - A$15,000, 7AM-10PM AEST",
		},
	}
}

// SeedData primes the rule store with the default country rules on first
// start. A non-empty store is left untouched.
func SeedData(ctx context.Context, pool *pgxpool.Pool) error {
	rules := repository.NewRuleRepository(pool)

	count, err := rules.Count(ctx)
	if err != nil {
		return fmt.Errorf("check existing rules: %w", err)
	}
	if count > 0 {
		log.Info().Msg("country payment rules already exist, skipping seed")
		return nil
	}

	defaults := defaultCountryRules()
	if err := rules.SaveAll(ctx, defaults); err != nil {
		return fmt.Errorf("seed country rules: %w", err)
	}

	log.Info().Int("count", len(defaults)).Msg("initialized default country payment rules")
	return nil
}

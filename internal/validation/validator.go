// Package validation applies per-country payment policies: amount envelopes
// and local-time operation windows.
package validation

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata" // rule timezones must resolve even without a system zone database

	"github.com/rs/zerolog/log"

	"github.com/altruist/ucp-payments/internal/model"
)

// RuleFinder looks up the enabled rule for a country code, returning nil
// when none exists.
type RuleFinder interface {
	FindEnabledByCountry(ctx context.Context, countryCode string) (*model.CountryPaymentRule, error)
}

// Result is the outcome of a policy check.
type Result struct {
	Valid        bool
	ErrorMessage string
}

func Success() Result {
	return Result{Valid: true}
}

func Failure(message string) Result {
	return Result{Valid: false, ErrorMessage: message}
}

type Validator struct {
	rules RuleFinder
	now   func() time.Time
}

func NewValidator(rules RuleFinder) *Validator {
	return &Validator{rules: rules, now: time.Now}
}

// Validate checks the amount envelope and operation window of the enabled
// rule for the country. Countries without an enabled rule pass. The returned
// error is reserved for store failures; policy rejections and rule
// configuration problems come back as a failed Result.
func (v *Validator) Validate(ctx context.Context, countryCode string, amount float64) (Result, error) {
	rule, err := v.rules.FindEnabledByCountry(ctx, countryCode)
	if err != nil {
		return Result{}, fmt.Errorf("look up rule for %s: %w", countryCode, err)
	}
	if rule == nil {
		log.Debug().Str("country", countryCode).Msg("no rules found for country, allowing payment")
		return Success(), nil
	}

	if res := validateAmount(rule, amount); !res.Valid {
		return res, nil
	}
	if res := v.validateTimeWindow(rule); !res.Valid {
		return res, nil
	}

	return Success(), nil
}

func validateAmount(rule *model.CountryPaymentRule, amount float64) Result {
	if rule.MinAmount != nil && amount < *rule.MinAmount {
		message := fmt.Sprintf(
			"Payment amount %.2f is below minimum allowed %.2f for country %s",
			amount, *rule.MinAmount, rule.CountryCode)
		log.Warn().Msg(message)
		return Failure(message)
	}

	if rule.MaxAmount != nil && amount > *rule.MaxAmount {
		message := fmt.Sprintf(
			"Payment amount %.2f exceeds maximum allowed %.2f for country %s",
			amount, *rule.MaxAmount, rule.CountryCode)
		log.Warn().Msg(message)
		return Failure(message)
	}

	return Success()
}

func (v *Validator) validateTimeWindow(rule *model.CountryPaymentRule) Result {
	if !rule.HasTimeWindow() {
		return Success()
	}

	loc, err := time.LoadLocation(rule.Timezone)
	if err != nil {
		message := fmt.Sprintf("Invalid timezone %q configured for country %s", rule.Timezone, rule.CountryCode)
		log.Error().Err(err).Msg(message)
		return Failure(message)
	}

	start, err := parseWallClock(*rule.OperationStartTime)
	if err != nil {
		return badWindowTime(rule, *rule.OperationStartTime, err)
	}
	end, err := parseWallClock(*rule.OperationEndTime)
	if err != nil {
		return badWindowTime(rule, *rule.OperationEndTime, err)
	}

	nowLocal := v.now().In(loc)
	now := minutesOfDay(nowLocal)

	// Inclusive at both ends. A window whose start is after its end wraps
	// past midnight.
	var withinHours bool
	if start <= end {
		withinHours = now >= start && now <= end
	} else {
		withinHours = now >= start || now <= end
	}

	if !withinHours {
		message := fmt.Sprintf(
			"Payment not allowed at this time for country %s. Operation hours: %s - %s (Current time: %s %s)",
			rule.CountryCode, *rule.OperationStartTime, *rule.OperationEndTime,
			nowLocal.Format("15:04:05"), rule.Timezone)
		log.Warn().Msg(message)
		return Failure(message)
	}

	return Success()
}

func badWindowTime(rule *model.CountryPaymentRule, value string, err error) Result {
	message := fmt.Sprintf("Invalid operation time %q configured for country %s", value, rule.CountryCode)
	log.Error().Err(err).Msg(message)
	return Failure(message)
}

func parseWallClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return minutesOfDay(t), nil
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

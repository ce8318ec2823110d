package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/altruist/ucp-payments/internal/model"
)

// RuleStore is the slice of the rule repository the admin surface needs.
type RuleStore interface {
	FindAll(ctx context.Context) ([]model.CountryPaymentRule, error)
	FindEnabledByCountry(ctx context.Context, countryCode string) (*model.CountryPaymentRule, error)
	Save(ctx context.Context, rule *model.CountryPaymentRule) error
	Update(ctx context.Context, rule *model.CountryPaymentRule) error
}

// RuleService exposes the admin operations over country payment rules.
// Writes are stored as sent; rule invariants are not enforced here.
type RuleService struct {
	rules RuleStore
}

func NewRuleService(rules RuleStore) *RuleService {
	return &RuleService{rules: rules}
}

func (s *RuleService) ListRules(ctx context.Context) ([]model.CountryPaymentRule, error) {
	log.Info().Msg("fetching all country payment rules")
	return s.rules.FindAll(ctx)
}

// GetByCountry returns the enabled rule for the code, or nil when none is
// enabled.
func (s *RuleService) GetByCountry(ctx context.Context, countryCode string) (*model.CountryPaymentRule, error) {
	return s.rules.FindEnabledByCountry(ctx, countryCode)
}

func (s *RuleService) CreateRule(ctx context.Context, rule *model.CountryPaymentRule) error {
	log.Info().Str("country", rule.CountryCode).Msg("creating payment rule")
	return s.rules.Save(ctx, rule)
}

// UpdateRule rewrites the rule under the given id; the id wins over any id
// in the body.
func (s *RuleService) UpdateRule(ctx context.Context, id int64, rule *model.CountryPaymentRule) error {
	log.Info().Int64("id", id).Msg("updating payment rule")
	rule.ID = id
	return s.rules.Update(ctx, rule)
}

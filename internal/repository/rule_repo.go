package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/altruist/ucp-payments/internal/model"
)

const ruleColumns = `id, country_code, min_amount, max_amount, operation_start_time, operation_end_time, timezone, enabled, description`

type RuleRepository struct {
	pool *pgxpool.Pool
}

func NewRuleRepository(pool *pgxpool.Pool) *RuleRepository {
	return &RuleRepository{pool: pool}
}

// FindEnabledByCountry returns the enabled rule for the code, or nil when no
// enabled rule exists. Lookup is exact-case on the stored code.
func (r *RuleRepository) FindEnabledByCountry(ctx context.Context, countryCode string) (*model.CountryPaymentRule, error) {
	rule := &model.CountryPaymentRule{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+ruleColumns+` FROM country_payment_rules
		WHERE country_code = $1 AND enabled ORDER BY id LIMIT 1`, countryCode).
		Scan(&rule.ID, &rule.CountryCode, &rule.MinAmount, &rule.MaxAmount,
			&rule.OperationStartTime, &rule.OperationEndTime, &rule.Timezone, &rule.Enabled, &rule.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func (r *RuleRepository) FindByID(ctx context.Context, id int64) (*model.CountryPaymentRule, error) {
	rule := &model.CountryPaymentRule{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+ruleColumns+` FROM country_payment_rules WHERE id = $1`, id).
		Scan(&rule.ID, &rule.CountryCode, &rule.MinAmount, &rule.MaxAmount,
			&rule.OperationStartTime, &rule.OperationEndTime, &rule.Timezone, &rule.Enabled, &rule.Description)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func (r *RuleRepository) FindAll(ctx context.Context) ([]model.CountryPaymentRule, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ruleColumns+` FROM country_payment_rules ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := []model.CountryPaymentRule{}
	for rows.Next() {
		var rule model.CountryPaymentRule
		if err := rows.Scan(&rule.ID, &rule.CountryCode, &rule.MinAmount, &rule.MaxAmount,
			&rule.OperationStartTime, &rule.OperationEndTime, &rule.Timezone, &rule.Enabled, &rule.Description); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *RuleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM country_payment_rules`).Scan(&count)
	return count, err
}

// Save inserts the rule and fills in the assigned id.
func (r *RuleRepository) Save(ctx context.Context, rule *model.CountryPaymentRule) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO country_payment_rules (country_code, min_amount, max_amount, operation_start_time, operation_end_time, timezone, enabled, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		rule.CountryCode, rule.MinAmount, rule.MaxAmount, rule.OperationStartTime,
		rule.OperationEndTime, rule.Timezone, rule.Enabled, rule.Description,
	).Scan(&rule.ID)
}

// SaveAll inserts the rules in one transaction and fills in the assigned ids.
func (r *RuleRepository) SaveAll(ctx context.Context, rules []*model.CountryPaymentRule) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save-all: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, rule := range rules {
		batch.Queue(
			`INSERT INTO country_payment_rules (country_code, min_amount, max_amount, operation_start_time, operation_end_time, timezone, enabled, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			rule.CountryCode, rule.MinAmount, rule.MaxAmount, rule.OperationStartTime,
			rule.OperationEndTime, rule.Timezone, rule.Enabled, rule.Description,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range rules {
		if err := br.QueryRow().Scan(&rules[i].ID); err != nil {
			br.Close()
			return fmt.Errorf("insert rule %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	return tx.Commit(ctx)
}

// Update rewrites all mutable fields of the rule. Returns pgx.ErrNoRows when
// the id does not exist.
func (r *RuleRepository) Update(ctx context.Context, rule *model.CountryPaymentRule) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE country_payment_rules
		SET country_code = $2, min_amount = $3, max_amount = $4, operation_start_time = $5,
			operation_end_time = $6, timezone = $7, enabled = $8, description = $9
		WHERE id = $1`,
		rule.ID, rule.CountryCode, rule.MinAmount, rule.MaxAmount, rule.OperationStartTime,
		rule.OperationEndTime, rule.Timezone, rule.Enabled, rule.Description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

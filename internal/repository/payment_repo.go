package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/altruist/ucp-payments/internal/model"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// Insert writes the pre-dispatch record (no status, charges or total yet)
// and fills in the assigned id.
func (r *PaymentRepository) Insert(ctx context.Context, p *model.Payment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO payments (name, to_account, from_account, description, amount, payment_method, destination_country, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		p.Name, p.ToAccount, p.FromAccount, p.Description, p.Amount,
		p.PaymentMethod, p.DestinationCountry, p.Timestamp,
	).Scan(&p.ID)
}

// UpdateOutcome records the dispatch result. Returns pgx.ErrNoRows when the
// id does not exist.
func (r *PaymentRepository) UpdateOutcome(ctx context.Context, id int64, status string, charges, totalAmount float64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE payments SET status = $2, charges = $3, total_amount = $4 WHERE id = $1`,
		id, status, charges, totalAmount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, to_account, from_account, description, amount, charges, total_amount, payment_method, status, destination_country, created_at
		FROM payments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.Name, &p.ToAccount, &p.FromAccount, &p.Description,
			&p.Amount, &p.Charges, &p.TotalAmount, &p.PaymentMethod, &p.Status,
			&p.DestinationCountry, &p.Timestamp); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

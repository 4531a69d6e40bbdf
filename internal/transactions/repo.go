package transactions

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo is the Postgres-backed Store.
type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// EnsureSchema creates the transactions table if it does not exist. Called
// once at bootstrap, before the listener binds.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	_, err := r.Pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS transactions (
	id SERIAL PRIMARY KEY,
	user_id VARCHAR(255) NOT NULL,
	title VARCHAR(255) NOT NULL,
	amount DECIMAL(10, 2) NOT NULL,
	category VARCHAR(50) NOT NULL,
	created_at DATE NOT NULL DEFAULT CURRENT_DATE
)`)
	return err
}

func (r *Repo) ListByUser(ctx context.Context, userID string) ([]Transaction, error) {
	rows, err := r.Pool.Query(ctx, `
SELECT id, user_id, title, amount, category, created_at
FROM transactions
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Transaction, 0)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &t.Category, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) Create(ctx context.Context, t *Transaction) error {
	return r.Pool.QueryRow(ctx, `
INSERT INTO transactions (user_id, title, amount, category)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`,
		t.UserID, t.Title, t.Amount, t.Category,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *Repo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (r *Repo) SummaryByUser(ctx context.Context, userID string) (Summary, error) {
	var s Summary
	err := r.Pool.QueryRow(ctx, `
SELECT
	COALESCE(SUM(amount), 0) AS balance,
	COALESCE(SUM(CASE WHEN amount > 0 THEN amount END), 0) AS income,
	COALESCE(SUM(CASE WHEN amount < 0 THEN amount END), 0) AS expense
FROM transactions
WHERE user_id = $1`,
		userID,
	).Scan(&s.Balance, &s.Income, &s.Expense)
	if err != nil {
		return Summary{}, err
	}
	return s, nil
}

var _ Store = (*Repo)(nil)

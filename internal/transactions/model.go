package transactions

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one income/expense ledger entry owned by a user. Positive
// amounts are income, negative amounts are expenses; nothing in the schema
// enforces the sign, only the summary queries care.
type Transaction struct {
	ID        int64           `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	CreatedAt time.Time       `json:"created_at"`
}

type CreateTransactionRequest struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	UserID   string          `json:"user_id"`
}

// Summary holds the per-user aggregates. Values are coalesced to zero when
// the user has no transactions, never null.
type Summary struct {
	Balance decimal.Decimal `json:"balance"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

package transactions

import "context"

// Store is the persistence capability the handlers depend on. The Postgres
// repo backs it in production and MemoryStore backs it in tests.
type Store interface {
	// ListByUser returns the user's transactions, most recent first. The
	// returned slice is non-nil even when empty.
	ListByUser(ctx context.Context, userID string) ([]Transaction, error)

	// Create inserts t and fills in the server-assigned ID and CreatedAt.
	Create(ctx context.Context, t *Transaction) error

	// DeleteByID removes the transaction with the given id and reports
	// whether a row existed.
	DeleteByID(ctx context.Context, id int64) (bool, error)

	// SummaryByUser computes balance, income, and expense for the user.
	SummaryByUser(ctx context.Context, userID string) (Summary, error)
}

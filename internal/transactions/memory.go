package transactions

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// MemoryStore is an in-memory Store. It mirrors the observable behavior of
// the Postgres repo (id assignment, date-granularity created_at, list order)
// so handler tests run without a database.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		rows:   make(map[int64]Transaction),
	}
}

func (m *MemoryStore) ListByUser(ctx context.Context, userID string) ([]Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Transaction, 0)
	for _, t := range m.rows {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *MemoryStore) Create(ctx context.Context, t *Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t.ID = m.nextID
	m.nextID++
	// created_at is a DATE column in Postgres.
	t.CreatedAt = time.Now().UTC().Truncate(24 * time.Hour)
	m.rows[t.ID] = *t
	return nil
}

func (m *MemoryStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *MemoryStore) SummaryByUser(ctx context.Context, userID string) (Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Summary{
		Balance: decimal.Zero,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, t := range m.rows {
		if t.UserID != userID {
			continue
		}
		s.Balance = s.Balance.Add(t.Amount)
		if t.Amount.IsPositive() {
			s.Income = s.Income.Add(t.Amount)
		}
		if t.Amount.IsNegative() {
			s.Expense = s.Expense.Add(t.Amount)
		}
	}
	return s, nil
}

// Len reports the number of stored rows, used by tests for row-count
// invariants.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

var _ Store = (*MemoryStore)(nil)

package transactionrepo

import (
	"context"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
)

type Repository struct {
	db memdb.Database
}

func New(db memdb.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Append adds tx to the end of the ledger. Lists are returned newest first.
func (r *Repository) Append(ctx context.Context, tx *domain.Transaction) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		s.Transactions = append(s.Transactions, *tx)
		return nil
	})
}

func (r *Repository) ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txs := make([]domain.Transaction, 0)
	err := r.db.View(ctx, func(s *memdb.State) error {
		for i := len(s.Transactions) - 1; i >= 0; i-- {
			if s.Transactions[i].UserID == userID {
				txs = append(txs, s.Transactions[i])
			}
		}
		return nil
	})
	return txs, err
}

func (r *Repository) List(ctx context.Context) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := r.db.View(ctx, func(s *memdb.State) error {
		txs = make([]domain.Transaction, 0, len(s.Transactions))
		for i := len(s.Transactions) - 1; i >= 0; i-- {
			txs = append(txs, s.Transactions[i])
		}
		return nil
	})
	return txs, err
}

package withdrawalrepo

import (
	"context"
	"fmt"

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

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	err := r.db.Update(ctx, func(s *memdb.State) error {
		s.Withdrawals = append([]domain.WithdrawalRequest{*withdrawal}, s.Withdrawals...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.WithdrawalRequest, error) {
	var found *domain.WithdrawalRequest
	err := r.db.View(ctx, func(s *memdb.State) error {
		for i := range s.Withdrawals {
			if s.Withdrawals[i].ID == id {
				wr := s.Withdrawals[i]
				found = &wr
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *Repository) UpdateWithdrawal(ctx context.Context, withdrawal *domain.WithdrawalRequest) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		for i := range s.Withdrawals {
			if s.Withdrawals[i].ID == withdrawal.ID {
				s.Withdrawals[i] = *withdrawal
				return nil
			}
		}
		return fmt.Errorf("withdrawal %s: %w", withdrawal.ID, domain.ErrNotFound)
	})
}

// GetWithdrawals returns requests newest first; an empty status matches all.
func (r *Repository) GetWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error) {
	withdrawals := make([]domain.WithdrawalRequest, 0)
	err := r.db.View(ctx, func(s *memdb.State) error {
		for _, wr := range s.Withdrawals {
			if status == "" || wr.Status == status {
				withdrawals = append(withdrawals, wr)
			}
		}
		return nil
	})
	return withdrawals, err
}

func (r *Repository) GetWithdrawalsByUserID(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error) {
	withdrawals := make([]domain.WithdrawalRequest, 0)
	err := r.db.View(ctx, func(s *memdb.State) error {
		for _, wr := range s.Withdrawals {
			if wr.UserID == userID {
				withdrawals = append(withdrawals, wr)
			}
		}
		return nil
	})
	return withdrawals, err
}

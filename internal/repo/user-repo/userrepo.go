package userrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

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

func (repo *Repository) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	var user *domain.User
	err := repo.db.View(ctx, func(s *memdb.State) error {
		for i := range s.Users {
			if s.Users[i].ID == userID {
				u := s.Users[i]
				user = &u
				break
			}
		}
		return nil
	})
	return user, err
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user *domain.User
	err := repo.db.View(ctx, func(s *memdb.State) error {
		for i := range s.Users {
			if strings.EqualFold(s.Users[i].Email, email) {
				u := s.Users[i]
				user = &u
				break
			}
		}
		return nil
	})
	return user, err
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := repo.db.Update(ctx, func(s *memdb.State) error {
		for i := range s.Users {
			if s.Users[i].ID == user.ID || strings.EqualFold(s.Users[i].Email, user.Email) {
				return domain.NewValidationError("email", "already registered")
			}
		}
		s.Users = append(s.Users, *user)
		return nil
	})
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Update replaces the stored record with the same id. The wallet balance
// is left as stored and copied back into user; it only moves through
// UpdateBalance.
func (repo *Repository) Update(ctx context.Context, user *domain.User) error {
	return repo.db.Update(ctx, func(s *memdb.State) error {
		for i := range s.Users {
			if s.Users[i].ID == user.ID {
				user.WalletBalance = s.Users[i].WalletBalance
				s.Users[i] = *user
				return nil
			}
		}
		return fmt.Errorf("user %s: %w", user.ID, domain.ErrNotFound)
	})
}

func (repo *Repository) UpdateBalance(ctx context.Context, userID string, balance decimal.Decimal) error {
	return repo.db.Update(ctx, func(s *memdb.State) error {
		for i := range s.Users {
			if s.Users[i].ID == userID {
				s.Users[i].WalletBalance = balance
				return nil
			}
		}
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	})
}

func (repo *Repository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := repo.db.View(ctx, func(s *memdb.State) error {
		users = append(make([]domain.User, 0, len(s.Users)), s.Users...)
		return nil
	})
	return users, err
}

package feedrepo

import (
	"context"
	"slices"

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

// Push prepends purchase and trims the feed to capacity, evicting the
// oldest entries. It returns the resulting feed.
func (r *Repository) Push(ctx context.Context, purchase *domain.RecentPurchase, capacity int) ([]domain.RecentPurchase, error) {
	var feed []domain.RecentPurchase
	err := r.db.Update(ctx, func(s *memdb.State) error {
		s.Feed = append([]domain.RecentPurchase{*purchase}, s.Feed...)
		if capacity > 0 && len(s.Feed) > capacity {
			s.Feed = s.Feed[:capacity:capacity]
		}
		feed = slices.Clone(s.Feed)
		return nil
	})
	return feed, err
}

func (r *Repository) List(ctx context.Context) ([]domain.RecentPurchase, error) {
	var feed []domain.RecentPurchase
	err := r.db.View(ctx, func(s *memdb.State) error {
		feed = slices.Clone(s.Feed)
		return nil
	})
	return feed, err
}

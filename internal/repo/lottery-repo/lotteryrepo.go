package lotteryrepo

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

// ListBundles returns offers for drawTime, or every offer when drawTime is empty.
func (r *Repository) ListBundles(ctx context.Context, drawTime string) ([]domain.SemBundle, error) {
	bundles := make([]domain.SemBundle, 0)
	err := r.db.View(ctx, func(s *memdb.State) error {
		for _, b := range s.Bundles {
			if drawTime == "" || b.DrawTime == drawTime {
				bundles = append(bundles, b)
			}
		}
		return nil
	})
	return bundles, err
}

func (r *Repository) FindBundle(ctx context.Context, id string) (*domain.SemBundle, error) {
	var bundle *domain.SemBundle
	err := r.db.View(ctx, func(s *memdb.State) error {
		idx := slices.IndexFunc(s.Bundles, func(b domain.SemBundle) bool { return b.ID == id })
		if idx >= 0 {
			b := s.Bundles[idx]
			bundle = &b
		}
		return nil
	})
	return bundle, err
}

func (r *Repository) AddBundle(ctx context.Context, bundle *domain.SemBundle) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		s.Bundles = append([]domain.SemBundle{*bundle}, s.Bundles...)
		return nil
	})
}

func (r *Repository) AddResult(ctx context.Context, result *domain.DrawResult) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		s.Results = append([]domain.DrawResult{*result}, s.Results...)
		return nil
	})
}

func (r *Repository) ListResults(ctx context.Context) ([]domain.DrawResult, error) {
	var results []domain.DrawResult
	err := r.db.View(ctx, func(s *memdb.State) error {
		results = append(make([]domain.DrawResult, 0, len(s.Results)), s.Results...)
		return nil
	})
	return results, err
}

// FindResult returns the first stored result for the pair. Results are kept
// newest first, so the most recent publication wins.
func (r *Repository) FindResult(ctx context.Context, drawTime, date string) (*domain.DrawResult, error) {
	var result *domain.DrawResult
	err := r.db.View(ctx, func(s *memdb.State) error {
		idx := slices.IndexFunc(s.Results, func(res domain.DrawResult) bool {
			return res.DrawTime == drawTime && res.Date == date
		})
		if idx >= 0 {
			res := s.Results[idx]
			result = &res
		}
		return nil
	})
	return result, err
}

// Package feed keeps the capped list of recent bundle purchases shown on the
// storefront and pushes it to live sessions over websockets.
package feed

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/dto"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
)

type Repo interface {
	Push(ctx context.Context, purchase *domain.RecentPurchase, capacity int) ([]domain.RecentPurchase, error)
	List(ctx context.Context) ([]domain.RecentPurchase, error)
}

type UserLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

type Broadcaster interface {
	Broadcast(message []byte)
	Subscribers() int
}

type Service struct {
	repo     Repo
	users    UserLister
	hub      Broadcaster
	ids      idgen.Generator
	capacity int
	interval time.Duration
	now      func() time.Time
}

func New(repo Repo, users UserLister, hub Broadcaster, ids idgen.Generator, capacity int, interval time.Duration) *Service {
	return &Service{
		repo:     repo,
		users:    users,
		hub:      hub,
		ids:      ids,
		capacity: capacity,
		interval: interval,
		now:      time.Now,
	}
}

// Publish records a purchase at the head of the feed and pushes the new
// snapshot to live sessions.
func (s *Service) Publish(ctx context.Context, userName string, bundleSize int, drawTime string) (*domain.RecentPurchase, error) {
	purchase := &domain.RecentPurchase{
		ID:         s.ids.NewID("pur"),
		UserName:   userName,
		BundleSize: bundleSize,
		DrawTime:   drawTime,
		Timestamp:  s.now(),
	}

	feed, err := s.repo.Push(ctx, purchase, s.capacity)
	if err != nil {
		zap.L().Error("failed to push purchase to feed", zap.Error(err))
		return nil, err
	}

	if s.hub.Subscribers() > 0 {
		message, err := json.Marshal(dto.NewRecentPurchases(feed))
		if err != nil {
			return nil, err
		}
		s.hub.Broadcast(message)
	}
	return purchase, nil
}

func (s *Service) List(ctx context.Context) ([]domain.RecentPurchase, error) {
	return s.repo.List(ctx)
}

// Snapshot is the encoded feed sent to a session when it connects.
func (s *Service) Snapshot(ctx context.Context) ([]byte, error) {
	feed, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(dto.NewRecentPurchases(feed))
}

// Run adds a synthetic purchase every interval while at least one session
// is connected. It returns when ctx is done.
func (s *Service) Run(ctx context.Context) error {
	zap.L().Info("feed simulator started", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("feed simulator stopped")
			return nil
		case <-ticker.C:
			if s.hub.Subscribers() == 0 {
				continue
			}
			if err := s.simulate(ctx); err != nil {
				zap.L().Warn("feed simulation skipped", zap.Error(err))
			}
		}
	}
}

func (s *Service) simulate(ctx context.Context) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return nil
	}

	user := users[rand.IntN(len(users))]
	draw := domain.DefaultDraws[rand.IntN(len(domain.DefaultDraws))]
	size := domain.BundleSizes[rand.IntN(len(domain.BundleSizes))]

	_, err = s.Publish(ctx, user.Name, size, draw.ID)
	return err
}

package contentrepo

import (
	"context"
	"fmt"
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

func (r *Repository) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	var banners []domain.Banner
	err := r.db.View(ctx, func(s *memdb.State) error {
		banners = slices.Clone(s.Banners)
		return nil
	})
	return banners, err
}

func (r *Repository) AddBanner(ctx context.Context, banner *domain.Banner) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		s.Banners = append([]domain.Banner{*banner}, s.Banners...)
		return nil
	})
}

func (r *Repository) DeleteBanner(ctx context.Context, id string) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		s.Banners = slices.DeleteFunc(s.Banners, func(b domain.Banner) bool { return b.ID == id })
		return nil
	})
}

func (r *Repository) ListUpi(ctx context.Context) ([]domain.UpiDetail, error) {
	var upi []domain.UpiDetail
	err := r.db.View(ctx, func(s *memdb.State) error {
		upi = slices.Clone(s.UpiDetails)
		return nil
	})
	return upi, err
}

func (r *Repository) AddUpi(ctx context.Context, upi *domain.UpiDetail) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		s.UpiDetails = append(s.UpiDetails, *upi)
		return nil
	})
}

func (r *Repository) UpdateUpi(ctx context.Context, upi *domain.UpiDetail) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		idx := slices.IndexFunc(s.UpiDetails, func(u domain.UpiDetail) bool { return u.ID == upi.ID })
		if idx < 0 {
			return fmt.Errorf("upi %s: %w", upi.ID, domain.ErrNotFound)
		}
		s.UpiDetails[idx] = *upi
		return nil
	})
}

func (r *Repository) DeleteUpi(ctx context.Context, id string) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		s.UpiDetails = slices.DeleteFunc(s.UpiDetails, func(u domain.UpiDetail) bool { return u.ID == id })
		return nil
	})
}

func (r *Repository) ListQrCodes(ctx context.Context) ([]domain.QrCodeDetail, error) {
	var qr []domain.QrCodeDetail
	err := r.db.View(ctx, func(s *memdb.State) error {
		qr = slices.Clone(s.QrCodes)
		return nil
	})
	return qr, err
}

func (r *Repository) AddQrCode(ctx context.Context, qr *domain.QrCodeDetail) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		s.QrCodes = append(s.QrCodes, *qr)
		return nil
	})
}

func (r *Repository) UpdateQrCode(ctx context.Context, qr *domain.QrCodeDetail) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		idx := slices.IndexFunc(s.QrCodes, func(q domain.QrCodeDetail) bool { return q.ID == qr.ID })
		if idx < 0 {
			return fmt.Errorf("qr code %s: %w", qr.ID, domain.ErrNotFound)
		}
		s.QrCodes[idx] = *qr
		return nil
	})
}

func (r *Repository) DeleteQrCode(ctx context.Context, id string) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		s.QrCodes = slices.DeleteFunc(s.QrCodes, func(q domain.QrCodeDetail) bool { return q.ID == id })
		return nil
	})
}

func (r *Repository) GetAboutUs(ctx context.Context) (string, error) {
	var content string
	err := r.db.View(ctx, func(s *memdb.State) error {
		content = s.AboutUs
		return nil
	})
	return content, err
}

func (r *Repository) SetAboutUs(ctx context.Context, content string) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		s.AboutUs = content
		return nil
	})
}

func (r *Repository) ListWinners(ctx context.Context) ([]domain.Winner, error) {
	var winners []domain.Winner
	err := r.db.View(ctx, func(s *memdb.State) error {
		winners = slices.Clone(s.Winners)
		return nil
	})
	return winners, err
}

func (r *Repository) AddTicket(ctx context.Context, ticket *domain.SupportTicket) error {
	return r.db.Update(ctx, func(s *memdb.State) error {
		s.Tickets = append([]domain.SupportTicket{*ticket}, s.Tickets...)
		return nil
	})
}

func (r *Repository) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	var tickets []domain.SupportTicket
	err := r.db.View(ctx, func(s *memdb.State) error {
		tickets = slices.Clone(s.Tickets)
		return nil
	})
	return tickets, err
}

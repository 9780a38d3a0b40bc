package contentservice

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/verification"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
)

type Repo interface {
	ListBanners(ctx context.Context) ([]domain.Banner, error)
	AddBanner(ctx context.Context, banner *domain.Banner) error
	DeleteBanner(ctx context.Context, id string) error
	ListUpi(ctx context.Context) ([]domain.UpiDetail, error)
	AddUpi(ctx context.Context, upi *domain.UpiDetail) error
	UpdateUpi(ctx context.Context, upi *domain.UpiDetail) error
	DeleteUpi(ctx context.Context, id string) error
	ListQrCodes(ctx context.Context) ([]domain.QrCodeDetail, error)
	AddQrCode(ctx context.Context, qr *domain.QrCodeDetail) error
	UpdateQrCode(ctx context.Context, qr *domain.QrCodeDetail) error
	DeleteQrCode(ctx context.Context, id string) error
	GetAboutUs(ctx context.Context) (string, error)
	SetAboutUs(ctx context.Context, content string) error
	ListWinners(ctx context.Context) ([]domain.Winner, error)
	AddTicket(ctx context.Context, ticket *domain.SupportTicket) error
	ListTickets(ctx context.Context) ([]domain.SupportTicket, error)
}

type Verifier interface {
	Verify(ctx context.Context, req verification.Request) (verification.Result, error)
}

type Service struct {
	repo     Repo
	verifier Verifier
	ids      idgen.Generator
	now      func() time.Time
}

func New(repo Repo, verifier Verifier, ids idgen.Generator) *Service {
	return &Service{
		repo:     repo,
		verifier: verifier,
		ids:      ids,
		now:      time.Now,
	}
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidationError(field, "is required")
	}
	return nil
}

func (s *Service) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	return s.repo.ListBanners(ctx)
}

func (s *Service) AddBanner(ctx context.Context, imageURL, title string) (*domain.Banner, error) {
	if err := required("imageUrl", imageURL); err != nil {
		return nil, err
	}
	if err := required("title", title); err != nil {
		return nil, err
	}
	banner := &domain.Banner{ID: s.ids.NewID("b"), ImageURL: imageURL, Title: title}
	if err := s.repo.AddBanner(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// DeleteBanner is a no-op for unknown ids.
func (s *Service) DeleteBanner(ctx context.Context, id string) error {
	return s.repo.DeleteBanner(ctx, id)
}

func validateUpi(upi *domain.UpiDetail) error {
	if err := required("name", upi.Name); err != nil {
		return err
	}
	if !strings.Contains(upi.UpiID, "@") {
		return domain.NewValidationError("upiId", "must look like name@bank")
	}
	return nil
}

func (s *Service) AddUpi(ctx context.Context, upi domain.UpiDetail) (*domain.UpiDetail, error) {
	if err := validateUpi(&upi); err != nil {
		return nil, err
	}
	upi.ID = s.ids.NewID("upi")
	if err := s.repo.AddUpi(ctx, &upi); err != nil {
		return nil, err
	}
	return &upi, nil
}

func (s *Service) UpdateUpi(ctx context.Context, upi domain.UpiDetail) (*domain.UpiDetail, error) {
	if err := validateUpi(&upi); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateUpi(ctx, &upi); err != nil {
		return nil, err
	}
	return &upi, nil
}

func (s *Service) DeleteUpi(ctx context.Context, id string) error {
	return s.repo.DeleteUpi(ctx, id)
}

func validateQr(qr *domain.QrCodeDetail) error {
	if err := required("name", qr.Name); err != nil {
		return err
	}
	return required("imageUrl", qr.ImageURL)
}

func (s *Service) AddQrCode(ctx context.Context, qr domain.QrCodeDetail) (*domain.QrCodeDetail, error) {
	if err := validateQr(&qr); err != nil {
		return nil, err
	}
	qr.ID = s.ids.NewID("qr")
	if err := s.repo.AddQrCode(ctx, &qr); err != nil {
		return nil, err
	}
	return &qr, nil
}

func (s *Service) UpdateQrCode(ctx context.Context, qr domain.QrCodeDetail) (*domain.QrCodeDetail, error) {
	if err := validateQr(&qr); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateQrCode(ctx, &qr); err != nil {
		return nil, err
	}
	return &qr, nil
}

func (s *Service) DeleteQrCode(ctx context.Context, id string) error {
	return s.repo.DeleteQrCode(ctx, id)
}

// PaymentChannels returns the UPI ids and QR codes deposits can be sent to.
func (s *Service) PaymentChannels(ctx context.Context) ([]domain.UpiDetail, []domain.QrCodeDetail, error) {
	upi, err := s.repo.ListUpi(ctx)
	if err != nil {
		return nil, nil, err
	}
	qr, err := s.repo.ListQrCodes(ctx)
	if err != nil {
		return nil, nil, err
	}
	return upi, qr, nil
}

func (s *Service) AboutUs(ctx context.Context) (string, error) {
	return s.repo.GetAboutUs(ctx)
}

func (s *Service) SetAboutUs(ctx context.Context, content string) error {
	if err := s.repo.SetAboutUs(ctx, content); err != nil {
		zap.L().Error("can't update about us", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ListWinners(ctx context.Context) ([]domain.Winner, error) {
	return s.repo.ListWinners(ctx)
}

// SubmitTicket records a support request once the submission has gone
// through the verification queue.
func (s *Service) SubmitTicket(ctx context.Context, userID, subject, message string) (*domain.SupportTicket, error) {
	if err := required("subject", subject); err != nil {
		return nil, err
	}
	if err := required("message", message); err != nil {
		return nil, err
	}

	if _, err := s.verifier.Verify(ctx, verification.Request{
		Kind:      verification.KindSupport,
		UserID:    userID,
		Reference: subject,
	}); err != nil {
		return nil, err
	}

	ticket := &domain.SupportTicket{
		ID:          s.ids.NewID("tkt"),
		UserID:      userID,
		Subject:     strings.TrimSpace(subject),
		Message:     strings.TrimSpace(message),
		SubmittedAt: s.now(),
	}
	if err := s.repo.AddTicket(ctx, ticket); err != nil {
		return nil, err
	}
	zap.L().Info("support ticket submitted", zap.String("userID", userID), zap.String("ticketID", ticket.ID))
	return ticket, nil
}

func (s *Service) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	return s.repo.ListTickets(ctx)
}

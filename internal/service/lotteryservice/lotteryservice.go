package lotteryservice

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
	"github.com/GlebRadaev/lottoshop/internal/service/walletservice"
	"github.com/GlebRadaev/lottoshop/internal/verification"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
)

type PaymentMethod string

const (
	PayFromWallet PaymentMethod = "wallet"
	PayByUPI      PaymentMethod = "upi"
)

type Repo interface {
	ListBundles(ctx context.Context, drawTime string) ([]domain.SemBundle, error)
	FindBundle(ctx context.Context, id string) (*domain.SemBundle, error)
	AddBundle(ctx context.Context, bundle *domain.SemBundle) error
	AddResult(ctx context.Context, result *domain.DrawResult) error
	ListResults(ctx context.Context) ([]domain.DrawResult, error)
	FindResult(ctx context.Context, drawTime, date string) (*domain.DrawResult, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID string, amount decimal.Decimal, description string, category domain.TransactionCategory) (*domain.Transaction, error)
	Credit(ctx context.Context, userID string, amount decimal.Decimal, description string, category domain.TransactionCategory) (*domain.Transaction, error)
}

//go:generate mockgen -destination=mock_lotteryservice.go -package=lotteryservice . Verifier,FeedPublisher
type Verifier interface {
	Verify(ctx context.Context, req verification.Request) (verification.Result, error)
}

type FeedPublisher interface {
	Publish(ctx context.Context, userName string, bundleSize int, drawTime string) (*domain.RecentPurchase, error)
}

// DrawSlot is a draw with its next occurrence.
type DrawSlot struct {
	Draw domain.Draw
	Next time.Time
}

type Receipt struct {
	Transaction *domain.Transaction
	Balance     decimal.Decimal
}

type Service struct {
	repo      Repo
	userRepo  UserRepo
	ledger    Ledger
	verifier  Verifier
	feed      FeedPublisher
	txManager memdb.TXManager
	ids       idgen.Generator
	unitPrice decimal.Decimal
	now       func() time.Time
}

func New(repo Repo, userRepo UserRepo, ledger Ledger, verifier Verifier, feed FeedPublisher, txManager memdb.TXManager, ids idgen.Generator, unitPrice decimal.Decimal) *Service {
	return &Service{
		repo:      repo,
		userRepo:  userRepo,
		ledger:    ledger,
		verifier:  verifier,
		feed:      feed,
		txManager: txManager,
		ids:       ids,
		unitPrice: unitPrice,
		now:       time.Now,
	}
}

func (s *Service) Draws(now time.Time) []DrawSlot {
	slots := make([]DrawSlot, len(domain.DefaultDraws))
	for i, d := range domain.DefaultDraws {
		slots[i] = DrawSlot{Draw: d, Next: d.Next(now)}
	}
	return slots
}

// Price is what a bundle costs, whatever its displayed ticket value.
func (s *Service) Price(bundle domain.SemBundle) decimal.Decimal {
	return domain.BundlePrice(bundle, s.unitPrice)
}

func (s *Service) ListBundles(ctx context.Context, drawTime string) ([]domain.SemBundle, error) {
	if drawTime != "" {
		if _, ok := domain.FindDraw(drawTime); !ok {
			return nil, domain.NewValidationError("drawTime", "unknown draw")
		}
	}
	return s.repo.ListBundles(ctx, drawTime)
}

func (s *Service) AddBundle(ctx context.Context, drawTime string, bundleSize int, imageURL string) (*domain.SemBundle, error) {
	if _, ok := domain.FindDraw(drawTime); !ok {
		return nil, domain.NewValidationError("drawTime", "unknown draw")
	}
	if bundleSize <= 0 {
		return nil, domain.NewValidationError("bundleSize", "must be greater than zero")
	}
	if strings.TrimSpace(imageURL) == "" {
		imageURL = fmt.Sprintf("https://placehold.co/400x200/ec4899/ffffff?text=%d+Tickets", bundleSize)
	}

	bundle := &domain.SemBundle{
		ID:          s.ids.NewID("bundle"),
		DrawTime:    drawTime,
		BundleSize:  bundleSize,
		TicketValue: s.unitPrice,
		ImageURL:    imageURL,
	}
	if err := s.repo.AddBundle(ctx, bundle); err != nil {
		zap.L().Error("failed to add bundle", zap.Error(err))
		return nil, err
	}
	return bundle, nil
}

func (s *Service) activeUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	if err := user.EnsureActive(); err != nil {
		return nil, err
	}
	return user, nil
}

func purchaseDescription(b *domain.SemBundle) string {
	return fmt.Sprintf("%s SEM Bundle (%d x ₹%s)", b.DrawTime, b.BundleSize, b.TicketValue.String())
}

// Purchase charges the bundle price to the user. UPI payments are verified
// first, then credited and debited together so the ledger records both legs.
// The account status is checked again inside the charging transaction.
func (s *Service) Purchase(ctx context.Context, userID, bundleID string, method PaymentMethod, reference string) (*Receipt, error) {
	if method != PayFromWallet && method != PayByUPI {
		return nil, domain.NewValidationError("paymentMethod", "must be wallet or upi")
	}
	reference = strings.TrimSpace(reference)
	if method == PayByUPI && reference == "" {
		return nil, domain.NewValidationError("reference", "is required for upi payments")
	}

	bundle, err := s.repo.FindBundle(ctx, bundleID)
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, fmt.Errorf("bundle %s: %w", bundleID, domain.ErrNotFound)
	}

	user, err := s.activeUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	price := s.Price(*bundle)
	description := purchaseDescription(bundle)

	if method == PayByUPI {
		if _, err := s.verifier.Verify(ctx, verification.Request{
			Kind:      verification.KindPurchase,
			UserID:    userID,
			Amount:    price,
			Reference: reference,
		}); err != nil {
			zap.L().Warn("purchase payment did not complete", zap.String("userID", userID), zap.Error(err))
			return nil, err
		}
	}

	var (
		tx      *domain.Transaction
		balance decimal.Decimal
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		// The account may have been blocked since the first check.
		buyer, err := s.activeUser(ctx, userID)
		if err != nil {
			return err
		}
		user = buyer

		if method == PayByUPI {
			if _, err := s.ledger.Credit(ctx, userID, price, walletservice.DepositDescription, domain.CategoryDeposit); err != nil {
				return err
			}
		}
		tx, err = s.ledger.Debit(ctx, userID, price, description, domain.CategoryPurchase)
		if err != nil {
			return err
		}

		charged, err := s.activeUser(ctx, userID)
		if err != nil {
			return err
		}
		balance = charged.WalletBalance
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.feed.Publish(ctx, user.Name, bundle.BundleSize, bundle.DrawTime); err != nil {
		zap.L().Warn("purchase not added to feed", zap.Error(err))
	}

	zap.L().Info("bundle purchased",
		zap.String("userID", userID),
		zap.String("bundleID", bundleID),
		zap.String("method", string(method)),
		zap.String("price", price.String()),
	)
	return &Receipt{Transaction: tx, Balance: balance}, nil
}

func validateResult(r *domain.DrawResult) error {
	if _, ok := domain.FindDraw(r.DrawTime); !ok {
		return domain.NewValidationError("drawTime", "unknown draw")
	}
	if _, err := time.Parse(time.DateOnly, r.Date); err != nil {
		return domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	if len(r.WinningNumbers) == 0 {
		return domain.NewValidationError("winningNumbers", "at least one number is required")
	}
	for i, n := range r.WinningNumbers {
		n = strings.TrimSpace(n)
		if n == "" {
			return domain.NewValidationError("winningNumbers", "numbers must not be empty")
		}
		r.WinningNumbers[i] = n
	}
	if r.PrizeAmount != nil && r.PrizeAmount.IsNegative() {
		return domain.NewValidationError("prizeAmount", "must not be negative")
	}
	return nil
}

// PublishResult stores a new result ahead of older ones. Earlier results for
// the same draw and date are kept.
func (s *Service) PublishResult(ctx context.Context, result domain.DrawResult) (*domain.DrawResult, error) {
	result.WinningNumbers = slices.Clone(result.WinningNumbers)
	if err := validateResult(&result); err != nil {
		return nil, err
	}
	result.ID = s.ids.NewID("res")
	result.PublishedAt = s.now()

	if err := s.repo.AddResult(ctx, &result); err != nil {
		zap.L().Error("failed to publish result", zap.Error(err))
		return nil, err
	}
	zap.L().Info("result published", zap.String("drawTime", result.DrawTime), zap.String("date", result.Date))
	return &result, nil
}

func (s *Service) ListResults(ctx context.Context) ([]domain.DrawResult, error) {
	return s.repo.ListResults(ctx)
}

func (s *Service) FindResult(ctx context.Context, drawTime, date string) (*domain.DrawResult, error) {
	result, err := s.repo.FindResult(ctx, drawTime, date)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("result for %s on %s: %w", drawTime, date, domain.ErrNotFound)
	}
	return result, nil
}

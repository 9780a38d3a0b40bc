package withdrawalservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
)

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	FindByID(ctx context.Context, id string) (*domain.WithdrawalRequest, error)
	UpdateWithdrawal(ctx context.Context, withdrawal *domain.WithdrawalRequest) error
	GetWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error)
	GetWithdrawalsByUserID(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
}

type Ledger interface {
	Debit(ctx context.Context, userID string, amount decimal.Decimal, description string, category domain.TransactionCategory) (*domain.Transaction, error)
}

type Quote struct {
	Amount        decimal.Decimal
	Fee           decimal.Decimal
	TotalDeducted decimal.Decimal
}

// Receipt is returned for a new request. BalanceSufficient is advisory:
// the balance is only checked when the request is approved.
type Receipt struct {
	Request           *domain.WithdrawalRequest
	BalanceSufficient bool
}

type Service struct {
	withdrawalRepo WithdrawalRepo
	userRepo       UserRepo
	ledger         Ledger
	txManager      memdb.TXManager
	ids            idgen.Generator
	feePercent     decimal.Decimal
	now            func() time.Time
}

func New(withdrawalRepo WithdrawalRepo, userRepo UserRepo, ledger Ledger, txManager memdb.TXManager, ids idgen.Generator, feePercent decimal.Decimal) *Service {
	return &Service{
		withdrawalRepo: withdrawalRepo,
		userRepo:       userRepo,
		ledger:         ledger,
		txManager:      txManager,
		ids:            ids,
		feePercent:     feePercent,
		now:            time.Now,
	}
}

func (s *Service) Quote(amount decimal.Decimal) (*Quote, error) {
	if err := domain.RequirePositive("amount", amount); err != nil {
		return nil, err
	}
	fee := domain.PercentOf(amount, s.feePercent)
	return &Quote{
		Amount:        amount,
		Fee:           fee,
		TotalDeducted: amount.Add(fee),
	}, nil
}

func (s *Service) RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal, destination string) (*Receipt, error) {
	quote, err := s.Quote(amount)
	if err != nil {
		return nil, err
	}
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, domain.NewValidationError("upiId", "is required")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	if err := user.EnsureActive(); err != nil {
		return nil, err
	}

	withdrawal := &domain.WithdrawalRequest{
		ID:            s.ids.NewID("wr"),
		UserID:        user.ID,
		UserName:      user.Name,
		Amount:        quote.Amount,
		Fee:           quote.Fee,
		TotalDeducted: quote.TotalDeducted,
		Destination:   destination,
		RequestedAt:   s.now(),
		Status:        domain.WithdrawalPending,
	}
	created, err := s.withdrawalRepo.CreateWithdrawal(ctx, withdrawal)
	if err != nil {
		zap.L().Error("failed to create withdrawal", zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal requested",
		zap.String("id", created.ID),
		zap.String("userID", userID),
		zap.String("total", created.TotalDeducted.String()),
	)
	return &Receipt{
		Request:           created,
		BalanceSufficient: user.WalletBalance.GreaterThanOrEqual(created.TotalDeducted),
	}, nil
}

// ProcessWithdrawal moves a pending request to approved or rejected. An
// approval debits the frozen total; if that debit fails the request stays
// pending and nothing is written.
func (s *Service) ProcessWithdrawal(ctx context.Context, id string, decision domain.WithdrawalStatus) (*domain.WithdrawalRequest, error) {
	if decision != domain.WithdrawalApproved && decision != domain.WithdrawalRejected {
		return nil, domain.NewValidationError("status", "must be approved or rejected")
	}

	var processed *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		withdrawal, err := s.withdrawalRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if withdrawal == nil {
			return fmt.Errorf("withdrawal %s: %w", id, domain.ErrNotFound)
		}
		if withdrawal.Status != domain.WithdrawalPending {
			return fmt.Errorf("withdrawal %s is %s: %w", id, withdrawal.Status, domain.ErrInvalidStateTransition)
		}

		if decision == domain.WithdrawalApproved {
			description := fmt.Sprintf("Withdrawal of ₹%s approved", withdrawal.Amount.StringFixed(2))
			if _, err := s.ledger.Debit(ctx, withdrawal.UserID, withdrawal.TotalDeducted, description, domain.CategoryWithdrawal); err != nil {
				return err
			}
		}

		processedAt := s.now()
		withdrawal.Status = decision
		withdrawal.ProcessedAt = &processedAt
		if err := s.withdrawalRepo.UpdateWithdrawal(ctx, withdrawal); err != nil {
			return err
		}
		processed = withdrawal
		return nil
	})
	if err != nil {
		zap.L().Warn("withdrawal not processed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal processed", zap.String("id", id), zap.String("status", string(decision)))
	return processed, nil
}

func (s *Service) List(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error) {
	switch status {
	case "", domain.WithdrawalPending, domain.WithdrawalApproved, domain.WithdrawalRejected:
	default:
		return nil, domain.NewValidationError("status", "unknown status")
	}
	return s.withdrawalRepo.GetWithdrawals(ctx, status)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error) {
	return s.withdrawalRepo.GetWithdrawalsByUserID(ctx, userID)
}

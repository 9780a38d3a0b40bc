package walletservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
	"github.com/GlebRadaev/lottoshop/internal/verification"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateBalance(ctx context.Context, userID string, balance decimal.Decimal) error
}

type TransactionRepo interface {
	Append(ctx context.Context, tx *domain.Transaction) error
	ListByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
	List(ctx context.Context) ([]domain.Transaction, error)
}

//go:generate mockgen -destination=mock_walletservice.go -package=walletservice . Verifier
type Verifier interface {
	Verify(ctx context.Context, req verification.Request) (verification.Result, error)
}

const DepositDescription = "Deposited via UPI"

type DepositQuote struct {
	Amount decimal.Decimal
	Fee    decimal.Decimal
	Net    decimal.Decimal
}

type Service struct {
	userRepo          UserRepo
	txRepo            TransactionRepo
	txManager         memdb.TXManager
	verifier          Verifier
	ids               idgen.Generator
	depositFeePercent decimal.Decimal
	now               func() time.Time
}

func New(userRepo UserRepo, txRepo TransactionRepo, txManager memdb.TXManager, verifier Verifier, ids idgen.Generator, depositFeePercent decimal.Decimal) *Service {
	return &Service{
		userRepo:          userRepo,
		txRepo:            txRepo,
		txManager:         txManager,
		verifier:          verifier,
		ids:               ids,
		depositFeePercent: depositFeePercent,
		now:               time.Now,
	}
}

func (s *Service) findUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return user, nil
}

// Debit removes amount from the user's wallet and records a debit entry.
func (s *Service) Debit(ctx context.Context, userID string, amount decimal.Decimal, description string, category domain.TransactionCategory) (*domain.Transaction, error) {
	if err := domain.RequirePositive("amount", amount); err != nil {
		return nil, err
	}
	return s.apply(ctx, userID, amount.Neg(), description, category)
}

// Credit adds amount to the user's wallet and records a credit entry.
func (s *Service) Credit(ctx context.Context, userID string, amount decimal.Decimal, description string, category domain.TransactionCategory) (*domain.Transaction, error) {
	if err := domain.RequirePositive("amount", amount); err != nil {
		return nil, err
	}
	return s.apply(ctx, userID, amount, description, category)
}

func (s *Service) apply(ctx context.Context, userID string, signed decimal.Decimal, description string, category domain.TransactionCategory) (*domain.Transaction, error) {
	var tx *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.findUser(ctx, userID)
		if err != nil {
			return err
		}

		balance := user.WalletBalance.Add(signed)
		if balance.IsNegative() {
			return domain.ErrInsufficientFunds
		}

		txType := domain.Credit
		if signed.IsNegative() {
			txType = domain.Debit
		}
		tx = &domain.Transaction{
			ID:          s.ids.NewID("tx"),
			UserID:      user.ID,
			UserName:    user.Name,
			Description: description,
			Type:        txType,
			Category:    category,
			Amount:      signed,
			CreatedAt:   s.now(),
		}

		if err := s.userRepo.UpdateBalance(ctx, user.ID, balance); err != nil {
			zap.L().Error("failed to update user balance", zap.Error(err))
			return err
		}
		if err := s.txRepo.Append(ctx, tx); err != nil {
			zap.L().Error("failed to append transaction", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("wallet updated",
		zap.String("userID", userID),
		zap.String("type", string(tx.Type)),
		zap.String("amount", signed.String()),
	)
	return tx, nil
}

// SetBalance overrides the wallet balance without a ledger entry.
func (s *Service) SetBalance(ctx context.Context, userID string, balance decimal.Decimal) (*domain.User, error) {
	if balance.IsNegative() {
		return nil, domain.NewValidationError("balance", "must not be negative")
	}

	var user *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.findUser(ctx, userID)
		if err != nil {
			return err
		}
		user.WalletBalance = balance
		return s.userRepo.UpdateBalance(ctx, userID, balance)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Warn("wallet balance overridden", zap.String("userID", userID), zap.String("balance", balance.String()))
	return user, nil
}

func (s *Service) GetWallet(ctx context.Context, userID string) (*domain.User, error) {
	return s.findUser(ctx, userID)
}

func (s *Service) GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txs, err := s.txRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

func (s *Service) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// QuoteDeposit previews the deposit fee. The fee is informational only:
// Deposit credits the gross amount.
func (s *Service) QuoteDeposit(amount decimal.Decimal) (*DepositQuote, error) {
	if err := domain.RequirePositive("amount", amount); err != nil {
		return nil, err
	}
	fee := domain.PercentOf(amount, s.depositFeePercent)
	return &DepositQuote{
		Amount: amount,
		Fee:    fee,
		Net:    amount.Sub(fee),
	}, nil
}

// Deposit waits for the external payment to be verified and then credits
// the full amount. If ctx ends first nothing is credited.
func (s *Service) Deposit(ctx context.Context, userID string, amount decimal.Decimal, reference string) (*domain.Transaction, error) {
	if err := domain.RequirePositive("amount", amount); err != nil {
		return nil, err
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, domain.NewValidationError("transactionId", "is required")
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.EnsureActive(); err != nil {
		return nil, err
	}

	if _, err := s.verifier.Verify(ctx, verification.Request{
		Kind:      verification.KindDeposit,
		UserID:    userID,
		Amount:    amount,
		Reference: reference,
	}); err != nil {
		zap.L().Warn("deposit verification did not complete", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	return s.Credit(ctx, userID, amount, DepositDescription, domain.CategoryDeposit)
}

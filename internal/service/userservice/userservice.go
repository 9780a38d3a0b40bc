package userservice

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
	"github.com/GlebRadaev/lottoshop/pkg/auth"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
)

//go:generate mockgen -destination=mock_userservice.go -package=userservice . Repo,TransactionRepo,WithdrawalRepo
type Repo interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

type TransactionRepo interface {
	List(ctx context.Context) ([]domain.Transaction, error)
}

type WithdrawalRepo interface {
	GetWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error)
}

// ProfileUpdate carries the editable profile fields; nil leaves a field as is.
type ProfileUpdate struct {
	Name      *string
	Phone     *string
	AvatarURL *string
}

type Service struct {
	userRepo       Repo
	txRepo         TransactionRepo
	withdrawalRepo WithdrawalRepo
	txManager      memdb.TXManager
	hashService    auth.HashServiceInterface
	jwtService     auth.JWTServiceInterface
	ids            idgen.Generator
	tokenTTL       time.Duration
	now            func() time.Time
}

func New(userRepo Repo, txRepo TransactionRepo, withdrawalRepo WithdrawalRepo, txManager memdb.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, ids idgen.Generator, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:       userRepo,
		txRepo:         txRepo,
		withdrawalRepo: withdrawalRepo,
		txManager:      txManager,
		hashService:    hashService,
		jwtService:     jwtService,
		ids:            ids,
		tokenTTL:       tokenTTL,
		now:            time.Now,
	}
}

func referralCode(at time.Time) string {
	ms := strconv.FormatInt(at.UnixMilli(), 10)
	return "NEW" + ms[len(ms)-4:]
}

// Login signs in the account registered under email, creating it on first
// use. Blocked accounts are refused. Accounts that carry a password hash
// must present the matching password.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.NewValidationError("email", "must be a valid address")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}

	if user == nil {
		now := s.now()
		user, err = s.userRepo.Create(ctx, &domain.User{
			ID:            s.ids.NewID("usr"),
			Name:          "New User",
			Email:         email,
			WalletBalance: decimal.Zero,
			KycStatus:     domain.KycNotVerified,
			ReferralCode:  referralCode(now),
			Status:        domain.UserActive,
			Role:          domain.RoleUser,
			CreatedAt:     now,
		})
		if err != nil {
			zap.L().Error("can't create user", zap.Error(err))
			return nil, err
		}
		zap.L().Info("user signed up", zap.String("userID", user.ID))
		return user, nil
	}

	if user.PasswordHash != "" && !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("userID", user.ID))
		return nil, domain.ErrInvalidCredentials
	}
	if user.IsBlocked() {
		zap.L().Info("blocked user tried to log in", zap.String("userID", user.ID))
		return nil, domain.ErrAccountBlocked
	}

	zap.L().Info("user successfully authenticated", zap.String("userID", user.ID))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateJWT(user.ID, string(user.Role), s.now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return user, nil
}

// UpdateProfile rewrites the editable fields of the stored record. The read
// and the write share one transaction so concurrent wallet movements are
// not lost.
func (s *Service) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error) {
	var name string
	if update.Name != nil {
		name = strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "must not be empty")
		}
	}

	var user *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		if update.Name != nil {
			user.Name = name
		}
		if update.Phone != nil {
			user.Phone = strings.TrimSpace(*update.Phone)
		}
		if update.AvatarURL != nil {
			user.AvatarURL = strings.TrimSpace(*update.AvatarURL)
		}
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		zap.L().Error("can't update profile", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// SetStatus blocks or unblocks an account. Existing sessions of a blocked
// user can still read but every wallet operation is refused.
func (s *Service) SetStatus(ctx context.Context, userID string, status domain.UserStatus) (*domain.User, error) {
	if status != domain.UserActive && status != domain.UserBlocked {
		return nil, domain.NewValidationError("status", "must be active or blocked")
	}

	var user *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.GetProfile(ctx, userID)
		if err != nil {
			return err
		}
		user.Status = status
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("user status changed", zap.String("userID", userID), zap.String("status", string(status)))
	return user, nil
}

func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.withdrawalRepo.GetWithdrawals(ctx, domain.WithdrawalPending)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalUsers:         len(users),
		TotalRevenue:       decimal.Zero,
		PendingWithdrawals: len(pending),
	}
	for _, tx := range txs {
		if tx.Type == domain.Credit {
			stats.TotalRevenue = stats.TotalRevenue.Add(tx.Amount)
		}
		if tx.Category == domain.CategoryPurchase {
			stats.TicketsSold++
		}
	}
	for _, u := range users {
		if u.KycStatus == domain.KycPending {
			stats.PendingKyc++
		}
	}
	return stats, nil
}

package kycservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
	"github.com/GlebRadaev/lottoshop/internal/verification"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

type Verifier interface {
	Verify(ctx context.Context, req verification.Request) (verification.Result, error)
}

type Service struct {
	userRepo  UserRepo
	txManager memdb.TXManager
	verifier  Verifier
	now       func() time.Time
}

func New(userRepo UserRepo, txManager memdb.TXManager, verifier Verifier) *Service {
	return &Service{
		userRepo:  userRepo,
		txManager: txManager,
		verifier:  verifier,
		now:       time.Now,
	}
}

func canSubmit(status domain.KycStatus) bool {
	return status == domain.KycNotVerified || status == domain.KycRejected || status == ""
}

func validate(details domain.KycDetails) error {
	switch {
	case strings.TrimSpace(details.DocumentType) == "":
		return domain.NewValidationError("documentType", "is required")
	case strings.TrimSpace(details.DocumentNumber) == "":
		return domain.NewValidationError("documentNumber", "is required")
	case strings.TrimSpace(details.FrontImageURL) == "":
		return domain.NewValidationError("frontImageUrl", "is required")
	}
	return nil
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

func (s *Service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.findUser(ctx, userID)
}

// Submit records the documents and moves the user to Pending. Allowed from
// Not Verified and Rejected only.
func (s *Service) Submit(ctx context.Context, userID string, details domain.KycDetails) (*domain.User, error) {
	if err := validate(details); err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.EnsureActive(); err != nil {
		return nil, err
	}
	if !canSubmit(user.KycStatus) {
		return nil, fmt.Errorf("kyc is %s: %w", user.KycStatus, domain.ErrInvalidStateTransition)
	}

	if _, err := s.verifier.Verify(ctx, verification.Request{
		Kind:      verification.KindKyc,
		UserID:    userID,
		Reference: details.DocumentNumber,
	}); err != nil {
		zap.L().Warn("kyc submission did not complete", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err = s.findUser(ctx, userID)
		if err != nil {
			return err
		}
		// status may have moved while the upload was being checked
		if !canSubmit(user.KycStatus) {
			return fmt.Errorf("kyc is %s: %w", user.KycStatus, domain.ErrInvalidStateTransition)
		}
		details.SubmissionDate = s.now()
		user.KycDetails = &details
		user.KycStatus = domain.KycPending
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("kyc submitted", zap.String("userID", userID))
	return user, nil
}

// Review decides a Pending submission.
func (s *Service) Review(ctx context.Context, userID string, decision domain.KycStatus) (*domain.User, error) {
	if decision != domain.KycVerified && decision != domain.KycRejected {
		return nil, domain.NewValidationError("status", "must be Verified or Rejected")
	}

	var user *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.findUser(ctx, userID)
		if err != nil {
			return err
		}
		if user.KycStatus != domain.KycPending {
			return fmt.Errorf("kyc is %s: %w", user.KycStatus, domain.ErrInvalidStateTransition)
		}
		user.KycStatus = decision
		return s.userRepo.Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("kyc reviewed", zap.String("userID", userID), zap.String("status", string(decision)))
	return user, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]domain.User, 0)
	for _, u := range users {
		if u.KycStatus == domain.KycPending {
			pending = append(pending, u)
		}
	}
	return pending, nil
}

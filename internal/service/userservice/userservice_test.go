package userservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
	"github.com/GlebRadaev/lottoshop/pkg/auth"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
)

type mocks struct {
	repo        *MockRepo
	txRepo      *MockTransactionRepo
	withdrawals *MockWithdrawalRepo
	hash        *auth.MockHashServiceInterface
	jwt         *auth.MockJWTServiceInterface
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:        NewMockRepo(ctrl),
		txRepo:      NewMockTransactionRepo(ctrl),
		withdrawals: NewMockWithdrawalRepo(ctrl),
		hash:        auth.NewMockHashServiceInterface(ctrl),
		jwt:         auth.NewMockJWTServiceInterface(ctrl),
	}
	service := New(m.repo, m.txRepo, m.withdrawals, memdb.NewTXManager(memdb.New(nil)), m.hash, m.jwt, idgen.UUID{}, time.Hour)
	return service, m
}

func TestLogin(t *testing.T) {
	service, m := NewMock(t)
	service.now = func() time.Time { return time.UnixMilli(1722163204321) }

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func()
		expectedUser  func(t *testing.T, u *domain.User)
		expectedError error
	}{
		{
			name:  "First login creates an account",
			email: "new@example.com",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					return user, nil
				})
			},
			expectedUser: func(t *testing.T, u *domain.User) {
				assert.Equal(t, "New User", u.Name)
				assert.True(t, u.WalletBalance.IsZero())
				assert.Equal(t, domain.KycNotVerified, u.KycStatus)
				assert.Equal(t, domain.UserActive, u.Status)
				assert.Equal(t, domain.RoleUser, u.Role)
				assert.Equal(t, "NEW4321", u.ReferralCode)
			},
		},
		{
			name:  "Existing user without password",
			email: "john@example.com",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "john@example.com").Return(&domain.User{ID: "usr_456", Status: domain.UserActive}, nil)
			},
			expectedUser: func(t *testing.T, u *domain.User) {
				assert.Equal(t, "usr_456", u.ID)
			},
		},
		{
			name:     "Admin with correct password",
			email:    "admin@example.com",
			password: "secret",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(&domain.User{ID: "usr_123", PasswordHash: "hash", Role: domain.RoleAdmin, Status: domain.UserActive}, nil)
				m.hash.EXPECT().ComparePassword("hash", "secret").Return(true)
			},
			expectedUser: func(t *testing.T, u *domain.User) {
				assert.True(t, u.IsAdmin())
			},
		},
		{
			name:     "Admin with wrong password",
			email:    "admin@example.com",
			password: "guess",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(&domain.User{ID: "usr_123", PasswordHash: "hash", Role: domain.RoleAdmin}, nil)
				m.hash.EXPECT().ComparePassword("hash", "guess").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:  "Blocked user",
			email: "jane@example.com",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(&domain.User{ID: "usr_789", Status: domain.UserBlocked}, nil)
			},
			expectedError: domain.ErrAccountBlocked,
		},
		{
			name:          "Malformed email",
			email:         "not-an-email",
			expectedError: domain.ErrValidation,
		},
		{
			name:  "Repository error",
			email: "john@example.com",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "john@example.com").Return(nil, errors.New("storage error"))
			},
			expectedError: errors.New("storage error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			user, err := service.Login(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			tt.expectedUser(t, user)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)
	user := &domain.User{ID: "usr_123", Role: domain.RoleAdmin}

	m.jwt.EXPECT().GenerateJWT("usr_123", "admin", gomock.Any()).Return("token", nil)
	token, err := service.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, "token", token)

	m.jwt.EXPECT().GenerateJWT("usr_123", "admin", gomock.Any()).Return("", assert.AnError)
	_, err = service.GenerateToken(user)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestUpdateProfile(t *testing.T) {
	service, m := NewMock(t)
	name, phone, empty := "Johnny", "+91 11111 22222", "  "

	m.repo.EXPECT().FindByID(gomock.Any(), "usr_456").Return(&domain.User{ID: "usr_456", Name: "John Doe", Email: "john@example.com"}, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	user, err := service.UpdateProfile(context.Background(), "usr_456", ProfileUpdate{Name: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Johnny", user.Name)
	assert.Equal(t, phone, user.Phone)
	assert.Equal(t, "john@example.com", user.Email)

	_, err = service.UpdateProfile(context.Background(), "usr_456", ProfileUpdate{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrValidation)

	m.repo.EXPECT().FindByID(gomock.Any(), "usr_0").Return(nil, nil)
	_, err = service.UpdateProfile(context.Background(), "usr_0", ProfileUpdate{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetStatus(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().FindByID(gomock.Any(), "usr_789").Return(&domain.User{ID: "usr_789", Status: domain.UserActive}, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *domain.User) error {
		assert.Equal(t, domain.UserBlocked, u.Status)
		return nil
	})

	user, err := service.SetStatus(context.Background(), "usr_789", domain.UserBlocked)
	require.NoError(t, err)
	assert.True(t, user.IsBlocked())

	_, err = service.SetStatus(context.Background(), "usr_789", "suspended")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

type txMarker struct{}

type recordingTxManager struct {
	begun int
}

func (m *recordingTxManager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	m.begun++
	return fn(context.WithValue(ctx, txMarker{}, true))
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txMarker{}).(bool)
	return v
}

func TestProfileWritesRunInTransaction(t *testing.T) {
	name := "Johnny"

	tests := []struct {
		name string
		call func(s *Service) error
	}{
		{
			name: "UpdateProfile",
			call: func(s *Service) error {
				_, err := s.UpdateProfile(context.Background(), "usr_456", ProfileUpdate{Name: &name})
				return err
			},
		},
		{
			name: "SetStatus",
			call: func(s *Service) error {
				_, err := s.SetStatus(context.Background(), "usr_456", domain.UserBlocked)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m := NewMock(t)
			txManager := &recordingTxManager{}
			service := New(m.repo, m.txRepo, m.withdrawals, txManager, m.hash, m.jwt, idgen.UUID{}, time.Hour)

			m.repo.EXPECT().FindByID(gomock.Any(), "usr_456").DoAndReturn(func(ctx context.Context, _ string) (*domain.User, error) {
				assert.True(t, inTx(ctx), "read outside transaction")
				return &domain.User{ID: "usr_456", Name: "John Doe", Status: domain.UserActive}, nil
			})
			m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ *domain.User) error {
				assert.True(t, inTx(ctx), "write outside transaction")
				return nil
			})

			require.NoError(t, tt.call(service))
			assert.Equal(t, 1, txManager.begun)
		})
	}
}

func TestStats(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().List(gomock.Any()).Return([]domain.User{
		{ID: "usr_1", KycStatus: domain.KycPending},
		{ID: "usr_2", KycStatus: domain.KycVerified},
		{ID: "usr_3", KycStatus: domain.KycPending},
	}, nil)
	m.txRepo.EXPECT().List(gomock.Any()).Return([]domain.Transaction{
		{Type: domain.Credit, Category: domain.CategoryDeposit, Amount: decimal.NewFromInt(500)},
		{Type: domain.Debit, Category: domain.CategoryPurchase, Amount: decimal.NewFromInt(-35)},
		{Type: domain.Credit, Category: domain.CategoryPrize, Amount: decimal.NewFromInt(1000)},
		{Type: domain.Debit, Category: domain.CategoryPurchase, Amount: decimal.NewFromInt(-70)},
	}, nil)
	m.withdrawals.EXPECT().GetWithdrawals(gomock.Any(), domain.WithdrawalPending).Return(make([]domain.WithdrawalRequest, 2), nil)

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.True(t, decimal.NewFromInt(1500).Equal(stats.TotalRevenue))
	assert.Equal(t, 2, stats.TicketsSold)
	assert.Equal(t, 2, stats.PendingWithdrawals)
	assert.Equal(t, 2, stats.PendingKyc)
}

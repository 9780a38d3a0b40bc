package lotteryservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
	lotteryrepo "github.com/GlebRadaev/lottoshop/internal/repo/lottery-repo"
	transactionrepo "github.com/GlebRadaev/lottoshop/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/lottoshop/internal/repo/user-repo"
	"github.com/GlebRadaev/lottoshop/internal/service/walletservice"
	"github.com/GlebRadaev/lottoshop/internal/verification"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
)

type fixture struct {
	service  *Service
	users    *userrepo.Repository
	txs      *transactionrepo.Repository
	verifier *MockVerifier
	feed     *MockFeedPublisher
}

func NewMock(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	unit := decimal.NewFromInt(7)
	db := memdb.New(memdb.Seed(memdb.SeedOptions{TicketUnitPrice: unit}))
	txManager := memdb.NewTXManager(db)

	users := userrepo.New(db)
	txs := transactionrepo.New(db)
	verifier := NewMockVerifier(ctrl)
	feed := NewMockFeedPublisher(ctrl)
	wallet := walletservice.New(users, txs, txManager, verifier, idgen.UUID{}, decimal.NewFromInt(2))

	return &fixture{
		service:  New(lotteryrepo.New(db), users, wallet, verifier, feed, txManager, idgen.UUID{}, unit),
		users:    users,
		txs:      txs,
		verifier: verifier,
		feed:     feed,
	}
}

func (f *fixture) balance(t *testing.T, userID string) decimal.Decimal {
	t.Helper()
	u, err := f.users.FindByID(context.Background(), userID)
	require.NoError(t, err)
	return u.WalletBalance
}

func (f *fixture) history(t *testing.T, userID string) []domain.Transaction {
	t.Helper()
	txs, err := f.txs.ListByUserID(context.Background(), userID)
	require.NoError(t, err)
	return txs
}

func TestPurchaseFromWallet(t *testing.T) {
	tests := []struct {
		name            string
		userID          string
		bundleID        string
		balance         decimal.Decimal
		prepareMock     func(f *fixture)
		expectedBalance decimal.Decimal
		expectedError   error
	}{
		{
			name:     "Ten ticket bundle costs 70",
			userID:   "usr_456",
			bundleID: "bundle_6PM_10_8",
			prepareMock: func(f *fixture) {
				f.feed.EXPECT().Publish(gomock.Any(), "John Doe", 10, "6 PM").Return(&domain.RecentPurchase{}, nil)
			},
			expectedBalance: decimal.RequireFromString("1180.75"),
		},
		{
			name:            "Insufficient funds",
			userID:          "usr_456",
			bundleID:        "bundle_6PM_10_8",
			balance:         decimal.NewFromInt(69),
			expectedBalance: decimal.NewFromInt(69),
			expectedError:   domain.ErrInsufficientFunds,
		},
		{
			name:            "Unknown bundle",
			userID:          "usr_456",
			bundleID:        "bundle_missing",
			expectedBalance: decimal.RequireFromString("1250.75"),
			expectedError:   domain.ErrNotFound,
		},
		{
			name:     "Feed failure does not undo the purchase",
			userID:   "usr_456",
			bundleID: "bundle_6PM_10_8",
			prepareMock: func(f *fixture) {
				f.feed.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
			},
			expectedBalance: decimal.RequireFromString("1180.75"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewMock(t)
			if !tt.balance.IsZero() {
				require.NoError(t, f.users.UpdateBalance(context.Background(), tt.userID, tt.balance))
			}
			if tt.prepareMock != nil {
				tt.prepareMock(f)
			}
			before := len(f.history(t, tt.userID))

			receipt, err := f.service.Purchase(context.Background(), tt.userID, tt.bundleID, PayFromWallet, "")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Len(t, f.history(t, tt.userID), before)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "6 PM SEM Bundle (10 x ₹7)", receipt.Transaction.Description)
				assert.True(t, decimal.NewFromInt(-70).Equal(receipt.Transaction.Amount))
				assert.True(t, tt.expectedBalance.Equal(receipt.Balance))
				assert.Len(t, f.history(t, tt.userID), before+1)
			}
			assert.True(t, tt.expectedBalance.Equal(f.balance(t, tt.userID)))
		})
	}
}

func TestPurchaseIgnoresTicketValue(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()

	bundle, err := f.service.AddBundle(ctx, "8 PM", 25, "")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(7).Equal(bundle.TicketValue))
	assert.True(t, decimal.NewFromInt(175).Equal(f.service.Price(*bundle)))

	bundle.TicketValue = decimal.NewFromInt(100)
	assert.True(t, decimal.NewFromInt(175).Equal(f.service.Price(*bundle)))
}

func TestPurchaseByUPI(t *testing.T) {
	f := NewMock(t)
	before := len(f.history(t, "usr_789"))

	f.verifier.EXPECT().Verify(gomock.Any(), verification.Request{
		Kind: verification.KindPurchase, UserID: "usr_789", Amount: decimal.NewFromInt(35), Reference: "UTR42",
	}).Return(verification.Result{Approved: true}, nil)
	f.feed.EXPECT().Publish(gomock.Any(), "Jane Smith", 5, "1 PM").Return(&domain.RecentPurchase{}, nil)

	receipt, err := f.service.Purchase(context.Background(), "usr_789", "bundle_1PM_5_1", PayByUPI, "UTR42")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(350).Equal(receipt.Balance))

	history := f.history(t, "usr_789")
	require.Len(t, history, before+2)
	assert.Equal(t, domain.Debit, history[0].Type)
	assert.Equal(t, domain.Credit, history[1].Type)
	assert.Equal(t, walletservice.DepositDescription, history[1].Description)
}

func TestPurchaseRefusedWhenBlockedDuringVerification(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()
	before := len(f.history(t, "usr_789"))
	balance := f.balance(t, "usr_789")

	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ verification.Request) (verification.Result, error) {
		u, err := f.users.FindByID(ctx, "usr_789")
		require.NoError(t, err)
		u.Status = domain.UserBlocked
		require.NoError(t, f.users.Update(ctx, u))
		return verification.Result{Approved: true}, nil
	})

	_, err := f.service.Purchase(ctx, "usr_789", "bundle_1PM_5_1", PayByUPI, "UTR42")
	assert.ErrorIs(t, err, domain.ErrAccountBlocked)
	assert.Len(t, f.history(t, "usr_789"), before)
	assert.True(t, balance.Equal(f.balance(t, "usr_789")))
}

func TestPurchaseByUPIVerificationFails(t *testing.T) {
	f := NewMock(t)
	before := len(f.history(t, "usr_789"))

	f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(verification.Result{}, context.DeadlineExceeded)

	_, err := f.service.Purchase(context.Background(), "usr_789", "bundle_1PM_5_1", PayByUPI, "UTR42")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, f.history(t, "usr_789"), before)
}

func TestPurchaseValidation(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()

	_, err := f.service.Purchase(ctx, "usr_456", "bundle_1PM_5_1", "card", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.service.Purchase(ctx, "usr_456", "bundle_1PM_5_1", PayByUPI, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	u, err := f.users.FindByID(ctx, "usr_456")
	require.NoError(t, err)
	u.Status = domain.UserBlocked
	require.NoError(t, f.users.Update(ctx, u))

	_, err = f.service.Purchase(ctx, "usr_456", "bundle_1PM_5_1", PayFromWallet, "")
	assert.ErrorIs(t, err, domain.ErrAccountBlocked)
}

func TestBundles(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()

	all, err := f.service.ListBundles(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 18)

	sixPM, err := f.service.ListBundles(ctx, "6 PM")
	require.NoError(t, err)
	assert.Len(t, sixPM, 6)

	_, err = f.service.ListBundles(ctx, "9 PM")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.service.AddBundle(ctx, "9 PM", 5, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.service.AddBundle(ctx, "1 PM", 0, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	added, err := f.service.AddBundle(ctx, "6 PM", 500, "https://example.com/500.png")
	require.NoError(t, err)
	sixPM, err = f.service.ListBundles(ctx, "6 PM")
	require.NoError(t, err)
	assert.Equal(t, added.ID, sixPM[0].ID)
}

func TestResults(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()
	prize := decimal.NewFromInt(1000)

	first, err := f.service.PublishResult(ctx, domain.DrawResult{
		DrawTime: "1 PM", Date: "2024-07-28", WinningNumbers: []string{" 11111 "}, PrizeAmount: &prize,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"11111"}, first.WinningNumbers)

	found, err := f.service.FindResult(ctx, "1 PM", "2024-07-28")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID, "latest publication wins")

	results, err := f.service.ListResults(ctx)
	require.NoError(t, err)
	assert.Len(t, results, 3, "publishing never replaces")

	_, err = f.service.FindResult(ctx, "8 PM", "2024-07-28")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	invalid := []domain.DrawResult{
		{DrawTime: "2 PM", Date: "2024-07-28", WinningNumbers: []string{"1"}},
		{DrawTime: "1 PM", Date: "28/07/2024", WinningNumbers: []string{"1"}},
		{DrawTime: "1 PM", Date: "2024-07-28"},
		{DrawTime: "1 PM", Date: "2024-07-28", WinningNumbers: []string{" "}},
	}
	for _, r := range invalid {
		_, err := f.service.PublishResult(ctx, r)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestDraws(t *testing.T) {
	f := NewMock(t)
	now := time.Date(2024, 7, 28, 18, 30, 0, 0, time.UTC)

	slots := f.service.Draws(now)
	require.Len(t, slots, 3)
	assert.Equal(t, time.Date(2024, 7, 29, 13, 0, 0, 0, time.UTC), slots[0].Next)
	assert.Equal(t, time.Date(2024, 7, 29, 18, 0, 0, 0, time.UTC), slots[1].Next)
	assert.Equal(t, time.Date(2024, 7, 28, 20, 0, 0, 0, time.UTC), slots[2].Next)
}

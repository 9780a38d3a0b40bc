package walletservice

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
	transactionrepo "github.com/GlebRadaev/lottoshop/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/lottoshop/internal/repo/user-repo"
	"github.com/GlebRadaev/lottoshop/internal/verification"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
)

type fixture struct {
	service  *Service
	users    *userrepo.Repository
	txs      *transactionrepo.Repository
	verifier *MockVerifier
}

func NewMock(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	db := memdb.New(memdb.Seed(memdb.SeedOptions{
		AdminEmail:      "admin@example.com",
		TicketUnitPrice: decimal.NewFromInt(7),
		Now:             time.Now(),
	}))
	users := userrepo.New(db)
	txs := transactionrepo.New(db)
	verifier := NewMockVerifier(ctrl)
	service := New(users, txs, memdb.NewTXManager(db), verifier, idgen.UUID{}, decimal.NewFromInt(2))
	return &fixture{service: service, users: users, txs: txs, verifier: verifier}
}

func (f *fixture) balance(t *testing.T, userID string) decimal.Decimal {
	t.Helper()
	user, err := f.users.FindByID(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user.WalletBalance
}

func (f *fixture) ledgerSize(t *testing.T) int {
	t.Helper()
	txs, err := f.txs.List(context.Background())
	require.NoError(t, err)
	return len(txs)
}

func TestDebit(t *testing.T) {
	tests := []struct {
		name            string
		userID          string
		amount          decimal.Decimal
		expectedBalance decimal.Decimal
		expectedError   error
	}{
		{
			name:            "Debit within balance",
			userID:          "usr_456",
			amount:          decimal.NewFromInt(70),
			expectedBalance: decimal.RequireFromString("1180.75"),
		},
		{
			name:            "Debit entire balance",
			userID:          "usr_789",
			amount:          decimal.NewFromInt(350),
			expectedBalance: decimal.Zero,
		},
		{
			name:            "Insufficient funds",
			userID:          "usr_789",
			amount:          decimal.RequireFromString("350.01"),
			expectedBalance: decimal.NewFromInt(350),
			expectedError:   domain.ErrInsufficientFunds,
		},
		{
			name:            "Zero amount",
			userID:          "usr_456",
			amount:          decimal.Zero,
			expectedBalance: decimal.RequireFromString("1250.75"),
			expectedError:   domain.ErrValidation,
		},
		{
			name:          "Unknown user",
			userID:        "usr_missing",
			amount:        decimal.NewFromInt(1),
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewMock(t)
			before := f.ledgerSize(t)

			tx, err := f.service.Debit(context.Background(), tt.userID, tt.amount, "6 PM SEM Bundle (10 x ₹7)", domain.CategoryPurchase)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, tx)
				assert.Equal(t, before, f.ledgerSize(t))
				if !tt.expectedBalance.IsZero() {
					assert.True(t, tt.expectedBalance.Equal(f.balance(t, tt.userID)))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.Debit, tx.Type)
			assert.True(t, tx.Amount.Equal(tt.amount.Neg()))
			assert.Equal(t, domain.CategoryPurchase, tx.Category)
			assert.NotEmpty(t, tx.UserName)
			assert.True(t, tt.expectedBalance.Equal(f.balance(t, tt.userID)), "balance %s", f.balance(t, tt.userID))
			assert.Equal(t, before+1, f.ledgerSize(t))

			history, err := f.service.GetTransactions(context.Background(), tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tx.ID, history[0].ID, "new entries are listed first")
		})
	}
}

func TestCredit(t *testing.T) {
	f := NewMock(t)

	tx, err := f.service.Credit(context.Background(), "usr_789", decimal.NewFromInt(50), "Referral Bonus", domain.CategoryBonus)
	require.NoError(t, err)

	assert.Equal(t, domain.Credit, tx.Type)
	assert.Equal(t, "Jane Smith", tx.UserName)
	assert.True(t, decimal.NewFromInt(400).Equal(f.balance(t, "usr_789")))

	_, err = f.service.Credit(context.Background(), "usr_789", decimal.NewFromInt(-5), "bad", domain.CategoryBonus)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLedgerConservation(t *testing.T) {
	f := NewMock(t)
	ctx := context.Background()
	userID := "usr_456"
	initial := f.balance(t, userID)

	ops := []struct {
		credit bool
		amount int64
	}{
		{true, 100}, {false, 35}, {false, 5000}, {true, 20}, {false, 1335},
	}
	for _, op := range ops {
		if op.credit {
			_, _ = f.service.Credit(ctx, userID, decimal.NewFromInt(op.amount), "credit", domain.CategoryDeposit)
		} else {
			_, _ = f.service.Debit(ctx, userID, decimal.NewFromInt(op.amount), "debit", domain.CategoryPurchase)
		}
	}

	history, err := f.service.GetTransactions(ctx, userID)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, tx := range history {
		if tx.ID == "tx1" || tx.ID == "tx2" || tx.ID == "tx6" {
			continue
		}
		sum = sum.Add(tx.Amount)
	}
	assert.True(t, initial.Add(sum).Equal(f.balance(t, userID)))
	assert.False(t, f.balance(t, userID).IsNegative())
}

func TestSetBalance(t *testing.T) {
	f := NewMock(t)
	before := f.ledgerSize(t)

	user, err := f.service.SetBalance(context.Background(), "usr_456", decimal.NewFromInt(42))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(42).Equal(user.WalletBalance))
	assert.True(t, decimal.NewFromInt(42).Equal(f.balance(t, "usr_456")))
	assert.Equal(t, before, f.ledgerSize(t), "override writes no ledger entry")

	_, err = f.service.SetBalance(context.Background(), "usr_456", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.service.SetBalance(context.Background(), "usr_missing", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuoteDeposit(t *testing.T) {
	f := NewMock(t)

	quote, err := f.service.QuoteDeposit(decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(20).Equal(quote.Fee))
	assert.True(t, decimal.NewFromInt(980).Equal(quote.Net))

	_, err = f.service.QuoteDeposit(decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		name            string
		userID          string
		amount          decimal.Decimal
		reference       string
		blocked         bool
		prepareMock     func(f *fixture)
		expectedBalance decimal.Decimal
		expectedError   error
	}{
		{
			name:      "Verified deposit credits gross amount",
			userID:    "usr_789",
			amount:    decimal.NewFromInt(1000),
			reference: "UTR123456",
			prepareMock: func(f *fixture) {
				f.verifier.EXPECT().Verify(gomock.Any(), verification.Request{
					Kind: verification.KindDeposit, UserID: "usr_789", Amount: decimal.NewFromInt(1000), Reference: "UTR123456",
				}).Return(verification.Result{Approved: true}, nil)
			},
			expectedBalance: decimal.NewFromInt(1350),
		},
		{
			name:      "Verification abandoned",
			userID:    "usr_789",
			amount:    decimal.NewFromInt(1000),
			reference: "UTR123456",
			prepareMock: func(f *fixture) {
				f.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(verification.Result{}, context.Canceled)
			},
			expectedBalance: decimal.NewFromInt(350),
			expectedError:   context.Canceled,
		},
		{
			name:            "Missing reference",
			userID:          "usr_789",
			amount:          decimal.NewFromInt(1000),
			reference:       "  ",
			expectedBalance: decimal.NewFromInt(350),
			expectedError:   domain.ErrValidation,
		},
		{
			name:            "Blocked account",
			userID:          "usr_789",
			amount:          decimal.NewFromInt(10),
			reference:       "UTR1",
			blocked:         true,
			expectedBalance: decimal.NewFromInt(350),
			expectedError:   domain.ErrAccountBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewMock(t)
			if tt.blocked {
				user, err := f.users.FindByID(context.Background(), tt.userID)
				require.NoError(t, err)
				user.Status = domain.UserBlocked
				require.NoError(t, f.users.Update(context.Background(), user))
			}
			if tt.prepareMock != nil {
				tt.prepareMock(f)
			}

			tx, err := f.service.Deposit(context.Background(), tt.userID, tt.amount, tt.reference)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, tx)
			} else {
				require.NoError(t, err)
				assert.Equal(t, DepositDescription, tx.Description)
				assert.True(t, tt.amount.Equal(tx.Amount))
			}
			assert.True(t, tt.expectedBalance.Equal(f.balance(t, tt.userID)))
		})
	}
}

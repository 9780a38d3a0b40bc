package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/lottoshop/internal/config"
	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
	"github.com/GlebRadaev/lottoshop/internal/repo"
	"github.com/GlebRadaev/lottoshop/internal/service/userservice"
	"github.com/GlebRadaev/lottoshop/internal/verification"
	"github.com/GlebRadaev/lottoshop/pkg/auth"
	"github.com/GlebRadaev/lottoshop/pkg/clients"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
)

func NewMock(t *testing.T) *Services {
	cfg := &config.Config{
		TokenTTL:             time.Hour,
		TicketUnitPrice:      7,
		WithdrawalFeePercent: 5,
		DepositFeePercent:    2,
		SuggestionURL:        "http://127.0.0.1:0",
	}
	db := memdb.New(memdb.Seed(memdb.SeedOptions{TicketUnitPrice: decimal.NewFromInt(7)}))
	pool := verification.NewWorkerPool(2)
	t.Cleanup(pool.Close)

	return New(cfg, repo.New(db), Deps{
		TxManager:  memdb.NewTXManager(db),
		Verifier:   verification.NewProcessor(verification.NewSimulatedGateway(time.Millisecond), pool),
		HTTPClient: clients.NewHTTPClient(),
		IDs:        idgen.UUID{},
		CatalogIDs: idgen.UUID{},
		Hash:       &auth.HashService{},
		JWT:        auth.NewJWTService("test-secret"),
	})
}

func TestNew(t *testing.T) {
	services := NewMock(t)

	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.KycService)
	assert.NotNil(t, services.LotteryService)
	assert.NotNil(t, services.ContentService)
	assert.NotNil(t, services.LuckyService)
}

func TestServicesShareState(t *testing.T) {
	services := NewMock(t)
	ctx := context.Background()

	_, err := services.WalletService.Deposit(ctx, "usr_456", decimal.NewFromInt(100), "UTR1")
	require.NoError(t, err)

	receipt, err := services.WithdrawalService.RequestWithdrawal(ctx, "usr_456", decimal.NewFromInt(100), "john@okbank")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(receipt.Request.Fee))

	stats, err := services.UserService.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.PendingWithdrawals)

	wallet, err := services.WalletService.GetWallet(ctx, "usr_456")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1350.75").Equal(wallet.WalletBalance))
}

func TestProfileEditsKeepConcurrentDebits(t *testing.T) {
	services := NewMock(t)
	ctx := context.Background()
	const n = 500

	start, err := services.WalletService.GetWallet(ctx, "usr_456")
	require.NoError(t, err)
	history, err := services.WalletService.GetTransactions(ctx, "usr_456")
	require.NoError(t, err)
	entries := len(history)

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := services.WalletService.Debit(ctx, "usr_456", decimal.NewFromInt(1), "Ticket", domain.CategoryPurchase)
			return err
		})
		name := fmt.Sprintf("John %d", i)
		g.Go(func() error {
			_, err := services.UserService.UpdateProfile(ctx, "usr_456", userservice.ProfileUpdate{Name: &name})
			return err
		})
		g.Go(func() error {
			_, err := services.UserService.SetStatus(ctx, "usr_456", domain.UserActive)
			return err
		})
	}
	require.NoError(t, g.Wait())

	wallet, err := services.WalletService.GetWallet(ctx, "usr_456")
	require.NoError(t, err)
	expected := start.WalletBalance.Sub(decimal.NewFromInt(n))
	assert.True(t, expected.Equal(wallet.WalletBalance), "balance %s, want %s", wallet.WalletBalance, expected)

	history, err = services.WalletService.GetTransactions(ctx, "usr_456")
	require.NoError(t, err)
	assert.Len(t, history, entries+n)
}

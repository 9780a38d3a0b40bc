package transactionrepo

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
)

func NewMock(t *testing.T) *Repository {
	t.Helper()
	return New(memdb.New(memdb.Seed(memdb.SeedOptions{TicketUnitPrice: decimal.NewFromInt(7)})))
}

func TestRepository_Append(t *testing.T) {
	repo := NewMock(t)
	ctx := context.Background()

	before, err := repo.ListByUserID(ctx, "usr_456")
	require.NoError(t, err)

	tx := &domain.Transaction{ID: "tx_new", UserID: "usr_456", Type: domain.Credit, Category: domain.CategoryDeposit, Amount: decimal.NewFromInt(10)}
	require.NoError(t, repo.Append(ctx, tx))

	after, err := repo.ListByUserID(ctx, "usr_456")
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "tx_new", after[0].ID, "newest first")

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tx_new", all[0].ID)
}

func TestRepository_ListByUserID(t *testing.T) {
	repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userID   string
		expected int
	}{
		{name: "John", userID: "usr_456", expected: 3},
		{name: "Jane", userID: "usr_789", expected: 3},
		{name: "Admin", userID: "usr_123", expected: 1},
		{name: "Unknown", userID: "usr_0", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, err := repo.ListByUserID(ctx, tt.userID)
			require.NoError(t, err)
			assert.NotNil(t, txs)
			assert.Len(t, txs, tt.expected)
		})
	}
}

func TestRepository_ListNewestFirst(t *testing.T) {
	repo := NewMock(t)
	ctx := context.Background()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "tx1", all[0].ID)
	assert.Equal(t, "tx7", all[len(all)-1].ID)

	john, err := repo.ListByUserID(ctx, "usr_456")
	require.NoError(t, err)
	ids := make([]string, 0, len(john))
	for _, tx := range john {
		ids = append(ids, tx.ID)
	}
	assert.Equal(t, []string{"tx1", "tx2", "tx6"}, ids)
}

package userrepo

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
	return New(memdb.New(memdb.Seed(memdb.SeedOptions{
		AdminEmail:      "admin@example.com",
		TicketUnitPrice: decimal.NewFromInt(7),
	})))
}

func TestRepository_Find(t *testing.T) {
	repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		find     func() (*domain.User, error)
		expected string
	}{
		{
			name:     "By id",
			find:     func() (*domain.User, error) { return repo.FindByID(ctx, "usr_456") },
			expected: "usr_456",
		},
		{
			name:     "By email ignores case",
			find:     func() (*domain.User, error) { return repo.FindByEmail(ctx, "John@Example.com") },
			expected: "usr_456",
		},
		{
			name: "Unknown id",
			find: func() (*domain.User, error) { return repo.FindByID(ctx, "usr_0") },
		},
		{
			name: "Unknown email",
			find: func() (*domain.User, error) { return repo.FindByEmail(ctx, "nobody@example.com") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := tt.find()
			require.NoError(t, err)
			if tt.expected == "" {
				assert.Nil(t, user)
				return
			}
			require.NotNil(t, user)
			assert.Equal(t, tt.expected, user.ID)
		})
	}
}

func TestRepository_FindReturnsCopy(t *testing.T) {
	repo := NewMock(t)
	ctx := context.Background()

	user, err := repo.FindByID(ctx, "usr_456")
	require.NoError(t, err)
	user.Name = "Changed"

	again, err := repo.FindByID(ctx, "usr_456")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", again.Name)
}

func TestRepository_Create(t *testing.T) {
	repo := NewMock(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{ID: "usr_1", Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "usr_1", created.ID)

	_, err = repo.Create(ctx, &domain.User{ID: "usr_2", Email: "NEW@example.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)
}

func TestRepository_Update(t *testing.T) {
	repo := NewMock(t)
	ctx := context.Background()

	user, err := repo.FindByID(ctx, "usr_789")
	require.NoError(t, err)
	user.Status = domain.UserBlocked
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.FindByID(ctx, "usr_789")
	require.NoError(t, err)
	assert.True(t, stored.IsBlocked())

	err = repo.Update(ctx, &domain.User{ID: "usr_0"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_UpdateKeepsBalance(t *testing.T) {
	repo := NewMock(t)
	ctx := context.Background()

	stale, err := repo.FindByID(ctx, "usr_456")
	require.NoError(t, err)
	require.NoError(t, repo.UpdateBalance(ctx, "usr_456", decimal.NewFromInt(99)))

	stale.Name = "Johnny"
	stale.WalletBalance = decimal.NewFromInt(1)
	require.NoError(t, repo.Update(ctx, stale))
	assert.True(t, decimal.NewFromInt(99).Equal(stale.WalletBalance))

	stored, err := repo.FindByID(ctx, "usr_456")
	require.NoError(t, err)
	assert.Equal(t, "Johnny", stored.Name)
	assert.True(t, decimal.NewFromInt(99).Equal(stored.WalletBalance))
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo := NewMock(t)
	ctx := context.Background()

	require.NoError(t, repo.UpdateBalance(ctx, "usr_456", decimal.RequireFromString("10.50")))
	user, err := repo.FindByID(ctx, "usr_456")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("10.5").Equal(user.WalletBalance))

	assert.ErrorIs(t, repo.UpdateBalance(ctx, "usr_0", decimal.Zero), domain.ErrNotFound)
}

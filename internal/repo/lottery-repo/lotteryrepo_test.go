package lotteryrepo

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

func TestRepository_Bundles(t *testing.T) {
	repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		drawTime string
		expected int
	}{
		{name: "All", drawTime: "", expected: 18},
		{name: "1 PM", drawTime: "1 PM", expected: 6},
		{name: "Unknown slot", drawTime: "9 PM", expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundles, err := repo.ListBundles(ctx, tt.drawTime)
			require.NoError(t, err)
			assert.Len(t, bundles, tt.expected)
		})
	}

	require.NoError(t, repo.AddBundle(ctx, &domain.SemBundle{ID: "bundle_new", DrawTime: "8 PM", BundleSize: 500}))
	eightPM, err := repo.ListBundles(ctx, "8 PM")
	require.NoError(t, err)
	assert.Equal(t, "bundle_new", eightPM[0].ID)

	found, err := repo.FindBundle(ctx, "bundle_new")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 500, found.BundleSize)

	missing, err := repo.FindBundle(ctx, "bundle_missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepository_Results(t *testing.T) {
	repo := NewMock(t)
	ctx := context.Background()

	seeded, err := repo.ListResults(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.AddResult(ctx, &domain.DrawResult{ID: "res_old", DrawTime: "6 PM", Date: "2024-08-01"}))
	require.NoError(t, repo.AddResult(ctx, &domain.DrawResult{ID: "res_new", DrawTime: "6 PM", Date: "2024-08-01"}))

	results, err := repo.ListResults(ctx)
	require.NoError(t, err)
	assert.Len(t, results, len(seeded)+2)

	found, err := repo.FindResult(ctx, "6 PM", "2024-08-01")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "res_new", found.ID)

	missing, err := repo.FindResult(ctx, "8 PM", "2024-08-01")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

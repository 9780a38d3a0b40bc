package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/lottoshop/internal/memdb"
)

func TestNew(t *testing.T) {
	repo := New(memdb.New(nil))

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.WithdrawalRepo)
	assert.NotNil(t, repo.LotteryRepo)
	assert.NotNil(t, repo.ContentRepo)
	assert.NotNil(t, repo.FeedRepo)
}

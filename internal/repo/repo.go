package repo

import (
	"github.com/GlebRadaev/lottoshop/internal/memdb"
	contentrepo "github.com/GlebRadaev/lottoshop/internal/repo/content-repo"
	feedrepo "github.com/GlebRadaev/lottoshop/internal/repo/feed-repo"
	lotteryrepo "github.com/GlebRadaev/lottoshop/internal/repo/lottery-repo"
	transactionrepo "github.com/GlebRadaev/lottoshop/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/lottoshop/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/lottoshop/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	TransactionRepo *transactionrepo.Repository
	WithdrawalRepo  *withdrawalrepo.Repository
	LotteryRepo     *lotteryrepo.Repository
	ContentRepo     *contentrepo.Repository
	FeedRepo        *feedrepo.Repository
}

func New(db memdb.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(db),
		TransactionRepo: transactionrepo.New(db),
		WithdrawalRepo:  withdrawalrepo.New(db),
		LotteryRepo:     lotteryrepo.New(db),
		ContentRepo:     contentrepo.New(db),
		FeedRepo:        feedrepo.New(db),
	}
}

package service

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/lottoshop/internal/config"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
	"github.com/GlebRadaev/lottoshop/internal/repo"
	"github.com/GlebRadaev/lottoshop/internal/service/contentservice"
	"github.com/GlebRadaev/lottoshop/internal/service/kycservice"
	"github.com/GlebRadaev/lottoshop/internal/service/lotteryservice"
	"github.com/GlebRadaev/lottoshop/internal/service/luckyservice"
	"github.com/GlebRadaev/lottoshop/internal/service/userservice"
	"github.com/GlebRadaev/lottoshop/internal/service/walletservice"
	"github.com/GlebRadaev/lottoshop/internal/service/withdrawalservice"
	"github.com/GlebRadaev/lottoshop/internal/verification"
	"github.com/GlebRadaev/lottoshop/pkg/auth"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
)

// Deps are the collaborators services share beyond the repositories. IDs
// names accounts and money movements, CatalogIDs names bundles, results and
// admin-managed content.
type Deps struct {
	TxManager  memdb.TXManager
	Verifier   *verification.Processor
	Feed       lotteryservice.FeedPublisher
	HTTPClient luckyservice.HTTPClient
	IDs        idgen.Generator
	CatalogIDs idgen.Generator
	Hash       auth.HashServiceInterface
	JWT        auth.JWTServiceInterface
}

type Services struct {
	UserService       *userservice.Service
	WalletService     *walletservice.Service
	WithdrawalService *withdrawalservice.Service
	KycService        *kycservice.Service
	LotteryService    *lotteryservice.Service
	ContentService    *contentservice.Service
	LuckyService      *luckyservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, deps Deps) *Services {
	walletService := walletservice.New(repo.UserRepo, repo.TransactionRepo, deps.TxManager, deps.Verifier, deps.IDs,
		decimal.NewFromFloat(cfg.DepositFeePercent))
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, repo.UserRepo, walletService, deps.TxManager, deps.IDs,
		decimal.NewFromFloat(cfg.WithdrawalFeePercent))
	lotteryService := lotteryservice.New(repo.LotteryRepo, repo.UserRepo, walletService, deps.Verifier, deps.Feed,
		deps.TxManager, deps.CatalogIDs, decimal.NewFromFloat(cfg.TicketUnitPrice))

	return &Services{
		UserService:       userservice.New(repo.UserRepo, repo.TransactionRepo, repo.WithdrawalRepo, deps.TxManager, deps.Hash, deps.JWT, deps.IDs, cfg.TokenTTL),
		WalletService:     walletService,
		WithdrawalService: withdrawalService,
		KycService:        kycservice.New(repo.UserRepo, deps.TxManager, deps.Verifier),
		LotteryService:    lotteryService,
		ContentService:    contentservice.New(repo.ContentRepo, deps.Verifier, deps.CatalogIDs),
		LuckyService:      luckyservice.New(deps.HTTPClient, cfg.SuggestionURL, cfg.SuggestionAPIKey),
	}
}

// Package admin serves the admin panel API. Every route requires the admin
// capability; see handlers.InitRoutes.
package admin

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/lottoshop/internal/domain"
)

//go:generate mockgen -destination=mock_admin.go -package=admin . UserService,WalletService,KycService,WithdrawalService,ContentService,LotteryService
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	SetStatus(ctx context.Context, userID string, status domain.UserStatus) (*domain.User, error)
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type WalletService interface {
	SetBalance(ctx context.Context, userID string, balance decimal.Decimal) (*domain.User, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

type KycService interface {
	ListPending(ctx context.Context) ([]domain.User, error)
	Review(ctx context.Context, userID string, decision domain.KycStatus) (*domain.User, error)
}

type WithdrawalService interface {
	List(ctx context.Context, status domain.WithdrawalStatus) ([]domain.WithdrawalRequest, error)
	ProcessWithdrawal(ctx context.Context, id string, decision domain.WithdrawalStatus) (*domain.WithdrawalRequest, error)
}

type ContentService interface {
	AddBanner(ctx context.Context, imageURL, title string) (*domain.Banner, error)
	DeleteBanner(ctx context.Context, id string) error
	AddUpi(ctx context.Context, upi domain.UpiDetail) (*domain.UpiDetail, error)
	UpdateUpi(ctx context.Context, upi domain.UpiDetail) (*domain.UpiDetail, error)
	DeleteUpi(ctx context.Context, id string) error
	AddQrCode(ctx context.Context, qr domain.QrCodeDetail) (*domain.QrCodeDetail, error)
	UpdateQrCode(ctx context.Context, qr domain.QrCodeDetail) (*domain.QrCodeDetail, error)
	DeleteQrCode(ctx context.Context, id string) error
	SetAboutUs(ctx context.Context, content string) error
	ListTickets(ctx context.Context) ([]domain.SupportTicket, error)
}

type LotteryService interface {
	AddBundle(ctx context.Context, drawTime string, bundleSize int, imageURL string) (*domain.SemBundle, error)
	PublishResult(ctx context.Context, result domain.DrawResult) (*domain.DrawResult, error)
	Price(bundle domain.SemBundle) decimal.Decimal
}

type AdminHandler struct {
	users       UserService
	wallet      WalletService
	kyc         KycService
	withdrawals WithdrawalService
	content     ContentService
	lottery     LotteryService
}

func New(users UserService, wallet WalletService, kyc KycService, withdrawals WithdrawalService, content ContentService, lottery LotteryService) *AdminHandler {
	return &AdminHandler{
		users:       users,
		wallet:      wallet,
		kyc:         kyc,
		withdrawals: withdrawals,
		content:     content,
		lottery:     lottery,
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// CanAdminister reports whether the role grants access to the admin panel.
func (r Role) CanAdminister() bool {
	return r == RoleAdmin
}

type KycStatus string

const (
	KycNotVerified KycStatus = "Not Verified"
	KycPending     KycStatus = "Pending"
	KycVerified    KycStatus = "Verified"
	KycRejected    KycStatus = "Rejected"
)

type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserBlocked UserStatus = "blocked"
)

type KycDetails struct {
	DocumentType   string
	DocumentNumber string
	FrontImageURL  string
	BackImageURL   string
	SubmissionDate time.Time
}

type User struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	AvatarURL     string
	PasswordHash  string
	WalletBalance decimal.Decimal
	KycStatus     KycStatus
	KycDetails    *KycDetails
	ReferralCode  string
	Status        UserStatus
	Role          Role
	CreatedAt     time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role.CanAdminister()
}

func (u *User) IsBlocked() bool {
	return u.Status == UserBlocked
}

type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// TransactionCategory classifies ledger entries for reporting.
type TransactionCategory string

const (
	CategoryDeposit    TransactionCategory = "deposit"
	CategoryPurchase   TransactionCategory = "purchase"
	CategoryWithdrawal TransactionCategory = "withdrawal"
	CategoryBonus      TransactionCategory = "bonus"
	CategoryPrize      TransactionCategory = "prize"
)

// Transaction is an immutable ledger entry. Amount is signed: positive for
// credits, negative for debits.
type Transaction struct {
	ID          string
	UserID      string
	UserName    string
	Description string
	Type        TransactionType
	Category    TransactionCategory
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

type WithdrawalRequest struct {
	ID            string
	UserID        string
	UserName      string
	Amount        decimal.Decimal
	Fee           decimal.Decimal
	TotalDeducted decimal.Decimal
	Destination   string
	RequestedAt   time.Time
	ProcessedAt   *time.Time
	Status        WithdrawalStatus
}

type SemBundle struct {
	ID          string
	DrawTime    string
	BundleSize  int
	TicketValue decimal.Decimal
	ImageURL    string
}

type DrawResult struct {
	ID             string
	DrawTime       string
	Date           string
	WinningNumbers []string
	PrizeAmount    *decimal.Decimal
	PdfURL         string
	PublishedAt    time.Time
}

// Draw is a daily scheduled lottery event identified by its time label.
type Draw struct {
	ID     string
	Hour   int
	Minute int
}

type Banner struct {
	ID       string
	ImageURL string
	Title    string
}

type UpiDetail struct {
	ID    string
	Name  string
	UpiID string
}

type QrCodeDetail struct {
	ID       string
	Name     string
	ImageURL string
}

type Winner struct {
	ID          string
	Name        string
	PrizeAmount decimal.Decimal
	DrawTime    string
	Date        string
	AvatarURL   string
}

// RecentPurchase is one entry of the live purchase feed.
type RecentPurchase struct {
	ID         string
	UserName   string
	BundleSize int
	DrawTime   string
	Timestamp  time.Time
}

type SupportTicket struct {
	ID          string
	UserID      string
	Subject     string
	Message     string
	SubmittedAt time.Time
}

type DashboardStats struct {
	TotalUsers         int
	TotalRevenue       decimal.Decimal
	TicketsSold        int
	PendingWithdrawals int
	PendingKyc         int
}

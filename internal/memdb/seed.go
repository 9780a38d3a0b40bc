package memdb

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/lottoshop/internal/domain"
)

type SeedOptions struct {
	AdminEmail        string
	AdminPasswordHash string
	TicketUnitPrice   decimal.Decimal
	Now               time.Time
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func amount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Seed builds the initial fixture state the storefront starts with.
func Seed(opts SeedOptions) *State {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	s := NewState()

	s.Users = []domain.User{
		{
			ID: "usr_123", Name: "Admin User", Email: opts.AdminEmail, Phone: "+91 99999 88888",
			AvatarURL: "https://i.pravatar.cc/150?u=admin", PasswordHash: opts.AdminPasswordHash,
			WalletBalance: amount(10000), KycStatus: domain.KycVerified, ReferralCode: "ADMINPRO",
			Status: domain.UserActive, Role: domain.RoleAdmin,
		},
		{
			ID: "usr_456", Name: "John Doe", Email: "john@example.com", Phone: "+91 98765 43210",
			WalletBalance: amount(1250.75), KycStatus: domain.KycVerified, ReferralCode: "JOHN2024",
			Status: domain.UserActive, Role: domain.RoleUser,
		},
		{
			ID: "usr_789", Name: "Jane Smith", Email: "jane@example.com", Phone: "0",
			AvatarURL: "https://i.pravatar.cc/150?u=jane", WalletBalance: amount(350),
			KycStatus: domain.KycPending,
			KycDetails: &domain.KycDetails{
				DocumentType:   "Aadhar Card",
				DocumentNumber: "**** **** 1234",
				FrontImageURL:  "https://placehold.co/600x400/a7a7a7/ffffff?text=Aadhar+Front",
				BackImageURL:   "https://placehold.co/600x400/a7a7a7/ffffff?text=Aadhar+Back",
				SubmissionDate: day("2024-07-30"),
			},
			ReferralCode: "JANESREF", Status: domain.UserActive, Role: domain.RoleUser,
		},
	}

	s.Banners = []domain.Banner{
		{ID: "b1", ImageURL: "https://placehold.co/600x300/7c3aed/ffffff?text=Mega+Jackpot", Title: "Win the Mega Jackpot This Sunday!"},
		{ID: "b2", ImageURL: "https://placehold.co/600x300/16a34a/ffffff?text=Bumper+Offer", Title: "Special Bumper Offer - Limited Time"},
	}

	counter := 0
	for _, draw := range domain.DefaultDraws {
		for _, size := range domain.BundleSizes {
			counter++
			s.Bundles = append(s.Bundles, domain.SemBundle{
				ID:          fmt.Sprintf("bundle_%s_%d_%d", strings.ReplaceAll(draw.ID, " ", ""), size, counter),
				DrawTime:    draw.ID,
				BundleSize:  size,
				TicketValue: opts.TicketUnitPrice,
				ImageURL:    fmt.Sprintf("https://placehold.co/400x200/ec4899/ffffff?text=%d+Tickets", size),
			})
		}
	}

	// Oldest first.
	s.Transactions = []domain.Transaction{
		{ID: "tx7", UserID: "usr_789", UserName: "Jane Smith", Description: "Won Prize", Type: domain.Credit, Category: domain.CategoryPrize, Amount: amount(1000), CreatedAt: day("2024-07-23")},
		{ID: "tx6", UserID: "usr_456", UserName: "John Doe", Description: "6 PM SEM Bundle (10 x ₹7)", Type: domain.Debit, Category: domain.CategoryPurchase, Amount: amount(-70), CreatedAt: day("2024-07-24")},
		{ID: "tx5", UserID: "usr_123", UserName: "Admin User", Description: "Deposited via UPI", Type: domain.Credit, Category: domain.CategoryDeposit, Amount: amount(300), CreatedAt: day("2024-07-25")},
		{ID: "tx4", UserID: "usr_789", UserName: "Jane Smith", Description: "Withdrawal", Type: domain.Debit, Category: domain.CategoryWithdrawal, Amount: amount(-200), CreatedAt: day("2024-07-26")},
		{ID: "tx3", UserID: "usr_789", UserName: "Jane Smith", Description: "Referral Bonus", Type: domain.Credit, Category: domain.CategoryBonus, Amount: amount(50), CreatedAt: day("2024-07-27")},
		{ID: "tx2", UserID: "usr_456", UserName: "John Doe", Description: "1 PM SEM Bundle (5 x ₹7)", Type: domain.Debit, Category: domain.CategoryPurchase, Amount: amount(-35), CreatedAt: day("2024-07-28")},
		{ID: "tx1", UserID: "usr_456", UserName: "John Doe", Description: "Deposited via UPI", Type: domain.Credit, Category: domain.CategoryDeposit, Amount: amount(500), CreatedAt: day("2024-07-28")},
	}

	s.UpiDetails = []domain.UpiDetail{
		{ID: "upi_1", Name: "Official UPI", UpiID: "contact@dearonline.wb"},
		{ID: "upi_2", Name: "Alternate UPI", UpiID: "support@dearonline.wb"},
	}

	s.QrCodes = []domain.QrCodeDetail{
		{ID: "qr_1", Name: "Official QR Code", ImageURL: "https://placehold.co/256x256/E8E8E8/4A4A4A?text=Scan+to+Pay"},
	}

	jackpot := amount(5000000)
	s.Results = []domain.DrawResult{
		{ID: "res1", DrawTime: "1 PM", Date: "2024-07-28", WinningNumbers: []string{"12345", "67890", "11223", "44556", "77889"}, PrizeAmount: &jackpot, PublishedAt: day("2024-07-28")},
		{ID: "res2", DrawTime: "6 PM", Date: "2024-07-27", WinningNumbers: []string{"98765", "43210", "55667", "88990", "11224"}, PrizeAmount: &jackpot, PublishedAt: day("2024-07-27")},
	}

	s.Withdrawals = []domain.WithdrawalRequest{
		{
			ID: "wr_1", UserID: "usr_456", UserName: "John Doe",
			Amount: amount(200), Fee: amount(10), TotalDeducted: amount(210),
			Destination: "johndoe@mybank", RequestedAt: day("2024-07-29"), Status: domain.WithdrawalPending,
		},
		{
			ID: "wr_2", UserID: "usr_789", UserName: "Jane Smith",
			Amount: amount(50), Fee: amount(2.5), TotalDeducted: amount(52.5),
			Destination: "janesmith@okbank", RequestedAt: day("2024-07-28"), Status: domain.WithdrawalPending,
		},
	}

	s.Winners = []domain.Winner{
		{ID: "win1", Name: "Aarav Sharma", PrizeAmount: amount(50000), DrawTime: "8 PM", Date: "2024-07-28", AvatarURL: "https://i.pravatar.cc/150?u=aarav"},
		{ID: "win2", Name: "Priya Patel", PrizeAmount: amount(25000), DrawTime: "1 PM", Date: "2024-07-28", AvatarURL: "https://i.pravatar.cc/150?u=priya"},
		{ID: "win3", Name: "Rohan Das", PrizeAmount: amount(10000), DrawTime: "6 PM", Date: "2024-07-27", AvatarURL: "https://i.pravatar.cc/150?u=rohan"},
		{ID: "win4", Name: "Sneha Gupta", PrizeAmount: amount(5000), DrawTime: "8 PM", Date: "2024-07-27"},
		{ID: "win5", Name: "Vikram Singh", PrizeAmount: amount(1000), DrawTime: "1 PM", Date: "2024-07-26", AvatarURL: "https://i.pravatar.cc/150?u=vikram"},
	}

	s.Feed = []domain.RecentPurchase{
		{ID: "pur_1", UserName: "Rahul K.", BundleSize: 5, DrawTime: "8 PM", Timestamp: opts.Now.Add(-5 * time.Second)},
		{ID: "pur_2", UserName: "Anjali P.", BundleSize: 10, DrawTime: "6 PM", Timestamp: opts.Now.Add(-12 * time.Second)},
		{ID: "pur_3", UserName: "Suresh M.", BundleSize: 25, DrawTime: "8 PM", Timestamp: opts.Now.Add(-25 * time.Second)},
		{ID: "pur_4", UserName: "Pooja S.", BundleSize: 5, DrawTime: "1 PM", Timestamp: opts.Now.Add(-45 * time.Second)},
	}

	return s
}

package withdrawalservice

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/memdb"
	transactionrepo "github.com/GlebRadaev/lottoshop/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/lottoshop/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/lottoshop/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/lottoshop/internal/service/walletservice"
	"github.com/GlebRadaev/lottoshop/pkg/idgen"
)

type WithdrawalServiceSuite struct {
	suite.Suite
	ctx     context.Context
	service *Service
	users   *userrepo.Repository
	txs     *transactionrepo.Repository
}

func (s *WithdrawalServiceSuite) SetupTest() {
	s.ctx = context.Background()
	db := memdb.New(memdb.Seed(memdb.SeedOptions{
		AdminEmail:      "admin@example.com",
		TicketUnitPrice: decimal.NewFromInt(7),
	}))
	txManager := memdb.NewTXManager(db)
	s.users = userrepo.New(db)
	s.txs = transactionrepo.New(db)
	ids, err := idgen.NewSnowflake(1)
	s.Require().NoError(err)

	wallet := walletservice.New(s.users, s.txs, txManager, nil, ids, decimal.NewFromInt(2))
	s.service = New(withdrawalrepo.New(db), s.users, wallet, txManager, ids, decimal.NewFromInt(5))
}

func (s *WithdrawalServiceSuite) balance(userID string) decimal.Decimal {
	user, err := s.users.FindByID(s.ctx, userID)
	s.Require().NoError(err)
	return user.WalletBalance
}

func (s *WithdrawalServiceSuite) ledger(userID string) []domain.Transaction {
	txs, err := s.txs.ListByUserID(s.ctx, userID)
	s.Require().NoError(err)
	return txs
}

func (s *WithdrawalServiceSuite) TestQuote() {
	quote, err := s.service.Quote(decimal.NewFromInt(100))
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(5).Equal(quote.Fee))
	s.True(decimal.NewFromInt(105).Equal(quote.TotalDeducted))

	_, err = s.service.Quote(decimal.NewFromInt(-1))
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *WithdrawalServiceSuite) TestRequestDoesNotDebit() {
	before := s.balance("usr_789")

	receipt, err := s.service.RequestWithdrawal(s.ctx, "usr_789", decimal.NewFromInt(100), "jane@okbank")
	s.Require().NoError(err)

	wr := receipt.Request
	s.Equal(domain.WithdrawalPending, wr.Status)
	s.Equal("Jane Smith", wr.UserName)
	s.True(decimal.NewFromInt(5).Equal(wr.Fee))
	s.True(decimal.NewFromInt(105).Equal(wr.TotalDeducted))
	s.Nil(wr.ProcessedAt)
	s.True(receipt.BalanceSufficient)
	s.True(before.Equal(s.balance("usr_789")))

	pending, err := s.service.List(s.ctx, domain.WithdrawalPending)
	s.Require().NoError(err)
	s.Equal(wr.ID, pending[0].ID)
}

func (s *WithdrawalServiceSuite) TestRequestAboveBalanceIsAccepted() {
	receipt, err := s.service.RequestWithdrawal(s.ctx, "usr_789", decimal.NewFromInt(1000), "jane@okbank")
	s.Require().NoError(err)
	s.False(receipt.BalanceSufficient)
	s.Equal(domain.WithdrawalPending, receipt.Request.Status)
}

func (s *WithdrawalServiceSuite) TestRequestValidation() {
	tests := []struct {
		name        string
		userID      string
		amount      decimal.Decimal
		destination string
		expected    error
	}{
		{name: "Zero amount", userID: "usr_789", amount: decimal.Zero, destination: "x@bank", expected: domain.ErrValidation},
		{name: "Missing destination", userID: "usr_789", amount: decimal.NewFromInt(10), destination: " ", expected: domain.ErrValidation},
		{name: "Unknown user", userID: "usr_0", amount: decimal.NewFromInt(10), destination: "x@bank", expected: domain.ErrNotFound},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.RequestWithdrawal(s.ctx, tt.userID, tt.amount, tt.destination)
			s.ErrorIs(err, tt.expected)
		})
	}
}

func (s *WithdrawalServiceSuite) TestApproveDebitsOnce() {
	receipt, err := s.service.RequestWithdrawal(s.ctx, "usr_789", decimal.NewFromInt(100), "jane@okbank")
	s.Require().NoError(err)
	id := receipt.Request.ID
	history := len(s.ledger("usr_789"))

	processed, err := s.service.ProcessWithdrawal(s.ctx, id, domain.WithdrawalApproved)
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalApproved, processed.Status)
	s.NotNil(processed.ProcessedAt)
	s.True(decimal.NewFromInt(245).Equal(s.balance("usr_789")))

	ledger := s.ledger("usr_789")
	s.Len(ledger, history+1)
	s.Equal("Withdrawal of ₹100.00 approved", ledger[0].Description)
	s.Equal(domain.CategoryWithdrawal, ledger[0].Category)
	s.True(decimal.NewFromInt(-105).Equal(ledger[0].Amount))

	for _, decision := range []domain.WithdrawalStatus{domain.WithdrawalApproved, domain.WithdrawalRejected} {
		_, err = s.service.ProcessWithdrawal(s.ctx, id, decision)
		s.ErrorIs(err, domain.ErrInvalidStateTransition)
	}
	s.True(decimal.NewFromInt(245).Equal(s.balance("usr_789")))
	s.Len(s.ledger("usr_789"), history+1)
}

func (s *WithdrawalServiceSuite) TestRejectLeavesWalletUntouched() {
	before := s.balance("usr_456")
	history := len(s.ledger("usr_456"))

	processed, err := s.service.ProcessWithdrawal(s.ctx, "wr_1", domain.WithdrawalRejected)
	s.Require().NoError(err)
	s.Equal(domain.WithdrawalRejected, processed.Status)
	s.True(before.Equal(s.balance("usr_456")))
	s.Len(s.ledger("usr_456"), history)

	_, err = s.service.ProcessWithdrawal(s.ctx, "wr_1", domain.WithdrawalApproved)
	s.ErrorIs(err, domain.ErrInvalidStateTransition)
}

func (s *WithdrawalServiceSuite) TestApproveWithoutFundsStaysPending() {
	receipt, err := s.service.RequestWithdrawal(s.ctx, "usr_789", decimal.NewFromInt(1000), "jane@okbank")
	s.Require().NoError(err)

	_, err = s.service.ProcessWithdrawal(s.ctx, receipt.Request.ID, domain.WithdrawalApproved)
	s.ErrorIs(err, domain.ErrInsufficientFunds)

	all, err := s.service.ListByUser(s.ctx, "usr_789")
	s.Require().NoError(err)
	s.Equal(receipt.Request.ID, all[0].ID)
	s.Equal(domain.WithdrawalPending, all[0].Status)
	s.Nil(all[0].ProcessedAt)
	s.True(decimal.NewFromInt(350).Equal(s.balance("usr_789")))
}

func (s *WithdrawalServiceSuite) TestProcessErrors() {
	_, err := s.service.ProcessWithdrawal(s.ctx, "wr_missing", domain.WithdrawalApproved)
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = s.service.ProcessWithdrawal(s.ctx, "wr_2", domain.WithdrawalPending)
	s.ErrorIs(err, domain.ErrValidation)

	_, err = s.service.List(s.ctx, "cancelled")
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *WithdrawalServiceSuite) TestRequestedAtIsStamped() {
	fixed := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return fixed }

	receipt, err := s.service.RequestWithdrawal(s.ctx, "usr_456", decimal.NewFromInt(10), "john@bank")
	s.Require().NoError(err)
	s.Equal(fixed, receipt.Request.RequestedAt)
}

func TestWithdrawalServiceSuite(t *testing.T) {
	suite.Run(t, new(WithdrawalServiceSuite))
}

package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/dto"
	"github.com/GlebRadaev/lottoshop/internal/service/walletservice"
	"github.com/GlebRadaev/lottoshop/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

type decimalMatcher struct{ want decimal.Decimal }

func decimalEq(v string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(v)}
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is equal to " + m.want.String()
}

func withUser(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, "usr_456"))
}

func TestGetWalletHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetWallet(gomock.Any(), "usr_456").Return(&domain.User{WalletBalance: decimal.RequireFromString("1250.75")}, nil)
	w := httptest.NewRecorder()
	handler.GetWallet(w, withUser(httptest.NewRequest(http.MethodGet, "/api/user/wallet", nil)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"balance":1250.75}`, w.Body.String())

	service.EXPECT().GetWallet(gomock.Any(), "usr_456").Return(nil, errors.New("error"))
	w = httptest.NewRecorder()
	handler.GetWallet(w, withUser(httptest.NewRequest(http.MethodGet, "/api/user/wallet", nil)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().GetTransactions(gomock.Any(), "usr_456").Return([]domain.Transaction{
		{
			ID: "tx1", UserID: "usr_456", Description: "Deposited via UPI", Type: domain.Credit,
			Category: domain.CategoryDeposit, Amount: decimal.NewFromInt(500),
			CreatedAt: time.Date(2024, 7, 28, 10, 0, 0, 0, time.UTC),
		},
	}, nil)

	w := httptest.NewRecorder()
	handler.GetTransactions(w, withUser(httptest.NewRequest(http.MethodGet, "/api/user/transactions", nil)))
	require.Equal(t, http.StatusOK, w.Code)

	var body []dto.TransactionResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "2024-07-28", body[0].Date)
	assert.Equal(t, "credit", body[0].Type)
}

func TestDepositQuoteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:  "Quote",
			query: "?amount=1000",
			prepareMock: func() {
				service.EXPECT().QuoteDeposit(decimalEq("1000")).Return(&walletservice.DepositQuote{
					Amount: decimal.NewFromInt(1000), Fee: decimal.NewFromInt(20), Net: decimal.NewFromInt(980),
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"amount":1000,"fee":20,"net":980}`,
		},
		{
			name:         "Not a number",
			query:        "?amount=abc",
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:  "Non positive",
			query: "?amount=0",
			prepareMock: func() {
				service.EXPECT().QuoteDeposit(gomock.Any()).Return(nil, domain.NewValidationError("amount", "must be greater than zero"))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.DepositQuote(w, withUser(httptest.NewRequest(http.MethodGet, "/api/user/wallet/deposit-quote"+tt.query, nil)))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful deposit",
			body: `{"amount":500,"transactionId":"UTR1"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), "usr_456", decimalEq("500"), "UTR1").
					Return(&domain.Transaction{ID: "tx1", Amount: decimal.NewFromInt(500), Type: domain.Credit}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Blocked",
			body: `{"amount":500,"transactionId":"UTR1"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), "usr_456", gomock.Any(), "UTR1").Return(nil, domain.ErrAccountBlocked)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Verification failed",
			body: `{"amount":500,"transactionId":"UTR1"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), "usr_456", gomock.Any(), "UTR1").Return(nil, domain.ErrVerificationFailed)
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":"x"`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Deposit(w, withUser(httptest.NewRequest(http.MethodPost, "/api/user/wallet/deposits", bytes.NewBufferString(tt.body))))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

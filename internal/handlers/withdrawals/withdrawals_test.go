package withdrawals

import (
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/GlebRadaev/lottoshop/internal/service/withdrawalservice"
	"github.com/GlebRadaev/lottoshop/pkg/auth"
)

func NewMock(t *testing.T) (*WithdrawalHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withUser(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, "usr_456"))
}

func TestQuoteHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Quote(gomock.Any()).DoAndReturn(func(amount decimal.Decimal) (*withdrawalservice.Quote, error) {
		assert.Equal(t, "100", amount.String())
		return &withdrawalservice.Quote{Amount: amount, Fee: decimal.NewFromInt(5), TotalDeducted: decimal.NewFromInt(105)}, nil
	})
	w := httptest.NewRecorder()
	handler.Quote(w, withUser(httptest.NewRequest(http.MethodGet, "/api/user/withdrawals/quote?amount=100", nil)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"amount":100,"fee":5,"totalDeducted":105}`, w.Body.String())

	w = httptest.NewRecorder()
	handler.Quote(w, withUser(httptest.NewRequest(http.MethodGet, "/api/user/withdrawals/quote", nil)))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Pending request",
			body: `{"amount":200,"upiId":"john@okbank"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), "usr_456", gomock.Any(), "john@okbank").Return(&withdrawalservice.Receipt{
					Request: &domain.WithdrawalRequest{
						ID: "wr_1", UserID: "usr_456", Amount: decimal.NewFromInt(200), Fee: decimal.NewFromInt(10),
						TotalDeducted: decimal.NewFromInt(210), Destination: "john@okbank",
						RequestedAt: time.Date(2024, 7, 29, 0, 0, 0, 0, time.UTC), Status: domain.WithdrawalPending,
					},
					BalanceSufficient: false,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Invalid amount",
			body: `{"amount":0,"upiId":"john@okbank"}`,
			prepareMock: func() {
				service.EXPECT().RequestWithdrawal(gomock.Any(), "usr_456", gomock.Any(), "john@okbank").
					Return(nil, domain.NewValidationError("amount", "must be greater than zero"))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Create(w, withUser(httptest.NewRequest(http.MethodPost, "/api/user/withdrawals", bytes.NewBufferString(tt.body))))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.CreateWithdrawalResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.False(t, body.BalanceSufficient)
				assert.Equal(t, "pending", body.Withdrawal.Status)
				assert.Equal(t, "2024-07-29", body.Withdrawal.RequestDate)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ListByUser(gomock.Any(), "usr_456").Return([]domain.WithdrawalRequest{}, nil)
	w := httptest.NewRecorder()
	handler.List(w, withUser(httptest.NewRequest(http.MethodGet, "/api/user/withdrawals", nil)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

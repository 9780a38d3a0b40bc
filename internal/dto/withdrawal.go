package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/lottoshop/internal/domain"
)

type WithdrawalRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"200"`
	UpiID  string          `json:"upiId" example:"johndoe@mybank"`
}

type WithdrawalResponseDTO struct {
	ID            string          `json:"id" example:"wr_1"`
	UserID        string          `json:"userId" example:"usr_456"`
	UserName      string          `json:"userName" example:"John Doe"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number" example:"200"`
	Fee           decimal.Decimal `json:"fee" swaggertype:"number" example:"10"`
	TotalDeducted decimal.Decimal `json:"totalDeducted" swaggertype:"number" example:"210"`
	UpiID         string          `json:"upiId" example:"johndoe@mybank"`
	RequestDate   string          `json:"requestDate" example:"2024-07-29"`
	ProcessedAt   *time.Time      `json:"processedAt,omitempty"`
	Status        string          `json:"status" example:"pending"`
}

type CreateWithdrawalResponseDTO struct {
	Withdrawal        WithdrawalResponseDTO `json:"withdrawal"`
	BalanceSufficient bool                  `json:"balanceSufficient"`
}

type WithdrawalQuoteResponseDTO struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"number" example:"100"`
	Fee           decimal.Decimal `json:"fee" swaggertype:"number" example:"5"`
	TotalDeducted decimal.Decimal `json:"totalDeducted" swaggertype:"number" example:"105"`
}

type ProcessWithdrawalRequestDTO struct {
	Status string `json:"status" example:"approved"`
}

func NewWithdrawalResponse(wr *domain.WithdrawalRequest) WithdrawalResponseDTO {
	return WithdrawalResponseDTO{
		ID:            wr.ID,
		UserID:        wr.UserID,
		UserName:      wr.UserName,
		Amount:        wr.Amount,
		Fee:           wr.Fee,
		TotalDeducted: wr.TotalDeducted,
		UpiID:         wr.Destination,
		RequestDate:   wr.RequestedAt.Format(dateLayout),
		ProcessedAt:   wr.ProcessedAt,
		Status:        string(wr.Status),
	}
}

func NewWithdrawalList(withdrawals []domain.WithdrawalRequest) []WithdrawalResponseDTO {
	res := make([]WithdrawalResponseDTO, len(withdrawals))
	for i := range withdrawals {
		res[i] = NewWithdrawalResponse(&withdrawals[i])
	}
	return res
}

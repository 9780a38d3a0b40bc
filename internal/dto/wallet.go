package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/lottoshop/internal/domain"
)

type WalletResponseDTO struct {
	Balance decimal.Decimal `json:"balance" swaggertype:"number" example:"1250.75"`
}

type TransactionResponseDTO struct {
	ID          string          `json:"id" example:"tx_1820463915871621120"`
	UserID      string          `json:"userId" example:"usr_456"`
	UserName    string          `json:"userName" example:"John Doe"`
	Description string          `json:"description" example:"Deposited via UPI"`
	Date        string          `json:"date" example:"2024-07-28"`
	Type        string          `json:"type" example:"credit"`
	Category    string          `json:"category" example:"deposit"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number" example:"500"`
}

type DepositRequestDTO struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"number" example:"1000"`
	TransactionID string          `json:"transactionId" example:"UTR123456789"`
}

type DepositQuoteResponseDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"1000"`
	Fee    decimal.Decimal `json:"fee" swaggertype:"number" example:"20"`
	Net    decimal.Decimal `json:"net" swaggertype:"number" example:"980"`
}

type SetBalanceRequestDTO struct {
	Balance decimal.Decimal `json:"balance" swaggertype:"number" example:"500"`
}

func NewTransactionResponse(tx *domain.Transaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          tx.ID,
		UserID:      tx.UserID,
		UserName:    tx.UserName,
		Description: tx.Description,
		Date:        tx.CreatedAt.Format(dateLayout),
		Type:        string(tx.Type),
		Category:    string(tx.Category),
		Amount:      tx.Amount,
	}
}

func NewTransactionList(txs []domain.Transaction) []TransactionResponseDTO {
	res := make([]TransactionResponseDTO, len(txs))
	for i := range txs {
		res[i] = NewTransactionResponse(&txs[i])
	}
	return res
}

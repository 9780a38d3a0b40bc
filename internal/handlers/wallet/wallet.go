package wallet

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/dto"
	"github.com/GlebRadaev/lottoshop/internal/handlers/httperr"
	"github.com/GlebRadaev/lottoshop/internal/service/walletservice"
	"github.com/GlebRadaev/lottoshop/pkg/auth"
	"github.com/GlebRadaev/lottoshop/pkg/utils"
)

//go:generate mockgen -destination=mock_wallet.go -package=wallet . Service
type Service interface {
	GetWallet(ctx context.Context, userID string) (*domain.User, error)
	GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	QuoteDeposit(amount decimal.Decimal) (*walletservice.DepositQuote, error)
	Deposit(ctx context.Context, userID string, amount decimal.Decimal, reference string) (*domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary	Current wallet balance
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.WalletResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	user, err := h.walletService.GetWallet(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{Balance: user.WalletBalance})
}

// GetTransactions godoc
//
//	@Summary		Wallet history
//	@Description	Ledger entries of the authenticated user, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.walletService.GetTransactions(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionList(txs))
}

// DepositQuote godoc
//
//	@Summary	Deposit fee preview
//	@Tags		Wallet
//	@Security	BearerAuth
//	@Produce	json
//	@Param		amount	query		number	true	"Deposit amount"
//	@Success	200		{object}	dto.DepositQuoteResponseDTO
//	@Failure	422		{object}	utils.Response	"Invalid amount"
//	@Router		/api/user/wallet/deposit-quote [get]
func (h *WalletHandler) DepositQuote(w http.ResponseWriter, r *http.Request) {
	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil {
		httperr.Respond(w, domain.NewValidationError("amount", "must be a number"))
		return
	}
	quote, err := h.walletService.QuoteDeposit(amount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositQuoteResponseDTO{
		Amount: quote.Amount,
		Fee:    quote.Fee,
		Net:    quote.Net,
	})
}

// Deposit godoc
//
//	@Summary		Deposit via UPI
//	@Description	Verifies the UPI payment reference and credits the wallet.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Account is blocked"
//	@Failure		422		{object}	utils.Response	"Invalid amount or reference"
//	@Failure		502		{object}	utils.Response	"Payment not verified"
//	@Router			/api/user/wallet/deposits [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	tx, err := h.walletService.Deposit(r.Context(), auth.UserID(r.Context()), req.Amount, req.TransactionID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionResponse(tx))
}

package withdrawals

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/dto"
	"github.com/GlebRadaev/lottoshop/internal/handlers/httperr"
	"github.com/GlebRadaev/lottoshop/internal/service/withdrawalservice"
	"github.com/GlebRadaev/lottoshop/pkg/auth"
	"github.com/GlebRadaev/lottoshop/pkg/utils"
)

//go:generate mockgen -destination=mock_withdrawals.go -package=withdrawals . Service
type Service interface {
	Quote(amount decimal.Decimal) (*withdrawalservice.Quote, error)
	RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal, destination string) (*withdrawalservice.Receipt, error)
	ListByUser(ctx context.Context, userID string) ([]domain.WithdrawalRequest, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// Quote godoc
//
//	@Summary	Withdrawal fee preview
//	@Tags		Withdrawals
//	@Security	BearerAuth
//	@Produce	json
//	@Param		amount	query		number	true	"Amount to receive"
//	@Success	200		{object}	dto.WithdrawalQuoteResponseDTO
//	@Failure	422		{object}	utils.Response	"Invalid amount"
//	@Router		/api/user/withdrawals/quote [get]
func (h *WithdrawalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil {
		httperr.Respond(w, domain.NewValidationError("amount", "must be a number"))
		return
	}
	quote, err := h.withdrawalService.Quote(amount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawalQuoteResponseDTO{
		Amount:        quote.Amount,
		Fee:           quote.Fee,
		TotalDeducted: quote.TotalDeducted,
	})
}

// Create godoc
//
//	@Summary		Request a withdrawal
//	@Description	Files a pending request. The wallet is charged amount plus fee when an admin approves it.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal"
//	@Success		201		{object}	dto.CreateWithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Account is blocked"
//	@Failure		422		{object}	utils.Response	"Invalid amount or UPI id"
//	@Router			/api/user/withdrawals [post]
func (h *WithdrawalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	receipt, err := h.withdrawalService.RequestWithdrawal(r.Context(), auth.UserID(r.Context()), req.Amount, req.UpiID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateWithdrawalResponseDTO{
		Withdrawal:        dto.NewWithdrawalResponse(receipt.Request),
		BalanceSufficient: receipt.BalanceSufficient,
	})
}

// List godoc
//
//	@Summary	Own withdrawal requests
//	@Tags		Withdrawals
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.WithdrawalResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/user/withdrawals [get]
func (h *WithdrawalHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.withdrawalService.ListByUser(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalList(list))
}

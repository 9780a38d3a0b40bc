package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/dto"
	"github.com/GlebRadaev/lottoshop/internal/handlers/httperr"
	"github.com/GlebRadaev/lottoshop/pkg/utils"
)

// Stats godoc
//
//	@Summary	Dashboard counters
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.StatsResponseDTO
//	@Failure	403	{object}	utils.Response	"Not an admin"
//	@Router		/api/admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.users.Stats(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatsResponseDTO{
		TotalUsers:         stats.TotalUsers,
		TotalRevenue:       stats.TotalRevenue,
		TicketsSold:        stats.TicketsSold,
		PendingWithdrawals: stats.PendingWithdrawals,
		PendingKyc:         stats.PendingKyc,
	})
}

// ListUsers godoc
//
//	@Summary	All users
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.UserResponseDTO
//	@Router		/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserList(users))
}

// SetUserStatus godoc
//
//	@Summary	Block or unblock a user
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"User id"
//	@Param		request	body		dto.UserStatusRequestDTO	true	"active or blocked"
//	@Success	200		{object}	dto.UserResponseDTO
//	@Failure	404		{object}	utils.Response	"User not found"
//	@Failure	422		{object}	utils.Response	"Unknown status"
//	@Router		/api/admin/users/{id}/status [patch]
func (h *AdminHandler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UserStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	user, err := h.users.SetStatus(r.Context(), chi.URLParam(r, "id"), domain.UserStatus(req.Status))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// SetBalance godoc
//
//	@Summary		Overwrite a wallet balance
//	@Description	Administrative correction. No ledger entry is written.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"User id"
//	@Param			request	body		dto.SetBalanceRequestDTO	true	"New balance"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		422		{object}	utils.Response	"Negative balance"
//	@Router			/api/admin/users/{id}/balance [put]
func (h *AdminHandler) SetBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.SetBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	user, err := h.wallet.SetBalance(r.Context(), chi.URLParam(r, "id"), req.Balance)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// ListTransactions godoc
//
//	@Summary	Every ledger entry, newest first
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.TransactionResponseDTO
//	@Router		/api/admin/transactions [get]
func (h *AdminHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.wallet.ListTransactions(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionList(txs))
}

// ListKyc godoc
//
//	@Summary	Pending KYC submissions
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.KycResponseDTO
//	@Router		/api/admin/kyc [get]
func (h *AdminHandler) ListKyc(w http.ResponseWriter, r *http.Request) {
	users, err := h.kyc.ListPending(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewKycList(users))
}

// ReviewKyc godoc
//
//	@Summary	Approve or reject a KYC submission
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		userID	path		string					true	"User id"
//	@Param		request	body		dto.ReviewKycRequestDTO	true	"Verified or Rejected"
//	@Success	200		{object}	dto.KycResponseDTO
//	@Failure	409		{object}	utils.Response	"Submission is not pending"
//	@Failure	422		{object}	utils.Response	"Unknown decision"
//	@Router		/api/admin/kyc/{userID}/review [post]
func (h *AdminHandler) ReviewKyc(w http.ResponseWriter, r *http.Request) {
	var req dto.ReviewKycRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	user, err := h.kyc.Review(r.Context(), chi.URLParam(r, "userID"), domain.KycStatus(req.Status))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewKycResponse(user))
}

// ListWithdrawals godoc
//
//	@Summary	Withdrawal requests
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"pending, approved or rejected"
//	@Success	200		{array}		dto.WithdrawalResponseDTO
//	@Failure	422		{object}	utils.Response	"Unknown status"
//	@Router		/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	list, err := h.withdrawals.List(r.Context(), domain.WithdrawalStatus(r.URL.Query().Get("status")))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalList(list))
}

// ProcessWithdrawal godoc
//
//	@Summary		Approve or reject a withdrawal
//	@Description	Approval debits amount plus fee from the wallet. A request with insufficient funds stays pending.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Withdrawal id"
//	@Param			request	body		dto.ProcessWithdrawalRequestDTO	true	"approved or rejected"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Already processed"
//	@Router			/api/admin/withdrawals/{id}/process [post]
func (h *AdminHandler) ProcessWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req dto.ProcessWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	processed, err := h.withdrawals.ProcessWithdrawal(r.Context(), chi.URLParam(r, "id"), domain.WithdrawalStatus(req.Status))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponse(processed))
}

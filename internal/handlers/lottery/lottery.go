package lottery

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/dto"
	"github.com/GlebRadaev/lottoshop/internal/handlers/httperr"
	"github.com/GlebRadaev/lottoshop/internal/service/lotteryservice"
	"github.com/GlebRadaev/lottoshop/pkg/auth"
	"github.com/GlebRadaev/lottoshop/pkg/utils"
)

//go:generate mockgen -destination=mock_lottery.go -package=lottery . Service
type Service interface {
	Draws(now time.Time) []lotteryservice.DrawSlot
	Price(bundle domain.SemBundle) decimal.Decimal
	ListBundles(ctx context.Context, drawTime string) ([]domain.SemBundle, error)
	Purchase(ctx context.Context, userID, bundleID string, method lotteryservice.PaymentMethod, reference string) (*lotteryservice.Receipt, error)
	ListResults(ctx context.Context) ([]domain.DrawResult, error)
	FindResult(ctx context.Context, drawTime, date string) (*domain.DrawResult, error)
}

type LotteryHandler struct {
	lotteryService Service
	now            func() time.Time
}

func New(lotteryService Service) *LotteryHandler {
	return &LotteryHandler{
		lotteryService: lotteryService,
		now:            time.Now,
	}
}

// GetDraws godoc
//
//	@Summary	Daily draw schedule
//	@Tags		Lottery
//	@Produce	json
//	@Success	200	{array}	dto.DrawResponseDTO
//	@Router		/api/draws [get]
func (h *LotteryHandler) GetDraws(w http.ResponseWriter, r *http.Request) {
	slots := h.lotteryService.Draws(h.now())
	res := make([]dto.DrawResponseDTO, len(slots))
	for i, s := range slots {
		res[i] = dto.DrawResponseDTO{ID: s.Draw.ID, NextDrawAt: s.Next}
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// GetBundles godoc
//
//	@Summary		Bundle offers
//	@Description	Bundles on sale, optionally for one draw. Price is what a purchase charges.
//	@Tags			Lottery
//	@Produce		json
//	@Param			drawTime	query		string	false	"Draw label, e.g. 6 PM"
//	@Success		200			{array}		dto.BundleResponseDTO
//	@Failure		422			{object}	utils.Response	"Unknown draw"
//	@Router			/api/bundles [get]
func (h *LotteryHandler) GetBundles(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.lotteryService.ListBundles(r.Context(), r.URL.Query().Get("drawTime"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	res := make([]dto.BundleResponseDTO, len(bundles))
	for i := range bundles {
		res[i] = dto.NewBundleResponse(&bundles[i], h.lotteryService.Price(bundles[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// Purchase godoc
//
//	@Summary		Buy a bundle
//	@Description	Pays from the wallet or with a verified UPI payment reference.
//	@Tags			Lottery
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		403		{object}	utils.Response	"Account is blocked"
//	@Failure		404		{object}	utils.Response	"Bundle not found"
//	@Failure		422		{object}	utils.Response	"Invalid payment method"
//	@Failure		502		{object}	utils.Response	"Payment not verified"
//	@Router			/api/user/purchases [post]
func (h *LotteryHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	receipt, err := h.lotteryService.Purchase(r.Context(), auth.UserID(r.Context()), req.BundleID,
		lotteryservice.PaymentMethod(req.PaymentMethod), req.Reference)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		Transaction: dto.NewTransactionResponse(receipt.Transaction),
		Balance:     receipt.Balance,
	})
}

// GetResults godoc
//
//	@Summary	Published draw results, newest first
//	@Tags		Lottery
//	@Produce	json
//	@Success	200	{array}	dto.ResultResponseDTO
//	@Router		/api/results [get]
func (h *LotteryHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.lotteryService.ListResults(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewResultList(results))
}

// LookupResult godoc
//
//	@Summary	Result of one draw on one date
//	@Tags		Lottery
//	@Produce	json
//	@Param		drawTime	query		string	true	"Draw label"
//	@Param		date		query		string	true	"YYYY-MM-DD"
//	@Success	200			{object}	dto.ResultResponseDTO
//	@Failure	404			{object}	utils.Response	"No result published"
//	@Router		/api/results/lookup [get]
func (h *LotteryHandler) LookupResult(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.lotteryService.FindResult(r.Context(), q.Get("drawTime"), q.Get("date"))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewResultResponse(result))
}

package kyc

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/dto"
	"github.com/GlebRadaev/lottoshop/internal/handlers/httperr"
	"github.com/GlebRadaev/lottoshop/pkg/auth"
	"github.com/GlebRadaev/lottoshop/pkg/utils"
)

//go:generate mockgen -destination=mock_kyc.go -package=kyc . Service
type Service interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Submit(ctx context.Context, userID string, details domain.KycDetails) (*domain.User, error)
}

type KycHandler struct {
	kycService Service
}

func New(kycService Service) *KycHandler {
	return &KycHandler{
		kycService: kycService,
	}
}

// Get godoc
//
//	@Summary	Own KYC status
//	@Tags		KYC
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.KycResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/user/kyc [get]
func (h *KycHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.kycService.Get(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewKycResponse(user))
}

// Submit godoc
//
//	@Summary		Submit KYC documents
//	@Description	Allowed while the status is Not Verified or Rejected. The status becomes Pending.
//	@Tags			KYC
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.KycDetailsDTO	true	"Documents"
//	@Success		200		{object}	dto.KycResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Already pending or verified"
//	@Failure		422		{object}	utils.Response	"Missing document field"
//	@Router			/api/user/kyc [post]
func (h *KycHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.KycDetailsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	user, err := h.kycService.Submit(r.Context(), auth.UserID(r.Context()), req.ToDomain())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewKycResponse(user))
}

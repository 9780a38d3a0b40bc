package content

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

//go:generate mockgen -destination=mock_content.go -package=content . Service
type Service interface {
	ListBanners(ctx context.Context) ([]domain.Banner, error)
	ListWinners(ctx context.Context) ([]domain.Winner, error)
	PaymentChannels(ctx context.Context) ([]domain.UpiDetail, []domain.QrCodeDetail, error)
	AboutUs(ctx context.Context) (string, error)
	SubmitTicket(ctx context.Context, userID, subject, message string) (*domain.SupportTicket, error)
}

type ContentHandler struct {
	contentService Service
}

func New(contentService Service) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// GetBanners godoc
//
//	@Summary	Storefront banners
//	@Tags		Content
//	@Produce	json
//	@Success	200	{array}	dto.BannerDTO
//	@Router		/api/banners [get]
func (h *ContentHandler) GetBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.contentService.ListBanners(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBannerList(banners))
}

// GetWinners godoc
//
//	@Summary	Recent winners
//	@Tags		Content
//	@Produce	json
//	@Success	200	{array}	dto.WinnerDTO
//	@Router		/api/winners [get]
func (h *ContentHandler) GetWinners(w http.ResponseWriter, r *http.Request) {
	winners, err := h.contentService.ListWinners(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWinnerList(winners))
}

// GetPaymentChannels godoc
//
//	@Summary	UPI ids and QR codes accepting deposits
//	@Tags		Content
//	@Produce	json
//	@Success	200	{object}	dto.PaymentChannelsDTO
//	@Router		/api/payment-channels [get]
func (h *ContentHandler) GetPaymentChannels(w http.ResponseWriter, r *http.Request) {
	upi, qr, err := h.contentService.PaymentChannels(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentChannelsDTO{
		Upi:     dto.NewUpiList(upi),
		QrCodes: dto.NewQrCodeList(qr),
	})
}

// GetAboutUs godoc
//
//	@Summary	About us text
//	@Tags		Content
//	@Produce	json
//	@Success	200	{object}	dto.AboutUsDTO
//	@Router		/api/about [get]
func (h *ContentHandler) GetAboutUs(w http.ResponseWriter, r *http.Request) {
	about, err := h.contentService.AboutUs(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AboutUsDTO{Content: about})
}

// SubmitTicket godoc
//
//	@Summary	Contact support
//	@Tags		Support
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.SupportRequestDTO	true	"Support request"
//	@Success	201		{object}	dto.SupportTicketDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	422		{object}	utils.Response	"Missing subject or message"
//	@Router		/api/user/support [post]
func (h *ContentHandler) SubmitTicket(w http.ResponseWriter, r *http.Request) {
	var req dto.SupportRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	ticket, err := h.contentService.SubmitTicket(r.Context(), auth.UserID(r.Context()), req.Subject, req.Message)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewSupportTicket(ticket))
}

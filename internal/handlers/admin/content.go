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

// AddBanner godoc
//
//	@Summary	Add a storefront banner
//	@Tags		Admin content
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.BannerDTO	true	"Banner"
//	@Success	201		{object}	dto.BannerDTO
//	@Failure	422		{object}	utils.Response	"Missing image or title"
//	@Router		/api/admin/banners [post]
func (h *AdminHandler) AddBanner(w http.ResponseWriter, r *http.Request) {
	var req dto.BannerDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	banner, err := h.content.AddBanner(r.Context(), req.ImageURL, req.Title)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewBanner(banner))
}

// DeleteBanner godoc
//
//	@Summary	Remove a banner
//	@Tags		Admin content
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Banner id"
//	@Success	204
//	@Router		/api/admin/banners/{id} [delete]
func (h *AdminHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteBanner(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddUpi godoc
//
//	@Summary	Add a UPI id for deposits
//	@Tags		Admin content
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.UpiDTO	true	"UPI id"
//	@Success	201		{object}	dto.UpiDTO
//	@Failure	422		{object}	utils.Response	"Invalid UPI id"
//	@Router		/api/admin/upi [post]
func (h *AdminHandler) AddUpi(w http.ResponseWriter, r *http.Request) {
	var req dto.UpiDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	upi, err := h.content.AddUpi(r.Context(), domain.UpiDetail{Name: req.Name, UpiID: req.UpiID})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewUpi(upi))
}

// UpdateUpi godoc
//
//	@Summary	Edit a UPI id
//	@Tags		Admin content
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"UPI entry id"
//	@Param		request	body		dto.UpiDTO	true	"UPI id"
//	@Success	200		{object}	dto.UpiDTO
//	@Failure	404		{object}	utils.Response	"Not found"
//	@Router		/api/admin/upi/{id} [put]
func (h *AdminHandler) UpdateUpi(w http.ResponseWriter, r *http.Request) {
	var req dto.UpiDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	upi, err := h.content.UpdateUpi(r.Context(), domain.UpiDetail{ID: chi.URLParam(r, "id"), Name: req.Name, UpiID: req.UpiID})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUpi(upi))
}

// DeleteUpi godoc
//
//	@Summary	Remove a UPI id
//	@Tags		Admin content
//	@Security	BearerAuth
//	@Param		id	path	string	true	"UPI entry id"
//	@Success	204
//	@Router		/api/admin/upi/{id} [delete]
func (h *AdminHandler) DeleteUpi(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteUpi(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddQrCode godoc
//
//	@Summary	Add a deposit QR code
//	@Tags		Admin content
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.QrCodeDTO	true	"QR code"
//	@Success	201		{object}	dto.QrCodeDTO
//	@Router		/api/admin/qr [post]
func (h *AdminHandler) AddQrCode(w http.ResponseWriter, r *http.Request) {
	var req dto.QrCodeDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	qr, err := h.content.AddQrCode(r.Context(), domain.QrCodeDetail{Name: req.Name, ImageURL: req.ImageURL})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewQrCode(qr))
}

// UpdateQrCode godoc
//
//	@Summary	Edit a QR code
//	@Tags		Admin content
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"QR code id"
//	@Param		request	body		dto.QrCodeDTO	true	"QR code"
//	@Success	200		{object}	dto.QrCodeDTO
//	@Router		/api/admin/qr/{id} [put]
func (h *AdminHandler) UpdateQrCode(w http.ResponseWriter, r *http.Request) {
	var req dto.QrCodeDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	qr, err := h.content.UpdateQrCode(r.Context(), domain.QrCodeDetail{ID: chi.URLParam(r, "id"), Name: req.Name, ImageURL: req.ImageURL})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewQrCode(qr))
}

// DeleteQrCode godoc
//
//	@Summary	Remove a QR code
//	@Tags		Admin content
//	@Security	BearerAuth
//	@Param		id	path	string	true	"QR code id"
//	@Success	204
//	@Router		/api/admin/qr/{id} [delete]
func (h *AdminHandler) DeleteQrCode(w http.ResponseWriter, r *http.Request) {
	if err := h.content.DeleteQrCode(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetAboutUs godoc
//
//	@Summary	Replace the about us text
//	@Tags		Admin content
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	dto.AboutUsDTO	true	"Text"
//	@Success	204
//	@Router		/api/admin/about [put]
func (h *AdminHandler) SetAboutUs(w http.ResponseWriter, r *http.Request) {
	var req dto.AboutUsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	if err := h.content.SetAboutUs(r.Context(), req.Content); err != nil {
		httperr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTickets godoc
//
//	@Summary	Support requests, newest first
//	@Tags		Admin content
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	dto.SupportTicketDTO
//	@Router		/api/admin/support [get]
func (h *AdminHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.content.ListTickets(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTicketList(tickets))
}

// AddBundle godoc
//
//	@Summary	Offer a new bundle
//	@Tags		Admin lottery
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AddBundleRequestDTO	true	"Bundle"
//	@Success	201		{object}	dto.BundleResponseDTO
//	@Failure	422		{object}	utils.Response	"Unknown draw or bad size"
//	@Router		/api/admin/bundles [post]
func (h *AdminHandler) AddBundle(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBundleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	bundle, err := h.lottery.AddBundle(r.Context(), req.DrawTime, req.BundleSize, req.ImageURL)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewBundleResponse(bundle, h.lottery.Price(*bundle)))
}

// PublishResult godoc
//
//	@Summary		Publish a draw result
//	@Description	Earlier results for the same draw and date are kept; lookups return the newest.
//	@Tags			Admin lottery
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PublishResultRequestDTO	true	"Result"
//	@Success		201		{object}	dto.ResultResponseDTO
//	@Failure		422		{object}	utils.Response	"Invalid result"
//	@Router			/api/admin/results [post]
func (h *AdminHandler) PublishResult(w http.ResponseWriter, r *http.Request) {
	var req dto.PublishResultRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	result, err := h.lottery.PublishResult(r.Context(), req.ToDomain())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewResultResponse(result))
}

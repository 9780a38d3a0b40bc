package feed

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/dto"
	"github.com/GlebRadaev/lottoshop/internal/handlers/httperr"
	"github.com/GlebRadaev/lottoshop/pkg/utils"
)

//go:generate mockgen -destination=mock_feed.go -package=feed . Hub,Service
type Service interface {
	List(ctx context.Context) ([]domain.RecentPurchase, error)
	Snapshot(ctx context.Context) ([]byte, error)
}

type Hub interface {
	ServeWS(w http.ResponseWriter, r *http.Request, initial []byte) error
}

type FeedHandler struct {
	feedService Service
	hub         Hub
}

func New(feedService Service, hub Hub) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		hub:         hub,
	}
}

// GetFeed godoc
//
//	@Summary	Recent purchases
//	@Tags		Feed
//	@Produce	json
//	@Success	200	{array}	dto.RecentPurchaseDTO
//	@Router		/api/feed [get]
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.feedService.List(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRecentPurchases(feed))
}

// Subscribe godoc
//
//	@Summary		Live purchase feed
//	@Description	Websocket. Sends the current feed, then a fresh snapshot after every change.
//	@Tags			Feed
//	@Success		101
//	@Router			/api/feed/ws [get]
func (h *FeedHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.feedService.Snapshot(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	// the upgrader has already answered the client on failure
	if err := h.hub.ServeWS(w, r, snapshot); err != nil {
		zap.L().Warn("feed subscription failed", zap.Error(err))
	}
}

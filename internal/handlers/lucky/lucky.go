package lucky

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/lottoshop/internal/dto"
	"github.com/GlebRadaev/lottoshop/internal/handlers/httperr"
	"github.com/GlebRadaev/lottoshop/internal/service/luckyservice"
	"github.com/GlebRadaev/lottoshop/pkg/utils"
)

//go:generate mockgen -destination=mock_lucky.go -package=lucky . Service
type Service interface {
	Suggest(ctx context.Context, prompt string) (*luckyservice.Suggestion, error)
}

type LuckyHandler struct {
	luckyService Service
}

func New(luckyService Service) *LuckyHandler {
	return &LuckyHandler{
		luckyService: luckyService,
	}
}

// Suggest godoc
//
//	@Summary	Lucky number suggestions
//	@Tags		Lucky numbers
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LuckyNumbersRequestDTO	true	"Prompt"
//	@Success	200		{object}	dto.LuckyNumbersResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	422		{object}	utils.Response	"Empty prompt"
//	@Failure	502		{object}	utils.Response	"Suggestion service unavailable"
//	@Router		/api/user/lucky-numbers [post]
func (h *LuckyHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req dto.LuckyNumbersRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	suggestion, err := h.luckyService.Suggest(r.Context(), req.Prompt)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LuckyNumbersResponseDTO{
		Numbers:   suggestion.Numbers,
		Reasoning: suggestion.Reasoning,
	})
}

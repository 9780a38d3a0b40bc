package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/dto"
	"github.com/GlebRadaev/lottoshop/internal/handlers/httperr"
	"github.com/GlebRadaev/lottoshop/internal/service/userservice"
	pkgauth "github.com/GlebRadaev/lottoshop/pkg/auth"
	"github.com/GlebRadaev/lottoshop/pkg/utils"
)

//go:generate mockgen -destination=mock_auth.go -package=auth . Service
type Service interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update userservice.ProfileUpdate) (*domain.User, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login godoc
//
//	@Summary		Sign in
//	@Description	Sign in with an email address. Unknown addresses get a new account. Accounts with a password must send it.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.UserResponseDTO	"Signed in profile, token in the Authorization header"
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		401		{object}	utils.Response		"Invalid credentials"
//	@Failure		403		{object}	utils.Response		"Account is blocked"
//	@Failure		422		{object}	utils.Response		"Invalid email"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// GetProfile godoc
//
//	@Summary	Current user profile
//	@Tags		Profile
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.UserResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Router		/api/user/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.GetProfile(r.Context(), pkgauth.UserID(r.Context()))
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

// UpdateProfile godoc
//
//	@Summary		Edit profile
//	@Description	Only the fields present in the body change.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Profile fields"
//	@Success		200		{object}	dto.UserResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid field"
//	@Router			/api/user/profile [patch]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.BadRequest(w)
		return
	}
	user, err := h.authService.UpdateProfile(r.Context(), pkgauth.UserID(r.Context()), userservice.ProfileUpdate{
		Name:      req.Name,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/lottoshop/docs"
	"github.com/GlebRadaev/lottoshop/internal/domain"
	"github.com/GlebRadaev/lottoshop/internal/dto"
	adminhandlers "github.com/GlebRadaev/lottoshop/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/lottoshop/internal/handlers/auth"
	contenthandlers "github.com/GlebRadaev/lottoshop/internal/handlers/content"
	feedhandlers "github.com/GlebRadaev/lottoshop/internal/handlers/feed"
	kychandlers "github.com/GlebRadaev/lottoshop/internal/handlers/kyc"
	lotteryhandlers "github.com/GlebRadaev/lottoshop/internal/handlers/lottery"
	luckyhandlers "github.com/GlebRadaev/lottoshop/internal/handlers/lucky"
	wallethandlers "github.com/GlebRadaev/lottoshop/internal/handlers/wallet"
	withdrawalhandlers "github.com/GlebRadaev/lottoshop/internal/handlers/withdrawals"
	"github.com/GlebRadaev/lottoshop/internal/service"
	"github.com/GlebRadaev/lottoshop/pkg/auth"
	"github.com/GlebRadaev/lottoshop/pkg/utils"
)

const (
	viewStorefront = "storefront"
	viewAdmin      = "admin"
)

type Handlers struct {
	AuthHandler       *authhandlers.AuthHandler
	WalletHandler     *wallethandlers.WalletHandler
	LotteryHandler    *lotteryhandlers.LotteryHandler
	WithdrawalHandler *withdrawalhandlers.WithdrawalHandler
	KycHandler        *kychandlers.KycHandler
	ContentHandler    *contenthandlers.ContentHandler
	FeedHandler       *feedhandlers.FeedHandler
	LuckyHandler      *luckyhandlers.LuckyHandler
	AdminHandler      *adminhandlers.AdminHandler

	tokens      auth.JWTServiceInterface
	corsOrigins []string
}

func New(s *service.Services, feed feedhandlers.Service, hub feedhandlers.Hub, tokens auth.JWTServiceInterface, corsOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.UserService),
		WalletHandler:     wallethandlers.New(s.WalletService),
		LotteryHandler:    lotteryhandlers.New(s.LotteryService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		KycHandler:        kychandlers.New(s.KycService),
		ContentHandler:    contenthandlers.New(s.ContentService),
		FeedHandler:       feedhandlers.New(feed, hub),
		LuckyHandler:      luckyhandlers.New(s.LuckyService),
		AdminHandler: adminhandlers.New(s.UserService, s.WalletService, s.KycService,
			s.WithdrawalService, s.ContentService, s.LotteryService),
		tokens:      tokens,
		corsOrigins: corsOrigins,
	}
}

// EntryView godoc
//
//	@Summary		Initial view for a path
//	@Description	/main opens the admin panel, every other entry path the storefront.
//	@Tags			Entry
//	@Produce		json
//	@Success		200	{object}	dto.EntryViewResponseDTO
//	@Router			/main [get]
func entryView(view string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, dto.EntryViewResponseDTO{InitialView: view})
	}
}

func isAdmin(role string) bool {
	return domain.Role(role).CanAdminister()
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.New(cors.Options{
			AllowedOrigins: h.corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			ExposedHeaders: []string{"Authorization"},
		}).Handler,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/", entryView(viewStorefront))
	r.Get("/main", entryView(viewAdmin))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Get("/draws", h.LotteryHandler.GetDraws)
		r.Get("/bundles", h.LotteryHandler.GetBundles)
		r.Get("/results", h.LotteryHandler.GetResults)
		r.Get("/results/lookup", h.LotteryHandler.LookupResult)
		r.Get("/banners", h.ContentHandler.GetBanners)
		r.Get("/winners", h.ContentHandler.GetWinners)
		r.Get("/payment-channels", h.ContentHandler.GetPaymentChannels)
		r.Get("/about", h.ContentHandler.GetAboutUs)
		r.Get("/feed", h.FeedHandler.GetFeed)
		r.Get("/feed/ws", h.FeedHandler.Subscribe)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.tokens))

			r.Route("/user", func(r chi.Router) {
				r.Get("/profile", h.AuthHandler.GetProfile)
				r.Patch("/profile", h.AuthHandler.UpdateProfile)
				r.Route("/wallet", func(r chi.Router) {
					r.Get("/", h.WalletHandler.GetWallet)
					r.Get("/deposit-quote", h.WalletHandler.DepositQuote)
					r.Post("/deposits", h.WalletHandler.Deposit)
				})
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Post("/purchases", h.LotteryHandler.Purchase)
				r.Route("/withdrawals", func(r chi.Router) {
					r.Get("/", h.WithdrawalHandler.List)
					r.Post("/", h.WithdrawalHandler.Create)
					r.Get("/quote", h.WithdrawalHandler.Quote)
				})
				r.Get("/kyc", h.KycHandler.Get)
				r.Post("/kyc", h.KycHandler.Submit)
				r.Post("/lucky-numbers", h.LuckyHandler.Suggest)
				r.Post("/support", h.ContentHandler.SubmitTicket)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole(isAdmin))

				r.Get("/stats", h.AdminHandler.Stats)
				r.Get("/users", h.AdminHandler.ListUsers)
				r.Patch("/users/{id}/status", h.AdminHandler.SetUserStatus)
				r.Put("/users/{id}/balance", h.AdminHandler.SetBalance)
				r.Get("/transactions", h.AdminHandler.ListTransactions)
				r.Get("/kyc", h.AdminHandler.ListKyc)
				r.Post("/kyc/{userID}/review", h.AdminHandler.ReviewKyc)
				r.Get("/withdrawals", h.AdminHandler.ListWithdrawals)
				r.Post("/withdrawals/{id}/process", h.AdminHandler.ProcessWithdrawal)
				r.Post("/banners", h.AdminHandler.AddBanner)
				r.Delete("/banners/{id}", h.AdminHandler.DeleteBanner)
				r.Post("/upi", h.AdminHandler.AddUpi)
				r.Put("/upi/{id}", h.AdminHandler.UpdateUpi)
				r.Delete("/upi/{id}", h.AdminHandler.DeleteUpi)
				r.Post("/qr", h.AdminHandler.AddQrCode)
				r.Put("/qr/{id}", h.AdminHandler.UpdateQrCode)
				r.Delete("/qr/{id}", h.AdminHandler.DeleteQrCode)
				r.Put("/about", h.AdminHandler.SetAboutUs)
				r.Post("/bundles", h.AdminHandler.AddBundle)
				r.Post("/results", h.AdminHandler.PublishResult)
				r.Get("/support", h.AdminHandler.ListTickets)
			})
		})
	})

	return r
}

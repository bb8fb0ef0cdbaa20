package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/pallnetwork/pallmine/docs"
	authhandlers "github.com/pallnetwork/pallmine/internal/handlers/auth"
	commissionhandlers "github.com/pallnetwork/pallmine/internal/handlers/commissions"
	mininghandlers "github.com/pallnetwork/pallmine/internal/handlers/mining"
	referralhandlers "github.com/pallnetwork/pallmine/internal/handlers/referrals"
	upgradehandlers "github.com/pallnetwork/pallmine/internal/handlers/upgrades"
	wallethandlers "github.com/pallnetwork/pallmine/internal/handlers/wallet"
	"github.com/pallnetwork/pallmine/internal/service"
	"github.com/pallnetwork/pallmine/pkg/auth"
)

type AuthHandler interface {
	Sync(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type MiningHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	GetState(w http.ResponseWriter, r *http.Request)
}

type UpgradeHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetTeam(w http.ResponseWriter, r *http.Request)
}

type CommissionHandler interface {
	Credit(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	MiningHandler     MiningHandler
	UpgradeHandler    UpgradeHandler
	ReferralHandler   ReferralHandler
	CommissionHandler CommissionHandler
	WalletHandler     WalletHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.UserService, s.ReferralService),
		MiningHandler:     mininghandlers.New(s.MiningService),
		UpgradeHandler:    upgradehandlers.New(s.UpgradeService),
		ReferralHandler:   referralhandlers.New(s.ReferralService),
		CommissionHandler: commissionhandlers.New(s.CommissionService),
		WalletHandler:     wallethandlers.New(s.WalletService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metricsMiddleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/sync", h.AuthHandler.Sync)
		r.Post("/referrals", h.ReferralHandler.Register)
		r.Post("/commissions", h.CommissionHandler.Credit)

		r.Route("/user", func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/mining", func(r chi.Router) {
				r.Get("/", h.MiningHandler.GetState)
				r.Post("/mine", h.MiningHandler.Mine)
			})
			r.Route("/upgrades", func(r chi.Router) {
				r.Post("/", h.UpgradeHandler.Purchase)
				r.Get("/", h.UpgradeHandler.GetHistory)
			})
			r.Get("/wallet", h.WalletHandler.GetWallet)
			r.Get("/team", h.ReferralHandler.GetTeam)
			r.Get("/profile", h.AuthHandler.GetProfile)
		})
	})

	return r
}

package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"fundflow/internal/adapter/realtime"
	"fundflow/internal/config/configs"
	"fundflow/internal/core/port"
	"fundflow/internal/metrics"
)

// Services bundles the usecases served over HTTP.
type Services struct {
	Accounts    port.AccountUseCase
	Campaigns   port.CampaignUseCase
	Investments port.InvestmentUseCase
	Chat        port.ChatUseCase
	Admin       port.AdminUseCase
}

// HealthFunc reports whether the backing store is reachable.
type HealthFunc func(ctx context.Context) error

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// REST routes live under /api, the websocket endpoint under /ws and the
// operational endpoints at the root.
type Handler struct {
	svc     Services
	gateway *realtime.Gateway
	metrics *metrics.Metrics
	health  HealthFunc
	cfg     configs.HTTP
	logger  *slog.Logger
	router  chi.Router
}

// Option configures optional Handler dependencies.
type Option func(*Handler)

// WithGateway serves the realtime channel on /ws.
func WithGateway(g *realtime.Gateway) Option {
	return func(h *Handler) { h.gateway = g }
}

// WithMetrics records request metrics and serves them on /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithHealth sets the check behind /healthz.
func WithHealth(fn HealthFunc) Option {
	return func(h *Handler) { h.health = fn }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, cfg configs.HTTP, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, cfg: cfg, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.logRequests, middleware.Recoverer)
	if h.metrics != nil {
		r.Use(h.metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.handleHealth)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}
	if h.gateway != nil {
		r.Get("/ws", h.handleWebsocket)
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimit, cfg.RateWindow))
		}
		if cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(cfg.RequestTimeout))
		}

		r.Get("/stats", h.handlePublicStats)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.handleRegister)
			r.Post("/login", h.handleLogin)
			r.Group(func(r chi.Router) {
				r.Use(h.authenticate)
				r.Get("/me", h.handleMe)
				r.Put("/profile", h.handleUpdateProfile)
			})
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Get("/user/{userId}", h.handleCampaignsByCreator)
			r.Get("/stats/{userId}", h.handleCreatorStats)
			r.Get("/{id}", h.handleGetCampaign)
			r.Group(func(r chi.Router) {
				r.Use(h.authenticate)
				r.Post("/", h.handleCreateCampaign)
				r.Put("/{id}", h.handleUpdateCampaign)
				r.Delete("/{id}", h.handleDeleteCampaign)
				r.Post("/{id}/updates", h.handleAddCampaignUpdate)
			})
		})

		r.Route("/investments", func(r chi.Router) {
			r.Use(h.authenticate)
			r.Post("/create-payment-intent", h.handleCreatePaymentIntent)
			r.Post("/confirm-payment", h.handleConfirmPayment)
			r.Get("/user/{userId}", h.handleInvestorInvestments)
			r.Get("/", h.handleAllInvestments)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Use(h.authenticate)
			r.Get("/", h.handleListConversations)
			r.Post("/create", h.handleCreateConversation)
			r.Get("/{id}", h.handleGetConversation)
			r.Get("/{id}/messages", h.handleListMessages)
			r.Post("/{id}/messages", h.handleSendMessage)
			r.Put("/{id}/read", h.handleMarkRead)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.authenticate)
			r.Get("/stats", h.handleAdminOverview)
			r.Get("/users", h.handleAdminUsers)
			r.Put("/users/{id}/status", h.handleSetUserStatus)
			r.Get("/campaigns", h.handleAdminCampaigns)
			r.Put("/campaigns/{id}/status", h.handleSetCampaignStatus)
			r.Get("/investments/export", h.handleExportInvestments)
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health(r.Context()); err != nil {
			h.logger.Error("health check failed", slog.Any("error", err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

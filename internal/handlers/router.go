package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/daskplus/portal/internal/middleware"
)

// Router assembles the API routes with their middleware
func (h *Handler) Router(authMW *middleware.Auth) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recover(h.log))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Logger(h.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8080", "https://*.daskplus.com.tr"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimit(h.cfg.RateLimitPerSecond, h.cfg.RateLimitBurst))

	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.instrumented("login", h.Login))

		r.Group(func(r chi.Router) {
			r.Use(authMW.RequireAuth)

			r.Post("/logout", h.instrumented("logout", h.Logout))
			r.Get("/customer/{customerID}", h.instrumented("customer", h.Customer))
			r.Get("/dashboard/stats/{customerID}", h.instrumented("dashboard_stats", h.DashboardStats))
			r.Get("/policy-details/{customerID}", h.instrumented("policy_details", h.PolicyDetails))
			r.Get("/customer-policies/{customerID}", h.instrumented("customer_policies", h.CustomerPolicies))
			r.Get("/payment-history/{customerID}", h.instrumented("payment_history", h.PaymentHistory))
			r.Get("/claims/{customerID}", h.instrumented("claims", h.Claims))
			r.Post("/claims", h.instrumented("submit_claim", h.SubmitClaim))
		})
	})

	return r
}

// Health reports service liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}

func (h *Handler) instrumented(route string, fn http.HandlerFunc) http.HandlerFunc {
	wrapped := h.metrics.Instrument(route, fn)
	return wrapped.ServeHTTP
}

// Package handlers provides HTTP request handlers
package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/daskplus/portal/internal/cache"
	"github.com/daskplus/portal/internal/config"
	"github.com/daskplus/portal/internal/middleware"
	"github.com/daskplus/portal/internal/models"
	"github.com/daskplus/portal/internal/obs"
	"github.com/daskplus/portal/internal/services/auth"
	"github.com/daskplus/portal/internal/services/stats"
	"github.com/daskplus/portal/internal/storage"
)

const dateLayout = "2006-01-02"

// Handler contains all HTTP handlers and dependencies
type Handler struct {
	cfg          *config.Config
	log          zerolog.Logger
	authService  *auth.Service
	statsService *stats.Service
	customerRepo *storage.CustomerRepository
	policyRepo   *storage.PolicyRepository
	paymentRepo  *storage.PaymentRepository
	claimRepo    *storage.ClaimRepository
	cache        *cache.Cache // nil when caching is disabled
	metrics      *obs.Metrics
}

// New creates a new handler with all dependencies
func New(
	cfg *config.Config,
	log zerolog.Logger,
	authService *auth.Service,
	statsService *stats.Service,
	customerRepo *storage.CustomerRepository,
	policyRepo *storage.PolicyRepository,
	paymentRepo *storage.PaymentRepository,
	claimRepo *storage.ClaimRepository,
	c *cache.Cache,
	metrics *obs.Metrics,
) *Handler {
	return &Handler{
		cfg:          cfg,
		log:          log,
		authService:  authService,
		statsService: statsService,
		customerRepo: customerRepo,
		policyRepo:   policyRepo,
		paymentRepo:  paymentRepo,
		claimRepo:    claimRepo,
		cache:        c,
		metrics:      metrics,
	}
}

// writeJSON serializes a success payload
func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError serializes an error envelope
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// decodeJSON strictly decodes a request body into dest
func (h *Handler) decodeJSON(r *http.Request, dest interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected trailing data")
	}
	return nil
}

// requireOwnCustomer parses the path customer ID and checks it matches the
// authenticated customer. Cross-customer access gets a 403.
func (h *Handler) requireOwnCustomer(w http.ResponseWriter, r *http.Request) (*models.Customer, bool) {
	customer := middleware.GetCustomer(r)
	if customer == nil {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}

	raw := chi.URLParam(r, "customerID")
	id, err := uuid.Parse(raw)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid customer id")
		return nil, false
	}
	if id != customer.ID {
		h.writeError(w, http.StatusForbidden, "forbidden")
		return nil, false
	}
	return customer, true
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

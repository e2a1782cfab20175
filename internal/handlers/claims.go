package handlers

import (
	"net/http"
	"time"

	"github.com/daskplus/portal/internal/ids"
	"github.com/daskplus/portal/internal/middleware"
	"github.com/daskplus/portal/internal/models"
)

// Claims lists the customer's damage claims
func (h *Handler) Claims(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.requireOwnCustomer(w, r)
	if !ok {
		return
	}

	claims, err := h.claimRepo.ListByCustomer(customer.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list claims")
		h.writeError(w, http.StatusInternalServerError, "failed to load claims")
		return
	}

	items := make([]map[string]interface{}, 0, len(claims))
	for _, c := range claims {
		items = append(items, map[string]interface{}{
			"claim_ref":     c.ClaimRef,
			"policy_number": c.PolicyNumber,
			"incident_date": formatDate(c.IncidentDate),
			"description":   c.Description,
			"status":        c.Status,
			"created_at":    formatDate(c.CreatedAt),
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"claims":  items,
		"total":   len(items),
	})
}

type submitClaimRequest struct {
	PolicyNumber string `json:"policy_number"`
	IncidentDate string `json:"incident_date"`
	Description  string `json:"description"`
}

// SubmitClaim files a new damage claim against one of the customer's policies
func (h *Handler) SubmitClaim(w http.ResponseWriter, r *http.Request) {
	customer := middleware.GetCustomer(r)
	if customer == nil {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req submitClaimRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PolicyNumber == "" || req.Description == "" {
		h.writeError(w, http.StatusBadRequest, "policy_number and description required")
		return
	}

	incident, err := time.Parse(dateLayout, req.IncidentDate)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid incident_date, expected YYYY-MM-DD")
		return
	}

	policy, err := h.policyRepo.GetByNumber(req.PolicyNumber)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load policy")
		h.writeError(w, http.StatusInternalServerError, "failed to submit claim")
		return
	}
	if policy == nil || policy.CustomerID != customer.ID {
		h.writeError(w, http.StatusNotFound, "policy not found")
		return
	}

	claim := &models.Claim{
		ClaimRef:     ids.ClaimRef(),
		CustomerID:   customer.ID,
		PolicyNumber: policy.PolicyNumber,
		IncidentDate: incident,
		Description:  req.Description,
		Status:       models.ClaimInReview,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.claimRepo.Create(claim); err != nil {
		h.log.Error().Err(err).Msg("failed to create claim")
		h.writeError(w, http.StatusInternalServerError, "failed to submit claim")
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"claim": map[string]interface{}{
			"claim_ref":     claim.ClaimRef,
			"policy_number": claim.PolicyNumber,
			"incident_date": formatDate(claim.IncidentDate),
			"status":        claim.Status,
			"created_at":    formatDate(claim.CreatedAt),
		},
	})
}

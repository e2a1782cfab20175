package handlers

import (
	"net/http"

	"github.com/daskplus/portal/internal/models"
)

const paymentHistoryLimit = 20

// PaymentHistory lists the customer's premium payments, newest first
func (h *Handler) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.requireOwnCustomer(w, r)
	if !ok {
		return
	}

	payments, err := h.paymentRepo.ListByCustomer(customer.ID, paymentHistoryLimit)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list payments")
		h.writeError(w, http.StatusInternalServerError, "failed to load payments")
		return
	}

	totalAmount, err := h.paymentRepo.CompletedTotal(customer.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to sum payments")
		h.writeError(w, http.StatusInternalServerError, "failed to load payments")
		return
	}

	items := make([]map[string]interface{}, 0, len(payments))
	for _, p := range payments {
		items = append(items, map[string]interface{}{
			"payment_id":       p.PaymentID,
			"policy_number":    p.PolicyNumber,
			"building_address": models.TruncateAddress(p.BuildingAddress, 50),
			"amount":           p.Amount,
			"payment_date":     formatDate(p.PaymentDate),
			"status":           p.Status,
			"payment_method":   p.PaymentMethod,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"payments":     items,
		"total":        len(items),
		"total_amount": totalAmount,
	})
}

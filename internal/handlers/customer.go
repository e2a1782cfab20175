package handlers

import (
	"net/http"
)

// Customer returns the authenticated customer's profile
func (h *Handler) Customer(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.requireOwnCustomer(w, r)
	if !ok {
		return
	}

	properties, err := h.customerRepo.PropertyCount(customer.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to count properties")
		h.writeError(w, http.StatusInternalServerError, "failed to load customer")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"customer": map[string]interface{}{
			"customer_id":       customer.ID.String(),
			"full_name":         customer.FullName,
			"first_name":        customer.FirstName(),
			"last_name":         customer.LastName(),
			"email":             customer.Email,
			"phone":             customer.Phone,
			"tc_number":         customer.MaskedTCNumber(),
			"avatar_url":        customer.AvatarURL,
			"status":            customer.Status,
			"total_properties":  properties,
			"registration_date": formatDate(customer.RegistrationDate),
			"last_login":        formatDate(customer.LastLogin),
			"customer_score":    customer.CustomerScore,
		},
	})
}

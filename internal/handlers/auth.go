package handlers

import (
	"errors"
	"net/http"

	"github.com/mileusna/useragent"

	"github.com/daskplus/portal/internal/middleware"
	"github.com/daskplus/portal/internal/services/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a customer and returns a bearer token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		h.writeError(w, http.StatusBadRequest, "email and password required")
		return
	}

	result, err := h.authService.Login(auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Device:   deviceLabel(r.UserAgent()),
		IP:       middleware.ClientIP(r),
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.metrics.ObserveLogin("rejected")
			h.writeError(w, http.StatusUnauthorized, "E-posta veya şifre hatalı")
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		h.metrics.ObserveLogin("error")
		h.writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	h.metrics.ObserveLogin("success")
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   result.Token,
		"customer": map[string]interface{}{
			"customer_id": result.Customer.ID.String(),
			"email":       result.Customer.Email,
			"name":        result.Customer.FirstName(),
			"full_name":   result.Customer.FullName,
			"avatar_url":  result.Customer.AvatarURL,
			"status":      result.Customer.Status,
		},
	})
}

// Logout invalidates the customer's sessions
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	customer := middleware.GetCustomer(r)
	if customer == nil {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.authService.Logout(customer.ID); err != nil {
		h.log.Error().Err(err).Msg("logout failed")
		h.writeError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// deviceLabel condenses a User-Agent header into a short device description
func deviceLabel(uaHeader string) string {
	if uaHeader == "" {
		return "unknown"
	}
	ua := useragent.Parse(uaHeader)
	label := ua.Name
	if ua.OS != "" {
		label += " / " + ua.OS
	}
	if label == "" {
		return "unknown"
	}
	return label
}

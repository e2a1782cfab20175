package handlers

import (
	"net/http"

	"github.com/daskplus/portal/internal/cache"
	"github.com/daskplus/portal/internal/models"
)

// DashboardStats returns the customer's aggregated dashboard numbers.
// Results are cached for a short TTL when Redis is configured.
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.requireOwnCustomer(w, r)
	if !ok {
		return
	}

	var s *models.DashboardStats
	if h.cache != nil {
		var cached models.DashboardStats
		computed := false
		err := h.cache.GetOrSet(r.Context(), cache.StatsKey(customer.ID.String()), &cached, h.cfg.StatsCacheTTL, func() (interface{}, error) {
			computed = true
			return h.statsService.ForCustomer(customer)
		})
		if err == nil {
			if computed {
				h.metrics.ObserveCache("miss")
			} else {
				h.metrics.ObserveCache("hit")
			}
			s = &cached
		} else {
			h.log.Warn().Err(err).Msg("stats cache unavailable")
		}
	}

	if s == nil {
		fresh, err := h.statsService.ForCustomer(customer)
		if err != nil {
			h.log.Error().Err(err).Msg("failed to compute stats")
			h.writeError(w, http.StatusInternalServerError, "failed to load stats")
			return
		}
		s = fresh
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats": map[string]interface{}{
			"customer_id":           s.CustomerID,
			"customer_name":         s.CustomerName,
			"total_policies":        s.TotalPolicies,
			"active_policies":       s.ActivePolicies,
			"passive_policies":      s.PassivePolicies,
			"total_coverage":        s.TotalCoverage,
			"monthly_premium_total": s.MonthlyPremiumTotal,
			"next_payment_date":     formatDate(s.NextPaymentDate),
			"claims_history":        s.ClaimsHistory,
			"claims_pending":        s.ClaimsPending,
			"referral_code":         s.ReferralCode,
			"referral_earnings":     s.ReferralEarnings,
			"customer_score":        s.CustomerScore,
			"member_since":          formatDate(s.MemberSince),
			"avg_risk_score":        s.AvgRiskScore,
		},
	})
}

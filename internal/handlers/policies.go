package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/daskplus/portal/internal/middleware"
	"github.com/daskplus/portal/internal/models"
)

// PolicyDetails returns the full detail payload for one policy.
// The path key is either a BLD_-prefixed building ID or the customer ID,
// in which case the customer's first policy is returned.
func (h *Handler) PolicyDetails(w http.ResponseWriter, r *http.Request) {
	customer := middleware.GetCustomer(r)
	if customer == nil {
		h.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	key := chi.URLParam(r, "customerID")

	var policy *models.Policy
	var err error
	if strings.HasPrefix(key, "BLD_") {
		policy, err = h.policyRepo.GetByBuildingID(key)
	} else {
		id, parseErr := uuid.Parse(key)
		if parseErr != nil {
			h.writeError(w, http.StatusBadRequest, "invalid customer id")
			return
		}
		if id != customer.ID {
			h.writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		policy, err = h.policyRepo.FirstForCustomer(id)
	}
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load policy")
		h.writeError(w, http.StatusInternalServerError, "failed to load policy")
		return
	}
	if policy == nil {
		h.writeError(w, http.StatusNotFound, "policy not found")
		return
	}
	if policy.CustomerID != customer.ID {
		h.writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	all, err := h.policyRepo.ListByCustomer(customer.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list policies")
		h.writeError(w, http.StatusInternalServerError, "failed to load policy")
		return
	}

	summaries := make([]map[string]interface{}, 0, len(all))
	for _, p := range all {
		summaries = append(summaries, map[string]interface{}{
			"policy_number": p.PolicyNumber,
			"address":       p.Building.Address,
			"status":        p.Status,
			"coverage":      p.MaxCoverage,
			"premium":       p.MonthlyPremiumTL,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"policy": map[string]interface{}{
			"policy_number":      policy.PolicyNumber,
			"package_type":       policy.Package,
			"policy_start_date":  formatDate(policy.StartDate),
			"policy_end_date":    formatDate(policy.EndDate),
			"policy_status":      policy.Status,
			"max_coverage":       policy.MaxCoverage,
			"monthly_premium_tl": policy.MonthlyPremiumTL,
			"annual_premium_tl":  policy.AnnualPremiumTL,
			"building_info": map[string]interface{}{
				"building_id":       policy.Building.BuildingID,
				"address":           policy.Building.Address,
				"district":          policy.Building.District,
				"city":              policy.Building.City,
				"latitude":          policy.Building.Latitude,
				"longitude":         policy.Building.Longitude,
				"construction_year": policy.Building.ConstructionYear,
				"building_age":      policy.Building.Age(),
				"structure_type":    policy.Building.StructureType,
				"floors":            policy.Building.Floors,
				"units":             policy.Building.Units,
				"building_area_m2":  policy.Building.AreaM2,
				"residents":         policy.Building.Residents,
				"commercial_units":  policy.Building.CommercialUnits,
			},
			"risk_assessment": map[string]interface{}{
				"risk_score":           policy.Risk.RiskScore,
				"quality_score":        policy.Risk.QualityScore,
				"soil_type":            policy.Risk.SoilType,
				"soil_amplification":   policy.Risk.SoilAmplification,
				"liquefaction_risk":    policy.Risk.LiquefactionRisk,
				"distance_to_fault_km": policy.Risk.DistanceToFaultKm,
				"nearest_fault":        policy.Risk.NearestFault,
				"risk_level":           policy.Risk.Level(),
			},
			"coverage": map[string]interface{}{
				"package":            policy.Package,
				"insurance_value_tl": policy.InsuranceValueTL,
				"max_coverage_tl":    policy.MaxCoverage,
				"deductible_tl":      policy.Deductible(),
				"annual_premium_tl":  policy.AnnualPremiumTL,
				"monthly_premium_tl": policy.MonthlyPremiumTL,
			},
			"policy_dates": map[string]interface{}{
				"start_date":   formatDate(policy.StartDate),
				"end_date":     formatDate(policy.EndDate),
				"status":       policy.Status,
				"renewal_date": formatDate(policy.RenewalDate()),
			},
			"coverage_details": map[string]interface{}{
				"structural_damage":  "Tam Kapsama",
				"contents":           "Istegine Bagli",
				"additional_living":  "Istegine Bagli",
				"liability":          "Istegine Bagli",
				"parametric_trigger": "48 Saat",
			},
			"all_policies_summary": summaries,
		},
	})
}

// CustomerPolicies lists all of the customer's policies
func (h *Handler) CustomerPolicies(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.requireOwnCustomer(w, r)
	if !ok {
		return
	}

	policies, err := h.policyRepo.ListByCustomer(customer.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list policies")
		h.writeError(w, http.StatusInternalServerError, "failed to load policies")
		return
	}

	items := make([]map[string]interface{}, 0, len(policies))
	for _, p := range policies {
		s := p.Summary()
		items = append(items, map[string]interface{}{
			"policy_number":   s.PolicyNumber,
			"address":         s.Address,
			"status":          s.Status,
			"start_date":      formatDate(s.StartDate),
			"end_date":        formatDate(s.EndDate),
			"coverage":        s.Coverage,
			"premium_monthly": s.PremiumMonthly,
			"risk_score":      s.RiskScore,
			"building_id":     s.BuildingID,
			"package_type":    s.Package,
		})
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"policies":    items,
		"total":       len(items),
		"customer_id": customer.ID.String(),
	})
}

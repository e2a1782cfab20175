package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats aggregates a customer's portfolio for the overview section
type DashboardStats struct {
	CustomerID          string          `json:"customer_id"`
	CustomerName        string          `json:"customer_name"`
	TotalPolicies       int             `json:"total_policies"`
	ActivePolicies      int             `json:"active_policies"`
	PassivePolicies     int             `json:"passive_policies"`
	TotalCoverage       int64           `json:"total_coverage"`
	MonthlyPremiumTotal decimal.Decimal `json:"monthly_premium_total"`
	NextPaymentDate     time.Time       `json:"next_payment_date"`
	ClaimsHistory       int             `json:"claims_history"`
	ClaimsPending       int             `json:"claims_pending"`
	ReferralCode        string          `json:"referral_code"`
	ReferralEarnings    decimal.Decimal `json:"referral_earnings"`
	CustomerScore       int             `json:"customer_score"`
	MemberSince         time.Time       `json:"member_since"`
	AvgRiskScore        float64         `json:"avg_risk_score"`
}

// ScoreProgress returns the loyalty progress as a 0-100 percentage
func (s *DashboardStats) ScoreProgress() float64 {
	pct := float64(s.CustomerScore) / float64(MaxCustomerScore) * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// DaysToNextPayment counts whole days until the next payment is due
func (s *DashboardStats) DaysToNextPayment(now time.Time) int {
	d := int(s.NextPaymentDate.Sub(now).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

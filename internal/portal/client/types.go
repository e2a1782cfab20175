package client

import (
	"github.com/shopspring/decimal"
)

// Customer is the profile payload
type Customer struct {
	CustomerID       string `json:"customer_id"`
	FullName         string `json:"full_name"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	TCNumber         string `json:"tc_number"`
	AvatarURL        string `json:"avatar_url"`
	Status           string `json:"status"`
	TotalProperties  int    `json:"total_properties"`
	RegistrationDate string `json:"registration_date"`
	LastLogin        string `json:"last_login"`
	CustomerScore    int    `json:"customer_score"`
}

// Stats is the dashboard aggregates payload
type Stats struct {
	CustomerID          string          `json:"customer_id"`
	CustomerName        string          `json:"customer_name"`
	TotalPolicies       int             `json:"total_policies"`
	ActivePolicies      int             `json:"active_policies"`
	PassivePolicies     int             `json:"passive_policies"`
	TotalCoverage       int64           `json:"total_coverage"`
	MonthlyPremiumTotal decimal.Decimal `json:"monthly_premium_total"`
	NextPaymentDate     string          `json:"next_payment_date"`
	ClaimsHistory       int             `json:"claims_history"`
	ClaimsPending       int             `json:"claims_pending"`
	ReferralCode        string          `json:"referral_code"`
	ReferralEarnings    decimal.Decimal `json:"referral_earnings"`
	CustomerScore       int             `json:"customer_score"`
	MemberSince         string          `json:"member_since"`
	AvgRiskScore        float64         `json:"avg_risk_score"`
}

// BuildingInfo is the insured property payload
type BuildingInfo struct {
	BuildingID       string  `json:"building_id"`
	Address          string  `json:"address"`
	District         string  `json:"district"`
	City             string  `json:"city"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	ConstructionYear int     `json:"construction_year"`
	BuildingAge      int     `json:"building_age"`
	StructureType    string  `json:"structure_type"`
	Floors           int     `json:"floors"`
	Units            int     `json:"units"`
	AreaM2           float64 `json:"building_area_m2"`
	Residents        int     `json:"residents"`
	CommercialUnits  int     `json:"commercial_units"`
}

// RiskAssessment is the seismic risk payload
type RiskAssessment struct {
	RiskScore         float64 `json:"risk_score"`
	QualityScore      float64 `json:"quality_score"`
	SoilType          string  `json:"soil_type"`
	SoilAmplification float64 `json:"soil_amplification"`
	LiquefactionRisk  float64 `json:"liquefaction_risk"`
	DistanceToFaultKm float64 `json:"distance_to_fault_km"`
	NearestFault      string  `json:"nearest_fault"`
	RiskLevel         string  `json:"risk_level"`
}

// Coverage is the policy's financial terms payload
type Coverage struct {
	Package          string          `json:"package"`
	InsuranceValueTL decimal.Decimal `json:"insurance_value_tl"`
	MaxCoverageTL    int64           `json:"max_coverage_tl"`
	DeductibleTL     decimal.Decimal `json:"deductible_tl"`
	AnnualPremiumTL  decimal.Decimal `json:"annual_premium_tl"`
	MonthlyPremiumTL decimal.Decimal `json:"monthly_premium_tl"`
}

// PolicyDates groups the policy's lifecycle dates
type PolicyDates struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
	RenewalDate string `json:"renewal_date"`
}

// PolicyOverview is one row of the all-policies summary
type PolicyOverview struct {
	PolicyNumber string          `json:"policy_number"`
	Address      string          `json:"address"`
	Status       string          `json:"status"`
	Coverage     int64           `json:"coverage"`
	Premium      decimal.Decimal `json:"premium"`
}

// PolicyDetails is the full policy payload
type PolicyDetails struct {
	PolicyNumber     string            `json:"policy_number"`
	PackageType      string            `json:"package_type"`
	StartDate        string            `json:"policy_start_date"`
	EndDate          string            `json:"policy_end_date"`
	Status           string            `json:"policy_status"`
	MaxCoverage      int64             `json:"max_coverage"`
	MonthlyPremiumTL decimal.Decimal   `json:"monthly_premium_tl"`
	AnnualPremiumTL  decimal.Decimal   `json:"annual_premium_tl"`
	Building         BuildingInfo      `json:"building_info"`
	Risk             RiskAssessment    `json:"risk_assessment"`
	Coverage         Coverage          `json:"coverage"`
	Dates            PolicyDates       `json:"policy_dates"`
	CoverageDetails  map[string]string `json:"coverage_details"`
	AllPolicies      []PolicyOverview  `json:"all_policies_summary"`
}

// PolicySummary is one row of the customer's policy list
type PolicySummary struct {
	PolicyNumber   string          `json:"policy_number"`
	Address        string          `json:"address"`
	Status         string          `json:"status"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	Coverage       int64           `json:"coverage"`
	PremiumMonthly decimal.Decimal `json:"premium_monthly"`
	RiskScore      float64         `json:"risk_score"`
	BuildingID     string          `json:"building_id"`
	PackageType    string          `json:"package_type"`
}

// Payment is one row of the payment history
type Payment struct {
	PaymentID       string          `json:"payment_id"`
	PolicyNumber    string          `json:"policy_number"`
	BuildingAddress string          `json:"building_address"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     string          `json:"payment_date"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"payment_method"`
}

// Claim is one row of the claim history
type Claim struct {
	ClaimRef     string `json:"claim_ref"`
	PolicyNumber string `json:"policy_number"`
	IncidentDate string `json:"incident_date"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PackageType categorizes earthquake policies by coverage package
type PackageType string

const (
	PackageTemel    PackageType = "Temel"
	PackageStandart PackageType = "Standart"
	PackagePremium  PackageType = "Premium"
)

// BaseCoverage returns the insured base amount for the package, in TL
func (p PackageType) BaseCoverage() int64 {
	switch p {
	case PackageTemel:
		return 250_000
	case PackageStandart:
		return 750_000
	case PackagePremium:
		return 1_500_000
	default:
		return 250_000
	}
}

// RiskLevel bands a risk score for display.
// Above 0.7 is high, above 0.4 medium, otherwise low.
func RiskLevel(score float64) string {
	switch {
	case score > 0.7:
		return "Yuksek"
	case score > 0.4:
		return "Orta"
	default:
		return "Dusuk"
	}
}

// RiskBand is the traffic-light classification of a risk score
type RiskBand string

const (
	RiskBandLow    RiskBand = "low"
	RiskBandMedium RiskBand = "medium"
	RiskBandHigh   RiskBand = "high"
)

// BandForRisk maps a risk score onto a band.
// Below 0.3 low, below 0.6 medium, otherwise high.
func BandForRisk(score float64) RiskBand {
	switch {
	case score < 0.3:
		return RiskBandLow
	case score < 0.6:
		return RiskBandMedium
	default:
		return RiskBandHigh
	}
}

// Color returns the hex color for the band's risk indicator
func (b RiskBand) Color() string {
	switch b {
	case RiskBandLow:
		return "#10b981"
	case RiskBandMedium:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

// Building holds the insured property attributes
type Building struct {
	BuildingID       string  `json:"building_id"`
	Address          string  `json:"address"`
	District         string  `json:"district"`
	City             string  `json:"city"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	ConstructionYear int     `json:"construction_year"`
	StructureType    string  `json:"structure_type"`
	Floors           int     `json:"floors"`
	Units            int     `json:"units"`
	AreaM2           float64 `json:"building_area_m2"`
	Residents        int     `json:"residents"`
	CommercialUnits  int     `json:"commercial_units"`
}

// Age returns the building age in years
func (b *Building) Age() int {
	age := time.Now().Year() - b.ConstructionYear
	if age < 0 {
		return 0
	}
	return age
}

// RiskAssessment carries the seismic risk evaluation of a building
type RiskAssessment struct {
	RiskScore         float64 `json:"risk_score"`
	QualityScore      float64 `json:"quality_score"`
	SoilType          string  `json:"soil_type"`
	SoilAmplification float64 `json:"soil_amplification"`
	LiquefactionRisk  float64 `json:"liquefaction_risk"`
	DistanceToFaultKm float64 `json:"distance_to_fault_km"`
	NearestFault      string  `json:"nearest_fault"`
}

// Level returns the display band of the risk score
func (r *RiskAssessment) Level() string {
	return RiskLevel(r.RiskScore)
}

// Policy is an earthquake insurance policy bound to a building
type Policy struct {
	PolicyNumber     string          `json:"policy_number"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	Package          PackageType     `json:"package_type"`
	Status           string          `json:"policy_status"`
	StartDate        time.Time       `json:"policy_start_date"`
	EndDate          time.Time       `json:"policy_end_date"`
	MaxCoverage      int64           `json:"max_coverage"`
	InsuranceValueTL decimal.Decimal `json:"insurance_value_tl"`
	AnnualPremiumTL  decimal.Decimal `json:"annual_premium_tl"`
	MonthlyPremiumTL decimal.Decimal `json:"monthly_premium_tl"`
	Building         Building        `json:"building_info"`
	Risk             RiskAssessment  `json:"risk_assessment"`
}

// IsActive reports whether the policy is currently in force
func (p *Policy) IsActive() bool {
	return p.Status == "Aktif"
}

// RenewalDate is 30 days before the policy end date
func (p *Policy) RenewalDate() time.Time {
	return p.EndDate.AddDate(0, 0, -30)
}

// Deductible is 2% of the insured value
func (p *Policy) Deductible() decimal.Decimal {
	return p.InsuranceValueTL.Mul(decimal.NewFromFloat(0.02)).Round(2)
}

// Summary condenses the policy for list views
func (p *Policy) Summary() PolicySummary {
	return PolicySummary{
		PolicyNumber:   p.PolicyNumber,
		Address:        p.Building.Address,
		Status:         p.Status,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Coverage:       p.MaxCoverage,
		PremiumMonthly: p.MonthlyPremiumTL,
		RiskScore:      p.Risk.RiskScore,
		BuildingID:     p.Building.BuildingID,
		Package:        p.Package,
	}
}

// PolicySummary is the compact policy shape used in lists
type PolicySummary struct {
	PolicyNumber   string          `json:"policy_number"`
	Address        string          `json:"address"`
	Status         string          `json:"status"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	Coverage       int64           `json:"coverage"`
	PremiumMonthly decimal.Decimal `json:"premium_monthly"`
	RiskScore      float64         `json:"risk_score"`
	BuildingID     string          `json:"building_id"`
	Package        PackageType     `json:"package_type"`
}

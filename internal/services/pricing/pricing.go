// Package pricing computes risk-adjusted earthquake premiums
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/daskplus/portal/internal/models"
)

// BaseRate is the annual premium rate applied to all packages
var BaseRate = decimal.NewFromFloat(0.0100)

// Quote is the result of a premium calculation
type Quote struct {
	Package          models.PackageType `json:"package_type"`
	InsuranceValueTL decimal.Decimal    `json:"insurance_value_tl"`
	AnnualPremiumTL  decimal.Decimal    `json:"annual_premium_tl"`
	MonthlyPremiumTL decimal.Decimal    `json:"monthly_premium_tl"`
	DeductibleTL     decimal.Decimal    `json:"deductible_tl"`
	RiskMultiplier   decimal.Decimal    `json:"risk_multiplier"`
	RiskLevel        string             `json:"risk_level"`
}

// RiskMultiplier maps a risk score onto the package's premium multiplier.
// Basic packages pay more per unit of risk; premium packages are clamped lower.
// Temel spans 1.5-3.0x, Standart 0.75-2.5x, Premium 0.75-2.0x.
func RiskMultiplier(pkg models.PackageType, riskScore float64) decimal.Decimal {
	var base, span, lo, hi float64
	switch pkg {
	case models.PackageTemel:
		base, span, lo, hi = 1.5, 1.5, 1.5, 3.0
	case models.PackageStandart:
		base, span, lo, hi = 0.75, 1.75, 0.75, 2.5
	default:
		base, span, lo, hi = 0.75, 1.25, 0.75, 2.0
	}

	m := base + riskScore*span
	if m < lo {
		m = lo
	}
	if m > hi {
		m = hi
	}
	return decimal.NewFromFloat(m).Round(4)
}

// Premium computes the annual and monthly premium for a package and risk score
func Premium(pkg models.PackageType, riskScore float64) Quote {
	value := decimal.NewFromInt(pkg.BaseCoverage())
	mult := RiskMultiplier(pkg, riskScore)

	annual := value.Mul(BaseRate).Mul(mult).Round(2)
	monthly := annual.Div(decimal.NewFromInt(12)).Round(2)

	return Quote{
		Package:          pkg,
		InsuranceValueTL: value,
		AnnualPremiumTL:  annual,
		MonthlyPremiumTL: monthly,
		DeductibleTL:     value.Mul(decimal.NewFromFloat(0.02)).Round(2),
		RiskMultiplier:   mult,
		RiskLevel:        models.RiskLevel(riskScore),
	}
}

// CityRiskFactor carries the simplified regional multipliers used by the
// quote preview when no building-level assessment exists yet.
var CityRiskFactor = map[string]float64{
	"İstanbul": 1.8,
	"İzmir":    1.5,
	"Ankara":   1.0,
	"Bursa":    1.3,
	"Tokat":    1.2,
}

// RegionalFactor returns the city multiplier, defaulting to 1.0
func RegionalFactor(city string) float64 {
	if f, ok := CityRiskFactor[city]; ok {
		return f
	}
	return 1.0
}

package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/daskplus/portal/internal/models"
)

func TestRiskMultiplierRanges(t *testing.T) {
	tests := []struct {
		name string
		pkg  models.PackageType
		risk float64
		want string
	}{
		{"Temel at zero risk", models.PackageTemel, 0, "1.5"},
		{"Temel at full risk", models.PackageTemel, 1, "3"},
		{"Temel mid risk", models.PackageTemel, 0.5, "2.25"},
		{"Standart at zero risk", models.PackageStandart, 0, "0.75"},
		{"Standart at full risk", models.PackageStandart, 1, "2.5"},
		{"Premium at zero risk", models.PackagePremium, 0, "0.75"},
		{"Premium at full risk", models.PackagePremium, 1, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, _ := decimal.NewFromString(tt.want)
			if got := RiskMultiplier(tt.pkg, tt.risk); !got.Equal(want) {
				t.Errorf("RiskMultiplier(%s, %v) = %s, want %s", tt.pkg, tt.risk, got, want)
			}
		})
	}
}

func TestPremiumComputation(t *testing.T) {
	// Standart, risk 0.4: multiplier 0.75 + 0.4*1.75 = 1.45
	// annual = 750000 * 0.01 * 1.45 = 10875
	q := Premium(models.PackageStandart, 0.4)

	wantAnnual := decimal.NewFromInt(10875)
	if !q.AnnualPremiumTL.Equal(wantAnnual) {
		t.Errorf("annual premium = %s, want %s", q.AnnualPremiumTL, wantAnnual)
	}

	wantMonthly := decimal.NewFromFloat(906.25)
	if !q.MonthlyPremiumTL.Equal(wantMonthly) {
		t.Errorf("monthly premium = %s, want %s", q.MonthlyPremiumTL, wantMonthly)
	}

	wantDeductible := decimal.NewFromInt(15000)
	if !q.DeductibleTL.Equal(wantDeductible) {
		t.Errorf("deductible = %s, want %s", q.DeductibleTL, wantDeductible)
	}

	if q.RiskLevel != "Dusuk" {
		t.Errorf("risk level = %s, want Dusuk", q.RiskLevel)
	}
}

func TestRegionalFactor(t *testing.T) {
	if got := RegionalFactor("İstanbul"); got != 1.8 {
		t.Errorf("İstanbul factor = %v, want 1.8", got)
	}
	if got := RegionalFactor("Sivas"); got != 1.0 {
		t.Errorf("unknown city factor = %v, want 1.0", got)
	}
}

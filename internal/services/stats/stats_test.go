package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/daskplus/portal/internal/ids"
	"github.com/daskplus/portal/internal/models"
	"github.com/daskplus/portal/internal/services/pricing"
	"github.com/daskplus/portal/internal/storage"
)

func seedPortfolio(t *testing.T) (*Service, *models.Customer) {
	t.Helper()

	db, err := storage.New(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	customerRepo := storage.NewCustomerRepository(db)
	policyRepo := storage.NewPolicyRepository(db)
	claimRepo := storage.NewClaimRepository(db)

	customer := models.NewCustomer("Mehmet Kaya", "mehmet@example.com", "x")
	customer.CustomerScore = 280
	if err := customerRepo.Create(customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	specs := []struct {
		buildingID string
		pkg        models.PackageType
		status     string
		risk       float64
	}{
		{"BLD_000201", models.PackageStandart, "Aktif", 0.52},
		{"BLD_000202", models.PackageTemel, "Aktif", 0.30},
		{"BLD_000203", models.PackagePremium, "Pasif", 0.70},
	}
	for i, sp := range specs {
		quote := pricing.Premium(sp.pkg, sp.risk)
		p := &models.Policy{
			PolicyNumber:     ids.New(),
			CustomerID:       customer.ID,
			Package:          sp.pkg,
			Status:           sp.status,
			StartDate:        start,
			EndDate:          start.AddDate(1, 0, 0),
			MaxCoverage:      sp.pkg.BaseCoverage(),
			InsuranceValueTL: quote.InsuranceValueTL,
			AnnualPremiumTL:  quote.AnnualPremiumTL,
			MonthlyPremiumTL: quote.MonthlyPremiumTL,
			Building: models.Building{
				BuildingID:       sp.buildingID,
				Address:          "Adres",
				District:         "Merkez",
				City:             "İzmir",
				ConstructionYear: 1990 + i,
				StructureType:    "Betonarme",
				Floors:           4,
				Units:            8,
				AreaM2:           100,
				Residents:        20,
			},
			Risk: models.RiskAssessment{RiskScore: sp.risk, SoilType: "ZC"},
		}
		if err := policyRepo.Create(p); err != nil {
			t.Fatalf("create policy: %v", err)
		}
	}

	now := time.Now().UTC()
	for _, status := range []models.ClaimStatus{models.ClaimInReview, models.ClaimApproved} {
		claim := &models.Claim{
			ClaimRef:     ids.ClaimRef(),
			CustomerID:   customer.ID,
			PolicyNumber: "any",
			IncidentDate: now.AddDate(0, -1, 0),
			Description:  "Duvar çatlağı",
			Status:       status,
			CreatedAt:    now,
		}
		if err := claimRepo.Create(claim); err != nil {
			t.Fatalf("create claim: %v", err)
		}
	}

	return NewService(policyRepo, claimRepo), customer
}

func TestForCustomer(t *testing.T) {
	svc, customer := seedPortfolio(t)

	stats, err := svc.ForCustomer(customer)
	if err != nil {
		t.Fatalf("ForCustomer: %v", err)
	}

	if stats.TotalPolicies != 3 || stats.ActivePolicies != 2 || stats.PassivePolicies != 1 {
		t.Errorf("policy counts = %d/%d/%d", stats.TotalPolicies, stats.ActivePolicies, stats.PassivePolicies)
	}

	// Active coverage only: Standart 750k + Temel 250k.
	if stats.TotalCoverage != 1_000_000 {
		t.Errorf("coverage = %d", stats.TotalCoverage)
	}

	wantPremium := pricing.Premium(models.PackageStandart, 0.52).MonthlyPremiumTL.
		Add(pricing.Premium(models.PackageTemel, 0.30).MonthlyPremiumTL)
	if !stats.MonthlyPremiumTotal.Equal(wantPremium) {
		t.Errorf("monthly premium = %s, want %s", stats.MonthlyPremiumTotal, wantPremium)
	}

	if stats.ClaimsHistory != 2 || stats.ClaimsPending != 1 {
		t.Errorf("claims = %d/%d", stats.ClaimsHistory, stats.ClaimsPending)
	}

	if !stats.ReferralEarnings.Equal(decimal.NewFromInt(500)) {
		t.Errorf("referral earnings = %s", stats.ReferralEarnings)
	}
	if stats.ReferralCode != customer.ReferralCode() {
		t.Errorf("referral code = %s", stats.ReferralCode)
	}

	days := int(time.Until(stats.NextPaymentDate).Hours() / 24)
	if days < 22 || days > 23 {
		t.Errorf("next payment %d days out", days)
	}

	// (0.52 + 0.30 + 0.70) / 3 rounded to four decimals.
	if stats.AvgRiskScore != 0.5067 {
		t.Errorf("avg risk = %v", stats.AvgRiskScore)
	}

	if stats.CustomerScore != 280 || stats.CustomerName != "Mehmet Kaya" {
		t.Errorf("customer fields = %d %s", stats.CustomerScore, stats.CustomerName)
	}
}

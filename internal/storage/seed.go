package storage

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/daskplus/portal/internal/ids"
	"github.com/daskplus/portal/internal/models"
	"github.com/daskplus/portal/internal/services/pricing"
)

// Seed installs demo data for development. It is a no-op when
// customers already exist.
func Seed(db *DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM customers").Scan(&count); err != nil {
		return fmt.Errorf("seed check failed: %w", err)
	}
	if count > 0 {
		return nil
	}

	customers := NewCustomerRepository(db)
	policies := NewPolicyRepository(db)
	payments := NewPaymentRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("dask2024"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed password hash failed: %w", err)
	}

	demo := models.NewCustomer("Ahmet Yılmaz", "ahmet.yilmaz@example.com", string(hash))
	demo.Phone = "+90 532 000 00 01"
	demo.TCNumber = "12345678901"
	demo.CustomerScore = 320
	demo.RegistrationDate = time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC)
	if err := customers.Create(demo); err != nil {
		return err
	}

	buildings := []struct {
		id, address, district, city string
		year                        int
		risk                        float64
		pkg                         models.PackageType
		status                      string
	}{
		{"BLD_000001", "Moda Cad. No:15 Daire:4, Kadıköy", "Kadıköy", "İstanbul", 1998, 0.52, models.PackageStandart, "Aktif"},
		{"BLD_000002", "Alsancak Kıbrıs Şehitleri Cad. No:48, Konak", "Konak", "İzmir", 2011, 0.38, models.PackagePremium, "Aktif"},
		{"BLD_000003", "Atatürk Bulvarı No:127, Çankaya", "Çankaya", "Ankara", 1985, 0.71, models.PackageTemel, "Pasif"},
	}

	year := time.Now().Year()
	for i, b := range buildings {
		quote := pricing.Premium(b.pkg, b.risk)
		start := time.Date(year-1, time.Month(3+i*2), 1, 0, 0, 0, 0, time.UTC)

		p := &models.Policy{
			PolicyNumber:     fmt.Sprintf("DSK-%d-%06d", start.Year(), i+1),
			CustomerID:       demo.ID,
			Package:          b.pkg,
			Status:           b.status,
			StartDate:        start,
			EndDate:          start.AddDate(1, 0, 0),
			MaxCoverage:      b.pkg.BaseCoverage(),
			InsuranceValueTL: quote.InsuranceValueTL,
			AnnualPremiumTL:  quote.AnnualPremiumTL,
			MonthlyPremiumTL: quote.MonthlyPremiumTL,
			Building: models.Building{
				BuildingID:       b.id,
				Address:          b.address,
				District:         b.district,
				City:             b.city,
				Latitude:         40.98 + float64(i)*0.3,
				Longitude:        29.03 + float64(i)*0.2,
				ConstructionYear: b.year,
				StructureType:    "Betonarme",
				Floors:           5 + i,
				Units:            10 + i*4,
				AreaM2:           120 + float64(i)*15,
				Residents:        28 + i*6,
				CommercialUnits:  i,
			},
			Risk: models.RiskAssessment{
				RiskScore:         b.risk,
				QualityScore:      7.2 - float64(i)*0.8,
				SoilType:          "ZC",
				SoilAmplification: 1.2 + float64(i)*0.1,
				LiquefactionRisk:  0.12 + float64(i)*0.05,
				DistanceToFaultKm: 8.4 + float64(i)*5,
				NearestFault:      "Kuzey Anadolu Fayı",
			},
		}
		if err := policies.Create(p); err != nil {
			return err
		}

		if p.Status != "Aktif" {
			continue
		}
		// A few months of settled premiums plus the pending one.
		for m := 0; m < 4; m++ {
			status := models.PaymentCompleted
			if m == 0 {
				status = models.PaymentPending
			}
			pay := &models.Payment{
				PaymentID:     ids.PaymentRef(time.Now()),
				PolicyNumber:  p.PolicyNumber,
				Amount:        p.MonthlyPremiumTL,
				PaymentDate:   time.Now().UTC().AddDate(0, -m, 0),
				Status:        status,
				PaymentMethod: "Kredi Kartı",
			}
			if err := payments.Create(demo.ID, pay); err != nil {
				return err
			}
		}
	}

	return nil
}

package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daskplus/portal/internal/models"
)

// PolicyRepository provides policy and building data access
type PolicyRepository struct {
	db *DB
}

// NewPolicyRepository creates a new policy repository
func NewPolicyRepository(db *DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

const policyColumns = `policy_number, customer_id, package_type, status, start_date, end_date,
	max_coverage, insurance_value_tl, annual_premium_tl, monthly_premium_tl,
	building_id, address, district, city, latitude, longitude,
	construction_year, structure_type, floors, units, building_area_m2, residents, commercial_units,
	risk_score, quality_score, soil_type, soil_amplification, liquefaction_risk, distance_to_fault_km, nearest_fault`

// Create inserts a new policy with its building snapshot
func (r *PolicyRepository) Create(p *models.Policy) error {
	query := `
		INSERT INTO policies (` + policyColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		p.PolicyNumber,
		p.CustomerID.String(),
		string(p.Package),
		p.Status,
		p.StartDate,
		p.EndDate,
		p.MaxCoverage,
		p.InsuranceValueTL.String(),
		p.AnnualPremiumTL.String(),
		p.MonthlyPremiumTL.String(),
		p.Building.BuildingID,
		p.Building.Address,
		p.Building.District,
		p.Building.City,
		p.Building.Latitude,
		p.Building.Longitude,
		p.Building.ConstructionYear,
		p.Building.StructureType,
		p.Building.Floors,
		p.Building.Units,
		p.Building.AreaM2,
		p.Building.Residents,
		p.Building.CommercialUnits,
		p.Risk.RiskScore,
		p.Risk.QualityScore,
		p.Risk.SoilType,
		p.Risk.SoilAmplification,
		p.Risk.LiquefactionRisk,
		p.Risk.DistanceToFaultKm,
		p.Risk.NearestFault,
	)
	if err != nil {
		return fmt.Errorf("failed to create policy: %w", err)
	}
	return nil
}

// GetByNumber retrieves a policy by its policy number
func (r *PolicyRepository) GetByNumber(policyNumber string) (*models.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE policy_number = ?`
	return scanPolicy(r.db.QueryRow(query, policyNumber))
}

// GetByBuildingID retrieves the policy covering a building
func (r *PolicyRepository) GetByBuildingID(buildingID string) (*models.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE building_id = ?`
	return scanPolicy(r.db.QueryRow(query, buildingID))
}

// FirstForCustomer returns the customer's first policy, used as the
// dashboard's featured policy when none is selected.
func (r *PolicyRepository) FirstForCustomer(customerID uuid.UUID) (*models.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE customer_id = ? ORDER BY start_date, policy_number LIMIT 1`
	return scanPolicy(r.db.QueryRow(query, customerID.String()))
}

// ListByCustomer returns all policies held by a customer
func (r *PolicyRepository) ListByCustomer(customerID uuid.UUID) ([]*models.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE customer_id = ? ORDER BY start_date, policy_number`
	rows, err := r.db.Query(query, customerID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	defer rows.Close()

	var policies []*models.Policy
	for rows.Next() {
		p, err := scanPolicyRows(rows)
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

// PortfolioStats carries the aggregates the dashboard needs
type PortfolioStats struct {
	TotalPolicies       int
	ActivePolicies      int
	PassivePolicies     int
	TotalCoverage       int64
	MonthlyPremiumTotal decimal.Decimal
	AvgRiskScore        float64
}

// StatsForCustomer aggregates policy counters for the dashboard.
// Coverage and premium totals count active policies only.
func (r *PolicyRepository) StatsForCustomer(customerID uuid.UUID) (*PortfolioStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'Aktif' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'Aktif' THEN max_coverage ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'Aktif' THEN CAST(monthly_premium_tl AS REAL) ELSE 0 END), 0),
			COALESCE(AVG(risk_score), 0)
		FROM policies WHERE customer_id = ?
	`
	var stats PortfolioStats
	var premiumSum float64
	err := r.db.QueryRow(query, customerID.String()).Scan(
		&stats.TotalPolicies,
		&stats.ActivePolicies,
		&stats.TotalCoverage,
		&premiumSum,
		&stats.AvgRiskScore,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}

	stats.PassivePolicies = stats.TotalPolicies - stats.ActivePolicies
	stats.MonthlyPremiumTotal = decimal.NewFromFloat(premiumSum).Round(2)
	return &stats, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPolicy(row *sql.Row) (*models.Policy, error) {
	p, err := scanPolicyFrom(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func scanPolicyRows(rows *sql.Rows) (*models.Policy, error) {
	return scanPolicyFrom(rows)
}

func scanPolicyFrom(row rowScanner) (*models.Policy, error) {
	var p models.Policy
	var customerID, pkg string
	var insuranceValue, annualPremium, monthlyPremium string
	var district, city, structureType, soilType, nearestFault sql.NullString

	err := row.Scan(
		&p.PolicyNumber,
		&customerID,
		&pkg,
		&p.Status,
		&p.StartDate,
		&p.EndDate,
		&p.MaxCoverage,
		&insuranceValue,
		&annualPremium,
		&monthlyPremium,
		&p.Building.BuildingID,
		&p.Building.Address,
		&district,
		&city,
		&p.Building.Latitude,
		&p.Building.Longitude,
		&p.Building.ConstructionYear,
		&structureType,
		&p.Building.Floors,
		&p.Building.Units,
		&p.Building.AreaM2,
		&p.Building.Residents,
		&p.Building.CommercialUnits,
		&p.Risk.RiskScore,
		&p.Risk.QualityScore,
		&soilType,
		&p.Risk.SoilAmplification,
		&p.Risk.LiquefactionRisk,
		&p.Risk.DistanceToFaultKm,
		&nearestFault,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan policy: %w", err)
	}

	p.CustomerID, _ = uuid.Parse(customerID)
	p.Package = models.PackageType(pkg)
	p.InsuranceValueTL, _ = decimal.NewFromString(insuranceValue)
	p.AnnualPremiumTL, _ = decimal.NewFromString(annualPremium)
	p.MonthlyPremiumTL, _ = decimal.NewFromString(monthlyPremium)
	p.Building.District = district.String
	p.Building.City = city.String
	p.Building.StructureType = structureType.String
	p.Risk.SoilType = soilType.String
	p.Risk.NearestFault = nearestFault.String

	return &p, nil
}

package storage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/daskplus/portal/internal/models"
)

// ClaimRepository provides claim data access
type ClaimRepository struct {
	db *DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Create inserts a new claim
func (r *ClaimRepository) Create(c *models.Claim) error {
	query := `
		INSERT INTO claims (claim_ref, customer_id, policy_number, incident_date, description, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		c.ClaimRef,
		c.CustomerID.String(),
		c.PolicyNumber,
		c.IncidentDate,
		c.Description,
		string(c.Status),
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create claim: %w", err)
	}
	return nil
}

// ListByCustomer returns a customer's claims, newest first
func (r *ClaimRepository) ListByCustomer(customerID uuid.UUID) ([]*models.Claim, error) {
	query := `
		SELECT claim_ref, customer_id, policy_number, incident_date, description, status, created_at
		FROM claims WHERE customer_id = ? ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, customerID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	defer rows.Close()

	var claims []*models.Claim
	for rows.Next() {
		var c models.Claim
		var id, status string
		if err := rows.Scan(&c.ClaimRef, &id, &c.PolicyNumber, &c.IncidentDate, &c.Description, &status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan claim: %w", err)
		}
		c.CustomerID, _ = uuid.Parse(id)
		c.Status = models.ClaimStatus(status)
		claims = append(claims, &c)
	}
	return claims, rows.Err()
}

// Counts returns the total and pending claim counters for the dashboard
func (r *ClaimRepository) Counts(customerID uuid.UUID) (total, pending int, err error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM claims WHERE customer_id = ?
	`
	err = r.db.QueryRow(query, string(models.ClaimInReview), customerID.String()).Scan(&total, &pending)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count claims: %w", err)
	}
	return total, pending, nil
}

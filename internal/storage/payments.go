package storage

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daskplus/portal/internal/models"
)

// PaymentRepository provides payment data access
type PaymentRepository struct {
	db *DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts a payment record
func (r *PaymentRepository) Create(customerID uuid.UUID, p *models.Payment) error {
	query := `
		INSERT INTO payments (payment_id, customer_id, policy_number, amount, payment_date, status, payment_method)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		p.PaymentID,
		customerID.String(),
		p.PolicyNumber,
		p.Amount.String(),
		p.PaymentDate,
		string(p.Status),
		p.PaymentMethod,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// ListByCustomer returns a customer's payments, newest first.
// The building address is joined from the policy snapshot.
func (r *PaymentRepository) ListByCustomer(customerID uuid.UUID, limit int) ([]*models.Payment, error) {
	query := `
		SELECT p.payment_id, p.policy_number, COALESCE(pol.address, ''), p.amount, p.payment_date, p.status, p.payment_method
		FROM payments p
		LEFT JOIN policies pol ON pol.policy_number = p.policy_number
		WHERE p.customer_id = ?
		ORDER BY p.payment_date DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, customerID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		var p models.Payment
		var amount, status string
		if err := rows.Scan(&p.PaymentID, &p.PolicyNumber, &p.BuildingAddress, &amount, &p.PaymentDate, &status, &p.PaymentMethod); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Amount, _ = decimal.NewFromString(amount)
		p.Status = models.PaymentStatus(status)
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

// CompletedTotal sums the settled payments of a customer
func (r *PaymentRepository) CompletedTotal(customerID uuid.UUID) (decimal.Decimal, error) {
	var total float64
	query := `SELECT COALESCE(SUM(CAST(amount AS REAL)), 0) FROM payments WHERE customer_id = ? AND status = ?`
	err := r.db.QueryRow(query, customerID.String(), string(models.PaymentCompleted)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}
	return decimal.NewFromFloat(total).Round(2), nil
}

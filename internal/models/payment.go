package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a premium payment
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "Tamamlandı"
	PaymentPending   PaymentStatus = "Beklemede"
	PaymentFailed    PaymentStatus = "Başarısız"
)

// CSSClass maps the status onto its payment-row style class
func (s PaymentStatus) CSSClass() string {
	switch s {
	case PaymentCompleted:
		return "completed"
	case PaymentPending:
		return "pending"
	default:
		return "failed"
	}
}

// Icon returns the status indicator icon name
func (s PaymentStatus) Icon() string {
	switch s {
	case PaymentCompleted:
		return "check-circle"
	case PaymentPending:
		return "clock"
	default:
		return "times-circle"
	}
}

// Payment is a single premium payment record
type Payment struct {
	PaymentID       string          `json:"payment_id"`
	PolicyNumber    string          `json:"policy_number"`
	BuildingAddress string          `json:"building_address"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"payment_date"`
	Status          PaymentStatus   `json:"status"`
	PaymentMethod   string          `json:"payment_method"`
}

// TruncateAddress shortens long addresses for the payments table
func TruncateAddress(addr string, max int) string {
	runes := []rune(addr)
	if len(runes) <= max {
		return addr
	}
	return string(runes[:max]) + "..."
}

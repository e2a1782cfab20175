package models

import (
	"time"

	"github.com/google/uuid"
)

// ClaimStatus is the review state of a damage claim
type ClaimStatus string

const (
	ClaimInReview ClaimStatus = "İnceleniyor"
	ClaimApproved ClaimStatus = "Onaylandı"
	ClaimRejected ClaimStatus = "Reddedildi"
)

// Claim is a damage report filed against a policy
type Claim struct {
	ClaimRef     string      `json:"claim_ref"`
	CustomerID   uuid.UUID   `json:"customer_id"`
	PolicyNumber string      `json:"policy_number"`
	IncidentDate time.Time   `json:"incident_date"`
	Description  string      `json:"description"`
	Status       ClaimStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// IsOpen reports whether the claim still awaits a decision
func (c *Claim) IsOpen() bool {
	return c.Status == ClaimInReview
}

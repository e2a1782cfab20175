// Package models defines core domain types
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MemberTier is the loyalty tier derived from the customer score
type MemberTier string

const (
	TierBronze  MemberTier = "Bronz"
	TierSilver  MemberTier = "Gümüş"
	TierGold    MemberTier = "Altın"
	TierDiamond MemberTier = "Elmas"
)

// Icon returns the badge icon shown next to the tier name
func (t MemberTier) Icon() string {
	switch t {
	case TierBronze:
		return "🥉"
	case TierSilver:
		return "🥈"
	case TierGold:
		return "🥇"
	case TierDiamond:
		return "💎"
	default:
		return ""
	}
}

// TierForScore maps a customer score onto a member tier.
// Thresholds: below 200 bronze, below 300 silver, below 400 gold, otherwise diamond.
func TierForScore(score int) MemberTier {
	switch {
	case score < 200:
		return TierBronze
	case score < 300:
		return TierSilver
	case score < 400:
		return TierGold
	default:
		return TierDiamond
	}
}

// MaxCustomerScore caps the loyalty progress bar
const MaxCustomerScore = 500

// Customer represents a portal account holder
type Customer struct {
	ID               uuid.UUID `json:"customer_id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	TCNumber         string    `json:"tc_number"`
	AvatarURL        string    `json:"avatar_url"`
	Status           string    `json:"status"`
	TotalProperties  int       `json:"total_properties"`
	CustomerScore    int       `json:"customer_score"`
	PasswordHash     string    `json:"-"`
	RegistrationDate time.Time `json:"registration_date"`
	LastLogin        time.Time `json:"last_login"`
}

// NewCustomer creates a customer with generated ID and timestamps
func NewCustomer(fullName, email, passwordHash string) *Customer {
	return &Customer{
		ID:               uuid.New(),
		FullName:         fullName,
		Email:            email,
		PasswordHash:     passwordHash,
		Status:           "Aktif",
		RegistrationDate: time.Now().UTC(),
	}
}

// FirstName returns the leading name component, used in the welcome heading
func (c *Customer) FirstName() string {
	parts := strings.Fields(c.FullName)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// LastName returns everything after the first name component
func (c *Customer) LastName() string {
	parts := strings.Fields(c.FullName)
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[1:], " ")
}

// Tier returns the member tier for this customer's score
func (c *Customer) Tier() MemberTier {
	return TierForScore(c.CustomerScore)
}

// MaskedTCNumber hides all but the last two digits of the national ID
func (c *Customer) MaskedTCNumber() string {
	if len(c.TCNumber) < 2 {
		return c.TCNumber
	}
	return strings.Repeat("*", len(c.TCNumber)-2) + c.TCNumber[len(c.TCNumber)-2:]
}

// ReferralCode derives the referral code from the customer ID
func (c *Customer) ReferralCode() string {
	id := strings.ReplaceAll(c.ID.String(), "-", "")
	if len(id) < 6 {
		return "REF" + strings.ToUpper(id)
	}
	return "REF" + strings.ToUpper(id[len(id)-6:])
}

// Session represents an active customer session
type Session struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Token      string    `json:"-"`
	Device     string    `json:"device"`
	IP         string    `json:"ip"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}

// Package ids generates sortable reference identifiers
package ids

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a ULID string, lexicographically ordered by creation time
func New() string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// ClaimRef returns a claim reference like CLM-01J8...
func ClaimRef() string {
	return "CLM-" + New()
}

// PaymentRef returns a payment reference like PAY-2025-01J8...
func PaymentRef(t time.Time) string {
	return fmt.Sprintf("PAY-%d-%s", t.Year(), New())
}

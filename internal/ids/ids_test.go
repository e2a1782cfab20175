package ids

import (
	"strings"
	"testing"
	"time"
)

func TestNewIsOrdered(t *testing.T) {
	a := New()
	b := New()

	if a >= b {
		t.Errorf("expected %s < %s", a, b)
	}
}

func TestClaimRef(t *testing.T) {
	ref := ClaimRef()
	if !strings.HasPrefix(ref, "CLM-") {
		t.Errorf("ClaimRef() = %s, want CLM- prefix", ref)
	}
}

func TestPaymentRef(t *testing.T) {
	ref := PaymentRef(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	if !strings.HasPrefix(ref, "PAY-2025-") {
		t.Errorf("PaymentRef() = %s, want PAY-2025- prefix", ref)
	}
}

func TestNewConcurrent(t *testing.T) {
	seen := make(chan string, 100)
	for i := 0; i < 100; i++ {
		go func() { seen <- New() }()
	}

	unique := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := <-seen
		if unique[id] {
			t.Fatalf("duplicate id %s", id)
		}
		unique[id] = true
	}
}

package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/daskplus/portal/internal/config"
	"github.com/daskplus/portal/internal/models"
	"github.com/daskplus/portal/internal/storage"
)

func newTestService(t *testing.T, sessionDuration time.Duration) (*Service, *models.Customer) {
	t.Helper()

	db, err := storage.New(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		SecretKey:       "test-secret",
		SessionDuration: sessionDuration,
	}

	customerRepo := storage.NewCustomerRepository(db)
	sessionRepo := storage.NewSessionRepository(db)

	hash, _ := bcrypt.GenerateFromPassword([]byte("dask2024"), bcrypt.MinCost)
	customer := models.NewCustomer("Zeynep Arslan", "zeynep@example.com", string(hash))
	if err := customerRepo.Create(customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	return NewService(cfg, customerRepo, sessionRepo), customer
}

func TestLoginAndValidate(t *testing.T) {
	svc, customer := newTestService(t, time.Hour)

	result, err := svc.Login(LoginInput{
		Email:    "zeynep@example.com",
		Password: "dask2024",
		Device:   "Chrome / Linux",
		IP:       "10.0.0.1",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.Customer.ID != customer.ID {
		t.Errorf("customer id = %s", result.Customer.ID)
	}
	if result.Customer.LastLogin.IsZero() {
		t.Error("login should record last_login")
	}

	validated, err := svc.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if validated.Email != customer.Email {
		t.Errorf("validated email = %s", validated.Email)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(t, time.Hour)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "zeynep@example.com", "wrong"},
		{"unknown email", "nobody@example.com", "dask2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(LoginInput{Email: tt.email, Password: tt.password})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t, time.Hour)

	if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	svc, _ := newTestService(t, time.Hour)
	other, _ := newTestService(t, time.Hour)

	result, err := other.Login(LoginInput{Email: "zeynep@example.com", Password: "dask2024"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Same secret across test services, so forge one by changing the key.
	other.cfg.SecretKey = "different-secret"
	forged, err := other.Login(LoginInput{Email: "zeynep@example.com", Password: "dask2024"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.ValidateToken(result.Token); err == nil {
		t.Error("token for another service's customer should not validate here")
	}
	if _, err := other.ValidateToken(forged.Token); err != nil {
		t.Errorf("token signed with the current key should validate: %v", err)
	}
}

func TestExpiredToken(t *testing.T) {
	svc, _ := newTestService(t, -time.Minute)

	result, err := svc.Login(LoginInput{Email: "zeynep@example.com", Password: "dask2024"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, err = svc.ValidateToken(result.Token)
	if err == nil {
		t.Fatal("expected an expired token to fail validation")
	}
}

func TestLogoutDeletesSessions(t *testing.T) {
	svc, customer := newTestService(t, time.Hour)

	if _, err := svc.Login(LoginInput{Email: "zeynep@example.com", Password: "dask2024"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(customer.ID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
}

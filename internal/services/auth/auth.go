// Package auth provides authentication services
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/daskplus/portal/internal/config"
	"github.com/daskplus/portal/internal/models"
	"github.com/daskplus/portal/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidToken       = errors.New("invalid token")
)

// Service handles authentication operations
type Service struct {
	cfg          *config.Config
	customerRepo *storage.CustomerRepository
	sessionRepo  *storage.SessionRepository
}

// NewService creates a new auth service
func NewService(cfg *config.Config, customerRepo *storage.CustomerRepository, sessionRepo *storage.SessionRepository) *Service {
	return &Service{
		cfg:          cfg,
		customerRepo: customerRepo,
		sessionRepo:  sessionRepo,
	}
}

// LoginInput contains login credentials plus request metadata
type LoginInput struct {
	Email    string
	Password string
	Device   string
	IP       string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	Customer *models.Customer
	Token    string
	Expires  time.Time
}

// Login authenticates a customer and creates a session
func (s *Service) Login(input LoginInput) (*LoginResult, error) {
	customer, err := s.customerRepo.GetByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	if customer == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.createToken(customer)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	now := time.Now().UTC()
	expires := now.Add(s.cfg.SessionDuration)

	session := &models.Session{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		Token:      token,
		Device:     input.Device,
		IP:         input.IP,
		ExpiresAt:  expires,
		CreatedAt:  now,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := s.customerRepo.TouchLastLogin(customer.ID, now); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}
	customer.LastLogin = now

	return &LoginResult{
		Customer: customer,
		Token:    token,
		Expires:  expires,
	}, nil
}

// ValidateToken verifies a JWT token and returns the customer
func (s *Service) ValidateToken(tokenString string) (*models.Customer, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, ErrSessionExpired
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}

	customer, err := s.customerRepo.GetByID(id)
	if err != nil || customer == nil {
		return nil, ErrInvalidToken
	}

	return customer, nil
}

// Logout invalidates all sessions for a customer
func (s *Service) Logout(customerID uuid.UUID) error {
	return s.sessionRepo.DeleteByCustomerID(customerID)
}

// CleanupExpiredSessions removes expired sessions from the database
func (s *Service) CleanupExpiredSessions() error {
	return s.sessionRepo.DeleteExpired()
}

func (s *Service) createToken(customer *models.Customer) (string, error) {
	claims := jwt.MapClaims{
		"sub":   customer.ID.String(),
		"email": customer.Email,
		"name":  customer.FullName,
		"exp":   time.Now().Add(s.cfg.SessionDuration).Unix(),
		"iat":   time.Now().Unix(),
		"jti":   generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func generateJTI() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}

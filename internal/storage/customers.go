package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daskplus/portal/internal/models"
)

// CustomerRepository provides customer data access
type CustomerRepository struct {
	db *DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create inserts a new customer
func (r *CustomerRepository) Create(c *models.Customer) error {
	query := `
		INSERT INTO customers (id, email, password_hash, full_name, phone, tc_number, avatar_url, status, customer_score, registration_date, last_login)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		c.ID.String(),
		c.Email,
		c.PasswordHash,
		c.FullName,
		c.Phone,
		c.TCNumber,
		c.AvatarURL,
		c.Status,
		c.CustomerScore,
		c.RegistrationDate,
		nullTime(c.LastLogin),
	)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	query := `
		SELECT id, email, password_hash, full_name, phone, tc_number, avatar_url, status, customer_score, registration_date, last_login
		FROM customers WHERE id = ?
	`
	return r.scanCustomer(r.db.QueryRow(query, id.String()))
}

// GetByEmail retrieves a customer by email
func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	query := `
		SELECT id, email, password_hash, full_name, phone, tc_number, avatar_url, status, customer_score, registration_date, last_login
		FROM customers WHERE email = ?
	`
	return r.scanCustomer(r.db.QueryRow(query, email))
}

// EmailExists checks if an email is already registered
func (r *CustomerRepository) EmailExists(email string) (bool, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM customers WHERE email = ?", email).Scan(&count)
	return count > 0, err
}

// TouchLastLogin records a successful login
func (r *CustomerRepository) TouchLastLogin(id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec("UPDATE customers SET last_login = ? WHERE id = ?", at, id.String())
	return err
}

// PropertyCount counts the buildings insured by a customer
func (r *CustomerRepository) PropertyCount(id uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(DISTINCT building_id) FROM policies WHERE customer_id = ?", id.String()).Scan(&count)
	return count, err
}

func (r *CustomerRepository) scanCustomer(row *sql.Row) (*models.Customer, error) {
	var c models.Customer
	var id string
	var phone, tcNumber, avatarURL sql.NullString
	var lastLogin sql.NullTime

	err := row.Scan(
		&id,
		&c.Email,
		&c.PasswordHash,
		&c.FullName,
		&phone,
		&tcNumber,
		&avatarURL,
		&c.Status,
		&c.CustomerScore,
		&c.RegistrationDate,
		&lastLogin,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan customer: %w", err)
	}

	c.ID, _ = uuid.Parse(id)
	c.Phone = phone.String
	c.TCNumber = tcNumber.String
	c.AvatarURL = avatarURL.String
	if lastLogin.Valid {
		c.LastLogin = lastLogin.Time
	}

	return &c, nil
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

// SessionRepository provides session data access
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session
func (r *SessionRepository) Create(session *models.Session) error {
	query := `
		INSERT INTO sessions (id, customer_id, token, device, ip, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		session.ID.String(),
		session.CustomerID.String(),
		session.Token,
		session.Device,
		session.IP,
		session.ExpiresAt,
		session.CreatedAt,
	)
	return err
}

// GetByToken retrieves a session by token
func (r *SessionRepository) GetByToken(token string) (*models.Session, error) {
	query := `
		SELECT id, customer_id, token, device, ip, expires_at, created_at
		FROM sessions WHERE token = ?
	`
	var session models.Session
	var id, customerID string
	var device, ip sql.NullString

	err := r.db.QueryRow(query, token).Scan(
		&id,
		&customerID,
		&session.Token,
		&device,
		&ip,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	session.ID, _ = uuid.Parse(id)
	session.CustomerID, _ = uuid.Parse(customerID)
	session.Device = device.String
	session.IP = ip.String

	return &session, nil
}

// DeleteByCustomerID removes all sessions for a customer
func (r *SessionRepository) DeleteByCustomerID(customerID uuid.UUID) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE customer_id = ?", customerID.String())
	return err
}

// DeleteExpired removes all expired sessions
func (r *SessionRepository) DeleteExpired() error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now().UTC())
	return err
}

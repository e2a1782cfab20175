// Package storage provides database access and repositories
package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the database connection
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(databaseURL string) (*DB, error) {
	db, err := sql.Open("sqlite3", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &DB{db}, nil
}

// Migrate runs database migrations
func (db *DB) Migrate() error {
	migrations := []string{
		createCustomersTable,
		createPoliciesTable,
		createPaymentsTable,
		createClaimsTable,
		createSessionsTable,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

const createCustomersTable = `
CREATE TABLE IF NOT EXISTS customers (
	id TEXT PRIMARY KEY,
	email TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	full_name TEXT NOT NULL,
	phone TEXT,
	tc_number TEXT,
	avatar_url TEXT,
	status TEXT DEFAULT 'Aktif',
	customer_score INTEGER DEFAULT 0,
	registration_date DATETIME DEFAULT CURRENT_TIMESTAMP,
	last_login DATETIME
);

CREATE INDEX IF NOT EXISTS idx_customers_email ON customers(email);
`

// One row carries the policy together with its building and risk snapshot,
// mirroring how the underwriting feed delivers them.
const createPoliciesTable = `
CREATE TABLE IF NOT EXISTS policies (
	policy_number TEXT PRIMARY KEY,
	customer_id TEXT NOT NULL,
	package_type TEXT NOT NULL,
	status TEXT DEFAULT 'Aktif',
	start_date DATETIME NOT NULL,
	end_date DATETIME NOT NULL,
	max_coverage INTEGER NOT NULL,
	insurance_value_tl TEXT NOT NULL,
	annual_premium_tl TEXT NOT NULL,
	monthly_premium_tl TEXT NOT NULL,
	building_id TEXT NOT NULL,
	address TEXT NOT NULL,
	district TEXT,
	city TEXT,
	latitude REAL,
	longitude REAL,
	construction_year INTEGER,
	structure_type TEXT,
	floors INTEGER,
	units INTEGER,
	building_area_m2 REAL,
	residents INTEGER,
	commercial_units INTEGER,
	risk_score REAL DEFAULT 0,
	quality_score REAL DEFAULT 0,
	soil_type TEXT,
	soil_amplification REAL DEFAULT 0,
	liquefaction_risk REAL DEFAULT 0,
	distance_to_fault_km REAL DEFAULT 0,
	nearest_fault TEXT,
	FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_policies_customer_id ON policies(customer_id);
CREATE INDEX IF NOT EXISTS idx_policies_building_id ON policies(building_id);
`

const createPaymentsTable = `
CREATE TABLE IF NOT EXISTS payments (
	payment_id TEXT PRIMARY KEY,
	customer_id TEXT NOT NULL,
	policy_number TEXT NOT NULL,
	amount TEXT NOT NULL,
	payment_date DATETIME NOT NULL,
	status TEXT NOT NULL,
	payment_method TEXT DEFAULT 'Kredi Kartı',
	FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE,
	FOREIGN KEY (policy_number) REFERENCES policies(policy_number) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_payments_customer_id ON payments(customer_id);
CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(payment_date);
`

const createClaimsTable = `
CREATE TABLE IF NOT EXISTS claims (
	claim_ref TEXT PRIMARY KEY,
	customer_id TEXT NOT NULL,
	policy_number TEXT NOT NULL,
	incident_date DATETIME NOT NULL,
	description TEXT,
	status TEXT DEFAULT 'İnceleniyor',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_claims_customer_id ON claims(customer_id);
`

const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	customer_id TEXT NOT NULL,
	token TEXT NOT NULL,
	device TEXT,
	ip TEXT,
	expires_at DATETIME NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_sessions_customer_id ON sessions(customer_id);
CREATE INDEX IF NOT EXISTS idx_sessions_token ON sessions(token);
`

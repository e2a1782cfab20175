// Package client is the typed consumer of the customer API
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// APIError carries a failed response's status and server message
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// Client talks to the customer API with a bearer token
type Client struct {
	baseURL    string
	token      string
	customerID string
	httpClient *http.Client
}

// New creates a client for the given base URL and session
func New(baseURL, token, customerID string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		customerID: customerID,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// envelope is the common response wrapper; every payload sits under a
// resource-specific field next to the success flag.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// getResource performs one authenticated GET and extracts the named
// payload field. All fetchers go through here.
func getResource[T any](ctx context.Context, c *Client, path, field string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("read %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, &APIError{Status: resp.StatusCode, Message: "invalid response"}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return zero, &APIError{Status: resp.StatusCode, Message: env.Error}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return zero, &APIError{Status: resp.StatusCode, Message: "invalid response"}
	}
	raw, ok := fields[field]
	if !ok {
		return zero, &APIError{Status: resp.StatusCode, Message: "missing " + field + " field"}
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, fmt.Errorf("decode %s: %w", field, err)
	}
	return out, nil
}

// Customer fetches the signed-in customer's profile
func (c *Client) Customer(ctx context.Context) (*Customer, error) {
	return getResource[*Customer](ctx, c, "/api/customer/"+c.customerID, "customer")
}

// DashboardStats fetches the dashboard aggregates
func (c *Client) DashboardStats(ctx context.Context) (*Stats, error) {
	return getResource[*Stats](ctx, c, "/api/dashboard/stats/"+c.customerID, "stats")
}

// PolicyDetails fetches the detail payload for the customer's policy.
// Pass a BLD_-prefixed building ID to select a specific building, or
// an empty string for the customer's first policy.
func (c *Client) PolicyDetails(ctx context.Context, buildingID string) (*PolicyDetails, error) {
	key := buildingID
	if key == "" {
		key = c.customerID
	}
	return getResource[*PolicyDetails](ctx, c, "/api/policy-details/"+key, "policy")
}

// CustomerPolicies fetches the customer's policy list
func (c *Client) CustomerPolicies(ctx context.Context) ([]PolicySummary, error) {
	return getResource[[]PolicySummary](ctx, c, "/api/customer-policies/"+c.customerID, "policies")
}

// PaymentHistory fetches the customer's payments, newest first
func (c *Client) PaymentHistory(ctx context.Context) ([]Payment, error) {
	return getResource[[]Payment](ctx, c, "/api/payment-history/"+c.customerID, "payments")
}

// ClaimHistory fetches the customer's damage claims
func (c *Client) ClaimHistory(ctx context.Context) ([]Claim, error) {
	return getResource[[]Claim](ctx, c, "/api/claims/"+c.customerID, "claims")
}

// LoginResult is the successful login payload
type LoginResult struct {
	Token    string
	Customer LoginCustomer
}

// LoginCustomer is the customer summary returned by login
type LoginCustomer struct {
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	FullName   string `json:"full_name"`
	AvatarURL  string `json:"avatar_url"`
	Status     string `json:"status"`
}

// Login exchanges credentials for a token. It does not require an
// existing session.
func Login(ctx context.Context, baseURL, email, password string) (*LoginResult, error) {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/login", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := &http.Client{Timeout: 15 * time.Second}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		envelope
		Token    string        `json:"token"`
		Customer LoginCustomer `json:"customer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: "invalid response"}
	}
	if resp.StatusCode != http.StatusOK || !body.Success {
		return nil, &APIError{Status: resp.StatusCode, Message: body.Error}
	}

	return &LoginResult{Token: body.Token, Customer: body.Customer}, nil
}

// SubmitClaim files a damage claim
func (c *Client) SubmitClaim(ctx context.Context, policyNumber, incidentDate, description string) (*Claim, error) {
	payload, _ := json.Marshal(map[string]string{
		"policy_number": policyNumber,
		"incident_date": incidentDate,
		"description":   description,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/claims", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("claim request: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		envelope
		Claim *Claim `json:"claim"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: "invalid response"}
	}
	if resp.StatusCode != http.StatusCreated || !body.Success || body.Claim == nil {
		return nil, &APIError{Status: resp.StatusCode, Message: body.Error}
	}
	return body.Claim, nil
}

// Logout invalidates the session on the server
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode}
	}
	return nil
}

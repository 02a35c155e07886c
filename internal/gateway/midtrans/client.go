package midtrans

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Client talks to a Midtrans-compatible payment gateway over its Snap and
// Core APIs. It performs no retries; callers decide what a failure means.
type Client struct {
	baseURL    string
	serverKey  string
	httpClient *http.Client
}

// NewClient builds a gateway client. baseURL is e.g.
// https://app.sandbox.midtrans.com.
func NewClient(baseURL string, serverKey string) *Client {
	return &Client{
		baseURL:   baseURL,
		serverKey: serverKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// authHeader builds the Basic credential Midtrans expects: the server key as
// username with an empty password.
func (c *Client) authHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.serverKey+":"))
}

type transactionDetails struct {
	OrderID     string      `json:"order_id"`
	GrossAmount json.Number `json:"gross_amount"`
}

type customerDetails struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

type creditCard struct {
	Secure bool `json:"secure"`
}

type snapRequest struct {
	TransactionDetails transactionDetails `json:"transaction_details"`
	CustomerDetails    customerDetails    `json:"customer_details"`
	CreditCard         creditCard         `json:"credit_card"`
}

// SnapResponse is the payment session returned by the Snap API.
type SnapResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// GatewayError is a non-2xx answer from the gateway, body included so the
// caller can surface what the gateway said.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Body)
}

// CreateTransaction opens a Snap payment session for an order.
func (c *Client) CreateTransaction(ctx context.Context, orderID string, grossAmount decimal.Decimal, customerName string, customerEmail string) (*SnapResponse, error) {
	payload := snapRequest{
		TransactionDetails: transactionDetails{
			OrderID:     orderID,
			GrossAmount: json.Number(grossAmount.String()),
		},
		CustomerDetails: customerDetails{
			FirstName: customerName,
			Email:     customerEmail,
		},
		CreditCard: creditCard{Secure: true},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snap request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/snap/v1/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build snap request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach gateway: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GatewayError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var snap SnapResponse
	if err := json.Unmarshal(respBody, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snap response: %w", err)
	}
	return &snap, nil
}

// TransactionStatus fetches the gateway's live view of a transaction. The
// payload is returned raw so callers can relay it unmodified.
func (c *Client) TransactionStatus(ctx context.Context, orderID string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/"+orderID+"/status", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach gateway: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GatewayError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return json.RawMessage(respBody), nil
}

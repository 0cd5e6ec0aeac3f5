package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"chromaprint/internal/domain/entities"
	"chromaprint/internal/usecase/interfaces"
)

// ErrTransport covers every failure at the network boundary: unreachable
// backend, timeout, non-2xx status, or a response that does not decode into
// the declared shape. Callers never see anything more specific.
var ErrTransport = errors.New("backend transport failure")

// TokenHeader carries the session credential on privileged calls.
const TokenHeader = "x-demo-token"

const defaultTimeout = 15 * time.Second

// Client is the typed HTTP client for the storefront backend. It implements
// every gateway interface the workflow core consumes.
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ interfaces.ICatalogGateway  = (*Client)(nil)
	_ interfaces.IEstimateGateway = (*Client)(nil)
	_ interfaces.IQuoteGateway    = (*Client)(nil)
	_ interfaces.IAuthGateway     = (*Client)(nil)
	_ interfaces.IAccountGateway  = (*Client)(nil)
)

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// NewFromEnv builds a client from environment variables.
//
// Supported env vars:
//   - BACKEND_URL (default: http://localhost:8000)
//   - HTTP_TIMEOUT_SECONDS (default: 15)
func NewFromEnv() *Client {
	timeout := defaultTimeout
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}
	base := getenvDefault("BACKEND_URL", "http://localhost:8000")
	log.Printf("[backend][client] configured base_url=%s timeout=%s", base, timeout)
	return New(base, &http.Client{Timeout: timeout})
}

// ListPrinters fetches the printer catalog.
func (c *Client) ListPrinters(ctx context.Context) ([]entities.Product, error) {
	var out struct {
		Items []entities.Product `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/printers", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// RequestEstimate prices one job. The input is validated before leaving the
// client; an invalid snapshot is never sent upstream.
func (c *Client) RequestEstimate(ctx context.Context, input entities.EstimateInput) (entities.EstimateResult, error) {
	if err := input.Validate(); err != nil {
		return entities.EstimateResult{}, err
	}
	var result entities.EstimateResult
	if err := c.postJSON(ctx, "/api/estimate", nil, input, &result); err != nil {
		return entities.EstimateResult{}, err
	}
	if result.EstimatedCost < 0 {
		return entities.EstimateResult{}, fmt.Errorf("%w: /api/estimate returned negative estimated_cost", ErrTransport)
	}
	return result, nil
}

// SubmitQuote sends the held estimate and notes with the session token.
func (c *Client) SubmitQuote(ctx context.Context, token string, submission entities.QuoteSubmission) (entities.QuoteOutcome, error) {
	headers := map[string]string{TokenHeader: token}
	var outcome entities.QuoteOutcome
	if err := c.postJSON(ctx, "/api/quote", headers, submission, &outcome); err != nil {
		return entities.QuoteOutcome{}, err
	}
	if outcome.Message == "" {
		return entities.QuoteOutcome{}, fmt.Errorf("%w: /api/quote returned no message", ErrTransport)
	}
	return outcome, nil
}

// Login exchanges credentials for a token and identity. Any non-2xx response
// is a uniform failure; the caller normalizes further.
func (c *Client) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string        `json:"token"`
		User  entities.User `json:"user"`
	}
	if err := c.postJSON(ctx, "/api/auth/login", nil, body, &out); err != nil {
		return "", entities.User{}, err
	}
	if out.Token == "" {
		return "", entities.User{}, fmt.Errorf("%w: /api/auth/login returned no token", ErrTransport)
	}
	return out.Token, out.User, nil
}

// ListOrders fetches the order history for one account.
func (c *Client) ListOrders(ctx context.Context, email string) ([]entities.Order, error) {
	var out struct {
		Items []entities.Order `json:"items"`
	}
	path := "/api/account/orders?email=" + url.QueryEscape(email)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransport, path, err)
	}
	return c.do(req, path, out)
}

func (c *Client) postJSON(ctx context.Context, path string, headers map[string]string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransport, path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransport, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[backend][client] request failed path=%s err=%v", path, err)
		return fmt.Errorf("%w: %s: %v", ErrTransport, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		log.Printf("[backend][client] non-2xx path=%s status=%d", path, resp.StatusCode)
		return fmt.Errorf("%w: %s returned status %d", ErrTransport, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("[backend][client] decode failed path=%s err=%v", path, err)
		return fmt.Errorf("%w: %s: decode: %v", ErrTransport, path, err)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

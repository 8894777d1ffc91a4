package porkbun

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://porkbun.com/api/json/v3"

// Record mirrors the wire shape of one record in Porkbun responses. Numeric
// fields arrive as strings.
type Record struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
	TTL     string `json:"ttl"`
	Prio    string `json:"prio"`
}

// Request is the record payload for create and edit calls. Prio is only sent
// when set, matching the API's handling of non-ordered record types.
type Request struct {
	Name    string
	Type    string
	Content string
	TTL     int
	Prio    *int
}

// Client talks to the Porkbun JSON v3 record-management API. Every call is
// a POST carrying the credential pair in the body.
type Client struct {
	baseURL   string
	apiKey    string
	secretKey string
	http      *http.Client
}

// New builds a client; baseURL overrides the production endpoint when
// non-empty (tests, PORKBUN_API_URL).
func New(apiKey, secretKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		secretKey: secretKey,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

type response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Records []Record    `json:"records"`
	ID      json.Number `json:"id"`
}

func (c *Client) post(ctx context.Context, path string, extra map[string]any) (*response, error) {
	payload := map[string]any{
		"apikey":       c.apiKey,
		"secretapikey": c.secretKey,
	}
	for k, v := range extra {
		payload[k] = v
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("porkbun: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("porkbun: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("porkbun: POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	var result response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("porkbun: decode response from %s: %w", path, err)
	}

	if result.Status != "SUCCESS" {
		msg := result.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("porkbun: %s: %s", path, msg)
	}
	return &result, nil
}

// Retrieve lists all records of a root domain.
func (c *Client) Retrieve(ctx context.Context, domain string) ([]Record, error) {
	resp, err := c.post(ctx, "/dns/retrieve/"+domain, nil)
	if err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// RetrieveByNameType lists the records matching (domain, type, subdomain);
// an empty subdomain addresses the apex.
func (c *Client) RetrieveByNameType(ctx context.Context, domain, qtype, subdomain string) ([]Record, error) {
	path := fmt.Sprintf("/dns/retrieveByNameType/%s/%s/%s", domain, qtype, subdomain)
	resp, err := c.post(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// Create adds a record to a root domain and returns its id.
func (c *Client) Create(ctx context.Context, domain string, r Request) (string, error) {
	resp, err := c.post(ctx, "/dns/create/"+domain, r.payload())
	if err != nil {
		return "", err
	}
	return resp.ID.String(), nil
}

// Edit replaces the record with the given id.
func (c *Client) Edit(ctx context.Context, domain, id string, r Request) error {
	_, err := c.post(ctx, fmt.Sprintf("/dns/edit/%s/%s", domain, id), r.payload())
	return err
}

func (r Request) payload() map[string]any {
	p := map[string]any{
		"name":    r.Name,
		"type":    r.Type,
		"content": r.Content,
		"ttl":     r.TTL,
	}
	if r.Prio != nil {
		p["prio"] = *r.Prio
	}
	return p
}

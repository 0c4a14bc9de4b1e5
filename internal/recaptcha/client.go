// internal/recaptcha/client.go
package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Result is the subset of the siteverify response the contact form uses.
type Result struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score,omitempty"`
	Action     string   `json:"action,omitempty"`
	Hostname   string   `json:"hostname,omitempty"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

type Client struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

func NewClient(secret, verifyURL string) *Client {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	return &Client{
		secret:     secret,
		verifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify posts token to siteverify. An error means the service could not be asked;
// a rejected token comes back as Result.Success == false.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (*Result, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call siteverify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("siteverify returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode siteverify response: %w", err)
	}
	return &result, nil
}

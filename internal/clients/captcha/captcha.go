// Package captcha talks to an hCaptcha-compatible verification endpoint.
package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type VerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

type Client struct {
	secret    string
	verifyURL string
	http      *http.Client
}

func New(secret, verifyURL string) *Client {
	return &Client{
		secret:    secret,
		verifyURL: verifyURL,
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Verify checks a client-side token with the verification service. A
// transport or timeout failure is returned as an error so the caller can
// apply its fail-open or fail-closed policy; a definitive "no" from the
// service comes back as (false, nil).
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if c.secret == "" {
		return false, errors.New("missing captcha secret")
	}
	if strings.TrimSpace(token) == "" {
		return false, nil
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return false, err
	}

	var out VerifyResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return false, err
	}
	return out.Success, nil
}

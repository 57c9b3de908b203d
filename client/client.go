// Package client is a WhatsApp Cloud API client backed by resty. Every
// non-2xx response is converted into a classified *apierror.Error carrying a
// category and retry hint; the client itself never retries.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/bmamadou/wacloud/apierror"
)

const (
	defaultBaseURL    = "https://graph.facebook.com"
	defaultAPIVersion = "v23.0"
	defaultTimeout    = 30 * time.Second
)

// Config holds credentials and endpoint options for the Graph API.
type Config struct {
	AccessToken string
	BaseURL     string
	APIVersion  string
	Timeout     time.Duration
}

// Client exposes WhatsApp Cloud API operations. Safe for concurrent use.
type Client struct {
	http   *resty.Client
	cdn    *resty.Client
	token  string
	logger *zap.Logger
}

// New builds a Graph API client from the provided configuration.
func New(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	base = strings.TrimSuffix(base, "/")

	version := cfg.APIVersion
	if version == "" {
		version = defaultAPIVersion
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(fmt.Sprintf("%s/%s", base, version)).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.AccessToken)).
		SetTimeout(timeout)

	// Media lives on a CDN that rejects Graph auth headers, so downloads go
	// through a bare client.
	cdnClient := resty.New().SetTimeout(timeout)

	return &Client{
		http:   httpClient,
		cdn:    cdnClient,
		token:  cfg.AccessToken,
		logger: logger,
	}
}

// getJSON performs a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, params map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	return c.decode(resp, out)
}

// postJSON performs a POST with a JSON body and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	return c.decode(resp, out)
}

// deleteJSON performs a DELETE and decodes the response into out.
func (c *Client) deleteJSON(ctx context.Context, path string, params map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Delete(path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return c.decode(resp, out)
}

// decode rejects non-2xx responses with a classified error, then unmarshals
// the body into out when requested.
func (c *Client) decode(resp *resty.Response, out any) error {
	if resp.StatusCode() >= 400 {
		apiErr := apierror.FromResponse(resp.StatusCode(), resp.Body(), resp.Header().Get("Retry-After"))
		c.logger.Warn("graph api request failed",
			zap.Int("status", resp.StatusCode()),
			zap.Int("code", apiErr.Code),
			zap.String("category", string(apiErr.Category)),
			zap.String("retry_action", string(apiErr.Retry.Action)))
		return apiErr
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode graph api response: %w", err)
	}
	return nil
}

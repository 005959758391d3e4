package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diillson/twilio-cli-go/internal/domain/entity"
	"github.com/diillson/twilio-cli-go/internal/domain/repository"
	"github.com/diillson/twilio-cli-go/pkg/version"
	"github.com/ettle/strcase"
)

const (
	apiVersion     = "2010-04-01"
	defaultTimeout = 30 * time.Second
)

// APIError is an error response returned by the REST API.
type APIError struct {
	Status   int    `json:"status"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Message
}

// Client issues REST requests on behalf of a client handle.
type Client struct {
	handle     entity.ClientHandle
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL pins the API origin, ignoring the handle's region.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// NewClient creates a REST client for handle.
func NewClient(handle entity.ClientHandle, opts ...Option) *Client {
	c := &Client{
		handle:     handle,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API origin, regional when the handle has a region.
func (c *Client) BaseURL() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	if c.handle.HasRegion() {
		return fmt.Sprintf("https://api.%s.twilio.com", c.handle.Region)
	}
	return "https://api.twilio.com"
}

// IncomingPhoneNumbers returns the phone number resources of the handle's account.
func (c *Client) IncomingPhoneNumbers() repository.ResourceFactory {
	return func(sid string) repository.Resource {
		return &resource{
			client: c,
			path:   fmt.Sprintf("/%s/Accounts/%s/IncomingPhoneNumbers/%s.json", apiVersion, c.handle.AccountSid, url.PathEscape(sid)),
		}
	}
}

// Accounts returns account resources.
func (c *Client) Accounts() repository.ResourceFactory {
	return func(sid string) repository.Resource {
		return &resource{
			client: c,
			path:   fmt.Sprintf("/%s/Accounts/%s.json", apiVersion, url.PathEscape(sid)),
		}
	}
}

type resource struct {
	client *Client
	path   string
}

// Update posts props as form fields. Field names are sent in PascalCase.
func (r *resource) Update(ctx context.Context, props entity.Properties) error {
	form := url.Values{}
	for _, prop := range props {
		form.Set(strcase.ToPascal(prop.Field), prop.Value)
	}
	return r.client.post(ctx, r.path, form)
}

func (c *Client) post(ctx context.Context, path string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL()+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("error building request: %w", err)
	}
	req.SetBasicAuth(c.handle.Username, c.handle.Password)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode}
	body, err := io.ReadAll(resp.Body)
	if err == nil && len(body) > 0 {
		_ = json.Unmarshal(body, apiErr)
	}
	apiErr.Status = resp.StatusCode
	return apiErr
}

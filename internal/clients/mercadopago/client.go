package mercadopago

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/mercadopago/internal/entity"
	"github.com/samandr77/microservices/mercadopago/pkg/config"
	"github.com/samandr77/microservices/mercadopago/pkg/transport"
)

const (
	DefaultBaseURL         = "https://api.mercadopago.com"
	DefaultIntegrationType = "magento"

	defaultTimeout      = 10 * time.Second
	defaultRetryWaitMax = 5 * time.Second
	sandboxPrefix       = "/sandbox"
)

type Platform string

const (
	PlatformOpen     Platform = "openplatform"
	PlatformStandard Platform = "std"
)

// Factory builds provider clients that share one HTTP transport.
type Factory struct {
	http            *http.Client
	baseURL         string
	integrationType string
	version         string
}

func NewFactory(cfg config.MercadoPago) *Factory {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(http.DefaultTransport)

	retryClient.HTTPClient.Timeout = cfg.Timeout
	if retryClient.HTTPClient.Timeout <= 0 {
		retryClient.HTTPClient.Timeout = defaultTimeout
	}

	retryClient.Logger = nil

	// Only connection errors are retried.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return NewFactoryWithClient(retryClient.StandardClient(), cfg.BaseURL, cfg.IntegrationType, cfg.ModuleVersion)
}

func NewFactoryWithClient(c *http.Client, baseURL, integrationType, version string) *Factory {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if integrationType == "" {
		integrationType = DefaultIntegrationType
	}

	return &Factory{
		http:            c,
		baseURL:         strings.TrimRight(baseURL, "/"),
		integrationType: integrationType,
		version:         version,
	}
}

// Build returns a client for exactly one credential variant. Bearer tokens use the open platform,
// client credentials the standard one.
func (f *Factory) Build(creds entity.Credentials, sandbox bool) (*Client, error) {
	mode, err := creds.Mode()
	if err != nil {
		return nil, fmt.Errorf("build client: %w", err)
	}

	platform := PlatformOpen
	if mode == entity.AuthModeClientCredentials {
		platform = PlatformStandard
	}

	return &Client{
		http:            f.http,
		baseURL:         f.baseURL,
		creds:           creds,
		mode:            mode,
		platform:        platform,
		sandbox:         sandbox,
		integrationType: f.integrationType,
		version:         f.version,
	}, nil
}

type Client struct {
	http            *http.Client
	baseURL         string
	creds           entity.Credentials
	mode            entity.AuthMode
	platform        Platform
	sandbox         bool
	integrationType string
	version         string
}

func (c *Client) Platform() Platform {
	return c.platform
}

func (c *Client) Mode() entity.AuthMode {
	return c.mode
}

func (c *Client) Sandbox() bool {
	return c.sandbox
}

// TrackingID is sent with every request so the provider can tell which integration called it.
func (c *Client) TrackingID() string {
	return fmt.Sprintf("platform:%s,type:%s,so:%s", c.platform, c.integrationType, c.version)
}

// Response is a raw provider response. Any status code is a valid response.
type Response struct {
	StatusCode int
	Body       []byte
}

func (r Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Get performs an authenticated GET. Only failures to reach the provider are returned as errors.
func (c *Client) Get(ctx context.Context, path string) (Response, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return Response{}, fmt.Errorf("get auth token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Tracking-Id", c.TrackingID())

	return c.do(req)
}

type authTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"` // In seconds
	TokenType   string `json:"token_type"`
}

// AccessToken returns the bearer token, or exchanges the client credentials for one.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	if c.mode == entity.AuthModeBearer {
		return c.creds.Bearer.AccessToken, nil
	}

	form := make(url.Values)
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.creds.OAuth.ClientID)
	form.Set("client_secret", c.creds.OAuth.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Tracking-Id", c.TrackingID())

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", entity.ErrAuthenticationFailure, resp.StatusCode, resp.Body)
	}

	var respData authTokenResponse

	err = json.Unmarshal(resp.Body, &respData)
	if err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if respData.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", entity.ErrAuthenticationFailure)
	}

	return respData.AccessToken, nil
}

// PaymentMethods lists the payment methods available to the account. It is a cheap read used
// to probe a token.
func (c *Client) PaymentMethods(ctx context.Context) (Response, error) {
	return c.Get(ctx, "/v1/payment_methods")
}

// Payment fetches a payment by id. Sandbox clients read the sandbox collection.
func (c *Client) Payment(ctx context.Context, id string) (entity.Payment, error) {
	if strings.TrimSpace(id) == "" {
		return entity.Payment{}, fmt.Errorf("payment id: %w", entity.ErrInvalidArgument)
	}

	path := "/v1/payments/" + url.PathEscape(id)
	if c.sandbox {
		path = sandboxPrefix + path
	}

	resp, err := c.Get(ctx, path)
	if err != nil {
		return entity.Payment{}, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entity.Payment{}, fmt.Errorf("payment %s: %w", id, entity.ErrNotFound)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return entity.Payment{}, fmt.Errorf("%w: status %d", entity.ErrAuthenticationFailure, resp.StatusCode)
	case !resp.OK():
		return entity.Payment{}, fmt.Errorf("bad response status %d:\n%s", resp.StatusCode, resp.Body)
	}

	var p entity.Payment

	err = json.Unmarshal(resp.Body, &p)
	if err != nil {
		return entity.Payment{}, fmt.Errorf("unmarshal response: %w", errors.Join(entity.ErrMalformedPayload, err))
	}

	return p, nil
}

func (c *Client) do(req *http.Request) (Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: do request: %w", entity.ErrTransport, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("%w: read response: %w", entity.ErrTransport, err)
	}

	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// Package backend is the gateway's client for the retail backend REST API.
// The gateway consumes this API but does not define it: payload shapes
// beyond token and profile are the backend's contract and stay opaque here.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/shopdesk/portalgate/session"
)

// API is the backend surface the portals depend on. Every authenticated call
// attaches the session token as a bearer credential. No method retries and
// none distinguishes a 401 from a 500: failures surface to the caller as-is.
type API interface {
	AdminLogin(ctx context.Context, email, password string) (session.Session, error)
	ShopLogin(ctx context.Context, username, password string) (session.Session, error)
	AdminProfile(ctx context.Context, token string) (session.Profile, error)
	ShopProfile(ctx context.Context, token string) (session.Profile, error)
	AdminForgotVerify(ctx context.Context, payload map[string]any) (map[string]any, error)
	AdminResetPassword(ctx context.Context, payload map[string]any) (map[string]any, error)
	ShopForgotVerify(ctx context.Context, payload map[string]any) (map[string]any, error)
	ShopResetPassword(ctx context.Context, payload map[string]any) (map[string]any, error)
	Forward(ctx context.Context, method, path string, query url.Values, header http.Header, body io.Reader, token string) (*http.Response, error)
}

// Client talks to the backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (primarily for tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient returns a client rooted at baseURL.
func NewClient(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

type loginResponse struct {
	Token string          `json:"token"`
	Admin session.Profile `json:"admin,omitempty"`
	Shop  session.Profile `json:"shop,omitempty"`
}

// AdminLogin exchanges admin credentials for a token and profile snapshot.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (session.Session, error) {
	var out loginResponse
	err := c.postJSON(ctx, "/admin/login", map[string]any{"email": email, "password": password}, "", &out)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "[Client.AdminLogin]")
	}
	return session.Session{Token: out.Token, Profile: out.Admin}, nil
}

// ShopLogin exchanges shop credentials for a token and profile snapshot.
func (c *Client) ShopLogin(ctx context.Context, username, password string) (session.Session, error) {
	var out loginResponse
	err := c.postJSON(ctx, "/shop/login", map[string]any{"username": username, "password": password}, "", &out)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "[Client.ShopLogin]")
	}
	return session.Session{Token: out.Token, Profile: out.Shop}, nil
}

// AdminProfile fetches the admin profile for the given token.
func (c *Client) AdminProfile(ctx context.Context, token string) (session.Profile, error) {
	var out struct {
		Admin session.Profile `json:"admin"`
	}
	if err := c.getJSON(ctx, "/admin/me", token, &out); err != nil {
		return nil, errors.Wrap(err, "[Client.AdminProfile]")
	}
	return out.Admin, nil
}

// ShopProfile fetches the shop profile for the given token. The shop portal
// calls this in the background to verify a hydrated token.
func (c *Client) ShopProfile(ctx context.Context, token string) (session.Profile, error) {
	var out struct {
		Shop session.Profile `json:"shop"`
	}
	if err := c.getJSON(ctx, "/shop/me", token, &out); err != nil {
		return nil, errors.Wrap(err, "[Client.ShopProfile]")
	}
	return out.Shop, nil
}

// AdminForgotVerify is a thin call-through to the backend's password
// recovery verification for the admin portal.
func (c *Client) AdminForgotVerify(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return c.callThrough(ctx, "/admin/forgot-verify", payload)
}

// AdminResetPassword is a thin call-through to the backend's password reset
// for the admin portal.
func (c *Client) AdminResetPassword(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return c.callThrough(ctx, "/admin/reset-password", payload)
}

// ShopForgotVerify is the shop portal equivalent of AdminForgotVerify.
func (c *Client) ShopForgotVerify(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return c.callThrough(ctx, "/shop/forgot-verify", payload)
}

// ShopResetPassword is the shop portal equivalent of AdminResetPassword.
func (c *Client) ShopResetPassword(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return c.callThrough(ctx, "/shop/reset-password", payload)
}

func (c *Client) callThrough(ctx context.Context, path string, payload map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := c.postJSON(ctx, path, payload, "", &out); err != nil {
		return nil, errors.Wrapf(err, "[Client] call-through %s", path)
	}
	return out, nil
}

// Forward relays an arbitrary request to the backend with the bearer token
// attached, returning the raw response for the caller to stream back. Hop
// headers are not copied; content type and accept headers are.
func (c *Client) Forward(ctx context.Context, method, path string, query url.Values, header http.Header, body io.Reader, token string) (*http.Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.Forward] build request")
	}
	for _, h := range []string{"Content-Type", "Accept"} {
		if v := header.Get(h); v != "" {
			req.Header.Set(h, v)
		}
	}
	setBearer(req, token)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.Forward]")
	}
	return resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, token string, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal payload")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	setBearer(req, token)
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	setBearer(req, token)
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiErrorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func setBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

var _ API = (*Client)(nil)

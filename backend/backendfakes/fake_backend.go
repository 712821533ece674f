package backendfakes

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/shopdesk/portalgate/backend"
	"github.com/shopdesk/portalgate/session"
)

var _ backend.API = (*FakeBackend)(nil)

// FakeBackend implements backend.API for tests. Each method delegates to an
// optional func field; unset fields return a not-configured error so tests
// fail loudly on unexpected calls. Call counts are recorded per method.
type FakeBackend struct {
	lock sync.Mutex

	AdminLoginFn   func(ctx context.Context, email, password string) (session.Session, error)
	ShopLoginFn    func(ctx context.Context, username, password string) (session.Session, error)
	AdminProfileFn func(ctx context.Context, token string) (session.Profile, error)
	ShopProfileFn  func(ctx context.Context, token string) (session.Profile, error)

	AdminLoginCalls   int
	ShopLoginCalls    int
	AdminProfileCalls int
	ShopProfileCalls  int

	forwarded []ForwardedRequest
}

func NewFakeBackend() *FakeBackend {
	return &FakeBackend{}
}

func (f *FakeBackend) AdminLogin(ctx context.Context, email, password string) (session.Session, error) {
	f.lock.Lock()
	f.AdminLoginCalls++
	fn := f.AdminLoginFn
	f.lock.Unlock()
	if fn == nil {
		return session.Session{}, errors.New("AdminLogin not configured")
	}
	return fn(ctx, email, password)
}

func (f *FakeBackend) ShopLogin(ctx context.Context, username, password string) (session.Session, error) {
	f.lock.Lock()
	f.ShopLoginCalls++
	fn := f.ShopLoginFn
	f.lock.Unlock()
	if fn == nil {
		return session.Session{}, errors.New("ShopLogin not configured")
	}
	return fn(ctx, username, password)
}

func (f *FakeBackend) AdminProfile(ctx context.Context, token string) (session.Profile, error) {
	f.lock.Lock()
	f.AdminProfileCalls++
	fn := f.AdminProfileFn
	f.lock.Unlock()
	if fn == nil {
		return nil, errors.New("AdminProfile not configured")
	}
	return fn(ctx, token)
}

func (f *FakeBackend) ShopProfile(ctx context.Context, token string) (session.Profile, error) {
	f.lock.Lock()
	f.ShopProfileCalls++
	fn := f.ShopProfileFn
	f.lock.Unlock()
	if fn == nil {
		return nil, errors.New("ShopProfile not configured")
	}
	return fn(ctx, token)
}

func (f *FakeBackend) AdminForgotVerify(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return map[string]any{"status": "ok"}, nil
}

func (f *FakeBackend) AdminResetPassword(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return map[string]any{"status": "ok"}, nil
}

func (f *FakeBackend) ShopForgotVerify(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return map[string]any{"status": "ok"}, nil
}

func (f *FakeBackend) ShopResetPassword(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return map[string]any{"status": "ok"}, nil
}

// ForwardedRequest records one Forward call.
type ForwardedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Token  string
	Body   []byte
}

// Forwarded lists every request relayed through Forward.
func (f *FakeBackend) Forwarded() []ForwardedRequest {
	f.lock.Lock()
	defer f.lock.Unlock()
	out := make([]ForwardedRequest, len(f.forwarded))
	copy(out, f.forwarded)
	return out
}

func (f *FakeBackend) Forward(ctx context.Context, method, path string, query url.Values, header http.Header, body io.Reader, token string) (*http.Response, error) {
	var data []byte
	if body != nil {
		data, _ = io.ReadAll(body)
	}
	f.lock.Lock()
	f.forwarded = append(f.forwarded, ForwardedRequest{Method: method, Path: path, Query: query, Token: token, Body: data})
	f.lock.Unlock()

	rec := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"status":"ok"}`)),
	}
	return rec, nil
}

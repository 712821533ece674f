package stubapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopdesk/portalgate/backend"
	"github.com/shopdesk/portalgate/stubapi"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	api, err := stubapi.New([]byte("test-signing-key"))
	require.NoError(t, err)
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, payload map[string]any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestAdminLoginToProfileRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/admin/login", map[string]any{
		"email":    "admin@example.com",
		"password": "Admin123!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody(t, resp)
	token, _ := out["token"].(string)
	require.NotEmpty(t, token)

	admin, ok := out["admin"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Store Admin", admin["name"])

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/admin/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	meResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer meResp.Body.Close()
	require.Equal(t, http.StatusOK, meResp.StatusCode)

	me := decodeBody(t, meResp)
	profile, ok := me["admin"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "admin@example.com", profile["email"])
}

func TestShopLoginReturnsShopProfile(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/shop/login", map[string]any{
		"username": "shop1",
		"password": "Shop123!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeBody(t, resp)
	require.NotEmpty(t, out["token"])

	shop, ok := out["shop"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Acme Repairs", shop["name"])
	require.Equal(t, "Avery Acme", shop["ownerName"])
}

func TestLoginRejectsBadPassword(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/admin/login", map[string]any{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	out := decodeBody(t, resp)
	require.Equal(t, "invalid email or password", out["message"])
}

func TestLoginRejectsUnknownAccount(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/shop/login", map[string]any{
		"username": "nobody",
		"password": "Shop123!",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileRejectsMissingAndBogusTokens(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/shop/me")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/shop/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTokenIsPortalScoped(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/shop/login", map[string]any{
		"username": "shop1",
		"password": "Shop123!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := decodeBody(t, resp)["token"].(string)
	require.NotEmpty(t, token)

	// A shop token must not unlock the admin profile endpoint.
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/admin/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	meResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	meResp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, meResp.StatusCode)
}

func TestGatewayClientSpeaksStubDialect(t *testing.T) {
	srv := newTestServer(t)
	client := backend.NewClient(srv.URL)

	sess, err := client.ShopLogin(t.Context(), "shop1", "Shop123!")
	require.NoError(t, err)
	require.True(t, sess.Active())
	require.Equal(t, "Acme Repairs", sess.Profile.Field("name"))

	profile, err := client.ShopProfile(t.Context(), sess.Token)
	require.NoError(t, err)
	require.Equal(t, "Avery Acme", profile.Field("ownerName"))

	_, err = client.AdminLogin(t.Context(), "admin@example.com", "nope")
	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestPasswordRecoveryStubsAcknowledge(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{
		"/admin/forgot-verify",
		"/admin/reset-password",
		"/shop/forgot-verify",
		"/shop/reset-password",
	} {
		resp := postJSON(t, srv.URL+path, map[string]any{"email": "admin@example.com"})
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		require.Equal(t, "ok", decodeBody(t, resp)["status"])
	}
}

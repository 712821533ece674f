package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopdesk/portalgate/backend"
	"github.com/shopdesk/portalgate/session"
)

func TestAdminLoginDecodesTokenAndProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/admin/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "admin@example.com", body["email"])
		require.Equal(t, "Admin123!", body["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"t1","admin":{"name":"Store Admin","email":"admin@example.com"}}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	sess, err := client.AdminLogin(context.Background(), "admin@example.com", "Admin123!")
	require.NoError(t, err)
	require.Equal(t, "t1", sess.Token)
	require.Equal(t, "Store Admin", sess.Profile.Field("name"))
}

func TestShopLoginDecodesShopKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/shop/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"t1","shop":{"name":"Acme"}}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	sess, err := client.ShopLogin(context.Background(), "shop1", "Shop123!")
	require.NoError(t, err)
	require.Equal(t, session.Session{Token: "t1", Profile: session.Profile{"name": "Acme"}}, sess)
}

func TestLoginFailureCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid email or password"}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	_, err := client.AdminLogin(context.Background(), "admin@example.com", "wrong")
	require.Error(t, err)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "invalid email or password", apiErr.Message)
}

func TestErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	_, err := client.ShopProfile(context.Background(), "t1")

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}

func TestProfileRequestsAttachBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		require.Equal(t, "/shop/me", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"shop":{"name":"Acme","ownerName":"Avery"}}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	profile, err := client.ShopProfile(context.Background(), "t1")
	require.NoError(t, err)
	require.Equal(t, "Avery", profile.Field("ownerName"))
}

func TestForwardRelaysMethodPathQueryAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/admin/items/42", r.URL.Path)
		require.Equal(t, "full", r.URL.Query().Get("view"))
		require.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Cookie"))

		body, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{"price":10}`, string(body))

		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"updated":true}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Cookie", "secret=1")

	resp, err := client.Forward(
		context.Background(),
		http.MethodPut,
		"/admin/items/42",
		url.Values{"view": []string{"full"}},
		header,
		strings.NewReader(`{"price":10}`),
		"t1",
	)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"updated":true}`, string(body))
}

func TestCallThroughReturnsBackendPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/shop/forgot-verify", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL)
	out, err := client.ShopForgotVerify(context.Background(), map[string]any{"username": "shop1"})
	require.NoError(t, err)
	require.Equal(t, "ok", out["status"])
}

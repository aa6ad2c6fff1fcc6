package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIdP serves discovery, token and userinfo endpoints
func fakeIdP(t *testing.T, profile map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Discovery{
			AuthorizationEndpoint: srv.URL + "/auth",
			TokenEndpoint:         srv.URL + "/token",
			UserinfoEndpoint:      srv.URL + "/userinfo",
		})
	})
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.PostForm.Get("code") != "good-code" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(profile)
	})
	return srv
}

func newTestProvider(t *testing.T, srv *httptest.Server) *OIDCProvider {
	t.Helper()
	p, err := NewOIDCProvider(context.Background(), Config{
		ClientID:     "client",
		ClientSecret: "secret",
		DiscoveryURL: srv.URL + "/.well-known/openid-configuration",
		RedirectURL:  "http://portal.test/authorize",
		HTTPClient:   srv.Client(),
	})
	require.NoError(t, err)
	return p
}

func TestAuthCodeURL(t *testing.T) {
	srv := fakeIdP(t, nil)
	p := newTestProvider(t, srv)

	u, err := url.Parse(p.AuthCodeURL("state-1"))
	require.NoError(t, err)
	assert.Equal(t, "/auth", u.Path)
	q := u.Query()
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "client", q.Get("client_id"))
	assert.Equal(t, "openid email profile", q.Get("scope"))
	assert.Equal(t, "http://portal.test/authorize", q.Get("redirect_uri"))
}

func TestExchange(t *testing.T) {
	srv := fakeIdP(t, map[string]string{
		"email": "asha@example.com", "name": "Asha K", "given_name": "Asha",
		"family_name": "K", "picture": "http://pic",
	})
	p := newTestProvider(t, srv)

	profile, err := p.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, Profile{Email: "asha@example.com", Name: "Asha K", GivenName: "Asha", FamilyName: "K", Picture: "http://pic"}, *profile)

	_, err = p.Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestExchangeWithoutEmail(t *testing.T) {
	srv := fakeIdP(t, map[string]string{"name": "No Mail"})
	_, err := newTestProvider(t, srv).Exchange(context.Background(), "good-code")
	assert.ErrorIs(t, err, ErrNoEmail)
}

func TestDiscoveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	_, err := NewOIDCProvider(context.Background(), Config{DiscoveryURL: srv.URL, HTTPClient: srv.Client()})
	assert.Error(t, err)

	_, err = NewOIDCProvider(context.Background(), Config{})
	assert.Error(t, err)
}

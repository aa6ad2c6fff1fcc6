// Package oauth redeems OAuth2 authorization codes for a verified profile.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Scopes requested from the provider
var Scopes = []string{"openid", "email", "profile"}

// ErrNoEmail is returned when the provider's profile carries no email
var ErrNoEmail = errors.New("profile has no email")

// Profile is what the portal keeps from the provider's userinfo response
type Profile struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// Provider is the identity provider as seen by the HTTP layer
type Provider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*Profile, error)
}

// Discovery holds the fields of an OpenID configuration document the portal uses
type Discovery struct {
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	UserinfoEndpoint      string `json:"userinfo_endpoint"`
}

// Config configures an OIDCProvider
type Config struct {
	ClientID     string
	ClientSecret string
	DiscoveryURL string
	RedirectURL  string
	HTTPClient   *http.Client // optional, defaults to a client with a 10s timeout
}

// OIDCProvider talks to an OpenID Connect provider such as Google
type OIDCProvider struct {
	oauth    *oauth2.Config
	userinfo string
	client   *http.Client
}

// NewOIDCProvider fetches the discovery document and prepares the OAuth2 client
func NewOIDCProvider(ctx context.Context, cfg Config) (*OIDCProvider, error) {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	disc, err := fetchDiscovery(ctx, client, cfg.DiscoveryURL)
	if err != nil {
		return nil, err
	}
	return &OIDCProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  disc.AuthorizationEndpoint,
				TokenURL: disc.TokenEndpoint,
			},
		},
		userinfo: disc.UserinfoEndpoint,
		client:   client,
	}, nil
}

func fetchDiscovery(ctx context.Context, client *http.Client, url string) (*Discovery, error) {
	if url == "" {
		return nil, errors.New("discovery url is empty")
	}
	var disc Discovery
	if err := getJSON(ctx, client, url, &disc); err != nil {
		return nil, fmt.Errorf("fetch discovery document: %w", err)
	}
	if disc.AuthorizationEndpoint == "" || disc.TokenEndpoint == "" || disc.UserinfoEndpoint == "" {
		return nil, fmt.Errorf("discovery document at %s is missing endpoints", url)
	}
	return &disc, nil
}

// AuthCodeURL returns the provider login URL carrying state
func (p *OIDCProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// Exchange redeems the code and fetches the userinfo profile
func (p *OIDCProvider) Exchange(ctx context.Context, code string) (*Profile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	var profile Profile
	if err := getJSON(ctx, p.oauth.Client(ctx, token), p.userinfo, &profile); err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	if profile.Email == "" {
		return nil, ErrNoEmail
	}
	return &profile, nil
}

func getJSON(ctx context.Context, client *http.Client, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GET %s: status %d: %s", url, resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

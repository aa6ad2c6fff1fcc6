// Package session keeps the logged-in identity in redis and hands the browser
// a signed token that names the redis entry.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alumni_portal/internal/domain"
	"alumni_portal/internal/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the cookie that carries the session token
const CookieName = "alumni_session"

const keyPrefix = "session:"

// ErrNoSession is returned when a token is valid but its server-side entry is gone
var ErrNoSession = errors.New("session not found")

// Identity is the per-request copy of the Admin row. The database row stays authoritative.
type Identity struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Name       string `json:"name"`
	ProfilePic string `json:"profile_pic"`
	Admin      bool   `json:"admin"`
}

// NewIdentity builds the session payload from a stored admin and the provider's name parts
func NewIdentity(a domain.Admin, firstName, lastName string) Identity {
	return Identity{
		ID:         a.ID,
		Email:      a.Email,
		FirstName:  firstName,
		LastName:   lastName,
		Name:       a.Name,
		ProfilePic: a.ProfilePic,
		Admin:      a.Admin,
	}
}

// Store persists identities in redis
type Store struct {
	rdb    *redis.Client
	secret string
	ttl    time.Duration
}

// NewStore creates a Store signing tokens with secret
func NewStore(rdb *redis.Client, secret string, ttl time.Duration) *Store {
	return &Store{rdb: rdb, secret: secret, ttl: ttl}
}

// TTL reports how long sessions live
func (s *Store) TTL() time.Duration { return s.ttl }

// Create stores the identity and returns the signed token for the cookie
func (s *Store) Create(ctx context.Context, id Identity) (string, error) {
	sid := uuid.NewString()
	if err := utils.SetCache(ctx, s.rdb, keyPrefix+sid, id, s.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	token, err := utils.GenerateJWT(sid, s.secret, s.ttl)
	if err != nil {
		_ = utils.DeleteCache(ctx, s.rdb, keyPrefix+sid)
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// Load resolves a token to its identity
func (s *Store) Load(ctx context.Context, token string) (*Identity, error) {
	claims, err := utils.ParseJWT(token, s.secret)
	if err != nil {
		return nil, err
	}
	var id Identity
	found, err := utils.GetCache(ctx, s.rdb, keyPrefix+claims.SessionID, &id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return nil, ErrNoSession
	}
	return &id, nil
}

// Destroy removes the server-side entry. Unknown or invalid tokens are ignored.
func (s *Store) Destroy(ctx context.Context, token string) error {
	claims, err := utils.ParseJWT(token, s.secret)
	if err != nil {
		return nil
	}
	return utils.DeleteCache(ctx, s.rdb, keyPrefix+claims.SessionID)
}

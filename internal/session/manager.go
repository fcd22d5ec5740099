package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "sharegeb_session"

// Manager maps authenticated users to server-side session records. The
// browser only ever holds a signed token whose subject is the session ID;
// the record itself stays in the store.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create persists the record under a fresh session ID and returns the
// signed token for the cookie.
func (m *Manager) Create(ctx context.Context, rec *Record) (string, error) {
	id := uuid.NewString()
	if err := m.store.Set(ctx, id, rec, m.ttl); err != nil {
		return "", err
	}
	rec.SessionID = id

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   id,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Resolve validates the signed token and loads the backing record.
func (m *Manager) Resolve(ctx context.Context, signed string) (*Record, error) {
	token, err := jwt.ParseWithClaims(signed, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrSessionNotFound
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrSessionNotFound
	}

	rec, err := m.store.Get(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	rec.SessionID = claims.Subject

	return rec, nil
}

// Update rewrites the stored record in place, keeping its session ID.
func (m *Manager) Update(ctx context.Context, rec *Record) error {
	if rec.SessionID == "" {
		return ErrSessionNotFound
	}
	return m.store.Set(ctx, rec.SessionID, rec, m.ttl)
}

// Invalidate clears the session record (logout).
func (m *Manager) Invalidate(ctx context.Context, rec *Record) error {
	if rec == nil || rec.SessionID == "" {
		return nil
	}
	return m.store.Delete(ctx, rec.SessionID)
}

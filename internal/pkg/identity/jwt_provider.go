package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vibe-notes-be/internal/entity"
	"vibe-notes-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const revokedKeyPrefix = "session:revoked:"

type claims struct {
	UserId string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTProvider issues and verifies HS256 access tokens. Logged out sessions
// are remembered in the revocation store until the token would have expired.
type JWTProvider struct {
	secret  []byte
	ttl     time.Duration
	revoked store.KVStore
	now     func() time.Time
}

func NewJWTProvider(secret string, ttl time.Duration, revoked store.KVStore) *JWTProvider {
	return &JWTProvider{
		secret:  []byte(secret),
		ttl:     ttl,
		revoked: revoked,
		now:     time.Now,
	}
}

func (p *JWTProvider) Issue(ctx context.Context, user *entity.User) (string, time.Time, error) {
	if len(p.secret) == 0 {
		return "", time.Time{}, ErrNotConfigured
	}

	now := p.now()
	expiresAt := now.Add(p.ttl)
	c := claims{
		UserId: user.Id.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (p *JWTProvider) CurrentCaller(ctx context.Context, token string) (*entity.Caller, error) {
	if token == "" {
		return nil, nil
	}

	c, err := p.parse(token)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	userId, err := uuid.Parse(c.UserId)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user_id claim", ErrInvalidToken)
	}

	_, err = p.revoked.Get(ctx, revokedKeyPrefix+c.ID)
	switch {
	case err == nil:
		return nil, nil
	case !errors.Is(err, store.ErrMiss):
		return nil, fmt.Errorf("session lookup: %w", err)
	}

	return &entity.Caller{
		Id:        userId,
		Email:     c.Email,
		SessionId: c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

// EndSession revokes the token. Ending an absent or expired session is a no-op.
func (p *JWTProvider) EndSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	c, err := p.parse(token)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil
	}
	if err != nil {
		return err
	}

	ttl := c.ExpiresAt.Time.Sub(p.now())
	if ttl <= 0 {
		return nil
	}
	return p.revoked.Set(ctx, revokedKeyPrefix+c.ID, []byte("1"), ttl)
}

func (p *JWTProvider) parse(token string) (*claims, error) {
	if len(p.secret) == 0 {
		return nil, ErrNotConfigured
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, err
	}
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.ID == "" {
		return nil, fmt.Errorf("%w: missing jti", ErrInvalidToken)
	}
	return &c, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/placement-portal/api/internal/domain"
)

// DefaultTokenTTL is the lifetime of an issued token.
const DefaultTokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken covers bad signatures, malformed payloads, expiry and revocation.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret   []byte
	ttl      time.Duration
	sessions SessionStore
	now      func() time.Time
}

// NewTokenManager builds a new manager. A nil session store means stateless tokens.
func NewTokenManager(secret string, ttl time.Duration, sessions SessionStore) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if sessions == nil {
		sessions = StatelessSessions{}
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, sessions: sessions, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (tm *TokenManager) WithClock(now func() time.Time) *TokenManager {
	tm.now = now
	return tm
}

// Claims describes JWT payload.
type Claims struct {
	UserID int64       `json:"id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for the user and registers its session.
func (tm *TokenManager) Issue(ctx context.Context, user *domain.User) (string, time.Time, error) {
	issuedAt := tm.now()
	expiresAt := issuedAt.Add(tm.ttl)
	tokenID := uuid.NewString()

	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	if err := tm.sessions.Create(ctx, tokenID, user.ID, tm.ttl); err != nil {
		return "", time.Time{}, fmt.Errorf("create session: %w", err)
	}
	return tokenString, expiresAt, nil
}

// Validate verifies signature, payload and expiry and returns the principal.
// Errors wrapping ErrInvalidToken mean the caller is unauthenticated; any
// other error is a session store failure.
func (tm *TokenManager) Validate(ctx context.Context, tokenStr string) (*domain.Principal, error) {
	claims, err := tm.parse(tokenStr)
	if err != nil {
		return nil, err
	}

	active, err := tm.sessions.Exists(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if !active {
		return nil, fmt.Errorf("%w: session revoked", ErrInvalidToken)
	}

	return &domain.Principal{UserID: claims.UserID, Role: claims.Role, TokenID: claims.ID}, nil
}

// Revoke ends the token's session. Stateless tokens stay valid until expiry.
func (tm *TokenManager) Revoke(ctx context.Context, tokenStr string) error {
	claims, err := tm.parse(tokenStr)
	if err != nil {
		return err
	}
	return tm.sessions.Revoke(ctx, claims.ID)
}

func (tm *TokenManager) parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}
	if claims.UserID <= 0 || !claims.Role.Valid() || claims.ID == "" {
		return nil, fmt.Errorf("%w: malformed payload", ErrInvalidToken)
	}
	return claims, nil
}

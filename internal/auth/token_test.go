package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placement-portal/api/internal/domain"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func student() *domain.User {
	return &domain.User{ID: 42, Name: "A", Email: "a@x.com", Role: domain.RoleStudent}
}

func TestIssueAndValidate(t *testing.T) {
	clock := newClock()
	tm := NewTokenManager("secret", 0, nil).WithClock(clock.Now)
	ctx := context.Background()

	token, exp, err := tm.Issue(ctx, student())
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(7*24*time.Hour), exp)

	principal, err := tm.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), principal.UserID)
	assert.Equal(t, domain.RoleStudent, principal.Role)
	assert.NotEmpty(t, principal.TokenID)
}

func TestValidateExpiry(t *testing.T) {
	clock := newClock()
	tm := NewTokenManager("secret", DefaultTokenTTL, nil).WithClock(clock.Now)
	ctx := context.Background()

	token, _, err := tm.Issue(ctx, student())
	require.NoError(t, err)

	clock.Advance(7*24*time.Hour - time.Minute)
	_, err = tm.Validate(ctx, token)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = tm.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	token, _, err := NewTokenManager("other-secret", 0, nil).Issue(ctx, student())
	require.NoError(t, err)

	_, err = NewTokenManager("secret", 0, nil).Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsMalformed(t *testing.T) {
	tm := NewTokenManager("secret", 0, nil)
	ctx := context.Background()

	_, err := tm.Validate(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	unknownRole := sign(&Claims{UserID: 1, Role: "admin", RegisteredClaims: jwt.RegisteredClaims{ID: "x", ExpiresAt: exp}}, jwt.SigningMethodHS256, []byte("secret"))
	_, err = tm.Validate(ctx, unknownRole)
	assert.ErrorIs(t, err, ErrInvalidToken)

	missingID := sign(&Claims{Role: domain.RoleTPO, RegisteredClaims: jwt.RegisteredClaims{ID: "x", ExpiresAt: exp}}, jwt.SigningMethodHS256, []byte("secret"))
	_, err = tm.Validate(ctx, missingID)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noExpiry := sign(&Claims{UserID: 1, Role: domain.RoleTPO, RegisteredClaims: jwt.RegisteredClaims{ID: "x"}}, jwt.SigningMethodHS256, []byte("secret"))
	_, err = tm.Validate(ctx, noExpiry)
	assert.ErrorIs(t, err, ErrInvalidToken)

	wrongAlg := sign(&Claims{UserID: 1, Role: domain.RoleTPO, RegisteredClaims: jwt.RegisteredClaims{ID: "x", ExpiresAt: exp}}, jwt.SigningMethodHS512, []byte("secret"))
	_, err = tm.Validate(ctx, wrongAlg)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestStatelessRevokeIsNoop(t *testing.T) {
	tm := NewTokenManager("secret", 0, StatelessSessions{})
	ctx := context.Background()

	token, _, err := tm.Issue(ctx, student())
	require.NoError(t, err)
	require.NoError(t, tm.Revoke(ctx, token))

	_, err = tm.Validate(ctx, token)
	assert.NoError(t, err)
}

func TestRedisSessionRevocation(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	tm := NewTokenManager("secret", time.Hour, NewRedisSessionStore(client))
	ctx := context.Background()

	token, _, err := tm.Issue(ctx, student())
	require.NoError(t, err)

	principal, err := tm.Validate(ctx, token)
	require.NoError(t, err)
	assert.True(t, srv.Exists(sessionKey(principal.TokenID)))
	assert.Equal(t, time.Hour, srv.TTL(sessionKey(principal.TokenID)))

	require.NoError(t, tm.Revoke(ctx, token))
	_, err = tm.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRedisSessionStoreFailureIsNotInvalidToken(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	tm := NewTokenManager("secret", time.Hour, NewRedisSessionStore(client))
	ctx := context.Background()

	token, _, err := tm.Issue(ctx, student())
	require.NoError(t, err)

	srv.SetError("LOADING")
	_, err = tm.Validate(ctx, token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

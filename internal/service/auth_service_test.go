package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/placement-portal/api/internal/auth"
	"github.com/placement-portal/api/internal/domain"
	apperrors "github.com/placement-portal/api/pkg/util"
)

func newAuthService(users *fakeUserRepo) *AuthService {
	return NewAuthService(AuthDependencies{
		UserRepo: users,
		Tokens:   auth.NewTokenManager("test-secret", auth.DefaultTokenTTL, nil),
		Hasher:   auth.NewHasher(bcrypt.MinCost, 4),
	})
}

func studentInput() RegisterInput {
	return RegisterInput{Name: "A", Email: "a@x.com", Password: "pw", Role: domain.RoleStudent}
}

func TestRegisterThenLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	reg, err := svc.Register(ctx, studentInput())
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, int64(1), reg.User.ID)

	stored, err := users.GetByID(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "pw", stored.PasswordHash)

	login, err := svc.Login(ctx, "a@x.com", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)

	principal, err := svc.TokenManager().Validate(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, principal.Role)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	for _, mutate := range []func(*RegisterInput){
		func(in *RegisterInput) { in.Name = "" },
		func(in *RegisterInput) { in.Email = "" },
		func(in *RegisterInput) { in.Password = "" },
		func(in *RegisterInput) { in.Role = "" },
	} {
		in := studentInput()
		mutate(&in)
		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, ErrMissingRegisterFields)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	in := studentInput()
	in.Role = "admin"

	_, err := svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)
	ctx := context.Background()

	first, err := svc.Register(ctx, studentInput())
	require.NoError(t, err)

	again := studentInput()
	again.Name = "Impostor"
	again.Password = "other"
	_, err = svc.Register(ctx, again)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)

	stored, err := users.GetByID(ctx, first.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", stored.Name)
	_, err = svc.Login(ctx, "a@x.com", "pw", "")
	assert.NoError(t, err)
}

func TestRegisterEmailIsCaseSensitive(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, studentInput())
	require.NoError(t, err)

	upper := studentInput()
	upper.Email = "A@X.com"
	_, err = svc.Register(ctx, upper)
	assert.NoError(t, err)
}

func TestRegisterDropsEmptyOptionalFields(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	in := studentInput()
	empty, zero := "", 0
	in.Branch, in.GraduationYear = &empty, &zero

	res, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, res.User.Branch)
	assert.Nil(t, res.User.GraduationYear)
}

func TestLoginFailures(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()
	_, err := svc.Register(ctx, studentInput())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "", "pw", "")
	assert.ErrorIs(t, err, ErrMissingLoginFields)

	_, err = svc.Login(ctx, "nobody@x.com", "pw", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "a@x.com", "wrong", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "a@x.com", "pw", domain.RoleTPO)
	assert.ErrorIs(t, err, ErrRoleMismatch)

	// Role is checked before the password.
	_, err = svc.Login(ctx, "a@x.com", "wrong", domain.RoleTPO)
	assert.ErrorIs(t, err, ErrRoleMismatch)

	_, err = svc.Login(ctx, "a@x.com", "pw", domain.RoleStudent)
	assert.NoError(t, err)
}

func TestMe(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()
	reg, err := svc.Register(ctx, studentInput())
	require.NoError(t, err)

	user, err := svc.Me(ctx, &domain.Principal{UserID: reg.User.ID, Role: domain.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = svc.Me(ctx, &domain.Principal{UserID: 999, Role: domain.RoleStudent})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}

func TestStoreFailureIsInternal(t *testing.T) {
	users := newFakeUserRepo()
	users.err = errors.New("connection refused")
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), studentInput())
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, 500, de.HTTPStatus)
	assert.Equal(t, apperrors.InternalMessage, de.Message)
}

func TestLogoutStatelessIsNoop(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()
	reg, err := svc.Register(ctx, studentInput())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, reg.Token))
	_, err = svc.TokenManager().Validate(ctx, reg.Token)
	assert.NoError(t, err)

	assert.Error(t, svc.Logout(ctx, "garbage"))
}

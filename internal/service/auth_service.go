package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/placement-portal/api/internal/auth"
	"github.com/placement-portal/api/internal/domain"
	"github.com/placement-portal/api/internal/events"
	"github.com/placement-portal/api/internal/repository"
	apperrors "github.com/placement-portal/api/pkg/util"
)

// RegisterInput carries registration fields. Branch and GraduationYear are optional.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           domain.Role
	Branch         *string
	GraduationYear *int
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AuthService coordinates registration, login and profile lookup.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	hasher *auth.Hasher
	events events.Dispatcher
	logger *zap.Logger
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Tokens   *auth.TokenManager
	Hasher   *auth.Hasher
	Events   events.Dispatcher
	Logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dispatcher := deps.Events
	if dispatcher == nil {
		dispatcher = events.NewInMemoryDispatcher(logger)
	}
	return &AuthService{
		users:  deps.UserRepo,
		tokens: deps.Tokens,
		hasher: deps.Hasher,
		events: dispatcher,
		logger: logger,
	}
}

// Register creates a new account and issues its first token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, ErrMissingRegisterFields
	}
	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !repository.IsNotFound(err) {
		return nil, apperrors.NewInternalError(fmt.Errorf("lookup email: %w", err))
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("hash password: %w", err))
	}

	user := &domain.User{
		Name:           in.Name,
		Email:          in.Email,
		PasswordHash:   hash,
		Role:           in.Role,
		Branch:         nonEmpty(in.Branch),
		GraduationYear: nonZero(in.GraduationYear),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, apperrors.NewInternalError(fmt.Errorf("create user: %w", err))
	}

	token, exp, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("issue token: %w", err))
	}

	_ = s.events.Publish(ctx, events.New(events.EventUserRegistered,
		events.Actor{UserID: user.ID, Role: user.Role}, nil))
	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("role", string(user.Role)))

	return &AuthResult{User: user, Token: token, ExpiresAt: exp}, nil
}

// Login authenticates by email and password. When role is non-empty it must
// match the stored role; that check runs before the password comparison.
func (s *AuthService) Login(ctx context.Context, email, password string, role domain.Role) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrMissingLoginFields
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperrors.NewInternalError(fmt.Errorf("lookup email: %w", err))
	}

	if role != "" && user.Role != role {
		return nil, ErrRoleMismatch
	}

	if err := s.hasher.Compare(ctx, user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperrors.NewInternalError(fmt.Errorf("compare password: %w", err))
	}

	token, exp, err := s.tokens.Issue(ctx, user)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("issue token: %w", err))
	}

	_ = s.events.Publish(ctx, events.New(events.EventUserLoggedIn,
		events.Actor{UserID: user.ID, Role: user.Role}, nil))
	return &AuthResult{User: user, Token: token, ExpiresAt: exp}, nil
}

// Me returns the principal's profile.
func (s *AuthService) Me(ctx context.Context, principal *domain.Principal) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, principal.UserID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, apperrors.NewInternalError(fmt.Errorf("lookup user: %w", err))
	}
	return user, nil
}

// Logout revokes the token's session. With stateless tokens it is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.tokens.Revoke(ctx, token); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return apperrors.NewUnauthorized("Invalid or expired token")
		}
		return apperrors.NewInternalError(fmt.Errorf("revoke token: %w", err))
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func nonZero(i *int) *int {
	if i == nil || *i == 0 {
		return nil
	}
	return i
}

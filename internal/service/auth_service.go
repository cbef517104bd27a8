package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/storefront-labs/storefront-service/internal/auth"
	"github.com/storefront-labs/storefront-service/internal/clock"
	"github.com/storefront-labs/storefront-service/internal/config"
	"github.com/storefront-labs/storefront-service/internal/domain"
	"github.com/storefront-labs/storefront-service/internal/events"
	"github.com/storefront-labs/storefront-service/internal/repository"
	apperrors "github.com/storefront-labs/storefront-service/pkg/util"
)

// MsgEmailTaken is returned when signing up with a registered email.
const MsgEmailTaken = "User with this email already exist"

// AuthService coordinates signup, login, refresh and token invalidation.
type AuthService struct {
	users      repository.UserRepository
	codec      *auth.TokenCodec
	issuer     *auth.Issuer
	clock      clock.Clock
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.AuthConfig
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Codec      *auth.TokenCodec
	Issuer     *auth.Issuer
	Clock      clock.Clock
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	clk := deps.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		codec:      deps.Codec,
		issuer:     deps.Issuer,
		clock:      clk,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterUser creates an account. Emails listed in AUTH_ADMIN_EMAILS get
// the admin role.
func (s *AuthService) RegisterUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict(MsgEmailTaken, nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	role := domain.RoleUser
	if s.cfg.IsAdminEmail(email) {
		role = domain.RoleAdmin
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperrors.NewConflict(MsgEmailTaken, nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.New(events.EventUserRegistered, user.ID, user.ID, s.clock.Now(),
		events.UserRegisteredPayload{Email: user.Email, Role: string(user.Role)}))
	return user, nil
}

// Login exchanges credentials for a fresh token pair. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.TokenPair{}, auth.ToDomainError(auth.ErrInvalidCredentials)
		}
		return domain.TokenPair{}, apperrors.NewInternalError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.Error("stored password hash unreadable", zap.String("user_id", user.ID), zap.Error(err))
		}
		return domain.TokenPair{}, auth.ToDomainError(auth.ErrInvalidCredentials)
	}

	pair, err := s.issuer.IssuePair(user.ID, user.Email)
	if err != nil {
		return domain.TokenPair{}, auth.ToDomainError(err)
	}
	return pair, nil
}

// Refresh redeems a refresh token for a new access token. The refresh token
// itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.codec.Verify(auth.KindRefresh, refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrConfig) {
			s.logger.Error("refresh token settings missing", zap.Error(err))
		}
		return "", auth.RefreshDomainError(err)
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", auth.ToDomainError(auth.ErrPrincipalNotFound)
		}
		return "", apperrors.NewInternalError(err)
	}
	if auth.IsInvalidated(user.InvalidToken, claims) {
		return "", auth.ToDomainError(auth.ErrInvalidatedToken)
	}

	access, err := s.issuer.IssueAccessOnly(user.ID, user.Email)
	if err != nil {
		return "", auth.ToDomainError(err)
	}
	return access, nil
}

// Logout invalidates the access token presented on the current request.
// Only administrators may call it, and only the caller's own current token
// is ever marked.
func (s *AuthService) Logout(ctx context.Context, principal *auth.Principal) error {
	if principal == nil || principal.User == nil || principal.Claims == nil {
		return apperrors.NewUnauthorized(auth.MsgUnauthorized)
	}
	if err := requireAdmin(principal.User); err != nil {
		return err
	}

	userID, tokenID := principal.User.ID, principal.Claims.ID
	marker, err := auth.Invalidate(ctx, s.users, userID, tokenID, s.clock.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.ToDomainError(auth.ErrPrincipalNotFound)
		}
		return apperrors.NewInternalError(err)
	}

	s.logger.Info("token invalidated", zap.String("user_id", userID))
	s.publish(ctx, events.New(events.EventTokenInvalidated, userID, userID, s.clock.Now(),
		events.TokenInvalidatedPayload{TokenID: tokenID, CutoffEpochSeconds: *marker.CutoffEpochSeconds}))
	return nil
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

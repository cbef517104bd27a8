package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/storefront-labs/storefront-service/internal/domain"
	"github.com/storefront-labs/storefront-service/internal/repository"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller together with the claims of
// the token presented on this request.
type Principal struct {
	User   *domain.User
	Claims *Claims
}

// PrincipalStore loads the user a token was issued to.
type PrincipalStore interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Route is an allow-list entry. A Path ending in "/*" matches the prefix.
type Route struct {
	Method string
	Path   string
}

// PublicRoutes are reachable without a bearer token.
var PublicRoutes = []Route{
	{Method: fiber.MethodPost, Path: "/v1/auth/login"},
	{Method: fiber.MethodPost, Path: "/v1/auth/refreshToken"},
	{Method: fiber.MethodPost, Path: "/v1/users/signup"},
	{Method: fiber.MethodGet, Path: "/v1/api-docs/*"},
	{Method: fiber.MethodGet, Path: "/health/*"},
	{Method: fiber.MethodGet, Path: "/metrics"},
	{Method: fiber.MethodGet, Path: "/favicon.ico"},
}

// Authenticator validates bearer tokens and loads principals.
type Authenticator struct {
	codec   *TokenCodec
	users   PrincipalStore
	public  []Route
	logger  *zap.Logger
	metrics Recorder
}

// NewAuthenticator constructs the middleware. logger and metrics may be nil.
func NewAuthenticator(codec *TokenCodec, users PrincipalStore, logger *zap.Logger, metrics Recorder) *Authenticator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Authenticator{
		codec:   codec,
		users:   users,
		public:  PublicRoutes,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle enforces authentication on every route outside the allow-list.
func (a *Authenticator) Handle(c *fiber.Ctx) error {
	if a.isPublic(c.Method(), c.Path()) {
		return c.Next()
	}

	principal, err := a.Authenticate(c.UserContext(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		reason := Reason(err)
		a.metrics.AuthRejected(reason)
		if errors.Is(err, ErrConfig) {
			a.metrics.AuthConfigError()
			a.logger.Error("access token settings missing", zap.Error(err))
		} else {
			a.logger.Warn("request rejected",
				zap.String("reason", reason),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
		}
		return ToDomainError(err)
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// Authenticate runs the header, signature, lookup and marker checks in that
// order. The store is not consulted until the token verifies.
func (a *Authenticator) Authenticate(ctx context.Context, header string) (*Principal, error) {
	raw, err := bearerToken(header)
	if err != nil {
		return nil, err
	}

	claims, err := a.codec.Verify(KindAccess, raw)
	if err != nil {
		return nil, err
	}

	user, err := a.users.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("load principal: %w", err)
	}

	if IsInvalidated(user.InvalidToken, claims) {
		return nil, ErrInvalidatedToken
	}
	return &Principal{User: user, Claims: claims}, nil
}

func (a *Authenticator) isPublic(method, path string) bool {
	for _, r := range a.public {
		if r.Method != method {
			continue
		}
		if prefix, ok := strings.CutSuffix(r.Path, "/*"); ok {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
			continue
		}
		if path == r.Path {
			return true
		}
	}
	return false
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingHeader
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrBadHeader
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrBadHeader
	}
	return token, nil
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok && principal != nil && principal.User != nil
}

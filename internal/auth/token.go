package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/storefront-labs/storefront-service/internal/clock"
	"github.com/storefront-labs/storefront-service/internal/config"
)

// IssuerTag is written to and required in the iss claim of every token.
const IssuerTag = "storefront-service"

// Kind selects the signing key and lifetime of a token.
type Kind int

const (
	KindAccess Kind = iota
	KindRefresh
)

func (k Kind) String() string {
	switch k {
	case KindAccess:
		return "access"
	case KindRefresh:
		return "refresh"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Claims describes the JWT payload. The kind is not stored; it is implied by
// which key verifies the signature.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies HS256 tokens. It is immutable after
// construction and safe for concurrent use.
type TokenCodec struct {
	cfg   config.AuthConfig
	clock clock.Clock
}

// NewTokenCodec builds a codec over the given settings. Missing settings are
// not an error here; they surface as ErrConfig on use.
func NewTokenCodec(cfg config.AuthConfig, clk clock.Clock) *TokenCodec {
	if clk == nil {
		clk = clock.Real()
	}
	return &TokenCodec{cfg: cfg, clock: clk}
}

func (c *TokenCodec) secret(kind Kind) ([]byte, error) {
	var s string
	switch kind {
	case KindAccess:
		s = c.cfg.AccessTokenSecret
	case KindRefresh:
		s = c.cfg.RefreshTokenSecret
	default:
		return nil, fmt.Errorf("%w: unknown token kind %s", ErrConfig, kind)
	}
	if s == "" {
		return nil, fmt.Errorf("%w: %s secret not set", ErrConfig, kind)
	}
	return []byte(s), nil
}

func (c *TokenCodec) ttl(kind Kind) (time.Duration, error) {
	var d time.Duration
	switch kind {
	case KindAccess:
		d = c.cfg.AccessTokenTTL
	case KindRefresh:
		d = c.cfg.RefreshTokenTTL
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s ttl not set", ErrConfig, kind)
	}
	return d, nil
}

// Issue signs a new token of the given kind for subject. Every call draws a
// fresh jti.
func (c *TokenCodec) Issue(kind Kind, subject, email string) (string, error) {
	if subject == "" {
		return "", errors.New("auth: empty token subject")
	}
	key, err := c.secret(kind)
	if err != nil {
		return "", err
	}
	ttl, err := c.ttl(kind)
	if err != nil {
		return "", err
	}

	now := c.clock.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    IssuerTag,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", kind, err)
	}
	return signed, nil
}

// Verify checks signature, issuer and expiry of raw against the key for kind.
// Failures are reported as ErrMalformedToken, ErrInvalidSignature,
// ErrExpiredToken or ErrConfig.
func (c *TokenCodec) Verify(kind Kind, raw string) (*Claims, error) {
	key, err := c.secret(kind)
	if err != nil {
		return nil, err
	}

	parsed, err := jwt.ParseWithClaims(raw, &Claims{},
		func(*jwt.Token) (interface{}, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(IssuerTag),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.clock.Now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" || claims.ID == "" {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

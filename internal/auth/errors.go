package auth

import (
	"errors"

	apperrors "github.com/storefront-labs/storefront-service/pkg/util"
)

var (
	// ErrConfig means a secret or TTL for the requested token kind is unset.
	ErrConfig = errors.New("auth: token settings missing")
	// ErrMalformedToken covers anything that does not parse as one of our tokens.
	ErrMalformedToken = errors.New("auth: malformed token")
	// ErrInvalidSignature means the token parsed but was not signed with the kind's key.
	ErrInvalidSignature = errors.New("auth: invalid token signature")
	// ErrExpiredToken means the signature verified but now >= exp.
	ErrExpiredToken = errors.New("auth: token expired")
	// ErrInvalidatedToken means the token matched the principal's invalidation marker.
	ErrInvalidatedToken = errors.New("auth: token invalidated")
	// ErrPrincipalNotFound means the token subject has no user record.
	ErrPrincipalNotFound = errors.New("auth: principal not found")
	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrMissingHeader and ErrBadHeader come from bearer header parsing.
	ErrMissingHeader = errors.New("auth: missing authorization header")
	ErrBadHeader     = errors.New("auth: invalid authorization header")
)

// Public messages rendered to clients.
const (
	MsgNoHeader           = "No authorization header"
	MsgBadHeader          = "Invalid authorization header"
	MsgMisconfigured      = "Server misconfiguration"
	MsgCannotVerify       = "Cannot verify token"
	MsgAccessExpired      = "Token expired, please refresh your token"
	MsgRefreshExpired     = "Refresh token expired, please re-login"
	MsgInvalidated        = "Token invalidated, please re-login"
	MsgUnauthorized       = "Unauthorized"
	MsgInvalidCredentials = "Invalid credentials"
	MsgForbiddenRole      = "Unauthorized to perform this action"
)

// Reason returns the short label used in logs and the rejection metric.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrMissingHeader):
		return "missing_header"
	case errors.Is(err, ErrBadHeader):
		return "bad_header"
	case errors.Is(err, ErrConfig):
		return "config"
	case errors.Is(err, ErrExpiredToken):
		return "expired"
	case errors.Is(err, ErrInvalidSignature):
		return "bad_signature"
	case errors.Is(err, ErrMalformedToken):
		return "malformed"
	case errors.Is(err, ErrInvalidatedToken):
		return "invalidated"
	case errors.Is(err, ErrPrincipalNotFound):
		return "principal_not_found"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "internal"
	}
}

// ToDomainError maps an access-token pipeline failure onto the public error
// contract. Anything it does not recognise becomes an opaque 500.
func ToDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrMissingHeader):
		return apperrors.NewUnauthorized(MsgNoHeader)
	case errors.Is(err, ErrBadHeader):
		return apperrors.NewUnauthorized(MsgBadHeader)
	case errors.Is(err, ErrConfig):
		return apperrors.NewConfigError(MsgMisconfigured, err)
	case errors.Is(err, ErrExpiredToken):
		return apperrors.NewUnauthorizedCode(apperrors.CodeTokenExpired, MsgAccessExpired)
	case errors.Is(err, ErrMalformedToken), errors.Is(err, ErrInvalidSignature):
		return apperrors.NewUnauthorizedCode(apperrors.CodeInvalidToken, MsgCannotVerify)
	case errors.Is(err, ErrInvalidatedToken):
		return apperrors.NewUnauthorizedCode(apperrors.CodeTokenInvalidated, MsgInvalidated)
	case errors.Is(err, ErrPrincipalNotFound):
		return apperrors.NewUnauthorized(MsgUnauthorized)
	case errors.Is(err, ErrInvalidCredentials):
		return apperrors.NewBadRequest(apperrors.CodeUnauthorized, MsgInvalidCredentials)
	default:
		var de *apperrors.DomainError
		if errors.As(err, &de) {
			return de
		}
		return apperrors.NewInternalError(err)
	}
}

// RefreshDomainError is ToDomainError for the refresh endpoint, where an
// expired token means the session is over rather than due for renewal.
func RefreshDomainError(err error) error {
	if errors.Is(err, ErrExpiredToken) {
		return apperrors.NewUnauthorizedCode(apperrors.CodeTokenExpired, MsgRefreshExpired)
	}
	return ToDomainError(err)
}


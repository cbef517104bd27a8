package auth

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/storefront-labs/storefront-service/internal/config"
	"github.com/storefront-labs/storefront-service/internal/domain"
)

// Recorder receives auth outcomes for metrics.
type Recorder interface {
	AuthRejected(reason string)
	AuthConfigError()
}

type nopRecorder struct{}

func (nopRecorder) AuthRejected(string) {}
func (nopRecorder) AuthConfigError()    {}

// Issuer mints token pairs on login and access tokens on refresh.
type Issuer struct {
	cfg     config.AuthConfig
	codec   *TokenCodec
	logger  *zap.Logger
	metrics Recorder
}

// NewIssuer wires an issuer. logger and metrics may be nil.
func NewIssuer(cfg config.AuthConfig, codec *TokenCodec, logger *zap.Logger, metrics Recorder) *Issuer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Issuer{cfg: cfg, codec: codec, logger: logger, metrics: metrics}
}

// checkConfig fails closed when any of the four token settings is unset.
func (i *Issuer) checkConfig() error {
	if err := i.cfg.Validate(); err != nil {
		i.logger.Error("token settings incomplete", zap.Error(err))
		i.metrics.AuthConfigError()
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return nil
}

// IssuePair returns a fresh access token and refresh token for the subject.
func (i *Issuer) IssuePair(subjectID, email string) (domain.TokenPair, error) {
	if err := i.checkConfig(); err != nil {
		return domain.TokenPair{}, err
	}
	access, err := i.codec.Issue(KindAccess, subjectID, email)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := i.codec.Issue(KindRefresh, subjectID, email)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccessOnly returns a fresh access token. The caller's refresh token is
// left as is.
func (i *Issuer) IssueAccessOnly(subjectID, email string) (string, error) {
	if err := i.checkConfig(); err != nil {
		return "", err
	}
	return i.codec.Issue(KindAccess, subjectID, email)
}

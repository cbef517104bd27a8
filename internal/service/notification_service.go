package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/storefront-labs/storefront-service/internal/config"
	"github.com/storefront-labs/storefront-service/internal/events"
)

// NotificationService turns domain events into outbound notifications.
// Email and webhook delivery are stubs that only log.
type NotificationService struct {
	logger *zap.Logger
	cfg    config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{logger: logger, cfg: cfg}
}

// Handle delivers the notifications for one event.
func (n *NotificationService) Handle(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.EventUserRegistered:
		n.logger.Info("user registered", zap.String("user_id", event.SubjectID))
		n.sendEmailNotificationStub(ctx, event)
	case events.EventTokenInvalidated:
		// The payload carries the token id and cutoff only, never the token.
		n.logger.Info("token invalidated",
			zap.String("user_id", event.SubjectID),
			zap.String("actor_id", event.ActorID),
			zap.Any("payload", event.Payload))
		n.sendWebhookNotificationStub(ctx, event)
	case events.EventOrderPlaced:
		n.logger.Info("order placed",
			zap.String("user_id", event.ActorID),
			zap.String("order_id", event.SubjectID),
			zap.Any("payload", event.Payload))
		n.sendEmailNotificationStub(ctx, event)
	case events.EventStoreCreated, events.EventProductCreated, events.EventReviewAdded:
		n.logger.Info("catalog changed",
			zap.String("event_type", string(event.Type)),
			zap.String("actor_id", event.ActorID),
			zap.String("subject_id", event.SubjectID))
		n.sendWebhookNotificationStub(ctx, event)
	default:
		n.logger.Debug("no notification for event", zap.String("event_type", string(event.Type)))
	}
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("email notification",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("webhook notification",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}

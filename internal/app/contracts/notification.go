package contracts

import (
	"context"
	"directory-service/internal/app/models"
)

// NotificationPublisher fans notifications out of the gateway.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification models.Notification) error
}

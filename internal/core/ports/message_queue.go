package ports

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
)

// AvatarCleanupPublisher defines the methods for publishing avatar cleanup
// tasks. Used by the profile usecase after a successful avatar replacement.
type AvatarCleanupPublisher interface {
	PublishAvatarCleanup(ctx context.Context, payload payloads.AvatarCleanupPayload) error
}

// AvatarCleanupConsumer defines the methods for consuming avatar cleanup
// tasks. Used by the worker to delete replaced avatar files from the
// object store.
type AvatarCleanupConsumer interface {
	// StartConsumingAvatarCleanup starts listening on the queue and invokes
	// the handler for every received message.
	StartConsumingAvatarCleanup(ctx context.Context, handler func(context.Context, payloads.AvatarCleanupPayload) error) error
}

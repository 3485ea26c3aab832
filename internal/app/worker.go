package app

import (
	"context"
	"fmt"

	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
)

// runWorker consumes avatar cleanup tasks and deletes the replaced objects
// from the file store. Tasks only ever reach the queue after the new
// avatar reference has been saved, so deleting here cannot race an update.
func (a *App) runWorker(ctx context.Context) error {
	a.logger.Info("worker started, waiting for cleanup tasks")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	messageHandler := func(ctx context.Context, payload payloads.AvatarCleanupPayload) error {
		a.logger.Info("processing avatar cleanup", "user_id", payload.UserID, "key", payload.ObjectKey)

		if err := a.fileStorage.DeleteFile(ctx, payload.ObjectKey); err != nil {
			a.logger.Error("avatar cleanup failed", "key", payload.ObjectKey, "error", err)
			return err
		}

		a.logger.Info("avatar cleanup done", "key", payload.ObjectKey)
		return nil
	}

	if err := a.cleanupConsumer.StartConsumingAvatarCleanup(workerCtx, messageHandler); err != nil {
		return fmt.Errorf("starting cleanup consumer: %w", err)
	}

	<-ctx.Done()
	a.logger.Info("shutdown signal received, stopping worker")
	return nil
}

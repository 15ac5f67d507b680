package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"fieldbook/config"
	"fieldbook/models"

	"github.com/hibiken/asynq"
)

// TypeBookingNotify is the asynq task type for booking lifecycle events.
const TypeBookingNotify = "booking:notify"

// AsynqNotifier enqueues booking events onto the Redis-backed notify queue;
// the worker in cron/ consumes them.
type AsynqNotifier struct {
	client *asynq.Client
}

// NewAsynqNotifier creates a Notifier backed by the configured Redis queue.
func NewAsynqNotifier() *AsynqNotifier {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})
	return &AsynqNotifier{client: client}
}

// Close releases the underlying queue connection.
func (n *AsynqNotifier) Close() error {
	return n.client.Close()
}

func newNotifyPayload(event string, b *models.Booking) models.NotifyPayload {
	return models.NotifyPayload{
		Event:     event,
		BookingID: b.ID,
		UserID:    b.UserID,
		FieldID:   b.FieldID,
		StartAt:   b.StartAt,
		EndAt:     b.EndAt,
	}
}

func (n *AsynqNotifier) enqueue(ctx context.Context, event string, b *models.Booking) error {
	payload, err := json.Marshal(newNotifyPayload(event, b))
	if err != nil {
		return fmt.Errorf("failed to marshal notify payload: %w", err)
	}

	task := asynq.NewTask(TypeBookingNotify, payload)
	if _, err := n.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue %s notification for booking %s: %w", event, b.ID, err)
	}
	return nil
}

// BookingCreated enqueues a created event.
func (n *AsynqNotifier) BookingCreated(ctx context.Context, b *models.Booking) error {
	return n.enqueue(ctx, "created", b)
}

// BookingCancelled enqueues a cancelled event.
func (n *AsynqNotifier) BookingCancelled(ctx context.Context, b *models.Booking) error {
	return n.enqueue(ctx, "cancelled", b)
}

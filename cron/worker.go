package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"fieldbook/config"
	"fieldbook/models"
	"fieldbook/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitNotifyWorker runs the async notification worker in background. It
// consumes booking lifecycle events enqueued by the booking service and
// hands them to downstream delivery (currently structured logging; mail or
// push transports plug in here).
func InitNotifyWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeBookingNotify, handleNotifyTask)

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[NotifyWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleNotifyTask(ctx context.Context, task *asynq.Task) error {
	var p models.NotifyPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[NotifyWorker] Invalid payload: %v", err)
		return err
	}

	switch p.Event {
	case "created":
		log.Printf("[NotifyWorker] Booking %s created: field %s, user %s, %s - %s",
			p.BookingID, p.FieldID, p.UserID,
			p.StartAt.Format(time.RFC3339), p.EndAt.Format(time.RFC3339))
	case "cancelled":
		log.Printf("[NotifyWorker] Booking %s cancelled: field %s, user %s",
			p.BookingID, p.FieldID, p.UserID)
	default:
		log.Printf("[NotifyWorker] Unknown event type: %s", p.Event)
	}
	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[NotifyWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}

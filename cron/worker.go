package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"festivo/config"
	"festivo/models"
	"festivo/services/notification"
	"festivo/services/tasks"

	"github.com/hibiken/asynq"
)

// InitNotifyWorker runs the async worker delivering vendor booking
// notifications in the background.
func InitNotifyWorker(notifSvc notification.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeBookingNotify, handleBookingNotifyTask(notifSvc))

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
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingNotifyTask(notifSvc notification.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingNotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotifyHandler] Invalid payload: %v", err)
			return err
		}

		title := "New Booking Received"
		body := fmt.Sprintf("%s booked %s for a total of %.2f.",
			p.CustomerName, strings.Join(p.Categories, ", "), p.TotalAmount)
		if p.IsNegotiated {
			body += " Price was agreed through negotiation."
		}

		data := map[string]string{
			"type":         "new_booking",
			"bookingId":    p.BookingID,
			"categories":   strings.Join(p.Categories, ","),
			"totalAmount":  fmt.Sprintf("%.2f", p.TotalAmount),
			"isNegotiated": fmt.Sprintf("%t", p.IsNegotiated),
		}

		if err := notifSvc.SendVendorPushNotification(ctx, p.VendorID, title, body, data); err != nil {
			log.Printf("[NotifyHandler] Failed to push to vendor %s: %v", p.VendorID, err)
			return err
		}
		return nil
	}
}

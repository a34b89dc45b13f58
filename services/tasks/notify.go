package tasks

import (
	"encoding/json"

	"festivo/models"

	"github.com/hibiken/asynq"
)

const TypeBookingNotify = "booking:notify"

// NewBookingNotifyTask wraps a vendor notification payload in an asynq task.
func NewBookingNotifyTask(payload models.BookingNotifyPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingNotify, b), nil
}

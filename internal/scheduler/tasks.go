package scheduler

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TaskOrderExpirySweep = "orders.expiry.sweep"

type OrderExpirySweepPayload struct {
	RequestedAt time.Time `json:"requestedAt"`
}

func NewOrderExpirySweepTask(payload OrderExpirySweepPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderExpirySweep, data), nil
}

func ParseOrderExpirySweepPayload(task *asynq.Task) (OrderExpirySweepPayload, error) {
	var payload OrderExpirySweepPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return OrderExpirySweepPayload{}, err
	}
	return payload, nil
}

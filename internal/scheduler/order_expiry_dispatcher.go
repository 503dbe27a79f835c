package scheduler

import (
	"context"
	"time"

	"github.com/umarallure/lawyeronboarding-sub002/platform/config"
	"github.com/umarallure/lawyeronboarding-sub002/platform/logger"
)

// OrderExpiryDispatcher periodically enqueues an expiry sweep so that OPEN
// orders past their expires_at transition to EXPIRED close to on time.
type OrderExpiryDispatcher struct {
	client   *Client
	interval time.Duration
	log      *logger.Logger
}

func NewOrderExpiryDispatcher(cfg config.SchedulerConfig, client *Client, log *logger.Logger) *OrderExpiryDispatcher {
	interval := cfg.GetOrderExpirySweepInterval()
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	return &OrderExpiryDispatcher{
		client:   client,
		interval: interval,
		log:      log,
	}
}

func (d *OrderExpiryDispatcher) Run(ctx context.Context) {
	if d == nil || d.client == nil {
		return
	}

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		err := d.client.EnqueueOrderExpirySweep(ctx, OrderExpirySweepPayload{
			RequestedAt: time.Now().UTC(),
		})
		if err != nil {
			d.log.Warn("order expiry sweep enqueue failed", "error", err)
		}
	}
}

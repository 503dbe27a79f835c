package scheduler

import (
	"context"
	"fmt"

	"github.com/umarallure/lawyeronboarding-sub002/internal/orders/repository"
	"github.com/umarallure/lawyeronboarding-sub002/platform/config"
	"github.com/umarallure/lawyeronboarding-sub002/platform/logger"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	orders repository.Repository
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, pool *pgxpool.Pool, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		orders: repository.New(pool),
		log:    log,
	}

	mux.HandleFunc(TaskOrderExpirySweep, w.handleOrderExpirySweep)

	return w, nil
}

// handleOrderExpirySweep closes out OPEN orders whose expiry has passed.
// Order packages expire automatically; nothing else transitions them.
func (w *Worker) handleOrderExpirySweep(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseOrderExpirySweepPayload(task)
	if err != nil {
		return err
	}

	expired, err := w.orders.MarkExpired(ctx, payload.RequestedAt)
	if err != nil {
		return err
	}

	if expired > 0 {
		w.log.Info("orders expired", "count", expired)
	}
	return nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

// Package worker runs background jobs that drain the notification outbox.
package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"groundio/internal/infra"
	"groundio/internal/pkg/clock"
	"groundio/internal/pkg/config"
	"groundio/internal/pkg/errs"
	"groundio/internal/usecase/shared"
)

const (
	retryBase = 5 * time.Second
	retryCap  = 10 * time.Minute
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, messageID string, body []byte) error
}

// Relay claims due outbox rows and hands them to the broker. A row is marked
// sent only after the broker accepted it, so delivery is at least once.
type Relay struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	clock       clock.Clock
	interval    time.Duration
	batchSize   int32
	maxAttempts int32

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.MQConfig) *Relay {
	return &Relay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		interval:    cfg.PollInterval,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

func (r *Relay) Start() {
	go r.loop()
}

// Stop waits for the in-flight batch to finish or ctx to expire.
func (r *Relay) Stop(ctx context.Context) error {
	r.once.Do(func() { close(r.stop) })
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Relay) loop() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-r.stop
		cancel()
	}()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			n, err := r.RunOnce(ctx)
			if err != nil && ctx.Err() == nil {
				slog.Error("outbox relay batch failed", "error", err.Error())
				continue
			}
			if n > 0 {
				slog.Debug("outbox relay batch processed", "jobs", n)
			}
		}
	}
}

// RunOnce processes one batch and reports how many jobs it touched.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	processed := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		processed = 0
		now := r.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			sendErr := r.send(ctx, tx, job)
			if sendErr == nil {
				if err = tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, r.clock.Now()); err != nil {
					return err
				}
				processed++
				continue
			}

			terminal := job.Attempts+1 >= r.maxAttempts
			retryAt := now.Add(retryDelay(job.Attempts))
			slog.WarnContext(ctx, "failed to relay notification",
				"job_id", job.ID, "kind", job.Kind, "attempt", job.Attempts+1, "terminal", terminal, "error", sendErr.Error())
			if err = tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, sendErr.Error(), retryAt, terminal); err != nil {
				return err
			}
			processed++
		}
		return nil
	})
	return processed, err
}

func (r *Relay) send(ctx context.Context, tx shared.Tx, job shared.NotificationJob) error {
	var payload shared.BookingNotification
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return errs.Wrap(err, "undecodable notification payload")
	}

	customer, err := tx.Reads().UserByID(ctx, payload.CustomerID)
	switch {
	case err == nil:
		if token := customer.DeviceToken(); token != nil {
			payload.DeviceToken = *token
		}
	case infra.IsKind(err, infra.KindNotFound):
		// account gone; the merchant side may still consume the event
	default:
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification")
	}
	return r.publisher.Publish(ctx, job.Kind, job.ID.String(), body)
}

func retryDelay(attempts int32) time.Duration {
	d := retryBase
	for i := int32(0); i < attempts && d < retryCap; i++ {
		d *= 2
	}
	if d > retryCap {
		d = retryCap
	}
	return d
}

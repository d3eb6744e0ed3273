// Package worker consumes thumbnail jobs from the queue.
//
// Run starts by recovering every job left in the queue's processing list, so
// one queue consumer id must never be shared by two live processes.
package worker

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

// JobProcessor runs one job to completion.
type JobProcessor interface {
	Process(ctx context.Context, job model.Job) ([]model.Rendition, error)
}

const defaultRetryDelay = time.Second

// Runner drives a fixed number of consumers over a job queue.
// Each consumer takes one job at a time and acknowledges it only after processing.
type Runner struct {
	queue       model.JobQueue
	processor   JobProcessor
	concurrency int
	retryDelay  time.Duration
	logger      *logger.Logger
}

func NewRunner(queue model.JobQueue, processor JobProcessor, concurrency int, logger *logger.Logger) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		queue:       queue,
		processor:   processor,
		concurrency: concurrency,
		retryDelay:  defaultRetryDelay,
		logger:      logger,
	}
}

// Run requeues jobs abandoned by a previous run, then consumes until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	recovered, err := r.queue.Recover(ctx)
	if err != nil {
		return fmt.Errorf("failed to recover in-flight jobs: %w", err)
	}
	if recovered > 0 {
		r.logger.Info("Worker: requeued in-flight jobs", "count", recovered)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range r.concurrency {
		g.Go(func() error {
			r.consume(gctx, i)
			return nil
		})
	}

	return g.Wait()
}

func (r *Runner) consume(ctx context.Context, id int) {
	log := r.logger.With("consumer", id)
	log.Debug("Worker: consumer started")

	for ctx.Err() == nil {
		d, err := r.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			log.Error("Worker: failed to dequeue job", "error", err.Error())
			r.wait(ctx)
			continue
		}
		if d == nil {
			continue
		}

		r.handle(ctx, log, d)
	}

	log.Debug("Worker: consumer stopped")
}

// handle detaches from shutdown so the job in hand is finished and acknowledged.
func (r *Runner) handle(ctx context.Context, log *logger.Logger, d *model.Delivery) {
	ctx = context.WithoutCancel(ctx)
	log = log.With("user_id", d.Job.UserID, "file_id", d.Job.FileID, "attempt", d.Attempts+1)

	renditions, err := r.processor.Process(ctx, d.Job)
	if err != nil {
		log.Warn("Worker: job failed", "error", err.Error())
		if err := r.queue.Fail(ctx, d, err); err != nil {
			log.Error("Worker: failed to record job failure", "error", err.Error())
		}
		return
	}

	if err := r.queue.Ack(ctx, d); err != nil {
		log.Error("Worker: failed to acknowledge job", "error", err.Error())
		return
	}

	log.Info("Worker: job completed", "renditions", len(renditions))
}

func (r *Runner) wait(ctx context.Context) {
	t := time.NewTimer(r.retryDelay)
	defer t.Stop()

	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

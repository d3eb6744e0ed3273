// Package redis implements the thumbnail job queue on redis lists.
//
// Jobs are pushed onto <name>. A consumer atomically moves a job to its
// processing list and removes it from there once it is acknowledged, so a
// crashed consumer leaves its job behind for Recover. Jobs that exhaust
// their attempts end up in <name>:dead.
//
// The processing list is <name>:processing, or <name>:processing:<id> for a
// queue returned by WithConsumer. Recover only touches the queue's own list,
// so each worker process must use a distinct consumer id that it keeps
// across restarts.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/filesmanager-server/internal/model"
)

var _ model.JobQueue = (*Queue)(nil)

type message struct {
	model.Job
	Attempts  int    `json:"attempts"`
	LastError string `json:"lastError,omitempty"`
}

type Queue struct {
	client      goredis.UniversalClient
	pending     string
	processing  string
	dead        string
	maxAttempts int
	pollTimeout time.Duration
}

func NewQueue(client goredis.UniversalClient, name string, maxAttempts int, pollTimeout time.Duration) *Queue {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Queue{
		client:      client,
		pending:     name,
		processing:  name + ":processing",
		dead:        name + ":dead",
		maxAttempts: maxAttempts,
		pollTimeout: pollTimeout,
	}
}

// WithConsumer returns a queue sharing q's lists except for a processing
// list of its own.
func (q *Queue) WithConsumer(id string) *Queue {
	c := *q
	if id != "" {
		c.processing = q.pending + ":processing:" + id
	}
	return &c
}

func (q *Queue) Enqueue(ctx context.Context, job model.Job) error {
	raw, err := json.Marshal(message{Job: job})
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}

	if err := q.client.LPush(ctx, q.pending, raw).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}
	return nil
}

// Dequeue returns nil, nil when nothing arrived within the poll timeout.
// Undecodable payloads are moved to the dead-letter list.
func (q *Queue) Dequeue(ctx context.Context) (*model.Delivery, error) {
	raw, err := q.client.BLMove(ctx, q.pending, q.processing, "RIGHT", "LEFT", q.pollTimeout).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to dequeue job: %w", err)
	}

	var msg message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		if derr := q.move(ctx, raw, q.dead, raw); derr != nil {
			return nil, fmt.Errorf("failed to dead-letter malformed job: %w", derr)
		}
		return nil, fmt.Errorf("malformed job %q: %w", raw, err)
	}

	return &model.Delivery{
		Job:      msg.Job,
		Attempts: msg.Attempts,
		Raw:      raw,
	}, nil
}

func (q *Queue) Ack(ctx context.Context, d *model.Delivery) error {
	if err := q.client.LRem(ctx, q.processing, 1, d.Raw).Err(); err != nil {
		return fmt.Errorf("failed to acknowledge job: %w", err)
	}
	return nil
}

// Fail requeues the job until it has been attempted maxAttempts times.
func (q *Queue) Fail(ctx context.Context, d *model.Delivery, cause error) error {
	msg := message{Job: d.Job, Attempts: d.Attempts + 1}
	if cause != nil {
		msg.LastError = cause.Error()
	}

	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}

	target := q.pending
	if msg.Attempts >= q.maxAttempts {
		target = q.dead
	}

	if err := q.move(ctx, d.Raw, target, string(raw)); err != nil {
		return fmt.Errorf("failed to reject job: %w", err)
	}
	return nil
}

// Recover returns jobs stranded in this consumer's processing list to the queue, oldest first.
func (q *Queue) Recover(ctx context.Context) (int, error) {
	n := 0
	for {
		err := q.client.LMove(ctx, q.processing, q.pending, "LEFT", "RIGHT").Err()
		if err != nil {
			if errors.Is(err, goredis.Nil) {
				return n, nil
			}
			return n, fmt.Errorf("failed to recover jobs: %w", err)
		}
		n++
	}
}

func (q *Queue) move(ctx context.Context, raw, target, payload string) error {
	_, err := q.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.LRem(ctx, q.processing, 1, raw)
		pipe.LPush(ctx, target, payload)
		return nil
	})
	return err
}

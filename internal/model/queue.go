package model

import "context"

// Job requests thumbnail generation for one node. It is ephemeral.
type Job struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}

// JobPublisher hands jobs off to the queue.
type JobPublisher interface {
	Enqueue(ctx context.Context, job Job) error
}

// Delivery is a job taken from the queue and pending acknowledgment.
type Delivery struct {
	Job      Job
	Attempts int
	Raw      string
}

// JobQueue is the consumer side of the queue with explicit acknowledgment.
type JobQueue interface {
	JobPublisher
	// Dequeue blocks until a job is available or the poll timeout elapses,
	// in which case it returns nil.
	Dequeue(ctx context.Context) (*Delivery, error)
	Ack(ctx context.Context, d *Delivery) error
	Fail(ctx context.Context, d *Delivery, cause error) error
	// Recover moves deliveries left unacknowledged by a crashed consumer back to the queue.
	Recover(ctx context.Context) (int, error)
}

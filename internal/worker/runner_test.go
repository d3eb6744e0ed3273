package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/filesmanager-server/internal/mocks"
	"github.com/dtroode/filesmanager-server/internal/model"
	"github.com/dtroode/filesmanager-server/internal/testutil"
)

func newDelivery() *model.Delivery {
	return &model.Delivery{
		Job: model.Job{UserID: "u1", FileID: "f1"},
		Raw: `{"userId":"u1","fileId":"f1","attempts":0}`,
	}
}

func runUntilDone(ctx context.Context, t *testing.T, r *Runner) error {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop")
		return nil
	}
}

func TestRunner_Run_AcksProcessedJob(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := newDelivery()
	queue := mocks.NewJobQueue(t)
	processor := mocks.NewJobProcessor(t)

	queue.On("Recover", mock.Anything).Return(0, nil).Once()
	queue.On("Dequeue", mock.Anything).Return(d, nil).Once()
	queue.On("Dequeue", mock.Anything).Return(nil, nil).Maybe()
	processor.On("Process", mock.Anything, d.Job).Return([]model.Rendition{{Width: 500}, {Width: 250}, {Width: 100}}, nil).Once()
	queue.On("Ack", mock.Anything, d).Return(nil).Once().Run(func(mock.Arguments) { cancel() })

	r := NewRunner(queue, processor, 1, testutil.MakeNoopLogger())
	assert.NoError(t, runUntilDone(ctx, t, r))
}

func TestRunner_Run_FailsRejectedJob(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := newDelivery()
	cause := errors.New("Not found")
	queue := mocks.NewJobQueue(t)
	processor := mocks.NewJobProcessor(t)

	queue.On("Recover", mock.Anything).Return(2, nil).Once()
	queue.On("Dequeue", mock.Anything).Return(d, nil).Once()
	queue.On("Dequeue", mock.Anything).Return(nil, nil).Maybe()
	processor.On("Process", mock.Anything, d.Job).Return(nil, cause).Once()
	queue.On("Fail", mock.Anything, d, cause).Return(nil).Once().Run(func(mock.Arguments) { cancel() })

	r := NewRunner(queue, processor, 1, testutil.MakeNoopLogger())
	assert.NoError(t, runUntilDone(ctx, t, r))
}

func TestRunner_Run_FinishesInFlightJobOnShutdown(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := newDelivery()
	queue := mocks.NewJobQueue(t)
	processor := mocks.NewJobProcessor(t)

	queue.On("Recover", mock.Anything).Return(0, nil).Once()
	queue.On("Dequeue", mock.Anything).Return(d, nil).Once()
	processor.On("Process", mock.Anything, d.Job).
		Run(func(args mock.Arguments) {
			cancel()
			assert.NoError(t, args.Get(0).(context.Context).Err())
		}).
		Return([]model.Rendition{{Width: 500}}, nil).Once()
	queue.On("Ack", mock.Anything, d).Return(nil).Once()

	r := NewRunner(queue, processor, 1, testutil.MakeNoopLogger())
	assert.NoError(t, runUntilDone(ctx, t, r))

	queue.AssertNotCalled(t, "Fail", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunner_Run_RecoverError(t *testing.T) {
	t.Parallel()

	queue := mocks.NewJobQueue(t)
	queue.On("Recover", mock.Anything).Return(0, errors.New("connection refused")).Once()

	r := NewRunner(queue, mocks.NewJobProcessor(t), 1, testutil.MakeNoopLogger())
	err := r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to recover in-flight jobs")
}

func TestRunner_Run_RetriesAfterDequeueError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d := newDelivery()
	queue := mocks.NewJobQueue(t)
	processor := mocks.NewJobProcessor(t)

	queue.On("Recover", mock.Anything).Return(0, nil).Once()
	queue.On("Dequeue", mock.Anything).Return(nil, errors.New("malformed job")).Once()
	queue.On("Dequeue", mock.Anything).Return(d, nil).Once()
	queue.On("Dequeue", mock.Anything).Return(nil, nil).Maybe()
	processor.On("Process", mock.Anything, d.Job).Return([]model.Rendition{}, nil).Once()
	queue.On("Ack", mock.Anything, d).Return(nil).Once().Run(func(mock.Arguments) { cancel() })

	r := NewRunner(queue, processor, 1, testutil.MakeNoopLogger())
	r.retryDelay = time.Millisecond
	assert.NoError(t, runUntilDone(ctx, t, r))
}

func TestRunner_Run_StopsAllConsumersOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var polls atomic.Int32
	queue := mocks.NewJobQueue(t)
	queue.On("Recover", mock.Anything).Return(0, nil).Once()
	queue.On("Dequeue", mock.Anything).Return(nil, nil).Run(func(mock.Arguments) {
		polls.Add(1)
		time.Sleep(time.Millisecond)
	})

	r := NewRunner(queue, mocks.NewJobProcessor(t), 3, testutil.MakeNoopLogger())
	go func() {
		assert.Eventually(t, func() bool { return polls.Load() >= 3 }, time.Second, time.Millisecond)
		cancel()
	}()

	assert.NoError(t, runUntilDone(ctx, t, r))
}

func TestNewRunner_ClampsConcurrency(t *testing.T) {
	r := NewRunner(mocks.NewJobQueue(t), mocks.NewJobProcessor(t), 0, testutil.MakeNoopLogger())
	assert.Equal(t, 1, r.concurrency)
}

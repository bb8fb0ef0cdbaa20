package expiry

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// WorkerPoolI bounds how many expiry tasks a sweep runs concurrently.
type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

type WorkerPool struct {
	tasks     chan Task
	closeOnce sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, size)}
	for i := 0; i < size; i++ {
		go wp.run()
	}
	return wp
}

func (wp *WorkerPool) run() {
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("Expiry task failed", zap.Error(err))
		}
	}
}

// AddTask queues task unless ctx is already done. Queueing blocks once size
// tasks are in flight, which naturally throttles a large sweep batch.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.tasks)
	})
}

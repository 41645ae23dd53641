package application

import "context"

// Task is the handle of an asynchronous command. Cancelling it aborts the
// network call; the outcome is still dispatched and dropped by the reducer
// when a newer request has been issued meanwhile.
type Task struct {
	request uint64
	cancel  context.CancelFunc
	done    chan struct{}
}

func (t *Task) Request() uint64 {
	return t.request
}

func (t *Task) Cancel() {
	t.cancel()
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task settled or ctx is done.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

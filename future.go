package weld

import "context"

// Future is a value still being produced. When a factory invoked by a
// ContextInjector returns a Future, the injector awaits it and resolves to
// the completed value. The blocking Injector never awaits: it caches and
// returns the Future itself, raw.
type Future interface {
	Await(ctx context.Context) (any, error)
}

type asyncFuture struct {
	done chan struct{}
	val  any
	err  error
}

// Async runs fn in its own goroutine immediately and returns a Future for
// its result. Await blocks until fn completes or ctx is done, whichever
// comes first; fn itself keeps running after cancellation.
func Async(fn func() (any, error)) Future {
	f := &asyncFuture{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()
	return f
}

// Await implements Future.
func (f *asyncFuture) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

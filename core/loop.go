package core

import (
	"context"
	"sync"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/schema"
)

type loopFn func(st *state) error

type loopRequest struct {
	ctx  context.Context
	fn   loopFn
	done chan error
}

// loop is the single writer of the state store. Each request runs to completion
// before the next one starts, and the signals it produced are published as one
// batch before the caller is released.
type loop struct {
	reqs   chan loopRequest
	stop   chan struct{}
	exited chan struct{}
	state  *state
	sink   SignalSink
	log    pslog.Logger

	stopOnce sync.Once
}

func newLoop(st *state, sink SignalSink, depth int, logger pslog.Logger) *loop {
	return &loop{
		reqs:   make(chan loopRequest, depth),
		stop:   make(chan struct{}),
		exited: make(chan struct{}),
		state:  st,
		sink:   sink,
		log:    logger,
	}
}

func (l *loop) run() {
	defer close(l.exited)
	for {
		select {
		case <-l.stop:
			return
		case req := <-l.reqs:
			l.dispatch(req)
		}
	}
}

func (l *loop) dispatch(req loopRequest) {
	if err := req.ctx.Err(); err != nil {
		req.done <- err
		return
	}
	err := req.fn(l.state)
	batch := l.state.takeSignals()
	if err != nil {
		if len(batch) > 0 {
			l.log.Warn("main loop dropped signals of failed step", "signals", len(batch), "err", err)
		}
		req.done <- err
		return
	}
	if len(batch) > 0 && l.sink != nil {
		l.sink.Publish(batch...)
	}
	req.done <- nil
}

// do runs fn on the loop and waits for it. A request whose context is done
// before the loop picks it up is never executed, and a request that ran always
// reports its own result.
func (l *loop) do(ctx context.Context, fn loopFn) error {
	if ctx == nil {
		ctx = context.Background()
	}
	req := loopRequest{ctx: ctx, fn: fn, done: make(chan error, 1)}
	select {
	case <-l.stop:
		return schema.ErrServiceClosed
	default:
	}
	select {
	case l.reqs <- req:
	case <-l.stop:
		return schema.ErrServiceClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	// Once queued, the outcome comes from the loop: dispatch skips a request
	// whose context is already done, so ctx.Err() is only returned when fn did
	// not run.
	select {
	case err := <-req.done:
		return err
	case <-l.exited:
		select {
		case err := <-req.done:
			return err
		default:
			return schema.ErrServiceClosed
		}
	}
}

func (l *loop) close() {
	l.stopOnce.Do(func() { close(l.stop) })
	<-l.exited
}

package signalbus

import (
	"context"
	"sync"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/schema"
)

// Session is one client's subscription to one signal kind. Signals queue in
// FIFO order and are released one per unit of credit.
type Session struct {
	id   uint64
	kind schema.SignalKind
	bus  *Bus
	log  pslog.Logger

	mu        sync.Mutex
	queue     []schema.Signal
	credit    int
	closed    bool
	warned    bool
	delivered uint64
	dropped   uint64

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func newSession(bus *Bus, id uint64, kind schema.SignalKind, logger pslog.Logger) *Session {
	return &Session{
		id:   id,
		kind: kind,
		bus:  bus,
		log:  logger,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// ID returns the bus-unique session id.
func (s *Session) ID() uint64 { return s.id }

// Kind returns the subscribed signal kind.
func (s *Session) Kind() schema.SignalKind { return s.kind }

// Done is closed once the session is closed.
func (s *Session) Done() <-chan struct{} { return s.done }

// Grant adds n units of credit.
func (s *Session) Grant(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.credit += n
	credit := s.credit
	s.mu.Unlock()
	s.notify()
	s.log.Trace("signal credit granted", "credit", credit)
}

// Next blocks until a signal is queued and credit is available, then returns
// the oldest signal and consumes one unit of credit. It returns
// schema.ErrSessionClosed once the session is closed.
func (s *Session) Next(ctx context.Context) (schema.Signal, error) {
	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return nil, schema.ErrSessionClosed
		}
		if s.credit > 0 && len(s.queue) > 0 {
			sig := s.queue[0]
			s.queue[0] = nil
			s.queue = s.queue[1:]
			s.credit--
			s.delivered++
			if s.warned && len(s.queue) < s.bus.cfg.BacklogWarn {
				s.warned = false
			}
			s.mu.Unlock()
			return sig, nil
		}
		s.mu.Unlock()
		select {
		case <-s.wake:
		case <-s.done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Pending reports the number of queued, undelivered signals.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Credit reports the unused credit balance.
func (s *Session) Credit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credit
}

// Close stops the session, releases its queue and removes it from the bus.
// It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		pending := len(s.queue)
		s.queue = nil
		delivered, dropped := s.delivered, s.dropped
		s.mu.Unlock()
		close(s.done)
		s.log.Info("signal session closed", "delivered", delivered, "pending", pending, "dropped", dropped)
		s.bus.remove(s)
	})
}

func (s *Session) enqueue(batch []schema.Signal) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	cfg := s.bus.cfg
	overflow := false
	for _, sig := range batch {
		if cfg.MaxBacklog > 0 && len(s.queue) >= cfg.MaxBacklog {
			if cfg.Overflow != OverflowDropOldest {
				overflow = true
				break
			}
			s.queue[0] = nil
			s.queue = s.queue[1:]
			s.dropped++
		}
		s.queue = append(s.queue, sig)
	}
	pending := len(s.queue)
	warn := false
	if cfg.BacklogWarn > 0 && pending >= cfg.BacklogWarn && !s.warned {
		s.warned = true
		warn = true
	}
	credit := s.credit
	s.mu.Unlock()

	if warn {
		s.log.Warn("signal backlog above threshold", "pending", pending, "credit", credit, "threshold", cfg.BacklogWarn)
	}
	if overflow {
		s.log.Warn("signal backlog overflow, closing session", "pending", pending, "max", cfg.MaxBacklog)
		s.Close()
		return
	}
	s.notify()
}

func (s *Session) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

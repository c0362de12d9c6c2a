package signalbus

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/internal/logx"
	"pkt.systems/tagwm/schema"
)

// OverflowPolicy selects what happens when a session exceeds MaxBacklog.
type OverflowPolicy string

const (
	// OverflowDisconnect closes the session.
	OverflowDisconnect OverflowPolicy = "disconnect"
	// OverflowDropOldest discards the oldest queued signal.
	OverflowDropOldest OverflowPolicy = "drop_oldest"
)

// DefaultBacklogWarn is the default backlog warning threshold.
const DefaultBacklogWarn = 1024

// Config controls per-session backlog handling.
type Config struct {
	// BacklogWarn logs a warning each time a session's queue grows past it.
	// Zero uses DefaultBacklogWarn, negative disables the warning.
	BacklogWarn int
	// MaxBacklog bounds the queue. Zero leaves it unbounded.
	MaxBacklog int
	// Overflow applies when MaxBacklog is exceeded.
	Overflow OverflowPolicy
}

// ParseOverflowPolicy parses "disconnect" or "drop_oldest".
func ParseOverflowPolicy(value string) (OverflowPolicy, error) {
	switch OverflowPolicy(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "-", "_")) {
	case "", OverflowDisconnect:
		return OverflowDisconnect, nil
	case OverflowDropOldest:
		return OverflowDropOldest, nil
	default:
		return "", fmt.Errorf("%w: overflow policy %q", schema.ErrInvalidRequest, value)
	}
}

// Bus keeps one subscriber list per signal kind and fans published signals
// out to every session on the matching list.
//
// Publish never blocks: it loads the kind's list without locking and appends
// to each session's queue.
type Bus struct {
	cfg Config
	log pslog.Logger

	// mu serializes writers of subs; readers load the pointers directly.
	mu     sync.Mutex
	subs   [schema.NumSignalKinds + 1]atomic.Pointer[[]*Session]
	closed bool

	nextID atomic.Uint64
}

// New constructs a Bus.
func New(cfg Config, logger pslog.Logger) *Bus {
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	if cfg.BacklogWarn == 0 {
		cfg.BacklogWarn = DefaultBacklogWarn
	}
	if cfg.Overflow == "" {
		cfg.Overflow = OverflowDisconnect
	}
	return &Bus{cfg: cfg, log: logger}
}

// Subscribe opens a session on one kind. The session starts with zero credit.
func (b *Bus) Subscribe(ctx context.Context, kind schema.SignalKind) (*Session, error) {
	if b == nil {
		return nil, schema.ErrServiceClosed
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: signal kind %d", schema.ErrInvalidRequest, kind)
	}
	id := b.nextID.Add(1)
	s := newSession(b, id, kind, logx.WithSession(ctx, id, kind))

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, schema.ErrServiceClosed
	}
	var next []*Session
	if cur := b.subs[kind].Load(); cur != nil {
		next = append(next, (*cur)...)
	}
	next = append(next, s)
	b.subs[kind].Store(&next)
	count := len(next)
	b.mu.Unlock()

	s.log.Info("signal session opened", "subs", count)
	return s, nil
}

// Publish enqueues signals on every session subscribed to their kind. Signals
// of one call land contiguously in each session's queue.
func (b *Bus) Publish(signals ...schema.Signal) {
	if b == nil || len(signals) == 0 {
		return
	}
	var byKind [schema.NumSignalKinds + 1][]schema.Signal
	for _, sig := range signals {
		if sig == nil || !sig.Kind().Valid() {
			continue
		}
		byKind[sig.Kind()] = append(byKind[sig.Kind()], sig)
	}
	for kind, batch := range byKind {
		if len(batch) == 0 {
			continue
		}
		subs := b.subs[kind].Load()
		if subs == nil {
			continue
		}
		for _, s := range *subs {
			s.enqueue(batch)
		}
	}
}

// Sessions reports the number of open sessions on a kind.
func (b *Bus) Sessions(kind schema.SignalKind) int {
	if b == nil || !kind.Valid() {
		return 0
	}
	subs := b.subs[kind].Load()
	if subs == nil {
		return 0
	}
	return len(*subs)
}

// Close closes every open session and rejects new subscriptions.
func (b *Bus) Close() {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.closed = true
	var all []*Session
	for i := range b.subs {
		if cur := b.subs[i].Load(); cur != nil {
			all = append(all, (*cur)...)
		}
	}
	b.mu.Unlock()
	for _, s := range all {
		s.Close()
	}
	b.log.Debug("signal bus closed", "sessions", len(all))
}

func (b *Bus) remove(s *Session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur := b.subs[s.kind].Load()
	if cur == nil {
		return
	}
	next := make([]*Session, 0, len(*cur))
	for _, other := range *cur {
		if other != s {
			next = append(next, other)
		}
	}
	b.subs[s.kind].Store(&next)
}

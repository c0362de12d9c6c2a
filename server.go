// Package tagwm wires the tag control plane of a tiling compositor: the core
// state loop, the signal bus, the gRPC control socket and the event feed.
package tagwm

import (
	"context"
	"errors"
	"sync"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/core"
	"pkt.systems/tagwm/internal/controlgrpc"
	"pkt.systems/tagwm/internal/feed"
	"pkt.systems/tagwm/internal/persist"
	"pkt.systems/tagwm/internal/signalbus"
	"pkt.systems/tagwm/schema"
)

// Server composes the core service, the signal bus, the control socket and
// the optional compositor event feed.
type Server interface {
	Start(ctx context.Context) error
	Wait() error
	Stop(ctx context.Context) error
	// Service exposes the core service, for in-process compositor wiring.
	Service() core.Service
}

// ServerConfig configures the composite server.
type ServerConfig struct {
	Service  schema.ServiceConfig
	Signals  signalbus.Config
	Control  controlgrpc.Config
	FeedPath string
	// StateFile saves the tag layout on stop and preloads it on start.
	// Empty disables layout persistence.
	StateFile string
}

// ServerDeps captures optional dependencies for the server.
type ServerDeps struct {
	Logger pslog.Logger
	// Sink receives every signal in addition to the bus.
	Sink core.SignalSink
}

// ServerOption toggles server components.
type ServerOption func(*serverOptions)

type serverOptions struct {
	enableControl bool
	enableFeed    bool
}

// WithControl enables the gRPC control socket.
func WithControl() ServerOption {
	return func(o *serverOptions) { o.enableControl = true }
}

// WithFeed enables reading compositor events from ServerConfig.FeedPath.
func WithFeed() ServerOption {
	return func(o *serverOptions) { o.enableFeed = true }
}

// New constructs a composable tagwm server.
func New(cfg ServerConfig, deps ServerDeps, opts ...ServerOption) (Server, error) {
	options := serverOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if !options.enableControl && !options.enableFeed {
		return nil, errors.New("no components enabled")
	}
	if options.enableControl && cfg.Control.SocketPath == "" {
		return nil, errors.New("control socket path is required")
	}
	if options.enableFeed && cfg.FeedPath == "" {
		return nil, errors.New("feed path is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = pslog.Ctx(context.Background())
	}
	bus := signalbus.New(cfg.Signals, logger)
	sink := fanoutSinks(bus, deps.Sink, traceSink{log: logger})

	service, err := core.NewService(cfg.Service, core.ServiceDeps{Sink: sink, Logger: logger})
	if err != nil {
		bus.Close()
		return nil, err
	}

	var layouts *persist.Store
	if cfg.StateFile != "" {
		layouts, err = persist.NewStoreWithLogger(cfg.StateFile, logger)
		if err != nil {
			_ = service.Close()
			bus.Close()
			return nil, err
		}
		if err := preloadLayout(layouts, service, logger); err != nil {
			_ = service.Close()
			bus.Close()
			return nil, err
		}
	}

	var control *controlgrpc.Server
	if options.enableControl {
		control = controlgrpc.NewServer(cfg.Control, service, bus)
	}

	return &compositeServer{
		cfg:     cfg,
		options: options,
		service: service,
		bus:     bus,
		control: control,
		layouts: layouts,
		logger:  logger,
	}, nil
}

func preloadLayout(store *persist.Store, service core.Service, logger pslog.Logger) error {
	layout, ok, err := store.Load()
	if err != nil || !ok {
		return err
	}
	n, err := service.ImportLayout(context.Background(), layout)
	if err != nil {
		return err
	}
	logger.Info("tag layout restored", "outputs", n, "state_file", store.Path())
	return nil
}

type compositeServer struct {
	cfg     ServerConfig
	options serverOptions
	service core.Service
	bus     *signalbus.Bus
	control *controlgrpc.Server
	layouts *persist.Store
	logger  pslog.Logger

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	errCh   chan error
	done    chan struct{}
	started bool
}

func (s *compositeServer) Service() core.Service {
	return s.service
}

func (s *compositeServer) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		pslog.Ctx(ctx).Warn("server start rejected", "reason", "already started")
		return errors.New("server already started")
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.errCh = make(chan error, 2)
	s.done = make(chan struct{})
	s.started = true
	s.logger = pslog.Ctx(s.ctx)
	s.mu.Unlock()

	log := s.logger
	log.Info(
		"server start",
		"control", s.options.enableControl,
		"feed", s.options.enableFeed,
		"socket", s.cfg.Control.SocketPath,
		"feed_path", s.cfg.FeedPath,
	)

	var wg sync.WaitGroup
	if s.options.enableControl && s.control != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.control.ListenAndServe(s.ctx); err != nil {
				log.Error("control server failed", "err", err)
				s.errCh <- err
			}
		}()
	}
	if s.options.enableFeed {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.runFeed(s.ctx); err != nil {
				log.Error("feed failed", "err", err)
				s.errCh <- err
			}
		}()
	}
	go func() {
		wg.Wait()
		close(s.done)
	}()
	return nil
}

func (s *compositeServer) runFeed(ctx context.Context) error {
	r, err := feed.Open(s.cfg.FeedPath)
	if err != nil {
		return err
	}
	defer r.Close()
	// Unblocks a read from an idle pipe or FIFO.
	stopClose := context.AfterFunc(ctx, func() { _ = r.Close() })
	defer stopClose()
	stats, err := feed.Run(ctx, r, s.service)
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, schema.ErrServiceClosed)) {
		return nil
	}
	if err == nil {
		s.logger.Info("feed drained", "applied", stats.Applied, "skipped", stats.Skipped, "failed", stats.Failed)
	}
	return err
}

func (s *compositeServer) Wait() error {
	s.mu.Lock()
	ctx := s.ctx
	errCh := s.errCh
	done := s.done
	started := s.started
	s.mu.Unlock()
	if !started {
		return errors.New("server not started")
	}

	select {
	case <-ctx.Done():
		return nil
	case <-done:
		select {
		case err := <-errCh:
			_ = s.Stop(context.Background())
			return err
		default:
		}
		return nil
	case err := <-errCh:
		if err != nil {
			pslog.Ctx(ctx).Error("server stopped", "err", err)
			_ = s.Stop(context.Background())
			return err
		}
		return nil
	}
}

func (s *compositeServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	started := s.started
	done := s.done
	log := s.logger
	s.mu.Unlock()
	if log == nil {
		log = pslog.Ctx(context.Background())
	}
	if !started {
		s.shutdownCore(log)
		return nil
	}
	log.Info("server stop requested")
	if cancel != nil {
		cancel()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-ctx.Done():
		log.Warn("server stop timed out", "err", ctx.Err())
		s.shutdownCore(log)
		return ctx.Err()
	case <-done:
	}
	s.shutdownCore(log)
	log.Info("server stopped")
	return nil
}

// shutdownCore ends every signal session, saves the layout, then stops the
// main loop.
func (s *compositeServer) shutdownCore(log pslog.Logger) {
	s.bus.Close()
	if s.layouts != nil {
		if layout, err := s.service.ExportLayout(context.Background()); err == nil {
			if err := s.layouts.Save(layout); err != nil {
				log.Warn("tag layout save failed", "err", err)
			} else {
				log.Info("tag layout saved", "outputs", len(layout.Outputs))
			}
		}
	}
	if err := s.service.Close(); err != nil && !errors.Is(err, schema.ErrServiceClosed) {
		log.Warn("service close failed", "err", err)
	}
}

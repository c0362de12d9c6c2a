package controlgrpc

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"

	"google.golang.org/grpc"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/core"
	"pkt.systems/tagwm/internal/controlpb"
	"pkt.systems/tagwm/internal/signalbus"
)

// Server implements the tag, output, window and signal services and provides a
// ListenAndServe entrypoint.
type Server struct {
	cfg     Config
	service core.Service
	bus     *signalbus.Bus
	logger  pslog.Logger
}

// NewServer constructs a control server over the core service and signal bus.
func NewServer(cfg Config, service core.Service, bus *signalbus.Bus) *Server {
	return &Server{cfg: cfg, service: service, bus: bus}
}

// Register attaches every control service to a gRPC server.
func (s *Server) Register(reg grpc.ServiceRegistrar) {
	controlpb.RegisterTagServiceServer(reg, &tagServer{s: s})
	controlpb.RegisterOutputServiceServer(reg, &outputServer{s: s})
	controlpb.RegisterWindowServiceServer(reg, &windowServer{s: s})
	controlpb.RegisterSignalServiceServer(reg, &signalServer{s: s})
}

// ListenAndServe listens on the configured Unix socket until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s.cfg.SocketPath == "" {
		return errors.New("control socket path is required")
	}
	if s.service == nil || s.bus == nil {
		return errors.New("control server requires a service and a signal bus")
	}
	if s.logger == nil {
		s.logger = pslog.Ctx(ctx)
	}
	if err := os.MkdirAll(filepath.Dir(s.cfg.SocketPath), 0o700); err != nil {
		return err
	}
	_ = os.Remove(s.cfg.SocketPath)

	listener, err := net.Listen("unix", s.cfg.SocketPath)
	if err != nil {
		return err
	}
	grpcServer := grpc.NewServer(
		grpc.ForceServerCodec(controlpb.Codec{}),
		grpc.ChainUnaryInterceptor(s.unaryLogger),
		grpc.ChainStreamInterceptor(s.streamLogger),
	)
	s.Register(grpcServer)
	s.logger.Info("control grpc listening", "socket", s.cfg.SocketPath)

	errCh := make(chan error, 1)
	go func() {
		errCh <- grpcServer.Serve(&credListener{Listener: listener, log: s.logger})
	}()

	select {
	case <-ctx.Done():
		// Open signal streams only end when their sessions close.
		s.bus.Close()
		grpcServer.GracefulStop()
		_ = os.Remove(s.cfg.SocketPath)
		s.logger.Info("control grpc stopped", "socket", s.cfg.SocketPath)
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) log(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// requestLogger derives the per-call logger from the server logger and the
// caller's credentials.
func (s *Server) requestLogger(ctx context.Context, method string) pslog.Logger {
	log := s.logger
	if log == nil {
		log = pslog.Ctx(ctx)
	}
	log = log.With("method", method)
	if addr, ok := peerFromContext(ctx); ok {
		log = log.With("peer_pid", addr.PID, "peer_uid", addr.UID)
	}
	return log
}

func (s *Server) unaryLogger(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	log := s.requestLogger(ctx, info.FullMethod)
	ctx = pslog.ContextWithLogger(ctx, log)
	resp, err := handler(ctx, req)
	if err != nil {
		logGRPCError(log, "control grpc request failed", err)
		return nil, err
	}
	log.Trace("control grpc request")
	return resp, nil
}

type loggedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *loggedStream) Context() context.Context { return s.ctx }

func (s *Server) streamLogger(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	log := s.requestLogger(stream.Context(), info.FullMethod)
	ctx := pslog.ContextWithLogger(stream.Context(), log)
	err := handler(srv, &loggedStream{ServerStream: stream, ctx: ctx})
	if err != nil {
		logGRPCError(log, "control grpc stream failed", err)
	}
	return err
}

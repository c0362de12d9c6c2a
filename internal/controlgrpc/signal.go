package controlgrpc

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/internal/controlpb"
	"pkt.systems/tagwm/internal/logx"
	"pkt.systems/tagwm/internal/signalbus"
	"pkt.systems/tagwm/schema"
)

type signalServer struct {
	s *Server
}

func (g *signalServer) OutputConnect(stream grpc.BidiStreamingServer[controlpb.SignalRequest, controlpb.OutputConnectResponse]) error {
	return serveSignals(g.s, schema.SignalOutputConnect, stream, toPBOutputConnect)
}

func (g *signalServer) OutputDisconnect(stream grpc.BidiStreamingServer[controlpb.SignalRequest, controlpb.OutputDisconnectResponse]) error {
	return serveSignals(g.s, schema.SignalOutputDisconnect, stream, toPBOutputDisconnect)
}

func (g *signalServer) OutputResize(stream grpc.BidiStreamingServer[controlpb.SignalRequest, controlpb.OutputResizeResponse]) error {
	return serveSignals(g.s, schema.SignalOutputResize, stream, toPBOutputResize)
}

func (g *signalServer) OutputMove(stream grpc.BidiStreamingServer[controlpb.SignalRequest, controlpb.OutputMoveResponse]) error {
	return serveSignals(g.s, schema.SignalOutputMove, stream, toPBOutputMove)
}

func (g *signalServer) WindowPointerEnter(stream grpc.BidiStreamingServer[controlpb.SignalRequest, controlpb.WindowPointerEnterResponse]) error {
	return serveSignals(g.s, schema.SignalWindowPointerEnter, stream, toPBWindowPointerEnter)
}

func (g *signalServer) WindowPointerLeave(stream grpc.BidiStreamingServer[controlpb.SignalRequest, controlpb.WindowPointerLeaveResponse]) error {
	return serveSignals(g.s, schema.SignalWindowPointerLeave, stream, toPBWindowPointerLeave)
}

func (g *signalServer) TagActive(stream grpc.BidiStreamingServer[controlpb.SignalRequest, controlpb.TagActiveResponse]) error {
	return serveSignals(g.s, schema.SignalTagActive, stream, toPBTagActive)
}

// serveSignals runs one subscription: a reader goroutine turns READY into
// credit and DISCONNECT or transport loss into session close, while this
// goroutine sends queued signals as credit allows.
func serveSignals[Res any](s *Server, kind schema.SignalKind, stream grpc.BidiStreamingServer[controlpb.SignalRequest, Res], encode func(schema.Signal) (*Res, bool)) error {
	ctx := stream.Context()
	session, err := s.bus.Subscribe(ctx, kind)
	if err != nil {
		return toStatus(err)
	}
	defer session.Close()
	log := logx.WithSession(ctx, session.ID(), kind)
	ctx = logx.ContextWithSessionLogger(ctx, log, session.ID())

	go readControl(ctx, stream, session)

	for {
		sig, err := session.Next(ctx)
		if err != nil {
			if errors.Is(err, schema.ErrSessionClosed) || ctx.Err() != nil {
				return nil
			}
			return toStatus(err)
		}
		msg, ok := encode(sig)
		if !ok {
			log.Warn("signal dropped on mismatched channel", "signal_kind", sig.Kind().String())
			continue
		}
		if err := stream.Send(msg); err != nil {
			log.Warn("signal send failed", "err", err)
			return err
		}
		log.Trace("signal delivered", "pending", session.Pending(), "credit", session.Credit())
	}
}

func readControl[Res any](ctx context.Context, stream grpc.BidiStreamingServer[controlpb.SignalRequest, Res], session *signalbus.Session) {
	log := pslog.Ctx(ctx)
	defer session.Close()
	for {
		req, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("signal stream half-closed by client")
			} else if ctx.Err() == nil {
				log.Debug("signal stream receive ended", "err", err)
			}
			return
		}
		switch req.Control {
		case controlpb.StreamControlReady:
			session.Grant(1)
		case controlpb.StreamControlDisconnect:
			log.Debug("signal stream disconnect requested")
			return
		default:
			log.Warn("signal stream control ignored", "control", req.Control.String())
		}
	}
}

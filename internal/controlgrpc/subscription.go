package controlgrpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"google.golang.org/grpc"

	"pkt.systems/tagwm/internal/controlpb"
	"pkt.systems/tagwm/schema"
)

// Subscription is the client side of one signal stream. The server sends
// nothing until credit is granted with Ready.
type Subscription struct {
	kind   schema.SignalKind
	cancel context.CancelFunc

	sendMu    sync.Mutex
	send      func(*controlpb.SignalRequest) error
	closeSend func() error
	recv      func() (schema.Signal, error)

	closeOnce sync.Once
}

// Subscribe opens the stream for kind.
func (c *Client) Subscribe(ctx context.Context, kind schema.SignalKind) (*Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)
	var (
		sub *Subscription
		err error
	)
	switch kind {
	case schema.SignalOutputConnect:
		sub, err = openSubscription(ctx, kind, c.signals.OutputConnect, fromPBOutputConnect)
	case schema.SignalOutputDisconnect:
		sub, err = openSubscription(ctx, kind, c.signals.OutputDisconnect, fromPBOutputDisconnect)
	case schema.SignalOutputResize:
		sub, err = openSubscription(ctx, kind, c.signals.OutputResize, fromPBOutputResize)
	case schema.SignalOutputMove:
		sub, err = openSubscription(ctx, kind, c.signals.OutputMove, fromPBOutputMove)
	case schema.SignalWindowPointerEnter:
		sub, err = openSubscription(ctx, kind, c.signals.WindowPointerEnter, fromPBWindowPointerEnter)
	case schema.SignalWindowPointerLeave:
		sub, err = openSubscription(ctx, kind, c.signals.WindowPointerLeave, fromPBWindowPointerLeave)
	case schema.SignalTagActive:
		sub, err = openSubscription(ctx, kind, c.signals.TagActive, fromPBTagActive)
	default:
		err = fmt.Errorf("%w: signal kind %d", schema.ErrInvalidRequest, kind)
	}
	if err != nil {
		cancel()
		return nil, c.fail(ctx, "subscribe "+kind.String(), err)
	}
	sub.cancel = cancel
	return sub, nil
}

func openSubscription[Res any](
	ctx context.Context,
	kind schema.SignalKind,
	open func(context.Context, ...grpc.CallOption) (grpc.BidiStreamingClient[controlpb.SignalRequest, Res], error),
	decode func(*Res) schema.Signal,
) (*Subscription, error) {
	stream, err := open(ctx)
	if err != nil {
		return nil, err
	}
	return &Subscription{
		kind:      kind,
		send:      stream.Send,
		closeSend: stream.CloseSend,
		recv: func() (schema.Signal, error) {
			msg, err := stream.Recv()
			if err != nil {
				return nil, err
			}
			return decode(msg), nil
		},
	}, nil
}

// Kind returns the subscribed signal kind.
func (s *Subscription) Kind() schema.SignalKind { return s.kind }

// Ready grants the server one unit of credit.
func (s *Subscription) Ready() error {
	return s.control(controlpb.StreamControlReady)
}

// Grant sends n READY messages.
func (s *Subscription) Grant(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Ready(); err != nil {
			return err
		}
	}
	return nil
}

// Recv blocks for the next signal. It returns io.EOF once the server ends the
// stream after a Disconnect.
func (s *Subscription) Recv() (schema.Signal, error) {
	sig, err := s.recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, wrapControlError("recv "+s.kind.String(), err)
	}
	return sig, nil
}

// Disconnect asks the server to end the subscription and half-closes the
// stream. Pending Recv calls return io.EOF afterwards.
func (s *Subscription) Disconnect() error {
	if err := s.control(controlpb.StreamControlDisconnect); err != nil {
		return err
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	return s.closeSend()
}

// Close tears the stream down without a Disconnect.
func (s *Subscription) Close() error {
	s.closeOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
	return nil
}

func (s *Subscription) control(value controlpb.StreamControl) error {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if err := s.send(&controlpb.SignalRequest{Control: value}); err != nil {
		return wrapControlError("control "+s.kind.String(), err)
	}
	return nil
}

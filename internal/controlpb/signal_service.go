package controlpb

import (
	"context"

	"google.golang.org/grpc"
)

const (
	SignalServiceOutputConnectMethod      = "/" + SignalServiceName + "/OutputConnect"
	SignalServiceOutputDisconnectMethod   = "/" + SignalServiceName + "/OutputDisconnect"
	SignalServiceOutputResizeMethod       = "/" + SignalServiceName + "/OutputResize"
	SignalServiceOutputMoveMethod         = "/" + SignalServiceName + "/OutputMove"
	SignalServiceWindowPointerEnterMethod = "/" + SignalServiceName + "/WindowPointerEnter"
	SignalServiceWindowPointerLeaveMethod = "/" + SignalServiceName + "/WindowPointerLeave"
	SignalServiceTagActiveMethod          = "/" + SignalServiceName + "/TagActive"
)

// SignalServiceServer is the server API for tagwm.signal.v1.SignalService.
// Every method is a bidirectional stream: the client sends StreamControl
// messages, the server sends one response per signal.
type SignalServiceServer interface {
	OutputConnect(grpc.BidiStreamingServer[SignalRequest, OutputConnectResponse]) error
	OutputDisconnect(grpc.BidiStreamingServer[SignalRequest, OutputDisconnectResponse]) error
	OutputResize(grpc.BidiStreamingServer[SignalRequest, OutputResizeResponse]) error
	OutputMove(grpc.BidiStreamingServer[SignalRequest, OutputMoveResponse]) error
	WindowPointerEnter(grpc.BidiStreamingServer[SignalRequest, WindowPointerEnterResponse]) error
	WindowPointerLeave(grpc.BidiStreamingServer[SignalRequest, WindowPointerLeaveResponse]) error
	TagActive(grpc.BidiStreamingServer[SignalRequest, TagActiveResponse]) error
}

func bidi[Res any](call func(srv any, stream grpc.BidiStreamingServer[SignalRequest, Res]) error) grpc.StreamHandler {
	return func(srv any, stream grpc.ServerStream) error {
		return call(srv, &grpc.GenericServerStream[SignalRequest, Res]{ServerStream: stream})
	}
}

func signalStream(name string, handler grpc.StreamHandler) grpc.StreamDesc {
	return grpc.StreamDesc{
		StreamName:    name,
		Handler:       handler,
		ServerStreams: true,
		ClientStreams: true,
	}
}

// SignalServiceDesc describes tagwm.signal.v1.SignalService.
var SignalServiceDesc = grpc.ServiceDesc{
	ServiceName: SignalServiceName,
	HandlerType: (*SignalServiceServer)(nil),
	Streams: []grpc.StreamDesc{
		signalStream("OutputConnect", bidi(func(srv any, stream grpc.BidiStreamingServer[SignalRequest, OutputConnectResponse]) error {
			return srv.(SignalServiceServer).OutputConnect(stream)
		})),
		signalStream("OutputDisconnect", bidi(func(srv any, stream grpc.BidiStreamingServer[SignalRequest, OutputDisconnectResponse]) error {
			return srv.(SignalServiceServer).OutputDisconnect(stream)
		})),
		signalStream("OutputResize", bidi(func(srv any, stream grpc.BidiStreamingServer[SignalRequest, OutputResizeResponse]) error {
			return srv.(SignalServiceServer).OutputResize(stream)
		})),
		signalStream("OutputMove", bidi(func(srv any, stream grpc.BidiStreamingServer[SignalRequest, OutputMoveResponse]) error {
			return srv.(SignalServiceServer).OutputMove(stream)
		})),
		signalStream("WindowPointerEnter", bidi(func(srv any, stream grpc.BidiStreamingServer[SignalRequest, WindowPointerEnterResponse]) error {
			return srv.(SignalServiceServer).WindowPointerEnter(stream)
		})),
		signalStream("WindowPointerLeave", bidi(func(srv any, stream grpc.BidiStreamingServer[SignalRequest, WindowPointerLeaveResponse]) error {
			return srv.(SignalServiceServer).WindowPointerLeave(stream)
		})),
		signalStream("TagActive", bidi(func(srv any, stream grpc.BidiStreamingServer[SignalRequest, TagActiveResponse]) error {
			return srv.(SignalServiceServer).TagActive(stream)
		})),
	},
	Metadata: "tagwm/v1/signal.proto",
}

// RegisterSignalServiceServer registers srv on s.
func RegisterSignalServiceServer(s grpc.ServiceRegistrar, srv SignalServiceServer) {
	s.RegisterService(&SignalServiceDesc, srv)
}

// SignalServiceClient is the client API for tagwm.signal.v1.SignalService.
type SignalServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSignalServiceClient wraps a connection.
func NewSignalServiceClient(cc grpc.ClientConnInterface) *SignalServiceClient {
	return &SignalServiceClient{cc: cc}
}

func openSignal[Res any](ctx context.Context, cc grpc.ClientConnInterface, index int, method string, opts []grpc.CallOption) (grpc.BidiStreamingClient[SignalRequest, Res], error) {
	stream, err := cc.NewStream(ctx, &SignalServiceDesc.Streams[index], method, opts...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[SignalRequest, Res]{ClientStream: stream}, nil
}

func (c *SignalServiceClient) OutputConnect(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[SignalRequest, OutputConnectResponse], error) {
	return openSignal[OutputConnectResponse](ctx, c.cc, 0, SignalServiceOutputConnectMethod, opts)
}

func (c *SignalServiceClient) OutputDisconnect(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[SignalRequest, OutputDisconnectResponse], error) {
	return openSignal[OutputDisconnectResponse](ctx, c.cc, 1, SignalServiceOutputDisconnectMethod, opts)
}

func (c *SignalServiceClient) OutputResize(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[SignalRequest, OutputResizeResponse], error) {
	return openSignal[OutputResizeResponse](ctx, c.cc, 2, SignalServiceOutputResizeMethod, opts)
}

func (c *SignalServiceClient) OutputMove(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[SignalRequest, OutputMoveResponse], error) {
	return openSignal[OutputMoveResponse](ctx, c.cc, 3, SignalServiceOutputMoveMethod, opts)
}

func (c *SignalServiceClient) WindowPointerEnter(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[SignalRequest, WindowPointerEnterResponse], error) {
	return openSignal[WindowPointerEnterResponse](ctx, c.cc, 4, SignalServiceWindowPointerEnterMethod, opts)
}

func (c *SignalServiceClient) WindowPointerLeave(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[SignalRequest, WindowPointerLeaveResponse], error) {
	return openSignal[WindowPointerLeaveResponse](ctx, c.cc, 5, SignalServiceWindowPointerLeaveMethod, opts)
}

func (c *SignalServiceClient) TagActive(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[SignalRequest, TagActiveResponse], error) {
	return openSignal[TagActiveResponse](ctx, c.cc, 6, SignalServiceTagActiveMethod, opts)
}

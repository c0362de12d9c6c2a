package controlpb

import (
	"context"

	"google.golang.org/grpc"
)

// Fully-qualified service names.
const (
	TagServiceName    = "tagwm.tag.v1.TagService"
	OutputServiceName = "tagwm.output.v1.OutputService"
	WindowServiceName = "tagwm.window.v1.WindowService"
	SignalServiceName = "tagwm.signal.v1.SignalService"
)

// unary adapts a typed method to a grpc.MethodHandler.
func unary[Req any, PReq interface {
	*Req
	Message
}, Res any](method string, call func(srv any, ctx context.Context, req PReq) (Res, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv, ctx, req.(PReq))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func invoke[Res any, PRes interface {
	*Res
	Message
}](ctx context.Context, cc grpc.ClientConnInterface, method string, in Message, opts []grpc.CallOption) (PRes, error) {
	out := PRes(new(Res))
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Tag service.

const (
	TagServiceSetActiveMethod     = "/" + TagServiceName + "/SetActive"
	TagServiceSwitchToMethod      = "/" + TagServiceName + "/SwitchTo"
	TagServiceAddMethod           = "/" + TagServiceName + "/Add"
	TagServiceRemoveMethod        = "/" + TagServiceName + "/Remove"
	TagServiceGetMethod           = "/" + TagServiceName + "/Get"
	TagServiceGetPropertiesMethod = "/" + TagServiceName + "/GetProperties"
)

// TagServiceServer is the server API for tagwm.tag.v1.TagService.
type TagServiceServer interface {
	SetActive(context.Context, *SetActiveRequest) (*Empty, error)
	SwitchTo(context.Context, *SwitchToRequest) (*Empty, error)
	Add(context.Context, *AddRequest) (*AddResponse, error)
	Remove(context.Context, *RemoveRequest) (*Empty, error)
	Get(context.Context, *GetTagsRequest) (*GetTagsResponse, error)
	GetProperties(context.Context, *GetTagPropertiesRequest) (*GetTagPropertiesResponse, error)
}

// TagServiceDesc describes tagwm.tag.v1.TagService.
var TagServiceDesc = grpc.ServiceDesc{
	ServiceName: TagServiceName,
	HandlerType: (*TagServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SetActive", Handler: unary(TagServiceSetActiveMethod, func(srv any, ctx context.Context, req *SetActiveRequest) (*Empty, error) {
			return srv.(TagServiceServer).SetActive(ctx, req)
		})},
		{MethodName: "SwitchTo", Handler: unary(TagServiceSwitchToMethod, func(srv any, ctx context.Context, req *SwitchToRequest) (*Empty, error) {
			return srv.(TagServiceServer).SwitchTo(ctx, req)
		})},
		{MethodName: "Add", Handler: unary(TagServiceAddMethod, func(srv any, ctx context.Context, req *AddRequest) (*AddResponse, error) {
			return srv.(TagServiceServer).Add(ctx, req)
		})},
		{MethodName: "Remove", Handler: unary(TagServiceRemoveMethod, func(srv any, ctx context.Context, req *RemoveRequest) (*Empty, error) {
			return srv.(TagServiceServer).Remove(ctx, req)
		})},
		{MethodName: "Get", Handler: unary(TagServiceGetMethod, func(srv any, ctx context.Context, req *GetTagsRequest) (*GetTagsResponse, error) {
			return srv.(TagServiceServer).Get(ctx, req)
		})},
		{MethodName: "GetProperties", Handler: unary(TagServiceGetPropertiesMethod, func(srv any, ctx context.Context, req *GetTagPropertiesRequest) (*GetTagPropertiesResponse, error) {
			return srv.(TagServiceServer).GetProperties(ctx, req)
		})},
	},
	Metadata: "tagwm/v1/tag.proto",
}

// RegisterTagServiceServer registers srv on s.
func RegisterTagServiceServer(s grpc.ServiceRegistrar, srv TagServiceServer) {
	s.RegisterService(&TagServiceDesc, srv)
}

// TagServiceClient is the client API for tagwm.tag.v1.TagService.
type TagServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTagServiceClient wraps a connection.
func NewTagServiceClient(cc grpc.ClientConnInterface) *TagServiceClient {
	return &TagServiceClient{cc: cc}
}

func (c *TagServiceClient) SetActive(ctx context.Context, in *SetActiveRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, TagServiceSetActiveMethod, in, opts)
}

func (c *TagServiceClient) SwitchTo(ctx context.Context, in *SwitchToRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, TagServiceSwitchToMethod, in, opts)
}

func (c *TagServiceClient) Add(ctx context.Context, in *AddRequest, opts ...grpc.CallOption) (*AddResponse, error) {
	return invoke[AddResponse](ctx, c.cc, TagServiceAddMethod, in, opts)
}

func (c *TagServiceClient) Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, TagServiceRemoveMethod, in, opts)
}

func (c *TagServiceClient) Get(ctx context.Context, in *GetTagsRequest, opts ...grpc.CallOption) (*GetTagsResponse, error) {
	return invoke[GetTagsResponse](ctx, c.cc, TagServiceGetMethod, in, opts)
}

func (c *TagServiceClient) GetProperties(ctx context.Context, in *GetTagPropertiesRequest, opts ...grpc.CallOption) (*GetTagPropertiesResponse, error) {
	return invoke[GetTagPropertiesResponse](ctx, c.cc, TagServiceGetPropertiesMethod, in, opts)
}

// Output service.

const (
	OutputServiceGetMethod           = "/" + OutputServiceName + "/Get"
	OutputServiceGetPropertiesMethod = "/" + OutputServiceName + "/GetProperties"
)

// OutputServiceServer is the server API for tagwm.output.v1.OutputService.
type OutputServiceServer interface {
	Get(context.Context, *GetOutputsRequest) (*GetOutputsResponse, error)
	GetProperties(context.Context, *GetOutputPropertiesRequest) (*GetOutputPropertiesResponse, error)
}

// OutputServiceDesc describes tagwm.output.v1.OutputService.
var OutputServiceDesc = grpc.ServiceDesc{
	ServiceName: OutputServiceName,
	HandlerType: (*OutputServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Get", Handler: unary(OutputServiceGetMethod, func(srv any, ctx context.Context, req *GetOutputsRequest) (*GetOutputsResponse, error) {
			return srv.(OutputServiceServer).Get(ctx, req)
		})},
		{MethodName: "GetProperties", Handler: unary(OutputServiceGetPropertiesMethod, func(srv any, ctx context.Context, req *GetOutputPropertiesRequest) (*GetOutputPropertiesResponse, error) {
			return srv.(OutputServiceServer).GetProperties(ctx, req)
		})},
	},
	Metadata: "tagwm/v1/output.proto",
}

// RegisterOutputServiceServer registers srv on s.
func RegisterOutputServiceServer(s grpc.ServiceRegistrar, srv OutputServiceServer) {
	s.RegisterService(&OutputServiceDesc, srv)
}

// OutputServiceClient is the client API for tagwm.output.v1.OutputService.
type OutputServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewOutputServiceClient wraps a connection.
func NewOutputServiceClient(cc grpc.ClientConnInterface) *OutputServiceClient {
	return &OutputServiceClient{cc: cc}
}

func (c *OutputServiceClient) Get(ctx context.Context, in *GetOutputsRequest, opts ...grpc.CallOption) (*GetOutputsResponse, error) {
	return invoke[GetOutputsResponse](ctx, c.cc, OutputServiceGetMethod, in, opts)
}

func (c *OutputServiceClient) GetProperties(ctx context.Context, in *GetOutputPropertiesRequest, opts ...grpc.CallOption) (*GetOutputPropertiesResponse, error) {
	return invoke[GetOutputPropertiesResponse](ctx, c.cc, OutputServiceGetPropertiesMethod, in, opts)
}

// Window service.

const (
	WindowServiceGetMethod           = "/" + WindowServiceName + "/Get"
	WindowServiceGetPropertiesMethod = "/" + WindowServiceName + "/GetProperties"
	WindowServiceSetTagMethod        = "/" + WindowServiceName + "/SetTag"
)

// WindowServiceServer is the server API for tagwm.window.v1.WindowService.
type WindowServiceServer interface {
	Get(context.Context, *GetWindowsRequest) (*GetWindowsResponse, error)
	GetProperties(context.Context, *GetWindowPropertiesRequest) (*GetWindowPropertiesResponse, error)
	SetTag(context.Context, *SetWindowTagRequest) (*Empty, error)
}

// WindowServiceDesc describes tagwm.window.v1.WindowService.
var WindowServiceDesc = grpc.ServiceDesc{
	ServiceName: WindowServiceName,
	HandlerType: (*WindowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Get", Handler: unary(WindowServiceGetMethod, func(srv any, ctx context.Context, req *GetWindowsRequest) (*GetWindowsResponse, error) {
			return srv.(WindowServiceServer).Get(ctx, req)
		})},
		{MethodName: "GetProperties", Handler: unary(WindowServiceGetPropertiesMethod, func(srv any, ctx context.Context, req *GetWindowPropertiesRequest) (*GetWindowPropertiesResponse, error) {
			return srv.(WindowServiceServer).GetProperties(ctx, req)
		})},
		{MethodName: "SetTag", Handler: unary(WindowServiceSetTagMethod, func(srv any, ctx context.Context, req *SetWindowTagRequest) (*Empty, error) {
			return srv.(WindowServiceServer).SetTag(ctx, req)
		})},
	},
	Metadata: "tagwm/v1/window.proto",
}

// RegisterWindowServiceServer registers srv on s.
func RegisterWindowServiceServer(s grpc.ServiceRegistrar, srv WindowServiceServer) {
	s.RegisterService(&WindowServiceDesc, srv)
}

// WindowServiceClient is the client API for tagwm.window.v1.WindowService.
type WindowServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewWindowServiceClient wraps a connection.
func NewWindowServiceClient(cc grpc.ClientConnInterface) *WindowServiceClient {
	return &WindowServiceClient{cc: cc}
}

func (c *WindowServiceClient) Get(ctx context.Context, in *GetWindowsRequest, opts ...grpc.CallOption) (*GetWindowsResponse, error) {
	return invoke[GetWindowsResponse](ctx, c.cc, WindowServiceGetMethod, in, opts)
}

func (c *WindowServiceClient) GetProperties(ctx context.Context, in *GetWindowPropertiesRequest, opts ...grpc.CallOption) (*GetWindowPropertiesResponse, error) {
	return invoke[GetWindowPropertiesResponse](ctx, c.cc, WindowServiceGetPropertiesMethod, in, opts)
}

func (c *WindowServiceClient) SetTag(ctx context.Context, in *SetWindowTagRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, WindowServiceSetTagMethod, in, opts)
}

package controlgrpc

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"pkt.systems/pslog"
	"pkt.systems/tagwm/internal/controlpb"
	"pkt.systems/tagwm/schema"
)

// Client is a typed control client over a Unix domain socket.
type Client struct {
	conn    *grpc.ClientConn
	tags    *controlpb.TagServiceClient
	outputs *controlpb.OutputServiceClient
	windows *controlpb.WindowServiceClient
	signals *controlpb.SignalServiceClient
}

// Dial creates a new control client over a Unix domain socket.
func Dial(ctx context.Context, socketPath string) (*Client, error) {
	if socketPath == "" {
		return nil, errors.New("control socket path is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dialer := func(ctx context.Context, addr string) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, "unix", addr)
	}
	target := "passthrough:///" + socketPath
	conn, err := grpc.NewClient(
		target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(dialer),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(controlpb.Codec{})),
	)
	if err != nil {
		return nil, err
	}
	return &Client{
		conn:    conn,
		tags:    controlpb.NewTagServiceClient(conn),
		outputs: controlpb.NewOutputServiceClient(conn),
		windows: controlpb.NewWindowServiceClient(conn),
		signals: controlpb.NewSignalServiceClient(conn),
	}, nil
}

// Close closes the underlying gRPC connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// SetActive sets, unsets or toggles a tag's active flag.
func (c *Client) SetActive(ctx context.Context, id schema.TagID, mode schema.SetActiveMode) error {
	_, err := c.tags.SetActive(ctx, &controlpb.SetActiveRequest{TagId: uint32(id), SetOrToggle: toPBMode(mode)})
	return c.fail(ctx, "set active", err)
}

// SwitchTo activates a tag and deactivates the other tags on its output.
func (c *Client) SwitchTo(ctx context.Context, id schema.TagID) error {
	_, err := c.tags.SwitchTo(ctx, &controlpb.SwitchToRequest{TagId: uint32(id)})
	return c.fail(ctx, "switch to", err)
}

// AddTags creates tags on an output and returns their ids in name order.
func (c *Client) AddTags(ctx context.Context, output schema.OutputName, names ...string) ([]schema.TagID, error) {
	resp, err := c.tags.Add(ctx, &controlpb.AddRequest{OutputName: string(output), TagNames: names})
	if err != nil {
		return nil, c.fail(ctx, "add tags", err)
	}
	return fromPBTagIDs(resp.TagIds), nil
}

// RemoveTags removes tags; unknown ids are ignored by the server.
func (c *Client) RemoveTags(ctx context.Context, ids ...schema.TagID) error {
	_, err := c.tags.Remove(ctx, &controlpb.RemoveRequest{TagIds: toPBTagIDs(ids)})
	return c.fail(ctx, "remove tags", err)
}

// ListTags returns every live tag id.
func (c *Client) ListTags(ctx context.Context) ([]schema.TagID, error) {
	resp, err := c.tags.Get(ctx, &controlpb.GetTagsRequest{})
	if err != nil {
		return nil, c.fail(ctx, "list tags", err)
	}
	return fromPBTagIDs(resp.TagIds), nil
}

// TagProperties returns the properties of one tag.
func (c *Client) TagProperties(ctx context.Context, id schema.TagID) (schema.TagProperties, error) {
	resp, err := c.tags.GetProperties(ctx, &controlpb.GetTagPropertiesRequest{TagId: uint32(id)})
	if err != nil {
		return schema.TagProperties{}, c.fail(ctx, "tag properties", err)
	}
	return schema.TagProperties{
		ID:         id,
		Name:       resp.Name,
		OutputName: schema.OutputName(resp.OutputName),
		Active:     resp.Active,
		WindowIDs:  fromPBWindowIDs(resp.WindowIds),
	}, nil
}

// ListOutputs returns connected output names in connect order.
func (c *Client) ListOutputs(ctx context.Context) ([]schema.OutputName, error) {
	resp, err := c.outputs.Get(ctx, &controlpb.GetOutputsRequest{})
	if err != nil {
		return nil, c.fail(ctx, "list outputs", err)
	}
	return fromPBOutputNames(resp.OutputNames), nil
}

// OutputProperties returns the geometry and tags of one output.
func (c *Client) OutputProperties(ctx context.Context, name schema.OutputName) (schema.OutputProperties, error) {
	resp, err := c.outputs.GetProperties(ctx, &controlpb.GetOutputPropertiesRequest{OutputName: string(name)})
	if err != nil {
		return schema.OutputProperties{}, c.fail(ctx, "output properties", err)
	}
	return schema.OutputProperties{
		Name: name,
		Geometry: schema.Geometry{
			X:      resp.X,
			Y:      resp.Y,
			Width:  resp.LogicalWidth,
			Height: resp.LogicalHeight,
		},
		TagIDs: fromPBTagIDs(resp.TagIds),
	}, nil
}

// ListWindows returns every mapped window id.
func (c *Client) ListWindows(ctx context.Context) ([]schema.WindowID, error) {
	resp, err := c.windows.Get(ctx, &controlpb.GetWindowsRequest{})
	if err != nil {
		return nil, c.fail(ctx, "list windows", err)
	}
	return fromPBWindowIDs(resp.WindowIds), nil
}

// WindowProperties returns the tags and pointer focus of one window.
func (c *Client) WindowProperties(ctx context.Context, id schema.WindowID) (schema.WindowProperties, error) {
	resp, err := c.windows.GetProperties(ctx, &controlpb.GetWindowPropertiesRequest{WindowId: uint32(id)})
	if err != nil {
		return schema.WindowProperties{}, c.fail(ctx, "window properties", err)
	}
	return schema.WindowProperties{
		ID:           id,
		TagIDs:       fromPBTagIDs(resp.TagIds),
		PointerFocus: resp.PointerFocus,
	}, nil
}

// SetWindowTag attaches, detaches or toggles a tag on a window.
func (c *Client) SetWindowTag(ctx context.Context, window schema.WindowID, tag schema.TagID, mode schema.SetActiveMode) error {
	_, err := c.windows.SetTag(ctx, &controlpb.SetWindowTagRequest{WindowId: uint32(window), TagId: uint32(tag), SetOrToggle: toPBMode(mode)})
	return c.fail(ctx, "set window tag", err)
}

func (c *Client) fail(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	logGRPCError(pslog.Ctx(ctx), "control grpc "+op+" failed", err)
	return wrapControlError(op, err)
}

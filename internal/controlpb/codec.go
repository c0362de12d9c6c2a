package controlpb

import "fmt"

// Codec is the gRPC codec for control messages. It registers under the
// "proto" name so the content-subtype on the wire is application/grpc+proto.
type Codec struct{}

// Name implements encoding.Codec.
func (Codec) Name() string { return "proto" }

// Marshal implements encoding.Codec.
func (Codec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("controlpb: cannot marshal %T", v)
	}
	return msg.AppendWire(nil), nil
}

// Unmarshal implements encoding.Codec.
func (Codec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(Message)
	if !ok {
		return fmt.Errorf("controlpb: cannot unmarshal into %T", v)
	}
	return msg.UnmarshalWire(data)
}

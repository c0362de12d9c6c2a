// Codegen requires protoc, protoc-gen-go, and protoc-gen-go-grpc on PATH.
// Its output replaces the hand-maintained messages, service descriptors and
// codec in internal/controlpb.
//go:generate protoc --go_out=. --go-grpc_out=. --go_opt=module=pkt.systems/tagwm --go-grpc_opt=module=pkt.systems/tagwm proto/tagwm/v1/tag.proto proto/tagwm/v1/output.proto proto/tagwm/v1/window.proto proto/tagwm/v1/signal.proto

package tagwm

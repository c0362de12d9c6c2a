package controlgrpc

// Config controls the control gRPC server/client setup.
type Config struct {
	SocketPath string
}

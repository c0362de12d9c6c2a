//go:build !linux

package controlgrpc

import (
	"errors"
	"net"
)

func readPeerCred(*net.UnixConn) (int32, uint32, uint32, error) {
	return 0, 0, 0, errors.ErrUnsupported
}

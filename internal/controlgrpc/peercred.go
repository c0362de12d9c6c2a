package controlgrpc

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc/peer"

	"pkt.systems/pslog"
)

// PeerAddr is the remote address of an accepted control connection, carrying
// the kernel-reported credentials of the connecting process.
type PeerAddr struct {
	net.Addr
	PID int32
	UID uint32
	GID uint32
	// Known is false when the credentials could not be read.
	Known bool
}

// Network implements net.Addr.
func (a *PeerAddr) Network() string { return "unix" }

func (a *PeerAddr) String() string {
	if a == nil || !a.Known {
		return "unix:unknown"
	}
	return fmt.Sprintf("unix:pid=%d,uid=%d", a.PID, a.UID)
}

// credListener annotates accepted Unix connections with SO_PEERCRED.
type credListener struct {
	net.Listener
	log pslog.Logger
}

func (l *credListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	addr := &PeerAddr{Addr: conn.RemoteAddr()}
	if uc, ok := conn.(*net.UnixConn); ok {
		if pid, uid, gid, err := readPeerCred(uc); err == nil {
			addr.PID, addr.UID, addr.GID, addr.Known = pid, uid, gid, true
		} else {
			l.log.Debug("control peer credentials unavailable", "err", err)
		}
	}
	l.log.Debug("control connection accepted", "peer_pid", addr.PID, "peer_uid", addr.UID)
	return &credConn{Conn: conn, remote: addr}, nil
}

type credConn struct {
	net.Conn
	remote *PeerAddr
}

func (c *credConn) RemoteAddr() net.Addr { return c.remote }

// peerFromContext returns the credentials of the calling process, if known.
func peerFromContext(ctx context.Context) (*PeerAddr, bool) {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return nil, false
	}
	addr, ok := p.Addr.(*PeerAddr)
	if !ok || !addr.Known {
		return nil, false
	}
	return addr, true
}

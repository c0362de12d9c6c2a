//go:build linux

package controlgrpc

import (
	"net"

	"golang.org/x/sys/unix"
)

func readPeerCred(conn *net.UnixConn) (pid int32, uid, gid uint32, err error) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return 0, 0, 0, err
	}
	var cred *unix.Ucred
	var credErr error
	if err := raw.Control(func(fd uintptr) {
		cred, credErr = unix.GetsockoptUcred(int(fd), unix.SOL_SOCKET, unix.SO_PEERCRED)
	}); err != nil {
		return 0, 0, 0, err
	}
	if credErr != nil {
		return 0, 0, 0, credErr
	}
	return cred.Pid, cred.Uid, cred.Gid, nil
}

// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagent

import (
	"io"
	"net"
	"runtime"
	"syscall"
	"time"

	"code.hybscloud.com/iox"
	"golang.org/x/sys/unix"
)

// tcpTransport serves a single driver connection at a time over TCP,
// re-accepting on EOF exactly as the original host build's socket_connect
// reconnect loop does: a lost connection is opaque to the dispatcher, which
// only observes ReadExact blocking a little longer than usual.
type tcpTransport struct {
	ln         net.Listener
	conn       net.Conn
	io         *nonblockConn
	retryDelay time.Duration
}

// NewTCPTransport listens on addr (e.g. "127.0.0.1:9999") and returns a
// Transport that accepts one driver connection at a time, transparently
// re-accepting whenever the current connection closes. The first
// ReadExact/WriteAll call blocks until a driver connects.
func NewTCPTransport(addr string, opts ...Option) (Transport, error) {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &tcpTransport{ln: ln, retryDelay: o.RetryDelay}, nil
}

func (t *tcpTransport) accept() error {
	if t.conn != nil {
		_ = t.conn.Close()
		t.conn = nil
		t.io = nil
	}
	conn, err := t.ln.Accept()
	if err != nil {
		return err
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		// A loopback driver link is latency-sensitive: Nagle batching would
		// visibly delay small request/response round trips.
		if raw, rerr := tc.SyscallConn(); rerr == nil {
			_ = raw.Control(func(fd uintptr) {
				_ = unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_NODELAY, 1)
			})
		}
	}
	sc, ok := conn.(syscall.Conn)
	if !ok {
		_ = conn.Close()
		return errUnsupportedConnType
	}
	nc, err := newNonblockConn(sc)
	if err != nil {
		_ = conn.Close()
		return err
	}
	t.conn = conn
	t.io = nc
	return nil
}

// waitOnWouldBlock applies the transport's retry policy when a read or
// write reports iox.ErrWouldBlock: negative RetryDelay surfaces the error
// immediately (nonblock), zero yields the processor and retries, positive
// sleeps for the duration and retries. It reports whether the caller
// should retry.
func (t *tcpTransport) waitOnWouldBlock() bool {
	if t.retryDelay < 0 {
		return false
	}
	if t.retryDelay == 0 {
		runtime.Gosched()
		return true
	}
	time.Sleep(t.retryDelay)
	return true
}

// ReadExact tracks its progress across an iox.ErrWouldBlock retry: the
// connection hasn't gone anywhere, so the next attempt must pick up at the
// same offset rather than re-reading into the front of dst. A reconnect,
// by contrast, starts a new byte stream, so it resets the offset — and,
// because the old link is gone for good, whatever was read from it is
// abandoned; a driver reconnecting after a drop must re-issue any request
// that was in flight when the link broke.
func (t *tcpTransport) ReadExact(dst []byte) error {
	got := 0
	for got < len(dst) {
		if t.conn == nil {
			if err := t.accept(); err != nil {
				return err
			}
			got = 0
		}
		n, err := t.io.Read(dst[got:])
		got += n
		if err == nil {
			continue
		}
		switch err {
		case iox.ErrWouldBlock, iox.ErrMore:
			if t.waitOnWouldBlock() {
				continue
			}
			return err
		case io.EOF, io.ErrUnexpectedEOF:
			t.conn = nil
		default:
			return err
		}
	}
	return nil
}

// WriteAll applies the same offset-preserving retry as ReadExact: a
// would-block retry resumes mid-buffer, a reconnect starts the frame over
// on the new connection.
func (t *tcpTransport) WriteAll(src []byte) error {
	off := 0
	for off < len(src) {
		if t.conn == nil {
			if err := t.accept(); err != nil {
				return err
			}
			off = 0
		}
		n, err := t.io.Write(src[off:])
		off += n
		if err == nil {
			continue
		}
		switch err {
		case iox.ErrWouldBlock, iox.ErrMore:
			if t.waitOnWouldBlock() {
				continue
			}
			return err
		case io.EOF, io.ErrUnexpectedEOF:
			t.conn = nil
		default:
			return err
		}
	}
	return nil
}

// nonblockConn adapts a connection's file descriptor to iox's
// ErrWouldBlock/ErrMore signaling instead of the implicit blocking a plain
// net.Conn.Read/Write gives you. The Go runtime already runs every net.Conn
// socket in non-blocking mode at the OS level (that's how its netpoller
// avoids parking an OS thread per connection); SyscallConn's raw Read/Write
// normally hide that by having the netpoller retry internally until the fd
// is ready. Returning true unconditionally from the raw callback below
// disables that internal retry, so an EAGAIN from the syscall reaches the
// caller directly as iox.ErrWouldBlock instead of blocking the goroutine.
type nonblockConn struct {
	raw syscall.RawConn
}

func newNonblockConn(c syscall.Conn) (*nonblockConn, error) {
	raw, err := c.SyscallConn()
	if err != nil {
		return nil, err
	}
	return &nonblockConn{raw: raw}, nil
}

func (c *nonblockConn) Read(p []byte) (int, error) {
	var n int
	var opErr error
	if err := c.raw.Read(func(fd uintptr) bool {
		n, opErr = unix.Read(int(fd), p)
		return true
	}); err != nil {
		return 0, err
	}
	switch {
	case opErr == unix.EAGAIN:
		return 0, iox.ErrWouldBlock
	case opErr != nil:
		return n, opErr
	case n == 0:
		return 0, io.EOF
	default:
		return n, nil
	}
}

func (c *nonblockConn) Write(p []byte) (int, error) {
	var n int
	var opErr error
	if err := c.raw.Write(func(fd uintptr) bool {
		n, opErr = unix.Write(int(fd), p)
		return true
	}); err != nil {
		return 0, err
	}
	if opErr == unix.EAGAIN {
		return 0, iox.ErrWouldBlock
	}
	return n, opErr
}

// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagent

import "io"

// pipeTransport adapts any io.ReadWriter (notably net.Pipe() and io.Pipe(),
// as used throughout this package's tests) to the Transport contract. It is
// also suitable for a Unix-domain-socket or any other already-connected
// stream.
type pipeTransport struct {
	rw io.ReadWriter
}

// NewPipeTransport wraps rw as a Transport with blocking ReadExact/WriteAll
// semantics. It never reconnects — callers needing reconnect-on-close
// should use NewTCPTransport instead.
func NewPipeTransport(rw io.ReadWriter) Transport {
	return &pipeTransport{rw: rw}
}

func (p *pipeTransport) ReadExact(dst []byte) error { return readExactLoop(p.rw, dst) }

func (p *pipeTransport) WriteAll(src []byte) error { return writeAllLoop(p.rw, src) }

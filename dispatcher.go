// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tagent implements an on-device remote-invocation agent: a framed
// request/response protocol over a byte transport that lets a driver read
// and write arbitrary target memory and invoke arbitrary functions by
// address with up to ten word-sized arguments.
//
// Semantics and design:
//   - Single in-flight request: Dispatcher.Run is a blocking loop on one
//     execution context. There is no internal scheduling and no
//     cancellation beyond a once-per-iteration context check.
//   - Canonical wire dialect: every response is preceded by a 3-byte "ACK"
//     (success) or "NCK" (oversize frame) token. See readFrame and dispatch.
//   - The one unsafe primitive driver-facing code gets is CALL, isolated in
//     package tagent/internal/trampoline; READ/WRITE's raw pointer casts
//     live in memory.go. Apart from those, unsafe appears only in wire.go's
//     big-endian-host fast path for word fields.
package tagent

import (
	"context"
)

// Dispatcher runs the request/response loop: read a header, read its body,
// dispatch, repeat. It is not safe for concurrent use; a single Dispatcher
// serves one Transport at a time and never has more than one request in
// flight.
type Dispatcher struct {
	t       Transport
	frame   []byte
	scratch []byte
	thumb   bool
}

// New constructs a Dispatcher over t. Options configure the scratch region
// (size or explicit buffer), the shared frame buffer, and Thumb-bit
// handling; see options.go. New ignores RetryDelay, which only
// NewTCPTransport reads.
func New(t Transport, opts ...Option) *Dispatcher {
	o := defaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	frame := o.FrameBuf
	if frame == nil {
		frame = make([]byte, FrameMax)
	}

	scratch := o.Scratch
	if scratch == nil {
		scratch = newScratch(o.HeapSize)
	}

	return &Dispatcher{
		t:       t,
		frame:   frame,
		scratch: scratch,
		thumb:   o.Thumb,
	}
}

// Memory returns the exported scratch region: byte-addressable,
// process-lifetime, shared with the driver via READ/WRITE and with
// callees invoked via CALL. The agent offers no synchronization over it.
func (d *Dispatcher) Memory() []byte { return d.scratch }

// Run executes the dispatcher loop until ctx is done or the transport
// returns a fatal error. On the embedded build, callers pass
// context.Background(): the context is checked once per header read, and
// since it never fires, the loop runs forever.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, body, oversize, err := readFrame(d.t, d.frame)
		if err != nil {
			return err
		}
		if oversize {
			// NCK already written by readFrame. The declared body was not
			// drained, so the next header read starts at the byte right
			// after the oversize header.
			continue
		}

		if err := d.dispatch(cmd, body); err != nil {
			return err
		}
	}
}

// dispatch runs one command's handler and writes its response (if any).
// Unknown command ids and unsupported CALL shapes produce no response —
// the body has already been drained by readFrame, so framing holds even
// though nothing is written back.
func (d *Dispatcher) dispatch(cmd uint16, body []byte) error {
	switch cmd {
	case cmdEcho:
		a := decodeEcho(body)
		if err := d.t.WriteAll(ackToken[:]); err != nil {
			return err
		}
		return d.t.WriteAll(a.payload)

	case cmdRead:
		a, ok := decodeRead(body)
		if !ok {
			return nil
		}
		if err := d.t.WriteAll(ackToken[:]); err != nil {
			return err
		}
		return d.t.WriteAll(memoryRead(a.addr, a.n))

	case cmdWrite:
		a, ok := decodeWrite(body)
		if !ok {
			return nil
		}
		memoryWrite(a.addr, a.data)
		return d.t.WriteAll(ackToken[:])

	case cmdCall:
		a, ok := decodeCall(body)
		if !ok {
			return nil
		}
		var out [8]byte
		n, err := doCall(a, d.thumb, out[:])
		if err != nil {
			// Unsupported arity or return width: drop silently. The frame
			// was already fully consumed, so the stream stays in sync.
			return nil
		}
		if err := d.t.WriteAll(ackToken[:]); err != nil {
			return err
		}
		return d.t.WriteAll(out[:n])

	default:
		return nil
	}
}

// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagent

import "io"

// Transport is the byte channel a Dispatcher reads requests from and writes
// responses to. Implementations MUST provide read_exact/write_all
// semantics: ReadExact either fills dst completely or blocks indefinitely
// (transparently reconnecting if it wishes); WriteAll either writes all of
// src or returns an error.
//
// The core makes no assumption about framing below this layer and owns the
// Transport exclusively while a frame is being read or a response written;
// interleaving bytes from any other producer desynchronizes the protocol.
type Transport interface {
	ReadExact(dst []byte) error
	WriteAll(src []byte) error
}

// readExactLoop accumulates partial reads from r until dst is full. It
// guards against a Read that returns (0, nil) on a non-empty buffer, which
// would otherwise spin this loop forever instead of surfacing the
// misbehaving Reader as an error.
func readExactLoop(r io.Reader, dst []byte) error {
	got := 0
	for got < len(dst) {
		n, err := r.Read(dst[got:])
		if n == 0 && err == nil {
			return io.ErrNoProgress
		}
		got += n
		if err != nil {
			if err == io.EOF && got < len(dst) {
				return io.ErrUnexpectedEOF
			}
			if got == len(dst) {
				return nil
			}
			return err
		}
	}
	return nil
}

// writeAllLoop accumulates partial writes to w until all of src is written.
func writeAllLoop(w io.Writer, src []byte) error {
	off := 0
	for off < len(src) {
		n, err := w.Write(src[off:])
		if n == 0 && err == nil {
			return io.ErrShortWrite
		}
		off += n
		if err != nil {
			return err
		}
	}
	return nil
}

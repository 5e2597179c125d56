// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagent

import "errors"

var (
	// ErrInvalidArgument reports an invalid configuration (nil transport,
	// zero-length frame buffer, etc.)
	ErrInvalidArgument = errors.New("tagent: invalid argument")

	// ErrFrameTooLarge reports that a request frame's declared length
	// exceeds FrameMax-4. readFrame does not return it: it writes the NCK
	// response itself and reports the case through its oversize result,
	// on which the dispatcher continues its loop without parsing a body.
	ErrFrameTooLarge = errors.New("tagent: frame too large")

	// errUnknownCommand names the unrecognized-command case. dispatch does
	// not return it: it drops such a frame silently by returning nil, and
	// since the frame has already been drained, framing is preserved.
	errUnknownCommand = errors.New("tagent: unknown command")

	// errUnsupportedArity signals a CALL whose argument count falls
	// outside the trampoline's supported range; the dispatcher drops it
	// silently rather than respond with a malformed call.
	errUnsupportedArity = errors.New("tagent: unsupported call arity")

	// errUnsupportedReturnWidth signals a CALL requesting a return width
	// the trampoline cannot encode; the dispatcher drops it silently.
	errUnsupportedReturnWidth = errors.New("tagent: unsupported call return width")

	// errUnsupportedConnType signals that an accepted connection does not
	// expose a raw file descriptor, so it cannot be driven through the
	// non-blocking read/write path.
	errUnsupportedConnType = errors.New("tagent: connection does not support non-blocking I/O")
)

// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagent

import "time"

// FrameMax is the fixed size of the shared frame buffer. A request's
// declared body length must satisfy length <= FrameMax-4 (4 bytes for the
// cmd/length header); larger declarations are rejected with NCK.
const FrameMax = 1024

// DefaultHeapSize is the scratch region size used when WithHeapSize is not
// given.
const DefaultHeapSize = 4096

// Options configures a Dispatcher. See the With* functions.
type Options struct {
	HeapSize   int
	Thumb      bool
	FrameBuf   []byte
	Scratch    []byte
	RetryDelay time.Duration
}

var defaultOptions = Options{
	HeapSize:   DefaultHeapSize,
	Thumb:      false,
	FrameBuf:   nil,
	Scratch:    nil,
	RetryDelay: -1, // nonblock: surface iox.ErrWouldBlock/ErrMore immediately
}

// Option configures a Dispatcher at construction time.
type Option func(*Options)

// WithHeapSize overrides the exported scratch region's size. Default 4096.
func WithHeapSize(n int) Option {
	return func(o *Options) { o.HeapSize = n }
}

// WithThumb forces bit 0 of every CALL address, as ARM Thumb code requires.
func WithThumb() Option {
	return func(o *Options) { o.Thumb = true }
}

// WithFrameBuffer supplies the shared frame buffer explicitly (for example,
// one placed by the linker in a pinned section) instead of letting New
// allocate one of size FrameMax. Its length must be >= FrameMax.
func WithFrameBuffer(buf []byte) Option {
	return func(o *Options) { o.FrameBuf = buf }
}

// WithScratch supplies the exported scratch region explicitly instead of
// letting New allocate a plain []byte of HeapSize bytes. A host test build
// uses this to back the region with an anonymous mmap (see
// NewMmapScratch), so CALL/READ/WRITE exercise a real mapped page instead
// of relying on Go's slice-growth guarantees for address stability.
func WithScratch(buf []byte) Option {
	return func(o *Options) { o.Scratch = buf }
}

// WithRetryDelay sets the retry/wait policy a Transport may use when it
// returns iox.ErrWouldBlock: negative surfaces the error immediately
// (nonblock), zero yields and retries, positive sleeps for the duration and
// retries. Transports that always block (UART, net.Pipe) ignore this.
func WithRetryDelay(d time.Duration) Option {
	return func(o *Options) { o.RetryDelay = d }
}

// WithBlock enables cooperative blocking (yield-and-retry) on ErrWouldBlock.
func WithBlock() Option {
	return func(o *Options) { o.RetryDelay = 0 }
}

// WithNonblock forces non-blocking behavior (return ErrWouldBlock immediately).
func WithNonblock() Option {
	return func(o *Options) { o.RetryDelay = -1 }
}

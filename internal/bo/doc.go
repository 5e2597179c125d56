// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo exposes the target's native byte order.
//
// The wire codec in package tagent always decodes the big-endian fields the
// protocol specifies; bo.Native tells the codec whether that decode is a
// byte-for-byte copy (host is already big-endian) or needs a reversal (host
// is little-endian), so the same dispatcher binary works unmodified whether
// it is built for a little-endian target (amd64, arm, most microcontrollers)
// or a big-endian one.
//
// Selection is architecture-specific via build tags where the endianness of
// a port is common knowledge, and falls back to a portable runtime probe on
// any other architecture.
package bo

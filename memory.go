// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagent

import "unsafe"

// memoryRead returns a slice aliasing the n bytes starting at addr. There
// is no bounds checking: the driver is trusted absolutely, and a bad
// address faults the process rather than returning an error. The caller
// must finish using the returned slice before the target memory is
// mutated again.
func memoryRead(addr uptr, n uword) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(n))
}

// memoryWrite copies data into [addr, addr+len(data)). Same unsafe
// contract as memoryRead.
func memoryWrite(addr uptr, data []byte) {
	if len(data) == 0 {
		return
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(addr)), len(data))
	copy(dst, data)
}

// newScratch allocates the exported scratch region: byte-addressable,
// process-lifetime, never freed, shared between the driver (via
// READ/WRITE) and callees invoked via CALL. The agent offers no mutual
// exclusion over it; choreographing access is the driver's responsibility.
func newScratch(size int) []byte {
	return make([]byte, size)
}

// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package samplecallees

import "errors"

// ErrMPIMalformed reports an operand or result buffer whose length is not
// a multiple of 4 bytes (one uint32 limb).
var ErrMPIMalformed = errors.New("samplecallees: mpi length not a multiple of 4")

// ErrMPITooSmall reports a result buffer shorter than the larger operand.
var ErrMPITooSmall = errors.New("samplecallees: mpi result buffer too small")

// AddMPI adds two little-endian multi-precision integers limb-by-limb into
// result using a ripple-carry loop over uint32 limbs — a CALL fixture
// standing in for an external math routine a driver might invoke, not
// dispatcher logic itself.
func AddMPI(op1, op2, result []byte) error {
	if len(op1)%4 != 0 || len(op2)%4 != 0 || len(result)%4 != 0 {
		return ErrMPIMalformed
	}
	if len(op1) < len(op2) {
		op1, op2 = op2, op1
	}
	if len(op1) > len(result) {
		return ErrMPITooSmall
	}

	limb := func(b []byte, i int) uint32 {
		off := i * 4
		return uint32(b[off]) | uint32(b[off+1])<<8 | uint32(b[off+2])<<16 | uint32(b[off+3])<<24
	}
	putLimb := func(b []byte, i int, v uint32) {
		off := i * 4
		b[off] = byte(v)
		b[off+1] = byte(v >> 8)
		b[off+2] = byte(v >> 16)
		b[off+3] = byte(v >> 24)
	}

	var carry uint64
	shortLimbs := len(op2) / 4
	longLimbs := len(op1) / 4

	i := 0
	for ; i < shortLimbs; i++ {
		carry = uint64(limb(op1, i)) + uint64(limb(op2, i)) + carry>>32
		putLimb(result, i, uint32(carry))
	}
	for ; i < longLimbs; i++ {
		carry = uint64(limb(op1, i)) + carry>>32
		putLimb(result, i, uint32(carry))
	}
	if carry>>32 != 0 && longLimbs < len(result)/4 {
		putLimb(result, longLimbs, uint32(carry>>32))
	}
	return nil
}

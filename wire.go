// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagent

import (
	"encoding/binary"
	"math/bits"
	"unsafe"

	"tagent/internal/bo"
)

// uword is this build's native machine-word width used for CALL arguments
// and return values. uptr is the pointer width used for addresses. Both
// must equal the host's actual word size — truncating them to a fixed
// 32- or 64-bit integer would silently corrupt arguments and addresses on
// the other width — so both are plain Go words instead.
type uword = uint
type uptr = uintptr

// wordSize is sizeof(uword) in bytes for this build, derived from
// math/bits.UintSize rather than a hand-written #if-ladder: it is still a
// per-GOARCH compile-time constant, but the selection lives in the standard
// library instead of being re-derived here.
const wordSize = bits.UintSize / 8

// decodeU16 decodes a big-endian uint16 wire field. u16 fields are always
// decoded explicitly from their two wire bytes, so no host-order branch is
// ever needed here.
func decodeU16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

// encodeU16 encodes v as a big-endian uint16 wire field.
func encodeU16(dst []byte, v uint16) { binary.BigEndian.PutUint16(dst, v) }

// decodeWord decodes a wordSize-byte big-endian wire field into a uword.
//
// On a big-endian host, the wire bytes already sit in the host's native
// multi-byte layout, so the fast path is a raw reinterpret of the buffer:
// no byte movement needed. On a little-endian host the two layouts
// disagree, so the bytes must be read most-significant-first instead.
func decodeWord(b []byte) uword {
	_ = b[wordSize-1] // bounds check hint, single branch
	if bo.Native() == binary.BigEndian {
		if wordSize == 4 {
			return uword(*(*uint32)(unsafe.Pointer(&b[0])))
		}
		return uword(*(*uint64)(unsafe.Pointer(&b[0])))
	}
	if wordSize == 4 {
		return uword(binary.BigEndian.Uint32(b))
	}
	return uword(binary.BigEndian.Uint64(b))
}

// encodeWord encodes v into dst as a wordSize-byte big-endian wire field.
func encodeWord(dst []byte, v uword) {
	_ = dst[wordSize-1]
	if bo.Native() == binary.BigEndian {
		if wordSize == 4 {
			*(*uint32)(unsafe.Pointer(&dst[0])) = uint32(v)
		} else {
			*(*uint64)(unsafe.Pointer(&dst[0])) = uint64(v)
		}
		return
	}
	if wordSize == 4 {
		binary.BigEndian.PutUint32(dst, uint32(v))
	} else {
		binary.BigEndian.PutUint64(dst, uint64(v))
	}
}

// decodePtr and encodePtr are the pointer-width instances of the same
// codec; uword and uptr share a width on every target this agent supports,
// but are kept distinct to document which wire field is an address and
// which is an argument.
func decodePtr(b []byte) uptr { return uptr(decodeWord(b)) }

func encodePtr(dst []byte, v uptr) { encodeWord(dst, uword(v)) }

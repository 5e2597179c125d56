// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagent

import "testing"

func TestU16RoundTrip(t *testing.T) {
	for _, v := range []uint16{0, 1, 0xff, 0x0100, 0xdead, 0xffff} {
		b := make([]byte, 2)
		encodeU16(b, v)
		if got := decodeU16(b); got != v {
			t.Fatalf("u16 round trip for %#x: got %#x", v, got)
		}
	}
}

func TestU16WireOrderIsBigEndian(t *testing.T) {
	b := make([]byte, 2)
	encodeU16(b, 0x1234)
	if b[0] != 0x12 || b[1] != 0x34 {
		t.Fatalf("u16 wire order: got %x", b)
	}
}

func TestWordRoundTrip(t *testing.T) {
	vals := []uword{0, 1, 0xff, 0x12345678}
	if wordSize == 8 {
		vals = append(vals, 0x0102030405060708)
	}
	for _, v := range vals {
		b := make([]byte, wordSize)
		encodeWord(b, v)
		if got := decodeWord(b); got != v {
			t.Fatalf("word round trip for %#x: got %#x", v, got)
		}
	}
}

func TestWordWireOrderIsBigEndian(t *testing.T) {
	b := make([]byte, wordSize)
	encodeWord(b, 0x0102030405060708&((1<<(wordSize*8))-1))
	if wordSize == 8 {
		want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
		for i := range want {
			if b[i] != want[i] {
				t.Fatalf("word wire order: got %x want %x", b, want)
			}
		}
	} else {
		want := []byte{0x05, 0x06, 0x07, 0x08}
		for i := range want {
			if b[i] != want[i] {
				t.Fatalf("word wire order: got %x want %x", b, want)
			}
		}
	}
}

func TestPtrSharesWordCodec(t *testing.T) {
	b := make([]byte, wordSize)
	var p uptr = 0xdeadbeef
	encodePtr(b, p)
	if decodePtr(b) != p {
		t.Fatalf("ptr round trip failed")
	}
	// encodePtr/decodePtr must agree byte-for-byte with encodeWord/decodeWord
	// for a given value, since addresses and arguments share a wire codec.
	b2 := make([]byte, wordSize)
	encodeWord(b2, uword(p))
	for i := range b {
		if b[i] != b2[i] {
			t.Fatalf("ptr codec diverges from word codec: %x vs %x", b, b2)
		}
	}
}

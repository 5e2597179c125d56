// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package samplecallees

import (
	"bytes"
	"testing"
)

func TestBinToHex(t *testing.T) {
	hexstring := make([]byte, 6)
	if err := BinToHex([]byte{0xde, 0xad, 0xbe}, hexstring); err != nil {
		t.Fatalf("BinToHex: %v", err)
	}
	if string(hexstring) != "deadbe" {
		t.Fatalf("got %q", hexstring)
	}
}

func TestHexToBinRoundTrip(t *testing.T) {
	orig := []byte{0x00, 0xff, 0x7a, 0x01}
	hexstring := make([]byte, 2*len(orig))
	if err := BinToHex(orig, hexstring); err != nil {
		t.Fatalf("BinToHex: %v", err)
	}
	back := make([]byte, len(orig))
	if err := HexToBin(hexstring, back); err != nil {
		t.Fatalf("HexToBin: %v", err)
	}
	if !bytes.Equal(orig, back) {
		t.Fatalf("round trip mismatch: got %x want %x", back, orig)
	}
}

func TestHexToBinAcceptsUppercase(t *testing.T) {
	back := make([]byte, 2)
	if err := HexToBin([]byte("DEAD"), back); err != nil {
		t.Fatalf("HexToBin: %v", err)
	}
	if !bytes.Equal(back, []byte{0xde, 0xad}) {
		t.Fatalf("got %x", back)
	}
}

func TestHexLengthMismatch(t *testing.T) {
	if err := BinToHex([]byte{1, 2}, make([]byte, 3)); err != ErrHexLength {
		t.Fatalf("BinToHex: got %v, want ErrHexLength", err)
	}
	if err := HexToBin([]byte("abcd"), make([]byte, 1)); err != ErrHexLength {
		t.Fatalf("HexToBin: got %v, want ErrHexLength", err)
	}
}

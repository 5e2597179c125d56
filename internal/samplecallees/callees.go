// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package samplecallees provides the functions exercised by tests of the
// CALL trampoline. Nothing in package tagent ever calls into this package
// directly — only tests do, the same way a driver would invoke an
// arbitrary function already resident on the target.
//
// Every exported function here is a plain top-level function, never a
// closure: the trampoline reconstructs a function value from a bare code
// address (package tagent/internal/trampoline), which only has the layout
// callers expect for a non-capturing function. Mutable state a callee needs
// (the scratch region) is therefore reached through the package-level
// Scratch variable rather than a captured parameter, mirroring the
// original C fixtures' use of a global gti2_memory[] array.
package samplecallees

// Scratch is the byte slice Func0 mutates, set by the test harness before
// invoking it through the trampoline — the Go analog of the original test
// fixtures writing through a global gti2_memory[] array.
var Scratch []byte

// Func0 writes two marker bytes into Scratch[0:2] and returns 0. It exists
// to exercise a void-equivalent callee, invoked with a zero-byte return
// width so its result is never observed on the wire.
func Func0() uintptr {
	if len(Scratch) >= 2 {
		Scratch[0] = 0xde
		Scratch[1] = 0xad
	}
	return 0
}

// Double returns 2*x, a single-argument callee with a non-trivial result.
func Double(x uintptr) uintptr { return 2 * x }

// Arity0 through Arity10 each sum their arguments and add one, giving a
// callee of every supported signature uword f(uword×k) so the trampoline's
// full arity range can be exercised. Arity10 with args 1..10 returns 56.
func Arity0() uintptr { return 1 }

func Arity1(a uintptr) uintptr { return a + 1 }

func Arity2(a, b uintptr) uintptr { return a + b + 1 }

func Arity3(a, b, c uintptr) uintptr { return a + b + c + 1 }

func Arity4(a, b, c, d uintptr) uintptr { return a + b + c + d + 1 }

func Arity5(a, b, c, d, e uintptr) uintptr { return a + b + c + d + e + 1 }

func Arity6(a, b, c, d, e, f uintptr) uintptr { return a + b + c + d + e + f + 1 }

func Arity7(a, b, c, d, e, f, g uintptr) uintptr { return a + b + c + d + e + f + g + 1 }

func Arity8(a, b, c, d, e, f, g, h uintptr) uintptr { return a + b + c + d + e + f + g + h + 1 }

func Arity9(a, b, c, d, e, f, g, h, i uintptr) uintptr {
	return a + b + c + d + e + f + g + h + i + 1
}

func Arity10(a, b, c, d, e, f, g, h, i, j uintptr) uintptr {
	return a + b + c + d + e + f + g + h + i + j + 1
}

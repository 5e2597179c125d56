// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagent

import "tagent/internal/trampoline"

// doCall executes a.addr with arity numParamIn and argument words a.argv,
// forcing the Thumb bit first when thumb is set, then encodes the
// returned word's low numBytesOut bytes big-endian into out (which must be
// at least numBytesOut long). It reports errUnsupportedArity /
// errUnsupportedReturnWidth for an arity or return width the trampoline
// cannot satisfy, without ever invoking anything.
func doCall(a callArgs, thumb bool, out []byte) (int, error) {
	maxReturnWidth := wordSize // a 32-bit target cannot return more bytes than one word holds
	switch a.numBytesOut {
	case 0, 2, 4:
	case 8:
		if maxReturnWidth < 8 {
			return 0, errUnsupportedReturnWidth
		}
	default:
		return 0, errUnsupportedReturnWidth
	}
	if int(a.numParamIn) > maxCallParams {
		return 0, errUnsupportedArity
	}

	addr := a.addr
	if thumb {
		addr |= 1
	}

	var argv [trampoline.MaxArity]trampoline.Word
	for i := 0; i < int(a.numParamIn); i++ {
		argv[i] = trampoline.Word(a.argv[i])
	}

	ret, err := trampoline.Call(trampoline.Word(addr), argv, int(a.numParamIn))
	if err != nil {
		return 0, errUnsupportedArity
	}

	var word [8]byte // wide enough for either word size; only [:wordSize] is meaningful
	encodeWord(word[:wordSize], uword(ret))

	n := int(a.numBytesOut)
	// encodeWord writes a big-endian wordSize-byte word, so its low n bytes
	// are the LAST n bytes of word[:wordSize].
	copy(out[:n], word[wordSize-n:wordSize])
	return n, nil
}

// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagent

// ackToken and nckToken are the only two response tokens this protocol
// speaks: every response begins with one or the other.
var (
	ackToken = [3]byte{'A', 'C', 'K'}
	nckToken = [3]byte{'N', 'C', 'K'}
)

// frameHeaderLen is the fixed 4-byte cmd|length header every request and
// (implicitly) its framing bookkeeping uses.
const frameHeaderLen = 4

// readFrame pulls one well-formed request frame from t into buf, which must
// be at least FrameMax bytes. It returns the command id and the body slice
// (aliasing buf), or oversize=true if the declared length exceeded the
// buffer's capacity — in which case an NCK has already been written to t
// and the body was never drained from the transport: an oversize length
// already means the peer disagrees with this agent about where the frame
// ends, so the stream is desynchronized regardless of whether this code
// tries to drain exactly that many bytes, and it does not try.
func readFrame(t Transport, buf []byte) (cmd uint16, body []byte, oversize bool, err error) {
	if err = t.ReadExact(buf[:frameHeaderLen]); err != nil {
		return 0, nil, false, err
	}
	cmd = decodeU16(buf[0:2])
	length := decodeU16(buf[2:4])

	if int(length) > len(buf)-frameHeaderLen {
		if err = t.WriteAll(nckToken[:]); err != nil {
			return 0, nil, false, err
		}
		return 0, nil, true, nil
	}

	body = buf[frameHeaderLen : frameHeaderLen+int(length)]
	if err = t.ReadExact(body); err != nil {
		return 0, nil, false, err
	}
	return cmd, body, false, nil
}

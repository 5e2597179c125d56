// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagent

import "github.com/tarm/serial"

// uartTransport wraps a serial port. A UART is never guaranteed to satisfy
// a read or write in one syscall, so ReadExact/WriteAll loop exactly as
// readExactLoop/writeAllLoop do for any other io.ReadWriter.
type uartTransport struct {
	port *serial.Port
}

// NewUARTTransport opens dev at baud and returns a Transport backed by it.
// This is the on-device transport: the microcontroller build wires its
// UART driver in through serial.Port (or an equivalent io.ReadWriteCloser)
// exactly this way.
func NewUARTTransport(dev string, baud int) (Transport, error) {
	port, err := serial.OpenPort(&serial.Config{Name: dev, Baud: baud})
	if err != nil {
		return nil, err
	}
	return &uartTransport{port: port}, nil
}

func (u *uartTransport) ReadExact(dst []byte) error { return readExactLoop(u.port, dst) }

func (u *uartTransport) WriteAll(src []byte) error { return writeAllLoop(u.port, src) }

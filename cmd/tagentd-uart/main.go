//go:build uart

// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command tagentd-uart is the device-shaped entrypoint: it wires the
// dispatcher to a real serial port instead of a TCP loopback, the way
// test/psoc/main.c wires the original onto a PSoC's UART. It is built only
// with -tags uart, since a development host normally has no such port.
//
// On an actual microcontroller build (e.g. under TinyGo), the scratch
// region returned by (*tagent.Dispatcher).Memory would additionally need
// to be placed in a linker-pinned section (the original's
// __attribute__((section(".gti2.data")))) so a linker script can locate
// it; plain cmd/go has no portable pragma for this, so that placement is
// left to the TinyGo/linker-script layer building this binary, not to this
// source file.
package main

import (
	"context"
	"flag"
	"log"

	"tagent"
)

func main() {
	dev := flag.String("dev", "/dev/ttyUSB0", "serial device path")
	baud := flag.Int("baud", 115200, "serial baud rate")
	thumb := flag.Bool("thumb", false, "force bit 0 of CALL addresses (ARM Thumb)")
	flag.Parse()

	var opts []tagent.Option
	if *thumb {
		opts = append(opts, tagent.WithThumb())
	}

	t, err := tagent.NewUARTTransport(*dev, *baud)
	if err != nil {
		log.Fatalf("tagentd-uart: open %s: %v", *dev, err)
	}

	d := tagent.New(t, opts...)
	if err := d.Run(context.Background()); err != nil {
		log.Fatalf("tagentd-uart: %v", err)
	}
}

// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command tagentd is the host-build entrypoint: a TCP loopback server that
// runs the dispatcher exactly as the original's test/host/main.c does over
// a plain socket, for driving the agent from a development workstation
// instead of a real microcontroller's UART.
package main

import (
	"context"
	"flag"
	"log"

	"tagent"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:9999", "TCP address to listen on")
	heapSize := flag.Int("heap-size", tagent.DefaultHeapSize, "scratch region size in bytes")
	thumb := flag.Bool("thumb", false, "force bit 0 of CALL addresses (ARM Thumb)")
	flag.Parse()

	scratch, err := tagent.NewMmapScratch(*heapSize)
	if err != nil {
		log.Fatalf("tagentd: mmap scratch: %v", err)
	}

	opts := []tagent.Option{tagent.WithScratch(scratch), tagent.WithBlock()}
	if *thumb {
		opts = append(opts, tagent.WithThumb())
	}

	t, err := tagent.NewTCPTransport(*addr, opts...)
	if err != nil {
		log.Fatalf("tagentd: listen %s: %v", *addr, err)
	}
	log.Printf("tagentd: listening on %s", *addr)

	d := tagent.New(t, opts...)
	if err := d.Run(context.Background()); err != nil {
		log.Fatalf("tagentd: %v", err)
	}
}

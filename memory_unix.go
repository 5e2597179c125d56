//go:build unix

// Copyright 2026 The tagent Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagent

import "golang.org/x/sys/unix"

// NewMmapScratch allocates an anonymous, read-write mapping of size bytes
// to back the exported scratch region (see WithScratch). Unlike a plain
// make([]byte, size), a real page of address space gives CALL's pointer
// arithmetic the same guarantees a microcontroller's linker-pinned
// .agent.data section gives the embedded build: a stable backing address
// for the lifetime of the process.
func NewMmapScratch(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

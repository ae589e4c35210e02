// Package execmem implements the Executable Memory Facade (spec §4.7): a
// thin mmap/mprotect/munmap wrapper promoting the hand-written
// allocate-write-protect sequence from the teacher's package doc
// (wdamron/x64's doc.go CompileSumFunc example) into a reusable component,
// since spec.md asks for it as a first-class part of the system rather
// than a worked example.
package execmem

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Region is a block of mmap'd memory that can be filled with machine code
// while writable and then flipped to executable with MakeExecutable.
type Region struct {
	mem      []byte
	executed bool
}

// Acquire maps a read-write, anonymous, private region of at least size
// bytes (rounded up to a whole page).
func Acquire(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("execmem: size must be positive, got %d", size)
	}
	page := os.Getpagesize()
	size = ((size + page - 1) / page) * page
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("execmem: mmap failed: %w", err)
	}
	return &Region{mem: mem}, nil
}

// Bytes exposes the region's backing slice for writing machine code into
// before it is made executable. Writing after MakeExecutable is undefined.
func (r *Region) Bytes() []byte { return r.mem }

// MakeExecutable flips the region from read-write to read-execute. No
// further writes to Bytes() are legal afterward.
func (r *Region) MakeExecutable() error {
	if err := unix.Mprotect(r.mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return fmt.Errorf("execmem: mprotect failed: %w", err)
	}
	r.executed = true
	return nil
}

// Release unmaps the region. It is safe to call on a region in either the
// writable or executable state.
func (r *Region) Release() error {
	if err := unix.Munmap(r.mem); err != nil {
		return fmt.Errorf("execmem: munmap failed: %w", err)
	}
	r.mem = nil
	return nil
}

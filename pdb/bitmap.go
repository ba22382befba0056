package pdb

import (
	"github.com/grailbio/base/errors"
	"golang.org/x/sys/unix"
)

// bitmap is a packed bit vector. The visited set of a full 6-tile
// construction holds 25^7 bits (~728MiB), so the backing store is an
// anonymous mmap with MADV_HUGEPAGE rather than a Go-allocated slice, to
// keep it off the GC heap and reduce TLB misses.
type bitmap struct {
	data []byte
	n    uint64
}

func newBitmap(n uint64) (*bitmap, error) {
	data, err := unix.Mmap(-1, 0, int((n+7)/8),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.E(err, "mmap visited bitmap")
	}
	// Best effort: transparent hugepages may be disabled on the host.
	_ = unix.Madvise(data, unix.MADV_HUGEPAGE)
	return &bitmap{data: data, n: n}, nil
}

// testAndSet sets bit i and reports whether it was already set.
func (v *bitmap) testAndSet(i uint64) bool {
	b := &v.data[i>>3]
	mask := byte(1) << (i & 7)
	old := *b&mask != 0
	*b |= mask
	return old
}

func (v *bitmap) get(i uint64) bool {
	return v.data[i>>3]&(byte(1)<<(i&7)) != 0
}

func (v *bitmap) close() error {
	if v.data == nil {
		return nil
	}
	data := v.data
	v.data = nil
	if err := unix.Munmap(data); err != nil {
		return errors.E(err, "munmap visited bitmap")
	}
	return nil
}

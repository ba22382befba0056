package pdb

import (
	"os"
	"path/filepath"

	"github.com/grailbio/base/errors"
	"v.io/x/lib/vlog"
)

// DefaultBlockSize is the number of nodes per buffered frontier block.
// 512 nodes is one 4KiB block on disk.
const DefaultBlockSize = 512

// queueFile is one of the two disk-backed frontier queues. It owns the
// file descriptor, the read offset, and an in-memory block of nodes.
//
// While a queue is being consumed, same-layer pushes may overflow the
// block; overflow is appended to the end of the file without disturbing
// the read offset, so the queue is FIFO per file and LIFO within the
// block. Neither matters for correctness: only the partition into layers
// does.
type queueFile struct {
	path      string
	f         *os.File
	off       int64 // next read offset
	size      int64 // bytes written so far
	buf       []node
	blockSize int
	scratch   []byte
}

func newQueueFile(dir, name string, blockSize int) (*queueFile, error) {
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, errors.E(err, "open frontier queue", path)
	}
	return &queueFile{
		path:      path,
		f:         f,
		buf:       make([]node, 0, blockSize),
		blockSize: blockSize,
		scratch:   make([]byte, blockSize*nodeBytes),
	}, nil
}

// push buffers a node, spilling the full block to the end of the file
// first if necessary.
func (q *queueFile) push(n node) error {
	if len(q.buf) == q.blockSize {
		if err := q.spill(); err != nil {
			return err
		}
	}
	q.buf = append(q.buf, n)
	return nil
}

// pop removes one node from the in-memory block. It does not refill;
// the builder drives refills so it can detect layer boundaries.
func (q *queueFile) pop() (node, bool) {
	if len(q.buf) == 0 {
		return node{}, false
	}
	n := q.buf[len(q.buf)-1]
	q.buf = q.buf[:len(q.buf)-1]
	return n, true
}

// spill appends the buffered nodes to the end of the file. The read
// offset is untouched, so spilled same-layer nodes are consumed by later
// fills of the same queue.
func (q *queueFile) spill() error {
	if len(q.buf) == 0 {
		return nil
	}
	for i, n := range q.buf {
		n.marshal(q.scratch[i*nodeBytes:])
	}
	sz := len(q.buf) * nodeBytes
	if _, err := q.f.WriteAt(q.scratch[:sz], q.size); err != nil {
		return errors.E(err, "spill frontier block", q.path)
	}
	vlog.VI(1).Infof("%s: spilled %d nodes at offset %d", q.path, len(q.buf), q.size)
	q.size += int64(sz)
	q.buf = q.buf[:0]
	return nil
}

// fill reads up to one block of nodes at the read offset. It reports
// false when the queue file is exhausted.
//
// REQUIRES: the in-memory block is empty.
func (q *queueFile) fill() (bool, error) {
	remaining := q.size - q.off
	if remaining == 0 {
		return false, nil
	}
	sz := int64(q.blockSize * nodeBytes)
	if sz > remaining {
		sz = remaining
	}
	if _, err := q.f.ReadAt(q.scratch[:sz], q.off); err != nil {
		return false, errors.E(err, "fill frontier block", q.path)
	}
	q.off += sz
	for b := int64(0); b < sz; b += nodeBytes {
		q.buf = append(q.buf, unmarshalNode(q.scratch[b:]))
	}
	vlog.VI(1).Infof("%s: filled %d nodes, offset now %d of %d", q.path, len(q.buf), q.off, q.size)
	return true, nil
}

// reset truncates the file and forgets any buffered nodes, readying the
// queue to receive the layer after next.
func (q *queueFile) reset() error {
	if err := q.f.Truncate(0); err != nil {
		return errors.E(err, "truncate frontier queue", q.path)
	}
	q.off = 0
	q.size = 0
	q.buf = q.buf[:0]
	return nil
}

// close releases the descriptor and removes the file.
func (q *queueFile) close() error {
	if q.f == nil {
		return nil
	}
	f := q.f
	q.f = nil
	e := errors.Once{}
	e.Set(f.Close())
	e.Set(os.Remove(q.path))
	return e.Err()
}

package pdb

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/dpdb/board"
)

// BuilderOpts controls a database construction.
type BuilderOpts struct {
	// Dir is the directory for the two frontier queue files q1 and q2.
	// "" means the working directory. The files are truncated on open and
	// removed by Close.
	Dir string

	// BlockSize is the number of nodes per buffered frontier block. If
	// <=0, DefaultBlockSize is used.
	BlockSize int

	// BoardSize and BoardWidth override the 5x5 board. Only toy
	// constructions use this; the zero values mean the 24-puzzle board.
	BoardSize, BoardWidth int
}

// Builder computes one disjoint pattern database by retrograde
// breadth-first search from the goal placement. Transitions cost 1 when
// the blank displaces a pattern tile and 0 otherwise, so a two-queue 0-1
// BFS suffices: same-layer successors go back to the current queue,
// next-layer successors to the other one. The frontier of a full 6-tile
// construction far exceeds memory and is spilled to the queue files.
//
// Example:
//   b, err := NewBuilder([]int{1, 2, 5, 6, 7, 12})
//   err = b.Run()
//   _, err = b.WriteTable(ctx, "pat24.1256712.tab")
//   err = b.Close()
type Builder struct {
	tiles      []int
	npat       int
	boardSize  int
	boardWidth int
	moveTable  [][]int

	table   []byte
	visited *bitmap
	q       [2]*queueFile

	depth     int   // current BFS layer
	nextCount int64 // nodes pushed to the next layer so far
}

// NewBuilder validates the pattern tiles and allocates the table, the
// visited bitmap, and the queue files.
func NewBuilder(tiles []int, optList ...BuilderOpts) (*Builder, error) {
	opts := BuilderOpts{}
	if len(optList) > 1 {
		log.Panicf("more than one BuilderOpts: %v", optList)
	}
	if len(optList) > 0 {
		opts = optList[0]
	}
	if opts.BlockSize <= 0 {
		opts.BlockSize = DefaultBlockSize
	}
	if opts.BoardSize <= 0 {
		opts.BoardSize = board.Size
		opts.BoardWidth = board.Width
	}
	if len(tiles) < 1 || len(tiles) > board.PatternSize {
		return nil, errors.E(fmt.Sprintf("pattern has %d tiles, want 1..%d", len(tiles), board.PatternSize))
	}
	seen := make(map[int]bool)
	for _, t := range tiles {
		if t < 1 || t >= opts.BoardSize {
			return nil, errors.E(fmt.Sprintf("pattern tile %d out of range 1..%d", t, opts.BoardSize-1))
		}
		if seen[t] {
			return nil, errors.E(fmt.Sprintf("pattern tile %d duplicated", t))
		}
		seen[t] = true
	}

	b := &Builder{
		tiles:      append([]int(nil), tiles...),
		npat:       len(tiles),
		boardSize:  opts.BoardSize,
		boardWidth: opts.BoardWidth,
		moveTable:  board.Adjacency(opts.BoardSize, opts.BoardWidth),
	}
	tableSize := 1
	for i := 0; i < b.npat; i++ {
		tableSize *= b.boardSize
	}
	visitedSize := uint64(tableSize) * uint64(b.boardSize)
	b.table = make([]byte, tableSize)
	for i := range b.table {
		b.table[i] = Unreached
	}
	var err error
	if b.visited, err = newBitmap(visitedSize); err != nil {
		return nil, err
	}
	for i, name := range []string{"q1", "q2"} {
		if b.q[i], err = newQueueFile(opts.Dir, name, opts.BlockSize); err != nil {
			_ = b.Close()
			return nil, err
		}
	}
	return b, nil
}

// Table returns the database computed by Run. Entries still holding
// Unreached correspond to placements no pattern-move sequence reaches.
func (b *Builder) Table() []byte { return b.table }

// Run performs the retrograde search. The table holds, at every moment,
// the minimum depth observed for each reached placement; once a layer
// has been exhausted, all entries at that depth are final.
func (b *Builder) Run() error {
	root := node{}
	for i, t := range b.tiles {
		root.pos[i] = uint8(t) // goal placement: each tile on its own square
	}
	root.pos[b.npat] = 0 // the goal state's blank square
	b.visited.testAndSet(root.visitedIndex(b.npat, b.boardSize))
	b.table[root.dpdbIndex(b.npat, b.boardSize)] = 0
	if err := b.q[0].push(root); err != nil {
		return err
	}

	for {
		n, ok, err := b.pop()
		if err != nil {
			return err
		}
		if !ok {
			log.Printf("pattern %v: search complete at depth %d", b.tiles, b.depth)
			return nil
		}
		blank := n.pos[b.npat]
		for _, nb := range b.moveTable[blank] {
			child := n
			child.pos[b.npat] = uint8(nb)
			for i := 0; i < b.npat; i++ {
				// A pattern tile on the target square swaps with the
				// blank; only then does the move cost a pattern move.
				if child.pos[i] == uint8(nb) {
					child.pos[i] = blank
					child.depth++
					break
				}
			}
			if b.visited.testAndSet(child.visitedIndex(b.npat, b.boardSize)) {
				continue
			}
			di := child.dpdbIndex(b.npat, b.boardSize)
			if child.depth < b.table[di] {
				b.table[di] = child.depth
			}
			if err := b.push(child); err != nil {
				return err
			}
		}
	}
}

// pop retrieves the next node of the current layer, refilling from disk
// and swapping queues at layer boundaries. ok is false once both queues
// are empty.
func (b *Builder) pop() (node, bool, error) {
	cur := b.q[b.depth%2]
	for len(cur.buf) == 0 {
		ok, err := cur.fill()
		if err != nil {
			return node{}, false, err
		}
		if ok {
			break
		}
		if b.nextCount == 0 {
			return node{}, false, nil
		}
		if err := b.switchQueues(); err != nil {
			return node{}, false, err
		}
		cur = b.q[b.depth%2]
	}
	n, _ := cur.pop()
	return n, true, nil
}

// push routes a successor to the current or the next queue by depth.
func (b *Builder) push(n node) error {
	if int(n.depth) == b.depth {
		return b.q[b.depth%2].push(n)
	}
	b.nextCount++
	return b.q[1-b.depth%2].push(n)
}

// switchQueues ends the current layer: the next queue's residual block
// is flushed, the drained current queue is truncated for reuse, and the
// roles alternate.
func (b *Builder) switchQueues() error {
	log.Debug.Printf("pattern %v: finished depth %d, %d nodes in next layer", b.tiles, b.depth, b.nextCount)
	next := b.q[1-b.depth%2]
	if err := next.spill(); err != nil {
		return err
	}
	if err := b.q[b.depth%2].reset(); err != nil {
		return err
	}
	b.depth++
	b.nextCount = 0
	if b.depth > board.MaxMoves {
		return errors.E(fmt.Sprintf("pattern %v: depth exceeded the %d-layer diameter bound", b.tiles, board.MaxMoves))
	}
	return nil
}

// Close releases the visited bitmap and the queue files. It is safe to
// call after a failed construction.
func (b *Builder) Close() error {
	e := errors.Once{}
	if b.visited != nil {
		e.Set(b.visited.close())
		b.visited = nil
	}
	for i, q := range b.q {
		if q != nil {
			e.Set(q.close())
			b.q[i] = nil
		}
	}
	return e.Err()
}

package board

import (
	"fmt"
	"io"

	gerrors "github.com/grailbio/base/errors"
	"github.com/pkg/errors"
)

// State maps each square to the tile occupying it.
type State [Size]int

// Goal is the solved state: tile i on square i, blank on square 0.
var Goal = func() State {
	var s State
	for i := range s {
		s[i] = i
	}
	return s
}()

// Parse reads 25 whitespace-separated integers and validates them as a
// puzzle state.
func Parse(r io.Reader) (State, error) {
	var s State
	for i := range s {
		if _, err := fmt.Fscan(r, &s[i]); err != nil {
			return s, errors.Wrapf(err, "reading square %d of puzzle state", i)
		}
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks that the state is a permutation of 0..24.
func (s State) Validate() error {
	var seen [Size]bool
	for sq, tile := range s {
		if tile < 0 || tile >= Size {
			return gerrors.E(fmt.Sprintf("square %d holds tile %d, outside 0..%d", sq, tile, Size-1))
		}
		if seen[tile] {
			return gerrors.E(fmt.Sprintf("tile %d appears more than once", tile))
		}
		seen[tile] = true
	}
	return nil
}

// Blank returns the square occupied by the blank.
//
// REQUIRES: s is valid.
func (s State) Blank() int {
	for sq, tile := range s {
		if tile == 0 {
			return sq
		}
	}
	panic("board: state has no blank")
}

// Inverse returns the tile -> square map of the state.
func (s State) Inverse() (inv [Size]int) {
	for sq, tile := range s {
		inv[tile] = sq
	}
	return
}

// Apply plays a sequence of tile moves. Each entry names the tile slid
// into the blank square; the named tile must be adjacent to the blank.
func (s State) Apply(tiles []int) (State, error) {
	inv := s.Inverse()
	blank := inv[0]
	for i, tile := range tiles {
		if tile <= 0 || tile >= Size {
			return s, gerrors.E(fmt.Sprintf("move %d: %d is not a tile", i, tile))
		}
		sq := inv[tile]
		legal := false
		for _, n := range Neighbors[blank] {
			if n == sq {
				legal = true
				break
			}
		}
		if !legal {
			return s, gerrors.E(fmt.Sprintf("move %d: tile %d on square %d is not adjacent to blank on square %d", i, tile, sq, blank))
		}
		s[blank], s[sq] = tile, 0
		inv[tile], inv[0] = blank, sq
		blank = sq
	}
	return s, nil
}

// Package solver runs iterative-deepening A* over full 24-puzzle
// instances, using two 6-tile pattern databases to serve four disjoint
// pattern heuristics and their reflections. The heuristic is admissible
// but inconsistent, so the search keeps no closed set; each iteration is
// a plain depth-first sweep under an f = g + h threshold.
package solver

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/dpdb/board"
	"github.com/grailbio/dpdb/pdb"
)

// Solver holds the two loaded pattern databases. It is stateless across
// Solve calls.
type Solver struct {
	h0, h1 []byte
}

// New validates the table sizes and returns a Solver.
func New(h0, h1 []byte) (*Solver, error) {
	if len(h0) != pdb.TableSize || len(h1) != pdb.TableSize {
		return nil, errors.E(fmt.Sprintf("database sizes %d, %d; want %d", len(h0), len(h1), pdb.TableSize))
	}
	return &Solver{h0: h0, h1: h1}, nil
}

// IterationFunc receives each completed iteration's threshold and the
// number of states generated during it, the final iteration included.
type IterationFunc func(threshold int, generated int64)

// Solution is the outcome of one solved instance.
type Solution struct {
	// Moves lists the tiles moved, in order. Empty for a solved input.
	Moves []int
	// Threshold is the succeeding threshold, which equals len(Moves).
	Threshold int
	// Generated counts states generated across all iterations.
	Generated int64
}

// searcher is one instance's mutable search context: the state and its
// inverse (kept mutually consistent on entry and exit of every recursive
// call), the solution path, and the per-iteration counter.
type searcher struct {
	h0, h1    []byte
	s, inv    [board.Size]int
	path      [board.MaxMoves]int
	thresh    int
	generated int64
}

// Heuristic evaluates a state's initial heuristic: the larger of the
// regular and reflected pattern sums. Admissible, but not consistent.
func (sv *Solver) Heuristic(state board.State) int {
	se := &searcher{h0: sv.h0, h1: sv.h1, s: state, inv: state.Inverse()}
	regular, _ := se.regularSum()
	reflected, _ := se.reflectedSum()
	if reflected > regular {
		return reflected
	}
	return regular
}

// Solve runs iterations of increasing threshold until the instance is
// solved. The initial threshold is the larger of the regular and
// reflected heuristic sums; every move flips the board's checkerboard
// parity, so thresholds advance by two.
func (sv *Solver) Solve(state board.State, onIter IterationFunc) (Solution, error) {
	if err := state.Validate(); err != nil {
		return Solution{}, err
	}
	se := &searcher{h0: sv.h0, h1: sv.h1, s: state, inv: state.Inverse()}
	regular, add := se.regularSum()
	reflected, addr := se.reflectedSum()
	if regular == 0 {
		// All pattern tiles home means all tiles home.
		return Solution{Moves: []int{}}, nil
	}
	se.thresh = regular
	if reflected > regular {
		se.thresh = reflected
	}

	sol := Solution{}
	blank := se.inv[0]
	for {
		se.generated = 0
		found := se.search(blank, -1, 0,
			add[0], add[1], add[2], add[3],
			addr[0], addr[1], addr[2], addr[3])
		sol.Generated += se.generated
		if onIter != nil {
			onIter(se.thresh, se.generated)
		}
		if found {
			sol.Threshold = se.thresh
			sol.Moves = append([]int(nil), se.path[:se.thresh]...)
			return sol, nil
		}
		if se.thresh+2 > board.MaxMoves {
			return sol, errors.E(fmt.Sprintf("no solution within %d moves; is the instance solvable?", board.MaxMoves))
		}
		se.thresh += 2
	}
}

// search is one depth-first iteration under se.thresh. The eight current
// heuristic contributions ride along as parameters; a move changes
// exactly one regular and one reflected contribution, and the regular
// sum is checked before the reflected table is even touched. Success
// records the moved tile in path[g] on the unwind.
func (se *searcher) search(blank, oldblank, g int, add0, add1, add2, add3, addr0, addr1, addr2, addr3 int) bool {
	for _, newblank := range board.Neighbors[blank] {
		if newblank == oldblank { // don't undo the previous move
			continue
		}
		tile := se.s[newblank]
		se.s[blank] = tile
		se.s[newblank] = 0
		se.inv[tile] = blank
		se.inv[0] = newblank
		se.generated++

		switch board.WhichPat[tile] {
		case 0:
			nadd0 := se.hash0()
			nadd := nadd0 + add1 + add2 + add3
			if nadd+g < se.thresh {
				if board.WhichRefPat[tile] == 0 {
					naddr0 := se.hashref0()
					if naddr0+addr1+addr2+addr3+g < se.thresh {
						if nadd == 0 || se.search(newblank, blank, g+1, nadd0, add1, add2, add3, naddr0, addr1, addr2, addr3) {
							se.path[g] = tile
							return true
						}
					}
				} else { // reflected pattern 2
					naddr2 := se.hashref2()
					if addr0+addr1+naddr2+addr3+g < se.thresh {
						if nadd == 0 || se.search(newblank, blank, g+1, nadd0, add1, add2, add3, addr0, addr1, naddr2, addr3) {
							se.path[g] = tile
							return true
						}
					}
				}
			}
		case 1:
			nadd1 := se.hash1()
			nadd := add0 + nadd1 + add2 + add3
			if nadd+g < se.thresh {
				if board.WhichRefPat[tile] == 2 {
					naddr2 := se.hashref2()
					if addr0+addr1+naddr2+addr3+g < se.thresh {
						if nadd == 0 || se.search(newblank, blank, g+1, add0, nadd1, add2, add3, addr0, addr1, naddr2, addr3) {
							se.path[g] = tile
							return true
						}
					}
				} else { // reflected pattern 3
					naddr3 := se.hashref3()
					if addr0+addr1+addr2+naddr3+g < se.thresh {
						if nadd == 0 || se.search(newblank, blank, g+1, add0, nadd1, add2, add3, addr0, addr1, addr2, naddr3) {
							se.path[g] = tile
							return true
						}
					}
				}
			}
		case 2:
			nadd2 := se.hash2()
			nadd := add0 + add1 + nadd2 + add3
			if nadd+g < se.thresh {
				if board.WhichRefPat[tile] == 0 {
					naddr0 := se.hashref0()
					if naddr0+addr1+addr2+addr3+g < se.thresh {
						if nadd == 0 || se.search(newblank, blank, g+1, add0, add1, nadd2, add3, naddr0, addr1, addr2, addr3) {
							se.path[g] = tile
							return true
						}
					}
				} else { // reflected pattern 1
					naddr1 := se.hashref1()
					if addr0+naddr1+addr2+addr3+g < se.thresh {
						if nadd == 0 || se.search(newblank, blank, g+1, add0, add1, nadd2, add3, addr0, naddr1, addr2, addr3) {
							se.path[g] = tile
							return true
						}
					}
				}
			}
		case 3:
			nadd3 := se.hash3()
			nadd := add0 + add1 + add2 + nadd3
			if nadd+g < se.thresh {
				if board.WhichRefPat[tile] == 1 {
					naddr1 := se.hashref1()
					if addr0+naddr1+addr2+addr3+g < se.thresh {
						if nadd == 0 || se.search(newblank, blank, g+1, add0, add1, add2, nadd3, addr0, naddr1, addr2, addr3) {
							se.path[g] = tile
							return true
						}
					}
				} else { // reflected pattern 3
					naddr3 := se.hashref3()
					if addr0+addr1+addr2+naddr3+g < se.thresh {
						if nadd == 0 || se.search(newblank, blank, g+1, add0, add1, add2, nadd3, addr0, addr1, addr2, naddr3) {
							se.path[g] = tile
							return true
						}
					}
				}
			}
		}

		se.s[newblank] = tile
		se.s[blank] = 0
		se.inv[tile] = newblank
		se.inv[0] = blank
	}
	return false
}

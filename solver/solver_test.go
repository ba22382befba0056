package solver

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/grailbio/dpdb/board"
	"github.com/grailbio/dpdb/pdb"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

var (
	tablesOnce     sync.Once
	testH0, testH1 []byte
)

// manhattanTable fills a database with the sum of the pattern tiles'
// manhattan distances from home. That is a weaker admissible stand-in
// for the real tables with the same zero set, so goal detection and
// optimality are unchanged; only node counts differ.
func manhattanTable(tiles []int) []byte {
	var md [board.PatternSize][board.Size]int
	for i, tile := range tiles {
		for sq := 0; sq < board.Size; sq++ {
			dx := tile%board.Width - sq%board.Width
			if dx < 0 {
				dx = -dx
			}
			dy := tile/board.Width - sq/board.Width
			if dy < 0 {
				dy = -dy
			}
			md[i][sq] = dx + dy
		}
	}
	table := make([]byte, pdb.TableSize)
	for p0 := 0; p0 < 25; p0++ {
		d0 := md[0][p0]
		for p1 := 0; p1 < 25; p1++ {
			d1, i1 := d0+md[1][p1], p0*25+p1
			for p2 := 0; p2 < 25; p2++ {
				d2, i2 := d1+md[2][p2], i1*25+p2
				for p3 := 0; p3 < 25; p3++ {
					d3, i3 := d2+md[3][p3], i2*25+p3
					for p4 := 0; p4 < 25; p4++ {
						d4, i4 := d3+md[4][p4], i3*25+p4
						for p5 := 0; p5 < 25; p5++ {
							table[i4*25+p5] = byte(d4 + md[5][p5])
						}
					}
				}
			}
		}
	}
	return table
}

func testSolver(t *testing.T) *Solver {
	if testing.Short() {
		t.Skip("builds two 25^6-entry tables")
	}
	tablesOnce.Do(func() {
		testH0 = manhattanTable(board.Patterns[0][:])
		testH1 = manhattanTable(board.Patterns[1][:])
	})
	sv, err := New(testH0, testH1)
	require.NoError(t, err)
	return sv
}

func TestNewRejectsBadTables(t *testing.T) {
	_, err := New(make([]byte, 10), make([]byte, pdb.TableSize))
	require.Error(t, err)
}

func TestSolveTrivial(t *testing.T) {
	sv := testSolver(t)
	iterations := 0
	sol, err := sv.Solve(board.Goal, func(int, int64) { iterations++ })
	require.NoError(t, err)
	expect.EQ(t, len(sol.Moves), 0)
	expect.EQ(t, sol.Threshold, 0)
	expect.EQ(t, sol.Generated, int64(0))
	expect.EQ(t, iterations, 0)
}

func TestSolveOneMove(t *testing.T) {
	sv := testSolver(t)
	state := board.Goal
	state[0], state[1] = 1, 0
	expect.EQ(t, sv.Heuristic(state), 1)

	var thresholds []int
	sol, err := sv.Solve(state, func(thresh int, generated int64) {
		thresholds = append(thresholds, thresh)
	})
	require.NoError(t, err)
	expect.EQ(t, sol.Moves, []int{1})
	expect.EQ(t, sol.Threshold, 1)
	expect.EQ(t, thresholds, []int{1})
	replayed, err := state.Apply(sol.Moves)
	require.NoError(t, err)
	expect.EQ(t, replayed, board.Goal)
}

// scramble walks k random non-reversing moves away from the goal.
func scramble(rng *rand.Rand, k int) board.State {
	s := board.Goal
	blank, old := 0, -1
	for moves := 0; moves < k; {
		nbs := board.Neighbors[blank]
		nb := nbs[rng.Intn(len(nbs))]
		if nb == old {
			continue
		}
		s[blank], s[nb] = s[nb], 0
		old, blank = blank, nb
		moves++
	}
	return s
}

func TestSolveScrambles(t *testing.T) {
	sv := testSolver(t)
	rng := rand.New(rand.NewSource(1))
	for _, k := range []int{2, 4, 6, 8, 10, 12, 14} {
		for trial := 0; trial < 3; trial++ {
			state := scramble(rng, k)
			if state == board.Goal {
				continue
			}
			h := sv.Heuristic(state)
			var thresholds []int
			sol, err := sv.Solve(state, func(thresh int, generated int64) {
				thresholds = append(thresholds, thresh)
			})
			require.NoError(t, err)

			// The solution is optimal, so it cannot beat parity or
			// exceed the scramble.
			expect.True(t, len(sol.Moves) <= k, "k=%d len=%d", k, len(sol.Moves))
			expect.EQ(t, (k-len(sol.Moves))%2, 0)
			expect.EQ(t, sol.Threshold, len(sol.Moves))
			expect.True(t, h <= len(sol.Moves), "inadmissible: h=%d len=%d", h, len(sol.Moves))

			replayed, err := state.Apply(sol.Moves)
			require.NoError(t, err)
			expect.EQ(t, replayed, board.Goal)

			// Thresholds start at the heuristic and step by two.
			require.True(t, len(thresholds) > 0)
			expect.EQ(t, thresholds[0], h)
			for i := 1; i < len(thresholds); i++ {
				expect.EQ(t, thresholds[i], thresholds[i-1]+2)
			}
		}
	}
}

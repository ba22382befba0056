package solver

import (
	"math/rand"
	"testing"

	"github.com/grailbio/dpdb/board"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(sv *Solver, state board.State) *searcher {
	return &searcher{h0: sv.h0, h1: sv.h1, s: state, inv: state.Inverse()}
}

// reflectState maps a state through the main diagonal: the tile on
// square q moves to square Ref[q] and becomes its own mirror tile.
func reflectState(s board.State) board.State {
	var out board.State
	for q, tile := range s {
		out[board.Ref[q]] = board.Ref[tile]
	}
	return out
}

func randomState(rng *rand.Rand) board.State {
	var s board.State
	for i, tile := range rng.Perm(board.Size) {
		s[i] = tile
	}
	return s
}

func TestHeuristicZeroAtGoal(t *testing.T) {
	sv := testSolver(t)
	se := newTestSearcher(sv, board.Goal)
	regular, add := se.regularSum()
	reflected, addr := se.reflectedSum()
	expect.EQ(t, regular, 0)
	expect.EQ(t, reflected, 0)
	expect.EQ(t, add, [4]int{})
	expect.EQ(t, addr, [4]int{})
	expect.EQ(t, sv.Heuristic(board.Goal), 0)
}

// The reflected sum of a state is the regular sum of the reflected
// state, and vice versa; the identity is on the table indices, so it
// holds for any loaded database.
func TestReflectionConsistency(t *testing.T) {
	sv := testSolver(t)
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		state := randomState(rng)
		se := newTestSearcher(sv, state)
		ref := newTestSearcher(sv, reflectState(state))
		regular, _ := se.regularSum()
		reflected, _ := se.reflectedSum()
		refRegular, _ := ref.regularSum()
		refReflected, _ := ref.reflectedSum()
		expect.EQ(t, refRegular, reflected, "trial %d", trial)
		expect.EQ(t, refReflected, regular, "trial %d", trial)
		expect.EQ(t, sv.Heuristic(state), sv.Heuristic(reflectState(state)), "trial %d", trial)
	}
}

// A move touches exactly one regular and one reflected contribution:
// the patterns of the moved tile. The other six carry through, which is
// what lets the search maintain them incrementally.
func TestContributionLocality(t *testing.T) {
	sv := testSolver(t)
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		state := scramble(rng, 30)
		se := newTestSearcher(sv, state)
		_, add := se.regularSum()
		_, addr := se.reflectedSum()
		blank := state.Blank()
		for _, sq := range board.Neighbors[blank] {
			tile := state[sq]
			moved, err := state.Apply([]int{tile})
			require.NoError(t, err)
			ms := newTestSearcher(sv, moved)
			_, nadd := ms.regularSum()
			_, naddr := ms.reflectedSum()
			for p := 0; p < 4; p++ {
				if p != board.WhichPat[tile] {
					expect.EQ(t, nadd[p], add[p], "tile %d pattern %d", tile, p)
				}
				if p != board.WhichRefPat[tile] {
					expect.EQ(t, naddr[p], addr[p], "tile %d reflected pattern %d", tile, p)
				}
			}
		}
	}
}

// After a failed iteration the state and inverse state are exactly as
// they were on entry.
func TestSearchRestoresState(t *testing.T) {
	sv := testSolver(t)
	state, err := board.Goal.Apply([]int{5, 6}) // two moves from home
	require.NoError(t, err)
	se := newTestSearcher(sv, state)
	se.thresh = 1 // everything prunes immediately
	_, add := se.regularSum()
	_, addr := se.reflectedSum()
	savedS, savedInv := se.s, se.inv

	found := se.search(se.inv[0], -1, 0,
		add[0], add[1], add[2], add[3],
		addr[0], addr[1], addr[2], addr[3])
	require.False(t, found)
	expect.EQ(t, se.s, savedS)
	expect.EQ(t, se.inv, savedInv)
	expect.True(t, se.generated > 0)
}

package board

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

// The four patterns must cover tiles 1..24, six tiles each, and agree
// with the WhichPat lookup.
func TestPatternPartition(t *testing.T) {
	covered := map[int]int{}
	for p, pat := range Patterns {
		for _, tile := range pat {
			expect.True(t, tile >= 1 && tile < Size, "pattern %d tile %d", p, tile)
			covered[tile]++
			expect.EQ(t, WhichPat[tile], p, "tile %d", tile)
		}
	}
	expect.EQ(t, len(covered), Size-1)
	for tile, n := range covered {
		expect.EQ(t, n, 1, "tile %d", tile)
	}
}

func TestReflectedPatternPartition(t *testing.T) {
	covered := map[int]int{}
	for p, pat := range RefPatterns {
		for _, tile := range pat {
			covered[tile]++
			expect.EQ(t, WhichRefPat[tile], p, "tile %d", tile)
		}
	}
	expect.EQ(t, len(covered), Size-1)
}

// Entry i of a reflected pattern is the main-diagonal image of entry i
// of the regular pattern; the heuristic's digit orders depend on this.
func TestReflectedPatternOrder(t *testing.T) {
	for p := range Patterns {
		for i, tile := range Patterns[p] {
			expect.EQ(t, RefPatterns[p][i], Ref[tile], "pattern %d entry %d", p, i)
		}
	}
}

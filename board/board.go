// Package board models the 5x5 sliding-tile board (the 24-puzzle): its
// geometry, the symmetry permutations used to share pattern databases, and
// the Korf-Felner 6-6-6-6 tile partition.
//
// Squares are numbered 0..24 in row-major order. A tile is an integer
// 0..24; tile 0 is the blank. A state maps squares to tiles; its inverse
// maps tiles to squares.
package board

const (
	// Width is the number of squares per row.
	Width = 5
	// Size is the total number of squares.
	Size = Width * Width
	// MaxMoves bounds the solver's recursion depth and the number of BFS
	// layers during database construction. It exceeds the diameter of the
	// 24-puzzle.
	MaxMoves = 125
)

// Neighbors[b] lists the squares reachable by a single blank move from
// square b: 2 entries in a corner, 3 on an edge, 4 in the interior.
var Neighbors [Size][]int

func init() {
	for b, adj := range Adjacency(Size, Width) {
		Neighbors[b] = adj
	}
}

// Adjacency returns the blank-move adjacency lists for a board of the
// given size and width. Moves are listed in up, down, left, right order.
func Adjacency(size, width int) [][]int {
	adj := make([][]int, size)
	for b := 0; b < size; b++ {
		if b >= width { // not top row
			adj[b] = append(adj[b], b-width)
		}
		if b < size-width { // not bottom row
			adj[b] = append(adj[b], b+width)
		}
		if b%width != 0 { // not left column
			adj[b] = append(adj[b], b-1)
		}
		if b%width != width-1 { // not right column
			adj[b] = append(adj[b], b+1)
		}
	}
	return adj
}

// Ref reflects a square about the main diagonal.
var Ref = [Size]int{
	0, 5, 10, 15, 20,
	1, 6, 11, 16, 21,
	2, 7, 12, 17, 22,
	3, 8, 13, 18, 23,
	4, 9, 14, 19, 24,
}

// Rot90 rotates a square 90 degrees.
var Rot90 = [Size]int{
	20, 15, 10, 5, 0,
	21, 16, 11, 6, 1,
	22, 17, 12, 7, 2,
	23, 18, 13, 8, 3,
	24, 19, 14, 9, 4,
}

// Rot90Ref composes the reflection and the 90 degree rotation.
var Rot90Ref = [Size]int{
	20, 21, 22, 23, 24,
	15, 16, 17, 18, 19,
	10, 11, 12, 13, 14,
	5, 6, 7, 8, 9,
	0, 1, 2, 3, 4,
}

// Rot180 rotates a square 180 degrees.
var Rot180 = [Size]int{
	24, 23, 22, 21, 20,
	19, 18, 17, 16, 15,
	14, 13, 12, 11, 10,
	9, 8, 7, 6, 5,
	4, 3, 2, 1, 0,
}

// Rot180Ref composes the reflection and the 180 degree rotation.
var Rot180Ref = [Size]int{
	24, 19, 14, 9, 4,
	23, 18, 13, 8, 3,
	22, 17, 12, 7, 2,
	21, 16, 11, 6, 1,
	20, 15, 10, 5, 0,
}

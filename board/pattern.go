package board

// PatternSize is the number of tiles in each pattern. The four disjoint
// 6-tile patterns together cover all 24 non-blank tiles; tile 15 is in
// pattern 2.
const PatternSize = 6

// Patterns lists the tiles of each regular pattern. The order within a
// pattern is fixed: it is the digit order of the database hash, and must
// match the order used when the pattern's database was built.
var Patterns = [4][PatternSize]int{
	{1, 2, 5, 6, 7, 12},
	{3, 4, 8, 9, 13, 14},
	{10, 11, 15, 16, 20, 21},
	{17, 18, 19, 22, 23, 24},
}

// RefPatterns lists the tiles of each pattern reflected about the main
// diagonal, ordered so that entry i corresponds to entry i of the
// matching regular pattern.
var RefPatterns = [4][PatternSize]int{
	{5, 10, 1, 6, 11, 12},
	{15, 20, 16, 21, 17, 22},
	{2, 7, 3, 8, 4, 9},
	{13, 18, 23, 14, 19, 24},
}

// WhichPat[t] is the regular pattern containing tile t. The entry for
// tile 0 (the blank) is meaningless.
var WhichPat = [Size]int{
	0, 0, 0, 1, 1,
	0, 0, 0, 1, 1,
	2, 2, 0, 1, 1,
	2, 2, 3, 3, 3,
	2, 2, 3, 3, 3,
}

// WhichRefPat[t] is the reflected pattern containing tile t. The entry
// for tile 0 is meaningless.
var WhichRefPat = [Size]int{
	0, 0, 2, 2, 2,
	0, 0, 2, 2, 2,
	0, 0, 0, 3, 3,
	1, 1, 1, 3, 3,
	1, 1, 1, 3, 3,
}

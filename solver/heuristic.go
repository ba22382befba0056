package solver

import "github.com/grailbio/dpdb/board"

// The eight heuristic contributions come from two stored tables. h0
// serves pattern 0 and, through the main-diagonal reflection, reflected
// pattern 0. h1 serves pattern 1 directly, patterns 2 and 3 by rotating
// the board 180 and 90 degrees onto pattern 1's squares, reflected
// pattern 1 through the main-diagonal reflection, and reflected patterns
// 2 and 3 through the composed reflection-rotations. Digit order of every fold matches the order the
// databases were built with.

const sz = board.Size

// hash0 is the pattern 0 lookup: tiles 1,2,5,6,7,12.
func (se *searcher) hash0() int {
	inv := &se.inv
	i := ((((inv[1]*sz+inv[2])*sz+inv[5])*sz+inv[6])*sz+inv[7])*sz + inv[12]
	return int(se.h0[i])
}

// hashref0 is the reflection of pattern 0: tiles 5,10,1,6,11,12 mapped
// through the main diagonal onto pattern 0's squares.
func (se *searcher) hashref0() int {
	inv := &se.inv
	ref := &board.Ref
	i := ((((ref[inv[5]]*sz+ref[inv[10]])*sz+ref[inv[1]])*sz+ref[inv[6]])*sz+ref[inv[11]])*sz + ref[inv[12]]
	return int(se.h0[i])
}

// hash1 is the pattern 1 lookup: tiles 3,4,8,9,13,14.
func (se *searcher) hash1() int {
	inv := &se.inv
	i := ((((inv[3]*sz+inv[4])*sz+inv[8])*sz+inv[9])*sz+inv[13])*sz + inv[14]
	return int(se.h1[i])
}

// hashref1 is the reflection of pattern 1: tiles 15,20,16,21,17,22.
func (se *searcher) hashref1() int {
	inv := &se.inv
	ref := &board.Ref
	i := ((((ref[inv[15]]*sz+ref[inv[20]])*sz+ref[inv[16]])*sz+ref[inv[21]])*sz+ref[inv[17]])*sz + ref[inv[22]]
	return int(se.h1[i])
}

// hash2 rotates pattern 2 (tiles 10,11,15,16,20,21) 180 degrees onto
// pattern 1's squares and uses the pattern 1 database.
func (se *searcher) hash2() int {
	inv := &se.inv
	rot := &board.Rot180
	i := ((((rot[inv[21]]*sz+rot[inv[20]])*sz+rot[inv[16]])*sz+rot[inv[15]])*sz+rot[inv[11]])*sz + rot[inv[10]]
	return int(se.h1[i])
}

// hashref2 is the reflection of pattern 2: tiles 2,7,3,8,4,9 through the
// composed reflection and 180 degree rotation.
func (se *searcher) hashref2() int {
	inv := &se.inv
	rot := &board.Rot180Ref
	i := ((((rot[inv[9]]*sz+rot[inv[4]])*sz+rot[inv[8]])*sz+rot[inv[3]])*sz+rot[inv[7]])*sz + rot[inv[2]]
	return int(se.h1[i])
}

// hash3 rotates pattern 3 (tiles 17,18,19,22,23,24) 90 degrees onto
// pattern 1's squares and uses the pattern 1 database.
func (se *searcher) hash3() int {
	inv := &se.inv
	rot := &board.Rot90
	i := ((((rot[inv[19]]*sz+rot[inv[24]])*sz+rot[inv[18]])*sz+rot[inv[23]])*sz+rot[inv[17]])*sz + rot[inv[22]]
	return int(se.h1[i])
}

// hashref3 is the reflection of pattern 3: tiles 13,18,23,14,19,24
// through the composed reflection and 90 degree rotation.
func (se *searcher) hashref3() int {
	inv := &se.inv
	rot := &board.Rot90Ref
	i := ((((rot[inv[23]]*sz+rot[inv[24]])*sz+rot[inv[18]])*sz+rot[inv[19]])*sz+rot[inv[13]])*sz + rot[inv[14]]
	return int(se.h1[i])
}

// regularSum and reflectedSum recompute the two heuristic sums from
// scratch. The search itself maintains them incrementally; these anchor
// the initial threshold and the tests.
func (se *searcher) regularSum() (int, [4]int) {
	add := [4]int{se.hash0(), se.hash1(), se.hash2(), se.hash3()}
	return add[0] + add[1] + add[2] + add[3], add
}

func (se *searcher) reflectedSum() (int, [4]int) {
	addr := [4]int{se.hashref0(), se.hashref1(), se.hashref2(), se.hashref3()}
	return addr[0] + addr[1] + addr[2] + addr[3], addr
}

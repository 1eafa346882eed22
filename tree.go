// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wavelet

// Tree is a level-wise wavelet tree. Each level's segment preserves the
// hierarchical left-right ordering of the tree's intervals, so queries
// carry the current interval's start and size from level to level.
type Tree struct {
	base
}

// NewTree builds a wavelet tree over text. Every symbol of text must lie
// in [0, alphabetSize) with 1 <= alphabetSize <= MaxAlphabet. The text is
// consumed during construction and not retained.
func NewTree(text []byte, alphabetSize int) (*Tree, error) {
	b, err := newBase(text, alphabetSize, false)
	if err != nil {
		return nil, err
	}
	return &Tree{base: b}, nil
}

// Access returns the symbol at position i of the indexed text.
func (t *Tree) Access(i int) (byte, error) {
	if err := t.checkAccess(i); err != nil {
		return 0, err
	}
	pos := i
	intervalStart, intervalSize := 0, t.n
	var c byte
	for level := 0; level < t.levels; level++ {
		c <<= 1
		// Counting ones instead of zeros saves a subtraction per
		// rank call.
		obi := t.rs.Rank1(intervalStart)
		onesBeforePos := t.rs.Rank1(intervalStart+pos) - obi
		onesInInterval := t.rs.Rank1(intervalStart+intervalSize) - obi
		if t.bv.Get(intervalStart + pos) {
			c |= 1
			intervalStart += intervalSize - onesInInterval
			intervalSize = onesInInterval
			pos = onesBeforePos
		} else {
			intervalSize -= onesInInterval
			pos -= onesBeforePos
		}
		intervalStart += t.n
	}
	return c, nil
}

// Rank returns the number of occurrences of c in the prefix [0, i) of the
// indexed text, for 0 <= i <= Len().
func (t *Tree) Rank(i int, c byte) (int, error) {
	if err := t.checkRank(i, c); err != nil {
		return 0, err
	}
	pos := i
	intervalStart, intervalSize := 0, t.n
	mask := byte(1) << uint(t.levels-1)
	for level := 0; level < t.levels && pos > 0; level++ {
		obi := t.rs.Rank1(intervalStart)
		onesBeforePos := t.rs.Rank1(intervalStart+pos) - obi
		onesInInterval := t.rs.Rank1(intervalStart+intervalSize) - obi
		if c&mask != 0 {
			intervalStart += intervalSize - onesInInterval
			intervalSize = onesInInterval
			pos = onesBeforePos
		} else {
			intervalSize -= onesInInterval
			pos -= onesBeforePos
		}
		intervalStart += t.n
		mask >>= 1
	}
	return pos, nil
}

// Select returns the position of the r-th occurrence (1-indexed) of c in
// the indexed text. It returns ErrNotFound when c occurs fewer than r
// times.
func (t *Tree) Select(r int, c byte) (int, error) {
	if err := t.checkSelect(r, c); err != nil {
		return 0, err
	}

	// Descent: walk down guided by the bits of c (MSB first), recording
	// each level's interval start and the number of ones before it for
	// the ascent.
	var starts, ranks [maxLevels + 1]int
	intervalStart, intervalSize := 0, t.n
	mask := byte(1) << uint(t.levels-1)
	for level := 0; level < t.levels && intervalSize > 0; level++ {
		obi := t.rs.Rank1(intervalStart)
		onesInInterval := t.rs.Rank1(intervalStart+intervalSize) - obi
		ranks[level] = obi
		if c&mask != 0 {
			intervalStart += intervalSize - onesInInterval
			intervalSize = onesInInterval
		} else {
			intervalSize -= onesInInterval
		}
		intervalStart += t.n
		starts[level+1] = intervalStart
		mask >>= 1
	}
	if intervalSize == 0 || intervalSize < r {
		return 0, ErrNotFound
	}

	return t.ascend(r, c, &starts, &ranks)
}

// SpaceUsage returns the number of bytes used by the index.
func (t *Tree) SpaceUsage() int { return t.spaceUsage() }

// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package wavelet implements succinct wavelet indexes over byte texts
// drawn from small alphabets.
//
// A wavelet index answers three queries about an immutable text in
// O(log sigma) time, where sigma is the effective alphabet size:
//
//	Access(i)    the symbol at position i
//	Rank(i, c)   occurrences of c in the prefix [0, i)
//	Select(r, c) the position of the r-th occurrence of c (1-indexed)
//
// Two variants are provided. Tree is a level-wise wavelet tree whose levels
// keep a hierarchical left-right interval ordering; Matrix is a wavelet
// matrix whose levels order intervals by bit-reversal permutation, so that
// all zeros of one level precede all ones on the next. Both store all
// levels in a single packed bit vector with one shared rank/select
// directory, and both are built by the same prefix-counting pass.
//
// The input must already be mapped onto the effective alphabet [0, sigma);
// ReduceAlphabet performs that mapping in place. Indexes are immutable
// after construction, retain no reference to the input text, and all
// queries are safe for concurrent use.
package wavelet

import (
	"math/bits"

	"github.com/dsnet/wavelet/bitvec"
	"github.com/dsnet/wavelet/internal"
)

// MaxAlphabet is the largest supported alphabet size.
const MaxAlphabet = 256

// maxLevels bounds the level count for byte alphabets. Select backtracking
// buffers are sized by it so that queries need no heap allocation.
const maxLevels = internal.MaxLevels

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "wavelet: " + string(e) }

var (
	ErrAlphabet error = Error("invalid alphabet size")
	ErrSymbol   error = Error("symbol out of alphabet range")
	ErrBounds   error = Error("query argument out of range")
	ErrNotFound error = Error("rank exceeds symbol occurrences")
)

// base carries the pieces shared by both variants: the concatenated level
// bit vector, its rank/select directory, and the text geometry.
type base struct {
	levels int
	n      int
	sigma  int
	bv     *bitvec.Vector
	rs     *bitvec.RankSelect
}

// numLevels returns ceil(log2(sigma)) clamped to at least one level, so a
// single-symbol text still produces one (all-zero) level.
func numLevels(sigma int) int {
	if l := bits.Len(uint(sigma - 1)); l > 0 {
		return l
	}
	return 1
}

func newBase(text []byte, alphabetSize int, matrix bool) (base, error) {
	if alphabetSize < 1 || alphabetSize > MaxAlphabet {
		return base{}, ErrAlphabet
	}
	for _, s := range text {
		if int(s) >= alphabetSize {
			return base{}, ErrSymbol
		}
	}

	levels := numLevels(alphabetSize)
	bv := bitvec.New(levels * len(text))
	prefixCounting(text, levels, bv, matrix)
	return base{
		levels: levels,
		n:      len(text),
		sigma:  alphabetSize,
		bv:     bv,
		rs:     bitvec.NewRankSelect(bv),
	}, nil
}

// Len returns the length of the indexed text.
func (b *base) Len() int { return b.n }

// AlphabetSize returns the alphabet size the index was built with.
func (b *base) AlphabetSize() int { return b.sigma }

// Levels returns the number of levels, ceil(log2(AlphabetSize())) clamped
// to at least one.
func (b *base) Levels() int { return b.levels }

func (b *base) checkAccess(i int) error {
	if i < 0 || i >= b.n {
		return ErrBounds
	}
	return nil
}

func (b *base) checkRank(i int, c byte) error {
	switch {
	case i < 0 || i > b.n:
		return ErrBounds
	case int(c) >= b.sigma:
		return ErrSymbol
	}
	return nil
}

func (b *base) checkSelect(r int, c byte) error {
	switch {
	case r < 1:
		return ErrBounds
	case int(c) >= b.sigma:
		return ErrSymbol
	}
	return nil
}

// ascend is the backtracking phase shared by both variants' Select: walk
// back up from the deepest level consulting the bits of c LSB-first,
// translating the rank within each child interval into a rank within its
// parent via select on the parent's level.
func (b *base) ascend(r int, c byte, starts, ranks *[maxLevels + 1]int) (int, error) {
	for level := b.levels; level > 0; level-- {
		intervalStart := starts[level-1]
		obi := ranks[level-1]
		var p int
		var ok bool
		if c>>uint(b.levels-level)&1 != 0 {
			p, ok = b.rs.Select1(obi + r)
		} else {
			p, ok = b.rs.Select0(intervalStart - obi + r)
		}
		if !ok {
			return 0, ErrNotFound
		}
		r = p - intervalStart + 1
	}
	return r - 1, nil
}

func (b *base) spaceUsage() int {
	return b.bv.SpaceUsage() + b.rs.SpaceUsage() + 48
}

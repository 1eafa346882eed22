// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wavelet

// The construction used here is the sequential prefix-counting algorithm
// by Fischer, Kurpicz, and Loebel, which fills all levels of the wavelet
// tree or matrix bottom-up in O(n log sigma) time using only two
// alphabet-sized scratch arrays.
//
// References:
//	https://arxiv.org/abs/1702.07578
//	https://github.com/pasta-toolbox/wavelet_tree

import (
	"github.com/dsnet/wavelet/bitvec"
	"github.com/dsnet/wavelet/internal"
)

// prefixCounting populates the zero-filled bit vector bv, which must hold
// levels*len(text) bits, with the concatenated level bitstrings of the
// wavelet tree (matrix=false) or wavelet matrix (matrix=true) of text.
// Every symbol in text must be below 1<<levels.
func prefixCounting(text []byte, levels int, bv *bitvec.Vector, matrix bool) {
	n := len(text)
	if n == 0 {
		return
	}
	words := bv.Words()
	var hist, borders [MaxAlphabet]int

	// First pass: count all symbols and emit each symbol's MSB into the
	// top level, packing 64 bits at a time by right-shift-then-insert.
	// The final partial word is shifted down so that its bits align with
	// the start of the word.
	mask := byte(1) << uint(levels-1)
	shift := uint(64 - levels)
	var pos int
	i := 0
	for ; i+64 <= n; i += 64 {
		var blk uint64
		for _, s := range text[i : i+64] {
			hist[s]++
			blk >>= 1
			blk |= uint64(s&mask) << shift
		}
		words[pos] = blk
		pos++
	}
	if rem := n - i; rem > 0 {
		var blk uint64
		for _, s := range text[i:] {
			hist[s]++
			blk >>= 1
			blk |= uint64(s&mask) << shift
		}
		words[pos] = blk >> uint(64-rem)
	}

	// Deeper levels, from the bottom level up to level 1. Coarsen the
	// histogram by pairwise sums,
	// derive the write border of every coarse prefix, then sweep the text
	// once more emitting the level's bit at the border of its prefix.
	curAlpha := 1 << uint(levels)
	for level := levels - 1; level > 0; level-- {
		curAlpha >>= 1
		for i := 0; i < curAlpha; i++ {
			borders[i] = hist[2*i] + hist[2*i+1]
		}
		copy(hist[:curAlpha], borders[:curAlpha])

		if !matrix {
			// Exclusive prefix scan: intervals keep text order.
			sum := n * level
			for i := 0; i < curAlpha; i++ {
				sum, borders[i] = sum+borders[i], sum
			}
		} else {
			// Bit-reversal ordering: on the next level all zeros
			// precede all ones.
			brv := internal.BitReversal(level)
			borders[0] = n * level // brv[0] == 0
			for i := 1; i < curAlpha; i++ {
				borders[brv[i]] = hist[brv[i-1]] + borders[brv[i-1]]
			}
		}

		shift := uint(levels - level - 1)
		for _, s := range text {
			prefix := int(s) >> shift
			p := borders[prefix>>1]
			borders[prefix>>1]++
			words[p>>6] |= uint64(prefix&1) << (uint(p) & 63)
		}
	}
}

// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wavelet

import (
	"strings"
	"testing"

	"github.com/dsnet/wavelet/bitvec"
	"github.com/dsnet/wavelet/internal/testutil"
)

func TestPrefixCounting(t *testing.T) {
	vectors := []struct {
		input  []byte // The input text
		sigma  int    // Its alphabet size
		matrix bool   // Matrix (true) or tree (false) bordering
		bits   string // Expected concatenated level bits
	}{{
		input: nil,
		sigma: 1,
		bits:  "",
	}, {
		input: []byte{0, 0, 0},
		sigma: 1,
		bits:  "000",
	}, {
		input: []byte{0, 1, 0, 1, 0},
		sigma: 2,
		bits:  "01010",
	}, {
		input:  []byte{0, 1, 0, 1, 0},
		sigma:  2,
		matrix: true,
		bits:   "01010",
	}, {
		// 3=011, 4=100: level 1 splits on the MSB, level 2 orders the
		// 2-bit prefixes 00,01,10,11 for the tree...
		input: []byte{3, 4},
		sigma: 5,
		bits:  "011010",
	}, {
		// ...and 00,10,01,11 (bit-reversed) for the matrix.
		input:  []byte{3, 4},
		sigma:  5,
		matrix: true,
		bits:   "011001",
	}}

	for i, v := range vectors {
		levels := numLevels(v.sigma)
		bv := bitvec.New(levels * len(v.input))
		prefixCounting(v.input, levels, bv, v.matrix)

		var sb strings.Builder
		for j := 0; j < bv.Len(); j++ {
			if bv.Get(j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if got := sb.String(); got != v.bits {
			t.Errorf("test %d, level bits mismatch:\ngot  %s\nwant %s", i, got, v.bits)
		}
	}
}

// TestPrefixCountingAlignment checks the 64-symbol grouping of the first
// pass around word boundaries: with a binary alphabet the single level must
// reproduce the text bit for bit.
func TestPrefixCountingAlignment(t *testing.T) {
	rng := testutil.NewRand(2)
	for _, n := range []int{1, 63, 64, 65, 127, 128, 130, 1000} {
		text := make([]byte, n)
		for i := range text {
			text[i] = byte(rng.Intn(2))
		}
		for _, matrix := range []bool{false, true} {
			bv := bitvec.New(n)
			prefixCounting(text, 1, bv, matrix)
			for i, s := range text {
				if got := bv.Get(i); got != (s == 1) {
					t.Fatalf("n=%d matrix=%v, bit %d mismatch: got %v, want %v",
						n, matrix, i, got, s == 1)
				}
			}
		}
	}
}

// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitvec

import (
	"testing"

	"github.com/dsnet/wavelet/internal/testutil"
)

func TestVector(t *testing.T) {
	v := New(131)
	if got := v.Len(); got != 131 {
		t.Fatalf("mismatching length: got %d, want %d", got, 131)
	}
	if got := len(v.Words()); got != 3 {
		t.Fatalf("mismatching word count: got %d, want %d", got, 3)
	}

	idxs := []int{0, 1, 63, 64, 65, 100, 130}
	for _, i := range idxs {
		v.Set(i, true)
	}
	set := make(map[int]bool)
	for _, i := range idxs {
		set[i] = true
	}
	for i := 0; i < v.Len(); i++ {
		if got := v.Get(i); got != set[i] {
			t.Errorf("bit %d: got %v, want %v", i, got, set[i])
		}
	}

	v.Set(64, false)
	if v.Get(64) {
		t.Errorf("bit 64: got set, want clear")
	}

	// Bits beyond the declared length must stay zero.
	if tail := v.Words()[2] >> 3; tail != 0 {
		t.Errorf("trailing bits not zero: got %#x", tail)
	}
}

func TestSelect64(t *testing.T) {
	vectors := []struct {
		x   uint64
		r   int
		pos int
	}{
		{0x0000000000000001, 1, 0},
		{0x8000000000000000, 1, 63},
		{0xffffffffffffffff, 1, 0},
		{0xffffffffffffffff, 64, 63},
		{0xffffffffffffffff, 33, 32},
		{0x5555555555555555, 17, 32},
		{0xaaaaaaaaaaaaaaaa, 17, 33},
		{0x0000000100000000, 1, 32},
		{0xf0f0f0f0f0f0f0f0, 5, 12},
	}

	for i, v := range vectors {
		if pos := select64(v.x, v.r); pos != v.pos {
			t.Errorf("test %d, select64(%#x, %d) mismatch: got %d, want %d",
				i, v.x, v.r, pos, v.pos)
		}
	}
}

func TestRankSelect(t *testing.T) {
	sizes := []int{0, 1, 63, 64, 65, 511, 512, 513, 4096, 32769, 100001}
	densities := []int{0, 7, 50, 93, 100}

	rng := testutil.NewRand(0)
	for _, n := range sizes {
		for _, d := range densities {
			v := New(n)
			for i := 0; i < n; i++ {
				if rng.Intn(100) < d {
					v.Set(i, true)
				}
			}
			rs := NewRankSelect(v)

			var ones int
			for i := 0; i < n; i++ {
				if got := rs.Rank1(i); got != ones {
					t.Fatalf("size %d, density %d, Rank1(%d) mismatch: got %d, want %d",
						n, d, i, got, ones)
				}
				if got := rs.Rank0(i); got != i-ones {
					t.Fatalf("size %d, density %d, Rank0(%d) mismatch: got %d, want %d",
						n, d, i, got, i-ones)
				}
				if v.Get(i) {
					ones++
					if got, ok := rs.Select1(ones); !ok || got != i {
						t.Fatalf("size %d, density %d, Select1(%d) mismatch: got (%d, %v), want (%d, true)",
							n, d, ones, got, ok, i)
					}
				} else {
					zeros := i + 1 - ones
					if got, ok := rs.Select0(zeros); !ok || got != i {
						t.Fatalf("size %d, density %d, Select0(%d) mismatch: got (%d, %v), want (%d, true)",
							n, d, zeros, got, ok, i)
					}
				}
			}
			if got := rs.Rank1(n); got != ones {
				t.Fatalf("size %d, density %d, Rank1(len) mismatch: got %d, want %d",
					n, d, got, ones)
			}
			if got := rs.Ones(); got != ones {
				t.Fatalf("size %d, density %d, Ones() mismatch: got %d, want %d",
					n, d, got, ones)
			}
			if _, ok := rs.Select1(ones + 1); ok {
				t.Fatalf("size %d, density %d, Select1(%d): got ok, want not found",
					n, d, ones+1)
			}
			if _, ok := rs.Select0(n - ones + 1); ok {
				t.Fatalf("size %d, density %d, Select0(%d): got ok, want not found",
					n, d, n-ones+1)
			}
			if _, ok := rs.Select1(0); ok {
				t.Fatalf("size %d, density %d, Select1(0): got ok, want not found", n, d)
			}
		}
	}
}

func TestRankSelectOverhead(t *testing.T) {
	v := New(1 << 24)
	rs := NewRankSelect(v)
	if ratio := float64(rs.SpaceUsage()) / float64(v.SpaceUsage()); ratio > 0.04 {
		t.Errorf("directory overhead too large: got %.4f, want <= 0.04", ratio)
	}
}

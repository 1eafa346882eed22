// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"github.com/dsnet/wavelet"
	"github.com/dsnet/wavelet/internal/testutil"
)

// RankQuery is a position and the symbol whose prefix count is requested.
type RankQuery struct {
	Pos int
	Sym byte
}

// SelectQuery is a 1-indexed rank and the symbol whose occurrence is
// requested. Generated ranks never exceed the symbol's occurrence count.
type SelectQuery struct {
	Rank int
	Sym  byte
}

// GenQueries generates count queries of each kind over the reduced text.
// Positions are uniform in [0, len(text)], rank and select symbols are
// drawn from the text itself so that their distribution matches it, and
// select ranks are drawn uniformly from the symbol's reachable range using
// the text's histogram.
func GenQueries(text []byte, count int) (access []int, rank []RankQuery, sel []SelectQuery) {
	rng := testutil.NewRand(len(text))
	hist := wavelet.Histogram(text)

	access = make([]int, count)
	for i := range access {
		access[i] = rng.Intn(len(text) + 1)
	}
	rank = make([]RankQuery, count)
	for i := range rank {
		rank[i] = RankQuery{
			Pos: rng.Intn(len(text) + 1),
			Sym: text[rng.Intn(len(text))],
		}
	}
	sel = make([]SelectQuery, count)
	for i := range sel {
		c := text[rng.Intn(len(text))]
		sel[i] = SelectQuery{
			Rank: 1 + rng.Intn(hist[c]),
			Sym:  c,
		}
	}
	return access, rank, sel
}

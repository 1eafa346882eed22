// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of wavelet index implementations
// with respect to construction speed, query latency, and space.
package bench

import (
	"fmt"
	"path"
	"runtime"
	"strings"
	"testing"

	"github.com/dsnet/golib/unitconv"
)

// Index is the query surface a benchmarked index must provide.
type Index interface {
	Access(i int) (byte, error)
	Rank(i int, c byte) (int, error)
	Select(r int, c byte) (int, error)
	Len() int
	SpaceUsage() int
}

// Builder constructs an index over a reduced text with the given alphabet
// size.
type Builder func(text []byte, alphabetSize int) (Index, error)

// Indexes is the registry of all index implementations under comparison.
var Indexes map[string]Builder

// RegisterIndex registers an index builder under the given name.
func RegisterIndex(name string, b Builder) {
	if Indexes == nil {
		Indexes = make(map[string]Builder)
	}
	Indexes[name] = b
}

// BenchmarkConstruction benchmarks building a single index over the given
// reduced input and reports the result.
func BenchmarkConstruction(input []byte, alphabetSize int, build Builder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if build == nil {
			b.Fatalf("unexpected error: nil Builder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := build(input, alphabetSize); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkAccess benchmarks access latency over the given query batch.
// Each query position is perturbed by the previous result so that the
// processor cannot overlap independent queries.
func BenchmarkAccess(idx Index, queries []int) testing.BenchmarkResult {
	n := idx.Len()
	return testing.Benchmark(func(b *testing.B) {
		var result int
		for i := 0; i < b.N; i++ {
			for _, q := range queries {
				pos := (q * (result + 42)) % n
				c, err := idx.Access(pos)
				if err != nil {
					b.Fatalf("unexpected error: %v", err)
				}
				result = int(c)
			}
		}
	})
}

// BenchmarkRank benchmarks rank latency over the given query batch.
func BenchmarkRank(idx Index, queries []RankQuery) testing.BenchmarkResult {
	n := idx.Len()
	return testing.Benchmark(func(b *testing.B) {
		var result int
		for i := 0; i < b.N; i++ {
			for _, q := range queries {
				pos := (q.Pos + result) % (n + 1)
				r, err := idx.Rank(pos, q.Sym)
				if err != nil {
					b.Fatalf("unexpected error: %v", err)
				}
				result = r
			}
		}
	})
}

// BenchmarkSelect benchmarks select latency over the given query batch.
// The generated ranks are always reachable, so the result feedback only
// toggles between the rank and its predecessor.
func BenchmarkSelect(idx Index, queries []SelectQuery) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		var result int
		for i := 0; i < b.N; i++ {
			for _, q := range queries {
				r := q.Rank - 1 + result%2
				if r < 1 {
					r = 1
				}
				pos, err := idx.Select(r, q.Sym)
				if err != nil {
					b.Fatalf("unexpected error: %v", err)
				}
				result = pos
			}
		}
	})
}

// Result is a single benchmark measurement.
type Result struct {
	R float64 // Rate (Mq/s or MB/s) or space (bytes)
	D float64 // Delta ratio relative to primary index
}

// Suite runs construction, access, rank, and select benchmarks for every
// registered index named in names over every (file, size) pair.
//
// The values returned have the following structure:
//	results: [len(files)*len(sizes)*4][len(names)]Result
//	rows:    [len(files)*len(sizes)*4]string
func Suite(names, files []string, sizes []int, queries int, tick func()) (results [][]Result, rows []string) {
	tests := []string{"build", "access", "rank", "select"}
	d0 := len(files) * len(sizes) * len(tests)
	results = make([][]Result, d0)
	for i := range results {
		results[i] = make([]Result, len(names))
	}
	rows = make([]string, d0)

	var i int
	for _, f := range files {
		for _, n := range sizes {
			input, sigma, err := LoadCorpus(f, n)
			var aq []int
			var rq []RankQuery
			var sq []SelectQuery
			if err == nil && len(input) > 0 {
				aq, rq, sq = GenQueries(input, queries)
			}
			for _, test := range tests {
				rows[i] = getName(f, test, len(input))
				for j, name := range names {
					if tick != nil {
						tick()
					}
					if err != nil || len(input) == 0 {
						continue
					}
					results[i][j] = runOne(input, sigma, name, test, aq, rq, sq)
					results[i][j].D = results[i][j].R / results[i][0].R
				}
				i++
			}
		}
	}
	return results, rows
}

func runOne(input []byte, sigma int, name, test string, aq []int, rq []RankQuery, sq []SelectQuery) Result {
	build := Indexes[name]
	if build == nil {
		return Result{}
	}
	if test == "build" {
		result := BenchmarkConstruction(input, sigma, build)
		if result.N == 0 {
			return Result{}
		}
		us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
		return Result{R: float64(result.Bytes) / us} // MB/s
	}

	idx, err := build(input, sigma)
	if err != nil {
		return Result{}
	}
	var result testing.BenchmarkResult
	switch test {
	case "access":
		result = BenchmarkAccess(idx, aq)
	case "rank":
		result = BenchmarkRank(idx, rq)
	case "select":
		result = BenchmarkSelect(idx, sq)
	}
	if result.N == 0 {
		return Result{}
	}
	nq := float64(result.N) * float64(len(aq))
	us := float64(result.T.Nanoseconds()) / 1e3
	return Result{R: nq / us} // Mq/s
}

func getName(f, test string, n int) string {
	s := unitconv.FormatPrefix(float64(n), unitconv.Base1024, 2)
	sn := strings.Replace(s, ".00", "", -1)
	return fmt.Sprintf("%s:%s:%s", path.Base(f), test, sn)
}

// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Benchmark tool to compare performance between wavelet index
// implementations. Individual implementations are referred to by the names
// they are registered under ("wt", "wm").
//
// Example usage:
//	$ go build -o wvbench ./cmd/wvbench
//	$ ./wvbench bench -i wt,wm -s 1e5,1e6 -q 10000 twain.txt
//
//		benchmark                     wt rate  delta       wm rate  delta
//		twain.txt:build:97.66Ki         52.10  1.00x         48.37  0.93x
//		twain.txt:access:97.66Ki         4.21  1.00x          5.96  1.42x
//		...
package main

import (
	"fmt"
	"math"
	"math/bits"
	"os"
	"strings"

	"github.com/dsnet/golib/unitconv"
	"github.com/dsnet/wavelet/internal/tool/bench"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wvbench",
		Short: "Wavelet tree/matrix benchmark",
	}

	var indexes, sizes string
	var queries int
	benchCmd := &cobra.Command{
		Use:   "bench [files...]",
		Short: "Benchmark construction and query latency over input files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := strings.Split(indexes, ",")
			ns, err := parseSizes(sizes)
			if err != nil {
				return err
			}
			results, rows := bench.Suite(names, args, ns, queries,
				func() { fmt.Fprint(os.Stderr, ".") })
			fmt.Fprintln(os.Stderr)
			printTable(names, rows, results)
			printSpace(names, args, ns)
			return nil
		},
	}
	benchCmd.Flags().StringVarP(&indexes, "indexes", "i", "wt,wm",
		"comma-separated list of registered indexes to compare")
	benchCmd.Flags().StringVarP(&sizes, "sizes", "s", "1e5,1e6",
		"comma-separated list of input prefix sizes")
	benchCmd.Flags().IntVarP(&queries, "queries", "q", 100000,
		"number of queries per batch")

	var statSize int
	statsCmd := &cobra.Command{
		Use:   "stats [files...]",
		Short: "Report text statistics (length, reduced alphabet size)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range args {
				text, sigma, err := bench.LoadCorpus(f, statSize)
				if err != nil {
					return err
				}
				fmt.Printf("RESULT algo=stats input=%s n=%d logn=%d reduced_alphabet_size=%d\n",
					f, len(text), log2ceil(len(text)), sigma)
			}
			return nil
		},
	}
	statsCmd.Flags().IntVarP(&statSize, "size", "n", -1,
		"input prefix size (-1 for the whole file)")

	rootCmd.AddCommand(benchCmd, statsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseSizes(s string) ([]int, error) {
	var ns []int
	for _, t := range strings.Split(s, ",") {
		var f float64
		if _, err := fmt.Sscanf(t, "%g", &f); err != nil {
			return nil, fmt.Errorf("invalid size %q", t)
		}
		ns = append(ns, int(f))
	}
	return ns, nil
}

func printTable(names, rows []string, results [][]bench.Result) {
	cell := len("benchmark")
	for _, r := range rows {
		if len(r) > cell {
			cell = len(r)
		}
	}
	fmt.Printf("\t%-*s", cell, "benchmark")
	for _, n := range names {
		fmt.Printf("  %12s  %5s", n+" rate", "delta")
	}
	fmt.Println()
	for i, r := range rows {
		fmt.Printf("\t%-*s", cell, r)
		for _, res := range results[i] {
			if res.R == 0 || math.IsNaN(res.R) {
				fmt.Printf("  %12s  %5s", "-", "-")
				continue
			}
			fmt.Printf("  %12.2f  %4.2fx", res.R, res.D)
		}
		fmt.Println()
	}
}

func printSpace(names, files []string, sizes []int) {
	for _, f := range files {
		for _, n := range sizes {
			text, sigma, err := bench.LoadCorpus(f, n)
			if err != nil || len(text) == 0 {
				continue
			}
			for _, name := range names {
				build := bench.Indexes[name]
				if build == nil {
					continue
				}
				idx, err := build(text, sigma)
				if err != nil {
					continue
				}
				space := idx.SpaceUsage()
				fmt.Printf("RESULT algo=%s input=%s n=%d logn=%d space_in_bytes=%d space=%s\n",
					name, f, len(text), log2ceil(len(text)), space,
					unitconv.FormatPrefix(float64(space), unitconv.Base1024, 2)+"B")
			}
		}
	}
}

func log2ceil(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wavelet

// The indexes in this package require texts over an effective alphabet
// [0, sigma). The helpers here remap arbitrary byte texts onto that range
// and compute the occurrence histogram that select-query callers need to
// pick reachable ranks.

// ReduceAlphabet remaps text in place onto its effective alphabet,
// assigning codes in increasing byte-value order, and returns the
// effective alphabet size. An empty text has alphabet size zero.
func ReduceAlphabet(text []byte) int {
	sigma, _ := ReduceAlphabetMap(text)
	return sigma
}

// ReduceAlphabetMap is like ReduceAlphabet, but also returns the mapping
// from original byte values to effective symbols. Entries for values that
// do not occur in text are zero.
func ReduceAlphabetMap(text []byte) (int, [256]byte) {
	var seen [256]bool
	for _, b := range text {
		seen[b] = true
	}
	var mapping [256]byte
	var sigma int
	for v, ok := range seen {
		if ok {
			mapping[v] = byte(sigma)
			sigma++
		}
	}
	for i, b := range text {
		text[i] = mapping[b]
	}
	return sigma, mapping
}

// Histogram counts the occurrences of every byte value in text.
func Histogram(text []byte) [256]int {
	var hist [256]int
	for _, b := range text {
		hist[b]++
	}
	return hist
}

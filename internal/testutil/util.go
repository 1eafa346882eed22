// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"io"
	"os"
)

// LoadFile loads the first n bytes of the input file. If n is less than
// zero, then it will return the input file as is. If the file is smaller
// than n, then it will replicate the input until it matches n.
func LoadFile(file string, n int) ([]byte, error) {
	input, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Resize(input, n)
}

// Resize clamps input to its first n bytes. If n is less than zero, the
// input is returned as is. If the input is smaller than n, then it will be
// replicated until it matches n. Each copy will be XORed by some mask to
// avoid favoring symbol distributions of short inputs.
func Resize(input []byte, n int) ([]byte, error) {
	switch {
	case n < 0 || len(input) == n:
		return input, nil
	case len(input) > n:
		return input[:n], nil
	case len(input) == 0:
		return nil, io.ErrNoProgress // Can't replicate an empty string
	}

	var mask byte
	output := make([]byte, n)
	for i := range output {
		idx := i % len(input)
		output[i] = input[idx] ^ mask
		if idx == len(input)-1 {
			mask++
		}
	}
	return output, nil
}

// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import "github.com/dsnet/wavelet"

func init() {
	RegisterIndex("wt",
		func(text []byte, alphabetSize int) (Index, error) {
			return wavelet.NewTree(text, alphabetSize)
		})
	RegisterIndex("wm",
		func(text []byte, alphabetSize int) (Index, error) {
			return wavelet.NewMatrix(text, alphabetSize)
		})
}

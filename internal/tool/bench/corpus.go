// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"
	"os"
	"path"

	"github.com/dsnet/compress/bzip2"
	"github.com/dsnet/wavelet"
	"github.com/dsnet/wavelet/internal/testutil"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// LoadCorpus loads the first n bytes of the input file, transparently
// decompressing .gz, .zst, .bz2, and .xz corpora, and remaps the text onto
// its effective alphabet. Sizing and replication of short inputs follow
// testutil.LoadFile.
func LoadCorpus(file string, n int) (text []byte, alphabetSize int, err error) {
	ext := path.Ext(file)
	if ext != ".gz" && ext != ".zst" && ext != ".bz2" && ext != ".xz" {
		input, err := testutil.LoadFile(file, n)
		if err != nil {
			return nil, 0, err
		}
		return input, wavelet.ReduceAlphabet(input), nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var r io.Reader
	switch ext {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, 0, err
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, 0, err
		}
		defer zr.Close()
		r = zr
	case ".bz2":
		zr, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, 0, err
		}
		defer zr.Close()
		r = zr
	case ".xz":
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, 0, err
		}
		r = xr
	}

	input, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, err
	}
	if input, err = testutil.Resize(input, n); err != nil {
		return nil, 0, err
	}
	return input, wavelet.ReduceAlphabet(input), nil
}

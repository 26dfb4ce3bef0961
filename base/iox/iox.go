// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides file opening and creation helpers that
// transparently decompress and compress data files according to
// their extension: .gz (gzip), .zst (zstandard), and .lz4.
package iox

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Encodings are the supported compression encodings.
type Encodings int32

const (
	// None is no compression.
	None Encodings = iota

	// Gzip is gzip compression (.gz).
	Gzip

	// Zstd is zstandard compression (.zst).
	Zstd

	// LZ4 is lz4 frame compression (.lz4).
	LZ4
)

// EncodingOf returns the compression encoding implied by the
// filename extension, along with the filename without that extension.
func EncodingOf(filename string) (Encodings, string) {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	switch ext {
	case ".gz":
		return Gzip, base
	case ".zst":
		return Zstd, base
	case ".lz4":
		return LZ4, base
	}
	return None, filename
}

// multiCloser closes the decoder or encoder and then the file.
type multiCloser struct {
	io.Reader
	io.Writer
	closers []func() error
}

func (mc *multiCloser) Close() error {
	var err error
	for _, c := range mc.closers {
		if cerr := c(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens the given file for reading, decompressing according
// to the filename extension.
func Open(filename string) (io.ReadCloser, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	enc, _ := EncodingOf(filename)
	rc, err := NewReader(fp, enc)
	if err != nil {
		fp.Close()
		return nil, err
	}
	return &multiCloser{Reader: rc, closers: []func() error{rc.Close, fp.Close}}, nil
}

// Create creates the given file for writing, compressing according
// to the filename extension. Close must be called to flush the data.
func Create(filename string) (io.WriteCloser, error) {
	fp, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	enc, _ := EncodingOf(filename)
	wc, err := NewWriter(fp, enc)
	if err != nil {
		fp.Close()
		return nil, err
	}
	return &multiCloser{Writer: wc, closers: []func() error{wc.Close, fp.Close}}, nil
}

// NewReader returns a reader that decodes the given encoding from r.
func NewReader(r io.Reader, enc Encodings) (io.ReadCloser, error) {
	switch enc {
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	}
	return io.NopCloser(r), nil
}

// NewWriter returns a writer that encodes to the given encoding on w.
// Close must be called to flush the encoder; it does not close w.
func NewWriter(w io.Writer, enc Encodings) (io.WriteCloser, error) {
	switch enc {
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w)
	case LZ4:
		return lz4.NewWriter(w), nil
	}
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers for locating data files.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"cogentcore.org/resample/base/errors"
)

// DirExists checks whether given path is an existing directory,
// returning true if so, false if not (including a file at that path),
// and error if there is an error in accessing it.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Globs expands the given file patterns (see [filepath.Glob]) in order,
// removing duplicates. A pattern that matches nothing is kept as-is,
// so that opening it reports the missing file.
func Globs(patterns ...string) ([]string, error) {
	var files []string
	for _, pat := range patterns {
		matches, err := filepath.Glob(pat)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			matches = []string{pat}
		}
		for _, m := range matches {
			if !slices.Contains(files, m) {
				files = append(files, m)
			}
		}
	}
	return files, nil
}

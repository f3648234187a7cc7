// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corpus

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// LoadStopwords reads a whitespace-separated word list from path.
func LoadStopwords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading stop words")
	}
	return strings.Fields(string(data)), nil
}

// LoadBigrams reads bigram merges from path. Each non-blank line has
// the form "first second merged".
func LoadBigrams(path string) (map[[2]string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading bigrams")
	}
	defer f.Close()
	m, err := ReadBigrams(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading bigrams from %s", path)
	}
	return m, nil
}

// ReadBigrams parses bigram merges from r.
func ReadBigrams(r io.Reader) (map[[2]string]string, error) {
	m := make(map[[2]string]string)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fs := strings.Fields(scanner.Text())
		if len(fs) == 0 {
			continue
		}
		if len(fs) != 3 {
			return nil, errors.Newf("line %d: want 3 fields, got %d", lineno, len(fs))
		}
		m[[2]string{fs[0], fs[1]}] = fs[2]
	}
	return m, scanner.Err()
}

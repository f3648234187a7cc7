// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corpus

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/kljensen/snowball"
)

// stemSmart conflates tokens that share a Porter stem, but instead of
// replacing them by the stem (which is often not a word), it replaces
// them by the most frequent token with that stem. Among equally
// frequent tokens the one seen last wins.
func stemSmart(texts [][]string) ([][]string, error) {
	count := make(map[string]int)
	var order []string
	for _, text := range texts {
		for _, tok := range text {
			if count[tok] == 0 {
				order = append(order, tok)
			}
			count[tok]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return count[order[i]] < count[order[j]]
	})

	stemming := make(map[string]string, len(order))
	unstemming := make(map[string]string)
	for _, tok := range order {
		stem, err := snowball.Stem(tok, "english", true)
		if err != nil {
			return nil, errors.Wrapf(err, "stemming %q", tok)
		}
		stemming[tok] = stem
		unstemming[stem] = tok
	}

	out := make([][]string, len(texts))
	for i, text := range texts {
		out[i] = make([]string, len(text))
		for j, tok := range text {
			out[i][j] = unstemming[stemming[tok]]
		}
	}
	return out, nil
}

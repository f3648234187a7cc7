// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/litstudy/litplot/corpus"
)

// Group is a suggested merge: Variants are probably the same entity as
// Canonical.
type Group struct {
	Canonical string
	Variants  []string
}

// Key normalizes a name for comparison: accents, case and punctuation
// are dropped and runs of spaces collapse.
func Key(name string) string {
	name = strings.ToLower(corpus.Deaccent(name))
	fs := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fs, " ")
}

// Suggest groups names that look like spellings of the same entity:
// their keys are equal or within maxDist edits of each other. counts
// gives the frequency of each name; the most frequent member of a group
// becomes its canonical name (ties go to the lexically smallest).
// Names already covered by a merge in t are skipped.
func (t *Translations) Suggest(counts map[string]int, maxDist int) []Group {
	names := make([]string, 0, len(counts))
	for n := range counts {
		if n != "" && !t.decided(n) {
			names = append(names, n)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = Key(n)
	}

	used := make([]bool, len(names))
	var groups []Group
	for i := range names {
		if used[i] {
			continue
		}
		g := Group{Canonical: names[i]}
		for j := i + 1; j < len(names); j++ {
			if used[j] || !similar(keys[i], keys[j], maxDist) {
				continue
			}
			used[j] = true
			g.Variants = append(g.Variants, names[j])
		}
		if len(g.Variants) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

func similar(a, b string, maxDist int) bool {
	if a == b {
		return true
	}
	// Short keys such as acronyms are too close to everything.
	if maxDist <= 0 || len(a) <= 2*maxDist || len(b) <= 2*maxDist {
		return false
	}
	return levenshtein.ComputeDistance(a, b) <= maxDist
}

// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clean merges spelling variants of venue and affiliation
// names.
//
// Merge decisions live in a YAML file that maps each canonical name
// to its variants:
//
//	merges:
//	  University of Amsterdam:
//	  - Universiteit van Amsterdam
//	  - UvA
//	suggestions:
//	  Journal of Things:
//	  - Journal of things.
//
// Suggest fills in the suggestions section. Suggestions are never
// applied; a user accepts one by moving it under merges.
package clean

import (
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Translations holds merge decisions.
type Translations struct {
	Merges      map[string][]string `yaml:"merges"`
	Suggestions map[string][]string `yaml:"suggestions,omitempty"`

	canon map[string]string
}

// Load reads translations from path. A missing file yields empty
// translations.
func Load(path string) (*Translations, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Translations{}, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "reading translations")
	}
	t := new(Translations)
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, errors.Wrapf(err, "parsing translations %s", path)
	}
	return t, nil
}

// Save writes t to path.
func (t *Translations) Save(path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return errors.Wrap(err, "encoding translations")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "writing translations")
	}
	return nil
}

func (t *Translations) index() {
	if t.canon != nil {
		return
	}
	t.canon = make(map[string]string)
	for c, vs := range t.Merges {
		for _, v := range vs {
			t.canon[v] = c
		}
	}
}

// Apply returns the canonical name of name.
func (t *Translations) Apply(name string) string {
	t.index()
	if c, ok := t.canon[name]; ok {
		return c
	}
	return name
}

// ApplyAll maps every name through Apply and drops duplicates that
// the merge produces, keeping first-seen order.
func (t *Translations) ApplyAll(names []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, n := range names {
		n = t.Apply(n)
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// decided reports whether name already appears in a merge, either as
// canonical name or as a variant.
func (t *Translations) decided(name string) bool {
	t.index()
	if _, ok := t.Merges[name]; ok {
		return true
	}
	_, ok := t.canon[name]
	return ok
}

// AddSuggestions records groups as suggestions, replacing earlier
// suggestions for the same canonical name.
func (t *Translations) AddSuggestions(groups []Group) {
	if t.Suggestions == nil {
		t.Suggestions = make(map[string][]string)
	}
	for _, g := range groups {
		vs := append([]string(nil), g.Variants...)
		sort.Strings(vs)
		t.Suggestions[g.Canonical] = vs
	}
}

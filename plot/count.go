// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/litstudy/litplot/docset"
)

// A Key extracts the keys a document counts toward. Keys returned
// more than once are counted more than once; empty keys are skipped.
type Key func(d *docset.Document) []string

// Counts is a count table whose keys remember the order in which they
// were first added.
type Counts struct {
	keys []string
	n    map[string]int
}

// NewCounts returns an empty count table.
func NewCounts() *Counts {
	return &Counts{n: make(map[string]int)}
}

// Count tallies key over docs.
func Count(docs []*docset.Document, key Key) *Counts {
	c := NewCounts()
	for _, d := range docs {
		for _, k := range key(d) {
			if k != "" {
				c.Add(k, 1)
			}
		}
	}
	return c
}

// Add adds n to the count of key.
func (c *Counts) Add(key string, n int) {
	if _, ok := c.n[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.n[key] += n
}

// Get returns the count of key, or 0.
func (c *Counts) Get(key string) int {
	return c.n[key]
}

// Len returns the number of distinct keys.
func (c *Counts) Len() int {
	return len(c.keys)
}

// Keys returns all keys in first-seen order.
func (c *Counts) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Map returns a copy of the counts as a map.
func (c *Counts) Map() map[string]int {
	m := make(map[string]int, len(c.n))
	for k, v := range c.n {
		m[k] = v
	}
	return m
}

// TopK returns the k keys with the highest counts, highest first.
// Among equal counts, keys seen later come first.
func (c *Counts) TopK(k int) []string {
	keys := c.Keys()
	sort.SliceStable(keys, func(i, j int) bool { return c.n[keys[i]] < c.n[keys[j]] })
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	if k < len(keys) {
		keys = keys[:k]
	}
	return keys
}

// Table returns the counts of keys as a table with columns "key" and
// "count". If keys is nil, it uses all keys in first-seen order.
func (c *Counts) Table(keys []string) *table.Table {
	if keys == nil {
		keys = c.keys
	}
	counts := make([]int, len(keys))
	for i, k := range keys {
		counts[i] = c.n[k]
	}
	return new(table.Builder).
		Add("key", append([]string{}, keys...)).
		Add("count", counts).
		Done()
}

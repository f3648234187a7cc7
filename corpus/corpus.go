// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corpus turns documents into bags of words.
//
// Build tokenizes the title and abstract of each document and runs
// the tokens through a fixed filter pipeline: bigram merging, stop
// word removal, a minimum length and "smart" stemming. The result is
// a Dictionary of tokens and the per-document token frequencies.
package corpus

import (
	"sort"

	"github.com/litstudy/litplot/docset"
)

// Dictionary maps tokens to dense integer ids in order of first
// appearance.
type Dictionary struct {
	tokens []string
	ids    map[string]int
}

// NewDictionary returns a dictionary containing tokens, with ids
// assigned in order. Duplicate tokens keep their first id.
func NewDictionary(tokens ...string) *Dictionary {
	d := &Dictionary{ids: make(map[string]int)}
	for _, t := range tokens {
		d.add(t)
	}
	return d
}

func (d *Dictionary) add(tok string) int {
	if id, ok := d.ids[tok]; ok {
		return id
	}
	id := len(d.tokens)
	d.tokens = append(d.tokens, tok)
	d.ids[tok] = id
	return id
}

// Len returns the number of distinct tokens.
func (d *Dictionary) Len() int {
	return len(d.tokens)
}

// Token returns the token with the given id.
func (d *Dictionary) Token(id int) string {
	return d.tokens[id]
}

// ID returns the id of tok.
func (d *Dictionary) ID(tok string) (int, bool) {
	id, ok := d.ids[tok]
	return id, ok
}

// TokenCount is the frequency of one token in one document.
type TokenCount struct {
	ID    int
	Count int
}

// Corpus is a tokenized document collection.
type Corpus struct {
	Dict *Dictionary

	// Freqs[i] is the bag of words of document i, sorted by ID.
	Freqs [][]TokenCount

	// Texts[i] is the filtered token sequence of document i.
	Texts [][]string
}

// FromTexts builds a corpus from already filtered token sequences.
func FromTexts(texts [][]string) *Corpus {
	c := &Corpus{
		Dict:  NewDictionary(),
		Freqs: make([][]TokenCount, len(texts)),
		Texts: texts,
	}
	for i, text := range texts {
		counts := make(map[int]int)
		for _, tok := range text {
			counts[c.Dict.add(tok)]++
		}
		bag := make([]TokenCount, 0, len(counts))
		for id, n := range counts {
			bag = append(bag, TokenCount{id, n})
		}
		sort.Slice(bag, func(i, j int) bool { return bag[i].ID < bag[j].ID })
		c.Freqs[i] = bag
	}
	return c
}

// Len returns the number of documents in c.
func (c *Corpus) Len() int {
	return len(c.Freqs)
}

// Totals returns the frequency of each token summed over all
// documents, indexed by token id.
func (c *Corpus) Totals() []int {
	totals := make([]int, c.Dict.Len())
	for _, bag := range c.Freqs {
		for _, tc := range bag {
			totals[tc.ID] += tc.Count
		}
	}
	return totals
}

// Bigrams returns a corpus whose tokens are the adjacent token pairs
// of c, written "a b".
func Bigrams(c *Corpus) *Corpus {
	texts := make([][]string, len(c.Texts))
	for i, text := range c.Texts {
		for j := 0; j+1 < len(text); j++ {
			texts[i] = append(texts[i], text[j]+" "+text[j+1])
		}
	}
	return FromTexts(texts)
}

// Options configures Build.
type Options struct {
	// Stopwords are removed in addition to the default English
	// stop words.
	Stopwords []string

	// Bigrams maps adjacent token pairs to a single merged token.
	Bigrams map[[2]string]string

	// MinLength is the minimum token length in runes. Zero means 2.
	MinLength int
}

// Build tokenizes the title and abstract of every document and
// returns the filtered corpus.
func Build(docs []*docset.Document, opts Options) (*Corpus, error) {
	minLen := opts.MinLength
	if minLen == 0 {
		minLen = 2
	}
	stop := make(map[string]bool, len(opts.Stopwords))
	for _, w := range opts.Stopwords {
		stop[w] = true
	}

	texts := make([][]string, len(docs))
	for i, d := range docs {
		title, abstract := d.Title, d.Abstract
		if title == "" {
			title = " "
		}
		if abstract == "" {
			abstract = " "
		}
		texts[i] = Tokenize(title + " " + abstract)
	}

	for i, text := range texts {
		text = mergeBigrams(text, opts.Bigrams)
		text = filter(text, func(tok string) bool { return !defaultStopwords[tok] })
		text = filter(text, func(tok string) bool { return !stop[tok] })
		text = filter(text, func(tok string) bool { return runeLen(tok) >= minLen })
		texts[i] = text
	}

	texts, err := stemSmart(texts)
	if err != nil {
		return nil, err
	}
	return FromTexts(texts), nil
}

func filter(text []string, keep func(string) bool) []string {
	out := text[:0]
	for _, tok := range text {
		if keep(tok) {
			out = append(out, tok)
		}
	}
	return out
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// mergeBigrams replaces each adjacent pair found in bigrams by its
// merged token. A merged token can merge again with its successor.
func mergeBigrams(text []string, bigrams map[[2]string]string) []string {
	if len(bigrams) == 0 {
		return text
	}
	out := append([]string(nil), text...)
	for i := 0; i+1 < len(out); {
		if m, ok := bigrams[[2]string{out[i], out[i+1]}]; ok {
			out[i] = m
			out = append(out[:i+1], out[i+2:]...)
		} else {
			i++
		}
	}
	return out
}

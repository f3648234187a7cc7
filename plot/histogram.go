// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/cockroachdb/errors"
	"github.com/litstudy/litplot/chart"
	"github.com/litstudy/litplot/clean"
	"github.com/litstudy/litplot/corpus"
	"github.com/litstudy/litplot/docset"
	"github.com/litstudy/litplot/internal/logger"
	"go.uber.org/zap"
)

const (
	labelPublications = "No. publications"
	labelOccurrences  = "No. occurrences"
)

// YearHistogram plots the number of documents per year, for every year
// from the earliest to the latest.
func YearHistogram(ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
	first, last, found := 0, 0, false
	for _, d := range s.Docs {
		if d.Year == nil {
			continue
		}
		y := *d.Year
		if !found || y < first {
			first = y
		}
		if !found || y > last {
			last = y
		}
		found = true
	}
	if !found {
		return nil, ErrNoYears
	}
	var years []string
	for y := first; y <= last; y++ {
		years = append(years, strconv.Itoa(y))
	}
	return Statistic(ax, s.Docs, yearKey, Options{
		Keys:     years,
		Vertical: true,
		Label:    labelPublications,
		Title:    "Publications per year",
	}), nil
}

func yearKey(d *docset.Document) []string {
	if d.Year == nil {
		return nil
	}
	return []string{strconv.Itoa(*d.Year)}
}

// AuthorHistogram plots the number of documents of the topK most
// prolific authors. Authors are told apart by name only.
func AuthorHistogram(ax *chart.Axes, s *docset.DocumentSet, topK int) *table.Table {
	return Statistic(ax, s.Docs, docset.AuthorNames, Options{
		TopK:  topK,
		Label: labelPublications,
		Title: "Publications per author",
	})
}

// AuthorAffiliationHistogram is like AuthorHistogram but tells authors
// apart by name and affiliation.
func AuthorAffiliationHistogram(ax *chart.Axes, s *docset.DocumentSet, topK int) *table.Table {
	return Statistic(ax, s.Docs, docset.AuthorAffiliations, Options{
		TopK:  topK,
		Label: labelPublications,
		Title: "Publications per author+affiliation",
	})
}

// maxAuthors is the largest author count NumberAuthorsHistogram shows.
const maxAuthors = 25

// NumberAuthorsHistogram plots how many documents have 1 to 25
// distinct authors.
func NumberAuthorsHistogram(ax *chart.Axes, s *docset.DocumentSet) *table.Table {
	keys := make([]string, maxAuthors)
	for i := range keys {
		keys[i] = strconv.Itoa(i + 1)
	}
	return Statistic(ax, s.Docs, numAuthorsKey, Options{
		Keys:     keys,
		Vertical: true,
		Label:    labelPublications,
		Title:    "Histogram for number of authors",
	})
}

func numAuthorsKey(d *docset.Document) []string {
	n := len(docset.AuthorNames(d))
	if n == 0 {
		return nil
	}
	return []string{strconv.Itoa(n)}
}

// SourceTypeHistogram plots the number of documents per source type,
// such as journal or conference.
func SourceTypeHistogram(ax *chart.Axes, s *docset.DocumentSet) *table.Table {
	return Statistic(ax, s.Docs, func(d *docset.Document) []string {
		return []string{d.SourceType}
	}, Options{
		Label: labelPublications,
		Title: "Publication per source type",
	})
}

// SourceHistogram plots the number of documents of the topK most
// common sources. If cl is not nil, source names are merged through
// its translation file first.
func SourceHistogram(ax *chart.Axes, s *docset.DocumentSet, topK int, cl *Cleaner) (*table.Table, error) {
	key := Key(func(d *docset.Document) []string { return []string{d.Source} })
	key, err := cl.wrap(s.Docs, key)
	if err != nil {
		return nil, err
	}
	return Statistic(ax, s.Docs, key, Options{
		TopK:  topK,
		Label: labelPublications,
		Title: "Publications per source",
	}), nil
}

// AffiliationHistogram plots the number of documents of the topK most
// common affiliations. If cl is not nil, affiliation names are merged
// through its translation file first.
func AffiliationHistogram(ax *chart.Axes, s *docset.DocumentSet, topK int, cl *Cleaner) (*table.Table, error) {
	key := Key(func(d *docset.Document) []string { return docset.Affiliations(d, docset.AttrName) })
	key, err := cl.wrap(s.Docs, key)
	if err != nil {
		return nil, err
	}
	return Statistic(ax, s.Docs, key, Options{
		TopK:  topK,
		Label: labelPublications,
		Title: "Publications per affiliation",
	}), nil
}

// CountryHistogram plots the number of documents per country of the
// authors' affiliations.
func CountryHistogram(ax *chart.Axes, s *docset.DocumentSet, topK int) *table.Table {
	return Statistic(ax, s.Docs, func(d *docset.Document) []string {
		return docset.Affiliations(d, docset.AttrCountry)
	}, Options{
		TopK:  topK,
		Label: labelPublications,
		Title: "Publications per country of affiliations",
	})
}

// AffiliationTypeHistogram plots the number of documents per type of
// affiliation, such as university or company.
func AffiliationTypeHistogram(ax *chart.Axes, s *docset.DocumentSet, topK int) *table.Table {
	return Statistic(ax, s.Docs, func(d *docset.Document) []string {
		return docset.Affiliations(d, docset.AttrType)
	}, Options{
		TopK:  topK,
		Label: labelPublications,
		Title: "Publications per type of affiliation",
	})
}

// LanguageHistogram plots the number of documents per language.
func LanguageHistogram(ax *chart.Axes, s *docset.DocumentSet) *table.Table {
	return Statistic(ax, s.Docs, func(d *docset.Document) []string {
		return []string{d.Language}
	}, Options{
		Label: labelPublications,
		Title: "Publications per source language",
	})
}

// WordsHistogram plots the topK most frequent tokens of c.
func WordsHistogram(ax *chart.Axes, c *corpus.Corpus, topK int) *table.Table {
	return StatisticCount(ax, tokenCounts(c), Options{
		TopK:  topK,
		Label: labelOccurrences,
	})
}

// BigramHistogram plots the topK most frequent pairs of adjacent
// tokens of c.
func BigramHistogram(ax *chart.Axes, c *corpus.Corpus, topK int) *table.Table {
	return StatisticCount(ax, tokenCounts(corpus.Bigrams(c)), Options{
		TopK:  topK,
		Label: labelOccurrences,
	})
}

func tokenCounts(c *corpus.Corpus) *Counts {
	counts := NewCounts()
	for _, bag := range c.Freqs {
		for _, tc := range bag {
			counts.Add(c.Dict.Token(tc.ID), tc.Count)
		}
	}
	return counts
}

// Cleaner merges spelling variants of names before they are counted.
type Cleaner struct {
	// Path is the translation file. A missing file has no merges.
	Path string

	// MaxDistance bounds the edit distance between names suggested
	// for merging.
	MaxDistance int

	Logger *zap.Logger
}

// wrap returns key with merges from cl's translation file applied.
// Names that look alike but are not yet decided are recorded as
// suggestions in the file. A nil cl returns key unchanged.
func (cl *Cleaner) wrap(docs []*docset.Document, key Key) (Key, error) {
	if cl == nil {
		return key, nil
	}
	log := logger.OrNop(cl.Logger)
	t, err := clean.Load(cl.Path)
	if err != nil {
		return nil, err
	}
	groups := t.Suggest(Count(docs, key).Map(), cl.MaxDistance)
	if len(groups) > 0 {
		t.AddSuggestions(groups)
		if err := t.Save(cl.Path); err != nil {
			return nil, errors.Wrapf(err, "saving suggestions to %s", cl.Path)
		}
		log.Info("recorded merge suggestions",
			zap.Int("groups", len(groups)), zap.String("file", cl.Path))
	}
	log.Debug("applying merges", zap.Int("canonical", len(t.Merges)), zap.String("file", cl.Path))
	return func(d *docset.Document) []string {
		return t.ApplyAll(key(d))
	}, nil
}

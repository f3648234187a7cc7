// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/litstudy/litplot/chart"
	"github.com/litstudy/litplot/clean"
	"github.com/litstudy/litplot/corpus"
	"github.com/litstudy/litplot/docset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func year(y int) *int { return &y }

func author(name string, affs ...*docset.Affiliation) *docset.Author {
	return &docset.Author{Name: name, Affiliations: affs}
}

func testSet() *docset.DocumentSet {
	uva := &docset.Affiliation{Name: "UvA", Country: "Netherlands", Type: "academic"}
	esc := &docset.Affiliation{Name: "eScience Center", Country: "Netherlands", Type: "research"}
	mit := &docset.Affiliation{Name: "MIT", Country: "USA", Type: "academic"}
	return &docset.DocumentSet{Docs: []*docset.Document{
		{Year: year(2018), Authors: []*docset.Author{author("Ada", uva), author("Bob", esc)}, Source: "Nature", SourceType: "journal", Language: "English"},
		{Year: year(2020), Authors: []*docset.Author{author("Ada", uva, esc)}, Source: "Science", SourceType: "journal", Language: "English"},
		{Year: year(2020), Authors: []*docset.Author{author("Cy", mit), author("Ada"), author("Ada")}, Source: "Nature", SourceType: "conference", Language: "German"},
		{Authors: nil, Source: "", Language: "English"},
	}}
}

func column(tab *table.Table, name string) table.Slice {
	return tab.Column(name)
}

func TestCount(t *testing.T) {
	c := Count(testSet().Docs, docset.AuthorNames)
	assert.Equal(t, []string{"Ada", "Bob", "Cy"}, c.Keys())
	assert.Equal(t, 3, c.Get("Ada"))
	assert.Equal(t, 1, c.Get("Bob"))
	assert.Equal(t, 0, c.Get("Dee"))

	c = Count(testSet().Docs, func(d *docset.Document) []string { return []string{d.Source, d.Source} })
	assert.Equal(t, []string{"Nature", "Science"}, c.Keys())
	assert.Equal(t, 4, c.Get("Nature"))
}

func TestTopK(t *testing.T) {
	c := NewCounts()
	c.Add("a", 2)
	c.Add("b", 1)
	c.Add("c", 2)
	c.Add("d", 1)
	assert.Equal(t, []string{"c", "a", "d"}, c.TopK(3))
	assert.Equal(t, []string{"c", "a", "d", "b"}, c.TopK(10))
	assert.Empty(t, NewCounts().TopK(5))
}

func TestStatisticHorizontal(t *testing.T) {
	fig := chart.NewFigure(400, 300)
	ax := fig.Axes()
	c := NewCounts()
	c.Add("first", 5)
	c.Add("second", 3)
	c.Add(strings.Repeat("x", 60), 1)
	tab := StatisticCount(ax, c, Options{Label: "n", Title: "T"})

	assert.Equal(t, []string{"first", "second", strings.Repeat("x", 60)}, column(tab, "key"))
	assert.Equal(t, []int{5, 3, 1}, column(tab, "count"))

	bars := ax.Bars()
	require.Len(t, bars, 1)
	assert.True(t, bars[0].Horizontal)
	// The first key is drawn at the top, which BarH puts last.
	assert.Equal(t, []string{strings.Repeat("x", 50), "second", "first"}, bars[0].Labels)
	assert.Equal(t, []float64{1, 3, 5}, bars[0].Values)
	assert.Equal(t, "n", ax.XLabel())
	assert.Equal(t, "T", ax.Title())
}

func TestStatisticKeys(t *testing.T) {
	ax := chart.NewFigure(400, 300).Axes()
	c := NewCounts()
	c.Add("b", 2)
	StatisticCount(ax, c, Options{Keys: []string{"a", "b"}, Vertical: true, Label: "n"})
	bars := ax.Bars()
	require.Len(t, bars, 1)
	assert.False(t, bars[0].Horizontal)
	assert.Equal(t, []string{"a", "b"}, bars[0].Labels)
	assert.Equal(t, []float64{0, 2}, bars[0].Values)
	assert.Equal(t, "n", ax.YLabel())
	assert.Equal(t, "", ax.Title())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo", 5))
	assert.Equal(t, "hé", truncate("héllo", 2))
	assert.Equal(t, "", truncate("", 2))
}

func TestYearHistogram(t *testing.T) {
	ax := chart.NewFigure(400, 300).Axes()
	tab, err := YearHistogram(ax, testSet())
	require.NoError(t, err)
	assert.Equal(t, []string{"2018", "2019", "2020"}, column(tab, "key"))
	assert.Equal(t, []int{1, 0, 2}, column(tab, "count"))
	assert.Equal(t, "Publications per year", ax.Title())
	assert.False(t, ax.Bars()[0].Horizontal)

	_, err = YearHistogram(ax, &docset.DocumentSet{Docs: []*docset.Document{{}}})
	assert.ErrorIs(t, err, ErrNoYears)
}

func TestMetadataHistograms(t *testing.T) {
	s := testSet()
	for _, test := range []struct {
		name  string
		plot  func(ax *chart.Axes) (*table.Table, error)
		title string
		keys  []string
		count []int
	}{
		{
			"author",
			func(ax *chart.Axes) (*table.Table, error) { return AuthorHistogram(ax, s, 2), nil },
			"Publications per author",
			[]string{"Ada", "Cy"}, []int{3, 1},
		},
		{
			"author+affiliation",
			func(ax *chart.Axes) (*table.Table, error) { return AuthorAffiliationHistogram(ax, s, 30), nil },
			"Publications per author+affiliation",
			[]string{"Ada, UvA", "Ada, Unknown", "Cy, MIT", "Ada, eScience Center", "Bob, eScience Center"},
			[]int{2, 1, 1, 1, 1},
		},
		{
			"source type",
			func(ax *chart.Axes) (*table.Table, error) { return SourceTypeHistogram(ax, s), nil },
			"Publication per source type",
			[]string{"journal", "conference"}, []int{2, 1},
		},
		{
			"source",
			func(ax *chart.Axes) (*table.Table, error) { return SourceHistogram(ax, s, 10, nil) },
			"Publications per source",
			[]string{"Nature", "Science"}, []int{2, 1},
		},
		{
			"affiliation",
			func(ax *chart.Axes) (*table.Table, error) { return AffiliationHistogram(ax, s, 10, nil) },
			"Publications per affiliation",
			[]string{"eScience Center", "UvA", "MIT"}, []int{2, 2, 1},
		},
		{
			"country",
			func(ax *chart.Axes) (*table.Table, error) { return CountryHistogram(ax, s, 10), nil },
			"Publications per country of affiliations",
			[]string{"Netherlands", "USA"}, []int{2, 1},
		},
		{
			"affiliation type",
			func(ax *chart.Axes) (*table.Table, error) { return AffiliationTypeHistogram(ax, s, 10), nil },
			"Publications per type of affiliation",
			[]string{"academic", "research"}, []int{3, 2},
		},
		{
			"language",
			func(ax *chart.Axes) (*table.Table, error) { return LanguageHistogram(ax, s), nil },
			"Publications per source language",
			[]string{"English", "German"}, []int{3, 1},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			ax := chart.NewFigure(400, 300).Axes()
			tab, err := test.plot(ax)
			require.NoError(t, err)
			assert.Equal(t, test.keys, column(tab, "key"))
			assert.Equal(t, test.count, column(tab, "count"))
			assert.Equal(t, test.title, ax.Title())
			assert.Equal(t, "No. publications", ax.XLabel())
			require.Len(t, ax.Bars(), 1)
			assert.True(t, ax.Bars()[0].Horizontal)
		})
	}
}

func TestNumberAuthorsHistogram(t *testing.T) {
	ax := chart.NewFigure(400, 300).Axes()
	tab := NumberAuthorsHistogram(ax, testSet())
	keys := column(tab, "key").([]string)
	counts := column(tab, "count").([]int)
	require.Len(t, keys, 25)
	assert.Equal(t, "1", keys[0])
	assert.Equal(t, "25", keys[24])
	assert.Equal(t, []int{1, 2, 0}, counts[:3])
	assert.Equal(t, "No. publications", ax.YLabel())
}

func testCorpus() *corpus.Corpus {
	return corpus.FromTexts([][]string{
		{"graph", "neural", "network"},
		{"neural", "network", "model"},
		{"graph", "model", "neural", "network"},
	})
}

func TestWordsHistogram(t *testing.T) {
	ax := chart.NewFigure(400, 300).Axes()
	tab := WordsHistogram(ax, testCorpus(), 2)
	assert.Equal(t, []string{"network", "neural"}, column(tab, "key"))
	assert.Equal(t, []int{3, 3}, column(tab, "count"))
	assert.Equal(t, "No. occurrences", ax.XLabel())
	assert.Equal(t, "", ax.Title())
}

func TestBigramHistogram(t *testing.T) {
	ax := chart.NewFigure(400, 300).Axes()
	tab := BigramHistogram(ax, testCorpus(), 1)
	assert.Equal(t, []string{"neural network"}, column(tab, "key"))
	assert.Equal(t, []int{3}, column(tab, "count"))
	assert.Equal(t, "No. occurrences", ax.XLabel())
}

func TestCleaner(t *testing.T) {
	s := &docset.DocumentSet{Docs: []*docset.Document{
		{Source: "Journal of Things"},
		{Source: "Journal of Things"},
		{Source: "Journal of things."},
		{Source: "Other"},
	}}
	cl := &Cleaner{Path: filepath.Join(t.TempDir(), "translations_sources.yml"), MaxDistance: 3}

	ax := chart.NewFigure(400, 300).Axes()
	tab, err := SourceHistogram(ax, s, 10, cl)
	require.NoError(t, err)
	// Suggestions are recorded but not applied.
	assert.Equal(t, []int{2, 1, 1}, column(tab, "count"))
	tr, err := clean.Load(cl.Path)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"Journal of Things": {"Journal of things."}}, tr.Suggestions)

	tr.Merges = tr.Suggestions
	tr.Suggestions = nil
	require.NoError(t, tr.Save(cl.Path))

	ax = chart.NewFigure(400, 300).Axes()
	tab, err = SourceHistogram(ax, s, 10, cl)
	require.NoError(t, err)
	assert.Equal(t, []string{"Journal of Things", "Other"}, column(tab, "key"))
	assert.Equal(t, []int{3, 1}, column(tab, "count"))
}

func TestTableOutput(t *testing.T) {
	c := NewCounts()
	c.Add("Ada", 3)
	c.Add("Bob", 1)
	var buf bytes.Buffer
	table.Fprint(&buf, c.Table(nil))
	assert.Equal(t, "key  count\nAda      3\nBob      1\n", buf.String())
}

// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot draws exploratory plots of a document set onto chart
// axes: bar chart histograms of document metadata and word
// frequencies, word clouds of topic models and a topic map of the
// documents.
//
// Histogram functions return the table of keys and counts they drew,
// first bar first.
package plot

import (
	"github.com/aclements/go-gg/table"
	"github.com/cockroachdb/errors"
	"github.com/litstudy/litplot/chart"
	"github.com/litstudy/litplot/docset"
)

var (
	// ErrNoYears is returned by YearHistogram when no document has
	// a year.
	ErrNoYears = errors.New("no document has a publication year")

	// ErrTooManyTopics is returned by TopicMap when there are more
	// topics than letters to label them with.
	ErrTooManyTopics = errors.New("topic map supports at most 26 topics")
)

// maxLabel is the length in runes at which tick labels are cut.
const maxLabel = 50

// Options controls which keys a statistic plot shows and how.
type Options struct {
	// Keys, if not nil, are the keys to plot, in order. Keys that
	// were never counted plot as zero.
	Keys []string

	// TopK, if Keys is nil and TopK > 0, plots the TopK keys with
	// the highest counts. Otherwise all keys are plotted in the
	// order they were first counted.
	TopK int

	// Vertical draws vertical bars left to right. The default is
	// horizontal bars with the first key at the top.
	Vertical bool

	// Label is the label of the count axis.
	Label string

	Title string
}

// Statistic counts key over docs and plots the counts on ax.
func Statistic(ax *chart.Axes, docs []*docset.Document, key Key, opts Options) *table.Table {
	return StatisticCount(ax, Count(docs, key), opts)
}

// StatisticCount plots already computed counts on ax.
func StatisticCount(ax *chart.Axes, c *Counts, opts Options) *table.Table {
	var keys []string
	switch {
	case opts.Keys != nil:
		keys = opts.Keys
	case opts.TopK > 0:
		keys = c.TopK(opts.TopK)
	default:
		keys = c.Keys()
	}

	if opts.Title != "" {
		ax.SetTitle(opts.Title)
	}

	n := len(keys)
	labels := make([]string, n)
	values := make([]float64, n)
	for i, k := range keys {
		j := i
		if !opts.Vertical {
			// BarH stacks from the bottom.
			j = n - 1 - i
		}
		labels[j] = truncate(k, maxLabel)
		values[j] = float64(c.Get(k))
	}
	if opts.Vertical {
		ax.SetYLabel(opts.Label)
		ax.Bar(labels, values)
	} else {
		ax.SetXLabel(opts.Label)
		ax.BarH(labels, values)
	}
	return c.Table(keys)
}

func truncate(s string, n int) string {
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}

// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/litstudy/litplot/chart"
	"github.com/litstudy/litplot/docset"
	"github.com/litstudy/litplot/plot"
	"github.com/spf13/cobra"
)

type histogram struct {
	name  string
	short string
	plot  func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error)
}

var histograms = []histogram{
	{"year", "Documents per publication year", func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
		return plot.YearHistogram(ax, s)
	}},
	{"authors", "Documents per author", func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
		return plot.AuthorHistogram(ax, s, a.cfg.TopK.Authors), nil
	}},
	{"author-affiliations", "Documents per author and affiliation", func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
		return plot.AuthorAffiliationHistogram(ax, s, a.cfg.TopK.AuthorAffiliations), nil
	}},
	{"num-authors", "Documents per number of authors", func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
		return plot.NumberAuthorsHistogram(ax, s), nil
	}},
	{"source-types", "Documents per source type", func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
		return plot.SourceTypeHistogram(ax, s), nil
	}},
	{"sources", "Documents per source", func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
		return plot.SourceHistogram(ax, s, a.cfg.TopK.Sources, a.cleaner(a.cfg.Clean.Sources))
	}},
	{"affiliations", "Documents per affiliation", func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
		return plot.AffiliationHistogram(ax, s, a.cfg.TopK.Affiliations, a.cleaner(a.cfg.Clean.Affiliations))
	}},
	{"countries", "Documents per affiliation country", func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
		return plot.CountryHistogram(ax, s, a.cfg.TopK.Countries), nil
	}},
	{"affiliation-types", "Documents per affiliation type", func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
		return plot.AffiliationTypeHistogram(ax, s, a.cfg.TopK.AffiliationTypes), nil
	}},
	{"languages", "Documents per language", func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
		return plot.LanguageHistogram(ax, s), nil
	}},
	{"words", "Most frequent words of titles and abstracts", func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
		c, err := a.corpus(s)
		if err != nil {
			return nil, err
		}
		return plot.WordsHistogram(ax, c, a.cfg.TopK.Words), nil
	}},
	{"bigrams", "Most frequent adjacent word pairs", func(a *app, ax *chart.Axes, s *docset.DocumentSet) (*table.Table, error) {
		c, err := a.corpus(s)
		if err != nil {
			return nil, err
		}
		return plot.BigramHistogram(ax, c, a.cfg.TopK.Bigrams), nil
	}},
}

func (a *app) histogramCmd(h histogram) *cobra.Command {
	return &cobra.Command{
		Use:   h.name + " [docs]",
		Short: h.short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(cmd, args)
			if err != nil {
				return err
			}
			fig := chart.NewFigure(a.cfg.Width, a.cfg.Height)
			tab, err := h.plot(a, fig.Axes(), s)
			if err != nil {
				return err
			}
			if a.table {
				return a.output(cmd, func(w io.Writer) error {
					table.Fprint(w, tab)
					return nil
				})
			}
			return a.output(cmd, fig.WriteSVG)
		},
	}
}

// cleaner returns the name cleaner for the given translation file, or
// nil if cleaning is off.
func (a *app) cleaner(path string) *plot.Cleaner {
	if !a.cfg.Clean.Enabled {
		return nil
	}
	return &plot.Cleaner{
		Path:        path,
		MaxDistance: a.cfg.Clean.MaxDistance,
		Logger:      a.log,
	}
}

// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/png"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/litstudy/litplot/chart"
	"github.com/litstudy/litplot/corpus"
	"github.com/litstudy/litplot/docset"
	"github.com/litstudy/litplot/embedding"
	"github.com/litstudy/litplot/plot"
	"github.com/litstudy/litplot/topic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// corpus builds the bag-of-words corpus of s.
func (a *app) corpus(s *docset.DocumentSet) (*corpus.Corpus, error) {
	opts := corpus.Options{MinLength: a.cfg.Corpus.MinLength}
	var err error
	if p := a.cfg.Corpus.Stopwords; p != "" {
		if opts.Stopwords, err = corpus.LoadStopwords(p); err != nil {
			return nil, err
		}
	}
	if p := a.cfg.Corpus.Bigrams; p != "" {
		if opts.Bigrams, err = corpus.LoadBigrams(p); err != nil {
			return nil, err
		}
	}
	c, err := corpus.Build(s.Docs, opts)
	if err != nil {
		return nil, err
	}
	a.log.Debug("built corpus", zap.Int("docs", c.Len()), zap.Int("tokens", c.Dict.Len()))
	return c, nil
}

// model trains the configured topic model on c.
func (a *app) model(c *corpus.Corpus) (*topic.Model, error) {
	t := a.cfg.Topics
	opts := topic.Options{MaxIter: t.MaxIter, Seed: a.cfg.Seed, Logger: a.log}
	a.log.Info("training topic model", zap.String("model", t.Model), zap.Int("topics", t.Count))
	if t.Model == "lda" {
		return topic.TrainLDA(c, t.Count, opts)
	}
	return topic.TrainNMF(c, t.Count, opts)
}

func (a *app) loadModel(cmd *cobra.Command, args []string) (*topic.Model, *corpus.Corpus, error) {
	s, err := a.load(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	c, err := a.corpus(s)
	if err != nil {
		return nil, nil, err
	}
	m, err := a.model(c)
	if err != nil {
		return nil, nil, err
	}
	return m, c, nil
}

func (a *app) cloudOptions() plot.CloudOptions {
	return plot.CloudOptions{
		MaxFontSize: float64(a.cfg.Topics.MaxFontSize),
		Seed:        a.cfg.Seed,
	}
}

func (a *app) cloudsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clouds [docs]",
		Short: "Word clouds of every topic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := a.loadModel(cmd, args)
			if err != nil {
				return err
			}
			fig := chart.NewFigure(a.cfg.Width, a.cfg.Height)
			if err := plot.TopicClouds(fig, m, a.cfg.Topics.CloudCols, a.cloudOptions()); err != nil {
				return err
			}
			return a.output(cmd, fig.WriteSVG)
		},
	}
}

func (a *app) cloudCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cloud docs topic",
		Short: "Word cloud of one topic; written as PNG if the output ends in .png",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrapf(err, "topic number %q", args[1])
			}
			m, _, err := a.loadModel(cmd, args[:1])
			if err != nil {
				return err
			}
			if strings.EqualFold(filepath.Ext(a.out), ".png") {
				wc, err := plot.GenerateTopicCloud(m, t, a.cloudOptions())
				if err != nil {
					return err
				}
				img, err := wc.Image()
				if err != nil {
					return err
				}
				return a.output(cmd, func(w io.Writer) error {
					return errors.Wrap(png.Encode(w, img), "encoding PNG")
				})
			}
			fig := chart.NewFigure(a.cfg.Width, a.cfg.Height)
			if err := plot.TopicCloud(fig.Axes(), m, t, a.cloudOptions()); err != nil {
				return err
			}
			return a.output(cmd, fig.WriteSVG)
		},
	}
}

func (a *app) topicMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topic-map [docs]",
		Short: "Documents embedded by similarity and colored by topic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, c, err := a.loadModel(cmd, args)
			if err != nil {
				return err
			}
			fig := chart.NewFigure(a.cfg.Width, a.cfg.Height)
			err = plot.TopicMap(fig.Axes(), m, c, plot.MapOptions{
				Seed: a.cfg.Seed,
				Embedding: embedding.Options{
					Perplexity: a.cfg.Topics.Perplexity,
					Logger:     a.log,
				},
			})
			if err != nil {
				return err
			}
			return a.output(cmd, fig.WriteSVG)
		},
	}
}

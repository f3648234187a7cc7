// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
	"github.com/cockroachdb/errors"
	"github.com/litstudy/litplot/chart"
	"github.com/litstudy/litplot/topic"
	"github.com/litstudy/litplot/wordcloud"
)

// cloudWords is the number of tokens per topic cloud.
const cloudWords = 100

// CloudOptions configures topic word clouds. Zero fields take the
// defaults noted.
type CloudOptions struct {
	// Colors maps a word's size to its color (Blues).
	Colors palette.Continuous

	// MaxFontSize is the size of the heaviest word (75).
	MaxFontSize float64

	// Background is the cloud background (white).
	Background color.Color

	// Seed seeds word placement. Topic t uses Seed+t.
	Seed int64
}

// GenerateTopicCloud lays out the heaviest words of topic t of m.
// Word weights are relative to the topic's heaviest word.
func GenerateTopicCloud(m *topic.Model, t int, opts CloudOptions) (*wordcloud.WordCloud, error) {
	if t < 0 || t >= m.NumTopics {
		return nil, errors.Newf("topic %d out of range [0, %d)", t, m.NumTopics)
	}
	cmap := opts.Colors
	if cmap == nil {
		cmap = Blues
	}

	row := m.TopicToken.RawRowView(t)
	maxW := 0.0
	for _, w := range row {
		maxW = max(maxW, w)
	}
	weights := make(map[string]float64)
	for _, id := range m.TopTokens(t, cloudWords) {
		if row[id] > 0 {
			weights[m.Dict.Token(id)] = row[id] / maxW
		}
	}

	wc := wordcloud.New()
	wc.MaxFontSize = 75
	if opts.MaxFontSize > 0 {
		wc.MaxFontSize = opts.MaxFontSize
	}
	wc.Background = color.White
	if opts.Background != nil {
		wc.Background = opts.Background
	}
	wc.Scale = 2
	wc.RelativeScaling = 0.5
	wc.Seed = opts.Seed + int64(t)
	wc.ColorFunc = func(_ string, size float64) color.Color {
		return cmap.Map(size/75*0.7 + 0.3)
	}
	if err := wc.FitWords(weights); err != nil {
		return nil, errors.Wrapf(err, "word cloud of topic %d", t)
	}
	return wc, nil
}

// TopicCloud draws the word cloud of topic t on ax.
func TopicCloud(ax *chart.Axes, m *topic.Model, t int, opts CloudOptions) error {
	ax.HideTicks()
	wc, err := GenerateTopicCloud(m, t, opts)
	if err != nil {
		return err
	}
	img, err := wc.Image()
	if err != nil {
		return err
	}
	ax.Image(img)
	return nil
}

// TopicClouds clears fig and draws the word cloud of every topic of m
// on a grid with cols columns (3 if cols <= 0).
func TopicClouds(fig *chart.Figure, m *topic.Model, cols int, opts CloudOptions) error {
	if cols <= 0 {
		cols = 3
	}
	fig.Clear()
	rows := (m.NumTopics + cols - 1) / cols
	for t := 0; t < m.NumTopics; t++ {
		if err := TopicCloud(fig.Subplot(rows, cols, t+1), m, t, opts); err != nil {
			return err
		}
	}
	return nil
}

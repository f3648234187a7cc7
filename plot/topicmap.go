// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"math/rand"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/cockroachdb/errors"
	"github.com/litstudy/litplot/chart"
	"github.com/litstudy/litplot/corpus"
	"github.com/litstudy/litplot/embedding"
	"github.com/litstudy/litplot/topic"
	"gonum.org/v1/gonum/mat"
)

const topicLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Sizes of topic map marks, in pixels.
const (
	dotRadius    = 7
	dotLabelSize = 8
	legendSize   = 11
)

// MapOptions configures TopicMap.
type MapOptions struct {
	// Seed sets the order in which documents are drawn.
	Seed int64

	Embedding embedding.Options
}

// TopicMap embeds the documents of c in the plane by textual
// similarity and draws one dot per document, colored and lettered by
// the topic of m the document leans to most compared to the average
// document. A legend lists the top three tokens of each topic.
func TopicMap(ax *chart.Axes, m *topic.Model, c *corpus.Corpus, opts MapOptions) error {
	k := m.NumTopics
	if k > len(topicLetters) {
		return errors.Wrapf(ErrTooManyTopics, "model has %d topics", k)
	}
	n := m.NumDocuments()
	if n != c.Len() {
		return errors.Wrapf(topic.ErrDimension, "model has %d documents but corpus has %d", n, c.Len())
	}

	tfidf, err := topic.TFIDF(c)
	if err != nil {
		return err
	}
	pos, err := embedding.Embed(tfidf, opts.Embedding)
	if err != nil {
		return errors.Wrap(err, "embedding documents")
	}
	embedding.Normalize(pos)

	ax.HideTicks()
	ax.SetXLim(0, 1)
	ax.SetYLim(0, 1)

	dom := dominantTopics(m.DocTopic)
	rng := rand.New(rand.NewSource(opts.Seed))
	for _, i := range rng.Perm(n) {
		drawDot(ax, k, pos.At(i, 0), pos.At(i, 1), dom[i])
	}

	for t := 0; t < k; t++ {
		y := 0.95 - 0.05*float64(t)
		var words []string
		for _, id := range m.TopTokens(t, 3) {
			words = append(words, m.Dict.Token(id))
		}
		drawDot(ax, k, 0.015, y, t)
		ax.Text(0.03, y, strings.Join(words, ", "), chart.TextStyle{
			Size:   legendSize,
			Middle: true,
		})
	}
	return nil
}

// dominantTopics returns, for each row of docTopic, the column that
// exceeds its column mean by the most. Ties go to the lowest column.
func dominantTopics(docTopic *mat.Dense) []int {
	n, k := docTopic.Dims()
	avg := make([]float64, k)
	for t := range avg {
		avg[t] = stats.Mean(mat.Col(nil, t, docTopic))
	}
	dom := make([]int, n)
	for i := range dom {
		row := docTopic.RawRowView(i)
		best := 0
		for t := 1; t < k; t++ {
			if row[t]-avg[t] > row[best]-avg[best] {
				best = t
			}
		}
		dom[i] = best
	}
	return dom
}

func drawDot(ax *chart.Axes, k int, x, y float64, t int) {
	ax.Scatter(x, y, dotRadius, darken(Jet.Map(float64(t)/float64(k)), 0.8))
	ax.Text(x, y, topicLetters[t:t+1], chart.TextStyle{
		Size:   dotLabelSize,
		Color:  color.White,
		Bold:   true,
		Anchor: chart.AnchorCenter,
		Middle: true,
	})
}

// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/litstudy/litplot/chart"
	"github.com/litstudy/litplot/corpus"
	"github.com/litstudy/litplot/embedding"
	"github.com/litstudy/litplot/topic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// testModel returns a corpus of six documents and a two-topic model
// over it: documents 0-2 are about graphs, 3-5 about proteins.
func testModel(t *testing.T) (*topic.Model, *corpus.Corpus) {
	c := corpus.FromTexts([][]string{
		{"graph", "vertex", "edge"},
		{"graph", "edge", "path"},
		{"vertex", "graph", "path"},
		{"protein", "fold", "amino"},
		{"protein", "amino", "acid"},
		{"fold", "acid", "protein"},
	})
	docTopic := mat.NewDense(6, 2, []float64{
		0.9, 0.1,
		0.8, 0.2,
		0.7, 0.3,
		0.2, 0.8,
		0.1, 0.9,
		0.3, 0.7,
	})
	m := c.Dict.Len()
	topicToken := mat.NewDense(2, m, nil)
	for id := 0; id < m; id++ {
		tok := c.Dict.Token(id)
		switch tok {
		case "graph", "protein":
			topicToken.Set(boolTopic(tok == "protein"), id, 0.4)
		case "vertex", "fold":
			topicToken.Set(boolTopic(tok == "fold"), id, 0.3)
		case "edge", "amino":
			topicToken.Set(boolTopic(tok == "amino"), id, 0.2)
		default:
			topicToken.Set(boolTopic(tok == "acid"), id, 0.1)
		}
	}
	model, err := topic.New(c.Dict, docTopic, topicToken)
	require.NoError(t, err)
	return model, c
}

func boolTopic(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestGenerateTopicCloud(t *testing.T) {
	m, _ := testModel(t)
	wc, err := GenerateTopicCloud(m, 0, CloudOptions{})
	require.NoError(t, err)
	words := wc.Words()
	require.NotEmpty(t, words)
	assert.Equal(t, "graph", words[0].Text)
	assert.Equal(t, 1.0, words[0].Weight)
	assert.Equal(t, 75.0, words[0].Size)
	assert.Equal(t, Blues.Map(75.0/75*0.7+0.3), words[0].Color)
	for _, w := range words {
		assert.NotContains(t, []string{"protein", "fold", "amino", "acid"}, w.Text)
	}
	assert.Equal(t, 2.0, wc.Scale)
	assert.Equal(t, color.White, wc.Background)

	_, err = GenerateTopicCloud(m, 2, CloudOptions{})
	assert.Error(t, err)
}

func TestTopicClouds(t *testing.T) {
	m, _ := testModel(t)
	fig := chart.NewFigure(600, 300)
	fig.Axes().Text(0, 0, "stale", chart.TextStyle{})
	require.NoError(t, TopicClouds(fig, m, 0, CloudOptions{}))

	for i := 1; i <= 2; i++ {
		assert.Equal(t, 1, fig.Subplot(1, 3, i).Len(), "cell %d", i)
	}
	assert.Equal(t, 0, fig.Subplot(1, 3, 3).Len())

	var buf bytes.Buffer
	require.NoError(t, fig.WriteSVG(&buf))
	assert.NotContains(t, buf.String(), "stale")
	assert.Equal(t, 2, strings.Count(buf.String(), "data:image/png;base64,"))
}

func TestDominantTopics(t *testing.T) {
	docTopic := mat.NewDense(3, 3, []float64{
		0.5, 0.5, 0.0,
		0.5, 0.2, 0.3,
		0.5, 0.2, 0.3,
	})
	// Means are 0.5, 0.3, 0.2: document 0 leans to topic 1 although
	// topic 0 ties with it in absolute weight.
	assert.Equal(t, []int{1, 2, 2}, dominantTopics(docTopic))

	flat := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.5})
	assert.Equal(t, []int{0, 0}, dominantTopics(flat))
}

func TestTopicMap(t *testing.T) {
	m, c := testModel(t)
	fig := chart.NewFigure(600, 600)
	ax := fig.Axes()
	require.NoError(t, TopicMap(ax, m, c, MapOptions{Seed: 1, Embedding: embedding.Options{MaxIter: 250}}))

	// A dot and a letter per document, then per topic a dot, a
	// letter and a legend entry.
	assert.Equal(t, 2*6+3*2, ax.Len())

	var buf bytes.Buffer
	require.NoError(t, fig.WriteSVG(&buf))
	svg := buf.String()
	assert.Contains(t, svg, ">graph, vertex, edge<")
	assert.Contains(t, svg, ">protein, fold, amino<")
	assert.Equal(t, 4, strings.Count(svg, ">A<"))
	assert.Equal(t, 4, strings.Count(svg, ">B<"))
}

func TestTopicMapErrors(t *testing.T) {
	m, c := testModel(t)
	short := corpus.FromTexts(c.Texts[:3])
	err := TopicMap(chart.NewFigure(100, 100).Axes(), m, short, MapOptions{})
	assert.ErrorIs(t, err, topic.ErrDimension)

	dict := corpus.NewDictionary("x")
	big, err := topic.New(dict, mat.NewDense(1, 27, nil), mat.NewDense(27, 1, nil))
	require.NoError(t, err)
	err = TopicMap(chart.NewFigure(100, 100).Axes(), big, corpus.FromTexts([][]string{{"x"}}), MapOptions{})
	assert.ErrorIs(t, err, ErrTooManyTopics)
}

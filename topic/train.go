// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topic

import (
	"github.com/cockroachdb/errors"
	"github.com/james-bowman/nlp"
	"github.com/litstudy/litplot/corpus"
	"github.com/litstudy/litplot/internal/logger"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Options configures training.
type Options struct {
	// MaxIter bounds the optimizer iterations. Zero means 500 for
	// NMF and the nlp default for LDA.
	MaxIter int

	// Seed initializes the NMF factors.
	Seed int64

	Logger *zap.Logger
}

// CountMatrix returns the m×n token-by-document count matrix of c,
// the layout nlp transformers consume.
func CountMatrix(c *corpus.Corpus) *mat.Dense {
	m, n := c.Dict.Len(), c.Len()
	out := mat.NewDense(max(m, 1), max(n, 1), nil)
	for j, bag := range c.Freqs {
		for _, tc := range bag {
			out.Set(tc.ID, j, float64(tc.Count))
		}
	}
	return out
}

// TFIDF returns the n×m TF-IDF weighted document-by-token matrix of c.
func TFIDF(c *corpus.Corpus) (*mat.Dense, error) {
	if c.Len() == 0 || c.Dict.Len() == 0 {
		return nil, errors.New("TF-IDF of an empty corpus")
	}
	tfidf, err := nlp.NewTfidfTransformer().FitTransform(CountMatrix(c))
	if err != nil {
		return nil, errors.Wrap(err, "computing TF-IDF")
	}
	return orient(tfidf, c.Len(), c.Dict.Len(), true)
}

// TrainNMF fits a k-topic non-negative matrix factorization of the
// n×m TF-IDF matrix of c. Topic token weights are normalized to sum to
// one, and each document's topic weights are rescaled accordingly and
// then normalized to sum to one.
func TrainNMF(c *corpus.Corpus, k int, opts Options) (*Model, error) {
	log := logger.OrNop(opts.Logger)
	if c.Len() == 0 || c.Dict.Len() == 0 {
		return nil, errors.New("training NMF on an empty corpus")
	}
	if k <= 0 {
		return nil, errors.Newf("training NMF with %d topics", k)
	}
	tfidf, err := TFIDF(c)
	if err != nil {
		return nil, err
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = nmfMaxIter
	}
	log.Debug("training NMF", zap.Int("topics", k), zap.Int("docs", c.Len()), zap.Int("tokens", c.Dict.Len()))
	docTopic, topicToken := nmf(tfidf, k, maxIter, nmfTolerance, opts.Seed, log)
	normalize(docTopic, topicToken)
	return New(c.Dict, docTopic, topicToken)
}

// normalize rescales an NMF factorization in place so topic rows are
// distributions and each document's topic weights sum to one.
func normalize(docTopic, topicToken *mat.Dense) {
	k, _ := topicToken.Dims()
	n, _ := docTopic.Dims()
	for t := 0; t < k; t++ {
		row := topicToken.RawRowView(t)
		sum := mat.Sum(topicToken.RowView(t))
		if sum == 0 {
			continue
		}
		for i := range row {
			row[i] /= sum
		}
		for d := 0; d < n; d++ {
			docTopic.Set(d, t, docTopic.At(d, t)*sum)
		}
	}
	for d := 0; d < n; d++ {
		row := docTopic.RawRowView(d)
		sum := mat.Sum(docTopic.RowView(d))
		if sum == 0 {
			continue
		}
		for i := range row {
			row[i] /= sum
		}
	}
}

// TrainLDA fits a k-topic latent Dirichlet allocation on the raw
// token counts of c.
func TrainLDA(c *corpus.Corpus, k int, opts Options) (*Model, error) {
	log := logger.OrNop(opts.Logger)
	if c.Len() == 0 || c.Dict.Len() == 0 {
		return nil, errors.New("training LDA on an empty corpus")
	}
	lda := nlp.NewLatentDirichletAllocation(k)
	if opts.MaxIter > 0 {
		lda.Iterations = opts.MaxIter
	}
	log.Debug("training LDA", zap.Int("topics", k), zap.Int("docs", c.Len()))
	theta, err := lda.FitTransform(CountMatrix(c))
	if err != nil {
		return nil, errors.Wrap(err, "training LDA")
	}
	docTopic, err := orient(theta, c.Len(), k, true)
	if err != nil {
		return nil, errors.Wrap(err, "LDA document weights")
	}
	topicToken, err := orient(lda.Components(), k, c.Dict.Len(), false)
	if err != nil {
		return nil, errors.Wrap(err, "LDA components")
	}
	return New(c.Dict, docTopic, topicToken)
}

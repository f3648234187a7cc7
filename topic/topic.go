// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topic holds fitted topic models. LDA and TF-IDF come from
// github.com/james-bowman/nlp; NMF is fitted on gonum matrices.
//
// Matrices follow the row-per-item convention: DocTopic has one row
// per document and TopicToken one row per topic. Note that nlp itself
// uses one column per sample.
package topic

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/litstudy/litplot/corpus"
	"gonum.org/v1/gonum/mat"
)

// ErrDimension is returned when matrices of a model do not agree.
var ErrDimension = errors.New("topic model dimension mismatch")

// Model is a fitted topic model.
type Model struct {
	Dict *corpus.Dictionary

	// DocTopic is the n×k document-to-topic weight matrix.
	DocTopic *mat.Dense

	// TopicToken is the k×m topic-to-token weight matrix, where m is
	// Dict.Len().
	TopicToken *mat.Dense

	NumTopics int
}

// New wraps externally computed weights in a Model.
func New(dict *corpus.Dictionary, docTopic, topicToken mat.Matrix) (*Model, error) {
	_, k := docTopic.Dims()
	k2, m := topicToken.Dims()
	if k != k2 {
		return nil, errors.Wrapf(ErrDimension, "%d topics per document but %d topic rows", k, k2)
	}
	if m != dict.Len() {
		return nil, errors.Wrapf(ErrDimension, "%d token columns but %d tokens", m, dict.Len())
	}
	return &Model{
		Dict:       dict,
		DocTopic:   mat.DenseCopyOf(docTopic),
		TopicToken: mat.DenseCopyOf(topicToken),
		NumTopics:  k,
	}, nil
}

// NumDocuments returns the number of documents the model describes.
func (m *Model) NumDocuments() int {
	n, _ := m.DocTopic.Dims()
	return n
}

// TopTokens returns the ids of the n highest-weighted tokens of topic
// t, heaviest first.
func (m *Model) TopTokens(t, n int) []int {
	row := m.TopicToken.RawRowView(t)
	ids := make([]int, len(row))
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(i, j int) bool { return row[ids[i]] > row[ids[j]] })
	if n < len(ids) {
		ids = ids[:n]
	}
	return ids
}

// orient returns m as an r×c matrix. nlp stores samples in columns,
// so when colMajor is set a c×r matrix is transposed even if r == c.
// Otherwise m is transposed only if it is not already r×c.
func orient(m mat.Matrix, r, c int, colMajor bool) (*mat.Dense, error) {
	mr, mc := m.Dims()
	same := mr == r && mc == c
	flipped := mr == c && mc == r
	switch {
	case flipped && (colMajor || !same):
		return mat.DenseCopyOf(m.T()), nil
	case same:
		return mat.DenseCopyOf(m), nil
	}
	return nil, errors.Wrapf(ErrDimension, "got %d×%d, want %d×%d", mr, mc, r, c)
}

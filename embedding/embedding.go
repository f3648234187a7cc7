// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package embedding projects documents to the plane.
//
// Embed reduces a document-by-feature matrix with truncated SVD and
// then runs t-SNE on the reduced rows. Rows are L2 normalized before
// t-SNE, so squared Euclidean distances between them order pairs the
// same way cosine distances do.
package embedding

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/cockroachdb/errors"
	"github.com/danaugrs/go-tsne/tsne"
	"github.com/james-bowman/nlp"
	"github.com/litstudy/litplot/internal/logger"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// ErrEmpty is returned when there is nothing to embed.
var ErrEmpty = errors.New("embedding an empty matrix")

// Options configures Embed. Zero fields take the defaults noted.
type Options struct {
	// Components is the number of SVD components kept (10).
	Components int

	// Perplexity is the t-SNE perplexity (20). It is lowered for
	// small inputs.
	Perplexity float64

	// LearningRate is the t-SNE learning rate (200).
	LearningRate float64

	// MaxIter is the number of t-SNE iterations (1000).
	MaxIter int

	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Components <= 0 {
		o.Components = 10
	}
	if o.Perplexity <= 0 {
		o.Perplexity = 20
	}
	if o.LearningRate <= 0 {
		o.LearningRate = 200
	}
	if o.MaxIter <= 0 {
		o.MaxIter = 1000
	}
	return o
}

// Embed returns an n×2 matrix of positions for the n rows of x.
func Embed(x mat.Matrix, opts Options) (*mat.Dense, error) {
	opts = opts.withDefaults()
	log := logger.OrNop(opts.Logger)
	n, m := x.Dims()
	if n == 0 || m == 0 {
		return nil, ErrEmpty
	}
	if n < 4 {
		// Too few points for t-SNE to mean anything.
		return circle(n), nil
	}

	k := min(opts.Components, n, m)
	reduced, err := reduce(x, k)
	if err != nil {
		return nil, err
	}
	normalizeRows(reduced)

	perp := math.Min(opts.Perplexity, math.Max(1, float64(n-1)/3))
	log.Debug("running t-SNE",
		zap.Int("points", n), zap.Int("components", k),
		zap.Float64("perplexity", perp), zap.Int("iterations", opts.MaxIter))
	// The initial layout comes from the global math/rand source.
	t := tsne.NewTSNE(2, perp, opts.LearningRate, opts.MaxIter, false)
	t.EmbedData(reduced, func(iter int, divergence float64, _ mat.Matrix) bool {
		if iter%100 == 0 {
			log.Debug("t-SNE progress", zap.Int("iter", iter), zap.Float64("divergence", divergence))
		}
		return false
	})
	if t.Y == nil {
		return nil, errors.New("t-SNE produced no embedding")
	}
	return mat.DenseCopyOf(t.Y), nil
}

// reduce projects the rows of x onto its top k singular directions.
func reduce(x mat.Matrix, k int) (*mat.Dense, error) {
	n, _ := x.Dims()
	svd := nlp.NewTruncatedSVD(k)
	// nlp expects one column per sample.
	out, err := svd.FitTransform(x.T())
	if err != nil {
		return nil, errors.Wrap(err, "truncated SVD")
	}
	r, c := out.Dims()
	switch {
	case r == k && c == n:
		return mat.DenseCopyOf(out.T()), nil
	case r == n && c == k:
		return mat.DenseCopyOf(out), nil
	}
	return nil, errors.Newf("truncated SVD returned %d×%d, want %d×%d", r, c, k, n)
}

func normalizeRows(m *mat.Dense) {
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		row := m.RawRowView(i)
		norm := 0.0
		for _, v := range row {
			norm += v * v
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for j := range row {
			row[j] /= norm
		}
	}
}

func circle(n int) *mat.Dense {
	out := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		out.Set(i, 0, math.Cos(a))
		out.Set(i, 1, math.Sin(a))
	}
	return out
}

// Normalize moves pos into [0.05, 0.95]² in place, keeping its aspect
// ratio. Points are centered on the midpoint of their bounding box and
// scaled so the coordinate farthest from it lands on the boundary. If
// all points coincide they land at 0.5.
func Normalize(pos *mat.Dense) {
	n, c := pos.Dims()
	maxAbs := 0.0
	for j := 0; j < c; j++ {
		col := mat.Col(nil, j, pos)
		lo, hi := stats.Bounds(col)
		mid := (lo + hi) / 2
		for i, v := range col {
			pos.Set(i, j, v-mid)
			maxAbs = math.Max(maxAbs, math.Abs(v-mid))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			v := 0.0
			if maxAbs > 0 {
				v = pos.At(i, j) / maxAbs
			}
			pos.Set(i, j, (v*0.5+0.5)*0.9+0.05)
		}
	}
}

// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topic

import (
	"math"
	"math/rand"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

const (
	nmfTolerance = 1e-9
	nmfMaxIter   = 500

	// nmfEpsilon keeps multiplicative update denominators positive.
	nmfEpsilon = 1e-12
)

// nmf factors the non-negative n×m matrix x into w (n×k) and h (k×m)
// minimizing the Frobenius norm of x-wh with the multiplicative
// updates of Lee and Seung.
//
// Both factors start as the absolute value of normal draws from seed,
// scaled by sqrt(mean(x)/k). The error is checked every 10 iterations
// and iteration stops once its relative improvement over the initial
// error drops below tol.
func nmf(x *mat.Dense, k, maxIter int, tol float64, seed int64, log *zap.Logger) (w, h *mat.Dense) {
	n, m := x.Dims()
	rng := rand.New(rand.NewSource(seed))
	avg := math.Sqrt(mat.Sum(x) / float64(n*m) / float64(k))
	random := func(r, c int) *mat.Dense {
		data := make([]float64, r*c)
		for i := range data {
			data[i] = avg * math.Abs(rng.NormFloat64())
		}
		return mat.NewDense(r, c, data)
	}
	h = random(k, m)
	w = random(n, k)

	var num, den, gram mat.Dense
	residual := func() float64 {
		var diff mat.Dense
		diff.Mul(w, h)
		diff.Sub(x, &diff)
		return mat.Norm(&diff, 2)
	}
	update := func(dst *mat.Dense) {
		r, c := dst.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				dst.Set(i, j, dst.At(i, j)*num.At(i, j)/(den.At(i, j)+nmfEpsilon))
			}
		}
	}

	initErr := residual()
	prevErr := initErr
	iter := 0
	for iter = 1; iter <= maxIter; iter++ {
		// h *= wᵀx / wᵀwh
		num.Reset()
		num.Mul(w.T(), x)
		gram.Reset()
		gram.Mul(w.T(), w)
		den.Reset()
		den.Mul(&gram, h)
		update(h)

		// w *= xhᵀ / whhᵀ
		num.Reset()
		num.Mul(x, h.T())
		gram.Reset()
		gram.Mul(h, h.T())
		den.Reset()
		den.Mul(w, &gram)
		update(w)

		if tol > 0 && iter%10 == 0 {
			e := residual()
			if initErr == 0 || (prevErr-e)/initErr < tol {
				break
			}
			prevErr = e
		}
	}
	log.Debug("trained NMF", zap.Int("iterations", min(iter, maxIter)), zap.Float64("error", residual()))
	return w, h
}

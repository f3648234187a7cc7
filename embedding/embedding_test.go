// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNormalize(t *testing.T) {
	pos := mat.NewDense(3, 2, []float64{
		-2, 5,
		0, 6,
		2, 5,
	})
	Normalize(pos)
	assert.InDeltaSlice(t, []float64{0.05, 0.5, 0.95}, mat.Col(nil, 0, pos), 1e-12)
	// The y extent is a quarter of the x extent and stays so.
	assert.InDeltaSlice(t, []float64{0.3875, 0.6125, 0.3875}, mat.Col(nil, 1, pos), 1e-12)

	same := mat.NewDense(2, 2, []float64{3, 3, 3, 3})
	Normalize(same)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, same.RawMatrix().Data)
}

func TestEmbedEmpty(t *testing.T) {
	_, err := Embed(&mat.Dense{}, Options{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestEmbedFew(t *testing.T) {
	x := mat.NewDense(2, 3, []float64{1, 0, 0, 0, 1, 0})
	pos, err := Embed(x, Options{})
	require.NoError(t, err)
	r, c := pos.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.NotEqual(t, mat.Row(nil, 0, pos), mat.Row(nil, 1, pos))
}

func TestReduce(t *testing.T) {
	x := mat.NewDense(4, 3, []float64{
		1, 0, 0,
		2, 0, 0,
		0, 1, 1,
		0, 2, 2,
	})
	red, err := reduce(x, 2)
	require.NoError(t, err)
	r, c := red.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 2, c)

	normalizeRows(red)
	for i := 0; i < r; i++ {
		assert.InDelta(t, 1, mat.Norm(red.RowView(i), 2), 1e-9)
	}
}

func TestEmbed(t *testing.T) {
	// Two clearly separated groups of documents.
	const n = 12
	x := mat.NewDense(n, 6, nil)
	for i := 0; i < n; i++ {
		off := 0
		if i >= n/2 {
			off = 3
		}
		x.Set(i, off, 1)
		x.Set(i, off+1, float64(i%3)+1)
		x.Set(i, off+2, 0.5)
	}
	pos, err := Embed(x, Options{MaxIter: 300})
	require.NoError(t, err)
	r, c := pos.Dims()
	require.Equal(t, n, r)
	require.Equal(t, 2, c)
	for i := 0; i < n; i++ {
		for j := 0; j < 2; j++ {
			v := pos.At(i, j)
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "position %d,%d is %v", i, j, v)
		}
	}

	Normalize(pos)
	for _, v := range pos.RawMatrix().Data {
		assert.GreaterOrEqual(t, v, 0.05-1e-12)
		assert.LessOrEqual(t, v, 0.95+1e-12)
	}
}

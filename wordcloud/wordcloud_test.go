// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wordcloud

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	g := newGrid(10, 5)
	rng := rand.New(rand.NewSource(1))
	_, _, ok := g.find(11, 1, rng)
	assert.False(t, ok)

	g.fill(0, 0, 10, 4)
	x, y, ok := g.find(10, 1, rng)
	require.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 4, y)
	assert.Equal(t, 40, g.boxSum(0, 0, 10, 5))

	g.fill(x, y, 10, 1)
	_, _, ok = g.find(1, 1, rng)
	assert.False(t, ok)
}

func boxes(t *testing.T, wc *WordCloud) []image.Rectangle {
	ttf, err := goFont()
	require.NoError(t, err)
	faces := newFaceCache(ttf)
	defer faces.close()
	var rs []image.Rectangle
	for _, w := range wc.Words() {
		face, err := faces.get(w.Size)
		require.NoError(t, err)
		bw, bh := measure(face, w.Text)
		rs = append(rs, image.Rect(w.X, w.Y, w.X+bw, w.Y+bh))
	}
	return rs
}

func TestFitWords(t *testing.T) {
	wc := New()
	wc.MaxFontSize = 40
	wc.Seed = 3
	weights := map[string]float64{
		"network": 10,
		"graph":   5,
		"model":   5,
		"learn":   2,
		"data":    1,
		"zero":    0,
	}
	require.NoError(t, wc.FitWords(weights))

	words := wc.Words()
	require.NotEmpty(t, words)
	assert.Equal(t, "network", words[0].Text)
	assert.Equal(t, 40.0, words[0].Size)
	assert.Equal(t, 1.0, words[0].Weight)
	for i := 1; i < len(words); i++ {
		assert.LessOrEqual(t, words[i].Size, words[i-1].Size)
		assert.NotEqual(t, "zero", words[i].Text)
	}

	rs := boxes(t, wc)
	bounds := image.Rect(0, 0, wc.Width, wc.Height)
	for i, r := range rs {
		assert.True(t, r.In(bounds), "%q at %v outside %v", words[i].Text, r, bounds)
		for j := i + 1; j < len(rs); j++ {
			assert.False(t, r.Overlaps(rs[j]), "%q overlaps %q", words[i].Text, words[j].Text)
		}
	}
}

func TestFitWordsDeterministic(t *testing.T) {
	weights := map[string]float64{"alpha": 3, "beta": 2, "gamma": 1}
	a, b := New(), New()
	require.NoError(t, a.FitWords(weights))
	require.NoError(t, b.FitWords(weights))
	assert.Equal(t, a.Words(), b.Words())
}

func TestRelativeScaling(t *testing.T) {
	wc := New()
	wc.Width, wc.Height = 800, 400
	wc.MaxFontSize = 40
	wc.RelativeScaling = 1
	require.NoError(t, wc.FitWords(map[string]float64{"big": 2, "small": 1}))
	words := wc.Words()
	require.Len(t, words, 2)
	assert.Equal(t, 20.0, words[1].Size)

	wc.RelativeScaling = 0
	require.NoError(t, wc.FitWords(map[string]float64{"big": 2, "small": 1}))
	assert.Equal(t, 40.0, wc.Words()[1].Size)
}

func TestNoWords(t *testing.T) {
	wc := New()
	assert.ErrorIs(t, wc.FitWords(nil), ErrNoWords)
	assert.ErrorIs(t, wc.FitWords(map[string]float64{"x": 0}), ErrNoWords)
}

func TestImage(t *testing.T) {
	wc := New()
	wc.Scale = 2
	wc.Background = color.White
	wc.ColorFunc = func(string, float64) color.Color { return color.RGBA{0, 0, 0xff, 0xff} }
	require.NoError(t, wc.FitWords(map[string]float64{"hello": 1}))

	img, err := wc.Image()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 800, 400), img.Bounds())
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(0, 0))

	blue := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !blue; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := img.RGBAAt(x, y); c.B > 0x80 && c.R < 0x40 {
				blue = true
				break
			}
		}
	}
	assert.True(t, blue, "no word pixels drawn")
}

// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wordcloud lays out weighted words without overlap and
// renders them with the Go fonts.
//
// Words are placed heaviest first. Each word starts at a font size
// derived from the previous word's size and the ratio of their
// weights, and shrinks until a free spot is found on an occupancy
// grid. Among all free spots one is chosen at random, so layouts
// depend on Seed.
package wordcloud

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrNoWords is returned by FitWords when there is nothing to draw.
var ErrNoWords = errors.New("word cloud needs at least one word")

// WordCloud is the layout of one cloud. The zero value is not usable;
// call New for defaults.
type WordCloud struct {
	// Width and Height are the layout size in pixels.
	Width, Height int

	// MaxFontSize is the size of the heaviest word. Zero means
	// Height.
	MaxFontSize float64

	// Words that do not fit at MinFontSize are dropped.
	MinFontSize float64

	// FontStep is how much a word shrinks when it does not fit.
	FontStep float64

	// Margin is the padding around each word in pixels.
	Margin int

	// Scale multiplies the size of the rendered image relative to
	// the layout.
	Scale float64

	// RelativeScaling is how much font size follows weight. At 0
	// only rank matters; at 1 a word twice as heavy is twice as
	// large.
	RelativeScaling float64

	Background color.Color

	// ColorFunc picks the color of a word given its layout font
	// size. Nil means black.
	ColorFunc func(word string, fontSize float64) color.Color

	Seed int64

	words []Word
}

// Word is a placed word. X and Y are the top-left corner of its box in
// layout pixels.
type Word struct {
	Text   string
	Weight float64
	Size   float64
	X, Y   int
	Color  color.Color
}

// New returns a word cloud with default settings.
func New() *WordCloud {
	return &WordCloud{
		Width:           400,
		Height:          200,
		MinFontSize:     4,
		FontStep:        1,
		Margin:          2,
		Scale:           1,
		RelativeScaling: 0.5,
		Background:      color.Black,
	}
}

// Words returns the placed words, heaviest first.
func (wc *WordCloud) Words() []Word {
	return wc.words
}

// FitWords lays out words with the given weights. Weights need not be
// normalized; words with a non-positive weight are ignored.
func (wc *WordCloud) FitWords(weights map[string]float64) error {
	type item struct {
		w string
		f float64
	}
	var items []item
	for w, f := range weights {
		if f > 0 {
			items = append(items, item{w, f})
		}
	}
	if len(items) == 0 {
		return ErrNoWords
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].f != items[j].f {
			return items[i].f > items[j].f
		}
		return items[i].w < items[j].w
	})
	maxF := items[0].f

	ttf, err := goFont()
	if err != nil {
		return err
	}
	faces := newFaceCache(ttf)
	defer faces.close()

	g := newGrid(wc.Width, wc.Height)
	rng := rand.New(rand.NewSource(wc.Seed))
	size := wc.MaxFontSize
	if size == 0 {
		size = float64(wc.Height)
	}
	step := wc.FontStep
	if step <= 0 {
		step = 1
	}
	minSize := math.Max(wc.MinFontSize, 1)

	wc.words = wc.words[:0]
	lastF := 1.0
	for i, it := range items {
		f := it.f / maxF
		if rs := wc.RelativeScaling; rs != 0 && i > 0 {
			size = math.Round((rs*(f/lastF) + (1 - rs)) * size)
		}
		var (
			x, y   int
			placed bool
		)
		for size >= minSize {
			face, err := faces.get(size)
			if err != nil {
				return err
			}
			w, h := measure(face, it.w)
			x, y, placed = g.find(w+2*wc.Margin, h+2*wc.Margin, rng)
			if placed {
				g.fill(x, y, w+2*wc.Margin, h+2*wc.Margin)
				break
			}
			size -= step
		}
		if !placed {
			// Nothing smaller fits either.
			break
		}
		var c color.Color = color.Black
		if wc.ColorFunc != nil {
			c = wc.ColorFunc(it.w, size)
		}
		wc.words = append(wc.words, Word{
			Text:   it.w,
			Weight: f,
			Size:   size,
			X:      x + wc.Margin,
			Y:      y + wc.Margin,
			Color:  c,
		})
		lastF = f
	}
	return nil
}

// Image renders the layout at Scale times the layout size.
func (wc *WordCloud) Image() (*image.RGBA, error) {
	scale := wc.Scale
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Round(float64(wc.Width) * scale))
	h := int(math.Round(float64(wc.Height) * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := wc.Background
	if bg == nil {
		bg = color.Black
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	ttf, err := goFont()
	if err != nil {
		return nil, err
	}
	faces := newFaceCache(ttf)
	defer faces.close()
	for _, word := range wc.words {
		face, err := faces.get(word.Size * scale)
		if err != nil {
			return nil, err
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(word.Color),
			Face: face,
			Dot: fixed.P(
				int(math.Round(float64(word.X)*scale)),
				int(math.Round(float64(word.Y)*scale))+face.Metrics().Ascent.Ceil(),
			),
		}
		d.DrawString(word.Text)
	}
	return img, nil
}

var (
	fontOnce sync.Once
	fontTTF  *opentype.Font
	fontErr  error
)

func goFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = opentype.Parse(goregular.TTF)
		fontErr = errors.Wrap(fontErr, "parsing Go font")
	})
	return fontTTF, fontErr
}

type faceCache struct {
	ttf   *opentype.Font
	faces map[float64]font.Face
}

func newFaceCache(ttf *opentype.Font) *faceCache {
	return &faceCache{ttf, make(map[float64]font.Face)}
}

func (c *faceCache) get(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.ttf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "font face of size %v", size)
	}
	c.faces[size] = f
	return f, nil
}

func (c *faceCache) close() {
	for _, f := range c.faces {
		f.Close()
	}
}

// measure returns the pixel size of the box holding s.
func measure(face font.Face, s string) (w, h int) {
	m := face.Metrics()
	w = font.MeasureString(face, s).Ceil()
	h = (m.Ascent + m.Descent).Ceil()
	return w, h
}

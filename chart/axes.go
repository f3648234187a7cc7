// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image"
	"image/color"
)

// Axes is one plotting panel of a Figure.
type Axes struct {
	rows, cols, index int

	title, xlabel, ylabel string

	xlim, ylim   *[2]float64
	hideX, hideY bool

	// xcats and ycats are the category labels of a categorical
	// axis, set by bar marks.
	xcats, ycats []string

	marks []mark
}

// SetTitle sets the title drawn above the panel.
func (a *Axes) SetTitle(s string) { a.title = s }

// SetXLabel sets the label of the x axis.
func (a *Axes) SetXLabel(s string) { a.xlabel = s }

// SetYLabel sets the label of the y axis.
func (a *Axes) SetYLabel(s string) { a.ylabel = s }

// Title returns the title of a.
func (a *Axes) Title() string { return a.title }

// XLabel returns the label of the x axis.
func (a *Axes) XLabel() string { return a.xlabel }

// YLabel returns the label of the y axis.
func (a *Axes) YLabel() string { return a.ylabel }

// SetXLim fixes the x range of the panel.
func (a *Axes) SetXLim(lo, hi float64) { a.xlim = &[2]float64{lo, hi} }

// SetYLim fixes the y range of the panel.
func (a *Axes) SetYLim(lo, hi float64) { a.ylim = &[2]float64{lo, hi} }

// HideTicks removes ticks, tick labels and grid lines from both axes.
func (a *Axes) HideTicks() { a.hideX, a.hideY = true, true }

// Bars describes the bars recorded on a.
type Bars struct {
	Labels     []string
	Values     []float64
	Horizontal bool
}

// Bars returns the bar marks recorded on a, in drawing order.
func (a *Axes) Bars() []Bars {
	var out []Bars
	for _, m := range a.marks {
		if b, ok := m.(*markBars); ok {
			out = append(out, Bars{b.labels, b.values, b.horizontal})
		}
	}
	return out
}

// BarH draws one horizontal bar per label. The first label is at the
// bottom of the panel; the y axis becomes categorical.
func (a *Axes) BarH(labels []string, values []float64) {
	a.ycats = labels
	a.marks = append(a.marks, &markBars{labels, values, true})
}

// Bar draws one vertical bar per label, left to right; the x axis
// becomes categorical.
func (a *Axes) Bar(labels []string, values []float64) {
	a.xcats = labels
	a.marks = append(a.marks, &markBars{labels, values, false})
}

// Scatter draws a filled disc of radius r pixels centered at (x, y) in
// data coordinates.
func (a *Axes) Scatter(x, y, r float64, fill color.Color) {
	a.marks = append(a.marks, &markPoint{x, y, r, fill})
}

// Anchor is the horizontal alignment of text.
type Anchor int

const (
	AnchorLeft Anchor = iota
	AnchorCenter
	AnchorRight
)

// TextStyle controls how Text draws.
type TextStyle struct {
	// Size is the font size in pixels. Zero means the base size.
	Size float64

	// Color defaults to black.
	Color color.Color

	Bold bool

	Anchor Anchor

	// Middle centers the text vertically on its position instead
	// of placing the baseline there.
	Middle bool
}

// Text draws s at (x, y) in data coordinates.
func (a *Axes) Text(x, y float64, s string, style TextStyle) {
	a.marks = append(a.marks, &markText{x, y, s, style})
}

// Image draws img scaled to fit the panel, keeping its aspect ratio.
func (a *Axes) Image(img image.Image) {
	a.marks = append(a.marks, &markImage{img})
}

// Len returns the number of marks recorded on a.
func (a *Axes) Len() int {
	return len(a.marks)
}

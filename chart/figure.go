// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart is a small canvas for bar charts, scatter plots and
// images, rendered to SVG.
//
// A Figure is divided into Axes, either the single full-figure axes
// returned by Figure.Axes or a grid cell returned by Figure.Subplot.
// Drawing calls on an Axes only record marks; the figure lays out and
// renders everything in WriteSVG.
package chart

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// fontSize is the base font size in pixels.
const fontSize float64 = 14

// tickFontSize is the font size of tick labels in pixels.
const tickFontSize float64 = 12

// Figure is a drawing surface holding one or more Axes.
type Figure struct {
	Width, Height int

	// Title is drawn centered above all axes if not empty.
	Title string

	axes    []*Axes
	current *Axes
}

// NewFigure returns an empty figure of the given pixel size.
func NewFigure(width, height int) *Figure {
	return &Figure{Width: width, Height: height}
}

// Axes returns the current axes of f, creating axes that cover the
// whole figure if there are none.
func (f *Figure) Axes() *Axes {
	if f.current == nil {
		f.current = f.Subplot(1, 1, 1)
	}
	return f.current
}

// Subplot returns the axes in cell i of a rows×cols grid and makes
// them current. Cells are numbered from 1, left to right and then top
// to bottom. Asking for the same cell twice returns the same axes.
func (f *Figure) Subplot(rows, cols, i int) *Axes {
	if rows < 1 || cols < 1 || i < 1 || i > rows*cols {
		panic(fmt.Sprintf("subplot %d out of range for %d×%d grid", i, rows, cols))
	}
	for _, a := range f.axes {
		if a.rows == rows && a.cols == cols && a.index == i {
			f.current = a
			return a
		}
	}
	a := &Axes{rows: rows, cols: cols, index: i}
	f.axes = append(f.axes, a)
	f.current = a
	return a
}

// Clear removes all axes from f.
func (f *Figure) Clear() {
	f.axes, f.current = nil, nil
}

// WriteSVG renders f as an SVG document to w.
func (f *Figure) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(f.Width, f.Height, fmt.Sprintf(`font-size="%.6gpx" font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`, fontSize))
	canvas.Rect(0, 0, f.Width, f.Height, "fill:white")

	top := 0.0
	if f.Title != "" {
		top = 2 * fontSize
		canvas.Text(f.Width/2, round(1.4*fontSize), f.Title, `text-anchor="middle"`, `font-weight="bold"`)
	}

	r := &renderer{canvas: canvas}
	for _, a := range f.axes {
		cw := float64(f.Width) / float64(a.cols)
		ch := (float64(f.Height) - top) / float64(a.rows)
		row, col := (a.index-1)/a.cols, (a.index-1)%a.cols
		a.render(r, rect{float64(col) * cw, top + float64(row)*ch, cw, ch})
	}
	canvas.End()
	if ew.err != nil {
		return ew.err
	}
	return r.err
}

// errWriter remembers the first write error, since svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, nil
}

type rect struct {
	x, y, w, h float64
}

type renderer struct {
	canvas *svg.SVG
	nextID int

	// err is the first error from drawing a mark.
	err error
}

func (r *renderer) genid(prefix string) (id, ref string) {
	id = fmt.Sprintf("%s%d", prefix, r.nextID)
	r.nextID++
	return id, "url(#" + id + ")"
}

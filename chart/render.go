// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/aclements/go-moremath/scale"
	svg "github.com/ajstarks/svgo"
)

type renderEnv struct {
	canvas *svg.SVG
	area   rect
	xs, ys scale.Linear
	err    error
}

func (e *renderEnv) x(v float64) float64 {
	return e.area.x + e.xs.Map(v)*e.area.w
}

func (e *renderEnv) y(v float64) float64 {
	return e.area.y + e.area.h - e.ys.Map(v)*e.area.h
}

// textWidth estimates the pixel width of s at font size px.
//
// TODO: Measure with the Go fonts from x/image, as the word clouds do.
func textWidth(px float64, s string) float64 {
	return 0.55 * px * float64(utf8.RuneCountInString(s))
}

// axisTicks are the positions and labels of one axis.
type axisTicks struct {
	pos    []float64
	labels []string
}

// limits returns the data ranges of a along x and y.
func (a *Axes) limits() (xr, yr [2]float64) {
	nan := math.NaN()
	xr, yr = [2]float64{nan, nan}, [2]float64{nan, nan}
	valueX, valueY := false, false
	union := func(r *[2]float64, b [2]float64) {
		if math.IsNaN(r[0]) || b[0] < r[0] {
			r[0] = b[0]
		}
		if math.IsNaN(r[1]) || b[1] > r[1] {
			r[1] = b[1]
		}
	}
	for _, m := range a.marks {
		bx, by, ok := m.bounds()
		if !ok {
			continue
		}
		union(&xr, bx)
		union(&yr, by)
		if b, ok := m.(*markBars); ok {
			if b.horizontal {
				valueX = true
			} else {
				valueY = true
			}
		}
	}
	pad := func(r [2]float64, categorical, value bool) [2]float64 {
		switch {
		case math.IsNaN(r[0]):
			return [2]float64{0, 1}
		case categorical:
			return r
		case r[0] == r[1]:
			if value {
				return [2]float64{r[0], r[0] + 1}
			}
			return [2]float64{r[0] - 0.5, r[1] + 0.5}
		}
		span := r[1] - r[0]
		if value {
			// Bars grow from zero; only pad away from it.
			if r[0] < 0 {
				r[0] -= 0.05 * span
			}
			return [2]float64{r[0], r[1] + 0.05*span}
		}
		return [2]float64{r[0] - 0.05*span, r[1] + 0.05*span}
	}
	xr = pad(xr, a.xcats != nil, valueX)
	yr = pad(yr, a.ycats != nil, valueY)
	if a.xlim != nil {
		xr = *a.xlim
	}
	if a.ylim != nil {
		yr = *a.ylim
	}
	return xr, yr
}

// ticks computes tick positions for one axis of length px pixels.
func ticks(r [2]float64, cats []string, integral bool, px float64) axisTicks {
	if cats != nil {
		t := axisTicks{}
		for i, c := range cats {
			t.pos = append(t.pos, float64(i))
			t.labels = append(t.labels, c)
		}
		return t
	}
	ls := scale.Linear{Min: r[0], Max: r[1]}
	o := scale.TickOptions{Max: int(math.Max(2, px/50))}
	if integral {
		o.MinLevel, o.MaxLevel = 0, 1000
	}
	major, _ := ls.Ticks(o)
	t := axisTicks{pos: major}
	for _, x := range major {
		t.labels = append(t.labels, fmt.Sprintf("%.6g", x))
	}
	return t
}

// thin returns the stride at which to label categorical ticks so
// labels spaced slot pixels apart do not overlap.
func thin(slot float64) int {
	need := 1.2 * tickFontSize
	if slot >= need || slot <= 0 {
		return 1
	}
	return int(math.Ceil(need / slot))
}

func (a *Axes) render(r *renderer, cell rect) {
	canvas := r.canvas
	xr, yr := a.limits()
	barsX, barsY := false, false
	for _, b := range a.Bars() {
		if b.Horizontal {
			barsX = true
		} else {
			barsY = true
		}
	}

	// Y ticks do not depend on the panel width, so compute them
	// first to size the left margin.
	var yt axisTicks
	if !a.hideY {
		yt = ticks(yr, a.ycats, barsY, cell.h*0.8)
	}
	yTickW := 0.0
	for _, l := range yt.labels {
		yTickW = math.Max(yTickW, textWidth(tickFontSize, l))
	}
	left := 8 + yTickW
	if a.ylabel != "" {
		left += 1.6 * fontSize
	}
	left = math.Min(left, 0.6*cell.w)
	right := 12.0
	top := 0.6 * fontSize
	if a.title != "" {
		top = 2 * fontSize
	}

	pw := cell.w - left - right
	var xt axisTicks
	if !a.hideX {
		xt = ticks(xr, a.xcats, barsX, pw)
	}
	rotate := false
	xTickH := 0.0
	if len(xt.labels) > 0 {
		xTickH = 1.5 * tickFontSize
		if a.xcats != nil {
			slot := pw / float64(len(a.xcats))
			maxW := 0.0
			for _, l := range xt.labels {
				maxW = math.Max(maxW, textWidth(tickFontSize, l))
			}
			if maxW > 0.9*slot {
				rotate = true
				xTickH = math.Min(maxW, 0.4*cell.h) + 6
			}
		}
	}
	bottom := 6 + xTickH
	if a.xlabel != "" {
		bottom += 1.6 * fontSize
	}
	area := rect{cell.x + left, cell.y + top, pw, cell.h - top - bottom}
	if area.w < 1 || area.h < 1 {
		return
	}

	env := &renderEnv{
		canvas: canvas,
		area:   area,
		xs:     scale.Linear{Min: xr[0], Max: xr[1]},
		ys:     scale.Linear{Min: yr[0], Max: yr[1]},
	}

	// Background and grid.
	canvas.Rect(round(area.x), round(area.y), round(area.w), round(area.h), "fill:#eaeaf2")
	for _, p := range xt.pos {
		x := round(env.x(p))
		canvas.Line(x, round(area.y), x, round(area.y+area.h), "stroke:white;stroke-width:1")
	}
	for _, p := range yt.pos {
		y := round(env.y(p))
		canvas.Line(round(area.x), y, round(area.x+area.w), y, "stroke:white;stroke-width:1")
	}

	// Marks, clipped to the panel.
	clipID, clipRef := r.genid("clip")
	canvas.ClipPath(`id="` + clipID + `"`)
	canvas.Rect(round(area.x), round(area.y), round(area.w), round(area.h))
	canvas.ClipEnd()
	canvas.Group(`clip-path="` + clipRef + `"`)
	for _, m := range a.marks {
		m.draw(env)
	}
	canvas.Gend()
	if env.err != nil && r.err == nil {
		r.err = env.err
	}

	// Tick labels.
	tickStyle := fmt.Sprintf(`font-size="%.6gpx"`, tickFontSize)
	stride := 1
	if a.xcats != nil && len(a.xcats) > 0 {
		slot := area.w / float64(len(a.xcats))
		if !rotate {
			slot = math.Inf(1)
		}
		stride = thin(slot)
	}
	for i, p := range xt.pos {
		if i%stride != 0 {
			continue
		}
		x, y := round(env.x(p)), round(area.y+area.h+tickFontSize+2)
		if rotate {
			y = round(area.y + area.h + 4)
			canvas.Text(x, y, xt.labels[i], tickStyle, `text-anchor="end"`, `dy=".35em"`,
				fmt.Sprintf(`transform="rotate(-90 %d %d)"`, x, y))
		} else {
			canvas.Text(x, y, xt.labels[i], tickStyle, `text-anchor="middle"`)
		}
	}
	stride = 1
	if a.ycats != nil && len(a.ycats) > 0 {
		stride = thin(area.h / float64(len(a.ycats)))
	}
	for i, p := range yt.pos {
		if i%stride != 0 {
			continue
		}
		canvas.Text(round(area.x-4), round(env.y(p)), yt.labels[i], tickStyle, `text-anchor="end"`, `dy=".35em"`)
	}

	// Axis labels and title.
	if a.xlabel != "" {
		canvas.Text(round(area.x+area.w/2), round(cell.y+cell.h-0.5*fontSize), a.xlabel, `text-anchor="middle"`)
	}
	if a.ylabel != "" {
		x, y := round(cell.x+1.1*fontSize), round(area.y+area.h/2)
		canvas.Text(x, y, a.ylabel, `text-anchor="middle"`, fmt.Sprintf(`transform="rotate(-90 %d %d)"`, x, y))
	}
	if a.title != "" {
		canvas.Text(round(area.x+area.w/2), round(cell.y+1.4*fontSize), a.title, `text-anchor="middle"`)
	}
}

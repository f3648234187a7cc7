// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/draw"
)

type mark interface {
	// bounds returns the data extent of the mark along x and y.
	// ok is false if the mark does not constrain the axes.
	bounds() (x, y [2]float64, ok bool)

	draw(env *renderEnv)
}

type markBars struct {
	labels     []string
	values     []float64
	horizontal bool
}

func (m *markBars) bounds() (x, y [2]float64, ok bool) {
	cat := [2]float64{-0.5, float64(len(m.labels)) - 0.5}
	val := [2]float64{0, 0}
	for _, v := range m.values {
		val[0] = math.Min(val[0], v)
		val[1] = math.Max(val[1], v)
	}
	if m.horizontal {
		return val, cat, true
	}
	return cat, val, true
}

func (m *markBars) draw(env *renderEnv) {
	const width = 0.8
	for i, v := range m.values {
		c := float64(i)
		var x0, y0, x1, y1 float64
		if m.horizontal {
			x0, x1 = env.x(0), env.x(v)
			y0, y1 = env.y(c+width/2), env.y(c-width/2)
		} else {
			x0, x1 = env.x(c-width/2), env.x(c+width/2)
			y0, y1 = env.y(v), env.y(0)
		}
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		env.canvas.Rect(round(x0), round(y0), round(x1-x0), round(y1-y0), "fill:"+css(barColor))
	}
}

// barColor matches the first color of the default seaborn palette.
var barColor = color.RGBA{0x4c, 0x72, 0xb0, 0xff}

type markPoint struct {
	x, y, r float64
	fill    color.Color
}

func (m *markPoint) bounds() (x, y [2]float64, ok bool) {
	return [2]float64{m.x, m.x}, [2]float64{m.y, m.y}, true
}

func (m *markPoint) draw(env *renderEnv) {
	env.canvas.Circle(round(env.x(m.x)), round(env.y(m.y)), round(m.r), "fill:"+css(m.fill)+";stroke:white;stroke-width:0.5")
}

type markText struct {
	x, y  float64
	s     string
	style TextStyle
}

func (m *markText) bounds() (x, y [2]float64, ok bool) {
	return [2]float64{m.x, m.x}, [2]float64{m.y, m.y}, true
}

func (m *markText) draw(env *renderEnv) {
	attrs := textAttrs(m.style)
	env.canvas.Text(round(env.x(m.x)), round(env.y(m.y)), m.s, attrs...)
}

func textAttrs(s TextStyle) []string {
	var attrs []string
	if s.Size != 0 {
		attrs = append(attrs, fmt.Sprintf(`font-size="%.6gpx"`, s.Size))
	}
	if s.Color != nil {
		attrs = append(attrs, fmt.Sprintf(`fill="%s"`, hex(s.Color)))
	}
	if s.Bold {
		attrs = append(attrs, `font-weight="bold"`)
	}
	switch s.Anchor {
	case AnchorCenter:
		attrs = append(attrs, `text-anchor="middle"`)
	case AnchorRight:
		attrs = append(attrs, `text-anchor="end"`)
	}
	if s.Middle {
		attrs = append(attrs, `dy=".35em"`)
	}
	return attrs
}

type markImage struct {
	img image.Image
}

func (m *markImage) bounds() (x, y [2]float64, ok bool) {
	return x, y, false
}

func (m *markImage) draw(env *renderEnv) {
	sb := m.img.Bounds()
	if sb.Empty() {
		return
	}
	// Fit into the panel keeping the aspect ratio.
	area := env.area
	scale := math.Min(area.w/float64(sb.Dx()), area.h/float64(sb.Dy()))
	w, h := int(float64(sb.Dx())*scale), int(float64(sb.Dy())*scale)
	if w < 1 || h < 1 {
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), m.img, sb, draw.Over, nil)

	uri := bytes.NewBufferString("data:image/png;base64,")
	enc := base64.NewEncoder(base64.StdEncoding, uri)
	if err := png.Encode(enc, dst); err != nil {
		env.err = err
		return
	}
	enc.Close()
	x := area.x + (area.w-float64(w))/2
	y := area.y + (area.h-float64(h))/2
	env.canvas.Image(round(x), round(y), w, h, uri.String())
}

// css formats c for a style attribute, with an opacity suffix if c is
// not opaque.
func css(c color.Color) string {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return "none"
	}
	s := hex(c)
	if a != 0xffff {
		s += fmt.Sprintf(";opacity:%.3g", float64(a)/0xffff)
	}
	return s
}

// hex formats the color of c as #rrggbb, ignoring alpha.
func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
)

// Blues is the ColorBrewer 9-class sequential blue scheme.
var Blues = palette.RGBGradient{Colors: []color.RGBA{
	{0xf7, 0xfb, 0xff, 0xff},
	{0xde, 0xeb, 0xf7, 0xff},
	{0xc6, 0xdb, 0xef, 0xff},
	{0x9e, 0xca, 0xe1, 0xff},
	{0x6b, 0xae, 0xd6, 0xff},
	{0x42, 0x92, 0xc6, 0xff},
	{0x21, 0x71, 0xb5, 0xff},
	{0x08, 0x51, 0x9c, 0xff},
	{0x08, 0x30, 0x6b, 0xff},
}}

// Jet runs from dark blue through cyan, yellow and red to dark red.
var Jet = palette.RGBGradient{Colors: []color.RGBA{
	{0x00, 0x00, 0x80, 0xff},
	{0x00, 0x00, 0xff, 0xff},
	{0x00, 0x80, 0xff, 0xff},
	{0x00, 0xff, 0xff, 0xff},
	{0x80, 0xff, 0x80, 0xff},
	{0xff, 0xff, 0x00, 0xff},
	{0xff, 0x80, 0x00, 0xff},
	{0xff, 0x00, 0x00, 0xff},
	{0x80, 0x00, 0x00, 0xff},
}}

// darken scales the color channels of c by f.
func darken(c color.Color, f float64) color.RGBA {
	r, g, b, _ := c.RGBA()
	ch := func(v uint32) uint8 { return uint8(float64(v>>8) * f) }
	return color.RGBA{ch(r), ch(g), ch(b), 0xff}
}

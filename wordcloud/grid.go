// Copyright 2026 The litplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wordcloud

import "math/rand"

// grid records which layout pixels are taken. It keeps a summed-area
// table so the occupancy of any box is four lookups.
type grid struct {
	w, h int
	used []bool
	sum  []int // (w+1)×(h+1), sum[y*(w+1)+x] counts used pixels above and left of (x, y)
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, used: make([]bool, w*h), sum: make([]int, (w+1)*(h+1))}
	return g
}

func (g *grid) boxSum(x, y, bw, bh int) int {
	s := g.w + 1
	return g.sum[(y+bh)*s+x+bw] - g.sum[y*s+x+bw] - g.sum[(y+bh)*s+x] + g.sum[y*s+x]
}

// find picks a random free top-left corner for a bw×bh box.
func (g *grid) find(bw, bh int, rng *rand.Rand) (x, y int, ok bool) {
	if bw > g.w || bh > g.h || bw <= 0 || bh <= 0 {
		return 0, 0, false
	}
	n := 0
	for y := 0; y+bh <= g.h; y++ {
		for x := 0; x+bw <= g.w; x++ {
			if g.boxSum(x, y, bw, bh) == 0 {
				n++
			}
		}
	}
	if n == 0 {
		return 0, 0, false
	}
	pick := rng.Intn(n)
	for y := 0; y+bh <= g.h; y++ {
		for x := 0; x+bw <= g.w; x++ {
			if g.boxSum(x, y, bw, bh) != 0 {
				continue
			}
			if pick == 0 {
				return x, y, true
			}
			pick--
		}
	}
	panic("unreachable")
}

// fill marks a box as used and rebuilds the summed-area table.
func (g *grid) fill(x, y, bw, bh int) {
	for yy := y; yy < y+bh && yy < g.h; yy++ {
		for xx := x; xx < x+bw && xx < g.w; xx++ {
			g.used[yy*g.w+xx] = true
		}
	}
	s := g.w + 1
	for yy := 0; yy < g.h; yy++ {
		row := 0
		for xx := 0; xx < g.w; xx++ {
			if g.used[yy*g.w+xx] {
				row++
			}
			g.sum[(yy+1)*s+xx+1] = g.sum[yy*s+xx+1] + row
		}
	}
}

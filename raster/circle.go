// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts simple shapes into integer pixel positions.
package raster

import (
	"image"
	"math"
	"slices"
)

// Circle returns the pixels of a circle outline computed with the midpoint
// circle algorithm.
//
// The algorithm walks one octant starting at (0, radius) using only
// integer arithmetic. The decision variable starts at 1 - radius; while it
// is negative only x advances, otherwise x advances and y steps down. Each
// step is mirrored into the other seven octants.
//
// Pixels are unique and returned in the order they are first produced.
// A zero radius yields the center pixel; a negative radius yields nil.
func Circle(center image.Point, radius int) []image.Point {
	if radius < 0 {
		return nil
	}

	seen := make(map[image.Point]struct{}, 8*radius+1)
	out := make([]image.Point, 0, 8*radius+1)
	plot := func(dx, dy int) {
		p := image.Pt(center.X+dx, center.Y+dy)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	x, y := 0, radius
	d := 1 - radius
	for x <= y {
		plot(x, y)
		plot(-x, y)
		plot(x, -y)
		plot(-x, -y)
		plot(y, x)
		plot(-y, x)
		plot(y, -x)
		plot(-y, -x)

		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
	}
	return out
}

// CirclePolygon returns the pixels of Circle ordered by angle around the
// center, so that consecutive pixels are neighbors on the outline.
func CirclePolygon(center image.Point, radius int) []image.Point {
	pts := Circle(center, radius)
	slices.SortStableFunc(pts, func(a, b image.Point) int {
		aa := angle(a.Sub(center))
		ab := angle(b.Sub(center))
		switch {
		case aa < ab:
			return -1
		case aa > ab:
			return 1
		}
		return 0
	})
	return pts
}

func angle(v image.Point) float64 {
	return math.Atan2(float64(v.Y), float64(v.X))
}

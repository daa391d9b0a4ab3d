// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws clip results into CPU-backed images.
//
// A [Frame] describes one picture: the clip region outline, the subject
// polygon, the clipped polygon and optional raster pixels. [Draw] paints a
// frame into a [PixmapTarget]; [Render] does the same into a new image.
//
//	img, err := render.Render(render.Frame{
//	    Width: 800, Height: 600,
//	    Region:  region,
//	    Subject: subject,
//	    Clipped: clipped,
//	})
//	err = render.Save(img, "clip.png")
//
// Coordinates are normalized device coordinates by default (see
// polyclip.Viewport); set Frame.Space to SpacePixel to draw pixel
// coordinates directly.
//
// The clipped polygon is filled when it has at least 3 vertices, drawn as
// a segment with 2 and as a dot with 1. An empty result draws nothing.
package render

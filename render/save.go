// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/gogpu/polyclip"
)

// Save writes img to path. The image format follows the file extension
// (png, jpg, gif, bmp, tif).
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	polyclip.Logger().Debug("render: saved", slog.String("path", path))
	return nil
}

// Encode writes img to w in the format named by ext, with or without the
// leading dot ("png", ".jpg").
func Encode(w io.Writer, img image.Image, ext string) error {
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return fmt.Errorf("render: format %q: %w", ext, err)
	}
	if err := imaging.Encode(w, img, f); err != nil {
		return fmt.Errorf("render: encode %s: %w", f, err)
	}
	return nil
}

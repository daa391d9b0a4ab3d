// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func testImage() *image.RGBA {
	t := NewPixmapTarget(8, 6)
	t.Clear(color.RGBA{200, 100, 50, 255})
	return t.Image()
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := Save(testImage(), path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("bounds = %v, want 8x6", img.Bounds())
	}
	r, g, b, _ := img.At(3, 3).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("pixel = %d,%d,%d, want 200,100,50", r>>8, g>>8, b>>8)
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.xyz")
	if err := Save(testImage(), path); err == nil {
		t.Error("Save with unknown extension: want error")
	}
}

func TestEncode(t *testing.T) {
	for _, ext := range []string{"png", ".png", "PNG"} {
		var buf bytes.Buffer
		if err := Encode(&buf, testImage(), ext); err != nil {
			t.Fatalf("Encode(%q): %v", ext, err)
		}
		if _, err := png.Decode(&buf); err != nil {
			t.Errorf("Encode(%q) is not a PNG: %v", ext, err)
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), "jpg"); err != nil {
		t.Errorf("Encode(jpg): %v", err)
	}
	if err := Encode(&buf, testImage(), "xyz"); err == nil {
		t.Error("Encode(xyz): want error")
	}
}

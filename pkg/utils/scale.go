package utils

import (
	"image"

	"golang.org/x/image/draw"
)

// ScaleImage returns img resized by factor using Catmull-Rom
// resampling. A factor of 1 (or anything not positive) returns img
// unchanged.
func ScaleImage(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor == 1 {
		return img
	}

	b := img.Bounds()
	w, h := int(float64(b.Dx())*factor+0.5), int(float64(b.Dy())*factor+0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
	return scaled
}

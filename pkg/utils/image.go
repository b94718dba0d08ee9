//go:build !test

package utils

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"
)

// CopyImage places img on the system clipboard as a PNG.
func CopyImage(img image.Image) error {
	err := clipboard.Init()
	if err != nil {
		return err
	}

	// encode image to byte slice
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtImage, b.Bytes())

	return nil
}

// SaveImage asks the user where to save img and writes it there as a
// PNG, returning the chosen file name.
func SaveImage(img image.Image, startDir string) (string, error) {
	// ask user where to save the image
	filename, err := dialog.File().Filter("PNG Image", "png").Title("Save Image").SetStartDir(startDir).Save()
	if err != nil {
		return "", err
	}

	// does file have a .png extension?
	if !strings.HasSuffix(strings.ToLower(filename), ".png") {
		filename += ".png"
	}

	return filename, WritePNG(filename, img)
}

// WritePNG encodes img as a PNG into a new file at filename.
func WritePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

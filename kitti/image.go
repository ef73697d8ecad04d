package kitti

import (
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// LoadImage decodes a camera frame. With gray set the result is converted to
// a single-channel image.Gray, matching the grayscale cameras of the dataset.
func LoadImage(path string, gray bool) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "kitti: open image")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "kitti: decode image %s", path)
	}
	if !gray {
		return img, nil
	}
	out := image.NewGray(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out, nil
}

// LoadImageResized decodes a camera frame and scales it to width x height
// with Lanczos resampling.
func LoadImageResized(path string, width, height uint) (image.Image, error) {
	img, err := LoadImage(path, false)
	if err != nil {
		return nil, err
	}
	return resize.Resize(width, height, img, resize.Lanczos3), nil
}

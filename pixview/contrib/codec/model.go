// Copyright 2025 go-pixview Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codec

import (
	"image"
	"image/color"

	"github.com/ajroetker/go-pixview/pixview"
	"golang.org/x/image/draw"
)

// Model converts between a cell type and image colors.
type Model[T any] interface {
	// FromColor converts any color into a cell.
	FromColor(c color.Color) T
	// ToColor converts a cell into a color.
	ToColor(v T) color.Color
	// NewImage allocates an image that holds cells without loss.
	NewImage(r image.Rectangle) draw.Image
}

// Models for the cell types the package converts natively.
var (
	Gray   Model[uint8]        = grayModel{}
	Gray16 Model[uint16]       = gray16Model{}
	RGBA   Model[color.RGBA]   = rgbaModel{}
	RGBA64 Model[color.RGBA64] = rgba64Model{}
)

type grayModel struct{}

func (grayModel) FromColor(c color.Color) uint8 { return color.GrayModel.Convert(c).(color.Gray).Y }
func (grayModel) ToColor(v uint8) color.Color { return color.Gray{Y: v} }
func (grayModel) NewImage(r image.Rectangle) draw.Image {
	return image.NewGray(r)
}

type gray16Model struct{}

func (gray16Model) FromColor(c color.Color) uint16 {
	return color.Gray16Model.Convert(c).(color.Gray16).Y
}
func (gray16Model) ToColor(v uint16) color.Color { return color.Gray16{Y: v} }
func (gray16Model) NewImage(r image.Rectangle) draw.Image {
	return image.NewGray16(r)
}

type rgbaModel struct{}

func (rgbaModel) FromColor(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
func (rgbaModel) ToColor(v color.RGBA) color.Color { return v }
func (rgbaModel) NewImage(r image.Rectangle) draw.Image {
	return image.NewRGBA(r)
}

type rgba64Model struct{}

func (rgba64Model) FromColor(c color.Color) color.RGBA64 {
	return color.RGBA64Model.Convert(c).(color.RGBA64)
}
func (rgba64Model) ToColor(v color.RGBA64) color.Color { return v }
func (rgba64Model) NewImage(r image.Rectangle) draw.Image {
	return image.NewRGBA64(r)
}

// FromImage converts img into a buffer of img's size, cell by cell.
func FromImage[T any](img image.Image, m Model[T]) *pixview.Buffer[T] {
	r := img.Bounds()
	b := pixview.NewUninit[T](r.Dx(), r.Dy())
	for y, row := range b.Rows().All() {
		for x := range row {
			row[x] = m.FromColor(img.At(r.Min.X+x, r.Min.Y+y))
		}
	}
	return b
}

// ToImage converts a view into a new image with origin (0, 0).
func ToImage[T any](v pixview.View[T], m Model[T]) draw.Image {
	img := m.NewImage(image.Rect(0, 0, v.Width(), v.Height()))
	for y, row := range v.Rows().All() {
		for x, c := range row {
			img.Set(x, y, m.ToColor(c))
		}
	}
	return img
}

// GrayFromImage converts img to 8-bit luminance.
func GrayFromImage(img image.Image) *pixview.Buffer[uint8] {
	r := img.Bounds()
	g, ok := img.(*image.Gray)
	if !ok {
		g = image.NewGray(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(g, g.Bounds(), img, r.Min, draw.Src)
	}
	b := pixview.NewUninit[uint8](r.Dx(), r.Dy())
	for y, row := range b.Rows().All() {
		start := g.PixOffset(g.Rect.Min.X, g.Rect.Min.Y+y)
		copy(row, g.Pix[start:])
	}
	return b
}

// GrayImage copies a view into a new *image.Gray.
func GrayImage(v pixview.View[uint8]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, v.Width(), v.Height()))
	for y, row := range v.Rows().All() {
		copy(img.Pix[y*img.Stride:], row)
	}
	return img
}

// Gray16FromImage converts img to 16-bit luminance.
func Gray16FromImage(img image.Image) *pixview.Buffer[uint16] {
	r := img.Bounds()
	g, ok := img.(*image.Gray16)
	if !ok {
		g = image.NewGray16(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(g, g.Bounds(), img, r.Min, draw.Src)
	}
	b := pixview.NewUninit[uint16](r.Dx(), r.Dy())
	o := g.Rect.Min
	for y, row := range b.Rows().All() {
		for x := range row {
			row[x] = g.Gray16At(o.X+x, o.Y+y).Y
		}
	}
	return b
}

// Gray16Image copies a view into a new *image.Gray16.
func Gray16Image(v pixview.View[uint16]) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, v.Width(), v.Height()))
	for y, row := range v.Rows().All() {
		for x, c := range row {
			img.SetGray16(x, y, color.Gray16{Y: c})
		}
	}
	return img
}

// RGBAFromImage converts img to 8-bit premultiplied RGBA.
func RGBAFromImage(img image.Image) *pixview.Buffer[color.RGBA] {
	r := img.Bounds()
	dst, ok := img.(*image.RGBA)
	if !ok {
		dst = image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	}
	b := pixview.NewUninit[color.RGBA](r.Dx(), r.Dy())
	o := dst.Rect.Min
	for y, row := range b.Rows().All() {
		for x := range row {
			row[x] = dst.RGBAAt(o.X+x, o.Y+y)
		}
	}
	return b
}

// RGBAImage copies a view into a new *image.RGBA.
func RGBAImage(v pixview.View[color.RGBA]) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, v.Width(), v.Height()))
	for y, row := range v.Rows().All() {
		for x, c := range row {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// RGBA64FromImage converts img to 16-bit premultiplied RGBA.
func RGBA64FromImage(img image.Image) *pixview.Buffer[color.RGBA64] {
	return FromImage(img, RGBA64)
}

// RGBA64Image copies a view into a new *image.RGBA64.
func RGBA64Image(v pixview.View[color.RGBA64]) *image.RGBA64 {
	img := image.NewRGBA64(image.Rect(0, 0, v.Width(), v.Height()))
	for y, row := range v.Rows().All() {
		for x, c := range row {
			img.SetRGBA64(x, y, c)
		}
	}
	return img
}

// Scale resamples v to a w by h buffer with scaler s, for example
// draw.CatmullRom or draw.NearestNeighbor.
func Scale[T any](v pixview.View[T], m Model[T], w, h int, s draw.Scaler) *pixview.Buffer[T] {
	src := ToImage(v, m)
	dst := m.NewImage(image.Rect(0, 0, w, h))
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromImage[T](dst, m)
}

// LoadGray loads the image file at path as 8-bit luminance.
func LoadGray(path string) (*pixview.Buffer[uint8], error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return GrayFromImage(img), nil
}

// LoadRGBA loads the image file at path as 8-bit RGBA.
func LoadRGBA(path string) (*pixview.Buffer[color.RGBA], error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return RGBAFromImage(img), nil
}

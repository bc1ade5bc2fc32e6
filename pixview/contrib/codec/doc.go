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

// Package codec moves pixview buffers across the image file boundary.
//
// Decoding recognises PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding picks the
// format from the file extension; WebP is decode-only.
//
//	img, err := codec.Load("in.png")
//	gray := codec.GrayFromImage(img)
//	roi, _ := gray.View(10, 10, 64, 64)
//	err = codec.Save("roi.bmp", codec.GrayImage(roi))
package codec

import "github.com/npillmayer/schuko/tracing"

// tracer returns a trace sink for the codec package namespace.
func tracer() tracing.Trace {
	return tracing.Select("pixview.codec")
}

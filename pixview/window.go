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

package pixview

import "github.com/samber/lo"

// window is the flattened addressing record shared by every view kind.
// Cell (x, y) of the window lives at data[(y0+y)*stride + x0 + x].
// A window of a window is again a single record; nothing chains.
type window[T any] struct {
	data   []T
	stride int // root buffer width
	x0, y0 int // absolute origin in the root buffer
	w, h   int
}

func (win window[T]) index(x, y int) int {
	return (win.y0+y)*win.stride + win.x0 + x
}

func (win window[T]) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < win.w && y < win.h
}

// subIsValid reports whether (x, y, w, h) fits inside the window's own size.
func (win window[T]) subIsValid(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && w >= 0 && h >= 0 && x <= win.w-w && y <= win.h-h
}

func (win window[T]) sub(x, y, w, h int) window[T] {
	if debugChecks && !win.subIsValid(x, y, w, h) {
		panicf("pixview: rectangle %v is not valid in a %dx%d view", Rect{x, y, w, h}, win.w, win.h)
	}
	return window[T]{
		data:   win.data,
		stride: win.stride,
		x0:     win.x0 + x,
		y0:     win.y0 + y,
		w:      w,
		h:      h,
	}
}

// row returns the backing cells of row y, capped so appends cannot
// spill into the neighbouring columns.
func (win window[T]) row(y int) []T {
	start := win.index(0, y)
	return win.data[start : start+win.w : start+win.w]
}

// fullWidth reports whether consecutive rows of the window are adjacent in
// the backing storage.
func (win window[T]) fullWidth() bool {
	return win.x0 == 0 && win.w == win.stride
}

// compact copies the window's cells into a fresh row-major slice.
func (win window[T]) compact() []T {
	out := make([]T, win.w*win.h)
	if win.w == 0 || win.h == 0 {
		return out
	}
	if win.fullWidth() {
		start := win.index(0, 0)
		copy(out, win.data[start:start+win.w*win.h])
		return out
	}
	for y := range win.h {
		copy(out[y*win.w:], win.row(y))
	}
	return out
}

func (win window[T]) cursor() cursor[T] {
	return cursor[T]{
		data:   win.data,
		stride: win.stride,
		x0:     win.x0,
		y0:     win.y0,
		w:      win.w,
		start:  0,
		end:    win.w * win.h,
	}
}

// clipOverhang intersects the requested rectangle (x, y, w, h) with a parent
// of size pw by ph. It returns the intersection in parent coordinates and
// where the intersection starts inside the requested rectangle's own frame.
//
// If nothing intersects, the result is zero-sized and the offsets are
// clamped into [0, w] by [0, h].
func clipOverhang(x, y, w, h, pw, ph int) (valid Rect, offX, offY int) {
	w = max(w, 0)
	h = max(h, 0)
	vx := lo.Clamp(x, 0, pw)
	vy := lo.Clamp(y, 0, ph)
	vw := lo.Clamp(x+w, 0, pw) - vx
	vh := lo.Clamp(y+h, 0, ph) - vy
	offX = max(-x, 0)
	offY = max(-y, 0)
	if vw <= 0 || vh <= 0 {
		return Rect{X: vx, Y: vy}, min(offX, w), min(offY, h)
	}
	return Rect{X: vx, Y: vy, W: vw, H: vh}, offX, offY
}

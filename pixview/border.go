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

// Border selects how Extend resolves the absent cells of an overhang.
type Border int

const (
	// BorderConstant writes the fill value into absent cells.
	BorderConstant Border = iota
	// BorderClamp repeats the nearest valid edge cell.
	BorderClamp
	// BorderMirror reflects across the edge, repeating the edge cell
	// (dcb|abcd|cba).
	BorderMirror
	// BorderWrap tiles the valid area periodically.
	BorderWrap
)

func (b Border) String() string {
	switch b {
	case BorderConstant:
		return "constant"
	case BorderClamp:
		return "clamp"
	case BorderMirror:
		return "mirror"
	case BorderWrap:
		return "wrap"
	}
	return "unknown"
}

// BorderIndex maps index into [0, size) according to mode. For
// BorderConstant it returns false when index is out of range.
// If size <= 0 it returns false.
func BorderIndex(mode Border, index, size int) (int, bool) {
	if size <= 0 {
		return 0, false
	}
	if index >= 0 && index < size {
		return index, true
	}
	switch mode {
	case BorderClamp:
		return min(max(index, 0), size-1), true
	case BorderMirror:
		if index < 0 {
			index = -index - 1
		}
		period := 2 * size
		index %= period
		if index >= size {
			index = period - index - 1
		}
		return index, true
	case BorderWrap:
		index %= size
		if index < 0 {
			index += size
		}
		return index, true
	}
	return 0, false
}

// Extend materialises the overhang into a compact buffer, resolving every
// absent cell against the valid area with mode. fill is used for
// BorderConstant, and for every cell when the valid area is empty.
func (o Overhang[T]) Extend(mode Border, fill T) *Buffer[T] {
	return extend(o.inner.win, o.offX, o.offY, o.w, o.h, mode, fill)
}

// Extend materialises the overhang like Overhang.Extend.
func (o MutOverhang[T]) Extend(mode Border, fill T) *Buffer[T] {
	return extend(o.inner.win, o.offX, o.offY, o.w, o.h, mode, fill)
}

func extend[T any](win window[T], offX, offY, w, h int, mode Border, fill T) *Buffer[T] {
	valid := Rect{X: offX, Y: offY, W: win.w, H: win.h}
	if mode == BorderConstant || valid.Empty() {
		return padded(win, valid, w, h, fill)
	}
	b := NewUninit[T](w, h)
	for y := range h {
		sy, _ := BorderIndex(mode, y-offY, win.h)
		src := win.row(sy)
		dst := b.data[y*w : (y+1)*w]
		for x := range w {
			sx, _ := BorderIndex(mode, x-offX, win.w)
			dst[x] = src[sx]
		}
	}
	return b
}

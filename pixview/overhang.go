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

// Overhang is a read-only window whose requested rectangle may extend past
// its parent. It wraps the part of the request that intersects the parent
// (the inner view) and the offset of that part inside the request.
//
// In the overhang's own frame, cells inside ValidRect are backed by storage
// and every other cell reads as absent.
type Overhang[T any] struct {
	inner      View[T]
	offX, offY int
	w, h       int
}

// Width returns the requested width.
func (o Overhang[T]) Width() int { return o.w }

// Height returns the requested height.
func (o Overhang[T]) Height() int { return o.h }

// Inner returns the view over the valid part of the overhang.
func (o Overhang[T]) Inner() View[T] { return o.inner }

// Offset returns where the inner view starts in the overhang's frame.
func (o Overhang[T]) Offset() (x, y int) { return o.offX, o.offY }

// ValidRect returns the inner view's rectangle in the overhang's frame.
func (o Overhang[T]) ValidRect() Rect {
	return Rect{X: o.offX, Y: o.offY, W: o.inner.win.w, H: o.inner.win.h}
}

// IsValid reports whether (x, y) is backed by storage.
func (o Overhang[T]) IsValid(x, y int) bool {
	return o.inner.win.contains(x-o.offX, y-o.offY)
}

// Get returns the cell at (x, y), or false if the cell is absent.
func (o Overhang[T]) Get(x, y int) (T, bool) {
	return o.inner.Get(x-o.offX, y-o.offY)
}

// GetUnchecked returns the cell at (x, y). The caller must have checked
// IsValid(x, y).
func (o Overhang[T]) GetUnchecked(x, y int) T {
	if debugChecks && !o.IsValid(x, y) {
		panicf("pixview: location (%d, %d) is not valid in Overhang.GetUnchecked", x, y)
	}
	return o.inner.GetUnchecked(x-o.offX, y-o.offY)
}

// ViewIsValid reports whether the rectangle lies entirely inside ValidRect.
func (o Overhang[T]) ViewIsValid(x, y, w, h int) bool {
	return o.inner.ViewIsValid(x-o.offX, y-o.offY, w, h)
}

// View returns a window over valid cells, or false if the rectangle touches
// an absent cell.
func (o Overhang[T]) View(x, y, w, h int) (View[T], bool) {
	return o.inner.View(x-o.offX, y-o.offY, w, h)
}

// ViewUnchecked returns a window over valid cells without checking.
func (o Overhang[T]) ViewUnchecked(x, y, w, h int) View[T] {
	return o.inner.ViewUnchecked(x-o.offX, y-o.offY, w, h)
}

// ViewOverhang returns another overhang window, positioned in this
// overhang's frame.
func (o Overhang[T]) ViewOverhang(x, y, w, h int) Overhang[T] {
	return o.inner.ViewOverhang(x-o.offX, y-o.offY, w, h)
}

// Pixels iterates over every position of the requested rectangle in
// row-major order, yielding absent cells for positions outside ValidRect.
func (o Overhang[T]) Pixels() PixIter[Maybe[T], *OverhangIter[T, *Iter[T]]] {
	return PixIter[Maybe[T], *OverhangIter[T, *Iter[T]]]{
		width:  o.w,
		height: o.h,
		iter:   newOverhangIter[T, *Iter[T]](o.inner.Pixels().iter, o.ValidRect(), o.w, o.h),
	}
}

// ToBuffer materialises the overhang into a compact buffer, writing fill
// into absent cells.
func (o Overhang[T]) ToBuffer(fill T) *Buffer[T] {
	return padded(o.inner.win, o.ValidRect(), o.w, o.h, fill)
}

// MutOverhang is the mutable counterpart of Overhang. Absent cells never
// yield a pointer.
type MutOverhang[T any] struct {
	inner      MutView[T]
	offX, offY int
	w, h       int
}

// Width returns the requested width.
func (o MutOverhang[T]) Width() int { return o.w }

// Height returns the requested height.
func (o MutOverhang[T]) Height() int { return o.h }

// Inner returns the mutable view over the valid part of the overhang.
func (o MutOverhang[T]) Inner() MutView[T] { return o.inner }

// Offset returns where the inner view starts in the overhang's frame.
func (o MutOverhang[T]) Offset() (x, y int) { return o.offX, o.offY }

// AsOverhang returns a read-only overhang over the same cells.
func (o MutOverhang[T]) AsOverhang() Overhang[T] {
	return Overhang[T]{inner: o.inner.AsView(), offX: o.offX, offY: o.offY, w: o.w, h: o.h}
}

// ValidRect returns the inner view's rectangle in the overhang's frame.
func (o MutOverhang[T]) ValidRect() Rect {
	return Rect{X: o.offX, Y: o.offY, W: o.inner.win.w, H: o.inner.win.h}
}

// IsValid reports whether (x, y) is backed by storage.
func (o MutOverhang[T]) IsValid(x, y int) bool {
	return o.inner.win.contains(x-o.offX, y-o.offY)
}

// Get returns the cell at (x, y), or false if the cell is absent.
func (o MutOverhang[T]) Get(x, y int) (T, bool) {
	return o.inner.Get(x-o.offX, y-o.offY)
}

// GetUnchecked returns the cell at (x, y) without checking.
func (o MutOverhang[T]) GetUnchecked(x, y int) T {
	if debugChecks && !o.IsValid(x, y) {
		panicf("pixview: location (%d, %d) is not valid in MutOverhang.GetUnchecked", x, y)
	}
	return o.inner.GetUnchecked(x-o.offX, y-o.offY)
}

// GetMut returns a pointer to the cell at (x, y), or nil if it is absent.
func (o MutOverhang[T]) GetMut(x, y int) *T {
	return o.inner.GetMut(x-o.offX, y-o.offY)
}

// GetUncheckedMut returns a pointer to the cell at (x, y) without checking.
func (o MutOverhang[T]) GetUncheckedMut(x, y int) *T {
	if debugChecks && !o.IsValid(x, y) {
		panicf("pixview: location (%d, %d) is not valid in MutOverhang.GetUncheckedMut", x, y)
	}
	return o.inner.GetUncheckedMut(x-o.offX, y-o.offY)
}

// Set stores value at (x, y). It returns false if the cell is absent.
func (o MutOverhang[T]) Set(x, y int, value T) bool {
	return o.inner.Set(x-o.offX, y-o.offY, value)
}

// ViewIsValid reports whether the rectangle lies entirely inside ValidRect.
func (o MutOverhang[T]) ViewIsValid(x, y, w, h int) bool {
	return o.inner.ViewIsValid(x-o.offX, y-o.offY, w, h)
}

// View returns a read-only window over valid cells.
func (o MutOverhang[T]) View(x, y, w, h int) (View[T], bool) {
	return o.inner.View(x-o.offX, y-o.offY, w, h)
}

// ViewUnchecked returns a read-only window over valid cells without
// checking.
func (o MutOverhang[T]) ViewUnchecked(x, y, w, h int) View[T] {
	return o.inner.ViewUnchecked(x-o.offX, y-o.offY, w, h)
}

// ViewOverhang returns a read-only overhang positioned in this frame.
func (o MutOverhang[T]) ViewOverhang(x, y, w, h int) Overhang[T] {
	return o.inner.ViewOverhang(x-o.offX, y-o.offY, w, h)
}

// ViewMut returns a mutable window over valid cells.
func (o MutOverhang[T]) ViewMut(x, y, w, h int) (MutView[T], bool) {
	return o.inner.ViewMut(x-o.offX, y-o.offY, w, h)
}

// ViewUncheckedMut returns a mutable window over valid cells without
// checking.
func (o MutOverhang[T]) ViewUncheckedMut(x, y, w, h int) MutView[T] {
	return o.inner.ViewUncheckedMut(x-o.offX, y-o.offY, w, h)
}

// ViewOverhangMut returns a mutable overhang positioned in this frame.
func (o MutOverhang[T]) ViewOverhangMut(x, y, w, h int) MutOverhang[T] {
	return o.inner.ViewOverhangMut(x-o.offX, y-o.offY, w, h)
}

// Pixels iterates over every position, yielding absent cells outside
// ValidRect.
func (o MutOverhang[T]) Pixels() PixIter[Maybe[T], *OverhangIter[T, *Iter[T]]] {
	return o.AsOverhang().Pixels()
}

// PixelsMut iterates over every position, yielding pointers for present
// cells only.
func (o MutOverhang[T]) PixelsMut() PixIter[Maybe[*T], *OverhangIter[*T, *MutIter[T]]] {
	return PixIter[Maybe[*T], *OverhangIter[*T, *MutIter[T]]]{
		width:  o.w,
		height: o.h,
		iter:   newOverhangIter[*T, *MutIter[T]](o.inner.PixelsMut().iter, o.ValidRect(), o.w, o.h),
	}
}

// ToBuffer materialises the overhang, writing fill into absent cells.
func (o MutOverhang[T]) ToBuffer(fill T) *Buffer[T] {
	return padded(o.inner.win, o.ValidRect(), o.w, o.h, fill)
}

// padded copies win into a w by h buffer at valid.X, valid.Y and fills
// the rest.
func padded[T any](win window[T], valid Rect, w, h int, fill T) *Buffer[T] {
	b := WithDefault(w, h, fill)
	if valid.Empty() {
		return b
	}
	for y := range win.h {
		start := (valid.Y+y)*w + valid.X
		copy(b.data[start:start+win.w], win.row(y))
	}
	return b
}

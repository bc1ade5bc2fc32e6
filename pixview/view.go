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

// View is a read-only rectangular window into a Buffer. It never copies
// storage. The zero View is an empty 0x0 window.
type View[T any] struct {
	win window[T]
}

// Width returns the view width in cells.
func (v View[T]) Width() int { return v.win.w }

// Height returns the view height in cells.
func (v View[T]) Height() int { return v.win.h }

// Origin returns the view's top-left corner in root buffer coordinates.
func (v View[T]) Origin() (x, y int) { return v.win.x0, v.win.y0 }

// Stride returns the row stride of the root buffer.
func (v View[T]) Stride() int { return v.win.stride }

// ValidRect returns the whole view.
func (v View[T]) ValidRect() Rect { return Rect{W: v.win.w, H: v.win.h} }

// IsValid reports whether (x, y) is inside the view.
func (v View[T]) IsValid(x, y int) bool { return v.win.contains(x, y) }

// Get returns the cell at (x, y), or false if it is outside the view.
func (v View[T]) Get(x, y int) (T, bool) {
	if !v.win.contains(x, y) {
		var zero T
		return zero, false
	}
	return v.win.data[v.win.index(x, y)], true
}

// GetUnchecked returns the cell at (x, y). The caller must have checked
// IsValid(x, y).
func (v View[T]) GetUnchecked(x, y int) T {
	if debugChecks && !v.win.contains(x, y) {
		panicf("pixview: location (%d, %d) is not valid in View.GetUnchecked", x, y)
	}
	return v.win.data[v.win.index(x, y)]
}

// ViewIsValid reports whether the rectangle fits inside this view.
// The check is relative to the view itself, not to the root buffer.
func (v View[T]) ViewIsValid(x, y, w, h int) bool {
	return v.win.subIsValid(x, y, w, h)
}

// View returns a sub-window, or false if the rectangle does not fit.
func (v View[T]) View(x, y, w, h int) (View[T], bool) {
	if !v.win.subIsValid(x, y, w, h) {
		return View[T]{}, false
	}
	return View[T]{win: v.win.sub(x, y, w, h)}, true
}

// ViewUnchecked returns a sub-window without checking the rectangle.
func (v View[T]) ViewUnchecked(x, y, w, h int) View[T] {
	return View[T]{win: v.win.sub(x, y, w, h)}
}

// ViewOverhang returns a window of size w by h whose top-left corner is
// (x, y) in this view. Cells outside this view read as absent.
func (v View[T]) ViewOverhang(x, y, w, h int) Overhang[T] {
	valid, offX, offY := clipOverhang(x, y, w, h, v.win.w, v.win.h)
	return Overhang[T]{
		inner: View[T]{win: v.win.sub(valid.X, valid.Y, valid.W, valid.H)},
		offX:  offX,
		offY:  offY,
		w:     max(w, 0),
		h:     max(h, 0),
	}
}

// Pixels iterates over the view's cells in row-major order.
func (v View[T]) Pixels() PixIter[T, *Iter[T]] {
	return PixIter[T, *Iter[T]]{
		width:  v.win.w,
		height: v.win.h,
		iter:   &Iter[T]{c: v.win.cursor()},
	}
}

// Rows iterates over the view's rows as slices of the backing storage.
func (v View[T]) Rows() *RowIter[T] {
	return newRowIter(v.win)
}

// ToBuffer copies the view into a new compact buffer.
func (v View[T]) ToBuffer() *Buffer[T] {
	b, _ := FromSlice(v.win.w, v.win.h, v.win.compact())
	return b
}

// MutView is a mutable rectangular window into a Buffer.
//
// MutView is a value type; copies share the same cells. The caller must not
// keep two views that reach the same cell alive while either is used to
// write.
type MutView[T any] struct {
	win window[T]
}

// Width returns the view width in cells.
func (v MutView[T]) Width() int { return v.win.w }

// Height returns the view height in cells.
func (v MutView[T]) Height() int { return v.win.h }

// Origin returns the view's top-left corner in root buffer coordinates.
func (v MutView[T]) Origin() (x, y int) { return v.win.x0, v.win.y0 }

// Stride returns the row stride of the root buffer.
func (v MutView[T]) Stride() int { return v.win.stride }

// ValidRect returns the whole view.
func (v MutView[T]) ValidRect() Rect { return Rect{W: v.win.w, H: v.win.h} }

// IsValid reports whether (x, y) is inside the view.
func (v MutView[T]) IsValid(x, y int) bool { return v.win.contains(x, y) }

// AsView returns a read-only view of the same window.
func (v MutView[T]) AsView() View[T] { return View[T]{win: v.win} }

// Get returns the cell at (x, y), or false if it is outside the view.
func (v MutView[T]) Get(x, y int) (T, bool) {
	return v.AsView().Get(x, y)
}

// GetUnchecked returns the cell at (x, y) without a bounds check.
func (v MutView[T]) GetUnchecked(x, y int) T {
	if debugChecks && !v.win.contains(x, y) {
		panicf("pixview: location (%d, %d) is not valid in MutView.GetUnchecked", x, y)
	}
	return v.win.data[v.win.index(x, y)]
}

// GetMut returns a pointer to the cell at (x, y), or nil if it is outside
// the view.
func (v MutView[T]) GetMut(x, y int) *T {
	if !v.win.contains(x, y) {
		return nil
	}
	return &v.win.data[v.win.index(x, y)]
}

// GetUncheckedMut returns a pointer to the cell at (x, y) without a bounds
// check.
func (v MutView[T]) GetUncheckedMut(x, y int) *T {
	if debugChecks && !v.win.contains(x, y) {
		panicf("pixview: location (%d, %d) is not valid in MutView.GetUncheckedMut", x, y)
	}
	return &v.win.data[v.win.index(x, y)]
}

// Set stores value at (x, y). It returns false if the location is outside
// the view.
func (v MutView[T]) Set(x, y int, value T) bool {
	p := v.GetMut(x, y)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// Fill sets every cell of the view to value.
func (v MutView[T]) Fill(value T) {
	for y := range v.win.h {
		row := v.win.row(y)
		for i := range row {
			row[i] = value
		}
	}
}

// CopyFrom copies src, row by row, into the view. It returns false, and
// copies nothing, if the sizes differ. src must not overlap the view.
func (v MutView[T]) CopyFrom(src View[T]) bool {
	if src.win.w != v.win.w || src.win.h != v.win.h {
		return false
	}
	for y := range v.win.h {
		copy(v.win.row(y), src.win.row(y))
	}
	return true
}

// ViewIsValid reports whether the rectangle fits inside this view.
func (v MutView[T]) ViewIsValid(x, y, w, h int) bool {
	return v.win.subIsValid(x, y, w, h)
}

// View returns a read-only sub-window, or false if the rectangle does not
// fit.
func (v MutView[T]) View(x, y, w, h int) (View[T], bool) {
	return v.AsView().View(x, y, w, h)
}

// ViewUnchecked returns a read-only sub-window without checking the
// rectangle.
func (v MutView[T]) ViewUnchecked(x, y, w, h int) View[T] {
	return View[T]{win: v.win.sub(x, y, w, h)}
}

// ViewOverhang returns a read-only overhang window relative to this view.
func (v MutView[T]) ViewOverhang(x, y, w, h int) Overhang[T] {
	return v.AsView().ViewOverhang(x, y, w, h)
}

// ViewMut returns a mutable sub-window, or false if the rectangle does not
// fit.
func (v MutView[T]) ViewMut(x, y, w, h int) (MutView[T], bool) {
	if !v.win.subIsValid(x, y, w, h) {
		return MutView[T]{}, false
	}
	return MutView[T]{win: v.win.sub(x, y, w, h)}, true
}

// ViewUncheckedMut returns a mutable sub-window without checking the
// rectangle.
func (v MutView[T]) ViewUncheckedMut(x, y, w, h int) MutView[T] {
	return MutView[T]{win: v.win.sub(x, y, w, h)}
}

// ViewOverhangMut returns a mutable overhang window relative to this view.
func (v MutView[T]) ViewOverhangMut(x, y, w, h int) MutOverhang[T] {
	valid, offX, offY := clipOverhang(x, y, w, h, v.win.w, v.win.h)
	return MutOverhang[T]{
		inner: MutView[T]{win: v.win.sub(valid.X, valid.Y, valid.W, valid.H)},
		offX:  offX,
		offY:  offY,
		w:     max(w, 0),
		h:     max(h, 0),
	}
}

// Pixels iterates over the view's cells in row-major order.
func (v MutView[T]) Pixels() PixIter[T, *Iter[T]] {
	return v.AsView().Pixels()
}

// PixelsMut iterates over pointers to the view's cells in row-major order.
// Splitting the iterator hands out disjoint cells, so the halves may be
// written concurrently.
func (v MutView[T]) PixelsMut() PixIter[*T, *MutIter[T]] {
	return PixIter[*T, *MutIter[T]]{
		width:  v.win.w,
		height: v.win.h,
		iter:   &MutIter[T]{c: v.win.cursor()},
	}
}

// Rows iterates over the view's rows as slices of the backing storage.
func (v MutView[T]) Rows() *RowIter[T] {
	return newRowIter(v.win)
}

// ToBuffer copies the view into a new compact buffer.
func (v MutView[T]) ToBuffer() *Buffer[T] {
	return v.AsView().ToBuffer()
}

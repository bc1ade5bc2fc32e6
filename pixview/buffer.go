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

// Buffer owns a contiguous row-major slice of width*height cells.
// It is the addressing root for every view created from it.
type Buffer[T any] struct {
	data   []T
	width  int
	height int
}

// New creates a buffer with every cell set to the zero value of T.
// Non-positive dimensions produce an empty 0x0 buffer.
func New[T any](width, height int) *Buffer[T] {
	if width <= 0 || height <= 0 {
		return &Buffer[T]{}
	}
	return &Buffer[T]{
		data:   make([]T, width*height),
		width:  width,
		height: height,
	}
}

// WithDefault creates a buffer with every cell set to value.
func WithDefault[T any](width, height int, value T) *Buffer[T] {
	b := New[T](width, height)
	b.Fill(value)
	return b
}

// NewUninit creates a buffer without a fill pass. The caller must write
// every cell before reading it; cells that are read first hold whatever the
// allocator returned, which in Go is the zero value.
func NewUninit[T any](width, height int) *Buffer[T] {
	if width <= 0 || height <= 0 {
		return &Buffer[T]{}
	}
	n := width * height
	data := make([]T, 0, n)
	return &Buffer[T]{
		data:   data[:n],
		width:  width,
		height: height,
	}
}

// FromSlice adopts data as the storage of a width by height buffer.
// It returns false if len(data) != width*height. The buffer takes
// ownership: the caller must not keep using data.
func FromSlice[T any](width, height int, data []T) (*Buffer[T], bool) {
	if width < 0 || height < 0 || len(data) != width*height {
		return nil, false
	}
	if width == 0 || height == 0 {
		return &Buffer[T]{}, true
	}
	return &Buffer[T]{data: data, width: width, height: height}, true
}

// Width returns the buffer width in cells.
func (b *Buffer[T]) Width() int {
	return b.width
}

// Height returns the buffer height in cells.
func (b *Buffer[T]) Height() int {
	return b.height
}

// Data returns the backing row-major slice.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// ValidRect returns the whole buffer: every cell is backed by storage.
func (b *Buffer[T]) ValidRect() Rect {
	return Rect{W: b.width, H: b.height}
}

// IsValid reports whether (x, y) is inside the buffer.
func (b *Buffer[T]) IsValid(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Get returns the cell at (x, y), or false if it is out of bounds.
func (b *Buffer[T]) Get(x, y int) (T, bool) {
	if !b.IsValid(x, y) {
		var zero T
		return zero, false
	}
	return b.data[y*b.width+x], true
}

// GetUnchecked returns the cell at (x, y). The caller must have checked
// IsValid(x, y).
func (b *Buffer[T]) GetUnchecked(x, y int) T {
	if debugChecks && !b.IsValid(x, y) {
		panicf("pixview: location (%d, %d) is not valid in Buffer.GetUnchecked", x, y)
	}
	return b.data[y*b.width+x]
}

// GetMut returns a pointer to the cell at (x, y), or nil if it is out of
// bounds.
func (b *Buffer[T]) GetMut(x, y int) *T {
	if !b.IsValid(x, y) {
		return nil
	}
	return &b.data[y*b.width+x]
}

// GetUncheckedMut is the mutable counterpart of GetUnchecked.
func (b *Buffer[T]) GetUncheckedMut(x, y int) *T {
	if debugChecks && !b.IsValid(x, y) {
		panicf("pixview: location (%d, %d) is not valid in Buffer.GetUncheckedMut", x, y)
	}
	return &b.data[y*b.width+x]
}

// Set stores value at (x, y). It returns false, and does nothing, if the
// location is out of bounds.
func (b *Buffer[T]) Set(x, y int, value T) bool {
	if !b.IsValid(x, y) {
		return false
	}
	b.data[y*b.width+x] = value
	return true
}

// Fill sets all cells to the specified value.
func (b *Buffer[T]) Fill(value T) {
	for i := range b.data {
		b.data[i] = value
	}
}

// Clone creates a deep copy of the buffer.
func (b *Buffer[T]) Clone() *Buffer[T] {
	if b.data == nil {
		return &Buffer[T]{}
	}
	clone := &Buffer[T]{
		data:   make([]T, len(b.data)),
		width:  b.width,
		height: b.height,
	}
	copy(clone.data, b.data)
	return clone
}

func (b *Buffer[T]) window() window[T] {
	return window[T]{data: b.data, stride: b.width, w: b.width, h: b.height}
}

// ViewIsValid reports whether the rectangle lies entirely inside the buffer.
func (b *Buffer[T]) ViewIsValid(x, y, w, h int) bool {
	return b.window().subIsValid(x, y, w, h)
}

// View returns a read-only window, or false if the rectangle does not fit.
func (b *Buffer[T]) View(x, y, w, h int) (View[T], bool) {
	if !b.ViewIsValid(x, y, w, h) {
		return View[T]{}, false
	}
	return b.ViewUnchecked(x, y, w, h), true
}

// ViewUnchecked returns a read-only window without checking the rectangle.
// The caller must have checked ViewIsValid.
func (b *Buffer[T]) ViewUnchecked(x, y, w, h int) View[T] {
	return View[T]{win: b.window().sub(x, y, w, h)}
}

// ViewOverhang returns a window that may extend past the buffer edges.
// x and y may be negative.
func (b *Buffer[T]) ViewOverhang(x, y, w, h int) Overhang[T] {
	return b.Whole().ViewOverhang(x, y, w, h)
}

// ViewMut returns a mutable window, or false if the rectangle does not fit.
func (b *Buffer[T]) ViewMut(x, y, w, h int) (MutView[T], bool) {
	if !b.ViewIsValid(x, y, w, h) {
		return MutView[T]{}, false
	}
	return b.ViewUncheckedMut(x, y, w, h), true
}

// ViewUncheckedMut is the mutable counterpart of ViewUnchecked.
func (b *Buffer[T]) ViewUncheckedMut(x, y, w, h int) MutView[T] {
	return MutView[T]{win: b.window().sub(x, y, w, h)}
}

// ViewOverhangMut is the mutable counterpart of ViewOverhang.
func (b *Buffer[T]) ViewOverhangMut(x, y, w, h int) MutOverhang[T] {
	return b.WholeMut().ViewOverhangMut(x, y, w, h)
}

// Whole returns a read-only view of the entire buffer.
func (b *Buffer[T]) Whole() View[T] {
	return View[T]{win: b.window()}
}

// WholeMut returns a mutable view of the entire buffer.
func (b *Buffer[T]) WholeMut() MutView[T] {
	return MutView[T]{win: b.window()}
}

// Pixels iterates over all cells in row-major order.
func (b *Buffer[T]) Pixels() PixIter[T, *Iter[T]] {
	return b.Whole().Pixels()
}

// PixelsMut iterates over pointers to all cells in row-major order.
func (b *Buffer[T]) PixelsMut() PixIter[*T, *MutIter[T]] {
	return b.WholeMut().PixelsMut()
}

// Rows iterates over the buffer's rows.
func (b *Buffer[T]) Rows() *RowIter[T] {
	return b.Whole().Rows()
}

var (
	_ MutViewer[int] = (*Buffer[int])(nil)
	_ MutViewer[int] = MutView[int]{}
	_ Viewer[int]    = View[int]{}
	_ Viewer[int]    = Overhang[int]{}
	_ MutViewer[int] = MutOverhang[int]{}
)

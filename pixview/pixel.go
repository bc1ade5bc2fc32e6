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

import "fmt"

// Reader is implemented by every buffer-like or view-like type.
//
// ValidRect is expressed in the receiver's own coordinate frame and names
// the cells that map to real storage. Get returns (zero, false) outside of
// it. GetUnchecked requires IsValid(x, y); calling it with an invalid
// coordinate may panic or return an unrelated cell.
type Reader[T any] interface {
	Width() int
	Height() int
	ValidRect() Rect
	IsValid(x, y int) bool
	Get(x, y int) (T, bool)
	GetUnchecked(x, y int) T
}

// Writer adds mutable access under the same contract as Reader.
// GetMut returns nil outside of ValidRect.
type Writer[T any] interface {
	Reader[T]
	GetMut(x, y int) *T
	GetUncheckedMut(x, y int) *T
	Set(x, y int, value T) bool
}

// Viewer is implemented by types that can hand out sub-windows of themselves.
// Coordinates passed to View are relative to the receiver, never to the
// root buffer.
type Viewer[T any] interface {
	Reader[T]
	ViewIsValid(x, y, w, h int) bool
	View(x, y, w, h int) (View[T], bool)
	ViewUnchecked(x, y, w, h int) View[T]
	ViewOverhang(x, y, w, h int) Overhang[T]
}

// MutViewer is the mutable counterpart of Viewer.
//
// The caller must not keep a mutable view alive together with any other
// view reaching the same cells. Nothing checks this at runtime.
type MutViewer[T any] interface {
	Viewer[T]
	Writer[T]
	ViewMut(x, y, w, h int) (MutView[T], bool)
	ViewUncheckedMut(x, y, w, h int) MutView[T]
	ViewOverhangMut(x, y, w, h int) MutOverhang[T]
}

// IsValidIn is the default validity rule: ValidRect().Contains(x, y).
// Concrete types implement IsValid with cheaper equivalents.
func IsValidIn[T any](r Reader[T], x, y int) bool {
	return r.ValidRect().Contains(x, y)
}

// Maybe is a cell that may be absent. Overhang iteration yields one per
// position of the requested rectangle.
type Maybe[E any] struct {
	Value E
	Ok    bool
}

// Some returns a present cell.
func Some[E any](v E) Maybe[E] {
	return Maybe[E]{Value: v, Ok: true}
}

// Get returns the value and whether it is present.
func (m Maybe[E]) Get() (E, bool) {
	return m.Value, m.Ok
}

// Or returns the value if present, otherwise fallback.
func (m Maybe[E]) Or(fallback E) E {
	if m.Ok {
		return m.Value
	}
	return fallback
}

func panicf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}

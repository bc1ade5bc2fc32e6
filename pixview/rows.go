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

import "iter"

// RowIter walks a view in backing-memory order, one row at a time. Each
// element is the slice of the root buffer that holds that row of the view,
// so rows can be processed with copy or vectorised loops.
//
// Rows from a read-only View are still writable slices: Go has no const
// slices, and callers must not write through them.
//
// Concatenating the yielded rows gives the same sequence as Pixels.
type RowIter[T any] struct {
	win   window[T]
	start int
	end   int
}

func newRowIter[T any](win window[T]) *RowIter[T] {
	return &RowIter[T]{win: win, end: win.h}
}

// Len returns the number of rows left.
func (it *RowIter[T]) Len() int { return it.end - it.start }

// Y returns the row index, in the view's frame, that Next will yield.
func (it *RowIter[T]) Y() int { return it.start }

// Next returns the next row from the top.
func (it *RowIter[T]) Next() ([]T, bool) {
	if it.start >= it.end {
		return nil, false
	}
	row := it.win.row(it.start)
	it.start++
	return row, true
}

// NextBack returns the next row from the bottom.
func (it *RowIter[T]) NextBack() ([]T, bool) {
	if it.start >= it.end {
		return nil, false
	}
	it.end--
	return it.win.row(it.end), true
}

// SplitAt splits the remaining rows into the first k and the rest.
func (it *RowIter[T]) SplitAt(k int) (*RowIter[T], *RowIter[T]) {
	if k < 0 || k > it.Len() {
		panicf("pixview: split index %d out of range [0, %d]", k, it.Len())
	}
	left, right := *it, *it
	left.end = it.start + k
	right.start = it.start + k
	return &left, &right
}

// All drains the iterator from the top, yielding the row index in the
// view's frame with each row.
func (it *RowIter[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for {
			y := it.start
			row, ok := it.Next()
			if !ok || !yield(y, row) {
				return
			}
		}
	}
}

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

import (
	"iter"

	"github.com/samber/lo"
)

// OverhangIter enumerates a width by height rectangle in row-major order
// while an inner producer enumerates only the valid sub-rectangle. Positions
// inside valid pull one element from the inner producer; every other
// position yields an absent Maybe without touching it.
type OverhangIter[E any, P Producer[E, P]] struct {
	inner P
	valid Rect // in the outer frame
	width int
	start int
	end   int
}

func newOverhangIter[E any, P Producer[E, P]](inner P, valid Rect, width, height int) *OverhangIter[E, P] {
	if debugChecks && inner.Len() != valid.Area() {
		panicf("pixview: inner producer has %d elements for valid rectangle %v", inner.Len(), valid)
	}
	return &OverhangIter[E, P]{
		inner: inner,
		valid: valid,
		width: width,
		end:   width * height,
	}
}

// NewOverhangIter wraps inner, which must enumerate exactly the cells of
// valid in row-major order, into an iterator over a width by height frame.
// valid must lie inside [0, width) by [0, height).
func NewOverhangIter[E any, P Producer[E, P]](inner P, valid Rect, width, height int) *OverhangIter[E, P] {
	return newOverhangIter[E, P](inner, valid, width, height)
}

// Len returns the number of positions left, present or absent.
func (it *OverhangIter[E, P]) Len() int { return it.end - it.start }

func (it *OverhangIter[E, P]) present(i int) bool {
	return it.valid.Contains(i%it.width, i/it.width)
}

// Next returns the next position from the front.
func (it *OverhangIter[E, P]) Next() (Maybe[E], bool) {
	if it.start >= it.end {
		return Maybe[E]{}, false
	}
	i := it.start
	it.start++
	if !it.present(i) {
		return Maybe[E]{}, true
	}
	e, ok := it.inner.Next()
	if debugChecks && !ok {
		panicf("pixview: inner producer exhausted at position %d", i)
	}
	return Maybe[E]{Value: e, Ok: ok}, true
}

// NextBack returns the next position from the back.
func (it *OverhangIter[E, P]) NextBack() (Maybe[E], bool) {
	if it.start >= it.end {
		return Maybe[E]{}, false
	}
	it.end--
	if !it.present(it.end) {
		return Maybe[E]{}, true
	}
	e, ok := it.inner.NextBack()
	if debugChecks && !ok {
		panicf("pixview: inner producer exhausted at position %d", it.end)
	}
	return Maybe[E]{Value: e, Ok: ok}, true
}

// SplitAt splits the remaining positions into the first k and the rest.
// The inner producer is split at the number of present positions among the
// first k.
func (it *OverhangIter[E, P]) SplitAt(k int) (*OverhangIter[E, P], *OverhangIter[E, P]) {
	if k < 0 || k > it.Len() {
		panicf("pixview: split index %d out of range [0, %d]", k, it.Len())
	}
	mid := it.start + k
	innerLeft, innerRight := it.inner.SplitAt(it.countInRect(it.start, mid))
	left := &OverhangIter[E, P]{inner: innerLeft, valid: it.valid, width: it.width, start: it.start, end: mid}
	right := &OverhangIter[E, P]{inner: innerRight, valid: it.valid, width: it.width, start: mid, end: it.end}
	return left, right
}

// All drains the iterator from the front.
func (it *OverhangIter[E, P]) All() iter.Seq[Maybe[E]] { return drain(it.Next) }

// Backward drains the iterator from the back.
func (it *OverhangIter[E, P]) Backward() iter.Seq[Maybe[E]] { return drain(it.NextBack) }

// countInRect returns how many of the positions in [from, to) lie inside
// the valid rectangle.
func (it *OverhangIter[E, P]) countInRect(from, to int) int {
	return countBefore(it.valid, it.width, to) - countBefore(it.valid, it.width, from)
}

// countBefore returns how many of the row-major positions [0, n) of a
// width-wide frame lie inside valid. Position n sits in row y = n/width at
// column x = n%width: every row of valid above y counts fully, and row y
// counts the columns of valid left of x.
func countBefore(valid Rect, width, n int) int {
	if n <= 0 || valid.Empty() {
		return 0
	}
	y, x := n/width, n%width
	count := lo.Clamp(y-valid.Y, 0, valid.H) * valid.W
	if valid.Y <= y && y < valid.Y+valid.H {
		count += lo.Clamp(x-valid.X, 0, valid.W)
	}
	return count
}

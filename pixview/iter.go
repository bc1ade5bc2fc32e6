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

// Producer is a double-ended cursor over a half-open range of positions that
// can be split into two independent cursors.
//
// SplitAt(k) partitions the remaining range into its first k elements and
// the rest without touching storage. Draining the left part and then the
// right part, front to back, yields exactly what draining the unsplit
// producer would, for every k in [0, Len()] and at any split depth. The
// receiver must not be used after SplitAt.
//
// P is the concrete producer type, so that SplitAt returns producers that
// can be split again without a type assertion.
type Producer[E, P any] interface {
	Len() int
	Next() (E, bool)
	NextBack() (E, bool)
	SplitAt(k int) (P, P)
}

// cursor walks logical indices [start, end) of a w-wide window and maps
// each to its offset in the backing slice.
type cursor[T any] struct {
	data   []T
	stride int
	x0, y0 int
	w      int
	start  int
	end    int
}

func (c *cursor[T]) addr(i int) int {
	return (c.y0+i/c.w)*c.stride + c.x0 + i%c.w
}

func (c *cursor[T]) len() int {
	return c.end - c.start
}

func (c *cursor[T]) popFront() (int, bool) {
	if c.start >= c.end {
		return 0, false
	}
	i := c.addr(c.start)
	c.start++
	return i, true
}

func (c *cursor[T]) popBack() (int, bool) {
	if c.start >= c.end {
		return 0, false
	}
	c.end--
	return c.addr(c.end), true
}

func (c *cursor[T]) split(k int) (left, right cursor[T]) {
	if k < 0 || k > c.len() {
		panicf("pixview: split index %d out of range [0, %d]", k, c.len())
	}
	left, right = *c, *c
	left.end = c.start + k
	right.start = c.start + k
	return left, right
}

// Iter yields the cells of a view in row-major order.
type Iter[T any] struct {
	c cursor[T]
}

// Len returns the number of cells left.
func (it *Iter[T]) Len() int { return it.c.len() }

// Next returns the next cell from the front.
func (it *Iter[T]) Next() (T, bool) {
	i, ok := it.c.popFront()
	if !ok {
		var zero T
		return zero, false
	}
	return it.c.data[i], true
}

// NextBack returns the next cell from the back.
func (it *Iter[T]) NextBack() (T, bool) {
	i, ok := it.c.popBack()
	if !ok {
		var zero T
		return zero, false
	}
	return it.c.data[i], true
}

// SplitAt splits the remaining cells into the first k and the rest.
// It panics if k is outside [0, Len()].
func (it *Iter[T]) SplitAt(k int) (*Iter[T], *Iter[T]) {
	l, r := it.c.split(k)
	return &Iter[T]{c: l}, &Iter[T]{c: r}
}

// All drains the iterator from the front.
func (it *Iter[T]) All() iter.Seq[T] { return drain(it.Next) }

// Backward drains the iterator from the back.
func (it *Iter[T]) Backward() iter.Seq[T] { return drain(it.NextBack) }

// MutIter yields pointers to the cells of a view in row-major order.
// Each cell is yielded at most once across all iterators split from the
// same origin.
type MutIter[T any] struct {
	c cursor[T]
}

// Len returns the number of cells left.
func (it *MutIter[T]) Len() int { return it.c.len() }

// Next returns a pointer to the next cell from the front.
func (it *MutIter[T]) Next() (*T, bool) {
	i, ok := it.c.popFront()
	if !ok {
		return nil, false
	}
	return &it.c.data[i], true
}

// NextBack returns a pointer to the next cell from the back.
func (it *MutIter[T]) NextBack() (*T, bool) {
	i, ok := it.c.popBack()
	if !ok {
		return nil, false
	}
	return &it.c.data[i], true
}

// SplitAt splits the remaining cells into the first k and the rest.
func (it *MutIter[T]) SplitAt(k int) (*MutIter[T], *MutIter[T]) {
	l, r := it.c.split(k)
	return &MutIter[T]{c: l}, &MutIter[T]{c: r}
}

// All drains the iterator from the front.
func (it *MutIter[T]) All() iter.Seq[*T] { return drain(it.Next) }

// Backward drains the iterator from the back.
func (it *MutIter[T]) Backward() iter.Seq[*T] { return drain(it.NextBack) }

// PixIter carries a producer together with the shape of the rectangle it
// enumerates, so a full traversal can be turned back into a Buffer.
type PixIter[E any, P Producer[E, P]] struct {
	width  int
	height int
	iter   P
}

// NewPixIter wraps a producer enumerating a width by height rectangle.
func NewPixIter[E any, P Producer[E, P]](width, height int, p P) PixIter[E, P] {
	return PixIter[E, P]{width: width, height: height, iter: p}
}

// Width returns the width of the enumerated rectangle.
func (p PixIter[E, P]) Width() int { return p.width }

// Height returns the height of the enumerated rectangle.
func (p PixIter[E, P]) Height() int { return p.height }

// Len returns the number of elements left.
func (p PixIter[E, P]) Len() int { return p.iter.Len() }

// Inner returns the underlying producer.
func (p PixIter[E, P]) Inner() P { return p.iter }

// All drains the underlying producer from the front.
func (p PixIter[E, P]) All() iter.Seq[E] { return drain(p.iter.Next) }

// CollectBuffer drains the producer into a new width by height buffer.
// It panics if the producer has already been partially consumed.
func (p PixIter[E, P]) CollectBuffer() *Buffer[E] {
	n := p.width * p.height
	if p.iter.Len() != n {
		panicf("pixview: collecting %d elements into a %dx%d buffer", p.iter.Len(), p.width, p.height)
	}
	data := make([]E, 0, n)
	for {
		e, ok := p.iter.Next()
		if !ok {
			break
		}
		data = append(data, e)
	}
	b, _ := FromSlice(p.width, p.height, data)
	return b
}

func drain[E any](next func() (E, bool)) iter.Seq[E] {
	return func(yield func(E) bool) {
		for {
			e, ok := next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

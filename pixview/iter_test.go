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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect[E any, P Producer[E, P]](p P) []E {
	var out []E
	for {
		e, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

// splitCollect splits p in the middle down to depth levels and
// concatenates the leaves left to right.
func splitCollect[E any, P Producer[E, P]](p P, depth int) []E {
	if depth == 0 || p.Len() < 2 {
		return collect[E](p)
	}
	l, r := p.SplitAt(p.Len() / 2)
	return append(splitCollect[E](l, depth-1), splitCollect[E](r, depth-1)...)
}

// checkSplitLaws verifies that splitting a producer obtained from fresh at
// any index, or recursively, never changes the sequence it yields.
func checkSplitLaws[E any, P Producer[E, P]](t *testing.T, fresh func() P, opts ...cmp.Option) {
	t.Helper()
	want := collect[E](fresh())
	n := len(want)
	if got := fresh().Len(); got != n {
		t.Fatalf("Len: got %d, want %d", got, n)
	}
	for k := 0; k <= n; k++ {
		l, r := fresh().SplitAt(k)
		if l.Len() != k || r.Len() != n-k {
			t.Fatalf("SplitAt(%d): lengths %d+%d, want %d+%d", k, l.Len(), r.Len(), k, n-k)
		}
		got := append(collect[E](l), collect[E](r)...)
		if diff := cmp.Diff(want, got, opts...); diff != "" {
			t.Fatalf("SplitAt(%d) changed the sequence (-want +got):\n%s", k, diff)
		}
	}
	for depth := 1; depth <= 6; depth++ {
		if diff := cmp.Diff(want, splitCollect[E](fresh(), depth), opts...); diff != "" {
			t.Fatalf("recursive split at depth %d changed the sequence (-want +got):\n%s", depth, diff)
		}
	}
}

func TestIter_Order(t *testing.T) {
	b := newIndexed(side, side)
	v, _ := b.View(10, 10, 30, 30)

	it := v.Pixels()
	if it.Width() != 30 || it.Height() != 30 || it.Len() != 900 {
		t.Fatalf("shape: got %dx%d len %d, want 30x30 len 900", it.Width(), it.Height(), it.Len())
	}
	i := 0
	for got := range it.All() {
		want := side*(10+i/30) + 10 + i%30
		if got != want {
			t.Fatalf("element %d: got %d, want %d", i, got, want)
		}
		i++
	}
	if i != 900 {
		t.Errorf("yielded %d elements, want 900", i)
	}
	if _, ok := it.Inner().Next(); ok {
		t.Error("Next after exhaustion should fail")
	}
}

func TestIter_Backward(t *testing.T) {
	b := newIndexed(7, 5)
	v, _ := b.View(1, 1, 5, 3)
	forward := collect[int](v.Pixels().Inner())
	backward := slices.Collect(v.Pixels().Inner().Backward())
	slices.Reverse(backward)
	if diff := cmp.Diff(forward, backward); diff != "" {
		t.Errorf("Backward is not the reverse of Next (-want +got):\n%s", diff)
	}
}

func TestIter_FrontAndBackMeet(t *testing.T) {
	b := newIndexed(4, 3)
	it := b.Pixels().Inner()
	var front, back []int
	for it.Len() > 0 {
		f, _ := it.Next()
		front = append(front, f)
		if r, ok := it.NextBack(); ok {
			back = append(back, r)
		}
	}
	slices.Reverse(back)
	got := append(front, back...)
	if diff := cmp.Diff(b.Data(), got); diff != "" {
		t.Errorf("interleaved Next/NextBack (-want +got):\n%s", diff)
	}
	if _, ok := it.NextBack(); ok {
		t.Error("NextBack after exhaustion should fail")
	}
}

func TestIter_SplitLaws(t *testing.T) {
	b := newIndexed(20, 20)
	for _, r := range []Rect{{0, 0, 20, 20}, {4, 4, 12, 12}, {3, 7, 1, 13}, {5, 5, 15, 1}, {0, 0, 0, 0}} {
		v, _ := b.View(r.X, r.Y, r.W, r.H)
		checkSplitLaws[int](t, func() *Iter[int] { return v.Pixels().Inner() })
	}
}

func TestIter_SplitAfterPartialDrain(t *testing.T) {
	b := newIndexed(6, 6)
	it := b.Pixels().Inner()
	it.Next()
	it.NextBack()
	l, r := it.SplitAt(10)
	got := append(collect[int](l), collect[int](r)...)
	if diff := cmp.Diff(b.Data()[1:35], got); diff != "" {
		t.Errorf("split after partial drain (-want +got):\n%s", diff)
	}
}

func TestIter_SplitOutOfRange(t *testing.T) {
	b := newIndexed(3, 3)
	for _, k := range []int{-1, 10} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SplitAt(%d) should panic", k)
				}
			}()
			b.Pixels().Inner().SplitAt(k)
		}()
	}
}

func TestMutIter_SplitLaws(t *testing.T) {
	b := newIndexed(20, 20)
	mv, _ := b.ViewMut(2, 3, 11, 7)
	checkSplitLaws[*int](t, func() *MutIter[int] { return mv.PixelsMut().Inner() })
}

func TestMutIter_Disjoint(t *testing.T) {
	b := New[int](side, side)
	mv, _ := b.ViewMut(5, 5, 33, 21)

	// Split into uneven pieces and write through every one of them.
	var pieces []*MutIter[int]
	rest := mv.PixelsMut().Inner()
	for k := 1; rest.Len() > 0; k = k*3 + 1 {
		l, r := rest.SplitAt(min(k, rest.Len()))
		pieces = append(pieces, l)
		rest = r
	}
	for _, p := range pieces {
		for cell := range p.All() {
			*cell++
		}
	}
	for y := range side {
		for x := range side {
			want := 0
			if x >= 5 && x < 38 && y >= 5 && y < 26 {
				want = 1
			}
			if got, _ := b.Get(x, y); got != want {
				t.Fatalf("cell (%d,%d) written %d times, want %d", x, y, got, want)
			}
		}
	}
}

func TestPixIter_CollectBuffer(t *testing.T) {
	b := newIndexed(side, side)
	v, _ := b.View(10, 10, 30, 30)
	got := v.Pixels().CollectBuffer()
	if got.Width() != 30 || got.Height() != 30 {
		t.Fatalf("size: got %dx%d, want 30x30", got.Width(), got.Height())
	}
	if diff := cmp.Diff(v.ToBuffer().Data(), got.Data()); diff != "" {
		t.Errorf("CollectBuffer mismatch (-want +got):\n%s", diff)
	}

	it := v.Pixels()
	it.Inner().Next()
	defer func() {
		if recover() == nil {
			t.Error("CollectBuffer of a partially drained iterator should panic")
		}
	}()
	it.CollectBuffer()
}

func TestNewPixIter(t *testing.T) {
	b := newIndexed(4, 4)
	_, right := b.Pixels().Inner().SplitAt(8)
	p := NewPixIter[int](4, 2, right)
	got := p.CollectBuffer()
	if diff := cmp.Diff(b.Data()[8:], got.Data()); diff != "" {
		t.Errorf("NewPixIter over the lower half (-want +got):\n%s", diff)
	}
}

func TestRows_MatchesPixels(t *testing.T) {
	b := newIndexed(side, side)
	for _, r := range []Rect{{0, 0, side, side}, {10, 10, 30, 30}, {49, 0, 1, side}, {0, 49, side, 1}} {
		v, _ := b.View(r.X, r.Y, r.W, r.H)
		var got []int
		rows := 0
		for y, row := range v.Rows().All() {
			if y != rows {
				t.Fatalf("row index: got %d, want %d", y, rows)
			}
			if len(row) != r.W {
				t.Fatalf("row %d length: got %d, want %d", y, len(row), r.W)
			}
			got = append(got, row...)
			rows++
		}
		if rows != r.H {
			t.Errorf("View%v yielded %d rows, want %d", r, rows, r.H)
		}
		if diff := cmp.Diff(collect[int](v.Pixels().Inner()), got); diff != "" {
			t.Errorf("View%v rows differ from pixels (-want +got):\n%s", r, diff)
		}
	}
}

func TestRows_SplitLaws(t *testing.T) {
	b := newIndexed(side, side)
	v, _ := b.View(4, 6, 20, 17)
	checkSplitLaws[[]int](t, func() *RowIter[int] { return v.Rows() })
}

func TestRows_CappedAndShared(t *testing.T) {
	b := newIndexed(10, 10)
	mv, _ := b.ViewMut(2, 2, 3, 3)
	rows := mv.Rows()
	first, _ := rows.Next()
	if cap(first) != 3 {
		t.Errorf("row capacity: got %d, want 3", cap(first))
	}
	first[0] = -1
	if got, _ := b.Get(2, 2); got != -1 {
		t.Errorf("row does not alias the buffer: got %d", got)
	}
	last, _ := rows.NextBack()
	if last[2] != 44 {
		t.Errorf("last row: got %v, want [...44]", last)
	}
	if rows.Y() != 1 || rows.Len() != 1 {
		t.Errorf("after Next and NextBack: Y %d Len %d, want 1 1", rows.Y(), rows.Len())
	}
}

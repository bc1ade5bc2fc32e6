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
	"testing"
)

// checkOverhang compares every cell of o against the root buffer, where
// (dx, dy) maps o's frame to root coordinates and clip is the region of the
// root that o may reach.
func checkOverhang(t *testing.T, o Reader[int], root *Buffer[int], dx, dy int, clip Rect) {
	t.Helper()
	for y := range o.Height() {
		for x := range o.Width() {
			rx, ry := x+dx, y+dy
			got, ok := o.Get(x, y)
			if !clip.Contains(rx, ry) {
				if ok {
					t.Fatalf("Get(%d,%d): got %d, want absent", x, y, got)
				}
				if o.IsValid(x, y) {
					t.Fatalf("IsValid(%d,%d): got true, want false", x, y)
				}
				continue
			}
			want, _ := root.Get(rx, ry)
			if !ok || got != want {
				t.Fatalf("Get(%d,%d): got %d, %v, want %d", x, y, got, ok, want)
			}
			if got := o.GetUnchecked(x, y); got != want {
				t.Fatalf("GetUnchecked(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestViewOverhang_Corners(t *testing.T) {
	b := newIndexed(side, side)
	v, _ := b.View(10, 10, 30, 30)
	clip := Rect{X: 10, Y: 10, W: 30, H: 30}

	tests := []struct {
		x, y  int
		valid Rect
	}{
		{-10, -10, Rect{10, 10, 10, 10}},
		{20, -10, Rect{0, 10, 10, 10}},
		{-10, 20, Rect{10, 0, 10, 10}},
		{20, 20, Rect{0, 0, 10, 10}},
		{5, 5, Rect{0, 0, 20, 20}},
	}
	for _, tt := range tests {
		o := v.ViewOverhang(tt.x, tt.y, 20, 20)
		if o.Width() != 20 || o.Height() != 20 {
			t.Errorf("ViewOverhang(%d,%d) size: got %dx%d, want 20x20", tt.x, tt.y, o.Width(), o.Height())
		}
		if got := o.ValidRect(); got != tt.valid {
			t.Errorf("ViewOverhang(%d,%d) ValidRect: got %v, want %v", tt.x, tt.y, got, tt.valid)
		}
		checkOverhang(t, o, b, tt.x+10, tt.y+10, clip)
	}
}

func TestViewOverhang_Scenario(t *testing.T) {
	b := newIndexed(side, side)
	o := b.ViewOverhang(-10, -10, 20, 20)
	for y := range 20 {
		for x := range 20 {
			got, ok := o.Get(x, y)
			if x < 10 || y < 10 {
				if ok {
					t.Fatalf("Get(%d,%d): got %d, want absent", x, y, got)
				}
				continue
			}
			if want := side*(y-10) + x - 10; !ok || got != want {
				t.Fatalf("Get(%d,%d): got %d, %v, want %d", x, y, got, ok, want)
			}
		}
	}
}

func TestViewOverhang_Disjoint(t *testing.T) {
	b := newIndexed(10, 10)
	for _, r := range []Rect{{-30, 0, 10, 10}, {20, 0, 10, 10}, {0, -15, 10, 5}, {0, 10, 10, 10}, {-5, -5, 5, 5}} {
		o := b.ViewOverhang(r.X, r.Y, r.W, r.H)
		if o.Inner().Width() != 0 || o.Inner().Height() != 0 {
			t.Errorf("ViewOverhang%v inner: got %dx%d, want 0x0", r, o.Inner().Width(), o.Inner().Height())
		}
		valid := o.ValidRect()
		if valid.Area() != 0 {
			t.Errorf("ViewOverhang%v ValidRect: got %v, want empty", r, valid)
		}
		if valid.X < 0 || valid.X > r.W || valid.Y < 0 || valid.Y > r.H {
			t.Errorf("ViewOverhang%v ValidRect %v lies outside the frame", r, valid)
		}
		checkOverhang(t, o, b, r.X, r.Y, Rect{})
		n := 0
		for m := range o.Pixels().Inner().All() {
			if m.Ok {
				t.Fatalf("ViewOverhang%v yielded a present cell", r)
			}
			n++
		}
		if n != r.W*r.H {
			t.Errorf("ViewOverhang%v yielded %d positions, want %d", r, n, r.W*r.H)
		}
	}
}

func TestViewOverhang_NegativeSize(t *testing.T) {
	b := newIndexed(10, 10)
	o := b.ViewOverhang(2, 2, -3, 4)
	if o.Width() != 0 || o.Height() != 4 {
		t.Errorf("size: got %dx%d, want 0x4", o.Width(), o.Height())
	}
	if o.Pixels().Len() != 0 {
		t.Errorf("Len: got %d, want 0", o.Pixels().Len())
	}
}

func TestOverhang_SubViews(t *testing.T) {
	b := newIndexed(side, side)
	v, _ := b.View(10, 10, 30, 30)
	o := v.ViewOverhang(-10, -10, 20, 20) // valid part: o(10..20) == b(10..20)

	if o.ViewIsValid(5, 10, 10, 10) {
		t.Error("ViewIsValid over absent cells should be false")
	}
	if _, ok := o.View(5, 10, 10, 10); ok {
		t.Error("View over absent cells should fail")
	}
	sub, ok := o.View(12, 13, 5, 4)
	if !ok {
		t.Fatal("View inside ValidRect failed")
	}
	for y := range 4 {
		for x := range 5 {
			want, _ := b.Get(x+12, y+13)
			if got, _ := sub.Get(x, y); got != want {
				t.Fatalf("Get(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
	u := o.ViewUnchecked(12, 13, 5, 4)
	if !sameWindow(u.win, sub.win) {
		t.Error("ViewUnchecked differs from View")
	}
}

// Reaching a cell through any chain of views and overhangs must agree with
// a single direct computation.
func TestOverhang_Associative(t *testing.T) {
	b := newIndexed(side, side)
	clip := Rect{W: side, H: side}

	type step struct{ x, y, w, h int }
	chains := [][]step{
		{{-10, -10, 40, 40}, {5, -3, 20, 20}},
		{{30, 30, 40, 40}, {-5, -5, 12, 12}, {2, 2, 6, 6}},
		{{-50, -50, 60, 60}, {45, 45, 20, 20}},
		{{10, 10, 10, 10}, {-20, -20, 30, 30}, {15, 15, 10, 10}},
		{{-3, 7, 5, 5}, {-1, -1, 7, 7}, {-1, -1, 9, 9}},
		{{60, 60, 10, 10}, {-70, -70, 100, 100}},
	}
	for _, chain := range chains {
		var o Overhang[int]
		dx, dy := 0, 0
		cur := clip
		for i, s := range chain {
			if i == 0 {
				o = b.ViewOverhang(s.x, s.y, s.w, s.h)
			} else {
				o = o.ViewOverhang(s.x, s.y, s.w, s.h)
			}
			dx, dy = dx+s.x, dy+s.y
			// Every step can only shrink what is reachable.
			cur = cur.Intersect(Rect{X: dx, Y: dy, W: s.w, H: s.h})
		}
		checkOverhang(t, o, b, dx, dy, cur)
	}
}

func TestOverhang_ViewOfOverhangMatchesDirect(t *testing.T) {
	b := newIndexed(side, side)
	o := b.ViewOverhang(-10, -10, 40, 40)
	for _, r := range []Rect{{10, 10, 5, 5}, {20, 15, 20, 15}, {39, 39, 1, 1}} {
		viaOverhang, ok := o.View(r.X, r.Y, r.W, r.H)
		if !ok {
			t.Fatalf("View%v failed", r)
		}
		direct, _ := b.View(r.X-10, r.Y-10, r.W, r.H)
		if !sameWindow(viaOverhang.win, direct.win) {
			t.Errorf("View%v: got %+v, want %+v", r, viaOverhang.win, direct.win)
		}
	}
}

func TestMutOverhang(t *testing.T) {
	b := newIndexed(side, side)
	mv, _ := b.ViewMut(10, 10, 30, 30)
	o := mv.ViewOverhangMut(-5, -5, 10, 10)

	for y := range 10 {
		for x := range 10 {
			if x < 5 || y < 5 {
				if _, ok := o.Get(x, y); ok {
					t.Fatalf("Get(%d,%d) should be absent", x, y)
				}
				if o.GetMut(x, y) != nil {
					t.Fatalf("GetMut(%d,%d) should be nil", x, y)
				}
				if o.Set(x, y, 1) {
					t.Fatalf("Set(%d,%d) should fail", x, y)
				}
				continue
			}
			want := side*(y+5) + x + 5
			if got, _ := o.Get(x, y); got != want {
				t.Fatalf("Get(%d,%d): got %d, want %d", x, y, got, want)
			}
			p := o.GetMut(x, y)
			if p == nil || *p != want {
				t.Fatalf("GetMut(%d,%d) does not point at %d", x, y, want)
			}
			*p = -want
			if got, _ := o.Get(x, y); got != -want {
				t.Fatalf("write through GetMut(%d,%d) not observed: got %d", x, y, got)
			}
		}
	}
	if got, _ := b.Get(14, 14); got != -(side*14 + 14) {
		t.Errorf("write not visible in buffer: got %d", got)
	}
}

func TestMutOverhang_Nested(t *testing.T) {
	b := newIndexed(side, side)
	o := b.ViewOverhangMut(-10, -10, 40, 40)
	inner := o.ViewOverhangMut(5, 5, 10, 10) // b(-5..5)
	if !inner.Set(7, 7, 1000) {
		t.Fatal("Set inside valid area failed")
	}
	if got, _ := b.Get(2, 2); got != 1000 {
		t.Errorf("nested write landed elsewhere: b(2,2) = %d", got)
	}
	mv, ok := o.ViewMut(10, 10, 3, 3)
	if !ok {
		t.Fatal("ViewMut inside valid area failed")
	}
	mv.Fill(-1)
	if got, _ := b.Get(2, 2); got != -1 {
		t.Errorf("ViewMut write not visible: b(2,2) = %d", got)
	}
	ro := o.AsOverhang()
	if got, _ := ro.Get(12, 12); got != -1 {
		t.Errorf("AsOverhang Get(12,12): got %d, want -1", got)
	}
}

func TestOverhang_ToBuffer(t *testing.T) {
	b := newIndexed(4, 4)
	o := b.ViewOverhang(-1, 2, 6, 3)
	got := o.ToBuffer(-1)
	want := []int{
		-1, 8, 9, 10, 11, -1,
		-1, 12, 13, 14, 15, -1,
		-1, -1, -1, -1, -1, -1,
	}
	for i, v := range got.Data() {
		if v != want[i] {
			t.Fatalf("ToBuffer: got %v, want %v", got.Data(), want)
		}
	}
	collected := o.Pixels().CollectBuffer()
	for i, m := range collected.Data() {
		if m.Or(-1) != want[i] {
			t.Fatalf("CollectBuffer[%d]: got %v, want %d", i, m, want[i])
		}
	}
}

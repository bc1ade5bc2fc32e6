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

// Package pixview provides zero-copy rectangular windows into a 2D buffer
// and splittable iterators over them.
//
// A Buffer owns row-major storage. View and MutView are windows into it;
// a window of a window is flattened to a single (stride, origin, size)
// record, so addressing stays O(1) at any nesting depth:
//
//	buf := pixview.New[float32](640, 480)
//	roi, ok := buf.View(100, 100, 64, 64)
//	inner, ok := roi.View(8, 8, 16, 16) // origin (108, 108) in buf
//
// # Overhang
//
// ViewOverhang accepts rectangles that extend past the parent, including
// negative origins. Cells outside the parent read as absent:
//
//	pad := roi.ViewOverhang(-2, -2, 68, 68)
//	v, ok := pad.Get(0, 0) // ok == false
//
// # Iteration
//
// Pixels returns a PixIter whose producer yields cells in row-major order.
// Producers split in O(1) at any index and preserve order, which is what
// the fork-join helpers in contrib/parallel rely on:
//
//	left, right := roi.Pixels().Inner().SplitAt(100)
//
// Rows walks the same cells in backing-memory order, one contiguous row
// slice at a time.
//
// # Checked and unchecked access
//
// Get, GetMut and View return false or nil when the coordinates fall
// outside the valid rectangle. The Unchecked variants skip that test; their
// preconditions are asserted only when built with -tags pixview_debug.
package pixview

// Copyright 2025 The go-pixview Authors. SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"cmp"
	"slices"

	"github.com/ajroetker/go-pixview/pixview"
	"github.com/eapache/queue"
)

// Piece is one part of a split producer. Offset is the logical index, in
// the unsplit producer, of the piece's first element.
type Piece[P any] struct {
	Offset int
	Iter   P
}

// Split cuts p into at most pieces parts, none shorter than minLen unless
// p itself is. Parts are cut in halves breadth-first, so they are of
// similar length, and are returned in logical order.
//
// p must not be used after Split.
func Split[E any, P pixview.Producer[E, P]](p P, pieces, minLen int) []Piece[P] {
	minLen = max(minLen, 1)
	n := p.Len()
	frontier := queue.New()
	frontier.Add(Piece[P]{Offset: 0, Iter: p})

	var leaves []Piece[P]
	for frontier.Length() > 0 && frontier.Length()+len(leaves) < pieces {
		pc := frontier.Remove().(Piece[P])
		size := pc.Iter.Len()
		if size < 2*minLen {
			leaves = append(leaves, pc)
			continue
		}
		half := size / 2
		left, right := pc.Iter.SplitAt(half)
		frontier.Add(Piece[P]{Offset: pc.Offset, Iter: left})
		frontier.Add(Piece[P]{Offset: pc.Offset + half, Iter: right})
	}
	for frontier.Length() > 0 {
		leaves = append(leaves, frontier.Remove().(Piece[P]))
	}
	slices.SortFunc(leaves, func(a, b Piece[P]) int { return cmp.Compare(a.Offset, b.Offset) })

	tracer().Debugf("split %d elements into %d pieces", n, len(leaves))
	return leaves
}

// drain feeds every remaining element of p to fn, front to back.
func drain[E any, P pixview.Producer[E, P]](p P, fn func(E)) {
	for {
		e, ok := p.Next()
		if !ok {
			return
		}
		fn(e)
	}
}

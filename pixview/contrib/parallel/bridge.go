// Copyright 2025 The go-pixview Authors. SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"context"
	"fmt"
	"runtime"

	"github.com/ajroetker/go-pixview/pixview"
	"golang.org/x/sync/errgroup"
)

// ForEach calls fn once for every element of p, running pieces of p
// concurrently on pool. fn must be safe for concurrent use.
func ForEach[E any, P pixview.Producer[E, P]](pool *Pool, p P, fn func(E)) {
	opts := pool.Options()
	pieces := Split[E](p, opts.Pieces, opts.MinLen)
	pool.ParallelForAtomic(len(pieces), func(i int) {
		drain[E](pieces[i].Iter, fn)
	})
}

// ForEachIndexed is ForEach with the logical index of each element in p.
func ForEachIndexed[E any, P pixview.Producer[E, P]](pool *Pool, p P, fn func(i int, e E)) {
	opts := pool.Options()
	pieces := Split[E](p, opts.Pieces, opts.MinLen)
	pool.ParallelForAtomic(len(pieces), func(i int) {
		idx := pieces[i].Offset
		drain[E](pieces[i].Iter, func(e E) {
			fn(idx, e)
			idx++
		})
	})
}

// Collect drains p into a slice in logical order, the same order a
// sequential traversal yields.
func Collect[E any, P pixview.Producer[E, P]](pool *Pool, p P) []E {
	out := make([]E, p.Len())
	ForEachIndexed[E](pool, p, func(i int, e E) {
		out[i] = e
	})
	return out
}

// CollectBuffer drains it into a buffer of its width and height.
// It panics if the iterator has been partially consumed.
func CollectBuffer[E any, P pixview.Producer[E, P]](pool *Pool, it pixview.PixIter[E, P]) *pixview.Buffer[E] {
	if n := it.Width() * it.Height(); it.Len() != n {
		panic(fmt.Sprintf("parallel: collecting %d elements into a %dx%d buffer", it.Len(), it.Width(), it.Height()))
	}
	b, _ := pixview.FromSlice(it.Width(), it.Height(), Collect[E](pool, it.Inner()))
	return b
}

// TryForEach calls fn for every element of p with at most limit pieces in
// flight, each on its own goroutine. The first error returned by fn
// cancels ctx for the remaining pieces and is returned. If limit <= 0,
// GOMAXPROCS is used.
//
// Pieces are cut with the environment's default minimum length.
func TryForEach[E any, P pixview.Producer[E, P]](ctx context.Context, p P, limit int, fn func(E) error) error {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	opts := Options{Workers: limit}.withDefaults()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, pc := range Split[E](p, opts.Pieces, opts.MinLen) {
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				e, ok := pc.Iter.Next()
				if !ok {
					return nil
				}
				if err := fn(e); err != nil {
					return err
				}
			}
		})
	}
	err := g.Wait()
	if err != nil {
		tracer().Debugf("TryForEach stopped: %v", err)
	}
	return err
}

// Fill sets every cell of v to value, one contiguous row slice at a time.
func Fill[T any](pool *Pool, v pixview.MutView[T], value T) {
	if v.Width() == 0 {
		return
	}
	opts := pool.Options()
	minRows := max(opts.MinLen/v.Width(), 1)
	pieces := Split[[]T](v.Rows(), opts.Pieces, minRows)
	pool.ParallelForAtomic(len(pieces), func(i int) {
		drain[[]T](pieces[i].Iter, func(row []T) {
			for x := range row {
				row[x] = value
			}
		})
	})
}

// Copyright 2025 The go-pixview Authors. SPDX-License-Identifier: Apache-2.0

// Package parallel runs pixview producers on a persistent worker pool.
//
// A producer is split breadth-first into order-tagged pieces, and the
// pieces are handed to the pool's workers. Because splitting never
// reorders elements, results can be written back by logical index:
//
//	pool := parallel.New(0)
//	defer pool.Close()
//
//	v, _ := buf.View(64, 64, 256, 256)
//	out := parallel.CollectBuffer(pool, v.Pixels())
//	parallel.ForEach(pool, buf.PixelsMut().Inner(), func(p *float32) { *p *= 0.5 })
//
// Pool sizing and the minimum piece length default to the PIXVIEW_WORKERS
// and PIXVIEW_MIN_LEN environment variables.
package parallel

import "github.com/npillmayer/schuko/tracing"

// tracer returns a trace sink for the parallel package namespace.
func tracer() tracing.Trace {
	return tracing.Select("pixview.parallel")
}

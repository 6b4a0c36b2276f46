package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/generator"
	"github.com/dshills/caveripper/pkg/layout"
	"github.com/dshills/caveripper/pkg/prng"
)

// Predicate reports whether a generated layout matches what the caller
// is searching for.
type Predicate func(*layout.Layout) bool

// Options controls a Search call. A zero Options is valid and searches
// seeds 0..Count-1 (defaulting Count to 1,000,000) with GOMAXPROCS
// workers.
type Options struct {
	// Start and Count bound the seed range searched: [Start, Start+Count).
	Start uint32
	Count uint32

	// Workers is the number of goroutines generating layouts
	// concurrently. Zero means runtime.GOMAXPROCS(0).
	Workers int
}

// Result is one match Search found.
type Result struct {
	Seed   prng.Seed
	Layout *layout.Layout
}

// Search generates every seed in the requested range against ci,
// calling pred on each resulting layout, and returns the first match any
// worker reports along with whether one was found. Workers race ahead
// independently, so when several seeds match, the one returned is not
// necessarily the lowest. ctx cancellation (or another worker's match)
// stops the others promptly via errgroup's shared context.
func Search(ctx context.Context, ci *caveinfo.CaveInfo, pred Predicate, opts Options) (Result, bool, error) {
	count := opts.Count
	if count == 0 {
		count = 1_000_000
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	gctx, cancel := context.WithCancel(gctx)
	defer cancel()
	results := make(chan Result, workers)

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for offset := uint32(w); offset < count; offset += uint32(workers) {
				select {
				case <-gctx.Done():
					return nil
				default:
				}

				seed := prng.Seed(opts.Start + offset)
				l := generator.Generate(seed, ci)
				if pred(l) {
					select {
					case results <- Result{Seed: seed, Layout: l}:
						cancel()
					case <-gctx.Done():
					}
					return nil
				}
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case res := <-results:
		return res, true, nil
	case err := <-done:
		select {
		case res := <-results:
			return res, true, nil
		default:
		}
		if err != nil && err != context.Canceled {
			return Result{}, false, err
		}
		return Result{}, false, nil
	}
}

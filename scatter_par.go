package ripshuffle

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// parBaseCaseItems is the input size below which the parallel shuffle falls
// through to the sequential one; forking pays off only well above the
// sequential base case.
const parBaseCaseItems = 1 << 20

// parScatterShuffle distributes the scatter-shuffle recursion over
// goroutines. The top-level partition runs sequentially (it is inherently
// serial because of the running placement state); the per-bucket recursion
// then fans out with one independently seeded child source per task. Tasks
// only ever touch disjoint regions of data, so no synchronization beyond the
// final join is needed.
func parScatterShuffle[T any](src Splittable, data []T, cfg parConfig) {
	n := len(data)
	if n < cfg.parBaseCase {
		seqScatterShuffleImpl(src, data, cfg.seq)
		return
	}

	k := fanOut(n, cfg.seq)
	if k < 2 {
		fisherYates(src, data)
		return
	}

	bs := splitIntoBuckets(n, k)
	roughShuffle(src, data, bs)

	residual := shuffleResiduals(src, data, bs, func(d []T) {
		parScatterShuffle(src, d, cfg)
	})

	targets := make([]int, k)
	drawTargetLengths(src, residual, bs, targets)
	fitTargetLengths(data, bs, targets)

	tasks := make([]func(), 0, k)
	for i := range bs {
		region := data[bs[i].begin:bs[i].end]
		child := src.Split()
		tasks = append(tasks, func() {
			parScatterShuffle(child, region, cfg)
		})
	}
	forkJoin(tasks)
}

// parConfig adds the fork threshold to the sequential tuning knobs.
type parConfig struct {
	seq         scatterConfig
	parBaseCase int
}

func defaultParConfig[T any]() parConfig {
	return parConfig{
		seq:         seqConfig[T](),
		parBaseCase: parBaseCaseItems,
	}
}

// forkJoin runs the tasks, possibly in parallel, and waits for all of them.
// A panicking task never leaks its siblings: every task is joined first, then
// the first captured panic value is re-raised in the caller.
func forkJoin(tasks []func()) {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	var once sync.Once
	var captured any

	for _, task := range tasks {
		task := task
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					once.Do(func() { captured = r })
				}
			}()
			task()
			return nil
		})
	}
	_ = g.Wait()

	if captured != nil {
		panic(captured)
	}
}

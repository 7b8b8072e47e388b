package pool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs independent jobs on a bounded number of goroutines.
type Pool struct {
	workers int
}

// NewPool creates a Pool with count workers. A count of zero or less uses
// one worker per CPU.
func NewPool(count int) *Pool {
	if count <= 0 {
		count = runtime.NumCPU()
	}
	return &Pool{workers: count}
}

// Workers returns the number of goroutines used by Parallelize.
func (p *Pool) Workers() int {
	return p.workers
}

// Parallelize calls f(0), ..., f(count-1) concurrently and returns the
// results in index order. The first error stops the remaining jobs from
// being scheduled and is returned.
func (p *Pool) Parallelize(count int, f func(i int) (interface{}, error)) ([]interface{}, error) {
	results := make([]interface{}, count)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(p.workers)
	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			r, err := f(i)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

package kmeans

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/fgt/distance"
	"github.com/hupe1980/fgt/resource"
)

// cancelCheckInterval is how many points a worker processes between context checks.
const cancelCheckInterval = 4096

// partial is one worker's private accumulator over [start, end).
type partial struct {
	start, end int
	sums       *mat.Dense
	counts     []int
	err        float64
	_          cpu.CacheLinePad
}

func (p *partial) reset() {
	p.sums.Zero()
	clear(p.counts)
	p.err = 0
}

type engine struct {
	points   *mat.Dense
	k        int
	clusters *mat.Dense
	labels   []int

	// Shared totals, written only in merge under mu.
	mu     sync.Mutex
	sums   *mat.Dense
	counts []int
	errSum float64

	partials []partial
	res      *resource.Controller
}

func newEngine(points, starting *mat.Dense, k, workers int, res *resource.Controller) *engine {
	n, dim := points.Dims()

	e := &engine{
		points:   points,
		k:        k,
		clusters: mat.DenseCopyOf(starting),
		labels:   make([]int, n),
		sums:     mat.NewDense(k, dim, nil),
		counts:   make([]int, k),
		partials: make([]partial, workers),
		res:      res,
	}

	chunk := (n + workers - 1) / workers
	for w := range e.partials {
		start := min(w*chunk, n)
		e.partials[w] = partial{
			start:  start,
			end:    min(start+chunk, n),
			sums:   mat.NewDense(k, dim, nil),
			counts: make([]int, k),
		}
	}

	return e
}

// step runs one assignment/merge/update round.
func (e *engine) step(ctx context.Context) error {
	e.sums.Zero()
	clear(e.counts)
	e.errSum = 0

	g, gctx := errgroup.WithContext(ctx)
	for w := range e.partials {
		p := &e.partials[w]
		g.Go(func() error {
			if err := e.res.AcquireWorker(gctx); err != nil {
				return err
			}
			defer e.res.ReleaseWorker()

			if err := e.assign(gctx, p); err != nil {
				return err
			}
			e.merge(p)
			return nil
		})
	}
	// Barrier: every worker has merged once Wait returns.
	if err := g.Wait(); err != nil {
		return err
	}

	e.update()
	return nil
}

// assign labels the worker's points and accumulates its partial sums.
// Centroids are only read here.
func (e *engine) assign(ctx context.Context, p *partial) error {
	p.reset()

	for i := p.start; i < p.end; i++ {
		if (i-p.start)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		row := e.points.RawRowView(i)
		j, d := distance.Nearest(row, e.clusters)

		e.labels[i] = j
		floats.Add(p.sums.RawRowView(j), row)
		p.counts[j]++
		p.err += d
	}

	return nil
}

func (e *engine) merge(p *partial) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for j := 0; j < e.k; j++ {
		e.counts[j] += p.counts[j]
		floats.Add(e.sums.RawRowView(j), p.sums.RawRowView(j))
	}
	e.errSum += p.err
}

// update recomputes the centroids from the merged sums. An empty cluster
// takes the accumulated sum, which is the zero vector.
func (e *engine) update() {
	for j := 0; j < e.k; j++ {
		dst := e.clusters.RawRowView(j)
		src := e.sums.RawRowView(j)

		c := e.counts[j]
		if c == 0 {
			copy(dst, src)
			continue
		}
		for d := range dst {
			dst[d] = src[d] / float64(c)
		}
	}
}

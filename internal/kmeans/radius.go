package kmeans

import (
	"context"

	"github.com/sourcegraph/conc/pool"

	"github.com/hupe1980/fgt/distance"
)

// radii computes, with the final centroids, the largest distance from any
// point to the centroid of its cluster. Workers reuse the assignment
// partition and return private radii vectors that are reduced by max.
func (e *engine) radii(ctx context.Context) ([]float64, float64, error) {
	p := pool.NewWithResults[[]float64]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(len(e.partials))

	for w := range e.partials {
		start, end := e.partials[w].start, e.partials[w].end
		p.Go(func(ctx context.Context) ([]float64, error) {
			if err := e.res.AcquireWorker(ctx); err != nil {
				return nil, err
			}
			defer e.res.ReleaseWorker()

			local := make([]float64, e.k)
			for i := start; i < end; i++ {
				if (i-start)%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return nil, err
					}
				}

				j := e.labels[i]
				d := distance.L2(e.points.RawRowView(i), e.clusters.RawRowView(j))
				if d > local[j] {
					local[j] = d
				}
			}
			return local, nil
		})
	}

	parts, err := p.Wait()
	if err != nil {
		return nil, 0, err
	}

	radii := make([]float64, e.k)
	for j := range radii {
		radii[j] = NoRadius
	}
	for _, local := range parts {
		for j, r := range local {
			if r > radii[j] {
				radii[j] = r
			}
		}
	}

	maxRadius := NoRadius
	for _, r := range radii {
		if r > maxRadius {
			maxRadius = r
		}
	}

	return radii, maxRadius, nil
}

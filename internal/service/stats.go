package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"caritasAPI/internal/models"
	"caritasAPI/internal/repository"
)

const (
	recentWindow = 30 * 24 * time.Hour
	topN         = 10
)

// gatherStats runs the shared counters and any extra queries concurrently.
// The first failure cancels the rest.
func gatherStats(ctx context.Context, src repository.StatsSource, now time.Time, extra ...func(context.Context) error) (models.Stats, error) {
	var stats models.Stats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := src.Count(ctx)
		stats.Total = n
		return err
	})
	g.Go(func() error {
		n, err := src.CountSince(ctx, now.UTC().Add(-recentWindow))
		stats.Recent = n
		return err
	})
	g.Go(func() error {
		counts, err := src.CountByStatus(ctx)
		stats.ByStatus = counts
		return err
	})
	for _, fn := range extra {
		g.Go(func() error { return fn(ctx) })
	}

	if err := g.Wait(); err != nil {
		return models.Stats{}, err
	}
	return stats, nil
}

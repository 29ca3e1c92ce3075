package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"wanderwise/internal/services"
	mem "wanderwise/pkg/memcache"
)

const sweepEvery = 10 * time.Minute

var Module = fx.Options(
	fx.Provide(
		mem.NewTTLStore[services.LegKey, float64],
		mem.NewTTLStore[string, *rate.Limiter],
		provideLegCache,
		provideLimiterStore,
	),
	fx.Invoke(startSweeper),
)

func provideLegCache(s *mem.TTLStore[services.LegKey, float64]) services.LegCache {
	return s
}

func provideLimiterStore(s *mem.TTLStore[string, *rate.Limiter]) mem.Store[string, *rate.Limiter] {
	return s
}

// startSweeper drops expired entries so idle clients and old legs do not pile up.
func startSweeper(
	lc fx.Lifecycle,
	legs *mem.TTLStore[services.LegKey, float64],
	limiters *mem.TTLStore[string, *rate.Limiter],
	log *zap.Logger,
) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				t := time.NewTicker(sweepEvery)
				defer t.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-t.C:
						n := legs.Sweep() + limiters.Sweep()
						if n > 0 {
							log.Debug("cache sweep", zap.Int("removed", n))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

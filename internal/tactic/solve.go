package tactic

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/CounterLite/pkg/common"
)

type Engine interface {
	Clear()
	Search(ctx context.Context, searchParams common.SearchParams) common.SearchInfo
}

type Result struct {
	Total  int
	Solved int
}

// SolveTactic searches every test for moveTime with concurrency independent engines.
func SolveTactic(
	ctx context.Context,
	logger zerolog.Logger,
	tests []EpdItem,
	newEngine func() Engine,
	moveTime time.Duration,
	concurrency int,
) (Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	g, ctx := errgroup.WithContext(ctx)

	var indexes = make(chan int)
	var solved int64

	g.Go(func() error {
		defer close(indexes)
		for i := range tests {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case indexes <- i:
			}
		}
		return nil
	})

	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			var eng = newEngine()
			for index := range indexes {
				var test = &tests[index]
				eng.Clear()
				var si = eng.Search(ctx, common.SearchParams{
					Position: test.Position,
					Limits:   common.LimitsType{MoveTime: int(moveTime / time.Millisecond)},
				})
				if ctx.Err() != nil {
					return ctx.Err()
				}
				var bestMove = common.MoveEmpty
				if len(si.MainLine) != 0 {
					bestMove = si.MainLine[0]
				}
				var ok = containsMove(test.BestMoves, bestMove)
				if ok {
					atomic.AddInt64(&solved, 1)
				}
				logger.Info().
					Str("id", test.ID).
					Bool("solved", ok).
					Str("move", bestMove.String()).
					Int("depth", si.Depth).
					Int64("nodes", si.Nodes).
					Msg("tactic test")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{Total: len(tests), Solved: int(solved)}, nil
}

func containsMove(moves []common.Move, move common.Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}

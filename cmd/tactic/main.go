package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/CounterLite/internal/evalbuilder"
	"github.com/ChizhovVadim/CounterLite/internal/tactic"
	"github.com/ChizhovVadim/CounterLite/pkg/engine"
)

type Config struct {
	EpdPath     string
	EvalName    string
	Hash        int
	MoveTime    time.Duration
	Concurrency int
}

var config Config

func main() {
	flag.StringVar(&config.EpdPath, "epd", "~/chess/tests/tests.epd", "path to epd test suite")
	flag.StringVar(&config.EvalName, "eval", "", "specifies evaluation function")
	flag.IntVar(&config.Hash, "hash", 64, "transposition table size in MB per engine")
	flag.DurationVar(&config.MoveTime, "movetime", 3*time.Second, "search time per test")
	flag.IntVar(&config.Concurrency, "concurrency", runtime.NumCPU(), "number of engines searching in parallel")
	flag.Parse()

	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	if err := run(logger); err != nil {
		logger.Fatal().Err(err).Msg("solveTactic failed")
	}
}

func run(logger zerolog.Logger) error {
	logger.Info().
		Str("epd", config.EpdPath).
		Str("eval", config.EvalName).
		Dur("moveTime", config.MoveTime).
		Int("concurrency", config.Concurrency).
		Msg("solveTactic started")

	var tests, err = tactic.LoadEpd(logger, mapPath(config.EpdPath))
	if err != nil {
		return err
	}

	var start = time.Now()
	result, err := tactic.SolveTactic(context.Background(), logger, tests, newEngine,
		config.MoveTime, config.Concurrency)
	if err != nil {
		return err
	}

	logger.Info().
		Int("solved", result.Solved).
		Int("total", result.Total).
		Dur("elapsed", time.Since(start)).
		Msg("solveTactic finished")
	return nil
}

func newEngine() tactic.Engine {
	var options = engine.NewOptions(evalbuilder.Get(config.EvalName))
	options.Hash = config.Hash
	return engine.NewEngine(options)
}

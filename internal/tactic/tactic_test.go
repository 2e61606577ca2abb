package tactic

import (
	"context"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/ChizhovVadim/CounterLite/pkg/engine"
	pst "github.com/ChizhovVadim/CounterLite/pkg/eval/pst"
)

func TestLoadEpd(t *testing.T) {
	var is = is.New(t)
	var tests, err = LoadEpd(zerolog.Nop(), "testdata/tests.epd")
	is.NoErr(err)
	is.Equal(len(tests), 4) // broken line skipped

	var want = []struct {
		id   string
		move string
	}{
		{"WAC.001", "g3g6"},
		{"WAC.002", "b3b2"},
		{"WAC.003", "e3g3"},
		{"back rank", "a1a8"},
	}
	for i, w := range want {
		is.Equal(tests[i].ID, w.id)
		is.Equal(len(tests[i].BestMoves), 1)
		is.Equal(tests[i].BestMoves[0].String(), w.move)
	}

	_, err = LoadEpd(zerolog.Nop(), "testdata/missing.epd")
	is.True(err != nil)
}

func TestParseEpdErrors(t *testing.T) {
	var tests = []string{
		"6k1/5ppp/8/8/8/8/8/R5K1 w - -",
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - id \"no bm\";",
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - bm Qa8;",
	}
	for _, s := range tests {
		if _, err := parseEpdTest(s); err == nil {
			t.Error("expected error", s)
		}
	}
}

func TestSolveTactic(t *testing.T) {
	var is = is.New(t)
	var tests []EpdItem
	for i := 0; i < 3; i++ {
		var item, err = parseEpdTest(`6k1/5ppp/8/8/8/8/8/R5K1 w - - bm Ra8#; id "back rank";`)
		is.NoErr(err)
		tests = append(tests, item)
	}
	var newEngine = func() Engine {
		var options = engine.NewOptions(func() interface{} { return pst.NewEvaluationService() })
		options.Hash = 4
		return engine.NewEngine(options)
	}
	var result, err = SolveTactic(context.Background(), zerolog.Nop(), tests, newEngine, 200*time.Millisecond, 2)
	is.NoErr(err)
	is.Equal(result, Result{Total: 3, Solved: 3})
}

func TestSolveTacticZeroConcurrency(t *testing.T) {
	var is = is.New(t)
	var item, err = parseEpdTest(`6k1/5ppp/8/8/8/8/8/R5K1 w - - bm Ra8#; id "back rank";`)
	is.NoErr(err)
	var newEngine = func() Engine {
		var options = engine.NewOptions(func() interface{} { return pst.NewEvaluationService() })
		options.Hash = 1
		return engine.NewEngine(options)
	}

	type solveResult struct {
		result Result
		err    error
	}
	var done = make(chan solveResult, 1)
	go func() {
		var result, err = SolveTactic(context.Background(), zerolog.Nop(),
			[]EpdItem{item}, newEngine, 50*time.Millisecond, 0)
		done <- solveResult{result, err}
	}()

	select {
	case res := <-done:
		is.NoErr(res.err)
		is.Equal(res.result, Result{Total: 1, Solved: 1})
	case <-time.After(10 * time.Second):
		t.Fatal("SolveTactic did not return")
	}
}

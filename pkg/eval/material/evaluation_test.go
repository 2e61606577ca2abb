package eval

import (
	"testing"

	"github.com/ChizhovVadim/CounterLite/pkg/common"
)

func TestEvaluate(t *testing.T) {
	var tests = []struct {
		fen  string
		eval int
	}{
		{common.InitialPositionFen, 0},
		{"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", 200},
		{"6k1/5ppp/8/8/8/8/8/R5K1 b - - 0 1", -200},
		{"4k3/8/8/8/8/8/8/2BQK3 w - - 0 1", 1228},
	}
	var e = NewEvaluationService()
	for _, test := range tests {
		var p, err = common.NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := e.Evaluate(p); got != test.eval {
			t.Error(test.fen, got)
		}
	}
}

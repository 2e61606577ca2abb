package eval

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

var testFens = []string{
	InitialPositionFen,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
}

func TestDecodedTables(t *testing.T) {
	var tests = []struct {
		side, piece int
		square      string
		value       int
	}{
		{SideWhite, Pawn, "a2", 0},
		{SideWhite, Pawn, "a7", 56},
		{SideBlack, Pawn, "a2", 56},
		{SideWhite, Knight, "a1", -64},
		{SideWhite, Knight, "b1", -56},
		{SideBlack, Knight, "a8", -64},
		{SideWhite, King, "g1", 40},
		{SideWhite, King, "e1", 0},
		{SideBlack, King, "g8", 40},
	}
	for _, test := range tests {
		var got = pst[test.side][test.piece][ParseSquare(test.square)]
		if got != test.value {
			t.Error(test, got)
		}
	}
}

func TestStartPositionIsBalanced(t *testing.T) {
	var is = is.New(t)
	var p, err = NewPositionFromFEN(InitialPositionFen)
	is.NoErr(err)
	is.Equal(NewEvaluationService().Evaluate(p), 0)
}

func TestSymmetry(t *testing.T) {
	var e = NewEvaluationService()
	for _, fen := range testFens {
		var is = is.New(t)
		var p, err = NewPositionFromFEN(fen)
		is.NoErr(err)
		var score = e.Evaluate(p)

		mirror, err := p.Mirror()
		is.NoErr(err)
		is.Equal(e.Evaluate(mirror), score) // color flip

		other, err := NewPositionFromFEN(strings.Replace(fen, " w ", " b ", 1))
		is.NoErr(err)
		is.Equal(e.Evaluate(other), -score) // side to move
	}
}

func TestMaterialDominates(t *testing.T) {
	var is = is.New(t)
	var p, err = NewPositionFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	is.NoErr(err)
	// rook against three pawns, kings on equally scored squares
	is.Equal(NewEvaluationService().Evaluate(p), 200)
}

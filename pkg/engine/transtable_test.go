package engine

import (
	"testing"

	"github.com/matryer/is"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

func TestTransTableReadWrite(t *testing.T) {
	var is = is.New(t)
	var tt, err = newTransTable(1, ReplaceAlways)
	is.NoErr(err)
	is.Equal(len(tt.entries), 1<<16)

	var key = uint64(0x9d39247e33776d41)
	var move = makeTestMove(t, "e2e4")
	_, _, _, _, ok := tt.Read(key)
	is.True(!ok) // empty table

	tt.Update(key, 5, -123, boundUpper, move)
	depth, score, bound, m, ok := tt.Read(key)
	is.True(ok)
	is.Equal(depth, 5)
	is.Equal(score, -123)
	is.Equal(bound, boundUpper)
	is.Equal(m, move)

	_, _, _, _, ok = tt.Read(key ^ 1<<40) // same slot, other position
	is.True(!ok)

	tt.Clear()
	_, _, _, _, ok = tt.Read(key)
	is.True(!ok)
}

func TestTransTableAlwaysOverwrites(t *testing.T) {
	var is = is.New(t)
	var tt, err = newTransTable(1, ReplaceAlways)
	is.NoErr(err)
	var key1 = uint64(12345)
	var key2 = key1 + uint64(len(tt.entries))

	tt.Update(key1, 10, 50, boundExact, MoveEmpty)
	tt.Update(key2, 1, 70, boundLower, MoveEmpty)

	_, _, _, _, ok := tt.Read(key1)
	is.True(!ok) // evicted by a shallower entry
	depth, score, _, _, ok := tt.Read(key2)
	is.True(ok)
	is.Equal(depth, 1)
	is.Equal(score, 70)
}

func TestTransTableDepthPreferred(t *testing.T) {
	var is = is.New(t)
	var tt, err = newTransTable(1, ReplaceDepthPreferred)
	is.NoErr(err)
	var key1 = uint64(777)
	var key2 = key1 + uint64(len(tt.entries))

	tt.Update(key1, 10, 50, boundExact, MoveEmpty)
	tt.Update(key2, 1, 70, boundLower, MoveEmpty)
	_, _, _, _, ok := tt.Read(key1)
	is.True(ok) // deeper entry kept

	tt.IncDate()
	tt.Update(key2, 1, 70, boundLower, MoveEmpty)
	_, _, _, _, ok = tt.Read(key2)
	is.True(ok) // entries of an older search are replaced

	_, err = newTransTable(1, "random")
	is.True(err != nil)
}

func TestMateScoreAcrossPlies(t *testing.T) {
	var is = is.New(t)
	// mate found 5 plies from the root at a node 3 plies deep
	var stored = valueToTT(winIn(5), 3)
	is.Equal(valueFromTT(stored, 3), winIn(5))
	is.Equal(valueFromTT(stored, 1), winIn(3))
	is.Equal(valueFromTT(valueToTT(lossIn(6), 2), 4), lossIn(8))
	is.Equal(valueFromTT(valueToTT(150, 7), 1), 150)
}

func TestUciScore(t *testing.T) {
	var tests = []struct {
		value int
		score UciScore
	}{
		{35, UciScore{Centipawns: 35}},
		{-250, UciScore{Centipawns: -250}},
		{winIn(1), UciScore{Mate: 1}},
		{winIn(3), UciScore{Mate: 2}},
		{lossIn(2), UciScore{Mate: -1}},
	}
	for _, test := range tests {
		if got := newUciScore(test.value); got != test.score {
			t.Error(test.value, got)
		}
	}
}

func makeTestMove(t *testing.T, lan string) Move {
	t.Helper()
	var p, err = NewPositionFromFEN(InitialPositionFen)
	if err != nil {
		t.Fatal(err)
	}
	var m = p.ParseMoveLAN(lan)
	if m == MoveEmpty {
		t.Fatal("bad move", lan)
	}
	return m
}

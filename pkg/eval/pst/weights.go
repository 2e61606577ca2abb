package eval

import . "github.com/ChizhovVadim/CounterLite/pkg/common"

var pieceValues = [King + 1]int{Empty: 0, Pawn: 100, Knight: 320, Bishop: 328, Rook: 500, Queen: 900, King: 20000}

// Four words per piece from pawn to king. Nibble n of word w scores square 16*w+n
// as 8*v-64 centipawns, white point of view.
var packedTables = [24]uint64{
	// pawns
	0x888888889AA55AA9,
	0x888BB88897688679,
	0xAABDDBAA99ACCA99,
	0x88888888FFFFFFFF,
	// knights
	0x1589985101333310,
	0x38ABBA8339AAAA93,
	0x38AAAA8339ABBA93,
	0x0133331015888851,
	// bishops
	0x6988889656666665,
	0x68AAAA866AAAAAA6,
	0x689AA986699AA996,
	0x6566666656888888,
	// rooks
	0x7888888788888888,
	0x7888888778888887,
	0x7888888778888887,
	0x999999999AAAAAA9,
	// queens
	0x6898888656677665,
	0x8899998769999986,
	0x6899998678999987,
	0x5667766568888886,
	// kings
	0xBB8888BBBDA88ADB,
	0x5331133565555556,
	0x3110011331100113,
	0x3110011331100113,
}

// pst[side][piece][square]
var pst [2][King + 1][64]int

func init() {
	for piece := Pawn; piece <= King; piece++ {
		for sq := 0; sq < 64; sq++ {
			var i = 64*(piece-Pawn) + sq
			var nibble = int((packedTables[i/16] >> (uint(i%16) * 4)) & 0xF)
			pst[SideWhite][piece][sq] = nibble*8 - 64
		}
		for sq := 0; sq < 64; sq++ {
			pst[SideBlack][piece][sq] = pst[SideWhite][piece][FlipSquare(sq)]
		}
	}
}

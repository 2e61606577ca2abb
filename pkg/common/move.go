package common

// Move packs from, to, moving piece, captured piece and promotion into 21 bits.
type Move int32

const MoveEmpty = Move(0)

func makeMove(from, to, movingPiece, capturedPiece, promotion int) Move {
	return Move(from ^ (to << 6) ^ (movingPiece << 12) ^
		(capturedPiece << 15) ^ (promotion << 18))
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) MovingPiece() int {
	return int((m >> 12) & 7)
}

func (m Move) CapturedPiece() int {
	return int((m >> 15) & 7)
}

func (m Move) Promotion() int {
	return int((m >> 18) & 7)
}

func (m Move) IsCapture() bool {
	return m.CapturedPiece() != Empty
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var s = SquareName(m.From()) + SquareName(m.To())
	if m.Promotion() != Empty {
		s += string("nbrq"[m.Promotion()-Knight])
	}
	return s
}

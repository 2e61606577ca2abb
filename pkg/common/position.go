package common

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

// Position is a mutable board with an undo stack and the key history of the game.
// Moves are applied and taken back in strict stack order.
type Position struct {
	board  dragontoothmg.Board
	rule50 int
	undo   []undoInfo
	keys   []uint64
	legal  []legalMoves
}

type undoInfo struct {
	unapply func()
	move    Move
	rule50  int
}

// legal moves generated at a given ply, reused while the key matches
type legalMoves struct {
	key   uint64
	valid bool
	moves []dragontoothmg.Move
}

func NewPositionFromFEN(fen string) (*Position, error) {
	fen = normalizeFEN(fen)
	if _, err := chess.FEN(fen); err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	var board, err = parseBoard(fen)
	if err != nil {
		return nil, err
	}
	var p = &Position{
		board:  board,
		rule50: halfmoveClock(fen),
	}
	p.keys = append(p.keys, board.Hash())
	return p, nil
}

func parseBoard(fen string) (board dragontoothmg.Board, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse fen %q: %v", fen, r)
		}
	}()
	board = dragontoothmg.ParseFen(fen)
	return
}

func (p *Position) String() string {
	return p.board.ToFen()
}

func (p *Position) Key() uint64 {
	return p.board.Hash()
}

func (p *Position) SideToMove() int {
	if p.board.Wtomove {
		return SideWhite
	}
	return SideBlack
}

// Ply is the number of moves applied since the position was created.
func (p *Position) Ply() int {
	return len(p.undo)
}

func (p *Position) LastMove() Move {
	if len(p.undo) == 0 {
		return MoveEmpty
	}
	return p.undo[len(p.undo)-1].move
}

func (p *Position) IsCheck() bool {
	return p.board.OurKingInCheck()
}

func (p *Position) IsInCheckmate() bool {
	return p.IsCheck() && len(p.legalMoves()) == 0
}

// IsDraw reports stalemate, the fifty-move rule, insufficient material
// and threefold repetition since the last irreversible move.
func (p *Position) IsDraw() bool {
	if p.rule50 >= 100 {
		return true
	}
	if p.isInsufficientMaterial() {
		return true
	}
	if p.isThreefold() {
		return true
	}
	return !p.IsCheck() && len(p.legalMoves()) == 0
}

func (p *Position) isInsufficientMaterial() bool {
	var w, b = &p.board.White, &p.board.Black
	if (w.Pawns|w.Rooks|w.Queens|b.Pawns|b.Rooks|b.Queens) != 0 {
		return false
	}
	return !MoreThanOne(w.Knights | w.Bishops | b.Knights | b.Bishops)
}

func (p *Position) isThreefold() bool {
	var n = len(p.keys) - 1
	var key = p.keys[n]
	var count = 0
	for i := n - 2; i >= 0 && i >= n-p.rule50; i -= 2 {
		if p.keys[i] == key {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

func (p *Position) bitboards(side int) *dragontoothmg.Bitboards {
	if side == SideWhite {
		return &p.board.White
	}
	return &p.board.Black
}

func (p *Position) Pieces(side, piece int) uint64 {
	var bb = p.bitboards(side)
	switch piece {
	case Pawn:
		return bb.Pawns
	case Knight:
		return bb.Knights
	case Bishop:
		return bb.Bishops
	case Rook:
		return bb.Rooks
	case Queen:
		return bb.Queens
	case King:
		return bb.Kings
	}
	return 0
}

func pieceOn(bb *dragontoothmg.Bitboards, sq int) int {
	var mask = SquareMask(sq)
	switch {
	case bb.All&mask == 0:
		return Empty
	case bb.Pawns&mask != 0:
		return Pawn
	case bb.Knights&mask != 0:
		return Knight
	case bb.Bishops&mask != 0:
		return Bishop
	case bb.Rooks&mask != 0:
		return Rook
	case bb.Queens&mask != 0:
		return Queen
	case bb.Kings&mask != 0:
		return King
	}
	return Empty
}

// WhatPiece returns the piece kind on sq and its side. Side is meaningless for Empty.
func (p *Position) WhatPiece(sq int) (piece, side int) {
	if piece = pieceOn(&p.board.White, sq); piece != Empty {
		return piece, SideWhite
	}
	return pieceOn(&p.board.Black, sq), SideBlack
}

func (p *Position) legalMoves() []dragontoothmg.Move {
	var ply = len(p.undo)
	for len(p.legal) <= ply {
		p.legal = append(p.legal, legalMoves{})
	}
	var cache = &p.legal[ply]
	var key = p.board.Hash()
	if !cache.valid || cache.key != key {
		cache.moves = p.board.GenerateLegalMoves()
		cache.key = key
		cache.valid = true
	}
	return cache.moves
}

func (p *Position) convertMove(dm dragontoothmg.Move) Move {
	var from, to = int(dm.From()), int(dm.To())
	var our, their = p.bitboards(p.SideToMove()), p.bitboards(p.SideToMove() ^ 1)
	var piece = pieceOn(our, from)
	var captured = pieceOn(their, to)
	if piece == Pawn && captured == Empty && File(from) != File(to) {
		// en passant
		captured = Pawn
	}
	return makeMove(from, to, piece, captured, int(dm.Promote()))
}

// GenerateLegalMoves fills buffer with legal moves, or only with captures.
// A buffer too small for the move list is a programming error.
func (p *Position) GenerateLegalMoves(buffer []OrderedMove, capturesOnly bool) []OrderedMove {
	var count = 0
	for _, dm := range p.legalMoves() {
		var m = p.convertMove(dm)
		if capturesOnly && !m.IsCapture() {
			continue
		}
		if count >= len(buffer) {
			panic(ErrMoveBufferOverflow)
		}
		buffer[count] = OrderedMove{Move: m}
		count++
	}
	return buffer[:count]
}

func (p *Position) findMove(m Move) (dragontoothmg.Move, bool) {
	for _, dm := range p.legalMoves() {
		if int(dm.From()) == m.From() &&
			int(dm.To()) == m.To() &&
			int(dm.Promote()) == m.Promotion() {
			return dm, true
		}
	}
	return 0, false
}

// ApplyMove plays a legal move. Applying an illegal move panics.
func (p *Position) ApplyMove(m Move) {
	var dm, ok = p.findMove(m)
	if !ok {
		panic(fmt.Errorf("illegal move %v in %v", m, p))
	}
	p.undo = append(p.undo, undoInfo{
		unapply: p.board.Apply(dm),
		move:    m,
		rule50:  p.rule50,
	})
	if m.MovingPiece() == Pawn || m.IsCapture() {
		p.rule50 = 0
	} else {
		p.rule50++
	}
	p.keys = append(p.keys, p.board.Hash())
}

func (p *Position) UndoMove() {
	var last = len(p.undo) - 1
	var u = p.undo[last]
	u.unapply()
	p.rule50 = u.rule50
	p.undo[last] = undoInfo{}
	p.undo = p.undo[:last]
	p.keys = p.keys[:len(p.keys)-1]
}

// ParseMoveLAN returns the legal move written in long algebraic notation or MoveEmpty.
func (p *Position) ParseMoveLAN(lan string) Move {
	lan = strings.ToLower(strings.TrimSpace(lan))
	for _, dm := range p.legalMoves() {
		var m = p.convertMove(dm)
		if m.String() == lan {
			return m
		}
	}
	return MoveEmpty
}

func (p *Position) MakeMoveLAN(lan string) bool {
	var m = p.ParseMoveLAN(lan)
	if m == MoveEmpty {
		return false
	}
	p.ApplyMove(m)
	return true
}

// Mirror returns the color-flipped position: ranks reversed, colors swapped, side to move flipped.
func (p *Position) Mirror() (*Position, error) {
	return NewPositionFromFEN(mirrorFEN(p.String()))
}

package board

import "github.com/daystram/gambitcore/square"

// MoveHistory tracks what a placement alone cannot tell: castling availability, the en passant
// target, ply and fifty-move counters, and previously seen position keys.
type MoveHistory interface {
	// Push records a move that has just been applied.
	Push(mv Move)
	// Pop forgets the latest pushed move. It panics when nothing was pushed.
	Pop()
	// Mark stores the position key reached at the current ply.
	Mark(key uint64)

	CanCastle(d CastleDirection) bool
	CastleRights() CastleRights
	EnPassant() square.Square
	Ply() int
	HalfMoveClock() int
	// Repetitions counts earlier plies that reached the current key.
	Repetitions() int

	Clone() MoveHistory
}

// Evaluator scores a board from White's point of view.
type Evaluator interface {
	Value(b *Board) int32
	StaticValue(b *Board) int32
}

// noHistory is used by boards built without a history: nothing may castle and no en passant
// target exists.
type noHistory struct{}

func (noHistory) Push(Move)                      {}
func (noHistory) Pop()                           {}
func (noHistory) Mark(uint64)                    {}
func (noHistory) CanCastle(CastleDirection) bool { return false }
func (noHistory) CastleRights() CastleRights     { return 0 }
func (noHistory) EnPassant() square.Square       { return square.NoSquare }
func (noHistory) Ply() int                       { return 0 }
func (noHistory) HalfMoveClock() int             { return 0 }
func (noHistory) Repetitions() int               { return 0 }
func (noHistory) Clone() MoveHistory             { return noHistory{} }

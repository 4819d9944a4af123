package history

import (
	"github.com/daystram/gambitcore/board"
	"github.com/daystram/gambitcore/square"
)

type record struct {
	rights        board.CastleRights
	enPassant     square.Square
	halfMoveClock int
	key           uint64
	marked        bool
}

// History is a stack of per-ply records. The bottom record holds the state the game was set up
// with and is never popped.
type History struct {
	records []record
	basePly int
}

var _ board.MoveHistory = (*History)(nil)

func New(rights board.CastleRights, enPassant square.Square, halfMoveClock, ply int) *History {
	records := make([]record, 1, 64)
	records[0] = record{
		rights:        rights,
		enPassant:     enPassant,
		halfMoveClock: halfMoveClock,
	}
	return &History{
		records: records,
		basePly: ply,
	}
}

func NewFromFEN(f board.FEN) *History {
	return New(f.CastleRights, f.EnPassant, f.HalfMoveClock, f.Ply())
}

func (h *History) top() *record {
	return &h.records[len(h.records)-1]
}

func (h *History) Push(mv board.Move) {
	prev := h.top()
	next := record{
		rights:        prev.rights,
		enPassant:     square.NoSquare,
		halfMoveClock: prev.halfMoveClock + 1,
	}
	next.rights.Revoke(mv.From, mv.To)
	if mv.Piece.Kind() == board.KindPawn || mv.IsCapture() {
		next.halfMoveClock = 0
	}
	if mv.Kind == board.MoveKindDoublePush {
		next.enPassant = (mv.From + mv.To) / 2
	}
	h.records = append(h.records, next)
}

func (h *History) Pop() {
	if len(h.records) == 1 {
		panic("history: pop without push")
	}
	h.records = h.records[:len(h.records)-1]
}

func (h *History) Mark(key uint64) {
	r := h.top()
	r.key, r.marked = key, true
}

func (h *History) CanCastle(d board.CastleDirection) bool {
	return h.top().rights.IsAllowed(d)
}

func (h *History) CastleRights() board.CastleRights {
	return h.top().rights
}

func (h *History) EnPassant() square.Square {
	return h.top().enPassant
}

func (h *History) Ply() int {
	return h.basePly + len(h.records) - 1
}

func (h *History) HalfMoveClock() int {
	return h.top().halfMoveClock
}

// Repetitions only looks back as far as the last pawn move or capture, and only at plies with
// the same side to move.
func (h *History) Repetitions() int {
	last := len(h.records) - 1
	r := h.records[last]
	if !r.marked {
		return 0
	}
	var count int
	for i := last - 2; i >= 0 && i >= last-r.halfMoveClock; i -= 2 {
		if h.records[i].marked && h.records[i].key == r.key {
			count++
		}
	}
	return count
}

func (h *History) Clone() board.MoveHistory {
	records := make([]record, len(h.records), cap(h.records))
	copy(records, h.records)
	return &History{
		records: records,
		basePly: h.basePly,
	}
}

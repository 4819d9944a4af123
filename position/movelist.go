package position

import (
	"fmt"

	"github.com/daystram/gambitcore/board"
)

// MaxMoves caps the moves a single query may yield. The most crowded known position has 218
// legal moves.
const MaxMoves = 256

// MoveList is a fixed-capacity move buffer. A Position keeps one per search depth and clears
// it between queries instead of allocating a new one.
type MoveList struct {
	moves [MaxMoves]board.Move
	n     int
}

func (l *MoveList) Add(mv board.Move) {
	if l.n == MaxMoves {
		panic(fmt.Sprintf("position: move list overflow at %s", mv.UCI()))
	}
	l.moves[l.n] = mv
	l.n++
}

func (l *MoveList) Clear() {
	l.n = 0
}

func (l *MoveList) Len() int {
	return l.n
}

// Moves returns the filled part of the buffer. It is overwritten by the next query that reuses
// the list.
func (l *MoveList) Moves() []board.Move {
	return l.moves[:l.n]
}

package square

import (
	"errors"
)

const (
	// Span is the number of files and ranks on the board.
	Span Square = 8

	// Total is the number of squares on the board.
	Total = Span * Span
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square is a board cell in little-endian rank-file order: a1 is 0, h1 is 7, h8 is 63.
type Square int8

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	FileA Square = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Square = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// New returns the square on the given file and rank.
// It returns NoSquare when either component falls off the board.
func New(file, rank Square) Square {
	if file < 0 || file >= Span || rank < 0 || rank >= Span {
		return NoSquare
	}
	return rank*Span + file
}

func NewFromNotation(n string) (Square, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return NoSquare, err
	}
	return Span*y + x, nil
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) IsValid() bool {
	return s >= 0 && s < Total
}

func (s Square) Notation() string {
	if !s.IsValid() {
		return "-"
	}
	return s.File().NotationFile() + s.Rank().NotationRank()
}

func (s Square) File() Square {
	return s % Span
}

func (s Square) Rank() Square {
	return s / Span
}

// Mirror flips the square vertically, mapping a1 to a8.
func (s Square) Mirror() Square {
	return s ^ 56
}

func notationToXY(n string) (Square, Square, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Square, error) {
	if x < 'a' || x > 'h' {
		return 0, ErrInvalidNotation
	}
	return Square(x - 'a'), nil
}

func notationToY(y byte) (Square, error) {
	if y < '1' || y > '8' {
		return 0, ErrInvalidNotation
	}
	return Square(y - '1'), nil
}

// NotationFile renders a file component, e.g. FileE as "e".
func (s Square) NotationFile() string {
	if s < 0 || s >= Span {
		return ""
	}
	return string(rune('a' + s))
}

// NotationRank renders a rank component, e.g. Rank4 as "4".
func (s Square) NotationRank() string {
	if s < 0 || s >= Span {
		return ""
	}
	return string(rune('1' + s))
}

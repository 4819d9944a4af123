package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/gambitcore/square"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// FEN is a decoded Forsyth-Edwards Notation record.
type FEN struct {
	Placement     [square.Total]Piece
	Turn          Side
	CastleRights  CastleRights
	EnPassant     square.Square
	HalfMoveClock int
	FullMoveClock int
}

// Ply returns the number of half moves played since the game start.
func (f FEN) Ply() int {
	ply := 2 * (f.FullMoveClock - 1)
	if f.Turn == SideBlack {
		ply++
	}
	if ply < 0 {
		return 0
	}
	return ply
}

func ParseFEN(fen string) (FEN, error) {
	f := FEN{EnPassant: square.NoSquare}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return FEN{}, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(square.Span) {
		return FEN{}, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	var kings [2 + 1]int
	for y := square.Square(0); y < square.Span; y++ {
		ptrX, row := -1, rows[square.Span-y-1]
		for x := square.Square(0); x < square.Span; x++ {
			ptrX++
			if ptrX >= len(row) {
				return FEN{}, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			cell := rune(row[ptrX])
			if cell != '0' && unicode.IsDigit(cell) {
				skip := square.Square(cell - '0')
				if x+skip-1 < square.Span {
					x += skip - 1
					continue
				}
				return FEN{}, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
			}
			p := pieceFromSymbol(cell)
			if p == PieceNone {
				return FEN{}, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if p.Kind() == KindKing {
				kings[p.Side()]++
			}
			f.Placement[square.New(x, y)] = p
		}
		if ptrX != len(row)-1 {
			return FEN{}, fmt.Errorf("%w: extra cells", ErrInvalidFEN)
		}
	}
	if kings[SideWhite] != 1 || kings[SideBlack] != 1 {
		return FEN{}, fmt.Errorf("%w: king missing", ErrInvalidFEN)
	}

	switch segments[1] {
	case "w":
		f.Turn = SideWhite
	case "b":
		f.Turn = SideBlack
	default:
		return FEN{}, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return FEN{}, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
crLoop:
	for i, e := range segments[2] {
		switch e {
		case 'K':
			f.CastleRights.Set(CastleDirectionWhiteRight, true)
		case 'k':
			f.CastleRights.Set(CastleDirectionBlackRight, true)
		case 'Q':
			f.CastleRights.Set(CastleDirectionWhiteLeft, true)
		case 'q':
			f.CastleRights.Set(CastleDirectionBlackLeft, true)
		default:
			if i == 0 && e == '-' && len(segments[2]) == 1 {
				break crLoop
			}
			return FEN{}, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
	}

	if segments[3] != "-" {
		sq, err := square.NewFromNotation(segments[3])
		if err != nil {
			return FEN{}, fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		if !(MaskRank[square.Rank3] | MaskRank[square.Rank6]).Has(sq) {
			return FEN{}, fmt.Errorf("%w: invalid enpassant rank", ErrInvalidFEN)
		}
		f.EnPassant = sq
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return FEN{}, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	f.HalfMoveClock = int(halfMoveClock)

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil {
		return FEN{}, fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	f.FullMoveClock = int(fullMoveClock)

	return f, nil
}

func (f FEN) String() string {
	builder := strings.Builder{}
	var skip uint8
	for y := square.Span - 1; y >= 0; y-- {
		for x := square.Square(0); x < square.Span; x++ {
			for skip = 0; x < square.Span && f.Placement[square.New(x, y)] == PieceNone; x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < square.Span {
				_, _ = builder.WriteString(f.Placement[square.New(x, y)].SymbolFEN())
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if f.Turn == SideBlack {
		_, _ = builder.WriteString(" b ")
	} else {
		_, _ = builder.WriteString(" w ")
	}
	_, _ = builder.WriteString(f.CastleRights.String())
	_, _ = builder.WriteRune(' ')
	_, _ = builder.WriteString(f.EnPassant.Notation())
	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", f.HalfMoveClock, f.FullMoveClock))

	return builder.String()
}

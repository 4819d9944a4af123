package board

// Kind is the colorless identity of a piece. Kinds are ordered by ascending material value.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPawn
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

// Kinds lists every kind in ascending material value.
var Kinds = [6]Kind{KindPawn, KindKnight, KindBishop, KindRook, KindQueen, KindKing}

// PromoteCandidates represents the candidates for pawn promotion, most valuable first.
var PromoteCandidates = [4]Kind{KindQueen, KindRook, KindBishop, KindKnight}

var materialKindValue = [6 + 1]int32{
	KindPawn:   100,
	KindKnight: 320,
	KindBishop: 350,
	KindRook:   500,
	KindQueen:  900,
	KindKing:   20000,
}

func (k Kind) String() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindKnight:
		return "Knight"
	case KindBishop:
		return "Bishop"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

// Value returns the intrinsic material weight of the kind.
func (k Kind) Value() int32 {
	return materialKindValue[k]
}

// IsSlider reports whether the kind moves along rays.
func (k Kind) IsSlider() bool {
	return k == KindBishop || k == KindRook || k == KindQueen
}

// Piece is one of the twelve (kind, side) identities, or PieceNone.
// It indexes every per-piece table.
type Piece uint8

const (
	PieceNone Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// PieceCount is the size of per-piece tables, PieceNone included.
const PieceCount = 12 + 1

// Pieces lists all twelve pieces.
var Pieces = [12]Piece{
	WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
	BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
}

func NewPiece(s Side, k Kind) Piece {
	if k == KindUnknown {
		return PieceNone
	}
	switch s {
	case SideWhite:
		return Piece(k)
	case SideBlack:
		return Piece(k) + 6
	default:
		return PieceNone
	}
}

func (p Piece) Side() Side {
	switch {
	case p == PieceNone:
		return SideUnknown
	case p <= WhiteKing:
		return SideWhite
	default:
		return SideBlack
	}
}

func (p Piece) Kind() Kind {
	if p == PieceNone {
		return KindUnknown
	}
	return Kind((p-1)%6 + 1)
}

// Value returns the intrinsic material weight of the piece, regardless of side.
func (p Piece) Value() int32 {
	return materialKindValue[p.Kind()]
}

func (p Piece) String() string {
	if p == PieceNone {
		return ""
	}
	return p.Side().String() + " " + p.Kind().String()
}

// SymbolAlgebra returns the uppercase algebraic letter of the piece, empty for pawns.
func (p Piece) SymbolAlgebra() string {
	if p.Kind() == KindPawn {
		return ""
	}
	return NewPiece(SideWhite, p.Kind()).SymbolFEN()
}

func (p Piece) SymbolFEN() string {
	var sym rune
	switch p.Kind() {
	case KindPawn:
		sym = 'P'
	case KindKnight:
		sym = 'N'
	case KindBishop:
		sym = 'B'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if p.Side() == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode() string {
	switch p {
	case WhitePawn:
		return "♙"
	case WhiteKnight:
		return "♘"
	case WhiteBishop:
		return "♗"
	case WhiteRook:
		return "♖"
	case WhiteQueen:
		return "♕"
	case WhiteKing:
		return "♔"
	case BlackPawn:
		return "♟"
	case BlackKnight:
		return "♞"
	case BlackBishop:
		return "♝"
	case BlackRook:
		return "♜"
	case BlackQueen:
		return "♛"
	case BlackKing:
		return "♚"
	default:
		return ""
	}
}

func pieceFromSymbol(r rune) Piece {
	for _, p := range Pieces {
		if p.SymbolFEN() == string(r) {
			return p
		}
	}
	return PieceNone
}

package board

import "github.com/daystram/gambitcore/square"

type MoveKind uint8

const (
	MoveKindUnknown MoveKind = iota

	// MoveKindNormal is a knight, bishop, rook, queen or king step. It is quiet on an empty
	// destination and a capture on an enemy one.
	MoveKindNormal

	// MoveKindPush is a single pawn step onto an empty square.
	MoveKindPush

	// MoveKindDoublePush is a two-square pawn step from its home rank.
	MoveKindDoublePush

	// MoveKindCapture is a diagonal pawn capture.
	MoveKindCapture

	// MoveKindEnPassant is a diagonal pawn capture of a pawn that has just double pushed.
	MoveKindEnPassant

	// MoveKindPromote is a pawn push onto the last rank.
	MoveKindPromote

	// MoveKindPromoteCapture is a diagonal pawn capture onto the last rank.
	MoveKindPromoteCapture

	// MoveKindCastle moves king and rook together.
	MoveKindCastle
)

func (k MoveKind) String() string {
	switch k {
	case MoveKindNormal:
		return "Normal"
	case MoveKindPush:
		return "Push"
	case MoveKindDoublePush:
		return "DoublePush"
	case MoveKindCapture:
		return "Capture"
	case MoveKindEnPassant:
		return "EnPassant"
	case MoveKindPromote:
		return "Promote"
	case MoveKindPromoteCapture:
		return "PromoteCapture"
	case MoveKindCastle:
		return "Castle"
	default:
		return ""
	}
}

func (k MoveKind) IsPromote() bool {
	return k == MoveKindPromote || k == MoveKindPromoteCapture
}

// Move is a single ply. Kind selects which of the payload fields are meaningful.
type Move struct {
	From, To square.Square
	Piece    Piece
	Kind     MoveKind

	// Victim is the square the captured piece is removed from. It differs from To
	// only for en passant.
	Victim   square.Square
	Captured Piece
	Promote  Piece
	Castle   CastleDirection

	IsCheck bool
}

func (m Move) IsNull() bool {
	return m.Piece == PieceNone
}

func (m Move) IsCapture() bool {
	return m.Captured != PieceNone
}

func (m Move) IsEnPassant() bool {
	return m.Kind == MoveKindEnPassant
}

func (m Move) IsCastle() bool {
	return m.Kind == MoveKindCastle
}

func (m Move) IsPromote() bool {
	return m.Kind.IsPromote()
}

// Equals compares the identifying parts of two moves, ignoring the check tag.
func (m Move) Equals(n Move) bool {
	return m.From == n.From && m.To == n.To && m.Piece == n.Piece && m.Promote == n.Promote
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	if m.IsNull() {
		return "0000"
	}
	if m.Kind == MoveKindCastle {
		if m.Castle.IsRight() {
			return "0-0"
		}
		return "0-0-0"
	}
	nt := m.Piece.SymbolAlgebra()
	if m.IsCapture() {
		if m.Piece.Kind() == KindPawn {
			nt += m.From.File().NotationFile()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.Promote != PieceNone {
		nt += m.Promote.SymbolAlgebra()
	}
	if m.IsCheck {
		nt += "+"
	}
	if m.Kind == MoveKindEnPassant {
		nt += " e.p."
	}
	return nt
}

func (m Move) UCI() string {
	if m.IsNull() {
		return "0000"
	}
	nt := m.From.Notation() + m.To.Notation()
	if m.Promote != PieceNone {
		nt += NewPiece(SideBlack, m.Promote.Kind()).SymbolFEN()
	}
	return nt
}

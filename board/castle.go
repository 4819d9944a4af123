package board

import "github.com/daystram/gambitcore/square"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

// CastleDirections lists the four castle types.
var CastleDirections = [4]CastleDirection{
	CastleDirectionWhiteRight,
	CastleDirectionWhiteLeft,
	CastleDirectionBlackRight,
	CastleDirectionBlackLeft,
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) Side() Side {
	switch d {
	case CastleDirectionWhiteRight, CastleDirectionWhiteLeft:
		return SideWhite
	case CastleDirectionBlackRight, CastleDirectionBlackLeft:
		return SideBlack
	default:
		return SideUnknown
	}
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

// King returns the king's origin and destination squares.
func (d CastleDirection) King() (square.Square, square.Square) {
	return posCastle[d][KindKing][0], posCastle[d][KindKing][1]
}

// Rook returns the rook's origin and destination squares.
func (d CastleDirection) Rook() (square.Square, square.Square) {
	return posCastle[d][KindRook][0], posCastle[d][KindRook][1]
}

// CastleRights holds castling availability, one bit per CastleDirection.
type CastleRights uint8

// CastleRightsAll allows every castle type.
const CastleRightsAll CastleRights = 0b1111

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

// Revoke clears every right affected by a move touching from or to.
// Moving a king drops both of its rights; moving from or landing on a rook home corner drops that one.
func (c *CastleRights) Revoke(from, to square.Square) {
	for _, d := range CastleDirections {
		kingFrom, _ := d.King()
		rookFrom, _ := d.Rook()
		if from == kingFrom || from == rookFrom || to == rookFrom {
			c.Set(d, false)
		}
	}
}

func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	var s string
	if c.IsAllowed(CastleDirectionWhiteRight) {
		s += "K"
	}
	if c.IsAllowed(CastleDirectionWhiteLeft) {
		s += "Q"
	}
	if c.IsAllowed(CastleDirectionBlackRight) {
		s += "k"
	}
	if c.IsAllowed(CastleDirectionBlackLeft) {
		s += "q"
	}
	return s
}

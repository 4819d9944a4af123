package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/gambitcore/square"
)

// Bitmap is a set of squares, one bit per square in little-endian rank-file order.
type Bitmap uint64

func ShiftNW(bm Bitmap) Bitmap {
	return (bm &^ MaskFile[square.FileA]) << 7
}

func ShiftN(bm Bitmap) Bitmap {
	return bm << 8
}

func ShiftNE(bm Bitmap) Bitmap {
	return (bm &^ MaskFile[square.FileH]) << 9
}

func ShiftE(bm Bitmap) Bitmap {
	return (bm &^ MaskFile[square.FileH]) << 1
}

func ShiftSE(bm Bitmap) Bitmap {
	return (bm &^ MaskFile[square.FileH]) >> 7
}

func ShiftS(bm Bitmap) Bitmap {
	return bm >> 8
}

func ShiftSW(bm Bitmap) Bitmap {
	return (bm &^ MaskFile[square.FileA]) >> 9
}

func ShiftW(bm Bitmap) Bitmap {
	return (bm &^ MaskFile[square.FileA]) >> 1
}

func Union(bms ...Bitmap) Bitmap {
	var u Bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func Intersect(bms ...Bitmap) Bitmap {
	if len(bms) == 0 {
		return 0
	}
	u := ^Bitmap(0)
	for _, bm := range bms {
		u &= bm
	}
	return u
}

func (bm *Bitmap) Set(sq square.Square) {
	*bm |= MaskCell[sq]
}

func (bm *Bitmap) Unset(sq square.Square) {
	*bm &^= MaskCell[sq]
}

func (bm *Bitmap) Toggle(sq square.Square) {
	*bm ^= MaskCell[sq]
}

func (bm Bitmap) Has(sq square.Square) bool {
	return bm&MaskCell[sq] != 0
}

func (bm Bitmap) IsEmpty() bool {
	return bm == 0
}

// LS1B returns the least significant set square, or square.Total when empty.
func (bm Bitmap) LS1B() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(bm)))
}

// PopLS1B clears the least significant set bit and returns its square.
func (bm *Bitmap) PopLS1B() square.Square {
	sq := bm.LS1B()
	*bm &= *bm - 1
	return sq
}

func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Squares decomposes the bitmap into its squares, lowest first.
func (bm Bitmap) Squares() []square.Square {
	sqs := make([]square.Square, 0, bm.BitCount())
	for bm != 0 {
		sqs = append(sqs, bm.PopLS1B())
	}
	return sqs
}

func (bm Bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := square.Span; y > 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y))
		for x := square.Square(0); x < square.Span; x++ {
			if bm.Has(square.New(x, y-1)) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := square.Square(0); x < square.Span; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationFile()))
	}
	return builder.String()
}

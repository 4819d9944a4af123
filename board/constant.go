package board

import (
	"github.com/daystram/gambitcore/square"
)

const (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	MaskFile = [square.Span]Bitmap{
		square.FileA: 0x_01_01_01_01_01_01_01_01,
		square.FileB: 0x_02_02_02_02_02_02_02_02,
		square.FileC: 0x_04_04_04_04_04_04_04_04,
		square.FileD: 0x_08_08_08_08_08_08_08_08,
		square.FileE: 0x_10_10_10_10_10_10_10_10,
		square.FileF: 0x_20_20_20_20_20_20_20_20,
		square.FileG: 0x_40_40_40_40_40_40_40_40,
		square.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	MaskRank = [square.Span]Bitmap{
		square.Rank1: 0x_00_00_00_00_00_00_00_FF,
		square.Rank2: 0x_00_00_00_00_00_00_FF_00,
		square.Rank3: 0x_00_00_00_00_00_FF_00_00,
		square.Rank4: 0x_00_00_00_00_FF_00_00_00,
		square.Rank5: 0x_00_00_00_FF_00_00_00_00,
		square.Rank6: 0x_00_00_FF_00_00_00_00_00,
		square.Rank7: 0x_00_FF_00_00_00_00_00_00,
		square.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
	// MaskPerimeter is the outer ring of the board.
	MaskPerimeter = MaskRank[square.Rank1] | MaskRank[square.Rank8] | MaskFile[square.FileA] | MaskFile[square.FileH]
	MaskCell      = newMaskCell()

	// squares between king and rook that must be empty
	maskCastleTransit = [4 + 1]Bitmap{
		CastleDirectionWhiteRight: MaskRank[square.Rank1] & (MaskFile[square.FileF] | MaskFile[square.FileG]),
		CastleDirectionWhiteLeft:  MaskRank[square.Rank1] & (MaskFile[square.FileB] | MaskFile[square.FileC] | MaskFile[square.FileD]),
		CastleDirectionBlackRight: MaskRank[square.Rank8] & (MaskFile[square.FileF] | MaskFile[square.FileG]),
		CastleDirectionBlackLeft:  MaskRank[square.Rank8] & (MaskFile[square.FileB] | MaskFile[square.FileC] | MaskFile[square.FileD]),
	}
	// squares the king stands on, crosses or lands on; none may be attacked
	maskCastleSafe = [4 + 1]Bitmap{
		CastleDirectionWhiteRight: MaskRank[square.Rank1] & (MaskFile[square.FileE] | MaskFile[square.FileF] | MaskFile[square.FileG]),
		CastleDirectionWhiteLeft:  MaskRank[square.Rank1] & (MaskFile[square.FileC] | MaskFile[square.FileD] | MaskFile[square.FileE]),
		CastleDirectionBlackRight: MaskRank[square.Rank8] & (MaskFile[square.FileE] | MaskFile[square.FileF] | MaskFile[square.FileG]),
		CastleDirectionBlackLeft:  MaskRank[square.Rank8] & (MaskFile[square.FileC] | MaskFile[square.FileD] | MaskFile[square.FileE]),
	}
	posCastle = [4 + 1][6 + 1][2]square.Square{
		CastleDirectionWhiteRight: {
			KindKing: {square.E1, square.G1},
			KindRook: {square.H1, square.F1},
		},
		CastleDirectionWhiteLeft: {
			KindKing: {square.E1, square.C1},
			KindRook: {square.A1, square.D1},
		},
		CastleDirectionBlackRight: {
			KindKing: {square.E8, square.G8},
			KindRook: {square.H8, square.F8},
		},
		CastleDirectionBlackLeft: {
			KindKing: {square.E8, square.C8},
			KindRook: {square.A8, square.D8},
		},
	}
	maskCastleRights = [4 + 1]CastleRights{
		CastleDirectionWhiteRight: 0b1000,
		CastleDirectionWhiteLeft:  0b0100,
		CastleDirectionBlackRight: 0b0010,
		CastleDirectionBlackLeft:  0b0001,
	}
)

// newMaskCell runs during variable initialization, before any init function.
func newMaskCell() [square.Total]Bitmap {
	var cells [square.Total]Bitmap
	for sq := square.A1; sq < square.Total; sq++ {
		cells[sq] = 1 << sq
	}
	return cells
}

package board

import "github.com/daystram/gambitcore/square"

const zobristSeed = 0x_9E37_79B9_7F4A_7C15

var (
	zobristConstantPiece        [PieceCount][square.Total]uint64
	zobristConstantEnPassant    [square.Total]uint64
	zobristConstantCastleRights [16]uint64
	zobristConstantSideBlack    uint64
)

func init() {
	initZobrist()
}

func initZobrist() {
	r := NewPseudoRand()
	r.Seed(zobristSeed)
	for _, p := range Pieces {
		for sq := square.A1; sq < square.Total; sq++ {
			zobristConstantPiece[p][sq] = r.Uint64()
		}
	}
	for sq := square.A1; sq < square.Total; sq++ {
		zobristConstantEnPassant[sq] = r.Uint64()
	}
	for cr := range zobristConstantCastleRights {
		zobristConstantCastleRights[cr] = r.Uint64()
	}
	zobristConstantSideBlack = r.Uint64()
}

// Hash is the running Zobrist key of a piece placement.
// Every update is an XOR, so repeating a call reverts it.
type Hash uint64

func (h *Hash) Toggle(p Piece, sq square.Square) {
	*h ^= Hash(zobristConstantPiece[p][sq])
}

func (h *Hash) Move(p Piece, from, to square.Square) {
	*h ^= Hash(zobristConstantPiece[p][from] ^ zobristConstantPiece[p][to])
}

// ZobristState returns the key of the non-placement state of a position.
func ZobristState(turn Side, rights CastleRights, enPassant square.Square) uint64 {
	var key uint64
	if turn == SideBlack {
		key ^= zobristConstantSideBlack
	}
	key ^= zobristConstantCastleRights[rights&CastleRightsAll]
	if enPassant.IsValid() {
		key ^= zobristConstantEnPassant[enPassant]
	}
	return key
}

// PseudoRand is a deterministic xorshift64* generator.
type PseudoRand struct {
	s uint64
}

func NewPseudoRand() *PseudoRand {
	return &PseudoRand{}
}

func (r *PseudoRand) Seed(seed uint64) {
	r.s = seed
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

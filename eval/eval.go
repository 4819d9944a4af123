package eval

import (
	"github.com/daystram/gambitcore/board"
	"github.com/daystram/gambitcore/position"
	"github.com/daystram/gambitcore/square"
)

var (
	// PST table taken from https://www.chessprogramming.org/Simplified_Evaluation_Function.
	// Rows run from rank 8 down to rank 1 as seen by the owning side.
	scorePiecePosition = [6 + 1][square.Total]int32{
		board.KindPawn: {
			0, 0, 0, 0, 0, 0, 0, 0,
			50, 50, 50, 50, 50, 50, 50, 50,
			10, 10, 20, 30, 30, 20, 10, 10,
			5, 5, 10, 25, 25, 10, 5, 5,
			0, 0, 0, 20, 20, 0, 0, 0,
			5, -5, -10, 0, 0, -10, -5, 5,
			5, 10, 10, -20, -20, 10, 10, 5,
			0, 0, 0, 0, 0, 0, 0, 0,
		},
		board.KindKnight: {
			-50, -40, -30, -30, -30, -30, -40, -50,
			-40, -20, 0, 0, 0, 0, -20, -40,
			-30, 0, 10, 15, 15, 10, 0, -30,
			-30, 5, 15, 20, 20, 15, 5, -30,
			-30, 0, 15, 20, 20, 15, 0, -30,
			-30, 5, 10, 15, 15, 10, 5, -30,
			-40, -20, 0, 5, 5, 0, -20, -40,
			-50, -40, -30, -30, -30, -30, -40, -50,
		},
		board.KindBishop: {
			-20, -10, -10, -10, -10, -10, -10, -20,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 5, 10, 10, 5, 0, -10,
			-10, 5, 5, 10, 10, 5, 5, -10,
			-10, 0, 10, 10, 10, 10, 0, -10,
			-10, 10, 10, 10, 10, 10, 10, -10,
			-10, 5, 0, 0, 0, 0, 5, -10,
			-20, -10, -10, -10, -10, -10, -10, -20,
		},
		board.KindRook: {
			0, 0, 0, 0, 0, 0, 0, 0,
			5, 10, 10, 10, 10, 10, 10, 5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			-5, 0, 0, 0, 0, 0, 0, -5,
			0, 0, 0, 5, 5, 0, 0, 0,
		},
		board.KindQueen: {
			-20, -10, -10, -5, -5, -10, -10, -20,
			-10, 0, 0, 0, 0, 0, 0, -10,
			-10, 0, 5, 5, 5, 5, 0, -10,
			-5, 0, 5, 5, 5, 5, 0, -5,
			0, 0, 5, 5, 5, 5, 0, -5,
			-10, 5, 5, 5, 5, 5, 0, -10,
			-10, 0, 5, 0, 0, 0, 0, -10,
			-20, -10, -10, -5, -5, -10, -10, -20,
		},
		board.KindKing: {
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-30, -40, -40, -50, -50, -40, -40, -30,
			-20, -30, -30, -40, -40, -30, -30, -20,
			-10, -20, -20, -20, -20, -20, -20, -10,
			20, 20, 0, 0, 0, 0, 20, 20,
			20, 30, 10, 0, 0, 10, 30, 20,
		},
	}

	scoreCastledBonus int32 = 30

	scoreMVVLVA = [6 + 1][6 + 1]int32{
		//                 P   N   B   R   Q   K
		board.KindPawn:   {0, 15, 25, 35, 45, 55},
		board.KindKnight: {0, 14, 24, 34, 44, 54},
		board.KindBishop: {0, 13, 23, 33, 43, 53},
		board.KindRook:   {0, 12, 22, 32, 42, 52},
		board.KindQueen:  {0, 11, 21, 31, 41, 51},
		board.KindKing:   {0, 10, 20, 30, 40, 50},
	}
	// promotions sort between captures and quiet moves
	scorePromote int32 = 5
)

// Evaluator scores boards from White's point of view using material and piece-square tables.
type Evaluator struct {
	castledBonus int32
}

var _ board.Evaluator = (*Evaluator)(nil)

type EvaluatorOption func(*Evaluator)

// WithCastledBonus overrides the bonus awarded to a side that has castled.
func WithCastledBonus(bonus int32) EvaluatorOption {
	return func(e *Evaluator) {
		e.castledBonus = bonus
	}
}

func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		castledBonus: scoreCastledBonus,
	}
	for _, f := range opts {
		f(e)
	}
	return e
}

// Value is the material balance plus the piece-square and castled terms.
func (e *Evaluator) Value(b *board.Board) int32 {
	return e.StaticValue(b) + e.positional(b, board.SideWhite) - e.positional(b, board.SideBlack)
}

// StaticValue is the material balance alone.
func (e *Evaluator) StaticValue(b *board.Board) int32 {
	return b.Material(board.SideWhite) - b.Material(board.SideBlack)
}

func (e *Evaluator) positional(b *board.Board, s board.Side) int32 {
	var score int32
	for _, k := range board.Kinds {
		for bm := b.Bitmap(board.NewPiece(s, k)); bm != 0; {
			score += PieceSquare(k, s, bm.PopLS1B())
		}
	}
	if b.HasCastled(s) {
		score += e.castledBonus
	}
	return score
}

// PieceSquare returns the table bonus of a piece of kind k and side s standing on sq.
func PieceSquare(k board.Kind, s board.Side, sq square.Square) int32 {
	if s == board.SideWhite {
		sq = sq.Mirror()
	}
	return scorePiecePosition[k][sq]
}

// OrderMVVLVA sorts captures by most valuable victim then least valuable attacker, followed by
// promotions and quiet moves in generation order.
func OrderMVVLVA(_ *position.Position, mvs []board.Move) {
	var buf [position.MaxMoves]int32
	scores := buf[:len(mvs)]
	for i, mv := range mvs {
		scores[i] = scoreMVVLVAMove(mv)
	}
	sortMoves(mvs, scores)
}

func scoreMVVLVAMove(mv board.Move) int32 {
	var score int32
	if mv.IsCapture() {
		score = scoreMVVLVA[mv.Piece.Kind()][mv.Captured.Kind()]
	}
	if mv.IsPromote() {
		score += scorePromote
	}
	return score
}

// OrderExchange sorts moves by descending static exchange value.
func OrderExchange(p *position.Position, mvs []board.Move) {
	var buf [position.MaxMoves]int32
	scores := buf[:len(mvs)]
	for i, mv := range mvs {
		scores[i] = p.Board().StaticExchange(mv)
	}
	sortMoves(mvs, scores)
}

// sortMoves orders mvs by descending score, keeping generation order between equal scores.
// scores is permuted alongside.
func sortMoves(mvs []board.Move, scores []int32) {
	for i := 1; i < len(mvs); i++ {
		mv, score := mvs[i], scores[i]
		j := i
		for ; j > 0 && scores[j-1] < score; j-- {
			mvs[j], scores[j] = mvs[j-1], scores[j-1]
		}
		mvs[j], scores[j] = mv, score
	}
}

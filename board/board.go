package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daystram/gambitcore/square"
)

var (
	ErrCorruptBoard = errors.New("corrupt board")
)

// Little-endian rank-file (LERF) mapping
type Board struct {
	table *MoveTable

	// grid data
	bitmaps [PieceCount]Bitmap
	sides   [2 + 1]Bitmap
	empty   Bitmap
	cells   [square.Total]Piece

	// meta
	castled [2 + 1]bool
	hash    Hash

	// collaborators
	history   MoveHistory
	evaluator Evaluator
}

type boardConfig struct {
	placement [square.Total]Piece
	history   MoveHistory
	evaluator Evaluator
	err       error
}

type BoardOption func(*boardConfig)

// WithFEN places the pieces of the FEN placement field. The remaining fields belong to the
// position and its history.
func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		f, err := ParseFEN(fen)
		if err != nil {
			cfg.err = err
			return
		}
		cfg.placement = f.Placement
	}
}

func WithPlacement(placement [square.Total]Piece) BoardOption {
	return func(cfg *boardConfig) {
		cfg.placement = placement
	}
}

func WithMoveHistory(h MoveHistory) BoardOption {
	return func(cfg *boardConfig) {
		cfg.history = h
	}
}

func WithEvaluator(e Evaluator) BoardOption {
	return func(cfg *boardConfig) {
		cfg.evaluator = e
	}
}

// NewBoard places the standard starting layout unless a placement option says otherwise.
// The move table is shared, never copied.
func NewBoard(table *MoveTable, opts ...BoardOption) (*Board, error) {
	if table == nil {
		panic("board: nil move table")
	}
	cfg := &boardConfig{
		history: noHistory{},
	}
	WithFEN(DefaultStartingPositionFEN)(cfg)
	for _, f := range opts {
		f(cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.history == nil {
		cfg.history = noHistory{}
	}

	b := &Board{
		table:     table,
		empty:     ^Bitmap(0),
		history:   cfg.history,
		evaluator: cfg.evaluator,
	}
	for sq, p := range cfg.placement {
		if p != PieceNone {
			b.Add(p, square.Square(sq))
		}
	}
	return b, nil
}

// Add places p on an empty square.
func (b *Board) Add(p Piece, sq square.Square) {
	if b.cells[sq] != PieceNone {
		panic(fmt.Sprintf("board: add %s on occupied %s", p, sq))
	}
	b.bitmaps[p].Set(sq)
	b.sides[p.Side()].Set(sq)
	b.empty.Unset(sq)
	b.cells[sq] = p
	b.hash.Toggle(p, sq)
}

// Remove takes p off sq. The piece must be standing there.
func (b *Board) Remove(p Piece, sq square.Square) {
	if b.cells[sq] != p {
		panic(fmt.Sprintf("board: remove %s from %s holding %s", p, sq, b.cells[sq]))
	}
	b.bitmaps[p].Unset(sq)
	b.sides[p.Side()].Unset(sq)
	b.empty.Set(sq)
	b.cells[sq] = PieceNone
	b.hash.Toggle(p, sq)
}

// Move carries p from one square to an empty one. Calling it again with the squares swapped
// reverts it.
func (b *Board) Move(p Piece, from, to square.Square) {
	if b.cells[from] != p || b.cells[to] != PieceNone {
		panic(fmt.Sprintf("board: move %s %s%s over %s", p, from, to, b.cells[to]))
	}
	mask := MaskCell[from] | MaskCell[to]
	b.bitmaps[p] ^= mask
	b.sides[p.Side()] ^= mask
	b.empty ^= mask
	b.cells[from], b.cells[to] = PieceNone, p
	b.hash.Move(p, from, to)
}

// DoCastle moves king and rook together and flips the side's has-castled flag.
func (b *Board) DoCastle(d CastleDirection) {
	s := d.Side()
	kingFrom, kingTo := d.King()
	rookFrom, rookTo := d.Rook()
	b.Move(NewPiece(s, KindKing), kingFrom, kingTo)
	b.Move(NewPiece(s, KindRook), rookFrom, rookTo)
	b.castled[s] = !b.castled[s]
}

func (b *Board) UndoCastle(d CastleDirection) {
	s := d.Side()
	kingFrom, kingTo := d.King()
	rookFrom, rookTo := d.Rook()
	b.Move(NewPiece(s, KindRook), rookTo, rookFrom)
	b.Move(NewPiece(s, KindKing), kingTo, kingFrom)
	b.castled[s] = !b.castled[s]
}

func (b *Board) Apply(mv Move) {
	switch mv.Kind {
	case MoveKindNormal, MoveKindPush, MoveKindDoublePush, MoveKindCapture, MoveKindEnPassant:
		if mv.Captured != PieceNone {
			b.Remove(mv.Captured, mv.Victim)
		}
		b.Move(mv.Piece, mv.From, mv.To)
	case MoveKindPromote, MoveKindPromoteCapture:
		if mv.Captured != PieceNone {
			b.Remove(mv.Captured, mv.Victim)
		}
		b.Remove(mv.Piece, mv.From)
		b.Add(mv.Promote, mv.To)
	case MoveKindCastle:
		b.DoCastle(mv.Castle)
	default:
		panic(fmt.Sprintf("board: apply unknown move kind %d", mv.Kind))
	}
}

func (b *Board) Revert(mv Move) {
	switch mv.Kind {
	case MoveKindNormal, MoveKindPush, MoveKindDoublePush, MoveKindCapture, MoveKindEnPassant:
		b.Move(mv.Piece, mv.To, mv.From)
		if mv.Captured != PieceNone {
			b.Add(mv.Captured, mv.Victim)
		}
	case MoveKindPromote, MoveKindPromoteCapture:
		b.Remove(mv.Promote, mv.To)
		b.Add(mv.Piece, mv.From)
		if mv.Captured != PieceNone {
			b.Add(mv.Captured, mv.Victim)
		}
	case MoveKindCastle:
		b.UndoCastle(mv.Castle)
	default:
		panic(fmt.Sprintf("board: revert unknown move kind %d", mv.Kind))
	}
}

// NewMove builds the move of p standing on from along a table entry, reading the captured
// piece off the board.
func (b *Board) NewMove(p Piece, from square.Square, e Entry) Move {
	mv := Move{
		From:    from,
		To:      e.To,
		Piece:   p,
		Kind:    e.Kind,
		Victim:  e.Victim,
		Promote: e.Promote,
		Castle:  e.Castle,
	}
	if e.Kind != MoveKindCastle {
		mv.Captured = b.cells[e.Victim]
	}
	return mv
}

// Playable reports whether p standing on its origin may take the entry on the current board.
// The mover's king safety is not considered.
func (b *Board) Playable(p Piece, e Entry) bool {
	if e.Transit&^b.empty != 0 {
		return false
	}
	target, enemy := b.cells[e.To], p.Side().Opposite()
	switch e.Kind {
	case MoveKindNormal:
		return target == PieceNone || target.Side() == enemy
	case MoveKindPush, MoveKindDoublePush, MoveKindPromote:
		return target == PieceNone
	case MoveKindCapture, MoveKindPromoteCapture:
		return target != PieceNone && target.Side() == enemy
	case MoveKindEnPassant:
		return e.To == b.history.EnPassant() && target == PieceNone && b.cells[e.Victim] == NewPiece(enemy, KindPawn)
	case MoveKindCastle:
		return b.CanCastle(e.Castle)
	default:
		return false
	}
}

// IsPseudoLegal validates an externally supplied move against the table and the board.
func (b *Board) IsPseudoLegal(mv Move) bool {
	if mv.Piece == PieceNone || !mv.From.IsValid() || b.cells[mv.From] != mv.Piece {
		return false
	}
	e, ok := b.table.Find(mv.Piece, mv.From, mv.To, mv.Kind, mv.Promote)
	if !ok || !b.Playable(mv.Piece, e) {
		return false
	}
	return b.NewMove(mv.Piece, mv.From, e).Captured == mv.Captured
}

// IsAttacked reports whether any piece of side by attacks sq.
func (b *Board) IsAttacked(sq square.Square, by Side) bool {
	for _, k := range Kinds {
		p := NewPiece(by, k)
		candidates := b.bitmaps[p] & b.table.attackers[p][sq]
		if candidates == 0 {
			continue
		}
		if !k.IsSlider() {
			return true
		}
		for _, a := range b.table.attacksTo[p][sq] {
			if candidates.Has(a.From) && a.Transit&^b.empty == 0 {
				return true
			}
		}
	}
	return false
}

// AttackersTo returns the squares of every piece of either side attacking sq, restricted to
// pieces in occupied and using occupied as the blocker set.
func (b *Board) AttackersTo(sq square.Square, occupied Bitmap) Bitmap {
	return b.attackersTo(sq, occupied, &b.bitmaps)
}

func (b *Board) attackersTo(sq square.Square, occupied Bitmap, bitmaps *[PieceCount]Bitmap) Bitmap {
	var attackers Bitmap
	for _, p := range Pieces {
		candidates := bitmaps[p] & occupied & b.table.attackers[p][sq]
		if candidates == 0 {
			continue
		}
		if !p.Kind().IsSlider() {
			attackers |= candidates
			continue
		}
		for _, a := range b.table.attacksTo[p][sq] {
			if candidates.Has(a.From) && a.Transit&occupied == 0 {
				attackers.Set(a.From)
			}
		}
	}
	return attackers
}

// CanCastle reports whether the castle is available in history, its king and rook are home,
// the path between them is clear and no square the king passes is attacked.
func (b *Board) CanCastle(d CastleDirection) bool {
	if !b.history.CanCastle(d) {
		return false
	}
	s := d.Side()
	kingFrom, _ := d.King()
	rookFrom, _ := d.Rook()
	if b.cells[kingFrom] != NewPiece(s, KindKing) || b.cells[rookFrom] != NewPiece(s, KindRook) {
		return false
	}
	if !Intersect(maskCastleTransit[d], b.Occupied()).IsEmpty() {
		return false
	}
	for safe := maskCastleSafe[d]; safe != 0; {
		if b.IsAttacked(safe.PopLS1B(), s.Opposite()) {
			return false
		}
	}
	return true
}

func (b *Board) KingSquare(s Side) square.Square {
	king := b.bitmaps[NewPiece(s, KindKing)]
	if king.IsEmpty() {
		return square.NoSquare
	}
	return king.LS1B()
}

// IsKingChecked reports whether the king of side s is attacked.
func (b *Board) IsKingChecked(s Side) bool {
	sq := b.KingSquare(s)
	return sq != square.NoSquare && b.IsAttacked(sq, s.Opposite())
}

func (b *Board) PieceAt(sq square.Square) Piece {
	return b.cells[sq]
}

func (b *Board) Bitmap(p Piece) Bitmap {
	return b.bitmaps[p]
}

func (b *Board) Side(s Side) Bitmap {
	return b.sides[s]
}

func (b *Board) Empty() Bitmap {
	return b.empty
}

func (b *Board) Occupied() Bitmap {
	return ^b.empty
}

func (b *Board) Placement() [square.Total]Piece {
	return b.cells
}

// Key returns the Zobrist key of the piece placement.
func (b *Board) Key() uint64 {
	return uint64(b.hash)
}

func (b *Board) HasCastled(s Side) bool {
	return b.castled[s]
}

func (b *Board) Table() *MoveTable {
	return b.table
}

func (b *Board) History() MoveHistory {
	return b.history
}

// Material sums the values of the side's pieces, king excluded.
func (b *Board) Material(s Side) int32 {
	var m int32
	for _, k := range Kinds {
		if k == KindKing {
			continue
		}
		m += int32(b.bitmaps[NewPiece(s, k)].BitCount()) * k.Value()
	}
	return m
}

// Value scores the board from White's point of view.
func (b *Board) Value() int32 {
	if b.evaluator == nil {
		return b.Material(SideWhite) - b.Material(SideBlack)
	}
	return b.evaluator.Value(b)
}

func (b *Board) StaticValue() int32 {
	if b.evaluator == nil {
		return b.Material(SideWhite) - b.Material(SideBlack)
	}
	return b.evaluator.StaticValue(b)
}

// Validate recomputes every derived field from the piece bitmaps and reports the first mismatch.
func (b *Board) Validate() error {
	var sides [2 + 1]Bitmap
	var hash Hash
	var seen Bitmap
	for _, p := range Pieces {
		bm := b.bitmaps[p]
		if bm&seen != 0 {
			return fmt.Errorf("%w: %s overlaps another piece", ErrCorruptBoard, p)
		}
		seen |= bm
		sides[p.Side()] |= bm
		for bm != 0 {
			sq := bm.PopLS1B()
			if b.cells[sq] != p {
				return fmt.Errorf("%w: cell %s holds %q, bitmap says %q", ErrCorruptBoard, sq, b.cells[sq], p)
			}
			hash.Toggle(p, sq)
		}
	}
	if b.bitmaps[PieceNone] != 0 {
		return fmt.Errorf("%w: empty piece bitmap is set", ErrCorruptBoard)
	}
	for _, s := range Sides {
		if sides[s] != b.sides[s] {
			return fmt.Errorf("%w: %s occupancy drifted", ErrCorruptBoard, s)
		}
	}
	if b.sides[SideWhite]&b.sides[SideBlack] != 0 {
		return fmt.Errorf("%w: side occupancies intersect", ErrCorruptBoard)
	}
	if b.empty != ^(b.sides[SideWhite] | b.sides[SideBlack]) {
		return fmt.Errorf("%w: empty mask drifted", ErrCorruptBoard)
	}
	for sq := square.A1; sq < square.Total; sq++ {
		if b.empty.Has(sq) && b.cells[sq] != PieceNone {
			return fmt.Errorf("%w: empty cell %s holds %q", ErrCorruptBoard, sq, b.cells[sq])
		}
	}
	if hash != b.hash {
		return fmt.Errorf("%w: hash drifted: got=%016x want=%016x", ErrCorruptBoard, uint64(b.hash), uint64(hash))
	}
	return nil
}

// Clone copies the board for another worker. The move table and evaluator are shared; the
// history is replaced by h.
func (b *Board) Clone(h MoveHistory) *Board {
	c := *b
	if h == nil {
		h = noHistory{}
	}
	c.history = h
	return &c
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := square.Span - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := square.Square(0); x < square.Span; x++ {
			sym := b.cells[square.New(x, y)].SymbolFEN()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := square.Square(0); x < square.Span; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationFile()))
	}
	return builder.String()
}

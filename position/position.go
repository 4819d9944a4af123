package position

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/daystram/gambitcore/board"
	"github.com/daystram/gambitcore/history"
)

var (
	ErrIllegalMove = errors.New("illegal move")
)

// MoveOrdering reorders freshly generated moves in place.
type MoveOrdering func(p *Position, mvs []board.Move)

// Position is a board with a side to move. It is not safe for concurrent use; parallel callers
// each own a Clone.
type Position struct {
	table   *board.MoveTable
	board   *board.Board
	history board.MoveHistory
	turn    board.Side
	phase   Phase

	made []board.Move

	// scratch lists indexed by depth
	moves   []*MoveList
	attacks []*MoveList
}

type positionConfig struct {
	fen       string
	evaluator board.Evaluator
}

type Option func(*positionConfig)

func WithFEN(fen string) Option {
	return func(cfg *positionConfig) {
		cfg.fen = fen
	}
}

func WithEvaluator(e board.Evaluator) Option {
	return func(cfg *positionConfig) {
		cfg.evaluator = e
	}
}

func New(table *board.MoveTable, opts ...Option) (*Position, error) {
	cfg := &positionConfig{
		fen: board.DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	f, err := board.ParseFEN(cfg.fen)
	if err != nil {
		return nil, err
	}
	b, err := board.NewBoard(table,
		board.WithPlacement(f.Placement),
		board.WithMoveHistory(history.NewFromFEN(f)),
		board.WithEvaluator(cfg.evaluator),
	)
	if err != nil {
		return nil, err
	}
	return NewFromBoard(b, f.Turn), nil
}

// NewFromBoard wraps a board built elsewhere. The board's history is the position's history.
func NewFromBoard(b *board.Board, turn board.Side) *Position {
	p := &Position{
		table:   b.Table(),
		board:   b,
		history: b.History(),
		turn:    turn,
		phase:   phaseOf(b.History().Ply()),
	}
	p.history.Mark(p.Key())
	return p
}

// Make plays mv and tags whether it gives check.
func (p *Position) Make(mv *board.Move) {
	p.board.Apply(*mv)
	p.history.Push(*mv)
	p.turn = p.turn.Opposite()
	p.phase = phaseOf(p.history.Ply())
	mv.IsCheck = p.board.IsKingChecked(p.turn)
	p.made = append(p.made, *mv)
	p.history.Mark(p.Key())
}

// UnMake takes back the latest Make. It panics when nothing was made.
func (p *Position) UnMake() {
	if len(p.made) == 0 {
		panic("position: unmake without make")
	}
	mv := p.made[len(p.made)-1]
	p.made = p.made[:len(p.made)-1]
	p.history.Pop()
	p.turn = p.turn.Opposite()
	p.board.Revert(mv)
	p.phase = phaseOf(p.history.Ply())
}

// Do plays mv on the board only. History, phase and check tagging are left alone.
func (p *Position) Do(mv board.Move) {
	p.board.Apply(mv)
	p.turn = p.turn.Opposite()
}

func (p *Position) UnDo(mv board.Move) {
	p.board.Revert(mv)
	p.turn = p.turn.Opposite()
}

// GetAllMoves returns the legal moves of the side to move. The slice is reused by the next call
// at the same depth.
func (p *Position) GetAllMoves(ordering MoveOrdering) []board.Move {
	l := p.scratch(&p.moves)
	p.generate(l, false)
	mvs := l.Moves()
	if ordering != nil {
		ordering(p, mvs)
	}
	return mvs
}

// GetAllAttacks returns the legal captures of the side to move.
func (p *Position) GetAllAttacks(ordering MoveOrdering) []board.Move {
	l := p.scratch(&p.attacks)
	p.generate(l, true)
	mvs := l.Moves()
	if ordering != nil {
		ordering(p, mvs)
	}
	return mvs
}

func (p *Position) scratch(lists *[]*MoveList) *MoveList {
	depth := len(p.made)
	for len(*lists) <= depth {
		*lists = append(*lists, &MoveList{})
	}
	l := (*lists)[depth]
	l.Clear()
	return l
}

func (p *Position) generate(l *MoveList, capturesOnly bool) {
	us, empty := p.turn, p.board.Empty()
	for _, k := range board.Kinds {
		piece := board.NewPiece(us, k)
		for froms := p.board.Bitmap(piece); froms != 0; {
			from := froms.PopLS1B()
			for _, ray := range p.table.Rays(piece, from) {
				for _, e := range ray {
					if e.Transit&^empty != 0 {
						break // the rest of the ray is behind the blocker
					}
					if !p.board.Playable(piece, e) {
						continue
					}
					mv := p.board.NewMove(piece, from, e)
					if capturesOnly && !mv.IsCapture() {
						continue
					}
					if p.isSafe(mv) {
						l.Add(mv)
					}
				}
			}
		}
	}
}

// isSafe probes whether mv leaves the mover's king unattacked.
func (p *Position) isSafe(mv board.Move) bool {
	us := p.turn
	p.Do(mv)
	safe := !p.board.IsKingChecked(us)
	p.UnDo(mv)
	return safe
}

// IsLegal validates a move built outside this position's generator.
func (p *Position) IsLegal(mv board.Move) bool {
	return mv.Piece.Side() == p.turn && p.board.IsPseudoLegal(mv) && p.isSafe(mv)
}

// ParseMove resolves a move in UCI long algebraic notation, such as e2e4 or a7a8q.
func (p *Position) ParseMove(uci string) (board.Move, error) {
	var l MoveList
	p.generate(&l, false)
	mvs := l.Moves()
	i := slices.IndexFunc(mvs, func(mv board.Move) bool { return mv.UCI() == uci })
	if i < 0 {
		return board.Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, uci)
	}
	return mvs[i], nil
}

// Key combines the placement key with the side to move, castle rights and en passant target.
func (p *Position) Key() uint64 {
	return p.board.Key() ^ board.ZobristState(p.turn, p.history.CastleRights(), p.history.EnPassant())
}

func (p *Position) FEN() string {
	ply := p.history.Ply()
	return board.FEN{
		Placement:     p.board.Placement(),
		Turn:          p.turn,
		CastleRights:  p.history.CastleRights(),
		EnPassant:     p.history.EnPassant(),
		HalfMoveClock: p.history.HalfMoveClock(),
		FullMoveClock: ply/2 + 1,
	}.String()
}

func (p *Position) State() State {
	var l MoveList
	p.generate(&l, false)
	checked := p.board.IsKingChecked(p.turn)
	switch {
	case l.Len() == 0 && checked:
		if p.turn == board.SideWhite {
			return StateCheckmateWhite
		}
		return StateCheckmateBlack
	case l.Len() == 0:
		return StateStalemate
	// checkmate takes precedence over the 50 move rule
	case p.history.HalfMoveClock() >= 100:
		return StateFiftyMoveViolated
	case p.history.Repetitions() >= 2:
		return StateRepetition
	case checked && p.turn == board.SideWhite:
		return StateCheckWhite
	case checked:
		return StateCheckBlack
	default:
		return StateRunning
	}
}

// Value scores the position for the side to move.
func (p *Position) Value() int32 {
	if p.turn == board.SideBlack {
		return -p.board.Value()
	}
	return p.board.Value()
}

func (p *Position) StaticValue() int32 {
	if p.turn == board.SideBlack {
		return -p.board.StaticValue()
	}
	return p.board.StaticValue()
}

func (p *Position) Turn() board.Side {
	return p.turn
}

func (p *Position) Phase() Phase {
	return p.phase
}

func (p *Position) Ply() int {
	return p.history.Ply()
}

func (p *Position) Board() *board.Board {
	return p.board
}

func (p *Position) History() board.MoveHistory {
	return p.history
}

// Clone copies the position with its own board and history for another worker.
func (p *Position) Clone() *Position {
	h := p.history.Clone()
	return &Position{
		table:   p.table,
		board:   p.board.Clone(h),
		history: h,
		turn:    p.turn,
		phase:   p.phase,
		made:    append([]board.Move(nil), p.made...),
	}
}

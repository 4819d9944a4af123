package position

import (
	"errors"
	"testing"

	"github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"github.com/daystram/gambitcore/board"
	"github.com/daystram/gambitcore/square"
)

var testTable = board.NewMoveTable()

var testFENs = []string{
	board.DefaultStartingPositionFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	"8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1",
	"4k3/8/8/K2pP2r/8/8/8/8 w - d6 0 1",
}

func newTestPosition(t *testing.T, fen string) *Position {
	t.Helper()
	p, err := New(testTable, WithFEN(fen))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return p
}

func uciSet(mvs []board.Move) []string {
	set := make([]string, 0, len(mvs))
	for _, mv := range mvs {
		set = append(set, mv.UCI())
	}
	slices.Sort(set)
	return set
}

func oracleSet(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatal("unexpected oracle error:", err)
	}
	game := chess.NewGame(opt)
	set := make([]string, 0)
	for _, mv := range game.ValidMoves() {
		set = append(set, chess.UCINotation{}.Encode(game.Position(), mv))
	}
	slices.Sort(set)
	return set
}

func TestPositionGetAllMovesOracle(t *testing.T) {
	t.Parallel()

	for _, fen := range testFENs {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()

			p := newTestPosition(t, fen)
			mvs := p.GetAllMoves(nil)
			if got, want := uciSet(mvs), oracleSet(t, fen); !slices.Equal(got, want) {
				t.Fatalf("unexpected moves:\ngot= %v\nwant=%v", got, want)
			}

			for _, mv := range append([]board.Move(nil), mvs...) {
				mv := mv
				p.Make(&mv)
				childFEN := p.FEN()
				if got, want := uciSet(p.GetAllMoves(nil)), oracleSet(t, childFEN); !slices.Equal(got, want) {
					t.Errorf("unexpected moves after %s (%s):\ngot= %v\nwant=%v", mv.UCI(), childFEN, got, want)
				}
				p.UnMake()
			}
		})
	}
}

func TestPositionGetAllAttacks(t *testing.T) {
	t.Parallel()

	for _, fen := range testFENs {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()

			p := newTestPosition(t, fen)
			var want []string
			for _, mv := range p.GetAllMoves(nil) {
				if mv.IsCapture() {
					want = append(want, mv.UCI())
				}
			}
			slices.Sort(want)
			if got := uciSet(p.GetAllAttacks(nil)); !slices.Equal(got, want) {
				t.Errorf("unexpected attacks:\ngot= %v\nwant=%v", got, want)
			}
		})
	}
}

func TestPositionMakeUnMake(t *testing.T) {
	t.Parallel()

	for _, fen := range testFENs {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()

			p := newTestPosition(t, fen)
			snapshot, key, turn, phase := *p.Board(), p.Key(), p.Turn(), p.Phase()
			for _, mv := range append([]board.Move(nil), p.GetAllMoves(nil)...) {
				mv := mv
				p.Make(&mv)
				if err := p.Board().Validate(); err != nil {
					t.Fatalf("unexpected error after %s: %v", mv.UCI(), err)
				}
				if p.Turn() != turn.Opposite() {
					t.Errorf("unexpected turn after %s: got=%s want=%s", mv.UCI(), p.Turn(), turn.Opposite())
				}
				p.UnMake()
				if *p.Board() != snapshot {
					t.Fatalf("unexpected board after unmaking %s:\n%s", mv.UCI(), p.Board().Dump())
				}
				if p.Key() != key || p.Turn() != turn || p.Phase() != phase || p.FEN() != fen {
					t.Fatalf("unexpected state after unmaking %s: got=%s want=%s", mv.UCI(), p.FEN(), fen)
				}
			}
		})
	}
}

func TestPositionKeyTransposition(t *testing.T) {
	t.Parallel()

	play := func(ucis ...string) *Position {
		p := newTestPosition(t, board.DefaultStartingPositionFEN)
		for _, uci := range ucis {
			mv, err := p.ParseMove(uci)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			p.Make(&mv)
		}
		return p
	}

	a := play("g1f3", "g8f6", "b1c3")
	b := play("b1c3", "g8f6", "g1f3")
	if a.Key() != b.Key() {
		t.Errorf("unexpected key: got=%016x want=%016x", a.Key(), b.Key())
	}
	c := play("g1f3", "g8f6", "b1c3", "b8c6")
	if a.Key() == c.Key() {
		t.Error("unexpected key: different positions collide")
	}
	d := play("e2e4")
	e := play("g1f3", "g8f6", "e2e4", "f6g8", "f3g1")
	if d.Board().Key() != e.Board().Key() || d.Key() == e.Key() {
		t.Error("unexpected key: en passant target not part of the position key")
	}
}

func TestPositionCheckTag(t *testing.T) {
	t.Parallel()

	p := newTestPosition(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	mv, err := p.ParseMove("a1a8")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	p.Make(&mv)
	if !mv.IsCheck || mv.Algebra() != "Ra8+" {
		t.Errorf("unexpected move: got=%s want=%s", mv.Algebra(), "Ra8+")
	}
	p.UnMake()

	mv, err = p.ParseMove("a1a7")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	p.Make(&mv)
	if mv.IsCheck {
		t.Errorf("unexpected check: %s", mv.Algebra())
	}
}

func TestPositionState(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		want State
	}{
		{name: "running", fen: board.DefaultStartingPositionFEN, want: StateRunning},
		{name: "checkmate white", fen: "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", want: StateCheckmateWhite},
		{name: "checkmate black", fen: "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", want: StateCheckmateBlack},
		{name: "check black", fen: "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", want: StateCheckBlack},
		{name: "check white", fen: "4r1k1/8/8/8/8/8/8/4K3 w - - 0 1", want: StateCheckWhite},
		{name: "stalemate", fen: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", want: StateStalemate},
		{name: "fifty move", fen: "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", want: StateFiftyMoveViolated},
		{name: "mate beats fifty move", fen: "R5k1/5ppp/8/8/8/8/8/6K1 b - - 120 80", want: StateCheckmateBlack},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := newTestPosition(t, tt.fen).State(); got != tt.want {
				t.Errorf("unexpected state: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestPositionRepetition(t *testing.T) {
	t.Parallel()

	p := newTestPosition(t, board.DefaultStartingPositionFEN)
	for round := 0; round < 2; round++ {
		for _, uci := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
			if p.State() != StateRunning {
				t.Fatalf("unexpected early state at %s: got=%s", uci, p.State())
			}
			mv, err := p.ParseMove(uci)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			p.Make(&mv)
		}
	}
	if got := p.State(); got != StateRepetition {
		t.Errorf("unexpected state: got=%s want=%s", got, StateRepetition)
	}
	p.UnMake()
	if got := p.State(); got != StateRunning {
		t.Errorf("unexpected state after unmake: got=%s want=%s", got, StateRunning)
	}
}

func TestPositionCastling(t *testing.T) {
	t.Parallel()

	p := newTestPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	has := func(uci string) bool {
		for _, mv := range p.GetAllMoves(nil) {
			if mv.UCI() == uci {
				return true
			}
		}
		return false
	}
	if !has("e1g1") || !has("e1c1") {
		t.Fatal("unexpected moves: white castles missing")
	}

	snapshot := *p.Board()
	mv, err := p.ParseMove("e1g1")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	p.Make(&mv)
	if p.Board().PieceAt(square.G1) != board.WhiteKing || p.Board().PieceAt(square.F1) != board.WhiteRook || !p.Board().HasCastled(board.SideWhite) {
		t.Errorf("unexpected board after castle:\n%s", p.Board().Dump())
	}
	if p.History().CastleRights() != 0b0011 {
		t.Errorf("unexpected castle rights: got=%s want=%s", p.History().CastleRights(), "kq")
	}
	p.UnMake()
	if *p.Board() != snapshot {
		t.Errorf("unexpected board after undoing castle:\n%s", p.Board().Dump())
	}

	for _, uci := range []string{"h1h2", "a8b8", "h2h1", "b8a8"} {
		mv, err := p.ParseMove(uci)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		p.Make(&mv)
	}
	if has("e1g1") || !has("e1c1") {
		t.Error("unexpected moves: castle rights not tracked after rook returned home")
	}
	if p.FEN() != "r3k2r/8/8/8/8/8/8/R3K2R w Qk - 4 3" {
		t.Errorf("unexpected FEN: got=%s", p.FEN())
	}
}

func TestPositionEnPassant(t *testing.T) {
	t.Parallel()

	p := newTestPosition(t, "4k3/8/8/4P3/8/8/8/4K3 b - - 0 1")
	mv, err := p.ParseMove("d7d5")
	if err == nil {
		t.Fatalf("unexpected move: %s", mv.UCI())
	}

	p = newTestPosition(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	mv, err = p.ParseMove("d7d5")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	p.Make(&mv)
	if p.History().EnPassant() != square.D6 {
		t.Errorf("unexpected en passant target: got=%s want=%s", p.History().EnPassant(), square.D6)
	}
	ep, err := p.ParseMove("e5d6")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if !ep.IsEnPassant() || ep.Victim != square.D5 || ep.Captured != board.BlackPawn {
		t.Errorf("unexpected en passant move: got=%+v", ep)
	}
	p.Make(&ep)
	if p.Board().PieceAt(square.D5) != board.PieceNone || p.Board().Bitmap(board.BlackPawn) != 0 {
		t.Errorf("unexpected board after en passant:\n%s", p.Board().Dump())
	}
	p.UnMake()
	if p.Board().PieceAt(square.D5) != board.BlackPawn {
		t.Errorf("unexpected board after undoing en passant:\n%s", p.Board().Dump())
	}

	quiet, err := p.ParseMove("e1e2")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	p.Make(&quiet)
	reply, err := p.ParseMove("e8e7")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	p.Make(&reply)
	if _, err := p.ParseMove("e5d6"); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrIllegalMove)
	}
}

func TestPositionIsLegal(t *testing.T) {
	t.Parallel()

	p := newTestPosition(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	newMove := func(from, to square.Square) board.Move {
		piece := p.Board().PieceAt(from)
		e, ok := testTable.Find(piece, from, to, board.MoveKindUnknown, board.PieceNone)
		if !ok {
			t.Fatalf("unexpected missing entry: %s%s", from, to)
		}
		return p.Board().NewMove(piece, from, e)
	}

	if p.IsLegal(newMove(square.E2, square.D3)) {
		t.Error("unexpected legality: pinned bishop moved")
	}
	if !p.IsLegal(newMove(square.E1, square.D1)) {
		t.Error("unexpected legality: king step rejected")
	}
	if p.IsLegal(newMove(square.E1, square.E2)) {
		t.Error("unexpected legality: king onto own piece")
	}
	if p.IsLegal(newMove(square.E7, square.E2)) {
		t.Error("unexpected legality: black moved on white turn")
	}
}

func TestPositionParseMove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fen     string
		uci     string
		wantErr error
	}{
		{fen: board.DefaultStartingPositionFEN, uci: "e2e4"},
		{fen: board.DefaultStartingPositionFEN, uci: "g1f3"},
		{fen: board.DefaultStartingPositionFEN, uci: "e2e5", wantErr: ErrIllegalMove},
		{fen: board.DefaultStartingPositionFEN, uci: "e7e5", wantErr: ErrIllegalMove},
		{fen: board.DefaultStartingPositionFEN, uci: "", wantErr: ErrIllegalMove},
		{fen: "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N w - - 0 1", uci: "b7a8n"},
		{fen: "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N w - - 0 1", uci: "b7b8q"},
		{fen: "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N w - - 0 1", uci: "b7b8", wantErr: ErrIllegalMove},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.fen+" "+tt.uci, func(t *testing.T) {
			t.Parallel()

			mv, err := newTestPosition(t, tt.fen).ParseMove(tt.uci)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if err == nil && mv.UCI() != tt.uci {
				t.Errorf("unexpected move: got=%s want=%s", mv.UCI(), tt.uci)
			}
		})
	}
}

func TestPositionMaxMoves(t *testing.T) {
	t.Parallel()

	p := newTestPosition(t, "R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - - 0 1")
	if got := len(p.GetAllMoves(nil)); got != 218 {
		t.Errorf("unexpected move count: got=%d want=%d", got, 218)
	}

	defer func() {
		if recover() == nil {
			t.Error("unexpected add: no panic on overflow")
		}
	}()
	var l MoveList
	for i := 0; i <= MaxMoves; i++ {
		l.Add(board.Move{})
	}
}

func TestPositionUnMakePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("unexpected unmake: no panic without make")
		}
	}()
	newTestPosition(t, board.DefaultStartingPositionFEN).UnMake()
}

func TestPositionPhase(t *testing.T) {
	t.Parallel()

	p := newTestPosition(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 10")
	if p.Phase() != PhaseOpening || p.Ply() != 18 {
		t.Fatalf("unexpected phase: got=%s/%d want=%s/%d", p.Phase(), p.Ply(), PhaseOpening, 18)
	}
	for _, uci := range []string{"f1c4", "g8f6"} {
		mv, err := p.ParseMove(uci)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		p.Make(&mv)
	}
	if p.Phase() != PhaseMiddle {
		t.Errorf("unexpected phase: got=%s want=%s", p.Phase(), PhaseMiddle)
	}
	p.UnMake()
	if p.Phase() != PhaseOpening {
		t.Errorf("unexpected phase after unmake: got=%s want=%s", p.Phase(), PhaseOpening)
	}
	if phaseOf(80) != PhaseEnd || phaseOf(79) != PhaseMiddle {
		t.Error("unexpected phase boundaries")
	}
}

func TestPositionClone(t *testing.T) {
	t.Parallel()

	p := newTestPosition(t, board.DefaultStartingPositionFEN)
	c := p.Clone()
	mv, err := c.ParseMove("e2e4")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	c.Make(&mv)
	if p.FEN() != board.DefaultStartingPositionFEN {
		t.Errorf("unexpected FEN on original: got=%s", p.FEN())
	}
	if want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"; c.FEN() != want {
		t.Errorf("unexpected FEN on clone: got=%s want=%s", c.FEN(), want)
	}
}

func TestPositionValue(t *testing.T) {
	t.Parallel()

	p := newTestPosition(t, "4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	if got, want := p.Value(), -board.KindRook.Value(); got != want {
		t.Errorf("unexpected value: got=%d want=%d", got, want)
	}
}

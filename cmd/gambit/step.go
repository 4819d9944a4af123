package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/gambitcore/board"
	"github.com/daystram/gambitcore/eval"
	"github.com/daystram/gambitcore/position"
)

// step plays random moves, validating the board after every ply, then takes them all back.
func step(table *board.MoveTable, fen string, count int, seed int64) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesMake          []time.Duration
		timesState         []time.Duration
	)
	p, err := position.New(table,
		position.WithFEN(fen),
		position.WithEvaluator(eval.NewEvaluator()),
	)
	if err != nil {
		return err
	}
	startFEN := p.FEN()
	rng := rand.New(rand.NewSource(seed))

	var made int
	for made < count {
		t1 := time.Now()
		mvs := p.GetAllMoves(nil)
		timesGenerateMoves = append(timesGenerateMoves, time.Since(t1))
		if len(mvs) == 0 {
			break
		}
		mv := mvs[rng.Intn(len(mvs))]
		if parsed, err := p.ParseMove(mv.UCI()); err != nil || !parsed.Equals(mv) {
			return fmt.Errorf("ply %d: %s does not parse back: got=%v err=%v", p.Ply(), mv.UCI(), parsed, err)
		}
		see := p.Board().StaticExchange(mv)

		t1 = time.Now()
		p.Make(&mv)
		timesMake = append(timesMake, time.Since(t1))
		made++

		if err := p.Board().Validate(); err != nil {
			return fmt.Errorf("ply %d after %s: %w", p.Ply(), mv.UCI(), err)
		}

		t1 = time.Now()
		st := p.State()
		timesState = append(timesState, time.Since(t1))

		fmt.Printf("\n===== [#%d] %s: %s (see=%d value=%d)\n", p.Ply(), mv.Piece.Side(), mv.Algebra(), see, p.Value())
		fmt.Println(p.Board().Draw())
		fmt.Println(p.FEN())
		switch {
		case st.IsCheckmate():
			fmt.Println("checkmate:", st)
		case st.IsDraw():
			fmt.Println("draw:", st)
		case st.IsCheck():
			fmt.Println("check:", st)
		}
		if !st.IsRunning() {
			break
		}
	}

	for ; made > 0; made-- {
		p.UnMake()
	}
	if err := p.Board().Validate(); err != nil {
		return fmt.Errorf("after unwinding: %w", err)
	}
	if got := p.FEN(); got != startFEN {
		return fmt.Errorf("%w: unwound to %s, started from %s", board.ErrCorruptBoard, got, startFEN)
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(p.State())
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Println("make: ", avg(timesMake))
	fmt.Println("state:", avg(timesState))
	return nil
}

package bench

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/gambitcore/board"
	"github.com/daystram/gambitcore/position"
)

// Result holds the node count of a perft run and the flags of the moves reaching the leaves.
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (r *Result) add(o Result) {
	r.Nodes += o.Nodes
	r.Captures += o.Captures
	r.EnPassants += o.EnPassants
	r.Castles += o.Castles
	r.Promotions += o.Promotions
	r.Checks += o.Checks
}

func (r *Result) count(leaf board.Move) {
	r.Nodes++
	if leaf.IsCapture() {
		r.Captures++
	}
	if leaf.IsEnPassant() {
		r.EnPassants++
	}
	if leaf.IsCastle() {
		r.Castles++
	}
	if leaf.IsPromote() {
		r.Promotions++
	}
	if leaf.IsCheck {
		r.Checks++
	}
}

type Config struct {
	// Parallel searches every root move on its own cloned position.
	Parallel bool
	// Verbose sends one divide line per root move.
	Verbose bool
	// HashEntries sizes the subtree cache, zero disables it.
	HashEntries uint64
}

// Perft runs Run from a FEN and sends a summary line to out.
func Perft(table *board.MoveTable, fen string, depth int, cfg Config, out chan<- string) (Result, error) {
	p, err := position.New(table, position.WithFEN(fen))
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	r := Run(p, depth, cfg, out)
	elapsed := time.Since(start)

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
				depth, r.Nodes, int(float64(r.Nodes)/elapsed.Seconds()), r.Captures, r.EnPassants, r.Castles, r.Promotions, r.Checks, elapsed.Seconds())
	}
	return r, nil
}

// Run counts the leaves depth plies below p. The position is restored before returning.
func Run(p *position.Position, depth int, cfg Config, out chan<- string) Result {
	if depth <= 0 {
		return Result{Nodes: 1}
	}

	var h *HashTable
	if cfg.HashEntries > 0 {
		h = NewHashTable(cfg.HashEntries)
	}

	// copied since parallel workers outlive the scratch list
	mvs := append([]board.Move(nil), p.GetAllMoves(nil)...)
	children := make([]Result, len(mvs))
	if cfg.Parallel {
		var wg sync.WaitGroup
		for i := range mvs {
			i, q := i, p.Clone()
			wg.Add(1)
			go func() {
				defer wg.Done()
				children[i] = runChild(q, &mvs[i], depth, h)
			}()
		}
		wg.Wait()
	} else {
		for i := range mvs {
			children[i] = runChild(p, &mvs[i], depth, h)
		}
	}

	var sum Result
	for i, child := range children {
		if cfg.Verbose && out != nil {
			out <- fmt.Sprintf("%s: %d", mvs[i].UCI(), child.Nodes)
		}
		sum.add(child)
	}
	return sum
}

func runChild(p *position.Position, mv *board.Move, d int, h *HashTable) Result {
	p.Make(mv)
	defer p.UnMake()
	if d == 1 {
		var r Result
		r.count(*mv)
		return r
	}
	return runPerft(p, d-1, h)
}

func runPerft(p *position.Position, d int, h *HashTable) Result {
	key := p.Key()
	if r, ok := h.Get(key, d); ok {
		return r
	}
	var sum Result
	mvs := p.GetAllMoves(nil)
	for i := range mvs {
		sum.add(runChild(p, &mvs[i], d, h))
	}
	h.Set(key, d, sum)
	return sum
}

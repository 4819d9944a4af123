package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/gambitcore/board"
)

const (
	exitOK = iota
	exitErr
)

var errNoMode = errors.New("no mode selected")

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	perftDepth    = flag.Int("perft", 0, "run perft to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "split perft root moves across goroutines")
	perftHash     = flag.Uint64("perft.hash", 0, "perft hash table entries, zero disables")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	drawRun = flag.Bool("draw", false, "draw the board in the terminal")
	svgOut  = flag.String("svg", "", "write the board as SVG to the given file")
	svgCell = flag.Int("svg.cell", 48, "SVG cell size in pixels")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepCount = flag.Int("step.count", 500, "maximum plies in step mode")
	stepSeed  = flag.Int64("step.seed", 1, "random seed in step mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	table := board.NewMoveTable()

	switch {
	case *perftDepth > 0:
		return perft(table, *perftDepth, fen)
	case *movegenRun:
		return movegen(table, fen, *movegenDraw)
	case *drawRun || *svgOut != "":
		return draw(table, fen, *svgOut, *svgCell)
	case *stepRun:
		return step(table, fen, *stepCount, *stepSeed)
	default:
		flag.Usage()
		return errNoMode
	}
}

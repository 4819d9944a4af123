package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/daystram/gambitcore/board"
	"github.com/daystram/gambitcore/eval"
	"github.com/daystram/gambitcore/position"
)

func movegen(table *board.MoveTable, fen string, draw bool) error {
	log.Println("============ movegen")
	p, err := position.New(table,
		position.WithFEN(fen),
		position.WithEvaluator(eval.NewEvaluator()),
	)
	if err != nil {
		return err
	}
	b := p.Board()
	fmt.Println("to move:", p.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(p.State(), p.Phase(), "value:", p.Value())
	dumpMoves(p)

	if draw {
		mvs := p.GetAllMoves(eval.OrderMVVLVA)
		for i := range mvs {
			p.Make(&mvs[i])
			fmt.Println(mvs[i])
			fmt.Println(b.Draw())
			fmt.Println(p.FEN())
			p.UnMake()
		}
	}
	return nil
}

func dumpMoves(p *position.Position) {
	b := p.Board()
	mvs := p.GetAllMoves(eval.OrderExchange)
	for i, mv := range mvs {
		// pieces of either side already attacking the destination
		contest := b.AttackersTo(mv.To, b.Occupied()).BitCount()
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (kind=%s) (see=%d) (attackers=%d)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.Piece.Side(), mv.Piece.Kind(), mv.From, mv.To,
			mv.Kind, b.StaticExchange(mv), contest)
	}
}

func draw(table *board.MoveTable, fen, svgPath string, cell int) error {
	p, err := position.New(table, position.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println(p.Board().Draw())
	fmt.Println(p.FEN())
	if svgPath == "" {
		return nil
	}

	f, err := os.Create(svgPath)
	if err != nil {
		return fmt.Errorf("create svg: %w", err)
	}
	defer f.Close()
	p.Board().WriteSVG(f, cell)
	log.Printf("wrote %s\n", svgPath)
	return nil
}

package main

import (
	"log"

	"github.com/daystram/gambitcore/bench"
	"github.com/daystram/gambitcore/board"
)

func perft(table *board.MoveTable, depth int, fen string) error {
	log.Printf("============ perft(%d)\n", depth)

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()

	_, err := bench.Perft(table, fen, depth, bench.Config{
		Parallel:    *perftParallel,
		Verbose:     true,
		HashEntries: *perftHash,
	}, out)
	close(out)
	<-done
	return err
}

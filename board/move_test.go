package board

import (
	"testing"

	"github.com/daystram/gambitcore/square"
)

func TestMoveEquals(t *testing.T) {
	t.Parallel()
	base := Move{From: square.B7, To: square.A8, Piece: WhitePawn, Kind: MoveKindPromoteCapture, Victim: square.A8, Captured: BlackRook, Promote: WhiteQueen}
	tests := []struct {
		name string
		n    Move
		want bool
	}{
		{name: "same", n: base, want: true},
		{name: "check tag ignored", n: func() Move { m := base; m.IsCheck = true; return m }(), want: true},
		{name: "other promotion", n: func() Move { m := base; m.Promote = WhiteKnight; return m }(), want: false},
		{name: "other destination", n: func() Move { m := base; m.To = square.B8; return m }(), want: false},
		{name: "other origin", n: func() Move { m := base; m.From = square.A7; return m }(), want: false},
		{name: "other piece", n: func() Move { m := base; m.Piece = BlackPawn; return m }(), want: false},
		{name: "null move", n: Move{}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := base.Equals(tt.n); got != tt.want {
				t.Errorf("unexpected equals: got=%v want=%v", got, tt.want)
			}
			if got := tt.n.Equals(base); got != tt.want {
				t.Errorf("unexpected reversed equals: got=%v want=%v", got, tt.want)
			}
		})
	}
}

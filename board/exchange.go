package board

// StaticExchange estimates the material the mover nets when both sides keep capturing on the
// destination of mv, each time with their least valuable attacker. It never touches the board.
//
// The exchange stops as soon as neither side can turn the outcome around, so the sign of the
// result is exact but its magnitude is only a bound: after QxP RxQ a recapture RxR is not
// counted, and the result is P-Q rather than P-Q+R.
func (b *Board) StaticExchange(mv Move) int32 {
	var gain [32]int32
	bitmaps := b.bitmaps
	occupied := ^b.empty

	if mv.IsEnPassant() {
		bitmaps[mv.Captured].Unset(mv.Victim)
		occupied.Unset(mv.Victim)
	}

	// a removed piece of these kinds may uncover a slider behind it
	mayXRay := Union(
		bitmaps[WhitePawn], bitmaps[WhiteBishop], bitmaps[WhiteRook], bitmaps[WhiteQueen],
		bitmaps[BlackPawn], bitmaps[BlackBishop], bitmaps[BlackRook], bitmaps[BlackQueen],
	)

	attackers := b.attackersTo(mv.To, occupied, &bitmaps)
	from, piece, value := MaskCell[mv.From], mv.Piece, mv.Piece.Value()
	side := mv.Piece.Side()

	gain[0] = mv.Captured.Value()
	if mv.IsPromote() {
		gain[0] += mv.Promote.Value() - mv.Piece.Value()
		value = mv.Promote.Value()
	}

	d := 0
	for {
		d++
		side = side.Opposite()
		gain[d] = value - gain[d-1]
		if max(-gain[d-1], gain[d]) < 0 {
			break
		}

		attackers &^= from
		occupied &^= from
		bitmaps[piece] &^= from
		if from&mayXRay != 0 {
			attackers = b.attackersTo(mv.To, occupied, &bitmaps)
		}

		from, piece = leastValuableAttacker(attackers, side, &bitmaps)
		if from == 0 || d == len(gain)-1 {
			break
		}
		value = piece.Value()
	}
	for d--; d > 0; d-- {
		gain[d-1] = -max(-gain[d-1], gain[d])
	}
	return gain[0]
}

// leastValuableAttacker picks one attacker of side s, scanning kinds from pawn to king.
func leastValuableAttacker(attackers Bitmap, s Side, bitmaps *[PieceCount]Bitmap) (Bitmap, Piece) {
	for _, k := range Kinds {
		p := NewPiece(s, k)
		if subset := attackers & bitmaps[p]; subset != 0 {
			return subset & -subset, p
		}
	}
	return 0, PieceNone
}


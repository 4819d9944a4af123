package board

import "github.com/daystram/gambitcore/square"

// Entry is one geometrically possible move of a piece from an origin square.
type Entry struct {
	To      square.Square
	Victim  square.Square
	Kind    MoveKind
	Promote Piece
	Castle  CastleDirection

	// Transit holds the squares strictly between origin and destination, all of which
	// must be empty for the move to be playable. It is empty for leapers.
	Transit Bitmap
}

// Ray is a group of entries ordered outward from the origin. Once an entry is blocked,
// every later entry of the same ray is blocked too.
type Ray []Entry

// Attack is an origin square from which a piece attacks a destination, given an empty transit.
type Attack struct {
	From    square.Square
	Transit Bitmap
}

// MoveTable holds every geometrically possible move of every piece from every square.
// It is built once by NewMoveTable and only read afterwards, so a single table may be
// shared by any number of boards across goroutines.
type MoveTable struct {
	rays      [PieceCount][square.Total][]Ray
	attacksTo [PieceCount][square.Total][]Attack
	attackers [PieceCount][square.Total]Bitmap
}

type offset struct {
	file, rank square.Square
}

var (
	offsetsKnight = []offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	offsetsKing   = []offset{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	dirsBishop    = []offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	dirsRook      = []offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	dirsQueen     = append(append([]offset{}, dirsRook...), dirsBishop...)
)

func NewMoveTable() *MoveTable {
	t := &MoveTable{}
	for _, p := range Pieces {
		for from := square.A1; from < square.Total; from++ {
			switch p.Kind() {
			case KindPawn:
				t.rays[p][from] = genPawnRays(p.Side(), from)
			case KindKnight:
				t.rays[p][from] = genLeaperRays(from, offsetsKnight)
			case KindBishop:
				t.rays[p][from] = genSliderRays(from, dirsBishop)
			case KindRook:
				t.rays[p][from] = genSliderRays(from, dirsRook)
			case KindQueen:
				t.rays[p][from] = genSliderRays(from, dirsQueen)
			case KindKing:
				t.rays[p][from] = append(genLeaperRays(from, offsetsKing), genCastleRays(p.Side(), from)...)
			}
		}
	}
	t.initAttacksTo()
	return t
}

// Rays returns the entries of the piece standing on from, grouped by ray.
func (t *MoveTable) Rays(p Piece, from square.Square) []Ray {
	return t.rays[p][from]
}

// AttacksTo returns every origin from which the piece attacks to.
func (t *MoveTable) AttacksTo(p Piece, to square.Square) []Attack {
	return t.attacksTo[p][to]
}

// Attackers returns the union of the origins in AttacksTo.
func (t *MoveTable) Attackers(p Piece, to square.Square) Bitmap {
	return t.attackers[p][to]
}

// Find looks up the entry of the piece moving from one square to another. For promotions the
// promoted piece disambiguates between the four variants. A pawn capture and an en passant
// capture share their destination, so kind selects between them; MoveKindUnknown takes the
// first match.
func (t *MoveTable) Find(p Piece, from, to square.Square, kind MoveKind, promote Piece) (Entry, bool) {
	if p == PieceNone || !from.IsValid() || !to.IsValid() {
		return Entry{}, false
	}
	for _, ray := range t.rays[p][from] {
		for _, e := range ray {
			if e.To == to && e.Promote == promote && (kind == MoveKindUnknown || e.Kind == kind) {
				return e, true
			}
		}
	}
	return Entry{}, false
}

func (t *MoveTable) initAttacksTo() {
	for _, p := range Pieces {
		for from := square.A1; from < square.Total; from++ {
			for _, ray := range t.rays[p][from] {
				for _, e := range ray {
					switch e.Kind {
					case MoveKindNormal, MoveKindCapture, MoveKindPromoteCapture:
					default:
						continue
					}
					if t.attackers[p][e.To].Has(from) {
						continue // promotion variants share one attack
					}
					t.attackers[p][e.To].Set(from)
					t.attacksTo[p][e.To] = append(t.attacksTo[p][e.To], Attack{From: from, Transit: e.Transit})
				}
			}
		}
	}
}

func step(from square.Square, o offset) square.Square {
	return square.New(from.File()+o.file, from.Rank()+o.rank)
}

func genLeaperRays(from square.Square, offsets []offset) []Ray {
	var rays []Ray
	for _, o := range offsets {
		to := step(from, o)
		if to == square.NoSquare {
			continue // wrapped off the board
		}
		rays = append(rays, Ray{{To: to, Victim: to, Kind: MoveKindNormal}})
	}
	return rays
}

func genSliderRays(from square.Square, dirs []offset) []Ray {
	var rays []Ray
	for _, d := range dirs {
		var ray Ray
		var transit Bitmap
		for to := step(from, d); to != square.NoSquare; to = step(to, d) {
			ray = append(ray, Entry{To: to, Victim: to, Kind: MoveKindNormal, Transit: transit})
			transit.Set(to)
		}
		if len(ray) != 0 {
			rays = append(rays, ray)
		}
	}
	return rays
}

func genCastleRays(s Side, from square.Square) []Ray {
	var rays []Ray
	for _, d := range CastleDirections {
		kingFrom, kingTo := d.King()
		if d.Side() != s || kingFrom != from {
			continue
		}
		rays = append(rays, Ray{{To: kingTo, Victim: kingTo, Kind: MoveKindCastle, Castle: d, Transit: maskCastleTransit[d]}})
	}
	return rays
}

func genPawnRays(s Side, from square.Square) []Ray {
	homeRank, lastRank, enPassantRank := square.Rank2, square.Rank8, square.Rank5
	if s == SideBlack {
		homeRank, lastRank, enPassantRank = square.Rank7, square.Rank1, square.Rank4
	}
	fwd := square.Square(s.Forward())
	file, rank := from.File(), from.Rank()
	if rank == square.Rank1 || rank == square.Rank8 {
		return nil
	}

	var rays []Ray
	promoteRay := func(to square.Square, kind MoveKind) Ray {
		ray := make(Ray, 0, len(PromoteCandidates))
		for _, k := range PromoteCandidates {
			ray = append(ray, Entry{To: to, Victim: to, Kind: kind, Promote: NewPiece(s, k)})
		}
		return ray
	}

	push := square.New(file, rank+fwd)
	if push.Rank() == lastRank {
		rays = append(rays, promoteRay(push, MoveKindPromote))
	} else {
		rays = append(rays, Ray{{To: push, Victim: push, Kind: MoveKindPush}})
	}
	if rank == homeRank {
		to := square.New(file, rank+2*fwd)
		rays = append(rays, Ray{{To: to, Victim: to, Kind: MoveKindDoublePush, Transit: MaskCell[push]}})
	}

	for _, df := range []square.Square{-1, 1} {
		to := square.New(file+df, rank+fwd)
		if to == square.NoSquare {
			continue // file edge
		}
		if to.Rank() == lastRank {
			rays = append(rays, promoteRay(to, MoveKindPromoteCapture))
		} else {
			rays = append(rays, Ray{{To: to, Victim: to, Kind: MoveKindCapture}})
		}
		if rank == enPassantRank {
			rays = append(rays, Ray{{To: to, Victim: square.New(file+df, rank), Kind: MoveKindEnPassant}})
		}
	}
	return rays
}

package position

type Phase uint8

const (
	PhaseOpening Phase = iota
	PhaseMiddle
	PhaseEnd
)

const (
	phaseMiddlePly = 20
	phaseEndPly    = 80
)

func phaseOf(ply int) Phase {
	switch {
	case ply < phaseMiddlePly:
		return PhaseOpening
	case ply < phaseEndPly:
		return PhaseMiddle
	default:
		return PhaseEnd
	}
}

func (p Phase) String() string {
	switch p {
	case PhaseOpening:
		return "Opening"
	case PhaseMiddle:
		return "Middle"
	case PhaseEnd:
		return "End"
	default:
		return ""
	}
}

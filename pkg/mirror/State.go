package mirror

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Retrying:
		return "retrying"
	case Succeeded:
		return "succeeded"
	case FailedTerminal:
		return "failed"
	default:
		return "unknown"
	}
}

func (s State) Terminal() bool {
	return s == Succeeded || s == FailedTerminal
}

// allowed lists every legal transition of an attempt.
var allowed = map[State][]State{
	Pending:  {Running},
	Running:  {Succeeded, Retrying, FailedTerminal},
	Retrying: {Running},
}

func canTransition(from State, to State) bool {
	for _, next := range allowed[from] {
		if next == to {
			return true
		}
	}

	return false
}

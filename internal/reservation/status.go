package reservation

type State string

const (
	StateDraft      State = "DRAFT"
	StateValidating State = "VALIDATING"
	StateSubmitting State = "SUBMITTING"
	StateConfirmed  State = "CONFIRMED"
	StateRejected   State = "REJECTED"
)

var validNext = map[State]map[State]bool{
	StateDraft:      {StateValidating: true},
	StateValidating: {StateSubmitting: true, StateDraft: true},
	StateSubmitting: {StateConfirmed: true, StateRejected: true},
	StateRejected:   {StateDraft: true},
	StateConfirmed:  {StateDraft: true},
}

func CanTransition(from, to State) bool {
	return validNext[from][to]
}

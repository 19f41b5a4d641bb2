package remedy

// State is a step of the remediation state machine
type State int

const (
	// Classifying is entered on every push failure
	Classifying State = iota
	// PresentingChoice shows the remediation menu
	PresentingChoice
	// ExecutingRemedy runs the commands behind the chosen option
	ExecutingRemedy
	// RetryPush hands control back to the push loop
	RetryPush
	// Aborted is terminal: the session ends without a successful push
	Aborted
	// Succeeded is terminal: a remedial push went through
	Succeeded
)

func (s State) String() string {
	switch s {
	case Classifying:
		return "Classifying"
	case PresentingChoice:
		return "PresentingChoice"
	case ExecutingRemedy:
		return "ExecutingRemedy"
	case RetryPush:
		return "RetryPush"
	case Aborted:
		return "Aborted"
	case Succeeded:
		return "Succeeded"
	default:
		return "State(?)"
	}
}

// Terminal reports whether the session ends in this state.
func (s State) Terminal() bool {
	return s == Aborted || s == Succeeded
}

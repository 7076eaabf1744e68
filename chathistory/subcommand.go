package chathistory

// Subcommand is one CHATHISTORY request shape. Limits are chosen by the
// caller, bounded by the server-advertised CHATHISTORY maximum.
type Subcommand interface {
	isSubcommand()
}

// Latest requests the most recent messages of a target, optionally only
// those after the reference.
type Latest struct {
	Target    string
	Reference MessageReference
	Limit     uint16
}

// Before requests the messages of a target preceding the reference.
type Before struct {
	Target    string
	Reference MessageReference
	Limit     uint16
}

// Between requests the messages of a target between two references.
type Between struct {
	Target string
	Start  MessageReference
	End    MessageReference
	Limit  uint16
}

// Targets requests the list of targets with history between two references;
// it addresses no target itself.
type Targets struct {
	Start MessageReference
	End   MessageReference
	Limit uint16
}

func (Latest) isSubcommand()  {}
func (Before) isSubcommand()  {}
func (Between) isSubcommand() {}
func (Targets) isSubcommand() {}

// SubcommandTarget returns the target a subcommand addresses. Targets
// requests address none and return false.
func SubcommandTarget(s Subcommand) (string, bool) {
	switch s := s.(type) {
	case Latest:
		return s.Target, true
	case Before:
		return s.Target, true
	case Between:
		return s.Target, true
	}
	return "", false
}

// State marks how far a history-bearing target's backlog has been fetched.
// The transition logic belongs to the caller's history-fetch component; the
// values only fix the vocabulary.
type State int

const (
	// Exhausted means the full backlog has been retrieved.
	Exhausted State = iota
	// PendingRequest means a request is in flight.
	PendingRequest
	// Ready means more history may be requested.
	Ready
)

// String names the state for logs.
func (s State) String() string {
	switch s {
	case Exhausted:
		return "exhausted"
	case PendingRequest:
		return "pending-request"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

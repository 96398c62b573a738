package job

import "fmt"

// State represents the current lifecycle state of a Job.
//
// The state machine is:
//
//	waiting   -> running
//	scheduled -> waiting   (once the due time passes)
//	running   -> stalled   (lease expiry, re-pop eligible)
//	running   -> complete
//	running   -> failed
//	stalled   -> running   (re-popped by any worker)
//	running   -> waiting | scheduled (via a next-queue on complete)
//
// Unknown is reserved as the zero value, returned alongside an error
// or a false "ok" result from Store methods that cannot supply a real
// state.
type State uint8

const (
	// Unknown is the zero value, returned in place of a real State
	// when a Store call fails or its precondition does not hold.
	Unknown State = iota

	// Waiting indicates the job is visible and eligible for Pop.
	Waiting

	// Scheduled indicates the job is not yet due; it becomes Waiting
	// once its due time passes.
	Scheduled

	// Running indicates the job is leased to a worker until Expires.
	Running

	// Stalled indicates the lease expired before completion; the job
	// is preferred over Waiting jobs on the next Pop.
	Stalled

	// Complete is terminal: the job finished successfully.
	Complete

	// Failed is terminal: the job's worker reported a failure group.
	Failed
)

func stateToString(s State) string {
	switch s {
	case Waiting:
		return "waiting"
	case Scheduled:
		return "scheduled"
	case Running:
		return "running"
	case Stalled:
		return "stalled"
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

func stateFromString(s string) (State, error) {
	switch s {
	case "waiting":
		return Waiting, nil
	case "scheduled":
		return Scheduled, nil
	case "running":
		return Running, nil
	case "stalled":
		return Stalled, nil
	case "complete":
		return Complete, nil
	case "failed":
		return Failed, nil
	case "unknown", "":
		return Unknown, nil
	default:
		return 0, fmt.Errorf("unknown job state: %s", s)
	}
}

// ParseState converts a string representation of a state into a State
// value. An error is returned for unrecognized strings.
func ParseState(s string) (State, error) {
	return stateFromString(s)
}

// MarshalText implements encoding.TextMarshaler using the canonical
// lowercase state names from spec.md's state enumeration.
func (s State) MarshalText() ([]byte, error) {
	return []byte(stateToString(s)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	state, err := stateFromString(string(text))
	if err != nil {
		return err
	}
	*s = state
	return nil
}

// String returns the canonical string representation of the state.
func (s State) String() string {
	return stateToString(s)
}

// Terminal reports whether s is a state from which a job is never
// re-dispensed without an explicit Put/move.
func (s State) Terminal() bool {
	return s == Complete || s == Failed
}

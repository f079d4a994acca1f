package lrtable

import "fmt"

// ActionType is the closed set of things an ACTION table cell can hold.
type ActionType int

const (
	ActionError ActionType = iota
	ActionShift
	ActionReduce
	ActionAccept
)

func (t ActionType) String() string {
	switch t {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// Action is a single ACTION table cell: shift to State, reduce by
// Production, accept, or (the zero value) error.
type Action struct {
	Type  ActionType
	State int // target state, for ActionShift
	Prod  int // production index, for ActionReduce
}

func (a Action) String() string {
	switch a.Type {
	case ActionShift:
		return fmt.Sprintf("shift %d", a.State)
	case ActionReduce:
		return fmt.Sprintf("reduce %d", a.Prod)
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// ConflictError reports two actions competing for the same (state,
// terminal) cell, discovered while filling the ACTION table. The table
// builder treats any conflict as a fatal build-time error; there is no
// default resolution policy (no shift preference, no precedence
// declarations).
type ConflictError struct {
	State    int
	Terminal string
	Existing Action
	New      Action
}

func (e *ConflictError) Error() string {
	kind := conflictKind(e.Existing.Type, e.New.Type)
	return fmt.Sprintf(
		"%s conflict in state %d on %q: have %s, got %s",
		kind, e.State, e.Terminal, e.Existing, e.New,
	)
}

func conflictKind(a, b ActionType) string {
	switch {
	case a == ActionShift && b == ActionReduce, a == ActionReduce && b == ActionShift:
		return "shift/reduce"
	case a == ActionReduce && b == ActionReduce:
		return "reduce/reduce"
	case a == ActionAccept || b == ActionAccept:
		return "accept"
	default:
		return "action"
	}
}

package engine

import "fmt"

// ActionKind is the type of a player action.
type ActionKind int

const (
	ActionUnimplemented ActionKind = iota
	ActionUp
	ActionDown
	ActionConfirm
	ActionNumber
	ActionQuit
	ActionCancel
)

// Action is one discrete player input. N is only set for ActionNumber.
type Action struct {
	Kind ActionKind
	N    int
}

var (
	Up            = Action{Kind: ActionUp}
	Down          = Action{Kind: ActionDown}
	Confirm       = Action{Kind: ActionConfirm}
	Quit          = Action{Kind: ActionQuit}
	Cancel        = Action{Kind: ActionCancel}
	Unimplemented = Action{Kind: ActionUnimplemented}
)

// Number selects the n-th visible option of the current stage.
func Number(n int) Action { return Action{Kind: ActionNumber, N: n} }

func (a Action) String() string {
	switch a.Kind {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionConfirm:
		return "confirm"
	case ActionNumber:
		return fmt.Sprintf("number(%d)", a.N)
	case ActionQuit:
		return "quit"
	case ActionCancel:
		return "cancel"
	case ActionUnimplemented:
		return "unimplemented"
	}
	return fmt.Sprintf("Action(%d)", int(a.Kind))
}

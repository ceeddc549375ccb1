package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentGenerate
	IntentReset
	IntentCopy
	IntentShow
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentGenerate:
		return "generate"
	case IntentReset:
		return "reset"
	case IntentCopy:
		return "copy"
	case IntentShow:
		return "show"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // the recipe idea for generate
}

// intentNames maps command names to IntentType values.
var intentNames = map[string]IntentType{
	"generate": IntentGenerate,
	"reset":    IntentReset,
	"copy":     IntentCopy,
	"show":     IntentShow,
	"help":     IntentHelp,
	"quit":     IntentQuit,
	"unknown":  IntentUnknown,
}

// IntentFromString converts a command name to an IntentType.
// Returns IntentUnknown for unrecognized names.
func IntentFromString(name string) IntentType {
	if t, ok := intentNames[name]; ok {
		return t
	}
	return IntentUnknown
}

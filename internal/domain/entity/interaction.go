package entity

type ActionKind string

const (
	ActionType   ActionKind = "type"
	ActionClick  ActionKind = "click"
	ActionSelect ActionKind = "select"
)

// ActionPath records which mechanism performed an action.
type ActionPath string

const (
	PathNone   ActionPath = ""
	PathNative ActionPath = "native"
	PathScript ActionPath = "script"
)

// Stage is a state of a single interaction call:
// Resolving -> Acting(native) -> {Done | Acting(script) -> {Done | Failed}}.
type Stage string

const (
	StageResolving    Stage = "resolving"
	StageActingNative Stage = "acting-native"
	StageActingScript Stage = "acting-script"
	StageDone         Stage = "done"
	StageFailed       Stage = "failed"
)

func (s Stage) Terminal() bool {
	return s == StageDone || s == StageFailed
}

type InteractionOutcome struct {
	Succeeded bool
	Path      ActionPath
	Stage     Stage
	// Strategy is the locator that produced the acted-on element.
	Strategy LocatorStrategy
	Err      error
}

func Done(path ActionPath, strategy LocatorStrategy) InteractionOutcome {
	return InteractionOutcome{Succeeded: true, Path: path, Stage: StageDone, Strategy: strategy}
}

func Failed(path ActionPath, strategy LocatorStrategy, err error) InteractionOutcome {
	return InteractionOutcome{Path: path, Stage: StageFailed, Strategy: strategy, Err: err}
}

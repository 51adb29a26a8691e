package entity

import (
	"fmt"
	"time"
)

type ConditionKind string

const (
	ConditionVisible      ConditionKind = "visible"
	ConditionClickable    ConditionKind = "clickable"
	ConditionURLEquals    ConditionKind = "url-equals"
	ConditionURLContains  ConditionKind = "url-contains"
	ConditionScriptTruthy ConditionKind = "script-truthy"
)

func (k ConditionKind) String() string {
	return string(k)
}

// IsElement reports whether the condition is evaluated against an element.
func (k ConditionKind) IsElement() bool {
	return k == ConditionVisible || k == ConditionClickable
}

const DefaultPollInterval = 100 * time.Millisecond

// WaitSpec is single-use: one spec per wait invocation.
type WaitSpec struct {
	Kind ConditionKind
	// Expected is the URL (url-*) or the JS function (script-truthy).
	Expected string
	Timeout  time.Duration
	// PollInterval falls back to the engine default when zero.
	PollInterval time.Duration
}

func VisibleWithin(timeout time.Duration) WaitSpec {
	return WaitSpec{Kind: ConditionVisible, Timeout: timeout}
}

func ClickableWithin(timeout time.Duration) WaitSpec {
	return WaitSpec{Kind: ConditionClickable, Timeout: timeout}
}

func URLEquals(url string, timeout time.Duration) WaitSpec {
	return WaitSpec{Kind: ConditionURLEquals, Expected: url, Timeout: timeout}
}

func URLContains(fragment string, timeout time.Duration) WaitSpec {
	return WaitSpec{Kind: ConditionURLContains, Expected: fragment, Timeout: timeout}
}

// ScriptTruthy waits until fn, a JS function expression such as
// `() => document.readyState === "complete"`, returns a truthy value.
func ScriptTruthy(fn string, timeout time.Duration) WaitSpec {
	return WaitSpec{Kind: ConditionScriptTruthy, Expected: fn, Timeout: timeout}
}

func (w WaitSpec) Validate() error {
	switch w.Kind {
	case ConditionVisible, ConditionClickable:
	case ConditionURLEquals, ConditionURLContains, ConditionScriptTruthy:
		if w.Expected == "" {
			return fmt.Errorf("%w: %s wait needs an expected value", ErrInvalidConfiguration, w.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown wait condition %q", ErrInvalidConfiguration, w.Kind)
	}
	if w.Timeout <= 0 {
		return fmt.Errorf("%w: %s wait needs a positive timeout, got %s", ErrInvalidConfiguration, w.Kind, w.Timeout)
	}
	if w.PollInterval < 0 {
		return fmt.Errorf("%w: negative poll interval %s", ErrInvalidConfiguration, w.PollInterval)
	}
	return nil
}

func (w WaitSpec) String() string {
	if w.Expected == "" {
		return fmt.Sprintf("%s within %s", w.Kind, w.Timeout)
	}
	return fmt.Sprintf("%s %q within %s", w.Kind, w.Expected, w.Timeout)
}

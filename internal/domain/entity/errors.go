package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrTimeout              = errors.New("condition not satisfied before timeout")
	ErrNotFound             = errors.New("no locator candidate matched")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInteractionFailed    = errors.New("interaction failed")
	ErrStale                = errors.New("stale element reference")
	// ErrNotInteractable is returned by the native action path when the UI
	// rejects the action (obscured, intercepted, zero-size, disabled).
	ErrNotInteractable = errors.New("element not interactable")
	ErrInvalidURL      = errors.New("invalid URL")
)

// TimeoutError is returned when a wait runs out of time. The last
// non-fatal observation is kept for diagnostics but is not unwrapped.
type TimeoutError struct {
	What    string
	Timeout time.Duration
	Last    error
}

func (e *TimeoutError) Error() string {
	msg := fmt.Sprintf("timed out after %s waiting for %s", e.Timeout, e.What)
	if e.Last != nil {
		msg += " (last: " + e.Last.Error() + ")"
	}
	return msg
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

type NotFoundError struct {
	Target    string
	Condition ConditionKind
	Attempted []LocatorStrategy
}

func (e *NotFoundError) Error() string {
	attempted := make([]string, 0, len(e.Attempted))
	for _, s := range e.Attempted {
		attempted = append(attempted, s.String())
	}
	return fmt.Sprintf("%s: no candidate became %s, attempted [%s]",
		e.Target, e.Condition, strings.Join(attempted, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InteractionError reports an action that could not be completed. It
// unwraps to its cause, so both ErrInteractionFailed and the cause match
// errors.Is.
type InteractionError struct {
	Action ActionKind
	Target string
	Path   ActionPath
	Err    error
}

func (e *InteractionError) Error() string {
	if e.Path == PathNone {
		return fmt.Sprintf("%s %s: %v", e.Action, e.Target, e.Err)
	}
	return fmt.Sprintf("%s %s (%s path): %v", e.Action, e.Target, e.Path, e.Err)
}

func (e *InteractionError) Is(target error) bool {
	return target == ErrInteractionFailed
}

func (e *InteractionError) Unwrap() error {
	return e.Err
}

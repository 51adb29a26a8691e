package wait

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
)

// Element waits for the first element matched by loc that satisfies an
// element condition (visible or clickable). Every poll searches the DOM
// again, so a node that went stale is simply looked up afresh.
func (e *Engine) Element(ctx context.Context, session output.SessionPort, loc entity.LocatorStrategy, spec entity.WaitSpec) (output.ElementPort, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if !spec.Kind.IsElement() {
		return nil, fmt.Errorf("%w: %s is not an element condition", entity.ErrInvalidConfiguration, spec.Kind)
	}
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	what := fmt.Sprintf("%s to be %s", loc, spec.Kind)
	return Poll(ctx, e, what, spec.Timeout, spec.PollInterval, func(ctx context.Context) (output.ElementPort, bool, error) {
		elements, err := session.FindElements(ctx, loc)
		if err != nil {
			return nil, false, transient(err)
		}

		var stale error
		for _, el := range elements {
			ok, err := Satisfies(ctx, el, spec.Kind)
			if err != nil {
				if errors.Is(err, entity.ErrStale) {
					stale = err
					continue
				}
				return nil, false, err
			}
			if ok {
				return el, true, nil
			}
		}
		return nil, false, Retry(stale)
	})
}

// Satisfies checks an element condition once against the element's
// current state.
func Satisfies(ctx context.Context, el output.ElementPort, kind entity.ConditionKind) (bool, error) {
	visible, err := el.Visible(ctx)
	if err != nil || !visible {
		return false, err
	}
	if kind != entity.ConditionClickable {
		return true, nil
	}
	return el.Enabled(ctx)
}

// URL waits until the current URL equals or contains spec.Expected and
// returns the URL observed.
func (e *Engine) URL(ctx context.Context, session output.SessionPort, spec entity.WaitSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	var match func(string) bool
	switch spec.Kind {
	case entity.ConditionURLEquals:
		match = func(u string) bool { return u == spec.Expected }
	case entity.ConditionURLContains:
		match = func(u string) bool { return strings.Contains(u, spec.Expected) }
	default:
		return "", fmt.Errorf("%w: %s is not a URL condition", entity.ErrInvalidConfiguration, spec.Kind)
	}

	what := fmt.Sprintf("url %s %q", spec.Kind, spec.Expected)
	return Poll(ctx, e, what, spec.Timeout, spec.PollInterval, func(ctx context.Context) (string, bool, error) {
		current, err := session.CurrentURL(ctx)
		if err != nil {
			return "", false, transient(err)
		}
		return current, match(current), nil
	})
}

// Script waits until the JS function in spec.Expected returns a truthy
// value.
func (e *Engine) Script(ctx context.Context, session output.SessionPort, spec entity.WaitSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if spec.Kind != entity.ConditionScriptTruthy {
		return fmt.Errorf("%w: %s is not a script condition", entity.ErrInvalidConfiguration, spec.Kind)
	}

	fn := fmt.Sprintf("() => !!(%s)()", spec.Expected)
	_, err := Poll(ctx, e, "script "+spec.Expected+" to be truthy", spec.Timeout, spec.PollInterval, func(ctx context.Context) (struct{}, bool, error) {
		v, err := session.ExecuteScript(ctx, fn)
		if err != nil {
			return struct{}{}, false, transient(err)
		}
		return struct{}{}, v.Bool(), nil
	})
	return err
}

// transient lets a poll survive the page swapping documents under it.
func transient(err error) error {
	if errors.Is(err, entity.ErrStale) {
		return Retry(err)
	}
	return err
}

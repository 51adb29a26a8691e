package rod

import (
	"context"
	"fmt"
	"time"

	"webui-e2e/internal/application/port/output"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

var _ output.ElementPort = (*Element)(nil)

const jsClear = `() => {
	this.value = "";
	this.dispatchEvent(new Event("input", {bubbles: true}));
	this.dispatchEvent(new Event("change", {bubbles: true}));
}`

// Element wraps a rod element. It holds the remote object id only, so it
// goes stale as soon as the page replaces the node.
type Element struct {
	el      *rod.Element
	timeout time.Duration
}

func newElement(el *rod.Element, timeout time.Duration) *Element {
	return &Element{el: el, timeout: timeout}
}

func (e *Element) bound(ctx context.Context) (*rod.Element, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return e.el.Context(ctx), func() {}
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	return e.el.Context(ctx), cancel
}

func (e *Element) Visible(ctx context.Context) (bool, error) {
	el, cancel := e.bound(ctx)
	defer cancel()

	visible, err := el.Visible()
	if err != nil {
		return false, classify(err)
	}
	return visible, nil
}

func (e *Element) Enabled(ctx context.Context) (bool, error) {
	el, cancel := e.bound(ctx)
	defer cancel()

	disabled, err := el.Property("disabled")
	if err != nil {
		return false, classify(err)
	}
	return !disabled.Bool(), nil
}

func (e *Element) Click(ctx context.Context) error {
	el, cancel := e.bound(ctx)
	defer cancel()

	// rod's Click waits for a covered element to clear until the deadline.
	// Check once instead so the caller can escalate right away.
	if err := el.ScrollIntoView(); err != nil {
		return fmt.Errorf("scroll into view: %w", classifyAction(err))
	}
	if _, err := el.Interactable(); err != nil {
		return fmt.Errorf("click rejected: %w", classifyAction(err))
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click failed: %w", classifyAction(err))
	}
	return nil
}

func (e *Element) Clear(ctx context.Context) error {
	el, cancel := e.bound(ctx)
	defer cancel()

	if err := el.SelectAllText(); err == nil {
		if err := el.Type(input.Backspace); err != nil {
			return fmt.Errorf("failed to clear field: %w", classifyAction(err))
		}
		return nil
	}
	if _, err := el.Eval(jsClear); err != nil {
		return fmt.Errorf("failed to clear field: %w", classifyAction(err))
	}
	return nil
}

func (e *Element) Input(ctx context.Context, text string) error {
	el, cancel := e.bound(ctx)
	defer cancel()

	if err := el.Input(text); err != nil {
		return fmt.Errorf("input failed: %w", classifyAction(err))
	}
	return nil
}

func (e *Element) SelectByText(ctx context.Context, text string) error {
	el, cancel := e.bound(ctx)
	defer cancel()

	if err := el.Select([]string{text}, true, rod.SelectorTypeText); err != nil {
		return fmt.Errorf("select %q failed: %w", text, classifyAction(err))
	}
	return nil
}

func (e *Element) SelectByValue(ctx context.Context, value string) error {
	el, cancel := e.bound(ctx)
	defer cancel()

	selector := fmt.Sprintf(`option[value=%s]`, cssString(value))
	if err := el.Select([]string{selector}, true, rod.SelectorTypeCSSSector); err != nil {
		return fmt.Errorf("select value %q failed: %w", value, classifyAction(err))
	}
	return nil
}

func (e *Element) Text(ctx context.Context) (string, error) {
	el, cancel := e.bound(ctx)
	defer cancel()

	text, err := el.Text()
	if err != nil {
		return "", classify(err)
	}
	return text, nil
}

func (e *Element) Eval(ctx context.Context, fn string, args ...any) (gson.JSON, error) {
	el, cancel := e.bound(ctx)
	defer cancel()

	res, err := el.Eval(fn, args...)
	if err != nil {
		return gson.New(nil), fmt.Errorf("eval on element: %w", classify(err))
	}
	return res.Value, nil
}

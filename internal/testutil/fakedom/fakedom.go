// Package fakedom is an in-memory SessionPort for exercising waits,
// resolution and interactions without a browser. Nodes can be scheduled
// to appear and detach, go stale, or refuse native clicks.
package fakedom

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"

	"github.com/ysmood/gson"
)

var _ output.SessionPort = (*DOM)(nil)

var errScriptClick = errors.New("script click threw")

type Option struct {
	Text  string
	Value string
}

// Node is a fake element. Timing fields are offsets from DOM creation.
type Node struct {
	Text     string
	Value    string
	Options  []Option
	Hidden   bool
	Disabled bool

	// AppearAt delays the node's insertion; zero means present from the start.
	AppearAt time.Duration
	// DetachAt removes the node; zero means never.
	DetachAt time.Duration

	// RejectNative makes native clicks fail as if the node were obscured.
	RejectNative bool
	RejectScript bool
	// StaleActions is how many upcoming actions fail as stale. Each one
	// replaces the node, so handles taken before it stay stale.
	StaleActions int

	NativeClicks int
	ScriptClicks int
	Keystrokes   int
	Clears       int

	gen int
}

type DOM struct {
	mu      sync.Mutex
	start   time.Time
	nodes   map[entity.LocatorStrategy][]*Node
	findErr map[entity.LocatorStrategy]error
	finds   map[entity.LocatorStrategy]int

	url    string
	title  string
	script func(fn string) (any, error)
}

func New() *DOM {
	return &DOM{
		start:   time.Now(),
		nodes:   map[entity.LocatorStrategy][]*Node{},
		findErr: map[entity.LocatorStrategy]error{},
		finds:   map[entity.LocatorStrategy]int{},
		url:     "about:blank",
	}
}

// Add registers n under loc and returns it for later inspection.
func (d *DOM) Add(loc entity.LocatorStrategy, n *Node) *Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nodes[loc] = append(d.nodes[loc], n)
	return n
}

// Replace swaps the node for a fresh copy of itself: handles taken so far
// go stale.
func (d *DOM) Replace(n *Node) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n.gen++
}

// FailFind makes every lookup of loc fail with err.
func (d *DOM) FailFind(loc entity.LocatorStrategy, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.findErr[loc] = err
}

func (d *DOM) Finds(loc entity.LocatorStrategy) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.finds[loc]
}

func (d *DOM) SetURL(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.url = url
}

// SetURLAfter changes the URL once delay has passed.
func (d *DOM) SetURLAfter(delay time.Duration, url string) {
	time.AfterFunc(delay, func() { d.SetURL(url) })
}

func (d *DOM) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = title
}

// OnScript answers ExecuteScript. Without one every script returns true.
func (d *DOM) OnScript(fn func(fn string) (any, error)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.script = fn
}

func (d *DOM) Elapsed() time.Duration {
	return time.Since(d.start)
}

func (d *DOM) FindElements(ctx context.Context, loc entity.LocatorStrategy) ([]output.ElementPort, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.finds[loc]++
	if err := d.findErr[loc]; err != nil {
		return nil, err
	}

	var out []output.ElementPort
	for _, n := range d.nodes[loc] {
		if d.attached(n) {
			out = append(out, &Element{dom: d, node: n, gen: n.gen})
		}
	}
	return out, nil
}

func (d *DOM) ExecuteScript(ctx context.Context, fn string, args ...any) (gson.JSON, error) {
	if err := ctx.Err(); err != nil {
		return gson.New(nil), err
	}
	d.mu.Lock()
	script := d.script
	d.mu.Unlock()

	if script == nil {
		return gson.New(true), nil
	}
	v, err := script(fn)
	return gson.New(v), err
}

func (d *DOM) CurrentURL(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.url, ctx.Err()
}

func (d *DOM) Title(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title, ctx.Err()
}

// attached must be called with d.mu held.
func (d *DOM) attached(n *Node) bool {
	elapsed := time.Since(d.start)
	if elapsed < n.AppearAt {
		return false
	}
	return n.DetachAt == 0 || elapsed < n.DetachAt
}

var _ output.ElementPort = (*Element)(nil)

// Element is a handle to a Node taken at one generation.
type Element struct {
	dom  *DOM
	node *Node
	gen  int
}

// live checks the handle and, for actions, consumes a scheduled stale
// failure. Called with dom.mu held.
func (e *Element) live(ctx context.Context, action bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.gen != e.node.gen || !e.dom.attached(e.node) {
		return fmt.Errorf("%w: node detached", entity.ErrStale)
	}
	if action && e.node.StaleActions > 0 {
		e.node.StaleActions--
		e.node.gen++
		return fmt.Errorf("%w: node replaced", entity.ErrStale)
	}
	return nil
}

func (e *Element) Visible(ctx context.Context) (bool, error) {
	e.dom.mu.Lock()
	defer e.dom.mu.Unlock()
	if err := e.live(ctx, false); err != nil {
		return false, err
	}
	return !e.node.Hidden, nil
}

func (e *Element) Enabled(ctx context.Context) (bool, error) {
	e.dom.mu.Lock()
	defer e.dom.mu.Unlock()
	if err := e.live(ctx, false); err != nil {
		return false, err
	}
	return !e.node.Disabled, nil
}

func (e *Element) Click(ctx context.Context) error {
	e.dom.mu.Lock()
	defer e.dom.mu.Unlock()
	if err := e.live(ctx, true); err != nil {
		return err
	}
	if e.node.RejectNative {
		return fmt.Errorf("%w: another element would receive the click", entity.ErrNotInteractable)
	}
	e.node.NativeClicks++
	return nil
}

func (e *Element) Clear(ctx context.Context) error {
	e.dom.mu.Lock()
	defer e.dom.mu.Unlock()
	if err := e.live(ctx, true); err != nil {
		return err
	}
	e.node.Value = ""
	e.node.Clears++
	return nil
}

func (e *Element) Input(ctx context.Context, text string) error {
	e.dom.mu.Lock()
	defer e.dom.mu.Unlock()
	if err := e.live(ctx, true); err != nil {
		return err
	}
	e.node.Value += text
	e.node.Keystrokes += len([]rune(text))
	return nil
}

func (e *Element) SelectByText(ctx context.Context, text string) error {
	return e.selectOption(ctx, func(o Option) bool { return o.Text == text }, text)
}

func (e *Element) SelectByValue(ctx context.Context, value string) error {
	return e.selectOption(ctx, func(o Option) bool { return o.Value == value }, value)
}

func (e *Element) selectOption(ctx context.Context, match func(Option) bool, what string) error {
	e.dom.mu.Lock()
	defer e.dom.mu.Unlock()
	if err := e.live(ctx, true); err != nil {
		return err
	}
	for _, o := range e.node.Options {
		if match(o) {
			e.node.Value = o.Value
			return nil
		}
	}
	return fmt.Errorf("%w: no option %q", entity.ErrNotInteractable, what)
}

func (e *Element) Text(ctx context.Context) (string, error) {
	e.dom.mu.Lock()
	defer e.dom.mu.Unlock()
	if err := e.live(ctx, false); err != nil {
		return "", err
	}
	return e.node.Text, nil
}

// Eval understands the two scripts the core injects: an innerText read
// and a click.
func (e *Element) Eval(ctx context.Context, fn string, args ...any) (gson.JSON, error) {
	e.dom.mu.Lock()
	defer e.dom.mu.Unlock()

	switch {
	case strings.Contains(fn, "innerText"):
		if err := e.live(ctx, false); err != nil {
			return gson.New(nil), err
		}
		return gson.New(e.node.Text), nil
	case strings.Contains(fn, "click()"):
		if err := e.live(ctx, true); err != nil {
			return gson.New(nil), err
		}
		if e.node.RejectScript {
			return gson.New(nil), errScriptClick
		}
		e.node.ScriptClicks++
		return gson.New(nil), nil
	}
	if err := e.live(ctx, false); err != nil {
		return gson.New(nil), err
	}
	return gson.New(nil), nil
}

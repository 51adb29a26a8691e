package output

import (
	"context"

	"webui-e2e/internal/domain/entity"

	"github.com/ysmood/gson"
)

// SessionPort is the live browser session the core drives. The core never
// creates or closes it.
type SessionPort interface {
	// FindElements returns the elements currently matching loc, without
	// waiting. No match is an empty slice, not an error.
	FindElements(ctx context.Context, loc entity.LocatorStrategy) ([]ElementPort, error)
	// ExecuteScript evaluates a JS function expression in the page.
	ExecuteScript(ctx context.Context, fn string, args ...any) (gson.JSON, error)
	CurrentURL(ctx context.Context) (string, error)
	Title(ctx context.Context) (string, error)
}

// ElementPort is a live handle to a DOM node. Any method may fail with an
// error matching entity.ErrStale once the node is detached.
type ElementPort interface {
	Visible(ctx context.Context) (bool, error)
	Enabled(ctx context.Context) (bool, error)

	Click(ctx context.Context) error
	Clear(ctx context.Context) error
	Input(ctx context.Context, text string) error
	SelectByText(ctx context.Context, text string) error
	SelectByValue(ctx context.Context, value string) error
	Text(ctx context.Context) (string, error)

	// Eval runs fn with `this` bound to the element.
	Eval(ctx context.Context, fn string, args ...any) (gson.JSON, error)
}

// ResolvedElement is valid only until the page mutates.
type ResolvedElement struct {
	Element  ElementPort
	Strategy entity.LocatorStrategy
}

type NavigatorPort interface {
	Navigate(ctx context.Context, url string) error
}

type DocumentPort interface {
	HTML(ctx context.Context) (string, error)
}

type ScreenshotPort interface {
	Screenshot(ctx context.Context) (*entity.Screenshot, error)
}

// BrowserPort is everything one rod-backed session offers.
type BrowserPort interface {
	SessionPort
	NavigatorPort
	DocumentPort
	ScreenshotPort
	Close()
}

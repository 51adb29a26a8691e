// Package page holds the page objects: declarative locator tables plus the
// user-level actions they support. Every wait goes through the Interactor,
// never through a sleep.
package page

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"webui-e2e/internal/application/port/input"
	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
)

const pageReadyScript = `() => document.readyState === "complete"`

// Browser is what page objects need beyond the Interactor.
type Browser interface {
	output.NavigatorPort
	output.DocumentPort
}

type Timeouts struct {
	// Page bounds navigation settling and redirects.
	Page time.Duration
	// Candidate bounds each locator candidate.
	Candidate time.Duration
	// Toast bounds the wait for a transient notification.
	Toast time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Page:      20 * time.Second,
		Candidate: 5 * time.Second,
		Toast:     5 * time.Second,
	}
}

func (t Timeouts) withDefaults() Timeouts {
	d := DefaultTimeouts()
	if t.Page <= 0 {
		t.Page = d.Page
	}
	if t.Candidate <= 0 {
		t.Candidate = d.Candidate
	}
	if t.Toast <= 0 {
		t.Toast = d.Toast
	}
	return t
}

// base carries what every page object shares.
type base struct {
	ui       input.Interactor
	browser  Browser
	baseURL  string
	timeouts Timeouts
	logger   output.LoggerPort
}

func newBase(ui input.Interactor, browser Browser, baseURL string, timeouts Timeouts, logger output.LoggerPort) base {
	if logger == nil {
		logger = output.NopLogger()
	}
	return base{
		ui:       ui,
		browser:  browser,
		baseURL:  strings.TrimRight(baseURL, "/"),
		timeouts: timeouts.withDefaults(),
		logger:   logger,
	}
}

func (b base) open(ctx context.Context, path string) error {
	url := b.baseURL + path
	if err := b.browser.Navigate(ctx, url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	if err := b.ui.WaitScript(ctx, entity.ScriptTruthy(pageReadyScript, b.timeouts.Page)); err != nil {
		return fmt.Errorf("wait for %s to load: %w", url, err)
	}
	b.logger.Info("page opened", "url", url)
	return nil
}

func (b base) target(t entity.Target) entity.Target {
	if t.PerCandidate > 0 {
		return t
	}
	return t.WithTimeout(b.timeouts.Candidate)
}

func (b base) displayed(ctx context.Context, t entity.Target) bool {
	return b.ui.IsDisplayed(ctx, t, b.timeouts.Candidate)
}

// readAny returns the first non-empty transient text among candidates.
func (b base) readAny(ctx context.Context, candidates entity.LocatorCandidateList, timeout time.Duration) string {
	for _, c := range candidates {
		if text := b.ui.ReadTransient(ctx, c, timeout); text != "" {
			return text
		}
		if ctx.Err() != nil {
			return ""
		}
	}
	return ""
}

// waitURLContains is a bool-returning URL wait: a timeout reads as false.
func (b base) waitURLContains(ctx context.Context, fragment string) (bool, error) {
	_, err := b.ui.WaitURL(ctx, entity.URLContains(fragment, b.timeouts.Page))
	if errors.Is(err, entity.ErrTimeout) {
		return false, nil
	}
	return err == nil, err
}

func (b base) CurrentURL(ctx context.Context) (string, error) {
	return b.ui.CurrentURL(ctx)
}

func (b base) Title(ctx context.Context) (string, error) {
	return b.ui.Title(ctx)
}

// Package message reads transient notifications (toasts, banners) that may
// vanish at any moment. Reads are best effort and never fail.
package message

import (
	"context"
	"strings"
	"time"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
	"webui-e2e/internal/usecase/locator"
	"webui-e2e/internal/usecase/wait"
)

const (
	DefaultReadTimeout = 2 * time.Second

	innerText = `() => this.innerText`
)

type Extractor struct {
	session     output.SessionPort
	engine      *wait.Engine
	resolver    *locator.Resolver
	logger      output.LoggerPort
	readTimeout time.Duration
}

func NewExtractor(session output.SessionPort, engine *wait.Engine, resolver *locator.Resolver, logger output.LoggerPort) *Extractor {
	if logger == nil {
		logger = output.NopLogger()
	}
	return &Extractor{
		session:     session,
		engine:      engine,
		resolver:    resolver,
		logger:      logger,
		readTimeout: DefaultReadTimeout,
	}
}

// ReadTransient waits up to timeout for loc to become visible and returns
// its trimmed text. A notification that never shows, one that detaches
// between the visibility check and the read, and one that is genuinely
// empty all read as "".
func (x *Extractor) ReadTransient(ctx context.Context, loc entity.LocatorStrategy, timeout time.Duration) string {
	log := x.logger.WithField("locator", loc.String())

	el, err := x.engine.Element(ctx, x.session, loc, entity.VisibleWithin(timeout))
	if err != nil {
		log.Debug("notification not visible", "timeout", timeout, "error", err)
		return ""
	}

	readCtx, cancel := context.WithTimeout(ctx, x.readTimeout)
	defer cancel()

	// innerText through the element's own context: the node may detach at
	// any moment and a failed read is an expected outcome.
	v, err := el.Eval(readCtx, innerText)
	if err != nil {
		log.Debug("notification vanished before read", "error", err)
		return ""
	}
	text := strings.TrimSpace(v.Str())
	log.Debug("notification read", "text", text)
	return text
}

// IsDisplayed reports whether any candidate of target becomes visible
// within timeout. Like ReadTransient it never fails.
func (x *Extractor) IsDisplayed(ctx context.Context, target entity.Target, timeout time.Duration) bool {
	_, err := x.resolver.ResolveTarget(ctx, target.WithTimeout(timeout), entity.ConditionVisible)
	if err != nil {
		x.logger.Debug("element not displayed", "target", target.String(), "error", err)
		return false
	}
	return true
}

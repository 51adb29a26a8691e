// Package locator resolves a logical target to a live element by probing
// its candidate locators in order.
package locator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
	"webui-e2e/internal/usecase/wait"
)

const DefaultPerCandidateTimeout = 5 * time.Second

type Resolver struct {
	session      output.SessionPort
	engine       *wait.Engine
	logger       output.LoggerPort
	perCandidate time.Duration
}

type Option func(*Resolver)

func WithPerCandidateTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.perCandidate = d
		}
	}
}

func WithLogger(l output.LoggerPort) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewResolver(session output.SessionPort, engine *wait.Engine, opts ...Option) *Resolver {
	r := &Resolver{
		session:      session,
		engine:       engine,
		logger:       output.NopLogger(),
		perCandidate: DefaultPerCandidateTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PerCandidateTimeout is the slice used when a target carries none.
func (r *Resolver) PerCandidateTimeout() time.Duration {
	return r.perCandidate
}

// Resolve returns the element of the first candidate that satisfies cond
// within perCandidate. Later candidates are not probed once one matches.
// Timeouts of individual candidates are swallowed; exhausting the list
// yields *entity.NotFoundError. Any other error stops the scan.
func (r *Resolver) Resolve(ctx context.Context, candidates entity.LocatorCandidateList, cond entity.ConditionKind, perCandidate time.Duration) (*output.ResolvedElement, error) {
	return r.resolve(ctx, "target", candidates, cond, perCandidate)
}

// ResolveTarget is Resolve for a named target, falling back to the
// resolver's per-candidate timeout.
func (r *Resolver) ResolveTarget(ctx context.Context, target entity.Target, cond entity.ConditionKind) (*output.ResolvedElement, error) {
	perCandidate := target.PerCandidate
	if perCandidate <= 0 {
		perCandidate = r.perCandidate
	}
	return r.resolve(ctx, target.String(), target.Candidates, cond, perCandidate)
}

func (r *Resolver) resolve(ctx context.Context, name string, candidates entity.LocatorCandidateList, cond entity.ConditionKind, perCandidate time.Duration) (*output.ResolvedElement, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s has no locator candidates", entity.ErrInvalidConfiguration, name)
	}
	if !cond.IsElement() {
		return nil, fmt.Errorf("%w: cannot resolve %s as %q", entity.ErrInvalidConfiguration, name, cond)
	}
	if perCandidate <= 0 {
		return nil, fmt.Errorf("%w: %s needs a positive per-candidate timeout", entity.ErrInvalidConfiguration, name)
	}
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	log := r.logger.WithField("target", name)
	spec := entity.WaitSpec{Kind: cond, Timeout: perCandidate}

	for i, candidate := range candidates {
		el, err := r.engine.Element(ctx, r.session, candidate, spec)
		if err == nil {
			if i > 0 {
				log.Info("resolved with fallback locator", "strategy", candidate.String(), "index", i)
			} else {
				log.Debug("resolved", "strategy", candidate.String())
			}
			return &output.ResolvedElement{Element: el, Strategy: candidate}, nil
		}
		if !errors.Is(err, entity.ErrTimeout) {
			return nil, fmt.Errorf("resolve %s with %s: %w", name, candidate, err)
		}
		log.Debug("candidate not satisfied, trying next", "strategy", candidate.String(), "condition", cond.String())
	}

	return nil, &entity.NotFoundError{
		Target:    name,
		Condition: cond,
		Attempted: append([]entity.LocatorStrategy(nil), candidates...),
	}
}

// Package interaction performs semantic actions (type, click, select) on
// resolved targets, escalating from the native path to an injected script
// where the action allows it.
package interaction

import (
	"context"
	"errors"
	"fmt"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
	"webui-e2e/internal/usecase/locator"
)

const scriptClick = `() => { this.scrollIntoView({block: "center", inline: "center"}); this.click(); }`

type Executor struct {
	resolver *locator.Resolver
	logger   output.LoggerPort
}

func NewExecutor(resolver *locator.Resolver, logger output.LoggerPort) *Executor {
	if logger == nil {
		logger = output.NopLogger()
	}
	return &Executor{resolver: resolver, logger: logger}
}

// step is one way of performing an action. A pipeline runs its steps in
// order, each at most once.
type step struct {
	path entity.ActionPath
	act  func(ctx context.Context, el output.ElementPort) error
}

// Type clears the target and types text into it. Nothing is typed when
// the target cannot be resolved.
func (x *Executor) Type(ctx context.Context, target entity.Target, text string) (entity.InteractionOutcome, error) {
	return x.run(ctx, entity.ActionType, target, entity.ConditionVisible, step{
		path: entity.PathNative,
		act: func(ctx context.Context, el output.ElementPort) error {
			if err := el.Clear(ctx); err != nil {
				return fmt.Errorf("clear: %w", err)
			}
			return el.Input(ctx, text)
		},
	})
}

func (x *Executor) Click(ctx context.Context, target entity.Target) (entity.InteractionOutcome, error) {
	return x.run(ctx, entity.ActionClick, target, entity.ConditionClickable, nativeClick())
}

// ClickWithEscalation clicks natively and, if the UI rejects that, clicks
// once more through an injected script on the same handle.
func (x *Executor) ClickWithEscalation(ctx context.Context, target entity.Target) (entity.InteractionOutcome, error) {
	return x.run(ctx, entity.ActionClick, target, entity.ConditionClickable, nativeClick(), step{
		path: entity.PathScript,
		act: func(ctx context.Context, el output.ElementPort) error {
			_, err := el.Eval(ctx, scriptClick)
			return err
		},
	})
}

func (x *Executor) SelectByText(ctx context.Context, target entity.Target, text string) (entity.InteractionOutcome, error) {
	if text == "" {
		err := fmt.Errorf("%w: select %s by empty text", entity.ErrInvalidConfiguration, target)
		return entity.Failed(entity.PathNone, entity.LocatorStrategy{}, err), err
	}
	return x.run(ctx, entity.ActionSelect, target, entity.ConditionClickable, step{
		path: entity.PathNative,
		act: func(ctx context.Context, el output.ElementPort) error {
			return el.SelectByText(ctx, text)
		},
	})
}

func (x *Executor) SelectByValue(ctx context.Context, target entity.Target, value string) (entity.InteractionOutcome, error) {
	if value == "" {
		err := fmt.Errorf("%w: select %s by empty value", entity.ErrInvalidConfiguration, target)
		return entity.Failed(entity.PathNone, entity.LocatorStrategy{}, err), err
	}
	return x.run(ctx, entity.ActionSelect, target, entity.ConditionClickable, step{
		path: entity.PathNative,
		act: func(ctx context.Context, el output.ElementPort) error {
			return el.SelectByValue(ctx, value)
		},
	})
}

func nativeClick() step {
	return step{
		path: entity.PathNative,
		act: func(ctx context.Context, el output.ElementPort) error {
			return el.Click(ctx)
		},
	}
}

// run drives Resolving -> Acting(native) -> [Acting(script)] -> Done|Failed.
// A stale handle triggers one re-resolution per call; a second stale
// handle fails the call.
func (x *Executor) run(ctx context.Context, action entity.ActionKind, target entity.Target, cond entity.ConditionKind, steps ...step) (entity.InteractionOutcome, error) {
	name := target.String()
	log := x.logger.WithFields(map[string]any{"action": string(action), "target": name})

	fail := func(path entity.ActionPath, strategy entity.LocatorStrategy, err error) (entity.InteractionOutcome, error) {
		ierr := &entity.InteractionError{Action: action, Target: name, Path: path, Err: err}
		log.Debug("interaction failed", "path", string(path), "error", err)
		return entity.Failed(path, strategy, ierr), ierr
	}

	resolved, err := x.resolver.ResolveTarget(ctx, target, cond)
	if err != nil {
		return fail(entity.PathNone, entity.LocatorStrategy{}, err)
	}

	staleRetried := false
	attempt := func(s step) error {
		err := s.act(ctx, resolved.Element)
		if err == nil || !errors.Is(err, entity.ErrStale) || staleRetried {
			return err
		}
		staleRetried = true
		log.Debug("element went stale, re-resolving once", "strategy", resolved.Strategy.String())
		fresh, rerr := x.resolver.ResolveTarget(ctx, target, cond)
		if rerr != nil {
			return fmt.Errorf("%w; re-resolve: %w", err, rerr)
		}
		resolved = fresh
		return s.act(ctx, resolved.Element)
	}

	for i, s := range steps {
		err := attempt(s)
		if err == nil {
			if s.path == entity.PathScript {
				log.Info("action completed via script path", "strategy", resolved.Strategy.String())
			}
			return entity.Done(s.path, resolved.Strategy), nil
		}
		if i == len(steps)-1 || !escalatable(ctx, err) {
			return fail(s.path, resolved.Strategy, err)
		}
		log.Info("native action rejected, escalating", "from", string(s.path), "to", string(steps[i+1].path), "error", err)
	}
	// unreachable with a non-empty pipeline
	return fail(entity.PathNone, resolved.Strategy, entity.ErrInteractionFailed)
}

// escalatable reports whether a failed path may hand over to the next one.
// Cancellation and stale handles are not UI rejections.
func escalatable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !errors.Is(err, entity.ErrStale)
}

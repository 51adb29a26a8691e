package service

import (
	"context"
	"time"

	"webui-e2e/internal/application/port/input"
	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
	"webui-e2e/internal/usecase/interaction"
	"webui-e2e/internal/usecase/locator"
	"webui-e2e/internal/usecase/message"
	"webui-e2e/internal/usecase/wait"
)

var _ input.Interactor = (*Interactor)(nil)

type InteractorConfig struct {
	PollInterval        time.Duration
	PerCandidateTimeout time.Duration
}

// Interactor binds the wait engine, resolver, executor and extractor to a
// single browser session. Build one per session; it keeps no state
// between calls.
type Interactor struct {
	session   output.SessionPort
	engine    *wait.Engine
	resolver  *locator.Resolver
	executor  *interaction.Executor
	extractor *message.Extractor
}

func NewInteractor(session output.SessionPort, logger output.LoggerPort, cfg InteractorConfig) *Interactor {
	if logger == nil {
		logger = output.NopLogger()
	}
	engine := wait.New(wait.WithPollInterval(cfg.PollInterval), wait.WithLogger(logger.WithField("component", "wait")))
	resolver := locator.NewResolver(session, engine,
		locator.WithPerCandidateTimeout(cfg.PerCandidateTimeout),
		locator.WithLogger(logger.WithField("component", "locator")),
	)
	return &Interactor{
		session:   session,
		engine:    engine,
		resolver:  resolver,
		executor:  interaction.NewExecutor(resolver, logger.WithField("component", "interaction")),
		extractor: message.NewExtractor(session, engine, resolver, logger.WithField("component", "message")),
	}
}

func (i *Interactor) Resolve(ctx context.Context, target entity.Target, cond entity.ConditionKind) (*output.ResolvedElement, error) {
	return i.resolver.ResolveTarget(ctx, target, cond)
}

func (i *Interactor) Type(ctx context.Context, target entity.Target, text string) (entity.InteractionOutcome, error) {
	return i.executor.Type(ctx, target, text)
}

func (i *Interactor) Click(ctx context.Context, target entity.Target) (entity.InteractionOutcome, error) {
	return i.executor.Click(ctx, target)
}

func (i *Interactor) ClickWithEscalation(ctx context.Context, target entity.Target) (entity.InteractionOutcome, error) {
	return i.executor.ClickWithEscalation(ctx, target)
}

func (i *Interactor) SelectByText(ctx context.Context, target entity.Target, text string) (entity.InteractionOutcome, error) {
	return i.executor.SelectByText(ctx, target, text)
}

func (i *Interactor) SelectByValue(ctx context.Context, target entity.Target, value string) (entity.InteractionOutcome, error) {
	return i.executor.SelectByValue(ctx, target, value)
}

func (i *Interactor) ReadTransient(ctx context.Context, loc entity.LocatorStrategy, timeout time.Duration) string {
	return i.extractor.ReadTransient(ctx, loc, timeout)
}

func (i *Interactor) IsDisplayed(ctx context.Context, target entity.Target, timeout time.Duration) bool {
	return i.extractor.IsDisplayed(ctx, target, timeout)
}

func (i *Interactor) WaitURL(ctx context.Context, spec entity.WaitSpec) (string, error) {
	return i.engine.URL(ctx, i.session, spec)
}

func (i *Interactor) WaitScript(ctx context.Context, spec entity.WaitSpec) error {
	return i.engine.Script(ctx, i.session, spec)
}

func (i *Interactor) CurrentURL(ctx context.Context) (string, error) {
	return i.session.CurrentURL(ctx)
}

func (i *Interactor) Title(ctx context.Context) (string, error) {
	return i.session.Title(ctx)
}

package input

import (
	"context"
	"time"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
)

// Interactor is the resilient interaction layer bound to one browser
// session, as page objects see it.
type Interactor interface {
	Resolve(ctx context.Context, target entity.Target, cond entity.ConditionKind) (*output.ResolvedElement, error)

	Type(ctx context.Context, target entity.Target, text string) (entity.InteractionOutcome, error)
	Click(ctx context.Context, target entity.Target) (entity.InteractionOutcome, error)
	ClickWithEscalation(ctx context.Context, target entity.Target) (entity.InteractionOutcome, error)
	SelectByText(ctx context.Context, target entity.Target, text string) (entity.InteractionOutcome, error)
	SelectByValue(ctx context.Context, target entity.Target, value string) (entity.InteractionOutcome, error)

	// ReadTransient and IsDisplayed never fail; absence reads as "" / false.
	ReadTransient(ctx context.Context, loc entity.LocatorStrategy, timeout time.Duration) string
	IsDisplayed(ctx context.Context, target entity.Target, timeout time.Duration) bool

	WaitURL(ctx context.Context, spec entity.WaitSpec) (string, error)
	WaitScript(ctx context.Context, spec entity.WaitSpec) error

	CurrentURL(ctx context.Context) (string, error)
	Title(ctx context.Context) (string, error)
}

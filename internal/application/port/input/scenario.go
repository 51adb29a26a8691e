package input

import (
	"context"

	"webui-e2e/internal/domain/entity"
)

// Scenario turns one data row into a result. It reports failures through
// the result, not the error; the error is reserved for setup problems.
type Scenario interface {
	Name() string
	Description() string
	Run(ctx context.Context, tc entity.TestCase) (entity.CaseResult, error)
}

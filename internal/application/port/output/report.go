package output

import (
	"context"

	"webui-e2e/internal/domain/entity"
)

// ResultSink receives finished case results. Persistence and formatting
// belong to the implementation.
type ResultSink interface {
	Record(ctx context.Context, result entity.CaseResult) error
}

// ArtifactStore keeps captured evidence and returns where it went.
type ArtifactStore interface {
	SaveScreenshot(name string, shot *entity.Screenshot) (string, error)
}

// TestCaseProvider supplies data-driven rows for a scenario.
type TestCaseProvider interface {
	Cases(scenario string) ([]entity.TestCase, error)
}

// ProgressPort shows a run's progress to whoever launched it.
type ProgressPort interface {
	ShowScenario(ctx context.Context, name string, cases int)
	ShowCaseStart(ctx context.Context, index, total int, tc entity.TestCase)
	ShowCaseResult(ctx context.Context, result entity.CaseResult)
	ShowSummary(ctx context.Context, passed, failed int)
}

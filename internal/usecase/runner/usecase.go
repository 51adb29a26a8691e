package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webui-e2e/internal/application/port/input"
	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
)

var ErrUnknownScenario = errors.New("unknown scenario")

// Registry looks scenarios up by name.
type Registry interface {
	Get(name string) (input.Scenario, bool)
}

type Summary struct {
	Scenario string
	Passed   int
	Failed   int
	Duration time.Duration
	Results  []entity.CaseResult
}

func (s Summary) OK() bool {
	return s.Failed == 0
}

// UseCase runs every row of a scenario in order, recording each result.
type UseCase struct {
	scenarios Registry
	cases     output.TestCaseProvider
	sink      output.ResultSink
	progress  output.ProgressPort
	logger    output.LoggerPort
}

func New(
	scenarios Registry,
	cases output.TestCaseProvider,
	sink output.ResultSink,
	progress output.ProgressPort,
	logger output.LoggerPort,
) *UseCase {
	if logger == nil {
		logger = output.NopLogger()
	}
	return &UseCase{
		scenarios: scenarios,
		cases:     cases,
		sink:      sink,
		progress:  progress,
		logger:    logger,
	}
}

// Execute stops early only when ctx ends or a scenario reports a setup
// error; a failing case is recorded and the run continues.
func (uc *UseCase) Execute(ctx context.Context, name string) (*Summary, error) {
	scenario, ok := uc.scenarios.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, name)
	}

	rows, err := uc.cases.Cases(name)
	if err != nil {
		return nil, fmt.Errorf("load cases for %s: %w", name, err)
	}

	uc.logger.Info("Scenario started", "scenario", name, "cases", len(rows))
	if uc.progress != nil {
		uc.progress.ShowScenario(ctx, name, len(rows))
	}

	started := time.Now()
	summary := &Summary{Scenario: name}
	for i, tc := range rows {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if uc.progress != nil {
			uc.progress.ShowCaseStart(ctx, i+1, len(rows), tc)
		}

		result, err := scenario.Run(ctx, tc)
		if err != nil {
			return summary, fmt.Errorf("case %q: %w", tc.Title, err)
		}

		summary.Results = append(summary.Results, result)
		if result.Passed() {
			summary.Passed++
		} else {
			summary.Failed++
		}

		if uc.progress != nil {
			uc.progress.ShowCaseResult(ctx, result)
		}
		if uc.sink != nil {
			if err := uc.sink.Record(ctx, result); err != nil {
				uc.logger.Warn("Result not recorded", "case", tc.Title, "error", err)
			}
		}
	}
	summary.Duration = time.Since(started)

	uc.logger.Info("Scenario finished", "scenario", name, "passed", summary.Passed, "failed", summary.Failed, "duration", summary.Duration)
	if uc.progress != nil {
		uc.progress.ShowSummary(ctx, summary.Passed, summary.Failed)
	}
	return summary, nil
}

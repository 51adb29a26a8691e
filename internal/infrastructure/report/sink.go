package report

import (
	"context"
	"sync"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
)

var (
	_ output.ResultSink = (*LogSink)(nil)
	_ output.ResultSink = (*MemorySink)(nil)
)

// LogSink writes one structured line per case and one per diagnostic.
type LogSink struct {
	logger output.LoggerPort
}

func NewLogSink(logger output.LoggerPort) *LogSink {
	if logger == nil {
		logger = output.NopLogger()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(_ context.Context, result entity.CaseResult) error {
	log := s.logger.WithFields(map[string]any{
		"scenario": result.Scenario,
		"case":     result.Title,
	})

	if result.Passed() {
		log.Info("case passed", "duration", result.Duration, "message", result.ActualMessage)
		return nil
	}

	log.Error("case failed", "duration", result.Duration, "message", result.ActualMessage, "reason", result.Reason)
	for _, d := range result.Diagnostics {
		log.Warn("diagnostic",
			"step", d.Step,
			"url", d.URL,
			"title", d.Title,
			"error", d.Error,
			"attempted", d.Attempted,
			"controls", d.Controls,
			"screenshot", d.ScreenshotPath,
		)
	}
	return nil
}

type MemorySink struct {
	mu      sync.Mutex
	results []entity.CaseResult
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Record(_ context.Context, result entity.CaseResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
	return nil
}

func (s *MemorySink) Results() []entity.CaseResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.CaseResult(nil), s.results...)
}

type Summary struct {
	Total  int
	Passed int
	Failed int
}

func (s *MemorySink) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := Summary{Total: len(s.results)}
	for _, r := range s.results {
		if r.Passed() {
			sum.Passed++
		} else {
			sum.Failed++
		}
	}
	return sum
}

// Multi fans a result out to every sink and returns the first error.
type Multi []output.ResultSink

func (m Multi) Record(ctx context.Context, result entity.CaseResult) error {
	var first error
	for _, s := range m {
		if err := s.Record(ctx, result); err != nil && first == nil {
			first = err
		}
	}
	return first
}

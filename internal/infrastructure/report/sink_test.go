package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"webui-e2e/internal/domain/entity"
	"webui-e2e/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type failingSink struct{}

func (failingSink) Record(context.Context, entity.CaseResult) error { return errors.New("disk full") }

func TestMemorySink_Summary(t *testing.T) {
	sink := NewMemorySink()
	ctx := context.Background()

	require.NoError(t, sink.Record(ctx, entity.CaseResult{Title: "a", Status: entity.StatusPass}))
	require.NoError(t, sink.Record(ctx, entity.CaseResult{Title: "b", Status: entity.StatusFailed}))
	require.NoError(t, sink.Record(ctx, entity.CaseResult{Title: "c", Status: entity.StatusPass}))

	assert.Equal(t, Summary{Total: 3, Passed: 2, Failed: 1}, sink.Summary())
	assert.Len(t, sink.Results(), 3)
}

func TestLogSink_WritesDiagnostics(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := logger.NewLoggerAdapter(logger.Config{Level: "debug", Format: "json", Console: zapcore.AddSync(buf)})
	require.NoError(t, err)

	sink := NewLogSink(l)
	err = sink.Record(context.Background(), entity.CaseResult{
		Scenario: "login",
		Title:    "wrong password",
		Status:   entity.StatusFailed,
		Reason:   "message mismatch",
		Diagnostics: []entity.Diagnostic{{
			Step:      "read toast",
			Attempted: []string{"xpath=//div[@class='ant-message']"},
		}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"case failed"`)
	assert.Contains(t, out, `"reason":"message mismatch"`)
	assert.Contains(t, out, `"step":"read toast"`)
}

func TestMulti_RecordsEverywhere(t *testing.T) {
	mem := NewMemorySink()
	multi := Multi{failingSink{}, mem}

	err := multi.Record(context.Background(), entity.CaseResult{Title: "x", Status: entity.StatusPass})

	assert.EqualError(t, err, "disk full")
	assert.Len(t, mem.Results(), 1)
}

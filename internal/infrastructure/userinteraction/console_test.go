package userinteraction

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"webui-e2e/internal/domain/entity"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestConsoleProgress_CaseLifecycle(t *testing.T) {
	buf := &bytes.Buffer{}
	u := NewConsoleProgress(buf)
	ctx := context.Background()

	u.ShowScenario(ctx, "login", 2)
	u.ShowCaseStart(ctx, 1, 2, entity.TestCase{Title: "wrong password", Username: "demo", ExpectedMessage: "không chính xác"})
	u.ShowCaseResult(ctx, entity.CaseResult{
		Title:         "wrong password",
		Status:        entity.StatusFailed,
		Reason:        "expected failure message",
		ActualMessage: "Đăng nhập thành công",
		Diagnostics: []entity.Diagnostic{{
			ScreenshotPath: "shots/x.png",
			Attempted:      []string{"css=#a", "css=#b"},
			Controls:       []string{`button id=go "Go"`},
		}},
	})
	u.ShowCaseResult(ctx, entity.CaseResult{Status: entity.StatusPass, Duration: 1500 * time.Millisecond})
	u.ShowSummary(ctx, 1, 1)

	out := buf.String()
	assert.Contains(t, out, "login (2 cases)")
	assert.Contains(t, out, "[1/2] wrong password")
	assert.Contains(t, out, "user: demo | expect: không chính xác")
	assert.Contains(t, out, "✗ Failed: expected failure message")
	assert.Contains(t, out, "screenshot: shots/x.png")
	assert.Contains(t, out, "attempted: css=#a, css=#b")
	assert.Contains(t, out, `page offers: button id=go "Go"`)
	assert.Contains(t, out, "✓ Pass (1.5s)")
	assert.Contains(t, out, "1 passed, 1 failed")
}

func TestTruncate_RuneSafe(t *testing.T) {
	s := strings.Repeat("ă", 10)
	assert.Equal(t, strings.Repeat("ă", 4)+"...", truncate(s, 4))
	assert.Equal(t, "abc", truncate("abc", 10))
}

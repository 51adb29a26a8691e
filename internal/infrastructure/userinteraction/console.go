package userinteraction

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"

	"github.com/fatih/color"
)

var _ output.ProgressPort = (*ConsoleProgress)(nil)

type ConsoleProgress struct {
	out io.Writer
}

func NewConsoleProgress(out io.Writer) *ConsoleProgress {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleProgress{out: out}
}

func (u *ConsoleProgress) ShowScenario(ctx context.Context, name string, cases int) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(u.out, "\n━━━ %s (%d cases) ━━━\n", name, cases)
}

func (u *ConsoleProgress) ShowCaseStart(ctx context.Context, index, total int, tc entity.TestCase) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(u.out, "\n▶ [%d/%d] %s\n", index, total, tc.Title)

	summary := formatCase(tc)
	if summary != "" {
		dim := color.New(color.Faint)
		dim.Fprintf(u.out, "   %s\n", summary)
	}
}

func (u *ConsoleProgress) ShowCaseResult(ctx context.Context, result entity.CaseResult) {
	if !result.Passed() {
		red := color.New(color.FgRed)
		red.Fprint(u.out, "✗ Failed: ")

		dim := color.New(color.Faint)
		fmt.Fprintln(u.out, truncate(result.Reason, 300))
		if result.ActualMessage != "" {
			dim.Fprintf(u.out, "   message: %s\n", truncate(result.ActualMessage, 120))
		}
		for _, d := range result.Diagnostics {
			if d.ScreenshotPath != "" {
				dim.Fprintf(u.out, "   screenshot: %s\n", d.ScreenshotPath)
			}
			if len(d.Attempted) > 0 {
				dim.Fprintf(u.out, "   attempted: %s\n", strings.Join(d.Attempted, ", "))
				if len(d.Controls) > 0 {
					dim.Fprintf(u.out, "   page offers: %s\n", truncate(strings.Join(d.Controls, "; "), 200))
				}
			}
		}
		return
	}

	green := color.New(color.FgGreen)
	green.Fprintf(u.out, "✓ Pass %s\n", formatResult(result))
}

func (u *ConsoleProgress) ShowSummary(ctx context.Context, passed, failed int) {
	c := color.New(color.FgGreen, color.Bold)
	if failed > 0 {
		c = color.New(color.FgRed, color.Bold)
	}
	c.Fprintf(u.out, "\n%d passed, %d failed\n", passed, failed)
}

func formatCase(tc entity.TestCase) string {
	parts := make([]string, 0, 4)
	if tc.Step != "" {
		parts = append(parts, "step: "+truncate(tc.Step, 60))
	}
	if tc.Action != "" {
		parts = append(parts, "action: "+tc.Action)
	}
	if tc.Username != "" {
		parts = append(parts, "user: "+tc.Username)
	}
	if tc.ExpectedMessage != "" {
		parts = append(parts, "expect: "+truncate(tc.ExpectedMessage, 60))
	} else if tc.ExpectSuccess {
		parts = append(parts, "expect: success")
	}
	return strings.Join(parts, " | ")
}

func formatResult(result entity.CaseResult) string {
	s := fmt.Sprintf("(%s)", result.Duration.Round(1e6))
	if result.ActualMessage != "" {
		s += " " + truncate(result.ActualMessage, 100)
	}
	return s
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}

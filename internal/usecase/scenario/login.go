package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webui-e2e/internal/application/port/input"
	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"
)

const LoginName = "login"

var errStillOnAuthPage = errors.New("still on the auth page after submitting")

// LoginFlow is the login page as the scenario drives it.
type LoginFlow interface {
	Open(ctx context.Context) error
	Login(ctx context.Context, username, password string) error
	Message(ctx context.Context) string
	WaitLoggedIn(ctx context.Context) (bool, error)
	CurrentURL(ctx context.Context) (string, error)
}

var _ input.Scenario = (*Login)(nil)

// Login submits one credential row and checks the outcome against the
// row's expectation: success means the browser left the auth page,
// failure means the form reported the expected message.
type Login struct {
	flow     LoginFlow
	evidence *Evidence
	logger   output.LoggerPort
}

func NewLogin(flow LoginFlow, evidence *Evidence, logger output.LoggerPort) *Login {
	if logger == nil {
		logger = output.NopLogger()
	}
	return &Login{flow: flow, evidence: evidence, logger: logger.WithField("scenario", LoginName)}
}

func (s *Login) Name() string { return LoginName }

func (s *Login) Description() string {
	return "Submit credentials on the login form and compare the outcome with the expected message"
}

func (s *Login) Run(ctx context.Context, tc entity.TestCase) (entity.CaseResult, error) {
	c := newCase(ctx, s.Name(), tc, s.evidence)
	log := s.logger.WithField("case", tc.Title)

	if err := s.flow.Open(ctx); err != nil {
		return c.fail("open login page", err), nil
	}
	log.Debug("login form ready")

	if err := s.flow.Login(ctx, tc.Username, tc.Password); err != nil {
		return c.fail("submit credentials", err), nil
	}

	if tc.ExpectsSuccess() {
		ok, err := s.flow.WaitLoggedIn(ctx)
		if err != nil {
			return c.fail("wait for redirect", err), nil
		}
		if !ok {
			c.message = s.flow.Message(ctx)
			return c.fail("wait for redirect", errStillOnAuthPage), nil
		}
		url, _ := s.flow.CurrentURL(ctx)
		c.message = fmt.Sprintf("Logged in, landed on %s", url)
		return c.verdict(true), nil
	}

	c.message = s.flow.Message(ctx)
	log.Debug("form feedback", "message", c.message)
	return c.verdict(false), nil
}

// caseRun accumulates one case's result.
type caseRun struct {
	ctx      context.Context
	tc       entity.TestCase
	evidence *Evidence
	started  time.Time
	message  string
	result   entity.CaseResult
}

func newCase(ctx context.Context, scenario string, tc entity.TestCase, evidence *Evidence) *caseRun {
	return &caseRun{
		ctx:      ctx,
		tc:       tc,
		evidence: evidence,
		started:  time.Now(),
		result:   entity.CaseResult{Scenario: scenario, Title: tc.Title},
	}
}

// fail ends the case on an error and attaches evidence.
func (c *caseRun) fail(step string, err error) entity.CaseResult {
	c.result.Status = entity.StatusFailed
	c.result.Reason = fmt.Sprintf("%s: %v", step, err)
	c.capture(step, err)
	return c.finish()
}

// verdict ends the case by comparing the observed outcome with the row.
func (c *caseRun) verdict(succeeded bool) entity.CaseResult {
	c.result.Status = c.tc.Verdict(succeeded, c.message)
	if !c.result.Passed() {
		c.result.Reason = mismatch(c.tc, succeeded, c.message)
		c.capture("verify outcome", nil)
	}
	return c.finish()
}

func (c *caseRun) capture(step string, err error) {
	if c.evidence == nil {
		return
	}
	c.result.Diagnostics = append(c.result.Diagnostics, c.evidence.Capture(c.ctx, c.result.Scenario+"_"+c.tc.Title, step, err))
}

func (c *caseRun) finish() entity.CaseResult {
	c.result.ActualMessage = c.message
	c.result.Duration = time.Since(c.started)
	return c.result
}

func mismatch(tc entity.TestCase, succeeded bool, actual string) string {
	outcome := "failed"
	if succeeded {
		outcome = "succeeded"
	}
	if tc.ExpectedMessage == "" {
		return fmt.Sprintf("flow %s, expected success=%t", outcome, tc.ExpectSuccess)
	}
	return fmt.Sprintf("flow %s with message %q, expected %q", outcome, actual, tc.ExpectedMessage)
}

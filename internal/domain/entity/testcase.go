package entity

import "time"

type CaseStatus string

const (
	StatusPass   CaseStatus = "Pass"
	StatusFailed CaseStatus = "Failed"
)

// TestCase is one data-driven row: the credentials to submit and the
// feedback the UI is expected to show.
type TestCase struct {
	Title           string `yaml:"title"`
	Step            string `yaml:"step"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	ExpectedMessage string `yaml:"expected_message"`
	// Action selects what a non-login scenario does, e.g. "verify_menu".
	Action string `yaml:"action"`
	// ExpectSuccess marks rows where login should leave the auth page.
	ExpectSuccess bool `yaml:"expect_success"`
}

type CaseResult struct {
	Scenario      string
	Title         string
	Status        CaseStatus
	ActualMessage string
	Reason        string
	Duration      time.Duration
	Diagnostics   []Diagnostic
}

func (r CaseResult) Passed() bool {
	return r.Status == StatusPass
}

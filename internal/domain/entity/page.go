package entity

import "time"

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// Diagnostic is captured evidence about a failed step, handed to a result
// sink. The core never writes it anywhere itself.
type Diagnostic struct {
	Step      string
	URL       string
	Title     string
	Error     string
	Attempted []string
	PageText  string
	// Controls lists the interactive elements the page offered instead.
	Controls       []string
	ScreenshotPath string
	CapturedAt     time.Time
}

// Section is a top-level navigation entry reachable by its link text.
type Section string

const (
	SectionOrders   Section = "Orders"
	SectionProducts Section = "Products"
	SectionSettings Section = "Settings"
)

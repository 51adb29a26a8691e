package entity

import (
	"fmt"
	"strings"
	"time"
)

type By string

const (
	ByCSS       By = "css"
	ByXPath     By = "xpath"
	ByID        By = "id"
	ByName      By = "name"
	ByClassName By = "class"
	ByLinkText  By = "link-text"
	ByText      By = "text"
)

func (b By) String() string {
	return string(b)
}

// LocatorStrategy describes one way to find an element. Values are compared
// by equality only.
type LocatorStrategy struct {
	By    By
	Value string
}

func CSS(selector string) LocatorStrategy { return LocatorStrategy{By: ByCSS, Value: selector} }
func XPath(expr string) LocatorStrategy { return LocatorStrategy{By: ByXPath, Value: expr} }
func ID(id string) LocatorStrategy { return LocatorStrategy{By: ByID, Value: id} }
func Name(name string) LocatorStrategy { return LocatorStrategy{By: ByName, Value: name} }
func ClassName(class string) LocatorStrategy { return LocatorStrategy{By: ByClassName, Value: class} }
func LinkText(text string) LocatorStrategy { return LocatorStrategy{By: ByLinkText, Value: text} }
func Text(text string) LocatorStrategy { return LocatorStrategy{By: ByText, Value: text} }

func (l LocatorStrategy) String() string {
	return fmt.Sprintf("%s=%s", l.By, l.Value)
}

func (l LocatorStrategy) Validate() error {
	switch l.By {
	case ByCSS, ByXPath, ByID, ByName, ByClassName, ByLinkText, ByText:
	default:
		return fmt.Errorf("%w: unknown locator kind %q", ErrInvalidConfiguration, l.By)
	}
	if strings.TrimSpace(l.Value) == "" {
		return fmt.Errorf("%w: empty %s locator", ErrInvalidConfiguration, l.By)
	}
	return nil
}

// LocatorCandidateList is ordered by preference: the first entry is the
// primary locator, later entries are degraded fallbacks.
type LocatorCandidateList []LocatorStrategy

func Candidates(strategies ...LocatorStrategy) LocatorCandidateList {
	return LocatorCandidateList(strategies)
}

func (l LocatorCandidateList) Strings() []string {
	out := make([]string, 0, len(l))
	for _, s := range l {
		out = append(out, s.String())
	}
	return out
}

func (l LocatorCandidateList) String() string {
	return "[" + strings.Join(l.Strings(), ", ") + "]"
}

// Target is a logical UI element as a page object names it.
type Target struct {
	Name       string
	Candidates LocatorCandidateList
	// PerCandidate overrides the executor's per-candidate timeout when > 0.
	PerCandidate time.Duration
}

func NewTarget(name string, candidates ...LocatorStrategy) Target {
	return Target{Name: name, Candidates: Candidates(candidates...)}
}

func (t Target) WithTimeout(perCandidate time.Duration) Target {
	t.PerCandidate = perCandidate
	return t
}

func (t Target) String() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Candidates.String()
}

package testdata

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"webui-e2e/internal/application/port/output"
	"webui-e2e/internal/domain/entity"

	"gopkg.in/yaml.v3"
)

var _ output.TestCaseProvider = (*YAMLProvider)(nil)

var ErrUnknownScenario = errors.New("no test cases for scenario")

// YAMLProvider serves rows from a document keyed by scenario name:
//
//	login:
//	  - title: wrong password
//	    username: demo
//	    password: nope
//	    expected_message: Tài khoản hoặc mật khẩu không chính xác
type YAMLProvider struct {
	source string
	cases  map[string][]entity.TestCase
}

func LoadFile(path string) (*YAMLProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test data: %w", err)
	}
	p, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.source = path
	return p, nil
}

func Parse(r io.Reader) (*YAMLProvider, error) {
	cases := map[string][]entity.TestCase{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cases); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse test data: %w", err)
	}

	for scenario, rows := range cases {
		for i := range rows {
			if strings.TrimSpace(rows[i].Title) == "" {
				rows[i].Title = fmt.Sprintf("%s #%d", scenario, i+1)
			}
		}
	}
	return &YAMLProvider{source: "inline", cases: cases}, nil
}

func (p *YAMLProvider) Cases(scenario string) ([]entity.TestCase, error) {
	rows, ok := p.cases[scenario]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownScenario, scenario, p.source)
	}
	return append([]entity.TestCase(nil), rows...), nil
}

func (p *YAMLProvider) Scenarios() []string {
	names := make([]string, 0, len(p.cases))
	for name := range p.cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

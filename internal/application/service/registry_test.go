package service

import (
	"context"
	"testing"

	"webui-e2e/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

type namedScenario string

func (n namedScenario) Name() string { return string(n) }
func (n namedScenario) Description() string { return "" }

func (n namedScenario) Run(context.Context, entity.TestCase) (entity.CaseResult, error) {
	return entity.CaseResult{}, nil
}

func TestScenarioRegistry(t *testing.T) {
	r := NewScenarioRegistry()
	r.Register(namedScenario("login"))
	r.Register(namedScenario("home"))

	assert.Equal(t, []string{"home", "login"}, r.Names())
	assert.Len(t, r.All(), 2)
	assert.Equal(t, "home", r.All()[0].Name())

	s, ok := r.Get("login")
	assert.True(t, ok)
	assert.Equal(t, "login", s.Name())

	_, ok = r.Get("checkout")
	assert.False(t, ok)
}

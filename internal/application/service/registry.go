package service

import (
	"sort"

	"webui-e2e/internal/application/port/input"
)

type ScenarioRegistry struct {
	scenarios map[string]input.Scenario
}

func NewScenarioRegistry() *ScenarioRegistry {
	return &ScenarioRegistry{
		scenarios: make(map[string]input.Scenario),
	}
}

func (r *ScenarioRegistry) Register(scenario input.Scenario) {
	r.scenarios[scenario.Name()] = scenario
}

func (r *ScenarioRegistry) Get(name string) (input.Scenario, bool) {
	scenario, ok := r.scenarios[name]
	return scenario, ok
}

// All returns the scenarios sorted by name.
func (r *ScenarioRegistry) All() []input.Scenario {
	result := make([]input.Scenario, 0, len(r.scenarios))
	for _, scenario := range r.scenarios {
		result = append(result, scenario)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

func (r *ScenarioRegistry) Names() []string {
	names := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package domain

// Configuration is the top-level scenario file.
type Configuration struct {
	// Assumptions apply to every scenario unless the scenario overrides a field.
	Assumptions *Assumptions `yaml:"assumptions,omitempty" json:"assumptions,omitempty"`
	Scenarios   []Scenario   `yaml:"scenarios" json:"scenarios" validate:"required,min=1,dive"`
}

// Scenario is a named projection input.
type Scenario struct {
	Name            string `yaml:"name" json:"name" validate:"required"`
	Description     string `yaml:"description,omitempty" json:"description,omitempty"`
	ProjectionInput `yaml:",inline"`
}

// FindScenario returns the scenario with the given name, or nil.
func (c *Configuration) FindScenario(name string) *Scenario {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i]
		}
	}
	return nil
}

// ScenarioNames lists scenario names in file order.
func (c *Configuration) ScenarioNames() []string {
	names := make([]string, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		names = append(names, s.Name)
	}
	return names
}

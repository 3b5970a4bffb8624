package config

import "strings"

// Method is one entry of the payment method catalog.
type Method struct {
	Name  string `toml:"name"`
	Label string `toml:"label"`
	Color string `toml:"color,omitempty"`
}

// DefaultMethods returns the built-in catalog.
func DefaultMethods() []Method {
	return []Method{
		{Name: "cash", Label: "Cash", Color: "green"},
		{Name: "card", Label: "Card", Color: "blue"},
		{Name: "pix", Label: "Pix", Color: "cyan"},
	}
}

// Method looks up a catalog entry by name, case-insensitively.
func (c Config) Method(name string) (Method, bool) {
	name = strings.TrimSpace(name)
	for _, m := range c.Methods {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Method{}, false
}

// MethodNames returns the catalog names in configured order.
func (c Config) MethodNames() []string {
	names := make([]string, len(c.Methods))
	for i, m := range c.Methods {
		names[i] = m.Name
	}
	return names
}

// DisplayName returns the label for a method, falling back to its name
// for methods recorded before they were removed from the catalog.
func (c Config) DisplayName(name string) string {
	if m, ok := c.Method(name); ok && m.Label != "" {
		return m.Label
	}
	return name
}

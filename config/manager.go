package config

import (
	"fmt"
	"os"

	"github.com/tom65536go/annual/bundlesync"
	"github.com/tom65536go/annual/producers"
	"github.com/tom65536go/annual/registry"
)

// builtinProducerSets maps the names a config.yaml may list under
// producers.builtin to the producer-set constructors that register
// under them. Generalizes initializeProviders, which built one
// countries.HolidayProvider per supported country code; here the
// selector is a producer set rather than a country.
var builtinProducerSets = map[string]func() []registry.Producer{
	"easter":     producers.Easter,
	"fixtures":   producers.Fixtures,
	"us-federal": producers.USFederal,
}

// Registry builds a registry.FunctionRegistry from the producers.builtin
// selection in Config, the way NewHolidayManager built one
// countries.HolidayProvider per configured country.
func (c *Config) Registry() (*registry.FunctionRegistry, error) {
	r := registry.NewFunctionRegistry()
	for _, name := range c.Producers.Builtin {
		set, ok := builtinProducerSets[name]
		if !ok {
			return nil, fmt.Errorf("unknown builtin producer set %q", name)
		}
		if err := r.AddFromModule(set()); err != nil {
			return nil, fmt.Errorf("registering producer set %q: %w", name, err)
		}
	}
	return r, nil
}

// LoadLocalBundle reads a rule bundle from a local file. Each
// non-blank, non-comment line has the form `name = "rule string"`,
// parsed by bundlesync.ParseBundle so a bundle file means the same
// thing whether it was loaded from disk or fetched from GitHub; this
// is the bundle-file counterpart of the teacher's CustomHoliday list,
// except a bundle is a whole file of rules rather than one struct per
// holiday.
func LoadLocalBundle(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rules, err := bundlesync.ParseBundle(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

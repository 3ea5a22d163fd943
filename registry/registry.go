// Package registry implements the producer registry (spec.md §4.5 / C5):
// a store of named single-date functions and date iterators, evaluated
// once per year into a NamedDateTable. Grounded on
// src/annual/registry.py and src/annual/decorators.py, reshaped per
// Design Note §9.1 — producers are an explicit tagged variant accepted
// directly by the registry rather than duck-typed callables carrying a
// runtime __decorator__ attribute.
package registry

import (
	"sort"

	"github.com/tom65536go/annual"
	"github.com/tom65536go/annual/diagnostics"
)

// DateFunction computes a single MaybeDate for a given year.
type DateFunction func(year int) annual.MaybeDate

// NamedDate is one (name, date-or-absence) pair yielded by a
// DateIterator.
type NamedDate struct {
	Name  string
	Value annual.MaybeDate
}

// DateIterator computes a finite sequence of named dates for a given
// year. The reference implementation models this as a Python generator;
// Go's standard library (pre range-over-func) has no equivalent native
// generator protocol, so the sequence is returned eagerly as a slice —
// every concrete iterator in this module yields a small, statically
// bounded number of pairs (e.g. one per calendar month), so eagerness
// costs nothing in practice.
type DateIterator func(year int) []NamedDate

// ProducerKind tags which contract a Producer implements, replacing the
// reference implementation's `__decorator__` string attribute
// (`date_function` / `date_iterator`) with a closed Go type.
type ProducerKind int

const (
	// KindDateFunction marks a single-date producer.
	KindDateFunction ProducerKind = iota
	// KindDateIterator marks a multi-date producer.
	KindDateIterator
)

// Producer is a single registrable entry: a name, a kind marker, and the
// matching callable. Exactly one of Func or Iter must be set, matching
// its Kind. This is the explicit, compile-time-checkable shape that
// add_from_module scans in place of runtime attribute probing (Design
// Note §9.1).
type Producer struct {
	Name string
	Kind ProducerKind
	Func DateFunction
	Iter DateIterator
}

// FunctionRegistry stores date functions and iterators keyed by name and
// evaluates all of them for a requested year.
//
// The registry holds an owning, mutable mapping during setup; once
// Evaluate returns, callers treat the resulting NamedDateTable as
// immutable for the lifetime of any Parser built from it (spec.md §5).
type FunctionRegistry struct {
	functions   map[string]DateFunction
	iterators   []DateIterator
	sink        diagnostics.Sink
	autoPlugins bool
}

// NewFunctionRegistry creates an empty registry. Use CreateRegistry for
// the library's top-level entry point, which additionally wires
// optional plugin discovery.
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		functions: make(map[string]DateFunction),
	}
}

// CreateRegistry is the library's top-level constructor
// (spec.md §6, entry point 1). When autoPlugins is true, the caller is
// expected to follow up with AddFromPlugins supplying a PluginDiscoverer
// appropriate to the host platform — plugin *discovery* is explicitly
// out of scope mechanically (spec.md §1), so CreateRegistry itself never
// reaches out to any OS- or build-specific extension mechanism.
func CreateRegistry(autoPlugins bool) *FunctionRegistry {
	r := NewFunctionRegistry()
	r.autoPlugins = autoPlugins
	return r
}

// WithSink overrides the diagnostic sink used for registration-time
// warnings (currently unused by the registry itself, but threaded
// through to keep a single sink for an application's whole pipeline).
func (r *FunctionRegistry) WithSink(sink diagnostics.Sink) *FunctionRegistry {
	r.sink = sink
	return r
}

// AddDateFunction installs a single-date producer under the given name.
// The name plays the role of the reference implementation's
// function.__name__ (with the decorator's optional override) — since Go
// has no introspectable declared-name-of-a-closure equivalent, the name
// is always explicit here rather than defaulted and conditionally
// overridden.
func (r *FunctionRegistry) AddDateFunction(name string, fn DateFunction) error {
	if fn == nil {
		return annual.NewProducerError(annual.ErrNonCallableProducer, name, "date function must not be nil")
	}
	r.functions[name] = fn
	return nil
}

// AddDateIterator installs a multi-date producer. Its yielded names are
// not known until the iterator runs for a given year.
func (r *FunctionRegistry) AddDateIterator(it DateIterator) error {
	if it == nil {
		return annual.NewRuleError(annual.ErrNonCallableProducer, "date iterator must not be nil")
	}
	r.iterators = append(r.iterators, it)
	return nil
}

// AddFromModule installs every Producer declared in a module-level
// table, such as the slices returned by producers.Easter,
// producers.Fixtures or producers.USFederal.
// Fails fast (the "programmer error" category, spec.md §7.3) on an
// unrecognized Kind or a missing callable — never during Evaluate.
func (r *FunctionRegistry) AddFromModule(producers []Producer) error {
	for _, p := range producers {
		switch p.Kind {
		case KindDateFunction:
			if err := r.AddDateFunction(p.Name, p.Func); err != nil {
				return err
			}
		case KindDateIterator:
			if err := r.AddDateIterator(p.Iter); err != nil {
				return err
			}
		default:
			return annual.NewProducerError(annual.ErrUnknownProducerKind, p.Name, "unrecognized producer kind")
		}
	}
	return nil
}

// PluginDiscoverer resolves the host platform's plugin entries published
// under the group identifier "annual" into producer tables. Plugin
// *discovery* is out of scope mechanically (spec.md §1); this interface
// exists purely so AddFromPlugins has a contract to delegate to when a
// host application supplies one — the registry itself never performs
// filesystem or build-specific discovery.
type PluginDiscoverer interface {
	// Discover returns, for each plugin entry name, the producers that
	// entry's module declares.
	Discover() (map[string][]Producer, error)
}

// AddFromPlugins enumerates plugin entries via discoverer and installs
// each one's producers, applying include first (when non-empty, only
// listed entries are considered) and then exclude (drops matches).
// discoverer == nil is a no-op: no host platform extension mechanism is
// wired, matching the explicit mechanical non-goal.
func (r *FunctionRegistry) AddFromPlugins(discoverer PluginDiscoverer, include, exclude []string) error {
	if discoverer == nil {
		return nil
	}
	entries, err := discoverer.Discover()
	if err != nil {
		return err
	}
	includeSet := toSet(include)
	excludeSet := toSet(exclude)
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names) // deterministic iteration for reproducible error ordering only; table result order is unspecified regardless (spec.md §4.5, §9)
	for _, name := range names {
		if len(includeSet) > 0 && !includeSet[name] {
			continue
		}
		if excludeSet[name] {
			continue
		}
		if err := r.AddFromModule(entries[name]); err != nil {
			return err
		}
	}
	return nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// Evaluate runs every registered single-date function and flattens every
// registered iterator, producing the NamedDateTable for the given year.
// Execution order and the resulting table's iteration order are both
// unspecified (spec.md §4.5); name collisions are resolved by later
// writes winning, with no error raised.
func (r *FunctionRegistry) Evaluate(year int) annual.NamedDateTable {
	result := make(annual.NamedDateTable, len(r.functions))
	for name, fn := range r.functions {
		result[name] = fn(year)
	}
	for _, it := range r.iterators {
		for _, pair := range it(year) {
			result[pair.Name] = pair.Value
		}
	}
	return result
}

package registry

import (
	"testing"

	"github.com/tom65536go/annual"
)

func TestEvaluateEmptyRegistry(t *testing.T) {
	r := NewFunctionRegistry()
	result := r.Evaluate(2000)
	if len(result) != 0 {
		t.Fatalf("expected empty table, got %v", result)
	}
}

func TestAddDateFunction(t *testing.T) {
	r := NewFunctionRegistry()
	if err := r.AddDateFunction("never", func(int) annual.MaybeDate { return annual.None }); err != nil {
		t.Fatal(err)
	}
	newYears := func(year int) annual.MaybeDate {
		d, _ := annual.NewDate(year, annual.January, 1)
		return annual.Some(d)
	}
	if err := r.AddDateFunction("new-years-day", newYears); err != nil {
		t.Fatal(err)
	}

	result := r.Evaluate(2000)
	if result["never"].IsPresent() {
		t.Fatalf("expected never to be absent, got %v", result["never"])
	}
	d, ok := result["new-years-day"].Get()
	if !ok || d.Year != 2000 || d.Month != annual.January || d.Day != 1 {
		t.Fatalf("unexpected new-years-day: %v", result["new-years-day"])
	}
}

func TestAddDateIterator(t *testing.T) {
	r := NewFunctionRegistry()
	firstOfMonth := func(year int) []NamedDate {
		pairs := make([]NamedDate, 0, 12)
		for m := annual.January; m <= annual.December; m++ {
			d, _ := annual.NewDate(year, m, 1)
			pairs = append(pairs, NamedDate{Name: monthKey(m), Value: annual.Some(d)})
		}
		return pairs
	}
	if err := r.AddDateIterator(firstOfMonth); err != nil {
		t.Fatal(err)
	}

	result := r.Evaluate(2000)
	if len(result) != 12 {
		t.Fatalf("expected 12 entries, got %d", len(result))
	}
	d, ok := result["greg-12"].Get()
	if !ok || d.Month != annual.December || d.Day != 1 {
		t.Fatalf("unexpected greg-12: %v", result["greg-12"])
	}
}

func monthKey(m annual.Month) string {
	return "greg-" + twoDigit(int(m))
}

func twoDigit(n int) string {
	if n < 10 {
		return "0" + itoa(n)
	}
	return itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := [2]byte{}
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[i:])
}

func TestAddFromModule(t *testing.T) {
	r := NewFunctionRegistry()
	producers := []Producer{
		{Name: "new-years-day", Kind: KindDateFunction, Func: func(year int) annual.MaybeDate {
			d, _ := annual.NewDate(year, annual.January, 1)
			return annual.Some(d)
		}},
		{Kind: KindDateIterator, Iter: func(year int) []NamedDate {
			d, _ := annual.NewDate(year, annual.December, 1)
			return []NamedDate{{Name: "greg-12", Value: annual.Some(d)}}
		}},
	}
	if err := r.AddFromModule(producers); err != nil {
		t.Fatal(err)
	}
	result := r.Evaluate(2000)
	if _, ok := result["greg-12"].Get(); !ok {
		t.Fatal("expected greg-12 in result")
	}
	if _, ok := result["new-years-day"].Get(); !ok {
		t.Fatal("expected new-years-day in result")
	}
}

func TestAddFromModuleRejectsUnknownKind(t *testing.T) {
	r := NewFunctionRegistry()
	err := r.AddFromModule([]Producer{{Name: "bad", Kind: ProducerKind(99)}})
	if err == nil {
		t.Fatal("expected an error for an unrecognized producer kind")
	}
	re, ok := err.(*annual.RuleError)
	if !ok || re.Code != annual.ErrUnknownProducerKind {
		t.Fatalf("expected ErrUnknownProducerKind, got %v", err)
	}
}

type fakeDiscoverer struct {
	entries map[string][]Producer
}

func (f fakeDiscoverer) Discover() (map[string][]Producer, error) {
	return f.entries, nil
}

func easterFuncProducer() Producer {
	return Producer{Name: "easter", Kind: KindDateFunction, Func: func(year int) annual.MaybeDate {
		if year != 2000 {
			return annual.None
		}
		d, _ := annual.NewDate(2000, annual.April, 23)
		return annual.Some(d)
	}}
}

func TestAddFromPluginsOnlyAndExclude(t *testing.T) {
	discoverer := fakeDiscoverer{entries: map[string][]Producer{
		"annual": {easterFuncProducer()},
		"foo":    {{Name: "foo-date", Kind: KindDateFunction, Func: func(int) annual.MaybeDate { return annual.None }}},
	}}

	only := NewFunctionRegistry()
	if err := only.AddFromPlugins(discoverer, []string{"annual"}, nil); err != nil {
		t.Fatal(err)
	}
	if _, ok := only.Evaluate(2000)["easter"].Get(); !ok {
		t.Fatal("expected easter present when only=[annual]")
	}

	excluded := NewFunctionRegistry()
	if err := excluded.AddFromPlugins(discoverer, nil, []string{"annual"}); err != nil {
		t.Fatal(err)
	}
	if _, ok := excluded.Evaluate(2000)["easter"].Get(); ok {
		t.Fatal("expected easter absent when excluded")
	}
}

func TestAddFromPluginsNilDiscovererIsNoop(t *testing.T) {
	r := NewFunctionRegistry()
	if err := r.AddFromPlugins(nil, nil, nil); err != nil {
		t.Fatal(err)
	}
	if len(r.Evaluate(2000)) != 0 {
		t.Fatal("expected empty table when no discoverer is wired")
	}
}

func TestNameCollisionLaterWriteWins(t *testing.T) {
	r := NewFunctionRegistry()
	jan1 := func(year int) annual.MaybeDate {
		d, _ := annual.NewDate(year, annual.January, 1)
		return annual.Some(d)
	}
	dec25 := func(year int) []NamedDate {
		d, _ := annual.NewDate(year, annual.December, 25)
		return []NamedDate{{Name: "dup", Value: annual.Some(d)}}
	}
	_ = r.AddDateFunction("dup", jan1)
	_ = r.AddDateIterator(dec25)
	result := r.Evaluate(2024)
	d, ok := result["dup"].Get()
	if !ok || d.Month != annual.December {
		t.Fatalf("expected iterator write to win, got %v", result["dup"])
	}
}

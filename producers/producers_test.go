package producers

import (
	"testing"

	"github.com/tom65536go/annual"
	"github.com/tom65536go/annual/registry"
)

func TestEasterProducersRegisterUnderFixedNames(t *testing.T) {
	r := registry.NewFunctionRegistry()
	if err := r.AddFromModule(Easter()); err != nil {
		t.Fatal(err)
	}
	result := r.Evaluate(2000)
	for _, name := range []string{"easter", "easter_orthodox", "easter_julian"} {
		if _, ok := result[name]; !ok {
			t.Fatalf("expected %s to be registered", name)
		}
	}
	d, ok := result["easter"].Get()
	if !ok || d.Month != annual.April || d.Day != 23 {
		t.Fatalf("easter(2000) = %v, want 2000-04-23", result["easter"])
	}
}

func TestFixturesMirrorDummyModule(t *testing.T) {
	r := registry.NewFunctionRegistry()
	if err := r.AddFromModule(Fixtures()); err != nil {
		t.Fatal(err)
	}
	result := r.Evaluate(2000)
	if result["never"].IsPresent() {
		t.Fatal("never should be absent")
	}
	d, ok := result["new-years-day"].Get()
	if !ok || d.Month != annual.January || d.Day != 1 {
		t.Fatalf("unexpected new-years-day: %v", result["new-years-day"])
	}
	if _, ok := result["greg-12"].Get(); !ok {
		t.Fatal("expected greg-12 from FirstOfMonth")
	}
}

func TestUSFederalHolidays(t *testing.T) {
	r := registry.NewFunctionRegistry()
	if err := r.AddFromModule(USFederal()); err != nil {
		t.Fatal(err)
	}
	result := r.Evaluate(2024)

	mlk, ok := result["us-mlk-day"].Get()
	if !ok || mlk.Month != annual.January || mlk.Day != 15 {
		t.Fatalf("us-mlk-day 2024 = %v, want 2024-01-15", result["us-mlk-day"])
	}

	thanksgiving, ok := result["us-thanksgiving"].Get()
	if !ok || thanksgiving.Month != annual.November || thanksgiving.Day != 28 {
		t.Fatalf("us-thanksgiving 2024 = %v, want 2024-11-28", result["us-thanksgiving"])
	}

	if result["us-mlk-day"].IsPresent() {
		mlk1980 := NthWeekdayHoliday(annual.January, annual.Monday, 3, 1983)(1980)
		if mlk1980.IsPresent() {
			t.Fatal("MLK day should be absent before 1983")
		}
	}
}

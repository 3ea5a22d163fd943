package calendar

import (
	"testing"

	"github.com/tom65536go/annual"
)

func mustDate(t *testing.T, year int, month annual.Month, day int) annual.Date {
	t.Helper()
	d, err := annual.NewDate(year, month, day)
	if err != nil {
		t.Fatalf("NewDate(%d, %v, %d): %v", year, month, day, err)
	}
	return d
}

func TestWdOfMonth(t *testing.T) {
	cases := []struct {
		name    string
		year    int
		month   annual.Month
		ordinal int
		weekDay annual.WeekDay
		want    annual.Date
		wantOK  bool
	}{
		{"second Sunday of May 2024", 2024, annual.May, 2, annual.Sunday, mustDate(t, 2024, annual.May, 12), true},
		{"5th Wednesday of June 2024 does not exist", 2024, annual.June, 5, annual.Wednesday, annual.Date{}, false},
		{"first Monday of January 2024", 2024, annual.January, 1, annual.Monday, mustDate(t, 2024, annual.January, 1), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := WdOfMonth(c.year, c.month, c.ordinal, c.weekDay)
			if ok != c.wantOK {
				t.Fatalf("ok = %v, want %v", ok, c.wantOK)
			}
			if ok && !got.Equal(c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestLastWdOfMonth(t *testing.T) {
	got := LastWdOfMonth(2024, annual.December, annual.Sunday)
	want := mustDate(t, 2024, annual.December, 29)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLastWdOfMonthDecemberRollover(t *testing.T) {
	// last Friday of December must stay in December even though the
	// algorithm anchors on January 1 of the following year.
	got := LastWdOfMonth(2021, annual.December, annual.Friday)
	if got.Year != 2021 || got.Month != annual.December {
		t.Fatalf("got %v, want a date in December 2021", got)
	}
}

func TestWdRelativeToNotBefore(t *testing.T) {
	// "friday not before June 30": the evaluator turns "not before" into
	// includeStart with the direction reversed to After.
	anchor := mustDate(t, 2024, annual.June, 30) // a Sunday
	got := WdRelativeTo(anchor, annual.Friday, annual.After, true)
	want := mustDate(t, 2024, annual.July, 5)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDaysRelativeToRoundTrip(t *testing.T) {
	d := mustDate(t, 2024, annual.March, 1)
	for n := -400; n <= 400; n += 37 {
		shifted := DaysRelativeTo(d, n)
		back := DaysRelativeTo(shifted, -n)
		if !back.Equal(d) {
			t.Fatalf("round trip with n=%d: got %v, want %v", n, back, d)
		}
	}
}

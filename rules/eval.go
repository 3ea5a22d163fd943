package rules

import (
	"github.com/tom65536go/annual"
	"github.com/tom65536go/annual/calendar"
	"github.com/tom65536go/annual/diagnostics"
)

// Evaluator folds a parsed Rule tree into a MaybeDate, given the year and
// NamedDateTable that parameterize the evaluation. It is the tree-fold
// half of the two-phase parse-then-fold design (see Node in ast.go): a
// separate, pure function of (AST, year, funcs), easy to property-test
// by constructing ASTs directly.
type Evaluator struct {
	Year  int
	Funcs annual.NamedDateTable
	Sink  diagnostics.Sink
}

func (e *Evaluator) sink() diagnostics.Sink {
	if e.Sink == nil {
		return diagnostics.NewDefaultSink()
	}
	return e.Sink
}

// EvalRule folds the top-level rule production: `rule(t, cond, f)`.
func (e *Evaluator) EvalRule(r *Rule) annual.MaybeDate {
	if r.Cond == nil || e.EvalCondition(r.Cond) {
		return e.EvalRecurrence(r.Then)
	}
	return e.EvalRule(r.Else)
}

// EvalRecurrence folds any Recurrence node to a MaybeDate.
func (e *Evaluator) EvalRecurrence(rec Recurrence) annual.MaybeDate {
	switch n := rec.(type) {
	case *Literal:
		d, err := annual.NewDate(e.Year, n.Month, n.Day)
		if err != nil {
			e.sink().Warn(diagnostics.InvalidLiteral(e.Year, int(n.Month), n.Day), 0)
			return annual.None
		}
		return annual.Some(d)

	case *NameRef:
		v, ok := e.Funcs[n.Name]
		if !ok {
			e.sink().Warn(diagnostics.UnknownProducer(n.Name), 0)
			return annual.None
		}
		return v

	case *Never:
		return annual.None

	case *Paren:
		return e.EvalRule(n.Inner)

	case *Offset:
		base := e.EvalRecurrence(n.Rec)
		d, ok := base.Get()
		if !ok {
			return annual.None
		}
		shift := n.N * int(n.Unit) * int(n.Prep)
		return annual.Some(d.AddDays(shift))

	case *OrdinalWeekdayOfMonth:
		d, ok := calendar.WdOfMonth(e.Year, n.Month, n.Ordinal, n.WeekDay)
		if !ok {
			return annual.None
		}
		return annual.Some(d)

	case *LastWeekdayOfMonth:
		return annual.Some(calendar.LastWdOfMonth(e.Year, n.Month, n.WeekDay))

	case *WeekdayRelative:
		base := e.EvalRecurrence(n.Rec)
		anchor, ok := base.Get()
		if !ok {
			return annual.None
		}
		includeStart := n.Not
		direction := n.Prep
		if includeStart {
			direction = -n.Prep
		}
		result := calendar.WdRelativeTo(anchor, n.WeekDay, direction, includeStart)
		if n.Ordinal > 0 {
			result = result.AddDays(int(direction) * 7 * (n.Ordinal - 1))
		}
		return annual.Some(result)

	default:
		return annual.None
	}
}

// EvalCondition folds any Condition node to a bool, short-circuiting
// `and`/`or` left-to-right with `and` binding tighter than `or`.
func (e *Evaluator) EvalCondition(cond Condition) bool {
	switch n := cond.(type) {
	case *BoolLiteral:
		return n.Value

	case *Or:
		if e.EvalCondition(n.Left) {
			return true
		}
		return e.EvalCondition(n.Right)

	case *And:
		if !e.EvalCondition(n.Left) {
			return false
		}
		return e.EvalCondition(n.Right)

	case *Exists:
		return e.EvalRecurrence(n.Rec).IsPresent()

	case *MonthCond:
		d, ok := e.EvalRecurrence(n.Rec).Get()
		result := ok && d.Year == e.Year && d.Month == n.Month
		return negate(result, n.Not)

	case *WeekDayCond:
		if n.Never {
			return negate(!e.EvalRecurrence(n.Rec).IsPresent(), n.Not)
		}
		d, ok := e.EvalRecurrence(n.Rec).Get()
		result := ok && d.WeekDay() == n.Target
		return negate(result, n.Not)

	case *SameAsCond:
		a, okA := e.EvalRecurrence(n.A).Get()
		b, okB := e.EvalRecurrence(n.B).Get()
		result := okA && okB && a.Equal(b)
		return negate(result, n.Not)

	case *PrepCond:
		a, okA := e.EvalRecurrence(n.A).Get()
		b, okB := e.EvalRecurrence(n.B).Get()
		result := okA && okB && int(n.Prep)*a.Sub(b) > 0
		return negate(result, n.Not)

	case *YearLeap:
		return negate(isLeapYear(e.Year), n.Not)

	case *YearDivision:
		var result bool
		if n.HasModulus {
			result = mod(e.Year, n.Modulus) == n.Number
		} else {
			result = e.Year == n.Number
		}
		return negate(result, n.Not)

	case *YearPrep:
		result := int(n.Prep)*(e.Year-n.Year) > 0
		return negate(result, n.Not)

	default:
		return false
	}
}

func negate(result, not bool) bool {
	if not {
		return !result
	}
	return result
}

func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += abs(m)
	}
	return r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Parser parses rule strings against a fixed (year, NamedDateTable) pair,
// the counterpart of make_parser in the library API.
type Parser struct {
	year  int
	funcs annual.NamedDateTable
	sink  diagnostics.Sink
}

// NewParser constructs a Parser parameterized by year and funcs. The
// returned Parser uses diagnostics.NewDefaultSink() until WithSink
// overrides it.
func NewParser(year int, funcs annual.NamedDateTable) *Parser {
	return &Parser{year: year, funcs: funcs, sink: diagnostics.NewDefaultSink()}
}

// WithSink overrides the diagnostic sink used for unknown-identifier and
// invalid-literal warnings, returning the same Parser for chaining.
func (p *Parser) WithSink(sink diagnostics.Sink) *Parser {
	p.sink = sink
	return p
}

// Parse parses and evaluates a single rule string, returning the
// resulting MaybeDate or a *ParseError if the string does not match the
// grammar. Resolution problems within an otherwise valid rule (unknown
// identifier, invalid literal day) are reported through the configured
// diagnostic sink and resolve the affected sub-expression to absence
// rather than failing the call.
func (p *Parser) Parse(rule string) (annual.MaybeDate, error) {
	tree, err := parseProgram(rule)
	if err != nil {
		return annual.None, err
	}
	ev := &Evaluator{Year: p.year, Funcs: p.funcs, Sink: p.sink}
	return ev.EvalRule(tree), nil
}

package rules

import "github.com/tom65536go/annual"

// Node is implemented by every AST node produced by the parser. The
// parser builds this explicit tagged tree in a single pass (a two-phase
// parse-then-fold design, equivalent in semantics to the reference
// implementation's streaming reduce-as-you-parse, but easier to test
// independently — the evaluator in eval.go accepts hand-built trees
// without re-parsing).
type Node interface {
	isNode()
}

// Recurrence is any sub-expression that evaluates to a MaybeDate.
type Recurrence interface {
	Node
	isRecurrence()
}

// Condition is any sub-expression that evaluates to a boolean.
type Condition interface {
	Node
	isCondition()
}

// Rule is the top-level production: a recurrence, optionally guarded by
// an if/else.
type Rule struct {
	Then Recurrence
	Cond Condition // nil when no if-clause is present
	Else *Rule     // nil when no if-clause is present
}

func (*Rule) isNode() {}

// Literal is a month/day date literal, e.g. "jun 1".
type Literal struct {
	Month annual.Month
	Day   int
}

func (*Literal) isNode()       {}
func (*Literal) isRecurrence() {}

// NameRef looks up a named producer in the NamedDateTable.
type NameRef struct {
	Name string
}

func (*NameRef) isNode()       {}
func (*NameRef) isRecurrence() {}

// Never is the literal `never` recurrence: always absence.
type Never struct{}

func (*Never) isNode()       {}
func (*Never) isRecurrence() {}

// Paren is a parenthesized rule used as a recurrence.
type Paren struct {
	Inner *Rule
}

func (*Paren) isNode()       {}
func (*Paren) isRecurrence() {}

// Offset is "NUMBER unit preposition recurrence", e.g. "49 days after
// easter".
type Offset struct {
	N    int
	Unit annual.Unit
	Prep annual.Direction
	Rec  Recurrence
}

func (*Offset) isNode()       {}
func (*Offset) isRecurrence() {}

// OrdinalWeekdayOfMonth is "the? ordinal weekday of month", e.g.
// "second Sunday of May".
type OrdinalWeekdayOfMonth struct {
	Ordinal int
	WeekDay annual.WeekDay
	Month   annual.Month
}

func (*OrdinalWeekdayOfMonth) isNode()       {}
func (*OrdinalWeekdayOfMonth) isRecurrence() {}

// LastWeekdayOfMonth is "the? last weekday of month", e.g. "last sun of
// Dec".
type LastWeekdayOfMonth struct {
	WeekDay annual.WeekDay
	Month   annual.Month
}

func (*LastWeekdayOfMonth) isNode()       {}
func (*LastWeekdayOfMonth) isRecurrence() {}

// WeekdayRelative is "the? ordinal? weekday not? preposition recurrence",
// e.g. "friday not before June 30".  Ordinal of 0 means no ordinal shift
// was given.
type WeekdayRelative struct {
	Ordinal int
	WeekDay annual.WeekDay
	Not     bool
	Prep    annual.Direction
	Rec     Recurrence
}

func (*WeekdayRelative) isNode()       {}
func (*WeekdayRelative) isRecurrence() {}

// --- conditions ---

// Or is a short-circuiting disjunction; And binds tighter (spec §4.4).
type Or struct {
	Left, Right Condition
}

func (*Or) isNode()      {}
func (*Or) isCondition() {}

// And is a short-circuiting conjunction.
type And struct {
	Left, Right Condition
}

func (*And) isNode()      {}
func (*And) isCondition() {}

// BoolLiteral is the `true`/`false` condition literal.
type BoolLiteral struct {
	Value bool
}

func (*BoolLiteral) isNode()      {}
func (*BoolLiteral) isCondition() {}

// Exists tests whether a recurrence produces a date.
type Exists struct {
	Rec Recurrence
}

func (*Exists) isNode()      {}
func (*Exists) isCondition() {}

// MonthCond tests whether a recurrence's date falls in the given month.
type MonthCond struct {
	Rec   Recurrence
	Not   bool
	Month annual.Month
}

func (*MonthCond) isNode()      {}
func (*MonthCond) isCondition() {}

// WeekDayCond tests a recurrence's weekday against a target weekday, or
// (when Never is true) tests whether the recurrence is absent.
type WeekDayCond struct {
	Rec   Recurrence
	Not   bool
	Never bool
	Target annual.WeekDay // valid only when Never is false
}

func (*WeekDayCond) isNode()      {}
func (*WeekDayCond) isCondition() {}

// SameAsCond tests whether two recurrences produce the identical date.
type SameAsCond struct {
	A, B Recurrence
	Not  bool
}

func (*SameAsCond) isNode()      {}
func (*SameAsCond) isCondition() {}

// PrepCond tests whether recurrence A falls strictly before/after B.
type PrepCond struct {
	A    Recurrence
	Not  bool
	Prep annual.Direction
	B    Recurrence
}

func (*PrepCond) isNode()      {}
func (*PrepCond) isCondition() {}

// YearLeap tests the Gregorian leap-year rule against the evaluation
// year.
type YearLeap struct {
	Not bool
}

func (*YearLeap) isNode()      {}
func (*YearLeap) isCondition() {}

// YearDivision tests the evaluation year against a plain equality
// (HasModulus false) or a modulus/remainder pair (HasModulus true).
type YearDivision struct {
	Not       bool
	Number    int
	HasModulus bool
	Modulus   int
}

func (*YearDivision) isNode()      {}
func (*YearDivision) isCondition() {}

// YearPrep tests the evaluation year against before/after NUMBER.
type YearPrep struct {
	Not  bool
	Prep annual.Direction
	Year int
}

func (*YearPrep) isNode()      {}
func (*YearPrep) isCondition() {}

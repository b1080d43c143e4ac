package core

// ruleKind discriminates the concrete rule variants. It is queried
// through the IsRate/IsAssignment predicates, never exposed directly.
type ruleKind uint8

const (
	ruleKindUnknown ruleKind = iota
	ruleKindRate
	ruleKindAssignment
)

// Rule is the base node for rate and assignment rules: a variable
// identifier paired with a formula string. Concrete variants embed Rule
// as their leading field.
type Rule struct {
	SBase
	kind     ruleKind
	variable string
	formula  string
}

// Variable returns the identifier of the variable the rule governs.
func (r *Rule) Variable() string {
	return r.variable
}

// SetVariable sets the governed variable identifier.
func (r *Rule) SetVariable(variable string) {
	r.variable = variable
}

// Formula returns the rule formula.
func (r *Rule) Formula() string {
	return r.formula
}

// SetFormula sets the rule formula.
func (r *Rule) SetFormula(formula string) {
	r.formula = formula
}

// IsRate reports whether this rule is a rate rule.
func (r *Rule) IsRate() bool {
	return r.kind == ruleKindRate
}

// IsAssignment reports whether this rule is an assignment rule.
func (r *Rule) IsAssignment() bool {
	return r.kind == ruleKindAssignment
}

// RateRule expresses the rate of change of its variable.
type RateRule struct {
	Rule
}

// AssignmentRule fixes its variable to the value of its formula.
type AssignmentRule struct {
	Rule
}

package sbml

import (
	"fmt"

	"github.com/sbml-kit/sbml-go/pkg/borrow"
	"github.com/sbml-kit/sbml-go/pkg/core"
)

// RuleType is the logical subtype of a rule, derived by probing the
// node's discriminant predicates rather than stored on the facade.
type RuleType int

const (
	// RuleTypeRate marks a rate rule.
	RuleTypeRate RuleType = iota + 1

	// RuleTypeAssignment marks an assignment rule.
	RuleTypeAssignment
)

// String returns the rule type name.
func (t RuleType) String() string {
	switch t {
	case RuleTypeRate:
		return "rateRule"
	case RuleTypeAssignment:
		return "assignmentRule"
	default:
		return "unknown"
	}
}

// Rule is the facade over a rule node, viewed through the shared Rule
// base regardless of the concrete variant it was created as.
type Rule struct {
	sbase
	handle *borrow.Handle[core.Rule]
}

func newRule(h *borrow.Handle[core.Rule]) *Rule {
	return &Rule{
		sbase:  sbase{base: RuleBase(h)},
		handle: h,
	}
}

// initRule sets the creation-time variable and formula through the Rule
// base view.
func initRule(h *borrow.Handle[core.Rule], variable, formula string) (*Rule, error) {
	err := h.Write(func(n *core.Rule) error {
		n.SetVariable(variable)
		n.SetFormula(formula)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newRule(h), nil
}

// Handle returns the rule's node handle.
func (r *Rule) Handle() *borrow.Handle[core.Rule] {
	return r.handle
}

// Variable returns the identifier of the variable the rule governs.
func (r *Rule) Variable() (string, error) {
	var v string
	err := r.handle.Read(func(n *core.Rule) error {
		v = n.Variable()
		return nil
	})
	return v, err
}

// SetVariable sets the governed variable identifier.
func (r *Rule) SetVariable(variable string) error {
	return r.handle.Write(func(n *core.Rule) error {
		n.SetVariable(variable)
		return nil
	})
}

// Formula returns the rule formula.
func (r *Rule) Formula() (string, error) {
	var v string
	err := r.handle.Read(func(n *core.Rule) error {
		v = n.Formula()
		return nil
	})
	return v, err
}

// SetFormula sets the rule formula.
func (r *Rule) SetFormula(formula string) error {
	return r.handle.Write(func(n *core.Rule) error {
		n.SetFormula(formula)
		return nil
	})
}

// Type probes the node's discriminant predicates and returns the rule's
// logical subtype. The first matching predicate wins; a node matching
// none yields ErrUnknownRuleType.
func (r *Rule) Type() (RuleType, error) {
	var t RuleType
	err := r.handle.Read(func(n *core.Rule) error {
		switch {
		case n.IsRate():
			t = RuleTypeRate
		case n.IsAssignment():
			t = RuleTypeAssignment
		default:
			return fmt.Errorf("%w: rule matches no discriminant predicate", ErrUnknownRuleType)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return t, nil
}

// RateRuleBuilder stages the configuration of a new rate rule.
type RateRuleBuilder struct {
	rule *Rule
	err  error
}

// NewRateRuleBuilder creates a rate rule in the model and returns its
// builder.
func NewRateRuleBuilder(model *Model, variable, formula string) *RateRuleBuilder {
	r, err := model.CreateRateRule(variable, formula)
	return &RateRuleBuilder{rule: r, err: err}
}

// Annotation attaches raw annotation markup.
func (b *RateRuleBuilder) Annotation(text string) *RateRuleBuilder {
	if b.err == nil {
		b.err = b.rule.SetAnnotation(text)
	}
	return b
}

// AnnotationValue serializes v into the rule's annotation container.
func (b *RateRuleBuilder) AnnotationValue(v any) *RateRuleBuilder {
	if b.err == nil {
		b.err = b.rule.SetAnnotationValue(v)
	}
	return b
}

// Build returns the configured rule, or the first error raised while
// staging it.
func (b *RateRuleBuilder) Build() (*Rule, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.rule, nil
}

// AssignmentRuleBuilder stages the configuration of a new assignment
// rule.
type AssignmentRuleBuilder struct {
	rule *Rule
	err  error
}

// NewAssignmentRuleBuilder creates an assignment rule in the model and
// returns its builder.
func NewAssignmentRuleBuilder(model *Model, variable, formula string) *AssignmentRuleBuilder {
	r, err := model.CreateAssignmentRule(variable, formula)
	return &AssignmentRuleBuilder{rule: r, err: err}
}

// Annotation attaches raw annotation markup.
func (b *AssignmentRuleBuilder) Annotation(text string) *AssignmentRuleBuilder {
	if b.err == nil {
		b.err = b.rule.SetAnnotation(text)
	}
	return b
}

// AnnotationValue serializes v into the rule's annotation container.
func (b *AssignmentRuleBuilder) AnnotationValue(v any) *AssignmentRuleBuilder {
	if b.err == nil {
		b.err = b.rule.SetAnnotationValue(v)
	}
	return b
}

// Build returns the configured rule, or the first error raised while
// staging it.
func (b *AssignmentRuleBuilder) Build() (*Rule, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.rule, nil
}

package sbml

import "errors"

// Facade errors.
var (
	// ErrNotFound is returned when a lookup by identifier matches no
	// entity, or when the document has no model yet.
	ErrNotFound = errors.New("entity not found")

	// ErrUnknownRuleType is returned when a rule node matches none of
	// the rule discriminant predicates.
	ErrUnknownRuleType = errors.New("unknown rule type")

	// ErrUnknownReferenceType is returned when a species reference
	// matches neither the reactant nor the product predicate.
	ErrUnknownReferenceType = errors.New("unknown species reference type")
)

package sbml

import (
	"github.com/sbml-kit/sbml-go/pkg/borrow"
	"github.com/sbml-kit/sbml-go/pkg/core"
)

// Declared upcasts. Each conversion reinterprets a handle as a handle
// to a base type in the node's inheritance chain. The projections below
// are valid because every base is the leading embedded field of its
// concrete type: the base sub-object starts at the node's own address,
// and the projected handle shares the source handle's borrow tracker.
// Chains with any other layout are not declared here and must not be.

// DocumentBase views a document handle as its SBase.
func DocumentBase(h *borrow.Handle[core.Document]) *borrow.Handle[core.SBase] {
	return borrow.Project(h, func(n *core.Document) *core.SBase { return &n.SBase })
}

// ModelBase views a model handle as its SBase.
func ModelBase(h *borrow.Handle[core.Model]) *borrow.Handle[core.SBase] {
	return borrow.Project(h, func(n *core.Model) *core.SBase { return &n.SBase })
}

// ParameterBase views a parameter handle as its SBase.
func ParameterBase(h *borrow.Handle[core.Parameter]) *borrow.Handle[core.SBase] {
	return borrow.Project(h, func(n *core.Parameter) *core.SBase { return &n.SBase })
}

// SpeciesBase views a species handle as its SBase.
func SpeciesBase(h *borrow.Handle[core.Species]) *borrow.Handle[core.SBase] {
	return borrow.Project(h, func(n *core.Species) *core.SBase { return &n.SBase })
}

// ReactionBase views a reaction handle as its SBase.
func ReactionBase(h *borrow.Handle[core.Reaction]) *borrow.Handle[core.SBase] {
	return borrow.Project(h, func(n *core.Reaction) *core.SBase { return &n.SBase })
}

// RuleBase views a rule handle as its SBase.
func RuleBase(h *borrow.Handle[core.Rule]) *borrow.Handle[core.SBase] {
	return borrow.Project(h, func(n *core.Rule) *core.SBase { return &n.SBase })
}

// RateRuleAsRule views a rate rule handle as its Rule base.
func RateRuleAsRule(h *borrow.Handle[core.RateRule]) *borrow.Handle[core.Rule] {
	return borrow.Project(h, func(n *core.RateRule) *core.Rule { return &n.Rule })
}

// AssignmentRuleAsRule views an assignment rule handle as its Rule base.
func AssignmentRuleAsRule(h *borrow.Handle[core.AssignmentRule]) *borrow.Handle[core.Rule] {
	return borrow.Project(h, func(n *core.AssignmentRule) *core.Rule { return &n.Rule })
}

// SpeciesReferenceAsSimple views a species reference handle as its
// SimpleSpeciesReference base, where the species accessor pair lives.
func SpeciesReferenceAsSimple(h *borrow.Handle[core.SpeciesReference]) *borrow.Handle[core.SimpleSpeciesReference] {
	return borrow.Project(h, func(n *core.SpeciesReference) *core.SimpleSpeciesReference { return &n.SimpleSpeciesReference })
}

// SimpleSpeciesReferenceBase views a simple species reference handle as
// its SBase.
func SimpleSpeciesReferenceBase(h *borrow.Handle[core.SimpleSpeciesReference]) *borrow.Handle[core.SBase] {
	return borrow.Project(h, func(n *core.SimpleSpeciesReference) *core.SBase { return &n.SBase })
}

// SpeciesReferenceBase views a species reference handle as its SBase,
// stepping through the full chain.
func SpeciesReferenceBase(h *borrow.Handle[core.SpeciesReference]) *borrow.Handle[core.SBase] {
	return SimpleSpeciesReferenceBase(SpeciesReferenceAsSimple(h))
}

package core

// Model owns the ordered entity collections of a document. Collections
// keep insertion order; identifier uniqueness is not enforced here, and
// lookups return the first match.
type Model struct {
	SBase
	parameters []*Parameter
	species    []*Species
	reactions  []*Reaction
	rules      []*Rule
}

// CreateParameter creates a parameter with defaults applied and appends
// it to the model's parameter list.
func (m *Model) CreateParameter(id string) *Parameter {
	p := &Parameter{}
	p.initSBase()
	p.InitDefaults()
	p.SetID(id)
	m.parameters = append(m.parameters, p)
	return p
}

// Parameters returns the parameter list in insertion order.
func (m *Model) Parameters() []*Parameter {
	out := make([]*Parameter, len(m.parameters))
	copy(out, m.parameters)
	return out
}

// Parameter returns the first parameter with the given identifier,
// nil if none matches.
func (m *Model) Parameter(id string) *Parameter {
	for _, p := range m.parameters {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

// CreateSpecies creates a species and appends it to the species list.
func (m *Model) CreateSpecies(id string) *Species {
	s := &Species{}
	s.initSBase()
	s.SetID(id)
	m.species = append(m.species, s)
	return s
}

// SpeciesList returns the species list in insertion order.
func (m *Model) SpeciesList() []*Species {
	out := make([]*Species, len(m.species))
	copy(out, m.species)
	return out
}

// Species returns the first species with the given identifier, nil if
// none matches.
func (m *Model) Species(id string) *Species {
	for _, s := range m.species {
		if s.ID() == id {
			return s
		}
	}
	return nil
}

// CreateReaction creates a reaction and appends it to the reaction list.
func (m *Model) CreateReaction(id string) *Reaction {
	r := &Reaction{}
	r.initSBase()
	r.SetID(id)
	m.reactions = append(m.reactions, r)
	return r
}

// Reactions returns the reaction list in insertion order.
func (m *Model) Reactions() []*Reaction {
	out := make([]*Reaction, len(m.reactions))
	copy(out, m.reactions)
	return out
}

// Reaction returns the first reaction with the given identifier, nil if
// none matches.
func (m *Model) Reaction(id string) *Reaction {
	for _, r := range m.reactions {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

// CreateRateRule creates an empty rate rule. The rule list stores the
// base Rule sub-object; the returned pointer is the concrete rate rule
// at the same address. Variable and formula are set afterwards through
// the Rule base.
func (m *Model) CreateRateRule() *RateRule {
	r := &RateRule{}
	r.initSBase()
	r.kind = ruleKindRate
	m.rules = append(m.rules, &r.Rule)
	return r
}

// CreateAssignmentRule creates an empty assignment rule.
func (m *Model) CreateAssignmentRule() *AssignmentRule {
	r := &AssignmentRule{}
	r.initSBase()
	r.kind = ruleKindAssignment
	m.rules = append(m.rules, &r.Rule)
	return r
}

// Rules returns the rule list in insertion order, as base Rule nodes.
func (m *Model) Rules() []*Rule {
	out := make([]*Rule, len(m.rules))
	copy(out, m.rules)
	return out
}

// Rule returns the first rule whose variable matches the given
// identifier, nil if none matches.
func (m *Model) Rule(variable string) *Rule {
	for _, r := range m.rules {
		if r.Variable() == variable {
			return r
		}
	}
	return nil
}

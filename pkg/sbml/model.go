package sbml

import (
	"fmt"

	"github.com/sbml-kit/sbml-go/pkg/borrow"
	"github.com/sbml-kit/sbml-go/pkg/core"
	"github.com/sbml-kit/sbml-go/pkg/log"
)

// Model is the facade over the model node: the factory and lookup
// surface for the entity collections.
type Model struct {
	sbase
	ledger *borrow.Ledger
	handle *borrow.Handle[core.Model]
	logger log.Logger
}

func newModel(ledger *borrow.Ledger, node *core.Model, logger log.Logger) *Model {
	h := borrow.Wrap(ledger, node)
	return &Model{
		sbase:  sbase{base: ModelBase(h)},
		ledger: ledger,
		handle: h,
		logger: logger,
	}
}

// Handle returns the model's node handle.
func (m *Model) Handle() *borrow.Handle[core.Model] {
	return m.handle
}

// CreateParameter creates a parameter with schema defaults applied.
func (m *Model) CreateParameter(id string) (*Parameter, error) {
	var node *core.Parameter
	var metaID string
	err := m.handle.Write(func(n *core.Model) error {
		node = n.CreateParameter(id)
		metaID = node.MetaID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.logger.Log(log.Event{Op: log.OpCreate, Kind: "parameter", ID: id, MetaID: metaID})
	return newParameter(m.ledger, node), nil
}

// Parameters returns facades for the model's parameters in insertion
// order.
func (m *Model) Parameters() ([]*Parameter, error) {
	var nodes []*core.Parameter
	err := m.handle.Read(func(n *core.Model) error {
		nodes = n.Parameters()
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]*Parameter, len(nodes))
	for i, node := range nodes {
		out[i] = newParameter(m.ledger, node)
	}
	return out, nil
}

// Parameter returns the first parameter with the given identifier.
func (m *Model) Parameter(id string) (*Parameter, error) {
	var node *core.Parameter
	err := m.handle.Read(func(n *core.Model) error {
		node = n.Parameter(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("%w: parameter %q", ErrNotFound, id)
	}
	return newParameter(m.ledger, node), nil
}

// CreateSpecies creates a species.
func (m *Model) CreateSpecies(id string) (*Species, error) {
	var node *core.Species
	var metaID string
	err := m.handle.Write(func(n *core.Model) error {
		node = n.CreateSpecies(id)
		metaID = node.MetaID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.logger.Log(log.Event{Op: log.OpCreate, Kind: "species", ID: id, MetaID: metaID})
	return newSpecies(m.ledger, node), nil
}

// SpeciesList returns facades for the model's species in insertion
// order.
func (m *Model) SpeciesList() ([]*Species, error) {
	var nodes []*core.Species
	err := m.handle.Read(func(n *core.Model) error {
		nodes = n.SpeciesList()
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]*Species, len(nodes))
	for i, node := range nodes {
		out[i] = newSpecies(m.ledger, node)
	}
	return out, nil
}

// Species returns the first species with the given identifier.
func (m *Model) Species(id string) (*Species, error) {
	var node *core.Species
	err := m.handle.Read(func(n *core.Model) error {
		node = n.Species(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("%w: species %q", ErrNotFound, id)
	}
	return newSpecies(m.ledger, node), nil
}

// CreateReaction creates a reaction.
func (m *Model) CreateReaction(id string) (*Reaction, error) {
	var node *core.Reaction
	var metaID string
	err := m.handle.Write(func(n *core.Model) error {
		node = n.CreateReaction(id)
		metaID = node.MetaID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.logger.Log(log.Event{Op: log.OpCreate, Kind: "reaction", ID: id, MetaID: metaID})
	return newReaction(m.ledger, node, m.logger), nil
}

// Reactions returns facades for the model's reactions in insertion
// order.
func (m *Model) Reactions() ([]*Reaction, error) {
	var nodes []*core.Reaction
	err := m.handle.Read(func(n *core.Model) error {
		nodes = n.Reactions()
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]*Reaction, len(nodes))
	for i, node := range nodes {
		out[i] = newReaction(m.ledger, node, m.logger)
	}
	return out, nil
}

// Reaction returns the first reaction with the given identifier.
func (m *Model) Reaction(id string) (*Reaction, error) {
	var node *core.Reaction
	err := m.handle.Read(func(n *core.Model) error {
		node = n.Reaction(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("%w: reaction %q", ErrNotFound, id)
	}
	return newReaction(m.ledger, node, m.logger), nil
}

// CreateRateRule creates a rate rule for the given variable and
// formula. The node is created empty by the factory; variable and
// formula are set through the Rule base view, which is where those
// mutators are declared.
func (m *Model) CreateRateRule(variable, formula string) (*Rule, error) {
	var node *core.RateRule
	var metaID string
	err := m.handle.Write(func(n *core.Model) error {
		node = n.CreateRateRule()
		metaID = node.MetaID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.logger.Log(log.Event{Op: log.OpCreate, Kind: "rateRule", ID: variable, MetaID: metaID})
	ruleHandle := RateRuleAsRule(borrow.Wrap(m.ledger, node))
	return initRule(ruleHandle, variable, formula)
}

// CreateAssignmentRule creates an assignment rule for the given
// variable and formula.
func (m *Model) CreateAssignmentRule(variable, formula string) (*Rule, error) {
	var node *core.AssignmentRule
	var metaID string
	err := m.handle.Write(func(n *core.Model) error {
		node = n.CreateAssignmentRule()
		metaID = node.MetaID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.logger.Log(log.Event{Op: log.OpCreate, Kind: "assignmentRule", ID: variable, MetaID: metaID})
	ruleHandle := AssignmentRuleAsRule(borrow.Wrap(m.ledger, node))
	return initRule(ruleHandle, variable, formula)
}

// Rules returns facades for the model's rules in insertion order.
func (m *Model) Rules() ([]*Rule, error) {
	var nodes []*core.Rule
	err := m.handle.Read(func(n *core.Model) error {
		nodes = n.Rules()
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]*Rule, len(nodes))
	for i, node := range nodes {
		out[i] = newRule(borrow.Wrap(m.ledger, node))
	}
	return out, nil
}

// Rule returns the first rule governing the given variable.
func (m *Model) Rule(variable string) (*Rule, error) {
	var node *core.Rule
	err := m.handle.Read(func(n *core.Model) error {
		node = n.Rule(variable)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("%w: rule for %q", ErrNotFound, variable)
	}
	return newRule(borrow.Wrap(m.ledger, node)), nil
}

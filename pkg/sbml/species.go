package sbml

import (
	"github.com/sbml-kit/sbml-go/pkg/borrow"
	"github.com/sbml-kit/sbml-go/pkg/core"
)

// Species is the facade over a species node.
type Species struct {
	sbase
	handle *borrow.Handle[core.Species]
}

func newSpecies(ledger *borrow.Ledger, node *core.Species) *Species {
	h := borrow.Wrap(ledger, node)
	return &Species{
		sbase:  sbase{base: SpeciesBase(h)},
		handle: h,
	}
}

// Handle returns the species' node handle.
func (s *Species) Handle() *borrow.Handle[core.Species] {
	return s.handle
}

// Compartment returns the containing compartment identifier.
func (s *Species) Compartment() (string, error) {
	var v string
	err := s.handle.Read(func(n *core.Species) error {
		v = n.Compartment()
		return nil
	})
	return v, err
}

// SetCompartment sets the containing compartment identifier.
func (s *Species) SetCompartment(compartment string) error {
	return s.handle.Write(func(n *core.Species) error {
		n.SetCompartment(compartment)
		return nil
	})
}

// InitialConcentration returns the initial concentration and whether
// one has been set.
func (s *Species) InitialConcentration() (float64, bool, error) {
	var (
		v  float64
		ok bool
	)
	err := s.handle.Read(func(n *core.Species) error {
		v, ok = n.InitialConcentration(), n.IsSetInitialConcentration()
		return nil
	})
	return v, ok, err
}

// SetInitialConcentration sets the initial concentration.
func (s *Species) SetInitialConcentration(c float64) error {
	return s.handle.Write(func(n *core.Species) error {
		n.SetInitialConcentration(c)
		return nil
	})
}

// BoundaryCondition returns the boundary-condition flag.
func (s *Species) BoundaryCondition() (bool, error) {
	var v bool
	err := s.handle.Read(func(n *core.Species) error {
		v = n.BoundaryCondition()
		return nil
	})
	return v, err
}

// SetBoundaryCondition sets the boundary-condition flag.
func (s *Species) SetBoundaryCondition(b bool) error {
	return s.handle.Write(func(n *core.Species) error {
		n.SetBoundaryCondition(b)
		return nil
	})
}

// Constant returns the constant flag.
func (s *Species) Constant() (bool, error) {
	var v bool
	err := s.handle.Read(func(n *core.Species) error {
		v = n.Constant()
		return nil
	})
	return v, err
}

// SetConstant sets the constant flag.
func (s *Species) SetConstant(constant bool) error {
	return s.handle.Write(func(n *core.Species) error {
		n.SetConstant(constant)
		return nil
	})
}

// SpeciesBuilder stages the configuration of a new species.
type SpeciesBuilder struct {
	species *Species
	err     error
}

// NewSpeciesBuilder creates a species in the model and returns its
// builder.
func NewSpeciesBuilder(model *Model, id string) *SpeciesBuilder {
	s, err := model.CreateSpecies(id)
	return &SpeciesBuilder{species: s, err: err}
}

// Compartment sets the containing compartment identifier.
func (b *SpeciesBuilder) Compartment(compartment string) *SpeciesBuilder {
	if b.err == nil {
		b.err = b.species.SetCompartment(compartment)
	}
	return b
}

// InitialConcentration sets the initial concentration.
func (b *SpeciesBuilder) InitialConcentration(c float64) *SpeciesBuilder {
	if b.err == nil {
		b.err = b.species.SetInitialConcentration(c)
	}
	return b
}

// BoundaryCondition sets the boundary-condition flag.
func (b *SpeciesBuilder) BoundaryCondition(v bool) *SpeciesBuilder {
	if b.err == nil {
		b.err = b.species.SetBoundaryCondition(v)
	}
	return b
}

// Constant sets the constant flag.
func (b *SpeciesBuilder) Constant(constant bool) *SpeciesBuilder {
	if b.err == nil {
		b.err = b.species.SetConstant(constant)
	}
	return b
}

// Annotation attaches raw annotation markup.
func (b *SpeciesBuilder) Annotation(text string) *SpeciesBuilder {
	if b.err == nil {
		b.err = b.species.SetAnnotation(text)
	}
	return b
}

// AnnotationValue serializes v into the species' annotation container.
func (b *SpeciesBuilder) AnnotationValue(v any) *SpeciesBuilder {
	if b.err == nil {
		b.err = b.species.SetAnnotationValue(v)
	}
	return b
}

// Build returns the configured species, or the first error raised while
// staging it.
func (b *SpeciesBuilder) Build() (*Species, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.species, nil
}

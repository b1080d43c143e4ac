package sbml

import (
	"fmt"

	"github.com/sbml-kit/sbml-go/pkg/borrow"
	"github.com/sbml-kit/sbml-go/pkg/core"
)

// SpeciesReferenceType is the logical role of a species reference within
// its reaction, derived by probing the node's discriminant predicates.
type SpeciesReferenceType int

const (
	// SpeciesReferenceTypeReactant marks a reactant reference.
	SpeciesReferenceTypeReactant SpeciesReferenceType = iota + 1

	// SpeciesReferenceTypeProduct marks a product reference.
	SpeciesReferenceTypeProduct
)

// String returns the reference type name.
func (t SpeciesReferenceType) String() string {
	switch t {
	case SpeciesReferenceTypeReactant:
		return "reactant"
	case SpeciesReferenceTypeProduct:
		return "product"
	default:
		return "unknown"
	}
}

// SpeciesReference is the facade over a reactant or product reference.
// The species accessor pair is declared on the SimpleSpeciesReference
// base, so those operations go through the upcast view.
type SpeciesReference struct {
	sbase
	handle *borrow.Handle[core.SpeciesReference]
	simple *borrow.Handle[core.SimpleSpeciesReference]
}

func newSpeciesReference(ledger *borrow.Ledger, node *core.SpeciesReference) *SpeciesReference {
	h := borrow.Wrap(ledger, node)
	return &SpeciesReference{
		sbase:  sbase{base: SpeciesReferenceBase(h)},
		handle: h,
		simple: SpeciesReferenceAsSimple(h),
	}
}

// initSpeciesReference sets the creation-time species identifier through
// the base view.
func initSpeciesReference(ledger *borrow.Ledger, node *core.SpeciesReference, species string) (*SpeciesReference, error) {
	ref := newSpeciesReference(ledger, node)
	if err := ref.SetSpecies(species); err != nil {
		return nil, err
	}
	return ref, nil
}

// Handle returns the reference's node handle.
func (r *SpeciesReference) Handle() *borrow.Handle[core.SpeciesReference] {
	return r.handle
}

// Simple returns the reference's handle upcast to the
// SimpleSpeciesReference base view.
func (r *SpeciesReference) Simple() *borrow.Handle[core.SimpleSpeciesReference] {
	return r.simple
}

// Species returns the identifier of the referenced species.
func (r *SpeciesReference) Species() (string, error) {
	var v string
	err := r.simple.Read(func(n *core.SimpleSpeciesReference) error {
		v = n.Species()
		return nil
	})
	return v, err
}

// SetSpecies sets the identifier of the referenced species.
func (r *SpeciesReference) SetSpecies(species string) error {
	return r.simple.Write(func(n *core.SimpleSpeciesReference) error {
		n.SetSpecies(species)
		return nil
	})
}

// Stoichiometry returns the stoichiometric coefficient.
func (r *SpeciesReference) Stoichiometry() (float64, error) {
	var v float64
	err := r.handle.Read(func(n *core.SpeciesReference) error {
		v = n.Stoichiometry()
		return nil
	})
	return v, err
}

// SetStoichiometry sets the stoichiometric coefficient.
func (r *SpeciesReference) SetStoichiometry(v float64) error {
	return r.handle.Write(func(n *core.SpeciesReference) error {
		n.SetStoichiometry(v)
		return nil
	})
}

// Constant returns the constant flag.
func (r *SpeciesReference) Constant() (bool, error) {
	var v bool
	err := r.handle.Read(func(n *core.SpeciesReference) error {
		v = n.Constant()
		return nil
	})
	return v, err
}

// SetConstant sets the constant flag.
func (r *SpeciesReference) SetConstant(constant bool) error {
	return r.handle.Write(func(n *core.SpeciesReference) error {
		n.SetConstant(constant)
		return nil
	})
}

// Type probes the node's discriminant predicates and returns the
// reference's role. A node matching neither predicate yields
// ErrUnknownReferenceType.
func (r *SpeciesReference) Type() (SpeciesReferenceType, error) {
	var t SpeciesReferenceType
	err := r.handle.Read(func(n *core.SpeciesReference) error {
		switch {
		case n.IsReactant():
			t = SpeciesReferenceTypeReactant
		case n.IsProduct():
			t = SpeciesReferenceTypeProduct
		default:
			return fmt.Errorf("%w: reference matches no discriminant predicate", ErrUnknownReferenceType)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return t, nil
}

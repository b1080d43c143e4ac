package core

// Reaction is a transformation between species, owning its reactant and
// product species references.
type Reaction struct {
	SBase
	reversible bool
	reactants  []*SpeciesReference
	products   []*SpeciesReference
}

// Reversible returns the reversibility flag.
func (r *Reaction) Reversible() bool {
	return r.reversible
}

// SetReversible sets the reversibility flag.
func (r *Reaction) SetReversible(reversible bool) {
	r.reversible = reversible
}

// CreateReactant creates a reactant species reference with defaults
// applied and appends it to the reactant list. The species identifier
// is set afterwards through the SimpleSpeciesReference base.
func (r *Reaction) CreateReactant() *SpeciesReference {
	sr := newSpeciesReference(refKindReactant)
	r.reactants = append(r.reactants, sr)
	return sr
}

// CreateProduct creates a product species reference with defaults
// applied and appends it to the product list.
func (r *Reaction) CreateProduct() *SpeciesReference {
	sr := newSpeciesReference(refKindProduct)
	r.products = append(r.products, sr)
	return sr
}

// Reactants returns the reactant list in insertion order.
func (r *Reaction) Reactants() []*SpeciesReference {
	out := make([]*SpeciesReference, len(r.reactants))
	copy(out, r.reactants)
	return out
}

// Products returns the product list in insertion order.
func (r *Reaction) Products() []*SpeciesReference {
	out := make([]*SpeciesReference, len(r.products))
	copy(out, r.products)
	return out
}

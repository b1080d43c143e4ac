package core

// refKind discriminates reactant and product references. Queried through
// the IsReactant/IsProduct predicates.
type refKind uint8

const (
	refKindUnknown refKind = iota
	refKindReactant
	refKindProduct
)

// SimpleSpeciesReference is the shared base of species references. The
// species accessor pair is declared here and only here; a concrete
// reference reaches it through its leading embedded base.
type SimpleSpeciesReference struct {
	SBase
	species string
}

// Species returns the identifier of the referenced species.
func (s *SimpleSpeciesReference) Species() string {
	return s.species
}

// SetSpecies sets the identifier of the referenced species.
func (s *SimpleSpeciesReference) SetSpecies(species string) {
	s.species = species
}

// SpeciesReference is a reactant or product reference within a reaction,
// carrying a stoichiometric coefficient and a constant flag.
type SpeciesReference struct {
	SimpleSpeciesReference
	stoichiometry float64
	constant      bool
	kind          refKind
}

func newSpeciesReference(kind refKind) *SpeciesReference {
	sr := &SpeciesReference{kind: kind}
	sr.initSBase()
	sr.InitDefaults()
	return sr
}

// InitDefaults applies the schema defaults: stoichiometry 1, constant.
func (s *SpeciesReference) InitDefaults() {
	s.stoichiometry = 1
	s.constant = true
}

// Stoichiometry returns the stoichiometric coefficient.
func (s *SpeciesReference) Stoichiometry() float64 {
	return s.stoichiometry
}

// SetStoichiometry sets the stoichiometric coefficient.
func (s *SpeciesReference) SetStoichiometry(v float64) {
	s.stoichiometry = v
}

// Constant returns the constant flag.
func (s *SpeciesReference) Constant() bool {
	return s.constant
}

// SetConstant sets the constant flag.
func (s *SpeciesReference) SetConstant(constant bool) {
	s.constant = constant
}

// IsReactant reports whether this reference sits in a reactant list.
func (s *SpeciesReference) IsReactant() bool {
	return s.kind == refKindReactant
}

// IsProduct reports whether this reference sits in a product list.
func (s *SpeciesReference) IsProduct() bool {
	return s.kind == refKindProduct
}

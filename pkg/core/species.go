package core

// Species is a chemical entity pool within a compartment.
type Species struct {
	SBase
	compartment          string
	initialConcentration float64
	concentrationSet     bool
	boundaryCondition    bool
	constant             bool
}

// Compartment returns the identifier of the containing compartment.
func (s *Species) Compartment() string {
	return s.compartment
}

// SetCompartment sets the containing compartment identifier.
func (s *Species) SetCompartment(compartment string) {
	s.compartment = compartment
}

// InitialConcentration returns the initial concentration, zero if unset.
// Check IsSetInitialConcentration to distinguish an explicit zero.
func (s *Species) InitialConcentration() float64 {
	return s.initialConcentration
}

// IsSetInitialConcentration reports whether an initial concentration has
// been set.
func (s *Species) IsSetInitialConcentration() bool {
	return s.concentrationSet
}

// SetInitialConcentration sets the initial concentration.
func (s *Species) SetInitialConcentration(c float64) {
	s.initialConcentration = c
	s.concentrationSet = true
}

// BoundaryCondition returns the boundary-condition flag.
func (s *Species) BoundaryCondition() bool {
	return s.boundaryCondition
}

// SetBoundaryCondition sets the boundary-condition flag.
func (s *Species) SetBoundaryCondition(b bool) {
	s.boundaryCondition = b
}

// Constant returns the constant flag.
func (s *Species) Constant() bool {
	return s.constant
}

// SetConstant sets the constant flag.
func (s *Species) SetConstant(constant bool) {
	s.constant = constant
}

package core

// Parameter is a named value in a model: constant or variable, with an
// optional numeric value and a units string.
type Parameter struct {
	SBase
	value       float64
	valueSet    bool
	units       string
	constant    bool
	constantSet bool
}

// InitDefaults applies the schema defaults: parameters are constant
// unless declared otherwise. The default is not considered explicitly
// set.
func (p *Parameter) InitDefaults() {
	p.constant = true
	p.constantSet = false
}

// Value returns the numeric value, zero if unset. Check IsSetValue to
// distinguish an explicit zero.
func (p *Parameter) Value() float64 {
	return p.value
}

// IsSetValue reports whether a value has been set.
func (p *Parameter) IsSetValue() bool {
	return p.valueSet
}

// SetValue sets the numeric value.
func (p *Parameter) SetValue(v float64) {
	p.value = v
	p.valueSet = true
}

// Units returns the units string, empty if unset.
func (p *Parameter) Units() string {
	return p.units
}

// SetUnits sets the units string.
func (p *Parameter) SetUnits(units string) {
	p.units = units
}

// Constant returns the value of the constant flag.
func (p *Parameter) Constant() bool {
	return p.constant
}

// IsSetConstant reports whether the constant flag was explicitly set.
func (p *Parameter) IsSetConstant() bool {
	return p.constantSet
}

// SetConstant sets the constant flag.
func (p *Parameter) SetConstant(constant bool) {
	p.constant = constant
	p.constantSet = true
}

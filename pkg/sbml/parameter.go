package sbml

import (
	"github.com/sbml-kit/sbml-go/pkg/borrow"
	"github.com/sbml-kit/sbml-go/pkg/core"
)

// Parameter is the facade over a parameter node.
type Parameter struct {
	sbase
	handle *borrow.Handle[core.Parameter]
}

func newParameter(ledger *borrow.Ledger, node *core.Parameter) *Parameter {
	h := borrow.Wrap(ledger, node)
	return &Parameter{
		sbase:  sbase{base: ParameterBase(h)},
		handle: h,
	}
}

// Handle returns the parameter's node handle.
func (p *Parameter) Handle() *borrow.Handle[core.Parameter] {
	return p.handle
}

// Value returns the numeric value and whether one has been set.
func (p *Parameter) Value() (float64, bool, error) {
	var (
		v  float64
		ok bool
	)
	err := p.handle.Read(func(n *core.Parameter) error {
		v, ok = n.Value(), n.IsSetValue()
		return nil
	})
	return v, ok, err
}

// SetValue sets the numeric value.
func (p *Parameter) SetValue(v float64) error {
	return p.handle.Write(func(n *core.Parameter) error {
		n.SetValue(v)
		return nil
	})
}

// Units returns the units string.
func (p *Parameter) Units() (string, error) {
	var v string
	err := p.handle.Read(func(n *core.Parameter) error {
		v = n.Units()
		return nil
	})
	return v, err
}

// SetUnits sets the units string.
func (p *Parameter) SetUnits(units string) error {
	return p.handle.Write(func(n *core.Parameter) error {
		n.SetUnits(units)
		return nil
	})
}

// Constant returns the value of the constant flag. This reads the flag
// itself, not the is-set predicate; use IsSetConstant for the latter.
func (p *Parameter) Constant() (bool, error) {
	var v bool
	err := p.handle.Read(func(n *core.Parameter) error {
		v = n.Constant()
		return nil
	})
	return v, err
}

// IsSetConstant reports whether the constant flag was explicitly set.
func (p *Parameter) IsSetConstant() (bool, error) {
	var v bool
	err := p.handle.Read(func(n *core.Parameter) error {
		v = n.IsSetConstant()
		return nil
	})
	return v, err
}

// SetConstant sets the constant flag.
func (p *Parameter) SetConstant(constant bool) error {
	return p.handle.Write(func(n *core.Parameter) error {
		n.SetConstant(constant)
		return nil
	})
}

// ParameterBuilder stages the configuration of a new parameter. The
// entity is created up front; setters chain and the first error stops
// the chain.
type ParameterBuilder struct {
	parameter *Parameter
	err       error
}

// NewParameterBuilder creates a parameter in the model and returns its
// builder.
func NewParameterBuilder(model *Model, id string) *ParameterBuilder {
	p, err := model.CreateParameter(id)
	return &ParameterBuilder{parameter: p, err: err}
}

// Value sets the numeric value.
func (b *ParameterBuilder) Value(v float64) *ParameterBuilder {
	if b.err == nil {
		b.err = b.parameter.SetValue(v)
	}
	return b
}

// Units sets the units string.
func (b *ParameterBuilder) Units(units string) *ParameterBuilder {
	if b.err == nil {
		b.err = b.parameter.SetUnits(units)
	}
	return b
}

// Constant sets the constant flag.
func (b *ParameterBuilder) Constant(constant bool) *ParameterBuilder {
	if b.err == nil {
		b.err = b.parameter.SetConstant(constant)
	}
	return b
}

// Name sets the human-readable name.
func (b *ParameterBuilder) Name(name string) *ParameterBuilder {
	if b.err == nil {
		b.err = b.parameter.SetName(name)
	}
	return b
}

// Annotation attaches raw annotation markup.
func (b *ParameterBuilder) Annotation(text string) *ParameterBuilder {
	if b.err == nil {
		b.err = b.parameter.SetAnnotation(text)
	}
	return b
}

// AnnotationValue serializes v into the parameter's annotation
// container.
func (b *ParameterBuilder) AnnotationValue(v any) *ParameterBuilder {
	if b.err == nil {
		b.err = b.parameter.SetAnnotationValue(v)
	}
	return b
}

// Build returns the configured parameter, or the first error raised
// while staging it.
func (b *ParameterBuilder) Build() (*Parameter, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.parameter, nil
}

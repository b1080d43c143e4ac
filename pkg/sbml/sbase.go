package sbml

import (
	"github.com/sbml-kit/sbml-go/pkg/annotation"
	"github.com/sbml-kit/sbml-go/pkg/borrow"
	"github.com/sbml-kit/sbml-go/pkg/core"
)

// Annotated is the surface shared by every entity facade: access to the
// node's SBase view for annotation and base-attribute operations.
type Annotated interface {
	// SBaseHandle returns the facade's handle upcast to the SBase view.
	SBaseHandle() *borrow.Handle[core.SBase]
}

// sbase is embedded by every facade and carries the base-attribute and
// annotation surface over the upcast SBase handle.
type sbase struct {
	base *borrow.Handle[core.SBase]
}

// SBaseHandle implements Annotated.
func (s *sbase) SBaseHandle() *borrow.Handle[core.SBase] {
	return s.base
}

// MetaID returns the node's creation-time meta ID.
func (s *sbase) MetaID() (string, error) {
	var v string
	err := s.base.Read(func(n *core.SBase) error {
		v = n.MetaID()
		return nil
	})
	return v, err
}

// ID returns the node identifier.
func (s *sbase) ID() (string, error) {
	var v string
	err := s.base.Read(func(n *core.SBase) error {
		v = n.ID()
		return nil
	})
	return v, err
}

// SetID sets the node identifier.
func (s *sbase) SetID(id string) error {
	return s.base.Write(func(n *core.SBase) error {
		n.SetID(id)
		return nil
	})
}

// Name returns the human-readable name.
func (s *sbase) Name() (string, error) {
	var v string
	err := s.base.Read(func(n *core.SBase) error {
		v = n.Name()
		return nil
	})
	return v, err
}

// SetName sets the human-readable name.
func (s *sbase) SetName(name string) error {
	return s.base.Write(func(n *core.SBase) error {
		n.SetName(name)
		return nil
	})
}

// SBOTerm returns the SBO term identifier.
func (s *sbase) SBOTerm() (string, error) {
	var v string
	err := s.base.Read(func(n *core.SBase) error {
		v = n.SBOTerm()
		return nil
	})
	return v, err
}

// SetSBOTerm sets the SBO term identifier.
func (s *sbase) SetSBOTerm(term string) error {
	return s.base.Write(func(n *core.SBase) error {
		n.SetSBOTerm(term)
		return nil
	})
}

// SetAnnotation attaches raw annotation markup to the node, wrapping it
// in the reserved container element unless already wrapped.
func (s *sbase) SetAnnotation(text string) error {
	return annotation.SetRaw(s.base, text)
}

// Annotation returns the node's annotation container markup, empty if
// none is present.
func (s *sbase) Annotation() (string, error) {
	return annotation.Raw(s.base)
}

// SetAnnotationValue serializes v and merges it into the node's
// annotation container, replacing only the element with the matching
// type tag.
func (s *sbase) SetAnnotationValue(v any) error {
	return annotation.SetValue(s.base, v)
}

// AnnotationValue locates the type-tagged element for T in the entity's
// annotation container and decodes it.
func AnnotationValue[T any](e Annotated) (T, error) {
	return annotation.Value[T](e.SBaseHandle())
}

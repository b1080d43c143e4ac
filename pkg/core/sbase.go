package core

import "github.com/google/uuid"

// SBase is the base state shared by every node in the document tree.
// It is always the first field of a concrete node type, so &node.SBase
// and &node address the same memory.
type SBase struct {
	metaID     string
	id         string
	name       string
	sboTerm    string
	annotation string // raw <annotation> container markup; empty when absent
}

// initSBase assigns the creation-time meta ID. Called by every factory.
func (s *SBase) initSBase() {
	s.metaID = uuid.NewString()
}

// MetaID returns the node's meta ID, assigned once at creation.
func (s *SBase) MetaID() string {
	return s.metaID
}

// SetMetaID replaces the meta ID. Only meant for rebuilding a tree from
// a serialized form; new nodes get their meta ID from the factory.
func (s *SBase) SetMetaID(id string) {
	s.metaID = id
}

// ID returns the node identifier.
func (s *SBase) ID() string {
	return s.id
}

// SetID sets the node identifier. Uniqueness within a collection is not
// enforced here.
func (s *SBase) SetID(id string) {
	s.id = id
}

// Name returns the human-readable name, empty if unset.
func (s *SBase) Name() string {
	return s.name
}

// SetName sets the human-readable name.
func (s *SBase) SetName(name string) {
	s.name = name
}

// SBOTerm returns the SBO term identifier, empty if unset.
func (s *SBase) SBOTerm() string {
	return s.sboTerm
}

// SetSBOTerm sets the SBO term identifier.
func (s *SBase) SetSBOTerm(term string) {
	s.sboTerm = term
}

// AnnotationString returns the raw annotation container markup.
// Empty string means no annotation is present.
func (s *SBase) AnnotationString() string {
	return s.annotation
}

// SetAnnotationString replaces the raw annotation container markup.
// The text is stored verbatim; validation is the caller's concern.
func (s *SBase) SetAnnotationString(markup string) {
	s.annotation = markup
}

// IsSetAnnotation reports whether an annotation container is present.
func (s *SBase) IsSetAnnotation() bool {
	return s.annotation != ""
}

// UnsetAnnotation removes the annotation container.
func (s *SBase) UnsetAnnotation() {
	s.annotation = ""
}

package core

// Default SBML schema version for documents created without an explicit one.
const (
	DefaultLevel   uint = 3
	DefaultVersion uint = 2
)

// Document is the root owner of the document tree. It owns at most one
// Model and declares the schema version the tree conforms to.
type Document struct {
	SBase
	level   uint
	version uint
	model   *Model
}

// NewDocument creates an empty document with the given schema version.
func NewDocument(level, version uint) *Document {
	d := &Document{level: level, version: version}
	d.initSBase()
	return d
}

// Level returns the schema major version.
func (d *Document) Level() uint {
	return d.level
}

// Version returns the schema minor version.
func (d *Document) Version() uint {
	return d.version
}

// CreateModel creates the document's model with the given identifier,
// replacing any existing model. The previous model and its entire
// subtree are abandoned; any handles into it are dead.
func (d *Document) CreateModel(id string) *Model {
	m := &Model{}
	m.initSBase()
	m.SetID(id)
	d.model = m
	return m
}

// Model returns the document's model, nil if none has been created.
func (d *Document) Model() *Model {
	return d.model
}

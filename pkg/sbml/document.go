package sbml

import (
	"fmt"

	"github.com/sbml-kit/sbml-go/pkg/borrow"
	"github.com/sbml-kit/sbml-go/pkg/core"
	"github.com/sbml-kit/sbml-go/pkg/log"
	"github.com/sbml-kit/sbml-go/pkg/sbmlxml"
)

// SBMLDocument is the root facade. It owns the borrow ledger every
// descendant handle is issued from; all facades into one tree must come
// from the same document.
type SBMLDocument struct {
	sbase
	ledger *borrow.Ledger
	handle *borrow.Handle[core.Document]
	logger log.Logger
}

// NewSBMLDocument creates an empty document with the given schema
// version.
func NewSBMLDocument(level, version uint) *SBMLDocument {
	return WrapDocument(core.NewDocument(level, version))
}

// DefaultDocument creates an empty document with the default schema
// version.
func DefaultDocument() *SBMLDocument {
	return NewSBMLDocument(core.DefaultLevel, core.DefaultVersion)
}

// WrapDocument builds the facade layer over an existing core document,
// starting a fresh borrow ledger for its tree. Used after reading a
// document from markup or a snapshot.
func WrapDocument(node *core.Document) *SBMLDocument {
	ledger := borrow.NewLedger()
	h := borrow.Wrap(ledger, node)
	return &SBMLDocument{
		sbase:  sbase{base: DocumentBase(h)},
		ledger: ledger,
		handle: h,
		logger: log.NoopLogger{},
	}
}

// SetLogger installs the event logger for this document's tree. Nil
// disables logging.
func (d *SBMLDocument) SetLogger(l log.Logger) {
	if l == nil {
		l = log.NoopLogger{}
	}
	d.logger = l
}

// ReadXMLString parses document markup and wraps the resulting tree.
func ReadXMLString(text string) (*SBMLDocument, error) {
	node, err := sbmlxml.Read(text)
	if err != nil {
		return nil, err
	}
	return WrapDocument(node), nil
}

// Handle returns the document's node handle.
func (d *SBMLDocument) Handle() *borrow.Handle[core.Document] {
	return d.handle
}

// Level returns the schema major version.
func (d *SBMLDocument) Level() (uint, error) {
	var v uint
	err := d.handle.Read(func(n *core.Document) error {
		v = n.Level()
		return nil
	})
	return v, err
}

// Version returns the schema minor version.
func (d *SBMLDocument) Version() (uint, error) {
	var v uint
	err := d.handle.Read(func(n *core.Document) error {
		v = n.Version()
		return nil
	})
	return v, err
}

// CreateModel creates the document's model, replacing any existing one.
// Handles into a replaced model are dead; do not retain them.
func (d *SBMLDocument) CreateModel(id string) (*Model, error) {
	var node *core.Model
	var metaID string
	err := d.handle.Write(func(n *core.Document) error {
		node = n.CreateModel(id)
		metaID = node.MetaID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	d.logger.Log(log.Event{Op: log.OpCreate, Kind: "model", ID: id, MetaID: metaID})
	return newModel(d.ledger, node, d.logger), nil
}

// Model returns the document's model. ErrNotFound if none has been
// created.
func (d *SBMLDocument) Model() (*Model, error) {
	var node *core.Model
	err := d.handle.Read(func(n *core.Document) error {
		node = n.Model()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("%w: document has no model", ErrNotFound)
	}
	return newModel(d.ledger, node, d.logger), nil
}

// XMLString serializes the whole document to markup. The serialization
// holds a shared borrow on the document node for its duration.
func (d *SBMLDocument) XMLString() (string, error) {
	var out string
	err := d.handle.Read(func(n *core.Document) error {
		var werr error
		out, werr = sbmlxml.Write(n)
		return werr
	})
	if err == nil {
		d.logger.Log(log.Event{Op: log.OpSerialize})
	}
	return out, err
}

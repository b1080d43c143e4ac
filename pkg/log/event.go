package log

// Op is the kind of document operation an event describes.
type Op int

const (
	// OpCreate marks the creation of a node in the tree.
	OpCreate Op = iota + 1

	// OpSerialize marks a whole-document serialization.
	OpSerialize

	// OpParse marks a whole-document parse.
	OpParse
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpSerialize:
		return "serialize"
	case OpParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Event is one document operation.
type Event struct {
	// Op is what happened.
	Op Op

	// Kind is the node kind the operation touched, such as "parameter"
	// or "reaction". Empty for whole-document operations.
	Kind string

	// ID is the node identifier, empty when the node has none.
	ID string

	// MetaID is the node's meta ID, empty for whole-document operations.
	MetaID string
}

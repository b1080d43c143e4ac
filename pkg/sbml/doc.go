// Package sbml exposes the document model through typed, borrow-checked
// entity facades.
//
// # Facades
//
// A facade (SBMLDocument, Model, Parameter, Species, Reaction, Rule,
// SpeciesReference) is a thin view pairing a node handle with typed
// accessors. Facades hold no node state of their own: every accessor
// acquires a scoped borrow from the owning document's ledger, performs
// the access in place, and releases the borrow before returning.
// Conflicting access surfaces as borrow.ErrBorrowConflict.
//
//	doc := sbml.NewSBMLDocument(3, 2)
//	model, _ := doc.CreateModel("m")
//	p, _ := sbml.NewParameterBuilder(model, "k1").
//		Value(1.0).
//		Units("mole").
//		Constant(true).
//		Build()
//
// # Upcasts
//
// Some operations live on a base type of the node's inheritance chain;
// setting the species identifier of a species reference, for example,
// is declared on SimpleSpeciesReference. The conversions in upcast.go
// reinterpret a handle along its declared chain without copying the
// node; the result shares the source handle's borrow tracker, so
// exclusivity spans the conversion. Only the chains declared there are
// valid — they correspond to leading embedded bases in the core layout.
//
// # Variants
//
// Rule and species-reference variants are not stored on the facade;
// Type probes the core discriminant predicates at call time, first
// match wins, and a node matching none yields ErrUnknownRuleType or
// ErrUnknownReferenceType rather than an arbitrary default.
//
// # Annotations
//
// Every facade embeds the shared base surface: SetAnnotation,
// Annotation, SetAnnotationValue, plus identifier, name, and SBO term
// accessors. Typed annotation reads go through the package-level
// AnnotationValue function, which needs the concrete type:
//
//	meta, err := sbml.AnnotationValue[SimulationMeta](p)
//
// The package is single-threaded, like the bridge underneath it.
package sbml

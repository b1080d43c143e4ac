// Package core implements the native SBML document object model.
//
// # Ownership Tree
//
// The document model is a strict ownership tree:
//
//	Document
//	└── Model
//	    ├── Parameter*
//	    ├── Species*
//	    ├── Reaction*
//	    │   ├── SpeciesReference* (reactants)
//	    │   └── SpeciesReference* (products)
//	    └── Rule* (RateRule | AssignmentRule)
//
// Every non-root node has exactly one owner, and the only way a node
// enters the tree is through its owner's factory method
// (Document.CreateModel, Model.CreateParameter, Reaction.CreateReactant,
// and so on). There is no destroy operation; a node's lifetime ends with
// its owner.
//
// # Node Base Layout
//
// SBase carries the state shared by every node: meta ID, identifier,
// name, SBO term, and the raw annotation container. It is embedded as
// the first field of every concrete node type, so a pointer to the
// embedded base has the same address as the node itself. The borrow
// and upcast layers depend on that leading-base layout; concrete node
// types must not move the base behind other fields.
//
// # Inheritance Chains
//
// The chains are shallow, single, and non-branching:
//
//	every entity                → SBase
//	RateRule, AssignmentRule    → Rule
//	SpeciesReference            → SimpleSpeciesReference → SBase
//
// The species accessor pair is declared on SimpleSpeciesReference only,
// matching the native library this model mirrors.
//
// # Annotation Boundary
//
// Nodes store their annotation as the raw markup text of a single
// <annotation> container element. The core performs no markup
// interpretation; parsing, merging, and typed access live in the
// annotation package.
//
// This package is single-threaded by design. Callers outside the
// library reach it exclusively through borrow handles (see the borrow
// and sbml packages).
package core

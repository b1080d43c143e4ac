// Package sbmlxml serializes document trees to SBML markup and parses
// them back.
//
// # Layout
//
// The wire layout follows the SBML container conventions: an <sbml>
// root carrying the level and version, one <model>, and listOf*
// containers for the entity collections. Rule variants keep their
// document order inside <listOfRules>.
//
// # Annotations
//
// Annotation containers are carried verbatim. The writer emits the
// node's raw container content unescaped and the reader stores it back
// unparsed, so foreign annotation markup survives a round trip
// byte-for-byte.
//
// # Fidelity
//
// Reading rebuilds the tree through the core factories and then
// restores serialized attributes, including meta IDs. Set-state of
// optional attributes (parameter value, parameter constant, species
// initial concentration) is preserved: absent attributes stay unset.
package sbmlxml

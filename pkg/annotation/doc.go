// Package annotation reads and writes the reserved <annotation>
// container on document nodes.
//
// # Container Shape
//
// Every node owns at most one annotation container:
//
//	<annotation>
//	  ...one or more tool- or namespace-scoped elements...
//	</annotation>
//
// Independent tools store their payloads under their own uniquely named
// child elements, so unrelated annotations coexist without collision.
//
// # Raw and Typed Modes
//
// SetRaw attaches caller-supplied markup, wrapping it in the container
// element unless it is already wrapped. Raw returns the container text
// regardless of how it was set.
//
// SetValue serializes a Go value through a Codec into a type-tagged
// child element and merges it into the container: only the child with
// the matching tag is replaced, every other child is preserved
// byte-for-byte. Value locates the tag for the requested type and
// decodes it.
//
// # Errors
//
// Markup that does not parse is rejected with ErrMalformedMarkup and
// the node is left unchanged. A typed read distinguishes a missing tag
// (ErrAnnotationNotFound) from a tag that exists but does not decode
// into the requested type (ErrSchemaMismatch). All failures surface
// synchronously; nothing is retried.
//
// All operations take a node handle: access to the container is
// borrow-checked like any other node access.
package annotation

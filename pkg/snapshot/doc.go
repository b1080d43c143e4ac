// Package snapshot encodes document trees to a compact CBOR form and
// restores them.
//
// Snapshots use CBOR (RFC 8949) with integer keys and deterministic
// encoding, so the same tree always produces the same bytes. Unlike the
// markup form, a snapshot preserves every field of the tree exactly,
// including set-state of optional attributes and raw annotation
// containers.
//
// # Versioning
//
// Every snapshot starts with a format version. Decoding rejects
// versions it does not know with ErrUnsupportedVersion; unknown keys
// inside a known version are ignored for forward compatibility.
package snapshot

// Package persistence provides on-disk storage for document snapshots.
//
// A Store keeps one snapshot file per named document under a base
// directory. Documents survive process restarts; the snapshot format
// preserves the full tree including annotation containers and set-state
// of optional attributes.
package persistence

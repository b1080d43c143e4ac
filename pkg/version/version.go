// Package version provides SBML schema version parsing, comparison, and
// namespace helpers.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the schema version documents are created with by default.
const Current = "3.2"

// SchemaVersion represents a parsed "level.version" SBML schema version.
type SchemaVersion struct {
	Level   uint
	Version uint
}

// Parse parses a "level.version" schema version string.
func Parse(s string) (SchemaVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return SchemaVersion{}, fmt.Errorf("invalid schema version %q: expected level.version", s)
	}

	level, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil || parts[0] == "" {
		return SchemaVersion{}, fmt.Errorf("invalid schema version %q: bad level component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil || parts[1] == "" {
		return SchemaVersion{}, fmt.Errorf("invalid schema version %q: bad version component", s)
	}

	return SchemaVersion{Level: uint(level), Version: uint(minor)}, nil
}

// String returns the schema version as "level.version".
func (v SchemaVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Level, v.Version)
}

// Compatible returns true if the other version has the same level.
func (v SchemaVersion) Compatible(other SchemaVersion) bool {
	return v.Level == other.Level
}

// Namespace returns the core XML namespace for a schema version.
func (v SchemaVersion) Namespace() string {
	return fmt.Sprintf("http://www.sbml.org/sbml/level%d/version%d/core", v.Level, v.Version)
}

// FromNamespace extracts the schema version from a core XML namespace
// string.
func FromNamespace(ns string) (SchemaVersion, error) {
	const prefix = "http://www.sbml.org/sbml/level"
	if !strings.HasPrefix(ns, prefix) {
		return SchemaVersion{}, fmt.Errorf("not an SBML core namespace: %q", ns)
	}

	rest := ns[len(prefix):]
	rest, ok := strings.CutSuffix(rest, "/core")
	if !ok {
		return SchemaVersion{}, fmt.Errorf("not an SBML core namespace: %q", ns)
	}

	levelStr, versionStr, ok := strings.Cut(rest, "/version")
	if !ok {
		return SchemaVersion{}, fmt.Errorf("missing version component in namespace: %q", ns)
	}

	level, err := strconv.ParseUint(levelStr, 10, 32)
	if err != nil {
		return SchemaVersion{}, fmt.Errorf("invalid level in namespace %q: %w", ns, err)
	}
	minor, err := strconv.ParseUint(versionStr, 10, 32)
	if err != nil {
		return SchemaVersion{}, fmt.Errorf("invalid version in namespace %q: %w", ns, err)
	}

	return SchemaVersion{Level: uint(level), Version: uint(minor)}, nil
}

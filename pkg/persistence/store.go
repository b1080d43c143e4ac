package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sbml-kit/sbml-go/pkg/core"
	"github.com/sbml-kit/sbml-go/pkg/snapshot"
)

const snapshotExt = ".snap"

// Store manages persistence of document snapshots in a directory.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore creates a store rooted at dir. The directory is created on
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save persists the document under the given name, replacing any
// previous snapshot with that name.
func (s *Store) Save(name string, doc *core.Document) error {
	if err := validateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := snapshot.Encode(doc)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path(name), data, 0644)
}

// Load reads the named document from disk.
// Returns nil, nil if no snapshot with that name exists.
func (s *Store) Load(name string) (*core.Document, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	doc, err := snapshot.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", name, err)
	}
	return doc, nil
}

// List returns the names of all stored documents, sorted.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), snapshotExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), snapshotExt))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the named snapshot. Deleting a missing snapshot is not
// an error.
func (s *Store) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+snapshotExt)
}

// validateName rejects names that would escape the store directory.
func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty document name")
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("invalid document name %q", name)
	}
	return nil
}

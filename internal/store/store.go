// Package store provides persistence for user-defined spending
// categories and their keyword sets.
package store

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/avoort95/finance-dashboard/internal/logging"
	"github.com/avoort95/finance-dashboard/internal/models"

	"gopkg.in/yaml.v3"
)

// Category is one user-defined spending category with its keyword set.
// Keywords are stored case-preserving; matching lowercases them.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoryStore is an ordered mapping of category name to keyword set.
// The order categories were added in is preserved both in memory and in
// the persisted file; the categorizer's overwrite semantics depend on it.
//
// Every mutation is written through to the backing file immediately, so
// a crash loses at most the mutation in flight. Mutations and the
// persist that follows them are serialized by a mutex.
type CategoryStore struct {
	path   string
	logger logging.Logger

	mu         sync.Mutex
	categories []Category
}

// Load reads the category store from path. A missing file is not an
// error: it yields a store containing only the default category.
// Unreadable or undecodable data fails with MalformedStoreError.
func Load(path string, logger logging.Logger) (*CategoryStore, error) {
	s := &CategoryStore{path: path, logger: logger}

	data, err := os.ReadFile(path) // #nosec G304 -- store path is user configuration
	if err != nil {
		if os.IsNotExist(err) {
			logger.WithField(logging.FieldFile, path).Debug("No category store found, starting with defaults")
			s.categories = []Category{{Name: models.CategoryUncategorized}}
			return s, nil
		}
		return nil, &MalformedStoreError{Path: path, Err: err}
	}

	categories, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, &MalformedStoreError{Path: path, Err: err}
	}
	s.categories = ensureDefault(categories)

	logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(s.categories)},
	).Debug("Loaded category store")
	return s, nil
}

// LoadFrom reads a category store from a byte stream. The resulting
// store has no backing file, so it cannot persist; it is intended for
// collaborators that manage persistence themselves and for tests.
func LoadFrom(r io.Reader, logger logging.Logger) (*CategoryStore, error) {
	categories, err := decode(r)
	if err != nil {
		return nil, &MalformedStoreError{Err: err}
	}
	return &CategoryStore{
		logger:     logger,
		categories: ensureDefault(categories),
	}, nil
}

func decode(r io.Reader) ([]Category, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var categories []Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing category store: %w", err)
	}
	return categories, nil
}

// ensureDefault guarantees the default category exists. It is placed
// first so it stays ahead of every matchable category.
func ensureDefault(categories []Category) []Category {
	for _, c := range categories {
		if c.Name == models.CategoryUncategorized {
			return categories
		}
	}
	return append([]Category{{Name: models.CategoryUncategorized}}, categories...)
}

// SaveTo serializes the full store to a byte stream.
func (s *CategoryStore) SaveTo(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.encode(w)
}

// Save writes the full store to its backing file, replacing prior contents.
func (s *CategoryStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

// encode writes the store as a YAML sequence. A sequence rather than a
// mapping keeps category order stable across round-trips.
func (s *CategoryStore) encode(w io.Writer) error {
	data, err := yaml.Marshal(s.categories)
	if err != nil {
		return fmt.Errorf("error marshaling category store: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("error writing category store: %w", err)
	}
	return nil
}

// persist writes the store to its backing file. Callers must hold s.mu.
func (s *CategoryStore) persist() error {
	if s.path == "" {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	var buf bytes.Buffer
	if err := s.encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("error writing category store: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(s.categories)},
	).Debug("Saved category store")
	return nil
}

// AddCategory inserts a new category with an empty keyword set and
// persists the store. It returns false without persisting if the name
// already exists.
func (s *CategoryStore) AddCategory(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Name == name {
			return false, nil
		}
	}

	s.categories = append(s.categories, Category{Name: name})
	if err := s.persist(); err != nil {
		return false, err
	}
	s.logger.WithField(logging.FieldCategory, name).Info("Added category")
	return true, nil
}

// AddKeyword appends a keyword to the named category's set and persists
// the store. The keyword is trimmed of surrounding whitespace first. It
// returns false without persisting when the trimmed keyword is empty or
// already present (exact, case-sensitive comparison against stored
// values). A missing category fails with UnknownCategoryError.
func (s *CategoryStore) AddKeyword(category, keyword string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, c := range s.categories {
		if c.Name == category {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, &UnknownCategoryError{Name: category}
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return false, nil
	}
	for _, k := range s.categories[idx].Keywords {
		if k == keyword {
			return false, nil
		}
	}

	s.categories[idx].Keywords = append(s.categories[idx].Keywords, keyword)
	if err := s.persist(); err != nil {
		return false, err
	}
	s.logger.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: logging.FieldKeyword, Value: keyword},
	).Info("Added keyword to category")
	return true, nil
}

// Has reports whether the named category exists.
func (s *CategoryStore) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// CategoryNames returns the category names in store order. UI
// collaborators use this to constrain user choices to existing names.
func (s *CategoryStore) CategoryNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.categories))
	for i, c := range s.categories {
		names[i] = c.Name
	}
	return names
}

// Keywords returns a copy of the named category's keyword set.
func (s *CategoryStore) Keywords(name string) ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Name == name {
			keywords := make([]string, len(c.Keywords))
			copy(keywords, c.Keywords)
			return keywords, true
		}
	}
	return nil, false
}

// Categories returns a snapshot of all categories in store order,
// with keyword slices copied so callers cannot mutate the store.
func (s *CategoryStore) Categories() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]Category, len(s.categories))
	for i, c := range s.categories {
		keywords := make([]string, len(c.Keywords))
		copy(keywords, c.Keywords)
		snapshot[i] = Category{Name: c.Name, Keywords: keywords}
	}
	return snapshot
}

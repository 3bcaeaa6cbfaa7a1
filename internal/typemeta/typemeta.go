// Package typemeta derives composite naming metadata for type names and
// memoizes it for the life of the process.
package typemeta

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"schema-inflect/internal/inflect"
	"schema-inflect/internal/observability"
)

// TypeMeta is the full naming record for one type: the inferred noun forms,
// URL slugs, the audit field spellings fixed by convention, and the event
// identifiers derived from the original type name.
type TypeMeta struct {
	// Name is the original type-name token, case preserved.
	Name string `json:"name"`

	inflect.Noun

	Slug       string `json:"slug"`
	SlugPlural string `json:"slugPlural"`

	// Audit field names are fixed by convention, not derived per type.
	Creator   string `json:"creator"`
	CreatedAt string `json:"createdAt"`
	CreatedBy string `json:"createdBy"`
	UpdatedAt string `json:"updatedAt"`
	UpdatedBy string `json:"updatedBy"`

	// Event identifiers, e.g. "BlogPost.created".
	Created string `json:"created"`
	Updated string `json:"updated"`
	Deleted string `json:"deleted"`
}

// Store memoizes TypeMeta records per distinct type-name string. Entries are
// never evicted or invalidated; the map grows for the process lifetime.
// Construct one Store at startup and pass it to every call site so tests can
// build isolated instances.
type Store struct {
	engine  *inflect.Engine
	logger  *slog.Logger
	metrics *observability.CacheMetrics

	mu    sync.RWMutex
	types map[string]TypeMeta
}

// New creates a Store backed by the given engine. logger may be nil and
// metrics may be nil; both degrade to no-ops.
func New(engine *inflect.Engine, logger *slog.Logger, metrics *observability.CacheMetrics) *Store {
	if engine == nil {
		engine = inflect.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		engine:  engine,
		logger:  logger,
		metrics: metrics,
		types:   make(map[string]TypeMeta),
	}
}

// Type returns the metadata record for a type name, deriving and caching it
// on first use. Callers receive the record by value and must treat it as
// read-only; the Store owns every record it creates. Concurrent first-time
// lookups for the same name may both derive the record, which is harmless:
// derivation is deterministic and the first insert wins.
func (s *Store) Type(name string) TypeMeta {
	s.mu.RLock()
	meta, ok := s.types[name]
	s.mu.RUnlock()
	if ok {
		s.metrics.RecordHit(context.Background())
		return meta
	}

	meta = s.derive(name)

	s.mu.Lock()
	if existing, ok := s.types[name]; ok {
		meta = existing
	} else {
		s.types[name] = meta
	}
	s.mu.Unlock()

	s.metrics.RecordMiss(context.Background())
	s.metrics.RecordInsert(context.Background())
	return meta
}

// VerbFields returns the reverse-field record for a pre-registered action.
// It consults only the known-verbs table; unknown actions yield the zero
// value without falling back to derivation.
func (s *Store) VerbFields(action string) inflect.ReverseFields {
	return s.engine.VerbFields(action)
}

// Len reports the number of cached type records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.types)
}

func (s *Store) derive(name string) TypeMeta {
	noun := s.engine.InferNoun(name)
	s.logger.Debug("derived type metadata",
		slog.String("type", name),
		slog.String("singular", noun.Singular),
		slog.String("plural", noun.Plural),
	)

	return TypeMeta{
		Name:       name,
		Noun:       noun,
		Slug:       strings.ReplaceAll(noun.Singular, " ", "-"),
		SlugPlural: strings.ReplaceAll(noun.Plural, " ", "-"),
		Creator:    "creator",
		CreatedAt:  "createdAt",
		CreatedBy:  "createdBy",
		UpdatedAt:  "updatedAt",
		UpdatedBy:  "updatedBy",
		Created:    name + ".created",
		Updated:    name + ".updated",
		Deleted:    name + ".deleted",
	}
}

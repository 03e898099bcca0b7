package core

import (
	"context"
	"fmt"
)

// CatalogProvider lists the decks and note types available in the host application.
type CatalogProvider interface {
	DeckNames(ctx context.Context) ([]string, error)
	NoteTypeNames(ctx context.Context) ([]string, error)
}

// StaticSchemas is a SchemaProvider backed by fixed field lists.
// Useful to preview or dry-run a batch without the host application.
type StaticSchemas map[string][]string

func (s StaticSchemas) FieldNames(ctx context.Context, noteType string) ([]string, error) {
	fields, ok := s[noteType]
	if !ok {
		return nil, fmt.Errorf("unknown note type %q", noteType)
	}
	return fields, nil
}

// StoredNote is a note created by the MemoryStore.
type StoredNote struct {
	ID       NoteID
	NoteType string
	Deck     string
	Fields   map[string]string
	Tags     []string
}

// MemoryStore creates notes in memory only. Used by --dry-run.
type MemoryStore struct {
	Notes []*StoredNote

	// Reject is called before creating a note. A non-nil error rejects the note.
	Reject func(fields map[string]string) error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CreateNote(ctx context.Context, noteType string, fields map[string]string, tags []string, deck string) (NoteID, error) {
	if s.Reject != nil {
		if err := s.Reject(fields); err != nil {
			return 0, err
		}
	}
	note := &StoredNote{
		ID:       NoteID(len(s.Notes) + 1),
		NoteType: noteType,
		Deck:     deck,
		Fields:   fields,
		Tags:     tags,
	}
	s.Notes = append(s.Notes, note)
	return note.ID, nil
}

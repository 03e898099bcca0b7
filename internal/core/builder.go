package core

import (
	"context"
	"fmt"

	"github.com/julien-sobczak/nt-bulk/pkg/markdown"
	"github.com/julien-sobczak/nt-bulk/pkg/text"
)

// NoteID is the identifier returned by the note store.
type NoteID int64

// NoteStore creates notes in the host application.
type NoteStore interface {
	CreateNote(ctx context.Context, noteType string, fields map[string]string, tags []string, deck string) (NoteID, error)
}

// SchemaProvider returns the ordered field names of a note type.
type SchemaProvider interface {
	FieldNames(ctx context.Context, noteType string) ([]string, error)
}

// BuildRequest regroups everything selected by the user for a batch.
type BuildRequest struct {
	// Content, one note per line
	Lines []string
	// Comma-separated tags, aligned by index with Lines
	TagLines []string

	NoteType   string
	Deck       string
	Delimiters []Delimiter

	// Append the card number to every tag
	Numbered bool
	// Convert field values from Markdown to HTML
	Markdown bool
}

// Validate checks the request can be processed.
func (r BuildRequest) Validate() error {
	if r.Deck == "" || r.NoteType == "" {
		return fmt.Errorf("%w: select a deck and a note type", ErrMissingSelection)
	}
	if len(r.Delimiters) == 0 {
		return fmt.Errorf("%w: select at least one delimiter", ErrMissingSelection)
	}
	for _, line := range r.Lines {
		if !text.IsBlank(line) {
			return nil
		}
	}
	return ErrEmptyInput
}

type BuildResult struct {
	// Number of notes successfully created
	Created int
	// Number of non-blank lines without any enabled delimiter
	Skipped int
	// Drafts of created notes
	Drafts  []*NoteDraft
	NoteIDs []NoteID
	// Notes rejected by the store
	Failures []*NoteCreationError
}

func (r *BuildResult) String() string {
	if len(r.Failures) == 0 {
		return fmt.Sprintf("%d cards added successfully!", r.Created)
	}
	return fmt.Sprintf("%d cards added successfully! (%d failed)", r.Created, len(r.Failures))
}

type Builder struct {
	schemas SchemaProvider
	store   NoteStore
}

func NewBuilder(schemas SchemaProvider, store NoteStore) *Builder {
	return &Builder{
		schemas: schemas,
		store:   store,
	}
}

// Build creates one note per non-blank line containing an enabled delimiter.
//
// Notes are created one after the other. A note rejected by the store is
// reported in the result but does not stop the batch and previously created
// notes are kept. The card index used for numbering only advances when a note
// is created.
func (b *Builder) Build(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	schema, err := b.schemas.FieldNames(ctx, req.NoteType)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve fields of note type %q: %w", req.NoteType, err)
	}
	CurrentLogger().Debugf("Note type %q has fields %v", req.NoteType, schema)

	result := &BuildResult{}
	cardIndex := 0
	for i, line := range req.Lines {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if text.IsBlank(line) {
			continue
		}

		fields, ok := ParseLine(line, req.Delimiters)
		if !ok {
			CurrentLogger().Debugf("Skipping line %d: %v", i+1, ErrNoMatchingDelimiter)
			result.Skipped++
			continue
		}

		draft := Assemble(fields, schema, TagsForLine(req.TagLines, i), req.Numbered, cardIndex)
		if req.Markdown {
			draft.Map(markdown.InlineToHTML)
		}
		CurrentLogger().Dump(draft)

		id, err := b.store.CreateNote(ctx, req.NoteType, draft.Fields, draft.Tags, req.Deck)
		if err != nil {
			failure := &NoteCreationError{Line: i, Draft: draft, Err: err}
			CurrentLogger().Warn(failure)
			result.Failures = append(result.Failures, failure)
			continue
		}
		CurrentLogger().Infof("Created note %d from line %d", id, i+1)

		result.Created++
		result.Drafts = append(result.Drafts, draft)
		result.NoteIDs = append(result.NoteIDs, id)
		cardIndex++
	}

	return result, nil
}

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatchingDelimiter is reported for a line without any enabled delimiter. The line is skipped.
	ErrNoMatchingDelimiter = errors.New("no matching delimiter")
	// ErrEmptyInput aborts a batch without any non-blank line.
	ErrEmptyInput = errors.New("empty input")
	// ErrMissingSelection aborts a batch when the deck, the note type or the delimiters are missing.
	ErrMissingSelection = errors.New("missing selection")
	// ErrNoteCreationFailed is wrapped by NoteCreationError.
	ErrNoteCreationFailed = errors.New("note creation failed")
)

// NoteCreationError reports a note rejected by the note store.
// The batch continues with the next line.
type NoteCreationError struct {
	// 0-based index of the line in the input
	Line  int
	Draft *NoteDraft
	Err   error
}

func (e *NoteCreationError) Error() string {
	return fmt.Sprintf("%v for line %d: %v", ErrNoteCreationFailed, e.Line+1, e.Err)
}

func (e *NoteCreationError) Unwrap() []error {
	return []error{ErrNoteCreationFailed, e.Err}
}

package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteCreationError(t *testing.T) {
	cause := errors.New("cannot create note because it is a duplicate")
	err := error(&NoteCreationError{Line: 2, Err: cause})

	assert.EqualError(t, err, "note creation failed for line 3: cannot create note because it is a duplicate")
	assert.ErrorIs(t, err, ErrNoteCreationFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrMissingSelection)

	var creationErr *NoteCreationError
	assert.ErrorAs(t, err, &creationErr)
	assert.Equal(t, 2, creationErr.Line)
}

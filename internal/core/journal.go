package core

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/julien-sobczak/nt-bulk/pkg/clock"
	"github.com/julien-sobczak/nt-bulk/pkg/oid"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Journal keeps the history of batches and of every note creation attempt.
type Journal struct {
	client *sql.DB
}

// OpenJournal opens (and creates if needed) the journal database.
func OpenJournal(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open journal: %w", err)
	}

	instance, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return nil, err
	}

	// Run migrations
	d, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return nil, fmt.Errorf("error while reading migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", d, "sqlite3", instance)
	if err != nil {
		return nil, fmt.Errorf("error while initializing migrations: %w", err)
	}
	err = m.Up() // Create/Update table schema_migrations
	if err != nil && err != migrate.ErrNoChange {
		return nil, fmt.Errorf("error while running migrations: %w", err)
	}

	return &Journal{client: db}, nil
}

func (j *Journal) Close() error {
	return j.client.Close()
}

type Batch struct {
	OID        oid.OID      `json:"oid"`
	Deck       string       `json:"deck"`
	NoteType   string       `json:"note_type"`
	Created    int          `json:"created"`
	Failed     int          `json:"failed"`
	Skipped    int          `json:"skipped"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Notes      []*BatchNote `json:"notes,omitempty"`
}

type BatchNote struct {
	Position int               `json:"position"`
	NoteID   NoteID            `json:"note_id,omitempty"`
	Fields   map[string]string `json:"fields"`
	Tags     []string          `json:"tags"`
	Error    string            `json:"error,omitempty"`
}

// JournaledStore is a NoteStore recording every creation attempt in the journal.
type JournaledStore struct {
	journal  *Journal
	store    NoteStore
	batch    oid.OID
	position int
}

// Record starts a new batch. Notes are created by the given store.
func (j *Journal) Record(store NoteStore, deck, noteType string) (*JournaledStore, error) {
	batchOID := oid.New()
	_, err := j.client.Exec(`
		INSERT INTO batch(oid, deck, note_type, started_at)
		VALUES (?, ?, ?, ?);
	`, batchOID.String(), deck, noteType, timeToSQL(clock.Now()))
	if err != nil {
		return nil, fmt.Errorf("unable to start batch: %w", err)
	}
	return &JournaledStore{
		journal: j,
		store:   store,
		batch:   batchOID,
	}, nil
}

// BatchOID returns the identifier of the batch in progress.
func (s *JournaledStore) BatchOID() oid.OID {
	return s.batch
}

func (s *JournaledStore) CreateNote(ctx context.Context, noteType string, fields map[string]string, tags []string, deck string) (NoteID, error) {
	id, createErr := s.store.CreateNote(ctx, noteType, fields, tags, deck)

	s.position++
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return id, err
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return id, err
	}
	var noteID sql.NullInt64
	var errorMessage sql.NullString
	if createErr != nil {
		errorMessage = sql.NullString{String: createErr.Error(), Valid: true}
	} else {
		noteID = sql.NullInt64{Int64: int64(id), Valid: true}
	}

	_, err = s.journal.client.ExecContext(ctx, `
		INSERT INTO batch_note(batch_oid, position, note_id, fields, tags, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`, s.batch.String(), s.position, noteID, string(fieldsJSON), string(tagsJSON), errorMessage, timeToSQL(clock.Now()))
	if err != nil {
		CurrentLogger().Warnf("Unable to record note in journal: %v", err)
	}

	return id, createErr
}

// Finish saves the outcome of the batch.
func (s *JournaledStore) Finish(result *BuildResult) error {
	_, err := s.journal.client.Exec(`
		UPDATE batch SET created = ?, failed = ?, skipped = ?, finished_at = ?
		WHERE oid = ?;
	`, result.Created, len(result.Failures), result.Skipped, timeToSQL(clock.Now()), s.batch.String())
	return err
}

// Batches returns the most recent batches first.
func (j *Journal) Batches(limit int) ([]*Batch, error) {
	rows, err := j.client.Query(`
		SELECT oid, deck, note_type, created, failed, skipped, started_at, COALESCE(finished_at, '')
		FROM batch
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?;
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []*Batch
	for rows.Next() {
		var batch Batch
		var batchOID string
		var startedAt string
		var finishedAt string
		err = rows.Scan(&batchOID, &batch.Deck, &batch.NoteType, &batch.Created, &batch.Failed, &batch.Skipped, &startedAt, &finishedAt)
		if err != nil {
			return nil, err
		}
		batch.OID = oid.OID(batchOID)
		batch.StartedAt = timeFromSQL(startedAt)
		batch.FinishedAt = timeFromSQL(finishedAt)
		batches = append(batches, &batch)
	}
	return batches, rows.Err()
}

// LoadNotes populates the notes of a batch.
func (j *Journal) LoadNotes(batch *Batch) error {
	rows, err := j.client.Query(`
		SELECT position, note_id, fields, tags, error
		FROM batch_note
		WHERE batch_oid = ?
		ORDER BY position;
	`, batch.OID.String())
	if err != nil {
		return err
	}
	defer rows.Close()

	batch.Notes = nil
	for rows.Next() {
		var note BatchNote
		var noteID sql.NullInt64
		var fieldsJSON string
		var tagsJSON string
		var errorMessage sql.NullString
		if err := rows.Scan(&note.Position, &noteID, &fieldsJSON, &tagsJSON, &errorMessage); err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(fieldsJSON), &note.Fields); err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(tagsJSON), &note.Tags); err != nil {
			return err
		}
		note.NoteID = NoteID(noteID.Int64)
		note.Error = errorMessage.String
		batch.Notes = append(batch.Notes, &note)
	}
	return rows.Err()
}

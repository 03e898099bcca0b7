// Package ankiconnect talks to Anki through the AnkiConnect add-on.
//
// See https://foosoft.net/projects/anki-connect/ for the list of actions.
package ankiconnect

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/julien-sobczak/nt-bulk/internal/core"
)

// Version of the AnkiConnect API
const Version = 6

var ErrUnavailable = errors.New("AnkiConnect is not reachable (is Anki running?)")

// Client wraps the calls to the AnkiConnect API.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a new client.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewClientFromConfig creates a client using the current configuration.
func NewClientFromConfig(config *core.Config) *Client {
	return NewClient(config.ConfigFile.AnkiConnect.URL, config.ConfigFile.AnkiConnect.TimeoutDuration())
}

type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// invoke executes an action and decodes the result.
func (c *Client) invoke(ctx context.Context, action string, params any, result any) error {
	data, err := json.Marshal(request{
		Action:  action,
		Version: Version,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s: HTTP %d: %s", action, resp.StatusCode, string(body))
	}

	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return fmt.Errorf("decode %s response: %w", action, err)
	}
	if r.Error != nil {
		return fmt.Errorf("%s: %s", action, *r.Error)
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(r.Result, result); err != nil {
		return fmt.Errorf("decode %s result: %w", action, err)
	}
	return nil
}

// Version returns the version of the AnkiConnect API.
func (c *Client) Version(ctx context.Context) (int, error) {
	var version int
	err := c.invoke(ctx, "version", nil, &version)
	return version, err
}

/* Decks */

func (c *Client) DeckNames(ctx context.Context) ([]string, error) {
	var names []string
	err := c.invoke(ctx, "deckNames", nil, &names)
	return names, err
}

func (c *Client) CreateDeck(ctx context.Context, name string) (int64, error) {
	var id int64
	err := c.invoke(ctx, "createDeck", map[string]any{"deck": name}, &id)
	return id, err
}

/* Note types */

func (c *Client) NoteTypeNames(ctx context.Context) ([]string, error) {
	var names []string
	err := c.invoke(ctx, "modelNames", nil, &names)
	return names, err
}

func (c *Client) FieldNames(ctx context.Context, noteType string) ([]string, error) {
	var names []string
	err := c.invoke(ctx, "modelFieldNames", map[string]any{"modelName": noteType}, &names)
	return names, err
}

/* Notes */

type note struct {
	DeckName  string            `json:"deckName"`
	ModelName string            `json:"modelName"`
	Fields    map[string]string `json:"fields"`
	Tags      []string          `json:"tags"`
}

func (c *Client) CreateNote(ctx context.Context, noteType string, fields map[string]string, tags []string, deck string) (core.NoteID, error) {
	if tags == nil {
		tags = []string{}
	}
	var id *int64
	err := c.invoke(ctx, "addNote", map[string]any{
		"note": note{
			DeckName:  deck,
			ModelName: noteType,
			Fields:    fields,
			Tags:      tags,
		},
	}, &id)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, fmt.Errorf("addNote: note was not created")
	}
	return core.NoteID(*id), nil
}

/* Medias */

// MediaDir returns the path of the collection media folder.
func (c *Client) MediaDir(ctx context.Context) (string, error) {
	var dir string
	err := c.invoke(ctx, "getMediaDirPath", nil, &dir)
	return dir, err
}

// StoreMediaFile uploads a file into the media folder. Anki may rename the file
// and the stored name is returned.
func (c *Client) StoreMediaFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var name string
	err = c.invoke(ctx, "storeMediaFile", map[string]any{
		"filename": filepath.Base(path),
		"data":     base64.StdEncoding.EncodeToString(data),
	}, &name)
	return name, err
}

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/truthcom/learnmate/internal/observability"
)

// Store persists one JSON document per session id under a directory.
// There is no locking; concurrent writers are last-writer-wins.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created
// lazily on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir resolves the sessions directory: $LEARNMATE_SESSIONS if
// set, otherwise ./sessions relative to the working directory.
func DefaultDir() string {
	if dir := os.Getenv("LEARNMATE_SESSIONS"); dir != "" {
		return dir
	}
	return "sessions"
}

// Path returns the file a session id is stored at.
func (s *Store) Path(sessionID string) string {
	return filepath.Join(s.dir, fmt.Sprintf("session_%s.json", sessionID))
}

// Load reads the document for a session id. A missing file yields a
// fresh empty document. An unparsable file is renamed to <file>.backup
// so the next save starts clean, and a fresh document is returned.
func (s *Store) Load(sessionID string) *Document {
	path := s.Path(sessionID)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			observability.Logger().Error("session load failed",
				"session_id", sessionID, "path", path, "error", err)
		}
		return NewDocument()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		backup := path + ".backup"
		if renameErr := os.Rename(path, backup); renameErr != nil {
			observability.Logger().Error("corrupt session backup failed",
				"session_id", sessionID, "path", path, "error", renameErr)
		} else {
			observability.Logger().Warn("corrupt session file moved aside",
				"session_id", sessionID, "backup", backup, "error", err)
		}
		return NewDocument()
	}

	if doc.Courses == nil {
		doc.Courses = make(map[string]*Course)
	}
	return &doc
}

// Save writes the document for a session id, creating the sessions
// directory if needed. The whole file is rewritten on every save.
func (s *Store) Save(sessionID string, doc *Document) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		observability.Logger().Error("session dir create failed",
			"dir", s.dir, "error", err)
		return fmt.Errorf("create sessions dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sessionID, err)
	}

	path := s.Path(sessionID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		observability.Logger().Error("session save failed",
			"session_id", sessionID, "path", path, "error", err)
		return fmt.Errorf("write session %s: %w", sessionID, err)
	}
	return nil
}

// Delete removes a session's file. Deleting a session that was never
// saved reports false.
func (s *Store) Delete(sessionID string) bool {
	path := s.Path(sessionID)
	if err := os.Remove(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			observability.Logger().Error("session delete failed",
				"session_id", sessionID, "path", path, "error", err)
		}
		return false
	}
	return true
}

// List returns the session ids that currently have a stored file.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read sessions dir: %w", err)
	}

	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		base := strings.TrimSuffix(name, ".json")
		id, ok := strings.CutPrefix(base, "session_")
		if !ok || id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

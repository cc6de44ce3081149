package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStore_LoadMissingReturnsFresh(t *testing.T) {
	st := NewStore(t.TempDir())

	doc := st.Load("nobody")
	if doc == nil {
		t.Fatal("expected a document")
	}
	if len(doc.Courses) != 0 {
		t.Errorf("expected empty courses, got %d", len(doc.Courses))
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	st := NewStore(dir)

	doc := NewDocument()
	course := NewCourse("Go Basics", "Level 6 (Undergraduate)", "channels", "9\nDay 1")
	course.DailyContents["1"] = "day one content"
	course.QAHistory = []QAEntry{{Day: 1, Question: "q", Answer: "a", Timestamp: "2026-08-29 10:00:00"}}
	doc.Courses["c1"] = course
	doc.LastAccessedCourse = "c1"

	if err := st.Save("alice", doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// The file is human-readable indented JSON.
	raw, err := os.ReadFile(st.Path("alice"))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if !strings.Contains(string(raw), "\n  \"courses\"") {
		t.Error("expected indent-2 JSON output")
	}

	loaded := st.Load("alice")
	got, ok := loaded.Courses["c1"]
	if !ok {
		t.Fatal("expected course c1 after reload")
	}
	if got.Duration != 9 {
		t.Errorf("expected duration 9, got %d", got.Duration)
	}
	if got.DailyContents["1"] != "day one content" {
		t.Error("expected daily content to survive the round trip")
	}
	if len(got.QAHistory) != 1 || got.QAHistory[0].Question != "q" {
		t.Error("expected qa history to survive the round trip")
	}
	if loaded.LastAccessedCourse != "c1" {
		t.Errorf("expected last accessed c1, got %q", loaded.LastAccessedCourse)
	}
}

func TestStore_CorruptFileMovedAside(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)

	path := st.Path("bob")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc := st.Load("bob")
	if len(doc.Courses) != 0 {
		t.Error("expected a fresh document after corruption")
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected corrupt file to be moved away")
	}
	backup, err := os.ReadFile(path + ".backup")
	if err != nil {
		t.Fatalf("expected backup file: %v", err)
	}
	if string(backup) != "{not json" {
		t.Error("expected backup to preserve the corrupt bytes")
	}

	// The next save writes a clean file at the original path.
	if err := st.Save("bob", doc); err != nil {
		t.Fatalf("Save after corruption: %v", err)
	}
	var check Document
	raw, _ := os.ReadFile(path)
	if err := json.Unmarshal(raw, &check); err != nil {
		t.Errorf("expected valid JSON after resave: %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	st := NewStore(t.TempDir())

	if st.Delete("ghost") {
		t.Error("deleting a session that was never saved should report false")
	}

	if err := st.Save("carol", NewDocument()); err != nil {
		t.Fatal(err)
	}
	if !st.Delete("carol") {
		t.Error("expected delete of existing session to report true")
	}
	if st.Delete("carol") {
		t.Error("second delete should report false")
	}
}

func TestStore_List(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)

	ids, err := st.List()
	if err != nil {
		t.Fatalf("List on missing dir: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no ids, got %v", ids)
	}

	for _, id := range []string{"alice", "bob"} {
		if err := st.Save(id, NewDocument()); err != nil {
			t.Fatal(err)
		}
	}
	// Unrelated files are skipped.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ids, err = st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %v", ids)
	}
}

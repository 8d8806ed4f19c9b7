// ABOUTME: Tests for search transcript writing
// ABOUTME: Validates entry formatting and daily file appends
package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testEntry(query string, at time.Time) TranscriptEntry {
	return TranscriptEntry{
		RequestID: "req-1",
		Timestamp: at,
		Model:     "sonar",
		Query:     query,
		Recency:   "week",
		Answer:    "Paris is the capital.",
		Citations: []string{"https://a.example", "https://b.example"},
	}
}

func TestTranscriptMarkdown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "transcripts")
	tr := NewTranscript(dir, "markdown")

	entry := testEntry("capital of France", time.Date(2025, 11, 29, 14, 30, 0, 0, time.UTC))
	if err := tr.Write(entry); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "2025-11-29.log"))
	if err != nil {
		t.Fatalf("failed to read transcript: %v", err)
	}

	expected := `## 14:30:00 - capital of France
- **Recency**: week
- **Model**: sonar
- **Request**: req-1

Paris is the capital.

1. https://a.example
2. https://b.example

`
	if string(content) != expected {
		t.Errorf("got:\n%s\nwant:\n%s", string(content), expected)
	}
}

func TestTranscriptJSON(t *testing.T) {
	dir := t.TempDir()
	tr := NewTranscript(dir, "json")

	entry := testEntry("capital of France", time.Date(2025, 11, 29, 14, 30, 0, 0, time.UTC))
	if err := tr.Write(entry); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "2025-11-29.log"))
	if err != nil {
		t.Fatalf("failed to read transcript: %v", err)
	}

	var decoded TranscriptEntry
	if err := json.Unmarshal(content, &decoded); err != nil {
		t.Fatalf("transcript line is not JSON: %v", err)
	}
	if decoded.Query != "capital of France" || len(decoded.Citations) != 2 {
		t.Errorf("unexpected decoded entry: %+v", decoded)
	}
}

func TestTranscriptAppends(t *testing.T) {
	dir := t.TempDir()
	tr := NewTranscript(dir, "markdown")

	day := time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC)
	if err := tr.Write(testEntry("first query", day.Add(10*time.Hour))); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := tr.Write(testEntry("second query", day.Add(15*time.Hour))); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "2025-11-29.log"))
	if err != nil {
		t.Fatalf("failed to read transcript: %v", err)
	}
	if !strings.Contains(string(content), "first query") || !strings.Contains(string(content), "second query") {
		t.Errorf("transcript should contain both entries: %s", content)
	}
}

// ABOUTME: Search transcript writing
// ABOUTME: Formats completed searches as markdown or JSON and appends to daily files
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TranscriptEntry records one completed search.
type TranscriptEntry struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Model     string    `json:"model"`
	Query     string    `json:"query"`
	Recency   string    `json:"recency"`
	Answer    string    `json:"answer"`
	Citations []string  `json:"citations,omitempty"`
}

// Transcript appends entries to <dir>/<YYYY-MM-DD>.log.
type Transcript struct {
	dir    string
	format string
}

// NewTranscript returns a writer for dir. Format is "markdown" or "json";
// anything else is treated as markdown.
func NewTranscript(dir, format string) *Transcript {
	return &Transcript{dir: dir, format: format}
}

// Write appends entry to the day's transcript file.
func (t *Transcript) Write(entry TranscriptEntry) error {
	if err := os.MkdirAll(t.dir, 0755); err != nil { //nolint:gosec // Standard directory permissions for user data
		return err
	}

	date := entry.Timestamp.Format("2006-01-02")
	logFile := filepath.Join(t.dir, date+".log")

	var content string
	switch t.format {
	case "json":
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		content = string(data) + "\n"
	case "markdown":
		fallthrough
	default:
		content = formatMarkdown(entry)
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = f.WriteString(content)
	return err
}

func formatMarkdown(entry TranscriptEntry) string {
	var sb strings.Builder

	timeStr := entry.Timestamp.Format("15:04:05")
	sb.WriteString(fmt.Sprintf("## %s - %s\n", timeStr, entry.Query))
	sb.WriteString(fmt.Sprintf("- **Recency**: %s\n", entry.Recency))
	sb.WriteString(fmt.Sprintf("- **Model**: %s\n", entry.Model))
	sb.WriteString(fmt.Sprintf("- **Request**: %s\n", entry.RequestID))
	sb.WriteString("\n")
	sb.WriteString(entry.Answer)
	sb.WriteString("\n")

	if len(entry.Citations) > 0 {
		sb.WriteString("\n")
		for i, url := range entry.Citations {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, url))
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

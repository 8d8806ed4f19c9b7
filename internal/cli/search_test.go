// ABOUTME: Unit tests for the search and config commands
// ABOUTME: Runs searches against a stub upstream and checks recency selection
package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

// useStubUpstream points the commands at a stub API and an empty config dir.
func useStubUpstream(t *testing.T, body string) *string {
	t.Helper()
	color.NoColor = true

	var lastBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		lastBody = string(data)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PERPLEXITY_API_KEY", "pplx-test-key-1234")
	t.Setenv("PERPLEXITY_BASE_URL", srv.URL)
	t.Setenv("PERPLEXITY_LOG_LEVEL", "error")
	t.Setenv("PERPLEXITY_TRANSCRIPT", "")
	t.Setenv("PERPLEXITY_TRANSCRIPT_DIR", "")
	configPath = ""
	searchRecency = ""
	searchSince = ""

	return &lastBody
}

func TestSearchCommand(t *testing.T) {
	lastBody := useStubUpstream(t, `{"choices":[{"message":{"content":"Paris is the capital."}}],"citations":["https://a.example","https://b.example"]}`)

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"search", "capital of France", "--recency", "week"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := "Paris is the capital.\n\nCitations:\n[1] https://a.example\n[2] https://b.example\n"
	if stdout.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", stdout.String(), want)
	}
	if !strings.Contains(*lastBody, `"search_recency_filter":"week"`) {
		t.Errorf("request should carry the recency filter: %s", *lastBody)
	}
}

func TestSearchCommandRejectsConflictingFlags(t *testing.T) {
	useStubUpstream(t, `{}`)

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"search", "q", "--recency", "day", "--since", "yesterday"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for --recency with --since")
	}
}

func TestRecencyForSince(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		since time.Time
		want  string
	}{
		{name: "an hour ago", since: now.Add(-time.Hour), want: "day"},
		{name: "three days ago", since: now.AddDate(0, 0, -3), want: "week"},
		{name: "two weeks ago", since: now.AddDate(0, 0, -14), want: "month"},
		{name: "exactly a month ago", since: now.AddDate(0, -1, 0), want: "month"},
		{name: "three months ago", since: now.AddDate(0, -3, 0), want: "year"},
		{name: "future date", since: now.Add(time.Hour), want: "day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recencyForSince(tt.since, now); got != tt.want {
				t.Errorf("recencyForSince = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintAnswerWithoutCitations(t *testing.T) {
	var buf bytes.Buffer
	printAnswer(&buf, "just an answer")
	if buf.String() != "just an answer\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestConfigCommandMasksKey(t *testing.T) {
	useStubUpstream(t, `{}`)

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"config"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	out := stdout.String()
	if strings.Contains(out, "pplx-test-key-1234") {
		t.Errorf("config output leaked the API key: %s", out)
	}
	if !strings.Contains(out, "****1234") {
		t.Errorf("expected masked key in output: %s", out)
	}
	if !strings.Contains(out, "Model:       sonar") {
		t.Errorf("expected default model in output: %s", out)
	}
}

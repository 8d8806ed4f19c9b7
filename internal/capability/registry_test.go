// ABOUTME: Tests for the capability registry
// ABOUTME: Validates fixed descriptors, purity of listings, and schema rendering
package capability

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListingsAreStable(t *testing.T) {
	reg := NewRegistry()

	first := reg.ListTools()
	second := reg.ListTools()
	if len(first) != 1 {
		t.Fatalf("expected exactly one tool, got %d", len(first))
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ListTools not stable (-first +second):\n%s", diff)
	}

	prompts := reg.ListPrompts()
	if len(prompts) != 1 {
		t.Fatalf("expected exactly one prompt, got %d", len(prompts))
	}
	if diff := cmp.Diff(prompts, reg.ListPrompts()); diff != "" {
		t.Errorf("ListPrompts not stable (-first +second):\n%s", diff)
	}
}

func TestListingsReturnCopies(t *testing.T) {
	reg := NewRegistry()

	tools := reg.ListTools()
	tools[0].Name = "mutated"
	tools[0].Params[1].Enum[0] = "decade"

	prompts := reg.ListPrompts()
	prompts[0].Arguments[0].Name = "mutated"

	tool, ok := reg.Tool(SearchWeb)
	if !ok {
		t.Fatal("tool lookup failed after mutating a listing")
	}
	recency, _ := tool.Param("recency")
	if recency.Enum[0] != "day" {
		t.Errorf("registry enum was mutated: %v", recency.Enum)
	}

	prompt, _ := reg.Prompt(SearchWeb)
	if prompt.Arguments[0].Name != "query" {
		t.Errorf("registry prompt was mutated: %v", prompt.Arguments)
	}
}

func TestToolDescriptor(t *testing.T) {
	tool, ok := NewRegistry().Tool(SearchWeb)
	if !ok {
		t.Fatalf("tool %s not registered", SearchWeb)
	}

	query, ok := tool.Param("query")
	if !ok || !query.Required || query.Type != "string" {
		t.Errorf("unexpected query param: %+v", query)
	}

	recency, ok := tool.Param("recency")
	if !ok {
		t.Fatal("recency param missing")
	}
	if recency.Required {
		t.Error("recency should be optional")
	}
	if recency.Default != "month" {
		t.Errorf("recency default = %q, want month", recency.Default)
	}
	if diff := cmp.Diff([]string{"day", "week", "month", "year"}, recency.Enum); diff != "" {
		t.Errorf("recency enum mismatch (-want +got):\n%s", diff)
	}

	if _, ok := NewRegistry().Tool("unknown_tool"); ok {
		t.Error("unknown tool should not resolve")
	}
}

func TestInputSchema(t *testing.T) {
	tool, _ := NewRegistry().Tool(SearchWeb)

	data, err := json.Marshal(tool.InputSchema())
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}

	var got struct {
		Type       string   `json:"type"`
		Required   []string `json:"required"`
		Properties map[string]struct {
			Type    string   `json:"type"`
			Enum    []string `json:"enum"`
			Default string   `json:"default"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal schema: %v", err)
	}

	if got.Type != "object" {
		t.Errorf("type = %q, want object", got.Type)
	}
	if diff := cmp.Diff([]string{"query"}, got.Required); diff != "" {
		t.Errorf("required mismatch (-want +got):\n%s", diff)
	}
	if got.Properties["recency"].Default != "month" {
		t.Errorf("recency default = %q", got.Properties["recency"].Default)
	}
	if len(got.Properties["recency"].Enum) != 4 {
		t.Errorf("recency enum = %v", got.Properties["recency"].Enum)
	}
	if len(got.Properties["query"].Enum) != 0 {
		t.Errorf("query should be unconstrained, got enum %v", got.Properties["query"].Enum)
	}
}

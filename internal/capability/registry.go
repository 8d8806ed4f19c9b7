// ABOUTME: Static descriptors for the prompt and tool this server exposes
// ABOUTME: Built once at startup and never mutated; lookups hand out copies
package capability

// SearchWeb is the name shared by the search prompt and the search tool.
const SearchWeb = "perplexity_search_web"

// Param describes one tool input parameter.
type Param struct {
	Name        string
	Type        string
	Description string
	// Enum lists advertised values. Empty means unconstrained.
	Enum     []string
	Required bool
	// Default is the value used when the parameter is omitted.
	Default string
}

// Tool describes an invocable action.
type Tool struct {
	Name        string
	Description string
	Params      []Param
}

// PromptArgument describes one prompt template argument.
type PromptArgument struct {
	Name        string
	Description string
	Required    bool
}

// Prompt describes a parameterized prompt template.
type Prompt struct {
	Name        string
	Description string
	Arguments   []PromptArgument
}

// Registry holds the immutable capability descriptors.
type Registry struct {
	prompts []Prompt
	tools   []Tool
}

// NewRegistry returns the registry with the single search prompt and tool.
func NewRegistry() *Registry {
	return &Registry{
		prompts: []Prompt{
			{
				Name:        SearchWeb,
				Description: "Use Perplexity to search the web for a query and return results from the last specified time frame",
				Arguments: []PromptArgument{
					{
						Name:        "query",
						Description: "The query to search for",
						Required:    true,
					},
					{
						Name:        "timeframe",
						Description: "The time frame to search for. Allowed options are: 'day', 'week', 'month', 'year'. Defaults to 'month'.",
						Required:    false,
					},
				},
			},
		},
		tools: []Tool{
			{
				Name:        SearchWeb,
				Description: "Search the web using Perplexity AI with recency filtering. Returns an answer followed by numbered source citations.",
				Params: []Param{
					{
						Name:        "query",
						Type:        "string",
						Description: "The search query",
						Required:    true,
					},
					{
						Name:        "recency",
						Type:        "string",
						Description: "Filter results by how recent they are. Options: 'day', 'week', 'month', 'year'. Defaults to 'month'.",
						Enum:        []string{"day", "week", "month", "year"},
						Default:     "month",
					},
				},
			},
		},
	}
}

// ListPrompts returns every registered prompt.
func (r *Registry) ListPrompts() []Prompt {
	out := make([]Prompt, len(r.prompts))
	for i, p := range r.prompts {
		out[i] = p.clone()
	}
	return out
}

// ListTools returns every registered tool.
func (r *Registry) ListTools() []Tool {
	out := make([]Tool, len(r.tools))
	for i, t := range r.tools {
		out[i] = t.clone()
	}
	return out
}

// Prompt looks up a prompt by name.
func (r *Registry) Prompt(name string) (Prompt, bool) {
	for _, p := range r.prompts {
		if p.Name == name {
			return p.clone(), true
		}
	}
	return Prompt{}, false
}

// Tool looks up a tool by name.
func (r *Registry) Tool(name string) (Tool, bool) {
	for _, t := range r.tools {
		if t.Name == name {
			return t.clone(), true
		}
	}
	return Tool{}, false
}

// Param returns the named parameter of t.
func (t Tool) Param(name string) (Param, bool) {
	for _, p := range t.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

func (p Prompt) clone() Prompt {
	p.Arguments = append([]PromptArgument(nil), p.Arguments...)
	return p
}

func (t Tool) clone() Tool {
	params := make([]Param, len(t.Params))
	for i, p := range t.Params {
		p.Enum = append([]string(nil), p.Enum...)
		params[i] = p
	}
	t.Params = params
	return t
}

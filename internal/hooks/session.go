package hooks

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/graph-flow/graph-flow-hooks/internal/mcpconfig"
)

// sessionContext is the behavioral guidance injected at session start
// when the graph-flow tools are configured. Single source for the
// advisory text; the UserPromptSubmit line lives in prompt.go.
const sessionContext = `graph-flow MCP tools active. These answer different questions than grep/glob/LSP:

GRAPH TOOLS (run g-index first to populate the cache)
g-index: Index code files before using other g- tools. Run once per session on packages you'll work in.
g-calls: "What directly calls this function?" Structured caller data across the full indexed codebase — faster and more complete than grep.
g-blast: "What breaks if I change X?" Traces the full transitive call graph. Use BEFORE modifying any shared function, type, or class.
g-defs: "What is defined in this file?" All functions, classes, interfaces with line numbers.

DOCS GRAPH TOOLS (run d-index first)
d-index: Index markdown files into the docs graph. Pass glob patterns e.g. ['docs/**/*.md', 'README.md']. Extracts hierarchical sections and builds DOCUMENTS relationships (backtick identifiers in docs → code entities).
d-query: Semantic search over indexed doc sections.
d-for-code: "What docs exist for function X?" Traverses DOCUMENTS relationships built during d-index.

KNOWLEDGE TOOLS
k-query: "What do I already know about this area?" Run at the start of any non-trivial task, before opening files.
k-store: "This was non-obvious." Capture gotchas, patterns, architectural decisions not in the code.
k-index: Index markdown as session learnings (separate from docs graph — stores as searchable learnings).
k-related: Find learnings related to a given learning by ID.`

// SpecificOutput is the inner hookSpecificOutput block of a hook
// response.
type SpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// SessionStartOutput is the envelope the SessionStart hook prints when
// the project is configured.
type SessionStartOutput struct {
	HookSpecificOutput SpecificOutput `json:"hookSpecificOutput"`
}

// SessionStart writes the SessionStart hook response: the advisory
// context envelope when the graph-flow entry is configured, a bare {}
// otherwise. The unconfigured branch stays silent because the
// UserPromptSubmit hook owns the setup guidance.
func SessionStart(w io.Writer, status mcpconfig.Status) error {
	if !status.Configured() {
		_, err := fmt.Fprintln(w, "{}")
		return err
	}
	out := SessionStartOutput{
		HookSpecificOutput: SpecificOutput{
			HookEventName:     "SessionStart",
			AdditionalContext: sessionContext,
		},
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding hook output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Package hooks implements the output contracts of the graph-flow
// lifecycle hooks: one plain-text status line for UserPromptSubmit and
// a hookSpecificOutput JSON envelope for SessionStart. Each hook writes
// exactly one line to stdout and always succeeds.
package hooks

import (
	"bytes"
	"encoding/json"
	"io"
)

// Input is the JSON payload the host pipes to a hook's stdin.
type Input struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	CWD            string `json:"cwd"`
	HookEventName  string `json:"hook_event_name"`
	Prompt         string `json:"prompt,omitempty"`
}

// ReadInput decodes a hook payload from r. Hooks must never fail on
// host input, so an empty stream or a payload that does not decode
// yields a zero Input.
func ReadInput(r io.Reader) Input {
	data, err := io.ReadAll(r)
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return Input{}
	}
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return Input{}
	}
	return in
}

// Package mcpconfig locates and inspects a project's .mcp.json, the
// conventional MCP server registration file Claude Code reads at the
// project root. Everything here is read-only except AddServer, which
// the init command uses to register the graph-flow server.
package mcpconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/tidwall/jsonc"
)

// FileName is the configuration file looked up at the project root.
const FileName = ".mcp.json"

// ServerName is the entry the hooks check for under mcpServers.
const ServerName = "graph-flow"

// ServerEntry is a single server registration inside .mcp.json. Stdio
// servers carry a command; remote servers carry a URL.
type ServerEntry struct {
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
	Type    string            `json:"type,omitempty"`
	URL     string            `json:"url,omitempty"`
}

// Config is the parsed shape of .mcp.json.
type Config struct {
	MCPServers map[string]ServerEntry `json:"mcpServers"`
}

type hostEnv struct {
	ProjectDir string `env:"CLAUDE_PROJECT_DIR"`
}

// ProjectDirOverride returns the project root the host advertises via
// CLAUDE_PROJECT_DIR, or "" when unset.
func ProjectDirOverride() string {
	var cfg hostEnv
	if err := env.Parse(&cfg); err != nil {
		return ""
	}
	return cfg.ProjectDir
}

// ResolveRoot picks the effective project root. Precedence:
// CLAUDE_PROJECT_DIR, then hostCWD (the cwd field of the hook payload,
// may be empty), then the process working directory. Returns "" only
// when every source is empty.
func ResolveRoot(hostCWD string) string {
	if dir := ProjectDirOverride(); dir != "" {
		return dir
	}
	if hostCWD != "" {
		return hostCWD
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return cwd
}

// Locate returns the path of the configuration file under root iff a
// regular file exists there right now. Existence is a predicate, never
// an error.
func Locate(root string) (string, bool) {
	if root == "" {
		return "", false
	}
	path := filepath.Join(root, FileName)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return path, true
}

// Status classifies a probe of the configuration file. Only the
// distinction between Present and everything else is observable through
// the hooks; the finer grain exists for the status command and tests.
type Status int

const (
	// StatusMissing means no configuration file exists at the root.
	StatusMissing Status = iota
	// StatusMalformed means the file exists but could not be read or parsed.
	StatusMalformed
	// StatusAbsent means the file parsed but has no matching server entry.
	StatusAbsent
	// StatusPresent means the server entry is registered.
	StatusPresent
)

func (s Status) String() string {
	switch s {
	case StatusMissing:
		return "missing"
	case StatusMalformed:
		return "malformed"
	case StatusAbsent:
		return "absent"
	case StatusPresent:
		return "present"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Configured projects the status down to the boolean both hooks share:
// only a present entry counts as configured.
func (s Status) Configured() bool { return s == StatusPresent }

// Load reads and parses the configuration file at path. Comments and
// trailing commas are tolerated; the document is otherwise strict JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Probe reports whether the configuration file at path carries the
// named server entry. An empty path or vanished file is Missing; a file
// that cannot be read or parsed is Malformed. Probe never fails: the
// hooks treat all non-Present states identically.
func Probe(path, server string) Status {
	if path == "" {
		return StatusMissing
	}
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StatusMissing
		}
		return StatusMalformed
	}
	if _, ok := cfg.MCPServers[server]; ok {
		return StatusPresent
	}
	return StatusAbsent
}

// ProbeRoot is the composition both hooks run: resolve the project
// root, locate the configuration file under it, and probe for the
// graph-flow entry.
func ProbeRoot(hostCWD string) Status {
	path, ok := Locate(ResolveRoot(hostCWD))
	if !ok {
		return StatusMissing
	}
	return Probe(path, ServerName)
}

// AddServer merges a server entry into the configuration file at path,
// creating the file when absent. Entries for other servers and unknown
// top-level keys are preserved. An existing file that does not parse is
// left untouched and reported as an error rather than overwritten.
func AddServer(path, name string, entry ServerEntry) error {
	doc := map[string]json.RawMessage{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if uerr := json.Unmarshal(jsonc.ToJSON(data), &doc); uerr != nil {
			return fmt.Errorf("%s exists but is not valid JSON, fix or remove it first: %w", path, uerr)
		}
	case errors.Is(err, os.ErrNotExist):
		// New file.
	default:
		return fmt.Errorf("reading %s: %w", path, err)
	}

	servers := map[string]json.RawMessage{}
	if raw, ok := doc["mcpServers"]; ok {
		if uerr := json.Unmarshal(raw, &servers); uerr != nil {
			return fmt.Errorf("mcpServers in %s is not an object: %w", path, uerr)
		}
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding server entry: %w", err)
	}
	servers[name] = encoded

	rawServers, err := json.Marshal(servers)
	if err != nil {
		return fmt.Errorf("encoding mcpServers: %w", err)
	}
	doc["mcpServers"] = rawServers

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return os.WriteFile(path, append(out, '\n'), 0o644)
}

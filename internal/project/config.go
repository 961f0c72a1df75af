// Package project parses the optional project-wide configuration file
// (openspec/config.yaml). Parsing is resilient: each field is validated on
// its own and an invalid field is dropped with a warning, so a typo in one
// entry never blocks a command.
package project

import (
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/openspec-dev/openspec/internal/diag"
	"github.com/openspec-dev/openspec/internal/fsio"
)

// MaxContextBytes is the upper bound on the injected context string,
// measured in UTF-8 bytes. An oversized context is dropped whole, never
// truncated.
const MaxContextBytes = 50 * 1024

// Config is the parsed project configuration. Fields that failed
// validation are left at their zero value.
type Config struct {
	// Schema is the project's default schema name.
	Schema string
	// Context is injected verbatim into every artifact's instructions.
	Context string
	// Rules maps artifact ids to per-artifact guidance strings.
	Rules map[string][]string
}

// rawConfig is the loosely-typed YAML shape. Every field decodes into a
// yaml.Node so one malformed field cannot fail the whole document.
type rawConfig struct {
	Schema  yaml.Node `yaml:"schema"`
	Context yaml.Node `yaml:"context"`
	Rules   yaml.Node `yaml:"rules"`
}

// configFileNames are tried in order; .yaml wins when both exist.
var configFileNames = []string{"config.yaml", "config.yml"}

// Load reads the project config if present. A missing file yields an empty
// Config. Field-level problems are reported to dc and the field dropped;
// only an unreadable document makes the whole config empty (with a
// warning), never an error.
func Load(fsys fsio.FS, projectRoot string, dc *diag.Collector) *Config {
	cfg := &Config{}

	var data []byte
	var path string
	for _, name := range configFileNames {
		candidate := filepath.Join(projectRoot, "openspec", name)
		if content, err := fsys.ReadFile(candidate); err == nil {
			data, path = content, candidate
			break
		}
	}
	if path == "" {
		return cfg
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		dc.Warnf(diag.KindConfig, "", "ignoring %s: %v", path, err)
		return cfg
	}

	cfg.Schema = decodeSchema(raw.Schema, dc)
	cfg.Context = decodeContext(raw.Context, dc)
	cfg.Rules = decodeRules(raw.Rules, dc)
	return cfg
}

// decodeSchema accepts a scalar string schema name.
func decodeSchema(node yaml.Node, dc *diag.Collector) string {
	if node.IsZero() {
		return ""
	}
	var name string
	if err := node.Decode(&name); err != nil {
		dc.Warnf(diag.KindConfig, "schema", "ignoring non-string value")
		return ""
	}
	return name
}

// decodeContext accepts a string up to MaxContextBytes. Anything larger is
// dropped entirely with a warning reporting the measured size.
func decodeContext(node yaml.Node, dc *diag.Collector) string {
	if node.IsZero() {
		return ""
	}
	var context string
	if err := node.Decode(&context); err != nil {
		dc.Warnf(diag.KindContext, "context", "ignoring non-string value")
		return ""
	}
	if size := len(context); size > MaxContextBytes {
		dc.Warnf(diag.KindContext, "context",
			"ignoring context of %d bytes (limit %d)", size, MaxContextBytes)
		return ""
	}
	return context
}

// decodeRules accepts a map of artifact id to list of strings. A malformed
// entry is dropped on its own; empty-string rules are filtered out and a
// key whose list ends up empty is omitted entirely.
func decodeRules(node yaml.Node, dc *diag.Collector) map[string][]string {
	if node.IsZero() {
		return nil
	}
	var entries map[string]yaml.Node
	if err := node.Decode(&entries); err != nil {
		dc.Warnf(diag.KindRules, "rules", "ignoring non-mapping value")
		return nil
	}

	rules := make(map[string][]string)
	for key, value := range entries {
		var list []string
		if err := value.Decode(&list); err != nil {
			dc.Warnf(diag.KindRules, "rules."+key, "ignoring entry: expected a list of strings")
			continue
		}

		var kept []string
		for _, rule := range list {
			if rule != "" {
				kept = append(kept, rule)
			}
		}
		if len(kept) == 0 {
			continue
		}
		rules[key] = kept
	}

	if len(rules) == 0 {
		return nil
	}
	return rules
}

package errors

import (
	"fmt"
	"strings"
)

// ProjectNotFound reports that no openspec directory was found.
func ProjectNotFound(startDir string) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  fmt.Sprintf("no openspec directory found in %s or any parent directory", startDir),
		Remediation: []string{
			"run this command inside an openspec project",
			"create one with: mkdir -p openspec/changes",
		},
	}
}

// ChangeNotFound reports that a change directory does not exist.
func ChangeNotFound(changeName, changesDir string) *CLIError {
	return &CLIError{
		Category: Prerequisite,
		Message:  fmt.Sprintf("change %q not found in %s", changeName, changesDir),
		Remediation: []string{
			"check the change name with: openspec list",
			fmt.Sprintf("create it with: mkdir -p %s/%s", changesDir, changeName),
		},
	}
}

// MissingChangeArgument reports that no change name was given or detectable.
func MissingChangeArgument() *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  "no change specified and none could be detected",
		Usage:    "openspec status <change-name>",
		Remediation: []string{
			"pass a change name as the first argument",
			"see available changes with: openspec list",
		},
	}
}

// SchemaNotFound reports an unresolvable schema name, listing known names.
func SchemaNotFound(name string, available []string) *CLIError {
	msg := fmt.Sprintf("schema %q not found in any tier", name)
	if len(available) > 0 {
		msg += fmt.Sprintf(" (available: %s)", strings.Join(available, ", "))
	}
	return &CLIError{
		Category: Configuration,
		Message:  msg,
		Remediation: []string{
			"list schemas with: openspec schemas",
			"check the schema name in openspec/config.yaml and .openspec.yaml",
		},
	}
}

// ConfigParseError reports an unreadable or invalid tool configuration file.
func ConfigParseError(path string, cause error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  fmt.Sprintf("failed to parse config %s: %v", path, cause),
		Cause:    cause,
		Remediation: []string{
			"check the file for YAML syntax errors",
			"remove the file to fall back to defaults",
		},
	}
}

// UnknownArtifact reports a request for an artifact id absent from the schema.
func UnknownArtifact(artifactID, schemaName string, valid []string) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  fmt.Sprintf("artifact %q does not exist in schema %q", artifactID, schemaName),
		Remediation: []string{
			fmt.Sprintf("valid artifacts: %s", strings.Join(valid, ", ")),
		},
	}
}

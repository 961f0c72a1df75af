// Package testutil provides filesystem helpers shared by openspec tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SchemaYAML is a small valid schema used across tests: review -> notes.
const SchemaYAML = `name: minimal
version: 1
description: Two-step review workflow.
artifacts:
  - id: review
    generates: review.md
    description: Review notes.
    template: review.md
  - id: notes
    generates: notes.md
    description: Follow-up notes.
    template: notes.md
    requires: [review]
`

// CreateTempProject creates a project root containing an openspec/changes
// directory and returns the root path. Cleanup is handled by t.TempDir.
func CreateTempProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "openspec", "changes"), 0755); err != nil {
		t.Fatalf("failed to create project layout: %v", err)
	}
	return root
}

// CreateSchemaDir writes a schema definition plus template files under
// schemasRoot/<name>. Templates maps file name to content.
func CreateSchemaDir(t *testing.T, schemasRoot, name, schemaYAML string, templates map[string]string) string {
	t.Helper()

	dir := filepath.Join(schemasRoot, name)
	if err := os.MkdirAll(filepath.Join(dir, "templates"), 0755); err != nil {
		t.Fatalf("failed to create schema directory: %v", err)
	}

	WriteFile(t, filepath.Join(dir, "schema.yaml"), schemaYAML)
	for fileName, content := range templates {
		WriteFile(t, filepath.Join(dir, "templates", fileName), content)
	}
	return dir
}

// CreateChange creates an empty change directory and returns its path.
func CreateChange(t *testing.T, projectRoot, changeName string) string {
	t.Helper()

	dir := filepath.Join(projectRoot, "openspec", "changes", changeName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create change directory: %v", err)
	}
	return dir
}

// WriteFile writes content to path, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

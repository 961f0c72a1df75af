package fsio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemFSWriteFileCreatesParents(t *testing.T) {
	m := NewMemFS()
	m.WriteFile("project/openspec/changes/add-auth/proposal.md", "# Proposal")

	assert.True(t, m.Exists("project/openspec/changes/add-auth/proposal.md"))
	assert.True(t, m.DirExists("project/openspec/changes/add-auth"))
	assert.True(t, m.DirExists("project/openspec"))
	assert.True(t, m.DirExists("project"))
	assert.False(t, m.DirExists("project/openspec/changes/add-auth/proposal.md"))
}

func TestMemFSReadDir(t *testing.T) {
	m := NewMemFS()
	m.WriteFile("root/b.md", "b")
	m.WriteFile("root/a.md", "a")
	m.MkdirAll("root/sub")
	m.WriteFile("root/sub/nested.md", "n")

	entries, err := m.ReadDir("root")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Name: "a.md"}, entries[0])
	assert.Equal(t, Entry{Name: "b.md"}, entries[1])
	assert.Equal(t, Entry{Name: "sub", Dir: true}, entries[2])
}

func TestMemFSReadDirMissing(t *testing.T) {
	m := NewMemFS()

	_, err := m.ReadDir("nowhere")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMemFSReadFile(t *testing.T) {
	m := NewMemFS()
	m.WriteFile("notes.md", "hello")

	content, err := m.ReadFile("notes.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	_, err = m.ReadFile("missing.md")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	fsys := OS()
	assert.True(t, fsys.Exists(file))
	assert.True(t, fsys.DirExists(dir))
	assert.False(t, fsys.DirExists(file))
	assert.False(t, fsys.Exists(filepath.Join(dir, "missing")))

	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name)
	assert.False(t, entries[0].Dir)
	assert.Equal(t, "sub", entries[1].Name)
	assert.True(t, entries[1].Dir)

	content, err := fsys.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))
}

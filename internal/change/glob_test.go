package change

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openspec-dev/openspec/internal/fsio"
)

func TestGlobTargetExists(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		files    []string
		dirs     []string
		pattern  string
		expected bool
	}{
		"match in named dir": {
			files:    []string{"change/specs/auth.md"},
			pattern:  "specs/*.md",
			expected: true,
		},
		"prefix dir missing": {
			files:    []string{"change/other.md"},
			pattern:  "specs/*.md",
			expected: false,
		},
		"dir present but no extension match": {
			files:    []string{"change/specs/readme.txt"},
			pattern:  "specs/*.md",
			expected: false,
		},
		"empty dir": {
			dirs:     []string{"change/specs"},
			pattern:  "specs/*.md",
			expected: false,
		},
		"no extension matches any file": {
			files:    []string{"change/specs/anything"},
			pattern:  "specs/*",
			expected: true,
		},
		"non-recursive ignores subdirectories": {
			files:    []string{"change/specs/sub/auth.md"},
			pattern:  "specs/*.md",
			expected: false,
		},
		"double star recurses": {
			files:    []string{"change/specs/sub/deep/auth.md"},
			pattern:  "specs/**/*.md",
			expected: true,
		},
		"double star at top level": {
			files:    []string{"change/a/b/c.md"},
			pattern:  "**/*.md",
			expected: true,
		},

		"wildcard in first segment": {
			files:    []string{"change/notes.md"},
			pattern:  "*.md",
			expected: true,
		},
	}

	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fsys := fsio.NewMemFS()
			fsys.MkdirAll("change")
			for _, d := range test.dirs {
				fsys.MkdirAll(d)
			}
			for _, f := range test.files {
				fsys.WriteFile(f, "content")
			}

			assert.Equal(t, test.expected, globTargetExists(fsys, "change", test.pattern))
		})
	}
}

func TestHasWildcard(t *testing.T) {
	t.Parallel()

	assert.True(t, hasWildcard("specs/*.md"))
	assert.True(t, hasWildcard("specs/**/*.md"))
	assert.False(t, hasWildcard("proposal.md"))
}

func TestTrailingExt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".md", trailingExt("*.md"))
	assert.Equal(t, "", trailingExt("*"))
	assert.Equal(t, "", trailingExt("**"))
}

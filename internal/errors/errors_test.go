package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategoryString(t *testing.T) {
	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"argument":      {category: Argument, want: "Argument Error"},
		"configuration": {category: Configuration, want: "Configuration Error"},
		"prerequisite":  {category: Prerequisite, want: "Prerequisite Error"},
		"runtime":       {category: Runtime, want: "Runtime Error"},
		"out of range":  {category: ErrorCategory(99), want: "Error"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestCLIErrorMessageAndCause(t *testing.T) {
	cause := &testError{}
	err := &CLIError{
		Category: Configuration,
		Message:  "failed to parse schema openspec/schemas/tdd/schema.yaml",
		Cause:    cause,
	}

	assert.Equal(t, "failed to parse schema openspec/schemas/tdd/schema.yaml", err.Error())
	assert.True(t, stderrors.Is(err, cause))
}

func TestConstructors(t *testing.T) {
	tests := map[string]struct {
		err      *CLIError
		category ErrorCategory
	}{
		"argument": {
			err:      NewArgumentError("unknown artifact id", "see: openspec templates spec-driven"),
			category: Argument,
		},
		"configuration": {
			err:      NewConfigError("concurrency must be between 1 and 64", "edit the user config"),
			category: Configuration,
		},
		"prerequisite": {
			err:      NewPrerequisiteError("proposal.md is missing", "create it first"),
			category: Prerequisite,
		},
		"runtime": {
			err:      NewRuntimeError("encoding output failed", "retry the command"),
			category: Runtime,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category)
			assert.NotEmpty(t, tt.err.Message)
			assert.Len(t, tt.err.Remediation, 1)
		})
	}
}

func TestNewArgumentErrorWithUsage(t *testing.T) {
	err := NewArgumentErrorWithUsage("a change name is required",
		"openspec status <change-name>",
		"see available changes with: openspec list")

	assert.Equal(t, Argument, err.Category)
	assert.Equal(t, "openspec status <change-name>", err.Usage)
	require.Len(t, err.Remediation, 1)
}

func TestWrap(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, Runtime))
	})

	t.Run("wraps plain error and keeps the cause", func(t *testing.T) {
		cause := &testError{}
		wrapped := Wrap(cause, Configuration)

		require.NotNil(t, wrapped)
		assert.Equal(t, Configuration, wrapped.Category)
		assert.Same(t, cause, wrapped.Cause)
	})

	t.Run("passes through an existing CLIError untouched", func(t *testing.T) {
		original := ChangeNotFound("add-auth", "openspec/changes")
		wrapped := Wrap(original, Runtime)

		assert.Same(t, original, wrapped)
		assert.Equal(t, Prerequisite, wrapped.Category)
	})
}

// testError is a plain error for exercising the wrapping paths.
type testError struct{}

func (e *testError) Error() string { return "test error" }

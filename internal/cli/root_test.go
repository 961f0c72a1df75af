package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandRegistration(t *testing.T) {
	expected := []string{
		"apply <change-name>",
		"instructions <change-name> <artifact>",
		"list",
		"schemas",
		"status <change-name>",
		"templates <schema-name>",
		"validate [change-name]",
		"version",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Use] = true
	}

	for _, use := range expected {
		assert.True(t, registered[use], "command %q should be registered", use)
	}
}

func TestPersistentFlags(t *testing.T) {
	flags := map[string]struct {
		shorthand string
	}{
		"json":     {},
		"no-color": {},
		"schema":   {shorthand: "s"},
	}

	for flagName, flag := range flags {
		t.Run("flag "+flagName, func(t *testing.T) {
			f := rootCmd.PersistentFlags().Lookup(flagName)
			require.NotNil(t, f, "flag %s should exist", flagName)
			if flag.shorthand != "" {
				assert.Equal(t, flag.shorthand, f.Shorthand)
			}
		})
	}
}

func TestValidateCmdFlags(t *testing.T) {
	require.NotNil(t, validateCmd.Flags().Lookup("all"))
	require.NotNil(t, validateCmd.Flags().Lookup("concurrency"))
}

func TestRootCmdSilencesErrors(t *testing.T) {
	// Errors are rendered through the categorized printer, not twice by cobra.
	assert.True(t, rootCmd.SilenceErrors)
}

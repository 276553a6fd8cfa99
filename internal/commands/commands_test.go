package commands_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"transaction-insights/internal/commands"
	"transaction-insights/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runInsights(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := commands.NewRootCommand()

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "seed", "tools"} {
		assert.True(t, names[want], want)
	}
	assert.False(t, names["completion"])
}

func TestRootCommand_Version(t *testing.T) {
	out, err := runInsights(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (commit: none, built: unknown)")
}

func TestMigrateCommand_Subcommands(t *testing.T) {
	root := commands.NewRootCommand()
	migrate, _, err := root.Find([]string{"migrate"})
	require.NoError(t, err)

	var names []string
	for _, sub := range migrate.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status"}, names)

	down, _, err := root.Find([]string{"migrate", "down"})
	require.NoError(t, err)
	assert.Equal(t, "1", down.Flags().Lookup("steps").DefValue)
	assert.NotNil(t, down.InheritedFlags().Lookup("dir"))
}

func TestToolsCommand_PrintsCatalog(t *testing.T) {
	out, err := runInsights(t, "tools")
	require.NoError(t, err)

	var catalog []services.ToolDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &catalog))
	assert.Len(t, catalog, len(services.DefaultToolRegistry().Names()))
	assert.Equal(t, services.DefaultToolRegistry().Names()[0], catalog[0].Name)
}

func TestSeedCommand_RequiresAccountID(t *testing.T) {
	_, err := runInsights(t, "seed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"account-id" not set`)
}

func TestSeedCommand_RejectsInvalidAccountID(t *testing.T) {
	_, err := runInsights(t, "seed", "--account-id", "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a UUID")
}

func TestSeedCommand_Defaults(t *testing.T) {
	root := commands.NewRootCommand()
	seed, _, err := root.Find([]string{"seed"})
	require.NoError(t, err)

	assert.Equal(t, "100", seed.Flags().Lookup("count").DefValue)
	assert.Equal(t, "90", seed.Flags().Lookup("days").DefValue)
	assert.Equal(t, "false", seed.Flags().Lookup("clear").DefValue)
}

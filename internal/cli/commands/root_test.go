package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-ui/weft/internal/platform"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCommand()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"version", "create", "sync", "watch"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCommandSilencesCobraNoise(t *testing.T) {
	root := NewRootCommand()
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)
}

func TestVersionCommand(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"version"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	assert.NoError(t, root.Execute())
}

func TestCreateRejectsUnsupportedPlatform(t *testing.T) {
	resetCreateFlags(t)

	root := NewRootCommand()
	root.SetArgs([]string{"create", "my-app", "--platform", "vue", "--scheme", "codegen"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, platform.ErrUnsupported)
}

func TestSyncOutsideProject(t *testing.T) {
	chdir(t, t.TempDir())

	root := NewRootCommand()
	root.SetArgs([]string{"sync"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in a weft project")
}

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-ui/weft/internal/manifest"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

// resetCreateFlags restores create's package-level flag state between tests.
func resetCreateFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		createPlatform = ""
		createScheme = ""
		createTypeScript = true
		createPkgManager = ""
		createSkipInstall = false
	})
}

func resetSyncFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		syncVerbose = false
		syncBundleDir = ""
	})
}

func TestCreateEndToEnd(t *testing.T) {
	resetCreateFlags(t)
	chdir(t, t.TempDir())

	root := NewRootCommand()
	root.SetArgs([]string{
		"create", "my-app",
		"--platform", "nextjs",
		"--scheme", "codegen",
		"--package-manager", "npm",
		"--skip-install",
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	require.NoError(t, root.Execute())

	m, err := manifest.Load(filepath.Join("my-app", "weft.json"))
	require.NoError(t, err)
	assert.Equal(t, "nextjs", m.Platform)
	assert.Equal(t, "ts", m.Code.Lang)

	_, err = os.Stat(filepath.Join("my-app", "package.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join("my-app", "node_modules"))
	assert.True(t, os.IsNotExist(err), "skip-install must not install")
}

func TestSyncEndToEnd(t *testing.T) {
	resetSyncFlags(t)
	projectRoot := t.TempDir()
	chdir(t, projectRoot)

	m := &manifest.Manifest{
		Platform: "nextjs",
		Code:     manifest.CodeConfig{Lang: "ts", Scheme: "codegen"},
		SrcDir:   "components",
		Projects: []manifest.Project{{
			ProjectID: "proj-1",
			Components: []manifest.Component{{
				Name:          "Hero",
				ComponentType: "component",
				ImportSpec:    manifest.ImportSpec{ModulePath: "Hero.tsx"},
			}},
		}},
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile("weft.json", data, 0644))

	bundle := filepath.Join(".weft", "bundle", "proj-1")
	require.NoError(t, os.MkdirAll(bundle, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(bundle, "Hero.tsx"), []byte("export const Hero = 1;\n"), 0644))

	root := NewRootCommand()
	root.SetArgs([]string{"sync"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	require.NoError(t, root.Execute())

	content, err := os.ReadFile(filepath.Join("components", "Hero.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "export const Hero = 1;\n", string(content))

	_, err = os.Stat(filepath.Join("pages", "index.tsx"))
	assert.NoError(t, err, "entry page reconciled after sync")
}

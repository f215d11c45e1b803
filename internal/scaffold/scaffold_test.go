package scaffold

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-ui/weft/internal/manifest"
	"github.com/weft-ui/weft/internal/platform"
)

type fakeRunner struct {
	calls [][]string
	err   error
}

func (r *fakeRunner) Run(_ context.Context, dir string, name string, args ...string) error {
	call := append([]string{dir, name}, args...)
	r.calls = append(r.calls, call)
	return r.err
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name        string
		projectName string
		expectError bool
	}{
		{"valid name", "my-app", false},
		{"valid with underscores", "my_app", false},
		{"valid alphanumeric", "app123", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"contains slash", "my/app", true},
		{"contains dot", "my.app", true},
		{"path traversal", "../escape", true},
		{"absolute path", "/usr/bin/app", true},
		{"too long", string(make([]byte, 101)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.projectName)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateNextJSLayout(t *testing.T) {
	parent := t.TempDir()
	runner := &fakeRunner{}

	path, err := New(runner, nil).Create(context.Background(), parent, Options{
		Name:           "my-app",
		Platform:       platform.NextJS,
		Scheme:         platform.Codegen,
		TypeScript:     true,
		PackageManager: "npm",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(parent, "my-app"), path)

	for _, rel := range []string{"components", "pages", "package.json", ".gitignore", "README.md", "weft.json"} {
		_, err := os.Stat(filepath.Join(path, rel))
		assert.NoError(t, err, rel)
	}
	assert.Empty(t, runner.calls, "no install unless requested")
}

func TestCreateSeedsSyncConfig(t *testing.T) {
	parent := t.TempDir()

	path, err := New(&fakeRunner{}, nil).Create(context.Background(), parent, Options{
		Name:           "my-app",
		Platform:       platform.Gatsby,
		Scheme:         platform.Codegen,
		TypeScript:     true,
		PackageManager: "npm",
	})
	require.NoError(t, err)

	m, err := manifest.Load(filepath.Join(path, "weft.json"))
	require.NoError(t, err)
	assert.Equal(t, "gatsby", m.Platform)
	assert.Equal(t, "ts", m.Code.Lang)
	assert.Equal(t, "codegen", m.Code.Scheme)
	assert.Equal(t, "src/components", m.SrcDir)
	assert.Empty(t, m.Projects)
}

func TestCreateLoaderSchemeConfigPath(t *testing.T) {
	parent := t.TempDir()

	path, err := New(&fakeRunner{}, nil).Create(context.Background(), parent, Options{
		Name:           "my-app",
		Platform:       platform.NextJS,
		Scheme:         platform.Loader,
		PackageManager: "npm",
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(path, ".weft", "weft.json"))
	assert.NoError(t, err, "loader scheme keeps config under .weft/")
}

func TestCreatePackageJSON(t *testing.T) {
	parent := t.TempDir()

	path, err := New(&fakeRunner{}, nil).Create(context.Background(), parent, Options{
		Name:           "MyApp",
		Platform:       platform.React,
		Scheme:         platform.Loader,
		TypeScript:     true,
		PackageManager: "npm",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(path, "package.json"))
	require.NoError(t, err)

	var pkg map[string]any
	require.NoError(t, json.Unmarshal(data, &pkg))
	assert.Equal(t, "my-app", pkg["name"], "npm names are kebab-case")

	deps := pkg["dependencies"].(map[string]any)
	assert.Contains(t, deps, "react-scripts")
	assert.Contains(t, deps, "@weft/react-web")
	assert.Contains(t, deps, "@weft/loader-react")

	devDeps := pkg["devDependencies"].(map[string]any)
	assert.Contains(t, devDeps, "typescript")
}

func TestCreateRunsInstallWhenRequested(t *testing.T) {
	parent := t.TempDir()
	runner := &fakeRunner{}

	path, err := New(runner, nil).Create(context.Background(), parent, Options{
		Name:           "my-app",
		Platform:       platform.NextJS,
		Scheme:         platform.Codegen,
		PackageManager: "yarn",
		InstallDeps:    true,
	})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{path, "yarn", "install"}, runner.calls[0])
}

func TestCreateRejectsExistingDirectory(t *testing.T) {
	parent := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(parent, "taken"), 0755))

	_, err := New(&fakeRunner{}, nil).Create(context.Background(), parent, Options{
		Name:           "taken",
		Platform:       platform.NextJS,
		Scheme:         platform.Codegen,
		PackageManager: "npm",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateRejectsUnsupportedCombination(t *testing.T) {
	_, err := New(&fakeRunner{}, nil).Create(context.Background(), t.TempDir(), Options{
		Name:           "my-app",
		Platform:       "vue",
		Scheme:         platform.Codegen,
		PackageManager: "npm",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, platform.ErrUnsupported)
}

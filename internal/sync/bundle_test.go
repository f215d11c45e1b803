package sync

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleClientFetch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "proj-1", "pages"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proj-1", "Hero.tsx"), []byte("hero"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "proj-1", "pages", "About.tsx"), []byte("about"), 0644))

	files, err := BundleClient{Dir: dir}.Fetch(context.Background(), "proj-1")
	require.NoError(t, err)
	require.Len(t, files, 2)

	byPath := map[string]string{}
	for _, f := range files {
		byPath[f.Path] = string(f.Content)
	}
	assert.Equal(t, "hero", byPath["Hero.tsx"])
	assert.Equal(t, "about", byPath["pages/About.tsx"])
}

func TestBundleClientMissingProject(t *testing.T) {
	_, err := BundleClient{Dir: t.TempDir()}.Fetch(context.Background(), "proj-404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no staged bundle")
}

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupSupportedCombinations(t *testing.T) {
	for _, p := range Platforms() {
		for _, s := range Schemes() {
			c, err := Lookup(p, s)
			require.NoError(t, err, "platform=%s scheme=%s", p, s)
			assert.NotEmpty(t, c.PagesDir)
			assert.NotEmpty(t, c.ConfigPath)
			assert.NotEmpty(t, c.EntryBasename)
		}
	}
}

func TestLookupConventions(t *testing.T) {
	tests := []struct {
		platform  Platform
		pagesDir  string
		entry     string
		discovery bool
	}{
		{NextJS, "pages", "index", true},
		{Gatsby, "src/pages", "index", true},
		{React, "src", "App", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			c, err := Lookup(tt.platform, Codegen)
			require.NoError(t, err)
			assert.Equal(t, tt.pagesDir, c.PagesDir)
			assert.Equal(t, tt.entry, c.EntryBasename)
			assert.Equal(t, tt.discovery, c.ManagedIndexDiscovery)
		})
	}
}

func TestLookupSchemeSelectsConfigPath(t *testing.T) {
	codegen, err := Lookup(NextJS, Codegen)
	require.NoError(t, err)
	loader, err := Lookup(NextJS, Loader)
	require.NoError(t, err)

	assert.Equal(t, "weft.json", codegen.ConfigPath)
	assert.Equal(t, ".weft/weft.json", loader.ConfigPath)
}

func TestLookupUnsupported(t *testing.T) {
	_, err := Lookup("vue", Codegen)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Lookup(NextJS, "bundler")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestGatsbySweepDirs(t *testing.T) {
	c, err := Lookup(Gatsby, Codegen)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/pages", "src/components"}, c.ExtraSweepDirs)

	c, err = Lookup(NextJS, Codegen)
	require.NoError(t, err)
	assert.Empty(t, c.ExtraSweepDirs)
}

func TestParse(t *testing.T) {
	p, err := ParsePlatform("gatsby")
	require.NoError(t, err)
	assert.Equal(t, Gatsby, p)

	_, err = ParsePlatform("angular")
	assert.ErrorIs(t, err, ErrUnsupported)

	s, err := ParseScheme("loader")
	require.NoError(t, err)
	assert.Equal(t, Loader, s)

	_, err = ParseScheme("")
	assert.ErrorIs(t, err, ErrUnsupported)
}

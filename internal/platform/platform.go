// Package platform maps the supported (platform, scheme) pairs to the file
// layout conventions the rest of the tooling relies on.
package platform

import (
	"errors"
	"fmt"
)

// Platform is the target application framework.
type Platform string

// Scheme is how generated code is integrated into the app.
type Scheme string

const (
	NextJS Platform = "nextjs"
	Gatsby Platform = "gatsby"
	React  Platform = "react"

	Codegen Scheme = "codegen"
	Loader  Scheme = "loader"
)

// ErrUnsupported marks a (platform, scheme) pair outside the supported set.
var ErrUnsupported = errors.New("unsupported platform/scheme combination")

// Conventions are the layout facts implied by a (platform, scheme) pair.
type Conventions struct {
	// PagesDir is the routed-pages directory, relative to the project root.
	PagesDir string
	// ConfigPath is where the tool configuration for this scheme lives,
	// relative to the project root.
	ConfigPath string
	// EntryBasename is the extension-less name of the entry page file.
	EntryBasename string
	// ManagedIndexDiscovery reports whether the platform routes a
	// platform-managed page at the root when one has an index module path.
	ManagedIndexDiscovery bool
	// ExtraSweepDirs are directories swept wholesale before writing an
	// entry page, because the platform's builder treats duplicate
	// basenames across them as a conflict.
	ExtraSweepDirs []string
}

type key struct {
	platform Platform
	scheme   Scheme
}

// conventions is the exhaustive table of the six supported combinations.
// The pages directory and entry basename depend only on the platform; the
// config path depends only on the scheme.
var conventions = map[key]Conventions{
	{NextJS, Codegen}: {PagesDir: "pages", ConfigPath: "weft.json", EntryBasename: "index", ManagedIndexDiscovery: true},
	{NextJS, Loader}:  {PagesDir: "pages", ConfigPath: ".weft/weft.json", EntryBasename: "index", ManagedIndexDiscovery: true},
	{Gatsby, Codegen}: {PagesDir: "src/pages", ConfigPath: "weft.json", EntryBasename: "index", ManagedIndexDiscovery: true, ExtraSweepDirs: []string{"src/pages", "src/components"}},
	{Gatsby, Loader}:  {PagesDir: "src/pages", ConfigPath: ".weft/weft.json", EntryBasename: "index", ManagedIndexDiscovery: true, ExtraSweepDirs: []string{"src/pages", "src/components"}},
	{React, Codegen}:  {PagesDir: "src", ConfigPath: "weft.json", EntryBasename: "App"},
	{React, Loader}:   {PagesDir: "src", ConfigPath: ".weft/weft.json", EntryBasename: "App"},
}

// Lookup resolves the conventions for a (platform, scheme) pair. Pairs
// outside the supported six fail with ErrUnsupported; callers must treat
// that as a configuration error, not a no-op.
func Lookup(p Platform, s Scheme) (Conventions, error) {
	c, ok := conventions[key{p, s}]
	if !ok {
		return Conventions{}, fmt.Errorf("%w: platform=%q scheme=%q", ErrUnsupported, p, s)
	}
	return c, nil
}

// Platforms lists the supported platforms in prompt order.
func Platforms() []Platform {
	return []Platform{NextJS, Gatsby, React}
}

// Schemes lists the supported integration schemes in prompt order.
func Schemes() []Scheme {
	return []Scheme{Codegen, Loader}
}

// ParsePlatform validates a user-supplied platform name.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case NextJS, Gatsby, React:
		return Platform(s), nil
	}
	return "", fmt.Errorf("%w: platform=%q", ErrUnsupported, s)
}

// ParseScheme validates a user-supplied scheme name.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case Codegen, Loader:
		return Scheme(s), nil
	}
	return "", fmt.Errorf("%w: scheme=%q", ErrUnsupported, s)
}

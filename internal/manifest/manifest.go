// Package manifest reads the weft.json project manifest. The manifest is an
// external contract owned by the platform's code generator: this package
// only decodes and queries it, never writes it.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the conventional manifest name at the project root.
const FileName = "weft.json"

// Manifest is the on-disk weft.json document.
type Manifest struct {
	Platform string     `json:"platform"`
	Code     CodeConfig `json:"code"`
	SrcDir   string     `json:"srcDir"`
	Projects []Project  `json:"projects"`
}

// CodeConfig holds language-level generation settings.
type CodeConfig struct {
	Lang   string `json:"lang"`
	Scheme string `json:"scheme"`
}

// Project is one synced design project and its generated components.
type Project struct {
	ProjectID   string      `json:"projectId"`
	ProjectName string      `json:"projectName"`
	Components  []Component `json:"components"`
}

// Component is a single generated component entry.
type Component struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	ComponentType string     `json:"componentType"`
	ImportSpec    ImportSpec `json:"importSpec"`
}

// ImportSpec locates a component's generated module relative to srcDir.
type ImportSpec struct {
	ModulePath string `json:"modulePath"`
}

// IsPage reports whether the component is routed as a page.
func (c Component) IsPage() bool {
	return c.ComponentType == "page"
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	return &m, nil
}

// Validate checks the fields the sync tooling depends on. A manifest written
// by the platform always carries them; a hand-edited one may not.
func (m *Manifest) Validate() error {
	if m.SrcDir == "" {
		return fmt.Errorf("missing required field: srcDir")
	}
	for _, p := range m.Projects {
		for _, c := range p.Components {
			if c.ImportSpec.ModulePath == "" {
				return fmt.Errorf("component %q is missing importSpec.modulePath", c.Name)
			}
		}
	}
	return nil
}

// Components returns every component across all projects, in manifest order.
func (m *Manifest) Components() []Component {
	var all []Component
	for _, p := range m.Projects {
		all = append(all, p.Components...)
	}
	return all
}

// PageComponents returns the components routed as pages, in manifest order.
func (m *Manifest) PageComponents() []Component {
	var pages []Component
	for _, c := range m.Components() {
		if c.IsPage() {
			pages = append(pages, c)
		}
	}
	return pages
}

// ProtectedBasenames returns the basenames of every managed module path.
// Files matching these names must never be deleted by local tooling.
//
// Matching is by basename only, not full path. Two same-named files in
// different directories are both protected even when the manifest entry
// points at just one of them. This over-matching is a known, load-bearing
// approximation; do not tighten it to full-path comparison.
func (m *Manifest) ProtectedBasenames() map[string]bool {
	protected := make(map[string]bool)
	for _, c := range m.Components() {
		protected[filepath.Base(c.ImportSpec.ModulePath)] = true
	}
	return protected
}

// HasIndexPage reports whether a platform-managed page already occupies the
// root route: a page component whose module path has an "index" segment.
func (m *Manifest) HasIndexPage() bool {
	for _, c := range m.PageComponents() {
		mp := "/" + strings.ToLower(filepath.ToSlash(c.ImportSpec.ModulePath))
		if strings.Contains(mp, "/index.") {
			return true
		}
	}
	return false
}

package indexpage

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	casing "github.com/weft-ui/weft/internal/util/strings"
)

// welcomeTemplate is the self-contained placeholder written when no page
// occupies the root route. PageLinks is empty when the manifest has no page
// components, in which case no list is rendered.
var welcomeTemplate = template.Must(template.New("welcome").Parse(`import React from "react";

function {{.ComponentName}}() {
  return (
    <div style={{"{{"}} padding: "4rem", fontFamily: "sans-serif" {{"}}"}}>
      <h1>Welcome to your Weft app</h1>
      <p>
        This placeholder page was generated because no home page was found.
        Replace it by designing a page at the root route, then run{" "}
        <code>weft sync</code>.
      </p>
{{- if .PageLinks}}
      <h2>Your pages</h2>
      <ul>
{{- range .PageLinks}}
        <li>
          <a href="{{.Href}}">{{.Name}}</a>
        </li>
{{- end}}
      </ul>
{{- end}}
    </div>
  );
}

export default {{.ComponentName}};
`))

// wrapperTemplate renders a discovered home component at the entry slot.
var wrapperTemplate = template.Must(template.New("wrapper").Parse(`import React from "react";
import {{.ImportName}} from "{{.ImportPath}}";

function {{.ComponentName}}() {
  return <{{.ImportName}} />;
}

export default {{.ComponentName}};
`))

type pageLink struct {
	Name string
	Href string
}

type welcomeData struct {
	ComponentName string
	PageLinks     []pageLink
}

type wrapperData struct {
	ComponentName string
	ImportName    string
	ImportPath    string
}

// renderWelcome builds the placeholder page, linking every manifest page
// component by its route: the module path made relative to the pages
// directory, extension stripped, with a leading slash.
func (r *Resolver) renderWelcome() (string, error) {
	var links []pageLink
	for _, c := range r.m.PageComponents() {
		href, err := r.routeFor(c.ImportSpec.ModulePath)
		if err != nil {
			return "", err
		}
		name := c.Name
		if name == "" {
			name = href
		}
		links = append(links, pageLink{Name: name, Href: href})
	}

	var b strings.Builder
	err := welcomeTemplate.Execute(&b, welcomeData{
		ComponentName: componentName(r.conv.EntryBasename),
		PageLinks:     links,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render welcome page: %w", err)
	}
	return b.String(), nil
}

// renderHomeWrapper builds a thin entry file that imports and renders the
// discovered home module. home is relative to the project root.
func (r *Resolver) renderHomeWrapper(home string) (string, error) {
	rel, err := filepath.Rel(r.conv.PagesDir, home)
	if err != nil {
		return "", fmt.Errorf("failed to resolve import path for %s: %w", home, err)
	}
	importPath := stripExt(filepath.ToSlash(rel))
	if !strings.HasPrefix(importPath, ".") {
		importPath = "./" + importPath
	}

	stem := stripExt(filepath.Base(home))
	var b strings.Builder
	err = wrapperTemplate.Execute(&b, wrapperData{
		ComponentName: componentName(r.conv.EntryBasename),
		ImportName:    componentName(stem),
		ImportPath:    importPath,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render home wrapper: %w", err)
	}
	return b.String(), nil
}

// routeFor converts a srcDir-relative module path into the route it is
// served at: relative to the pages directory, extension stripped, leading
// slash prepended.
func (r *Resolver) routeFor(modulePath string) (string, error) {
	full := filepath.Join(r.m.SrcDir, modulePath)
	rel, err := filepath.Rel(r.conv.PagesDir, full)
	if err != nil {
		return "", fmt.Errorf("failed to compute route for %s: %w", modulePath, err)
	}
	return "/" + stripExt(filepath.ToSlash(rel)), nil
}

func stripExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// componentName turns a file stem into a JSX component identifier.
func componentName(stem string) string {
	name := casing.ToPascalCase(stem)
	if name == "" {
		return "Index"
	}
	return name
}

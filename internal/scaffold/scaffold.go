// Package scaffold creates a new application wired to the Weft platform:
// directory layout, package.json, sync configuration, and the initial
// dependency install.
package scaffold

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/weft-ui/weft/internal/manifest"
	"github.com/weft-ui/weft/internal/platform"
	casing "github.com/weft-ui/weft/internal/util/strings"
)

//go:embed templates/*
var templatesFS embed.FS

var projectNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateProjectName checks a user-supplied project name. Names become
// directory names and npm package names, so the character set is strict.
func ValidateProjectName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) == 0 || len(name) > 100 {
		return fmt.Errorf("project name must be 1-100 characters")
	}
	if filepath.IsAbs(name) {
		return fmt.Errorf("project name cannot be an absolute path")
	}
	if !projectNameRe.MatchString(name) {
		return fmt.Errorf("project name can only contain letters, numbers, dashes, and underscores")
	}
	return nil
}

// Options describes the app to create.
type Options struct {
	Name       string
	Platform   platform.Platform
	Scheme     platform.Scheme
	TypeScript bool
	// PackageManager is "yarn" or "npm"; empty means detect.
	PackageManager string
	// InstallDeps controls whether the package-manager install runs.
	InstallDeps bool
}

// Scaffolder creates project trees.
type Scaffolder struct {
	runner Runner
	log    *zap.Logger
}

// New creates a Scaffolder. A nil runner gets an ExecRunner, a nil logger a
// nop logger.
func New(runner Runner, log *zap.Logger) *Scaffolder {
	if runner == nil {
		runner = ExecRunner{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scaffolder{runner: runner, log: log}
}

// Create builds the project under parent and returns its path. The
// (platform, scheme) pair is validated before any directory is created.
func (s *Scaffolder) Create(ctx context.Context, parent string, opts Options) (string, error) {
	if err := ValidateProjectName(opts.Name); err != nil {
		return "", err
	}
	conv, err := platform.Lookup(opts.Platform, opts.Scheme)
	if err != nil {
		return "", err
	}

	projectPath := filepath.Join(parent, opts.Name)
	if _, err := os.Stat(projectPath); err == nil {
		return "", fmt.Errorf("directory %s already exists", opts.Name)
	}

	srcDir := srcDirFor(opts.Platform)
	dirs := []string{
		projectPath,
		filepath.Join(projectPath, srcDir),
		filepath.Join(projectPath, conv.PagesDir),
	}
	if dir := filepath.Dir(conv.ConfigPath); dir != "." {
		dirs = append(dirs, filepath.Join(projectPath, dir))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	pm := opts.PackageManager
	if pm == "" {
		pm = DetectPackageManager()
	}

	if err := s.writePackageJSON(projectPath, opts); err != nil {
		return "", err
	}
	if err := s.writeSyncConfig(projectPath, conv.ConfigPath, srcDir, opts); err != nil {
		return "", err
	}
	if err := s.renderTemplate(projectPath, ".gitignore", "templates/gitignore.tmpl", nil); err != nil {
		return "", err
	}
	readmeData := map[string]string{
		"Name":           opts.Name,
		"Platform":       string(opts.Platform),
		"PackageManager": pm,
		"SrcDir":         srcDir,
		"PagesDir":       conv.PagesDir,
		"ConfigPath":     conv.ConfigPath,
	}
	if err := s.renderTemplate(projectPath, "README.md", "templates/README.md.tmpl", readmeData); err != nil {
		return "", err
	}

	if opts.InstallDeps {
		s.log.Info("installing dependencies", zap.String("package_manager", pm))
		if err := s.runner.Run(ctx, projectPath, pm, "install"); err != nil {
			return "", fmt.Errorf("dependency install failed: %w", err)
		}
	}

	return projectPath, nil
}

// srcDirFor is where synced components land for each platform.
func srcDirFor(p platform.Platform) string {
	if p == platform.NextJS {
		return "components"
	}
	return "src/components"
}

type packageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

func (s *Scaffolder) writePackageJSON(projectPath string, opts Options) error {
	deps := map[string]string{
		"react":           "^18.2.0",
		"react-dom":       "^18.2.0",
		"@weft/react-web": "^0.2.0",
	}
	scripts := map[string]string{}

	switch opts.Platform {
	case platform.NextJS:
		deps["next"] = "^14.2.0"
		scripts["dev"] = "next dev"
		scripts["build"] = "next build"
		scripts["start"] = "next start"
	case platform.Gatsby:
		deps["gatsby"] = "^5.13.0"
		scripts["dev"] = "gatsby develop"
		scripts["build"] = "gatsby build"
		scripts["serve"] = "gatsby serve"
	case platform.React:
		deps["react-scripts"] = "5.0.1"
		scripts["dev"] = "react-scripts start"
		scripts["build"] = "react-scripts build"
	}
	if opts.Scheme == platform.Loader {
		deps["@weft/loader-"+string(opts.Platform)] = "^1.0.0"
	}

	var devDeps map[string]string
	if opts.TypeScript {
		devDeps = map[string]string{
			"typescript":       "^5.4.0",
			"@types/react":     "^18.2.0",
			"@types/react-dom": "^18.2.0",
		}
	}

	pkg := packageJSON{
		Name:            casing.ToKebabCase(opts.Name),
		Version:         "0.1.0",
		Private:         true,
		Scripts:         scripts,
		Dependencies:    deps,
		DevDependencies: devDeps,
	}

	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal package.json: %w", err)
	}
	path := filepath.Join(projectPath, "package.json")
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write package.json: %w", err)
	}
	return nil
}

// writeSyncConfig seeds the manifest the sync CLI reads. Projects start
// empty; the first sync fills them in.
func (s *Scaffolder) writeSyncConfig(projectPath, configPath, srcDir string, opts Options) error {
	lang := "js"
	if opts.TypeScript {
		lang = "ts"
	}
	seed := manifest.Manifest{
		Platform: string(opts.Platform),
		Code:     manifest.CodeConfig{Lang: lang, Scheme: string(opts.Scheme)},
		SrcDir:   srcDir,
		Projects: []manifest.Project{},
	}

	data, err := json.MarshalIndent(seed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sync config: %w", err)
	}
	path := filepath.Join(projectPath, filepath.FromSlash(configPath))
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	return nil
}

func (s *Scaffolder) renderTemplate(projectPath, destName, tmplPath string, data any) error {
	content, err := templatesFS.ReadFile(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", tmplPath, err)
	}
	tmpl, err := template.New(filepath.Base(tmplPath)).Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", tmplPath, err)
	}

	dest := filepath.Join(projectPath, destName)
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s: %w", destName, err)
	}
	return f.Close()
}

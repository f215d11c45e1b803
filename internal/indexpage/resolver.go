// Package indexpage reconciles a project's entry page after a sync. The
// entry slot must end up in exactly one of three states: already occupied by
// a platform-managed page, occupied by a wrapper around a discovered home
// component, or occupied by a generated welcome page. Platform-managed files
// are never deleted.
package indexpage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/weft-ui/weft/internal/manifest"
	"github.com/weft-ui/weft/internal/platform"
)

// Outcome is the resolved state of the entry-page slot.
type Outcome int

const (
	// OutcomeSatisfied means a platform-managed page already occupies the
	// root route; nothing was written.
	OutcomeSatisfied Outcome = iota
	// OutcomeWrappedHome means a wrapper importing a discovered home
	// component was written.
	OutcomeWrappedHome
	// OutcomeWelcome means a self-contained welcome page was written.
	OutcomeWelcome
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSatisfied:
		return "satisfied"
	case OutcomeWrappedHome:
		return "wrapped-home"
	case OutcomeWelcome:
		return "welcome"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Resolver reconciles the entry page for one project tree.
type Resolver struct {
	root   string
	m      *manifest.Manifest
	target platform.Platform
	conv   platform.Conventions
	log    *zap.Logger
}

// New builds a Resolver for the project rooted at root. The (platform,
// scheme) pair is taken from the manifest and must be one of the supported
// combinations; anything else fails here, before any file is touched.
func New(root string, m *manifest.Manifest, log *zap.Logger) (*Resolver, error) {
	if log == nil {
		log = zap.NewNop()
	}

	target, err := platform.ParsePlatform(m.Platform)
	if err != nil {
		return nil, err
	}

	scheme := platform.Scheme(m.Code.Scheme)
	if m.Code.Scheme == "" {
		scheme = platform.Codegen
	}
	conv, err := platform.Lookup(target, scheme)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		root:   root,
		m:      m,
		target: target,
		conv:   conv,
		log:    log,
	}, nil
}

// Resolve runs the reconciliation: sweep stale entry files, then either
// accept an existing platform-managed index page or write a new entry file.
// Filesystem errors propagate; there is no retry and no partial rollback. A
// crash between the sweep and the final write leaves the entry file absent.
func (r *Resolver) Resolve() (Outcome, error) {
	protected := r.m.ProtectedBasenames()
	pagesDir := filepath.Join(r.root, r.conv.PagesDir)

	if err := r.sweepEntryMatches(pagesDir, protected); err != nil {
		return 0, err
	}
	for _, dir := range r.conv.ExtraSweepDirs {
		if err := r.sweepAll(filepath.Join(r.root, dir), protected); err != nil {
			return 0, err
		}
	}

	if r.conv.ManagedIndexDiscovery && r.m.HasIndexPage() {
		r.log.Debug("entry page already platform-managed",
			zap.String("platform", string(r.target)))
		return OutcomeSatisfied, nil
	}

	home, err := r.findHomeModule()
	if err != nil {
		return 0, err
	}

	var content string
	outcome := OutcomeWelcome
	if home != "" && !r.conv.ManagedIndexDiscovery {
		content, err = r.renderHomeWrapper(home)
		if err != nil {
			return 0, err
		}
		outcome = OutcomeWrappedHome
	} else {
		content, err = r.renderWelcome()
		if err != nil {
			return 0, err
		}
	}

	entryPath := filepath.Join(pagesDir, r.conv.EntryBasename+r.entryExt())
	if err := os.MkdirAll(pagesDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create pages directory: %w", err)
	}
	if err := os.WriteFile(entryPath, []byte(content), 0644); err != nil {
		return 0, fmt.Errorf("failed to write entry page: %w", err)
	}
	r.log.Debug("wrote entry page",
		zap.String("path", entryPath),
		zap.String("outcome", outcome.String()))

	return outcome, nil
}

// sweepEntryMatches deletes files in dir whose extension-less basename is
// the platform's entry basename, skipping protected names. Protection is by
// basename only, which can over-match same-named files elsewhere; that
// approximation is intentional.
func (r *Resolver) sweepEntryMatches(dir string, protected map[string]bool) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if protected[name] {
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if stem != r.conv.EntryBasename {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		r.log.Debug("removed stale entry file", zap.String("path", path))
	}
	return nil
}

// sweepAll deletes every unprotected regular file directly inside dir. The
// Gatsby builder treats duplicate basenames across its pages and components
// trees as a conflict, so the starter files have to go wholesale.
func (r *Resolver) sweepAll(dir string, protected map[string]bool) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || protected[e.Name()] {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		r.log.Debug("removed colliding file", zap.String("path", path))
	}
	return nil
}

// findHomeModule scans the manifest's source directory for a file whose
// extension-less basename is "index" or "home", case-insensitively. Returns
// the path relative to the project root, or "" when nothing matches. Walk
// order is lexical, so the result is deterministic.
func (r *Resolver) findHomeModule() (string, error) {
	srcDir := filepath.Join(r.root, r.m.SrcDir)

	var found string
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || found != "" {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())))
		if stem == "index" || stem == "home" {
			rel, relErr := filepath.Rel(r.root, path)
			if relErr != nil {
				return relErr
			}
			found = rel
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to scan %s: %w", srcDir, err)
	}
	return found, nil
}

// entryExt picks the generated file extension from the manifest language.
func (r *Resolver) entryExt() string {
	if r.m.Code.Lang == "ts" {
		return ".tsx"
	}
	return ".jsx"
}

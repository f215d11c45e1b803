// Package sync pulls generated component code into the local tree and
// reconciles the entry page afterwards. The platform transport is injected
// through Client; this package only decides what lands on disk.
package sync

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/weft-ui/weft/internal/indexpage"
	"github.com/weft-ui/weft/internal/manifest"
)

// GeneratedFile is one file produced by the platform, with its path
// relative to the manifest's srcDir.
type GeneratedFile struct {
	Path    string
	Content []byte
}

// Client fetches the generated files for a project. Implementations own
// transport and authentication; both are outside this package.
type Client interface {
	Fetch(ctx context.Context, projectID string) ([]GeneratedFile, error)
}

// Notifier checks for a newer CLI release. A sync run surfaces the result
// but never fails because of it.
type Notifier interface {
	LatestVersion(ctx context.Context) (string, error)
}

// Reporter receives errors for out-of-band crash reporting.
type Reporter interface {
	Report(err error)
}

// NopNotifier and NopReporter are the defaults when no collaborator is
// injected.
type NopNotifier struct{}

func (NopNotifier) LatestVersion(context.Context) (string, error) { return "", nil }

type NopReporter struct{}

func (NopReporter) Report(error) {}

// ZapReporter sends errors to a structured log. It stands in for the hosted
// crash-reporting sink when telemetry is not configured.
type ZapReporter struct {
	Log *zap.Logger
}

func (r ZapReporter) Report(err error) {
	r.Log.Error("sync failure", zap.Error(err))
}

// Result summarizes one sync run.
type Result struct {
	RunID   string
	Written []string
	Skipped []string
	Outcome indexpage.Outcome
}

// Syncer drives sync runs for one project root.
type Syncer struct {
	root     string
	client   Client
	reporter Reporter
	log      *zap.Logger
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithLogger sets the structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Syncer) { s.log = log }
}

// WithReporter sets the error-reporting sink.
func WithReporter(r Reporter) Option {
	return func(s *Syncer) { s.reporter = r }
}

// New creates a Syncer for the project rooted at root.
func New(root string, client Client, opts ...Option) *Syncer {
	s := &Syncer{
		root:     root,
		client:   client,
		reporter: NopReporter{},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one sync: fetch every project's generated files, write the
// ones that changed, then reconcile the entry page. Errors are reported to
// the sink and returned; nothing is retried.
func (s *Syncer) Run(ctx context.Context) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	log := s.log.With(zap.String("run_id", result.RunID))

	m, err := manifest.Load(filepath.Join(s.root, manifest.FileName))
	if err != nil {
		return nil, s.fail(err)
	}

	for _, project := range m.Projects {
		files, err := s.client.Fetch(ctx, project.ProjectID)
		if err != nil {
			return nil, s.fail(fmt.Errorf("failed to fetch project %s: %w", project.ProjectID, err))
		}
		for _, f := range files {
			written, err := s.writeFile(m.SrcDir, f)
			if err != nil {
				return nil, s.fail(err)
			}
			if written {
				result.Written = append(result.Written, f.Path)
				log.Debug("wrote file", zap.String("path", f.Path))
			} else {
				result.Skipped = append(result.Skipped, f.Path)
				log.Debug("unchanged, skipped", zap.String("path", f.Path))
			}
		}
	}

	resolver, err := indexpage.New(s.root, m, log)
	if err != nil {
		return nil, s.fail(err)
	}
	result.Outcome, err = resolver.Resolve()
	if err != nil {
		return nil, s.fail(err)
	}

	log.Info("sync complete",
		zap.Int("written", len(result.Written)),
		zap.Int("skipped", len(result.Skipped)),
		zap.String("entry_page", result.Outcome.String()))

	return result, nil
}

// writeFile writes one generated file under srcDir, skipping the write when
// the content on disk is already identical. Reports whether it wrote.
func (s *Syncer) writeFile(srcDir string, f GeneratedFile) (bool, error) {
	path := filepath.Join(s.root, srcDir, filepath.FromSlash(f.Path))

	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, f.Content) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
	}
	if err := os.WriteFile(path, f.Content, 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	return true, nil
}

func (s *Syncer) fail(err error) error {
	s.reporter.Report(err)
	return err
}

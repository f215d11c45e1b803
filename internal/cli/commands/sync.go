package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/weft-ui/weft/internal/cli/config"
	"github.com/weft-ui/weft/internal/cli/ui"
	weftsync "github.com/weft-ui/weft/internal/sync"
)

var (
	syncVerbose   bool
	syncBundleDir string
)

// notifier is the update-check collaborator. Swapped out in tests; the
// default never reports an update.
var notifier weftsync.Notifier = weftsync.NopNotifier{}

// NewSyncCommand creates the sync command
func NewSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull generated components into the local tree",
		Long: `Pull the generated code for every project in weft.json into the local
tree, then reconcile the app's entry page.

Files that have not changed since the last sync are left untouched.
Files listed in the manifest are never deleted.

Examples:
  weft sync
  weft sync --verbose
  weft sync --bundle-dir exports`,
		RunE: runSync,
	}

	cmd.Flags().BoolVarP(&syncVerbose, "verbose", "v", false, "Log every file decision")
	cmd.Flags().StringVar(&syncBundleDir, "bundle-dir", "", "Staged bundle directory (default from .weftrc)")

	return cmd
}

func runSync(cmd *cobra.Command, args []string) error {
	syncer, _, err := buildSyncer()
	if err != nil {
		return err
	}

	spinner := ui.NewSpinner(cmd.OutOrStdout(), "Syncing...", false)
	if !syncVerbose {
		spinner.Start()
	}

	result, err := syncer.Run(cmd.Context())
	if err != nil {
		spinner.Error("sync failed")
		return err
	}
	spinner.Success(fmt.Sprintf("Synced: %d written, %d unchanged, entry page %s",
		len(result.Written), len(result.Skipped), result.Outcome))

	if latest, err := notifier.LatestVersion(cmd.Context()); err == nil && latest != "" && latest != Version {
		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(),
			"A newer weft CLI is available: %s (you have %s)\n", latest, Version)
	}

	return nil
}

// buildSyncer assembles a Syncer for the enclosing project, returning the
// project root alongside it.
func buildSyncer() (*weftsync.Syncer, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	root, err := config.FindProjectRoot(cwd)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}

	bundleDir := syncBundleDir
	if bundleDir == "" {
		bundleDir = cfg.Sync.BundleDir
	}
	if !filepath.IsAbs(bundleDir) {
		bundleDir = filepath.Join(root, bundleDir)
	}

	log := newLogger(syncVerbose)
	syncer := weftsync.New(root,
		weftsync.BundleClient{Dir: bundleDir},
		weftsync.WithLogger(log),
		weftsync.WithReporter(weftsync.ZapReporter{Log: log}),
	)
	return syncer, root, nil
}

// newLogger builds the CLI's structured logger. Verbose mode logs to stderr
// at debug level; otherwise logging is off and the UI layer speaks.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

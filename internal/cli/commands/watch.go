package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/internal/cli/config"
	"github.com/weft-ui/weft/internal/watch"
)

var watchVerbose bool

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run sync when the project changes",
		Long: `Run an initial sync, then keep watching the manifest and the staged
bundle directory, re-running sync after each change burst.

Stop with Ctrl-C.`,
		RunE: runWatch,
	}

	cmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "Log every file decision")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	infoColor := color.New(color.FgCyan)
	errColor := color.New(color.FgRed)

	syncVerbose = watchVerbose
	syncer, root, err := buildSyncer()
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	runOnce := func() {
		result, err := syncer.Run(cmd.Context())
		if err != nil {
			errColor.Fprintf(cmd.ErrOrStderr(), "sync failed: %v\n", err)
			return
		}
		infoColor.Fprintf(cmd.OutOrStdout(), "synced: %d written, %d unchanged, entry page %s\n",
			len(result.Written), len(result.Skipped), result.Outcome)
	}

	runOnce()

	// Watch the project root for manifest edits and the bundle directory
	// for fresh exports. Generated output dirs are left unwatched so a
	// sync's own writes do not retrigger it.
	dirs := []string{".", cfg.Sync.BundleDir}
	w, err := watch.New(root, dirs, func([]string) error {
		runOnce()
		return nil
	}, newLogger(watchVerbose))
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	infoColor.Fprintln(cmd.OutOrStdout(), "watching for changes (Ctrl-C to stop)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
	case <-cmd.Context().Done():
	}

	return nil
}

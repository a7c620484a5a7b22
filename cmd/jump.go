package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"thoreinstein.com/pj/pkg/config"
	"thoreinstein.com/pj/pkg/discovery"
	pjerrors "thoreinstein.com/pj/pkg/errors"
	"thoreinstein.com/pj/pkg/matcher"
	"thoreinstein.com/pj/pkg/selector"
	"thoreinstein.com/pj/pkg/state"
	"thoreinstein.com/pj/pkg/ui"
)

// timeResolution rounds the verbose scan timing to something readable.
const timeResolution = time.Millisecond

// runJump drives the pipeline: bounce short-circuit, then discovery,
// matching, and selection.
func runJump(cmd *cobra.Command, cfg *config.Config, pattern string) error {
	out := cmd.OutOrStdout()

	// The bounce pattern never needs a scan: it resolves entirely from the
	// previous-directory slot.
	if pattern == "-" {
		store, err := state.NewFileStore()
		if err != nil {
			return pjerrors.ErrNoPreviousDir
		}
		return runBounce(out, store)
	}

	scanner := discovery.NewScanner(cfg.ScanPaths, cfg.ProjectMarkers, cfg.MaxDepth)
	scanner.Verbose = verbose
	result, err := scanner.Scan()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanned %d directories in %s, found %d projects\n",
			result.Scanned, result.Duration.Round(timeResolution), len(result.Projects))
	}

	if len(result.Projects) == 0 {
		return pjerrors.ErrNoProjects
	}

	matches := matcher.Match(result.Projects, pattern)

	sel := &selector.Selector{
		ForceList:   listMode,
		Interactive: ui.IsInteractive(),
		Picker:      ui.PickProject,
		Out:         out,
	}
	return sel.Select(matches, pattern)
}

// runBounce resolves the bounce pattern against the previous-directory
// store. A stale record (directory gone) fails with its own message; a
// missing or unreadable record degrades to "not recorded".
func runBounce(out io.Writer, store state.Store) error {
	prev, ok := store.Get()
	if !ok {
		return pjerrors.ErrNoPreviousDir
	}

	info, err := os.Stat(prev)
	if err != nil || !info.IsDir() {
		return pjerrors.Newf("previous directory no longer exists: %s", prev)
	}

	fmt.Fprintln(out, prev)
	return nil
}

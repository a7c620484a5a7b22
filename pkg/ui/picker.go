// Package ui holds the interactive collaborators: the fzf picker and the
// controlling-terminal probe.
package ui

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"

	"thoreinstein.com/pj/pkg/discovery"
	pjerrors "thoreinstein.com/pj/pkg/errors"
)

// PickProject prompts the user to select a project using fzf. The input
// order is the matcher's ranking, so fzf's own sorting is disabled.
func PickProject(projects []discovery.Project) (*discovery.Project, error) {
	if len(projects) == 0 {
		return nil, pjerrors.ErrNoProjects
	}

	// Check if fzf is installed
	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return nil, errors.Wrap(err, "fzf not found in PATH")
	}

	// Prepare input: display path <tab> absolute path. The display path is
	// what the user searches; the absolute path rides along for the result.
	var input bytes.Buffer
	for _, p := range projects {
		fmt.Fprintf(&input, "%s\t%s\n", p.DisplayPath, p.Path)
	}

	// --no-sort keeps the matcher's ranking; --with-nth=1 hides the
	// absolute-path column from the list.
	// #nosec G204 - fzf binary is looked up in PATH, no user-controlled arguments are passed directly
	cmd := exec.Command(fzfPath,
		"--height=40%",
		"--layout=reverse",
		"--delimiter=\t",
		"--with-nth=1",
		"--no-sort",
		"--cycle",
	)
	cmd.Stdin = &input
	cmd.Stderr = os.Stderr // fzf uses stderr for UI rendering
	var output bytes.Buffer
	cmd.Stdout = &output

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// fzf returns 130 on cancellation (ESC, Ctrl-C, Ctrl-G)
			if exitErr.ExitCode() == 130 {
				return nil, pjerrors.ErrCancelled
			}
		}
		return nil, errors.Wrap(err, "fzf failed")
	}

	selectedLine := strings.TrimSpace(output.String())
	if selectedLine == "" {
		return nil, pjerrors.ErrCancelled
	}

	parts := strings.Split(selectedLine, "\t")
	if len(parts) < 2 {
		return nil, errors.Newf("invalid selection output: %q", selectedLine)
	}

	selectedPath := parts[1]

	for i := range projects {
		if projects[i].Path == selectedPath {
			return &projects[i], nil
		}
	}

	return nil, errors.Newf("selected project path %q not found in original list", selectedPath)
}

// Package selector reduces ranked matches to a single emitted path, a
// printed list, or a terminal failure.
package selector

import (
	"fmt"
	"io"

	"thoreinstein.com/pj/pkg/discovery"
	pjerrors "thoreinstein.com/pj/pkg/errors"
	"thoreinstein.com/pj/pkg/matcher"
)

// Mode describes how a match set is reduced to output. It is resolved once
// from the match count, the --list flag, and the terminal probe; nothing
// downstream re-checks interactivity.
type Mode int

const (
	// ModeAuto emits the single match immediately. A single match never
	// raises the picker, interactive or not.
	ModeAuto Mode = iota
	// ModeList prints every match, one absolute path per line, in rank order.
	ModeList
	// ModeInteractive hands the ranked matches to the picker.
	ModeInteractive
)

// Picker asks the user to choose one project from the ranked list. It
// returns ErrCancelled (or an error wrapping it) when the user bails out.
type Picker func(projects []discovery.Project) (*discovery.Project, error)

// Selector is the terminal stage of the jump pipeline.
type Selector struct {
	ForceList   bool      // --list: always print, never pick
	Interactive bool      // a controlling terminal is attached
	Picker      Picker    // interactive collaborator (fzf in production)
	Out         io.Writer // success channel; paths only, no decoration
}

// Resolve picks the output mode for a non-empty match set.
func Resolve(matchCount int, forceList, interactive bool) Mode {
	switch {
	case matchCount == 1:
		return ModeAuto
	case forceList || !interactive:
		return ModeList
	default:
		return ModeInteractive
	}
}

// Select writes the chosen path(s) to Out or returns a terminal error.
// Zero matches map to ErrNoProjects when pattern is empty (nothing was
// discovered at all) and to a NoMatchError otherwise.
func (s *Selector) Select(matches []matcher.Result, pattern string) error {
	if len(matches) == 0 {
		if pattern == "" {
			return pjerrors.ErrNoProjects
		}
		return pjerrors.NewNoMatchError(pattern)
	}

	switch Resolve(len(matches), s.ForceList, s.Interactive) {
	case ModeAuto:
		fmt.Fprintln(s.Out, matches[0].Project.Path)

	case ModeList:
		for _, m := range matches {
			fmt.Fprintln(s.Out, m.Project.Path)
		}

	case ModeInteractive:
		projects := make([]discovery.Project, len(matches))
		for i, m := range matches {
			projects[i] = m.Project
		}
		chosen, err := s.Picker(projects)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.Out, chosen.Path)
	}

	return nil
}

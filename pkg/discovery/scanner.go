// Package discovery walks the configured scan roots and reports project
// directories, identified by marker entries such as ".git".
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Scanner scans directories for project roots.
type Scanner struct {
	Roots    []string // Scan roots, in configured order
	Markers  []string // Entry names that mark a project root
	MaxDepth int      // 0 checks the roots themselves only
	Verbose  bool
}

// NewScanner creates a new scanner.
func NewScanner(roots, markers []string, depth int) *Scanner {
	return &Scanner{
		Roots:    roots,
		Markers:  markers,
		MaxDepth: depth,
	}
}

// Scan performs the scan and returns the result.
//
// Directories that cannot be read are skipped silently; a missing or
// unreadable root never fails the scan for the remaining roots. Once a
// directory is classified as a project its subtree is pruned, so nested
// repositories (vendored submodules and the like) are not reported.
func (s *Scanner) Scan() (*Result, error) {
	start := time.Now()
	var projects []Project
	scanned := 0

	for _, root := range s.Roots {
		if _, err := os.Stat(root); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: scan path does not exist: %s\n", root)
			continue
		}
		if s.Verbose {
			fmt.Fprintf(os.Stderr, "Scanning %s\n", root)
		}

		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // Ignore permission errors
			}
			if !d.IsDir() {
				return nil
			}

			scanned++

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return nil
			}
			depth := 0
			if rel != "." {
				depth = strings.Count(rel, string(os.PathSeparator)) + 1
			}
			if depth > s.MaxDepth {
				return filepath.SkipDir
			}

			if !s.isProject(path) {
				return nil
			}

			projects = append(projects, Project{
				Path:        path,
				DisplayPath: displayPath(root, rel),
			})

			// Prune: nothing below a project root is a separate project.
			return filepath.SkipDir
		})
	}

	return &Result{
		Projects: projects,
		Scanned:  scanned,
		Duration: time.Since(start),
	}, nil
}

// isProject reports whether dir directly contains one of the marker entries.
// Markers may be files or directories.
func (s *Scanner) isProject(dir string) bool {
	for _, marker := range s.Markers {
		if _, err := os.Lstat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// displayPath computes the user-facing path for a project found at rel
// below root. A root that is itself a project displays as its basename.
func displayPath(root, rel string) string {
	if rel == "." {
		return filepath.Base(root)
	}
	return filepath.ToSlash(rel)
}

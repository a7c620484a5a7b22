package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScannerFindsMarkedProjects(t *testing.T) {
	tmpDir := t.TempDir()

	// Structure:
	// /src
	//   /project-a (.git)
	//   /project-b (.jj)
	//   /group
	//     /project-c (.git)
	//   /plain          <- no marker
	srcDir := filepath.Join(tmpDir, "src")
	mustMkdir(t, srcDir)

	projA := filepath.Join(srcDir, "project-a")
	mustMkdir(t, projA)
	mustMkdir(t, filepath.Join(projA, ".git"))

	projB := filepath.Join(srcDir, "project-b")
	mustMkdir(t, projB)
	mustMkdir(t, filepath.Join(projB, ".jj"))

	projC := filepath.Join(srcDir, "group", "project-c")
	mustMkdir(t, projC)
	mustMkdir(t, filepath.Join(projC, ".git"))

	mustMkdir(t, filepath.Join(srcDir, "plain"))

	scanner := NewScanner([]string{srcDir}, []string{".git", ".jj"}, 3)
	result, err := scanner.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	found := displayPaths(result.Projects)

	for _, want := range []string{"project-a", "project-b", "group/project-c"} {
		if !found[want] {
			t.Errorf("Did not find %s", want)
		}
	}
	if found["plain"] {
		t.Error("Found plain directory without marker")
	}
	if len(result.Projects) != 3 {
		t.Errorf("Project count = %d, want 3", len(result.Projects))
	}
}

func TestScannerFileMarker(t *testing.T) {
	tmpDir := t.TempDir()

	proj := filepath.Join(tmpDir, "service")
	mustMkdir(t, proj)
	mustCreateFile(t, filepath.Join(proj, "go.mod"))

	scanner := NewScanner([]string{tmpDir}, []string{"go.mod"}, 2)
	result, err := scanner.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if !displayPaths(result.Projects)["service"] {
		t.Error("File marker did not classify directory as project")
	}
}

func TestScannerPrunesProjectSubtrees(t *testing.T) {
	tmpDir := t.TempDir()

	// outer is a project; inner would be one too but sits below outer and
	// must be pruned.
	outer := filepath.Join(tmpDir, "outer")
	mustMkdir(t, outer)
	mustMkdir(t, filepath.Join(outer, ".git"))

	inner := filepath.Join(outer, "vendor", "inner")
	mustMkdir(t, inner)
	mustMkdir(t, filepath.Join(inner, ".git"))

	scanner := NewScanner([]string{tmpDir}, []string{".git"}, 5)
	result, err := scanner.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	found := displayPaths(result.Projects)
	if !found["outer"] {
		t.Error("Did not find outer")
	}
	if found["outer/vendor/inner"] {
		t.Error("Found nested project below a project root; subtree should be pruned")
	}
	if len(result.Projects) != 1 {
		t.Errorf("Project count = %d, want 1", len(result.Projects))
	}
}

func TestScannerRespectsMaxDepth(t *testing.T) {
	tmpDir := t.TempDir()

	deep := filepath.Join(tmpDir, "a", "b", "c", "proj")
	mustMkdir(t, deep)
	mustMkdir(t, filepath.Join(deep, ".git"))

	tests := []struct {
		depth int
		want  int
	}{
		{3, 0},
		{4, 1},
		{6, 1},
	}

	for _, tt := range tests {
		scanner := NewScanner([]string{tmpDir}, []string{".git"}, tt.depth)
		result, err := scanner.Scan()
		if err != nil {
			t.Fatalf("Scan failed at depth %d: %v", tt.depth, err)
		}
		if len(result.Projects) != tt.want {
			t.Errorf("depth %d: project count = %d, want %d", tt.depth, len(result.Projects), tt.want)
		}
	}
}

func TestScannerDepthZeroChecksRootOnly(t *testing.T) {
	tmpDir := t.TempDir()
	mustMkdir(t, filepath.Join(tmpDir, ".git"))

	child := filepath.Join(tmpDir, "child")
	mustMkdir(t, child)
	mustMkdir(t, filepath.Join(child, ".git"))

	scanner := NewScanner([]string{tmpDir}, []string{".git"}, 0)
	result, err := scanner.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Projects) != 1 {
		t.Fatalf("Project count = %d, want 1 (root only)", len(result.Projects))
	}
	// A root that is itself a project displays as its basename.
	if got := result.Projects[0].DisplayPath; got != filepath.Base(tmpDir) {
		t.Errorf("DisplayPath = %q, want %q", got, filepath.Base(tmpDir))
	}
}

func TestScannerSkipsMissingRoot(t *testing.T) {
	tmpDir := t.TempDir()

	proj := filepath.Join(tmpDir, "real")
	mustMkdir(t, proj)
	mustMkdir(t, filepath.Join(proj, ".git"))

	missing := filepath.Join(tmpDir, "does-not-exist")

	scanner := NewScanner([]string{missing, tmpDir}, []string{".git"}, 2)
	result, err := scanner.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Projects) != 1 {
		t.Errorf("Project count = %d, want 1 (missing root skipped, scan continues)", len(result.Projects))
	}
}

func TestScannerKeepsDuplicateDisplayPaths(t *testing.T) {
	tmpDir := t.TempDir()

	// Two roots each holding an "app" project: both survive, no dedup.
	for _, root := range []string{"root1", "root2"} {
		proj := filepath.Join(tmpDir, root, "app")
		mustMkdir(t, proj)
		mustMkdir(t, filepath.Join(proj, ".git"))
	}

	scanner := NewScanner(
		[]string{filepath.Join(tmpDir, "root1"), filepath.Join(tmpDir, "root2")},
		[]string{".git"}, 2)
	result, err := scanner.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Projects) != 2 {
		t.Fatalf("Project count = %d, want 2", len(result.Projects))
	}
	if result.Projects[0].DisplayPath != "app" || result.Projects[1].DisplayPath != "app" {
		t.Errorf("DisplayPaths = %q, %q, want both %q",
			result.Projects[0].DisplayPath, result.Projects[1].DisplayPath, "app")
	}
	if result.Projects[0].Path == result.Projects[1].Path {
		t.Error("Absolute paths should differ")
	}
}

func TestDisplayPathUsesForwardSlashes(t *testing.T) {
	tmpDir := t.TempDir()

	proj := filepath.Join(tmpDir, "ai", "decree-ng")
	mustMkdir(t, proj)
	mustMkdir(t, filepath.Join(proj, ".git"))

	scanner := NewScanner([]string{tmpDir}, []string{".git"}, 3)
	result, err := scanner.Scan()
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(result.Projects) != 1 {
		t.Fatalf("Project count = %d, want 1", len(result.Projects))
	}
	if got := result.Projects[0].DisplayPath; got != "ai/decree-ng" {
		t.Errorf("DisplayPath = %q, want %q", got, "ai/decree-ng")
	}
}

func displayPaths(projects []Project) map[string]bool {
	found := make(map[string]bool)
	for _, p := range projects {
		found[p.DisplayPath] = true
	}
	return found
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
}

func mustCreateFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

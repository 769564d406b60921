// Package testutil holds helpers shared by subprocess tests.
package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// BuildTool builds cmd/<name> into a test-scoped temporary directory and
// returns the absolute path to the produced executable.
func BuildTool(t *testing.T, name string) string {
	t.Helper()

	repoRoot, err := findRepoRoot()
	if err != nil {
		t.Fatalf("find repo root: %v", err)
	}

	binName := name
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	outPath := filepath.Join(t.TempDir(), binName)

	srcPath := filepath.Join(repoRoot, "cmd", name)
	if fi, statErr := os.Stat(srcPath); statErr != nil || !fi.IsDir() {
		t.Fatalf("command sources not found for %q under %s", name, filepath.Join(repoRoot, "cmd"))
	}

	cmd := exec.Command("go", "build", "-o", outPath, srcPath)
	cmd.Dir = repoRoot
	// Inherit environment; ensure CGO disabled for determinism
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build %s from %s failed: %v\n%s", name, relOrSame(repoRoot, srcPath), err, string(output))
	}
	return outPath
}

// Run executes bin with args and returns stdout, stderr and the exit code.
func Run(t *testing.T, bin string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	code := 0
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			code = ee.ExitCode()
		} else {
			t.Fatalf("run %s: %v", bin, err)
		}
	}
	return stdout.String(), stderr.String(), code
}

func findRepoRoot() (string, error) {
	// Start from CWD and walk up until go.mod is found
	start, err := os.Getwd()
	if err != nil || start == "" {
		return "", errors.New("cannot determine working directory")
	}
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found from %s upward", start)
		}
		dir = parent
	}
}

func relOrSame(base, target string) string {
	if rel, err := filepath.Rel(base, target); err == nil {
		return rel
	}
	return target
}

//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to an isolated project checkout.
type testEnv struct {
	ProjectDir   string // freshly "created" project
	ManifestPath string // ProjectDir/composer.json
	ArtifactPath string // stand-in for the setup binary
}

// setupTestEnv creates a project directory holding the template manifest and
// a fake setup artifact, and clears SETUP_* overrides from the environment.
func setupTestEnv(t *testing.T, template string) *testEnv {
	t.Helper()

	env := &testEnv{ProjectDir: t.TempDir()}
	env.ManifestPath = filepath.Join(env.ProjectDir, "composer.json")
	env.ArtifactPath = filepath.Join(env.ProjectDir, "bin", "composer-setup")

	for _, key := range []string{"SETUP_MIN_PHP", "SETUP_TEST_NAMESPACE", "SETUP_PRUNE", "SETUP_CATALOGUE", "SETUP_SELF_PATH"} {
		t.Setenv(key, "")
	}

	writeFile(t, env.ManifestPath, template)
	writeFile(t, env.ArtifactPath, "#!/bin/sh\n")
	return env
}

// writeFile creates parent directories and writes content to path.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("expected %s to contain %q, got:\n%s", path, substr, data)
	}
}

func assertFileNotContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if strings.Contains(string(data), substr) {
		t.Errorf("expected %s to not contain %q", path, substr)
	}
}

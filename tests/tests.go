// Package tests provides test-support helpers used across the framework's
// own test suites: unique resource names, temp fixture files, and fixture
// decoding for YAML and .env formats.
package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/veritest-labs/veritest-common/should"
)

// UniqueName returns a name of the form "<prefix>-<uuid>", suitable for
// test resources (files, databases, topics) that must not collide across
// parallel test runs.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()
}

// WriteFixture writes content to a file named name under a fresh
// t.TempDir() and returns the file's path. The file is cleaned up with
// the test's temp dir.
func WriteFixture(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating fixture %s: %v", name, err)
	}
	defer should.Close(file, "failed to close fixture file")

	if _, err := file.WriteString(content); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}

	return path
}

// LoadYAML reads the YAML file at path and decodes it into out, failing
// the test on any error.
func LoadYAML(t *testing.T, path string, out any) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading YAML fixture %s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		t.Fatalf("decoding YAML fixture %s: %v", path, err)
	}
}

// LoadEnv parses the .env file at path and returns its variables as a
// map, failing the test on any error. Nothing is exported to the process
// environment.
func LoadEnv(t *testing.T, path string) map[string]string {
	t.Helper()

	vars, err := godotenv.Read(path)
	if err != nil {
		t.Fatalf("reading env fixture %s: %v", path, err)
	}

	return vars
}

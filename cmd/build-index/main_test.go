package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bebop/ring/ring"
)

func writeDataset(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "dataset.txt")
	content := "1 1 2\n1 2 3\n2 1 3\n2 2 2\n3 1 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}
	return path
}

func TestBuildIndexStatic(t *testing.T) {
	dir := t.TempDir()
	dataset := writeDataset(t, dir)

	var writeBuffer bytes.Buffer
	app := application()
	app.Writer = &writeBuffer

	args := []string{"build-index", dataset, "ring"}
	if err := app.Run(args); err != nil {
		t.Fatalf("Run: %v", err)
	}

	f, err := os.Open(dataset + ".ring")
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	defer f.Close()

	loaded, err := ring.Load(f)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.NTriples() != 5 {
		t.Fatalf("expected 5 triples, got %d", loaded.NTriples())
	}
}

func TestBuildIndexDynamicMapSharesSuffix(t *testing.T) {
	dir := t.TempDir()
	dataset := writeDataset(t, dir)

	app := application()
	app.Writer = &bytes.Buffer{}

	args := []string{"build-index", dataset, "ring-dyn-map"}
	if err := app.Run(args); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if _, err := os.Stat(dataset + ".ring-dyn"); err != nil {
		t.Fatalf("expected ring-dyn-map to write to the .ring-dyn suffix: %v", err)
	}
}

func TestBuildIndexRejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	dataset := writeDataset(t, dir)

	app := application()
	app.Writer = &bytes.Buffer{}

	args := []string{"build-index", dataset, "not-a-real-type"}
	if err := app.Run(args); err == nil {
		t.Fatal("expected an error for an unknown ring type")
	}
}

func TestBuildIndexRejectsWrongArgCount(t *testing.T) {
	app := application()
	app.Writer = &bytes.Buffer{}

	if err := app.Run([]string{"build-index", "onlyone"}); err == nil {
		t.Fatal("expected an error when only one positional argument is given")
	}
}

package kociemba

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSaveLoadArtifactRoundTrip(t *testing.T) {
	tables := BuildCoordTables()
	pruning := BuildPruningTables(tables)

	path := filepath.Join(t.TempDir(), "kociemba.tables")
	if err := SaveArtifact(path, tables, pruning); err != nil {
		t.Fatalf("SaveArtifact: %v", err)
	}

	gotTables, gotPruning, err := LoadArtifact(path)
	if err != nil {
		t.Fatalf("LoadArtifact: %v", err)
	}

	if len(gotTables.Twist) != len(tables.Twist) {
		t.Fatalf("twist table length mismatch: got %d, want %d", len(gotTables.Twist), len(tables.Twist))
	}
	for i := range tables.Twist {
		if gotTables.Twist[i] != tables.Twist[i] {
			t.Fatalf("twist table mismatch at %d: got %d, want %d", i, gotTables.Twist[i], tables.Twist[i])
		}
	}
	if err := gotPruning.Validate(); err != nil {
		t.Fatalf("loaded pruning tables invalid: %v", err)
	}
}

func TestLoadArtifactMissingFile(t *testing.T) {
	_, _, err := LoadArtifact(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected an error for a missing artifact")
	}
	var kerr *Error
	if !errors.As(err, &kerr) || kerr.Kind != TableIOError {
		t.Fatalf("expected TableIOError, got %v", err)
	}
}

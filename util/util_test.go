package util

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Width int    `yaml:"width"`
}

func TestConfigRoundTrip(t *testing.T) {

	path := filepath.Join(t.TempDir(), "cfg.yaml")

	err := WriteConfig(sample{Name: "age", Width: 3}, path, 0o644)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = WriteConfig(sample{Name: "other", Width: 9}, path, 0o644)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got sample
	err = LoadConfig(&got, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "age" || got.Width != 3 {
		t.Fatalf("existing config should be kept, got %+v", got)
	}
}

func TestLoadConfigMissing(t *testing.T) {

	var got sample
	err := LoadConfig(&got, filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadConfigBad(t *testing.T) {

	path := filepath.Join(t.TempDir(), "bad.yaml")
	err := os.WriteFile(path, []byte("width: [nope"), 0o644)
	if err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	var got sample
	err = LoadConfig(&got, path)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenLog(t *testing.T) {

	path := filepath.Join(t.TempDir(), "test.log")
	file := OpenLog(path, 0o644)
	if file == io.Discard {
		t.Fatalf("expected a file")
	}
	CloseLog(file)

	if !Exists(path) {
		t.Fatalf("log file not created")
	}

	file = OpenLog(filepath.Join(t.TempDir(), "missing", "test.log"), 0o644)
	if file != io.Discard {
		t.Fatalf("expected discard for unopenable path")
	}
}

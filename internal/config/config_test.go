package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"testing"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Config{Workers: 4, MMapThreshold: 4 << 20, LogLevel: "info"}) {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "workers: 8\nexclude_dirs:\n  - .git\n  - node_modules\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if !slices.Equal(cfg.ExcludeDirs, []string{".git", "node_modules"}) {
		t.Errorf("ExcludeDirs = %v", cfg.ExcludeDirs)
	}
	// Unset fields keep their defaults.
	if cfg.MMapThreshold != 4<<20 {
		t.Errorf("MMapThreshold = %d, want default", cfg.MMapThreshold)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("Load() expected error, got nil")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		os.WriteFile(path, []byte("workers: [not an int\n"), 0o644)
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error, got nil")
		}
	})

	t.Run("negative workers", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "neg.yaml")
		os.WriteFile(path, []byte("workers: -2\n"), 0o644)
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error, got nil")
		}
	})
}

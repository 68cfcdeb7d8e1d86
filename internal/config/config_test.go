package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("POLY_TEST_STR", "value")
	if got := GetEnv("POLY_TEST_STR", "fallback"); got != "value" {
		t.Errorf("expected value, got %q", got)
	}
	if got := GetEnv("POLY_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("POLY_INT", "42")
	t.Setenv("POLY_BOOL", "false")
	t.Setenv("POLY_BAD", "nope")

	if n, err := GetEnvInt("POLY_INT", 1); err != nil || n != 42 {
		t.Errorf("expected 42, got %d (%v)", n, err)
	}
	if b, err := GetEnvBool("POLY_BOOL", true); err != nil || b {
		t.Errorf("expected false, got %v (%v)", b, err)
	}
	if n, err := GetEnvInt("POLY_UNSET", 7); err != nil || n != 7 {
		t.Errorf("expected fallback 7, got %d (%v)", n, err)
	}

	if n, err := GetEnvInt("POLY_BAD", 7); !errors.Is(err, ErrInvalidSetting) || n != 7 {
		t.Errorf("expected ErrInvalidSetting and fallback, got %d (%v)", n, err)
	}
	if _, err := GetEnvBool("POLY_BAD", false); !errors.Is(err, ErrInvalidSetting) {
		t.Errorf("expected ErrInvalidSetting, got %v", err)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"WORLD_WIDTH", "WORLD_HEIGHT", "LIVES", "SEED", "SOUND", "LOG_LEVEL", "LOG_FILE", "SSH_HOST", "SSH_PORT", "SSH_HOST_KEY"} {
		unsetenv(t, key)
	}
	s, err := FromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s != Defaults() {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("WORLD_WIDTH", "800")
	t.Setenv("WORLD_HEIGHT", "600")
	t.Setenv("LIVES", "5")
	t.Setenv("SEED", "99")
	t.Setenv("SOUND", "0")
	t.Setenv("LOG_LEVEL", "debug")

	s, err := FromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.WorldWidth != 800 || s.WorldHeight != 600 || s.Lives != 5 || s.Seed != 99 || s.Sound || s.LogLevel != "debug" {
		t.Errorf("unexpected settings %+v", s)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	t.Setenv("WORLD_WIDTH", "wide")
	t.Setenv("LIVES", "-1")

	s, err := FromEnv()
	if !errors.Is(err, ErrInvalidSetting) {
		t.Fatalf("expected ErrInvalidSetting, got %v", err)
	}
	if s.WorldWidth != Defaults().WorldWidth || s.Lives != Defaults().Lives {
		t.Errorf("expected invalid fields to keep defaults, got %+v", s)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("POLY_LOADED=yes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	unsetenv(t, "POLY_LOADED")

	if err := Load(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if got := GetEnv("POLY_LOADED", ""); got != "yes" {
		t.Errorf("expected yes, got %q", got)
	}
}

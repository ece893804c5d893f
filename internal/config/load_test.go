package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `{
  "server": "svws.example.org",
  "schema": "svwsdb",
  "username": "Admin",
  "password": "geheim",
  "totalStudents": 600
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTPSPort != DefaultHTTPSPort {
		t.Fatalf("httpsPort = %d, want %d", cfg.HTTPSPort, DefaultHTTPSPort)
	}
	if cfg.TargetClassSize != DefaultTargetClassSize {
		t.Fatalf("targetClassSize = %d, want %d", cfg.TargetClassSize, DefaultTargetClassSize)
	}
	if cfg.Server != "svws.example.org" || cfg.TotalStudents != 600 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseRejectsUnknownKey(t *testing.T) {
	doc := `{"server": "s", "schema": "db", "username": "u", "totalStudents": 100, "totalPupils": 5}`
	_, err := Parse([]byte(doc), "test")
	if !errors.Is(err, ErrConfigValidation) {
		t.Fatalf("expected ErrConfigValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "totalPupils") {
		t.Fatalf("error does not name the unknown key: %v", err)
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing server", `{"schema": "db", "username": "u", "totalStudents": 100}`},
		{"missing schema", `{"server": "s", "username": "u", "totalStudents": 100}`},
		{"missing username", `{"server": "s", "schema": "db", "totalStudents": 100}`},
		{"missing totalStudents", `{"server": "s", "schema": "db", "username": "u"}`},
		{"negative totalStudents", `{"server": "s", "schema": "db", "username": "u", "totalStudents": -5}`},
		{"port out of range", `{"server": "s", "schema": "db", "username": "u", "totalStudents": 100, "httpsPort": 70000}`},
		{"negative targetClassSize", `{"server": "s", "schema": "db", "username": "u", "totalStudents": 100, "targetClassSize": -1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc), "test"); !errors.Is(err, ErrConfigValidation) {
				t.Fatalf("expected ErrConfigValidation, got %v", err)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MOCKFACTORY_PASSWORD", "aus-der-umgebung")
	t.Setenv("MOCKFACTORY_TOTAL_STUDENTS", "901")

	cfg, err := Parse([]byte(validConfig), "test")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Password != "aus-der-umgebung" {
		t.Fatalf("password = %q, want env override", cfg.Password)
	}
	if cfg.TotalStudents != 901 {
		t.Fatalf("totalStudents = %d, want 901", cfg.TotalStudents)
	}
}

func TestLoadLenientSkipsValidation(t *testing.T) {
	path := writeConfig(t, `{"server": "s", "schema": "db", "username": "u"}`)
	cfg, err := LoadLenient(path)
	if err != nil {
		t.Fatalf("LoadLenient error: %v", err)
	}
	if cfg.TotalStudents != 0 {
		t.Fatalf("totalStudents = %d, want 0", cfg.TotalStudents)
	}
	if cfg.HTTPSPort != DefaultHTTPSPort {
		t.Fatalf("httpsPort = %d, want default", cfg.HTTPSPort)
	}
}

func TestResolvedCachePath(t *testing.T) {
	configPath := filepath.Join("/etc", "mockfactory", "config.json")

	cfg := &Config{}
	got, err := cfg.ResolvedCachePath(configPath)
	if err != nil {
		t.Fatalf("ResolvedCachePath error: %v", err)
	}
	if want := filepath.Join("/etc", "mockfactory", DefaultCacheFile); got != want {
		t.Fatalf("default path = %q, want %q", got, want)
	}

	cfg = &Config{CachePath: "/var/cache/klassen.json"}
	got, err = cfg.ResolvedCachePath(configPath)
	if err != nil {
		t.Fatalf("ResolvedCachePath error: %v", err)
	}
	if got != "/var/cache/klassen.json" {
		t.Fatalf("absolute path = %q", got)
	}

	cfg = &Config{CachePath: "state/klassen.json"}
	got, err = cfg.ResolvedCachePath(configPath)
	if err != nil {
		t.Fatalf("ResolvedCachePath error: %v", err)
	}
	if want := filepath.Join("/etc", "mockfactory", "state", "klassen.json"); got != want {
		t.Fatalf("relative path = %q, want %q", got, want)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	cfg = &Config{CachePath: "~/klassen.json"}
	got, err = cfg.ResolvedCachePath(configPath)
	if err != nil {
		t.Fatalf("ResolvedCachePath error: %v", err)
	}
	if want := filepath.Join(home, "klassen.json"); got != want {
		t.Fatalf("expanded path = %q, want %q", got, want)
	}
}

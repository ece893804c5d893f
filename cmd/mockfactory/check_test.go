package main

import (
	"bytes"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeServerConfig writes a config file pointing at the test server.
func writeServerConfig(t *testing.T, server *httptest.Server) string {
	t.Helper()
	parsed, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	host, port, err := net.SplitHostPort(parsed.Host)
	if err != nil {
		t.Fatalf("split server host: %v", err)
	}
	doc := fmt.Sprintf(`{"server": %q, "httpsPort": %s, "schema": "testdb", "username": "Admin", "password": "geheim"}`, host, port)
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestCheckCommand(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/status/alive" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	configPath := writeServerConfig(t, server)
	var stdout, stderr bytes.Buffer
	err := execute([]string{"mockfactory", "check", "--config", configPath}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("check error: %v (stderr: %s)", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "alive") {
		t.Fatalf("stdout = %q, want liveness confirmation", stdout.String())
	}
}

func TestCheckCommandServerDown(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	configPath := writeServerConfig(t, server)
	server.Close()

	err := execute([]string{"mockfactory", "check", "--config", configPath}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}
	if !strings.Contains(err.Error(), "not responding") {
		t.Fatalf("error = %v, want not-responding wrapper", err)
	}
}

func TestCheckCommandMissingConfig(t *testing.T) {
	err := execute([]string{"mockfactory", "check", "--config", filepath.Join(t.TempDir(), "nope.json")}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}

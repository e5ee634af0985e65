package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDir_Default(t *testing.T) {
	t.Setenv("CLOCKIFY_MCP_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}

	if runtime.GOOS != "windows" {
		if filepath.Base(dir) != "clockify-mcp" {
			t.Errorf("Dir() = %q, want path ending in 'clockify-mcp'", dir)
		}
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("CLOCKIFY_MCP_CONFIG_HOME", "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv("CLOCKIFY_MCP_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Dir(); got != filepath.Join("/xdg/config", "clockify-mcp") {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join("/xdg/config", "clockify-mcp"))
	}
}

func TestEnvFiles_Order(t *testing.T) {
	t.Setenv("CLOCKIFY_MCP_CONFIG_HOME", "/cfg")
	want := []string{".env.local", ".env", filepath.Join("/cfg", "env")}
	got := EnvFiles()
	if len(got) != len(want) {
		t.Fatalf("EnvFiles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EnvFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

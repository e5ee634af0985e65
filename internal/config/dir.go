package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user configuration directory.
const appName = "clockify-mcp"

// Dir returns the clockify-mcp configuration directory.
//
// Resolution:
//   - $CLOCKIFY_MCP_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/clockify-mcp if set (respects XDG on any platform)
//   - %AppData%/clockify-mcp on Windows
//   - ~/.config/clockify-mcp on macOS and Linux
func Dir() string {
	if dir := os.Getenv("CLOCKIFY_MCP_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// EnvFiles returns the env files to load, highest priority first:
// .env.local and .env in the working directory, then <Dir>/env.
func EnvFiles() []string {
	files := []string{".env.local", ".env"}
	if dir := Dir(); dir != "" {
		files = append(files, filepath.Join(dir, "env"))
	}
	return files
}

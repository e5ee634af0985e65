// Package config resolves clockify-mcp settings once at startup from the
// environment, an optional YAML file in Dir(), and command-line overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Honeyfield-Org/clockify-mcp/internal/clockify"
	"github.com/Honeyfield-Org/clockify-mcp/internal/output"
)

// Environment variables, primary name first.
var (
	APIKeyVars      = []string{"API_KEY", "CLOCKIFY_API_KEY"}
	RegionVars      = []string{"REGION", "CLOCKIFY_REGION"}
	WorkspaceIDVars = []string{"DEFAULT_WORKSPACE_ID", "CLOCKIFY_WORKSPACE_ID"}
)

// FileName is the optional config file inside Dir().
const FileName = "config.yaml"

// Config is the resolved configuration.
type Config struct {
	APIKey             string
	Region             clockify.Region
	DefaultWorkspaceID string

	// APIKeySource names where APIKey came from: an env var, the config
	// file path, or "" when unset.
	APIKeySource string
}

// Overrides are per-run values from flags. Empty fields are ignored.
type Overrides struct {
	Region      string
	WorkspaceID string
}

// fileConfig is the on-disk YAML shape.
type fileConfig struct {
	APIKey             string `yaml:"api_key"`
	Region             string `yaml:"region"`
	DefaultWorkspaceID string `yaml:"default_workspace_id"`
}

// FilePath returns the config file location, or "" if no config directory
// can be determined.
func FilePath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, FileName)
}

// Load resolves the configuration. Precedence, highest first: overrides,
// environment, config file, defaults. A missing API key is not an error
// here; clockify.New reports it.
func Load(overrides Overrides) (Config, error) {
	path := FilePath()
	file, err := readFile(path)
	if err != nil {
		return Config{}, output.NewConfigError(fmt.Sprintf("invalid config file %s: %v", path, err), err)
	}

	cfg := Config{
		APIKey:             strings.TrimSpace(file.APIKey),
		DefaultWorkspaceID: strings.TrimSpace(file.DefaultWorkspaceID),
	}
	if cfg.APIKey != "" {
		cfg.APIKeySource = path
	}
	region := file.Region

	if value, name := lookupEnv(APIKeyVars); value != "" {
		cfg.APIKey, cfg.APIKeySource = value, name
	}
	if value, _ := lookupEnv(RegionVars); value != "" {
		region = value
	}
	if value, _ := lookupEnv(WorkspaceIDVars); value != "" {
		cfg.DefaultWorkspaceID = value
	}

	if overrides.Region != "" {
		region = overrides.Region
	}
	if overrides.WorkspaceID != "" {
		cfg.DefaultWorkspaceID = strings.TrimSpace(overrides.WorkspaceID)
	}

	cfg.Region = clockify.DefaultRegion
	if strings.TrimSpace(region) != "" {
		parsed, err := clockify.ParseRegion(region)
		if err != nil {
			return Config{}, output.NewConfigError(err.Error(), err)
		}
		cfg.Region = parsed
	}

	return cfg, nil
}

// ClientConfig converts to the client's configuration.
func (c Config) ClientConfig() clockify.Config {
	return clockify.Config{
		APIKey:      c.APIKey,
		Region:      c.Region,
		WorkspaceID: c.DefaultWorkspaceID,
	}
}

// lookupEnv returns the first non-empty variable and its name.
func lookupEnv(names []string) (string, string) {
	for _, name := range names {
		if value := strings.TrimSpace(os.Getenv(name)); value != "" {
			return value, name
		}
	}
	return "", ""
}

// readFile parses the YAML config file. A missing or empty file yields the
// zero value; unknown keys are rejected.
func readFile(path string) (fileConfig, error) {
	var file fileConfig
	if path == "" {
		return file, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return file, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return fileConfig{}, err
	}
	return file, nil
}

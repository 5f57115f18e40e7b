package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// configTemplate is the commented YAML template written by InitConfig.
// It documents every section with its default value so operators can
// tweak a generated file instead of writing one from scratch.
const configTemplate = `# wlproxy Configuration File
#
# This file configures the Wayland proxy. All values shown are defaults;
# uncomment and edit to override.

logging:
  level: "INFO"    # DEBUG, INFO, WARN, ERROR
  format: "text"   # text, json
  output: "stdout" # stdout, stderr, or a file path

shutdown_timeout: 5s

upstream:
  # socket_path: "/run/user/1000/wayland-0" # defaults to $XDG_RUNTIME_DIR/$WAYLAND_DISPLAY
  connect_timeout: 5s

listen:
  # dir: "/run/user/1000" # defaults to $XDG_RUNTIME_DIR
  display_name: "wayland-1"
  backlog: 16

metrics:
  enabled: false
  addr: ":9090"
`

// InitConfig writes a default configuration file to the standard location,
// refusing to overwrite an existing file unless force is true.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	if err := InitConfigToPath(path, force); err != nil {
		return "", err
	}
	return path, nil
}

// InitConfigToPath writes a default configuration file to the given path,
// refusing to overwrite an existing file unless force is true.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// findProgramConfigFile looks for todo.toml next to the executable.
func findProgramConfigFile(baseDir string) string {
	if baseDir == "" {
		return ""
	}
	path := filepath.Join(baseDir, ConfigFileName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path
	}
	return ""
}

// findUserConfigFile looks for a user-level config file in the OS config directory.
func findUserConfigFile() string {
	cfgDir := osUserConfigDir()
	if cfgDir == "" {
		return ""
	}
	userConfigPath := filepath.Join(cfgDir, "todo", ConfigFileName)
	if info, err := os.Stat(userConfigPath); err == nil && !info.IsDir() {
		return userConfigPath
	}
	return ""
}

// osUserConfigDir returns the OS-specific user config directory.
// Returns empty string if the directory cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	case "linux", "openbsd", "freebsd", "netbsd":
		// On Linux/BSD, respect XDG_CONFIG_HOME or use ~/.config
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

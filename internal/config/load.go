package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (OS-specific config dir)
// 3. Program config file (todo.toml in baseDir)
//
// baseDir is the directory of the executable; relative paths resolve against it.
func Load(baseDir string) (*Config, error) {
	cfg := &Config{BaseDir: baseDir}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from the program directory (overrides user config)
	if programConfigFile := findProgramConfigFile(baseDir); programConfigFile != "" {
		if err := loadConfigFile(cfg, programConfigFile); err != nil {
			return nil, fmt.Errorf("loading program config file %s: %w", programConfigFile, err)
		}
	}

	// 4. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile decodes TOML from path over cfg and records unknown keys.
func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	cfg.Files = append(cfg.Files, path)

	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, 0, len(undecoded))
	for _, key := range undecoded {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)
	cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s: unknown keys: %s", path, strings.Join(keys, ", ")))
	return nil
}

// finalizeConfig validates values and makes paths absolute.
func finalizeConfig(cfg *Config) error {
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.TaskFile = resolvePath(cfg.BaseDir, cfg.TaskFile)
	if cfg.LogFile != "" {
		cfg.LogFile = resolvePath(cfg.BaseDir, cfg.LogFile)
	}
	return nil
}

// resolvePath expands p and joins it to baseDir when relative.
func resolvePath(baseDir, p string) string {
	p = expandPath(p)
	if filepath.IsAbs(p) || baseDir == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}

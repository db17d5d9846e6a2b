// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (OS-specific config directory)
// 3. Program config file (todo.toml next to the executable)
//
// Each level overrides the previous one.
//
// User-level config locations:
// - Windows: %APPDATA%\todo\todo.toml
// - macOS: ~/Library/Application Support/todo/todo.toml
// - Linux/BSD: $XDG_CONFIG_HOME/todo/todo.toml or ~/.config/todo/todo.toml
//
// Relative paths (task_file, log_file) resolve against the directory of the
// executable, so the task file lives alongside the program by default.
package config

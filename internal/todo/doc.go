// Package todo parses, updates, and writes the task list file.
//
// The task file is plain text with one task per line:
//
//	✔ Buy milk
//	✖ Walk the dog
//
// # Markers
//
//   - "✔ ": the task is done
//   - "✖ ": the task is not done
//
// Any other non-blank line is a legacy entry from the marker-less format and
// is imported as a not-done task whose text is the whole (trimmed) line.
// Blank lines are skipped. Reading never fails on malformed content.
//
// # Identity
//
// Tasks have no IDs. A task is addressed by its position in the list, so
// Remove shifts every later task down by one.
//
// # File Format
//
// When writing task files, the package uses:
//   - one "<marker> <text>" line per task
//   - a trailing newline after every line
//   - a plain truncate-and-write (no temp file, no rename)
package todo

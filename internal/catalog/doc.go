// Package catalog provides the gate lists the carousel navigates: the
// built-in production set, TOML files, and validation shared by every
// source, including the sqlite-backed repository.
package catalog

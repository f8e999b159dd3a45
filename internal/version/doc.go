// Package version exposes build metadata of the docs-version binary itself.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags. When they are not, Commit falls back to the VCS revision the
// Go toolchain embeds in the binary.
package version

// Package vcs looks up the latest tag of a git working tree by running the
// git binary. The lookup happens once per run and is not retried.
package vcs

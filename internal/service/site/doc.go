// Package site implements the subcommands of the documentation build helper.
//
// Every command starts the same way: load settings, read the environment,
// look up the latest schema tag once and build a docs.Resolver. A failing
// tag lookup aborts the command.
package site

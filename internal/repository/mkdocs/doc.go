// Package mkdocs reads and rewrites the navigation of an MkDocs
// configuration file.
//
// The file is handled as a YAML node tree so comments, key order and custom
// tags such as !!python/name survive a rewrite untouched.
package mkdocs

// Package config defines the settings of the documentation build helper and
// provides helpers to load, validate and save them in YAML format.
//
// Every setting has a default matching the published documentation, so the
// settings file is optional. Values can be overridden from the environment
// with the DOCS_VERSION_ prefix.
package config

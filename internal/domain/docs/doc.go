// Package docs holds the version and link derivations used while building
// the documentation site.
//
// A Resolver is built once per run from the environment tag, the latest tag
// of the schema repository and the link bases. It is immutable and every
// derivation is recomputed from those three inputs on each call.
package docs

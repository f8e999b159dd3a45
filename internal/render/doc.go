// Package render expands version macros inside documentation pages.
//
// Pages are Go text/template documents. The functions available to them
// carry the names the documentation already uses:
//
//	{{ jvm_version }}             runtime version
//	{{ git_tag }}                 tag label
//	{{ git_link "build.sbt" }}    link into the source repository
//	{{ proto_version }}           schema version
//	{{ proto_link "spec/" }}      link into the schema site
package render

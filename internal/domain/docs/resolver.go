package docs

import (
	"context"
	"strings"

	"github.com/jelly-rdf/docs-version/internal/logger"
)

const (
	// DevVersion labels builds that do not correspond to a release.
	DevVersion = "dev"
	// MainBranch is the tag label used when no tag is provided.
	MainBranch = "main"

	// DefaultSourceBase is the prefix of links into the source repository.
	DefaultSourceBase = "https://github.com/Jelly-RDF/jelly-jvm/blob/"
	// DefaultSchemaBase is the prefix of links into the versioned schema site.
	DefaultSchemaBase = "https://jelly-rdf.github.io/"
	// DefaultPlaceholder marks navigation entries that must point at the schema site.
	DefaultPlaceholder = "https://jelly-rdf.github.io/"
)

// EnvTag is the value of the tag environment variable.
// Set is false when the variable is absent.
type EnvTag struct {
	// Value is the raw variable value.
	Value string
	// Set reports whether the variable was present at all.
	Set bool
}

// Links holds the URL prefixes used to build links.
type Links struct {
	// SourceBase is prepended to "<tag>/<file>".
	SourceBase string
	// SchemaBase is prepended to "<version>/<page>".
	SchemaBase string
	// Placeholder is the navigation target replaced by the schema link.
	Placeholder string
}

// DefaultLinks returns the links of the published documentation.
func DefaultLinks() Links {
	return Links{
		SourceBase:  DefaultSourceBase,
		SchemaBase:  DefaultSchemaBase,
		Placeholder: DefaultPlaceholder,
	}
}

// Resolver derives version labels and links for the documentation build.
type Resolver struct {
	// envTag is the tag the documentation is being built for.
	envTag EnvTag
	// schemaTag is the latest tag of the schema repository.
	schemaTag string
	// links holds the URL prefixes.
	links Links
}

// NewResolver creates a Resolver. The arguments are captured by value.
func NewResolver(envTag EnvTag, schemaTag string, links Links) *Resolver {
	return &Resolver{
		envTag:    envTag,
		schemaTag: schemaTag,
		links:     links,
	}
}

// SchemaTag returns the schema repository tag the resolver was built with.
func (r *Resolver) SchemaTag() string {
	return r.schemaTag
}

// Links returns the URL prefixes the resolver was built with.
func (r *Resolver) Links() Links {
	return r.links
}

// RuntimeVersion returns the version of the software being documented.
// Every "v" in the tag is removed, not only a leading one.
func (r *Resolver) RuntimeVersion(ctx context.Context) string {
	tag := r.envTag.Value
	if !r.envTag.Set {
		tag = DevVersion
	}

	switch tag {
	case DevVersion:
		logger.Warn(ctx, "Tag env var is not set, using dev as default")
		return DevVersion
	case MainBranch:
		return DevVersion
	default:
		return strings.ReplaceAll(tag, "v", "")
	}
}

// TagLabel returns the raw environment tag, or "main" when it is absent.
func (r *Resolver) TagLabel() string {
	if !r.envTag.Set {
		return MainBranch
	}

	return r.envTag.Value
}

// SourceLink returns the link to file in the source repository at TagLabel.
func (r *Resolver) SourceLink(file string) string {
	return r.links.SourceBase + r.TagLabel() + "/" + file
}

// SchemaVersion returns the version of the schema site matching this build.
// Pre-release and dirty tags (anything with a hyphen) map to "dev".
func (r *Resolver) SchemaVersion(ctx context.Context) string {
	if r.RuntimeVersion(ctx) == DevVersion {
		return DevVersion
	}

	if strings.Contains(r.schemaTag, "-") {
		logger.WarnKV(ctx, "Schema tag contains a hyphen, using dev instead", "schema_tag", r.schemaTag)
		return DevVersion
	}

	return strings.ReplaceAll(r.schemaTag, "v", "")
}

// SchemaLink returns the link to page on the schema site for SchemaVersion.
func (r *Resolver) SchemaLink(ctx context.Context, page string) string {
	return r.links.SchemaBase + r.SchemaVersion(ctx) + "/" + page
}

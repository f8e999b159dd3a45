package docs

import "context"

// Summary collects every derived value of a Resolver.
type Summary struct {
	// RuntimeVersion is the documented software version.
	RuntimeVersion string `yaml:"runtime_version"`
	// TagLabel is the git ref used in source links.
	TagLabel string `yaml:"tag"`
	// SchemaTag is the raw latest tag of the schema repository.
	SchemaTag string `yaml:"schema_tag"`
	// SchemaVersion is the schema site version.
	SchemaVersion string `yaml:"schema_version"`
	// SourceLink is the source repository root at TagLabel.
	SourceLink string `yaml:"source_link"`
	// SchemaLink is the schema site root for SchemaVersion.
	SchemaLink string `yaml:"schema_link"`
}

// Summarize computes all derived values at once.
func (r *Resolver) Summarize(ctx context.Context) Summary {
	return Summary{
		RuntimeVersion: r.RuntimeVersion(ctx),
		TagLabel:       r.TagLabel(),
		SchemaTag:      r.schemaTag,
		SchemaVersion:  r.SchemaVersion(ctx),
		SourceLink:     r.SourceLink(""),
		SchemaLink:     r.SchemaLink(ctx, ""),
	}
}

// Env returns the summary as environment variable assignments.
func (s Summary) Env() map[string]string {
	return map[string]string{
		"DOCS_RUNTIME_VERSION": s.RuntimeVersion,
		"DOCS_TAG":             s.TagLabel,
		"DOCS_SCHEMA_TAG":      s.SchemaTag,
		"DOCS_SCHEMA_VERSION":  s.SchemaVersion,
		"DOCS_SOURCE_LINK":     s.SourceLink,
		"DOCS_SCHEMA_LINK":     s.SchemaLink,
	}
}

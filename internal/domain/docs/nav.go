package docs

import "context"

// NavEntry is a single top-level navigation item.
// Target is empty for items that are not plain links, such as nested sections.
type NavEntry struct {
	// Label is the title shown in the navigation.
	Label string
	// Target is the link the item points to.
	Target string
}

// TransformNav returns a copy of entries with every placeholder target replaced
// by the schema site root. Length and order are preserved.
func (r *Resolver) TransformNav(ctx context.Context, entries []NavEntry) []NavEntry {
	transformed := make([]NavEntry, len(entries))

	for i, entry := range entries {
		if entry.Target != "" && entry.Target == r.links.Placeholder {
			entry.Target = r.SchemaLink(ctx, "")
		}

		transformed[i] = entry
	}

	return transformed
}

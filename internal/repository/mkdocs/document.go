package mkdocs

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jelly-rdf/docs-version/internal/domain/docs"
)

const (
	// navKey is the top-level key holding the navigation list.
	navKey = "nav"
	// encodeIndent matches the indentation MkDocs files are usually written with.
	encodeIndent = 2
	// strTag is the resolved tag of plain string scalars.
	strTag = "!!str"
)

var (
	// ErrNavNotFound is returned when the document has no top-level nav list.
	ErrNavNotFound = errors.New("nav not found")
	// errEntriesMismatch is returned when Apply receives a list of a different length.
	errEntriesMismatch = errors.New("navigation entries do not match the document")
)

// Document is a parsed MkDocs configuration.
type Document struct {
	// root is the YAML document node.
	root *yaml.Node
	// nav is the sequence node under the nav key.
	nav *yaml.Node
}

// Parse decodes an MkDocs configuration and locates its navigation.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode mkdocs config: %w", err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrNavNotFound
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, ErrNavNotFound
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		if key.Value != navKey {
			continue
		}

		if value.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: %s is not a list (line %d)", ErrNavNotFound, navKey, value.Line)
		}

		return &Document{root: &root, nav: value}, nil
	}

	return nil, ErrNavNotFound
}

// Entries returns one entry per top-level navigation item.
// Items that are not a single "label: link" pair get an empty Target.
func (d *Document) Entries() []docs.NavEntry {
	entries := make([]docs.NavEntry, len(d.nav.Content))

	for i, item := range d.nav.Content {
		label, target := linkItem(item)
		if label == nil {
			if item.Kind == yaml.MappingNode && len(item.Content) > 0 {
				entries[i] = docs.NavEntry{Label: item.Content[0].Value}
			}

			continue
		}

		entries[i] = docs.NavEntry{
			Label:  label.Value,
			Target: target.Value,
		}
	}

	return entries
}

// Apply writes the targets of entries back into the document and returns the
// number of items that changed. Only "label: link" items are ever modified.
func (d *Document) Apply(entries []docs.NavEntry) (int, error) {
	if len(entries) != len(d.nav.Content) {
		return 0, fmt.Errorf("%w: got %d, want %d", errEntriesMismatch, len(entries), len(d.nav.Content))
	}

	changed := 0

	for i, item := range d.nav.Content {
		_, target := linkItem(item)
		if target == nil || target.Value == entries[i].Target {
			continue
		}

		target.Value = entries[i].Target
		changed++
	}

	return changed, nil
}

// Encode writes the document as YAML.
func (d *Document) Encode(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(encodeIndent)

	if err := encoder.Encode(d.root); err != nil {
		return fmt.Errorf("encode mkdocs config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("flush mkdocs config: %w", err)
	}

	return nil
}

// linkItem returns the key and value nodes of a single-pair mapping whose
// value is a plain string, or nils for anything else.
func linkItem(item *yaml.Node) (*yaml.Node, *yaml.Node) {
	if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
		return nil, nil
	}

	key, value := item.Content[0], item.Content[1]
	if value.Kind != yaml.ScalarNode || value.ShortTag() != strTag {
		return nil, nil
	}

	return key, value
}

package mkdocs

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jelly-rdf/docs-version/internal/domain/docs"
)

const sampleConfig = `site_name: Jelly-JVM
# Navigation of the whole site.
nav:
  - Home: index.md
  - Getting started:
      - Apache Jena: getting-started-jena.md
      - RDF4J: getting-started-rdf4j.md
  - Jelly Protocol: https://jelly-rdf.github.io/
  - "Source": "https://github.com/Jelly-RDF/jelly-jvm"
  - changelog.md
markdown_extensions:
  - pymdownx.emoji:
      emoji_index: !!python/name:material.extensions.emoji.twemoji
`

// TestParse_Entries maps every top-level item to an entry.
func TestParse_Entries(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	want := []docs.NavEntry{
		{Label: "Home", Target: "index.md"},
		{Label: "Getting started"},
		{Label: "Jelly Protocol", Target: "https://jelly-rdf.github.io/"},
		{Label: "Source", Target: "https://github.com/Jelly-RDF/jelly-jvm"},
		{},
	}
	if diff := cmp.Diff(want, doc.Entries()); diff != "" {
		t.Fatalf("Entries mismatch (-want +got):\n%s", diff)
	}
}

// TestParse_MissingNav reports ErrNavNotFound.
func TestParse_MissingNav(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "site_name: x\n", "- a\n- b\n", "nav: index.md\n"} {
		_, err := Parse([]byte(input))
		require.ErrorIs(t, err, ErrNavNotFound, input)
	}

	_, err := Parse([]byte("nav: [unterminated\n"))
	require.Error(t, err)
}

// TestApply_RewritesAndPreserves changes only the link and keeps the rest of the file.
func TestApply_RewritesAndPreserves(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	entries := doc.Entries()
	entries[2].Target = "https://jelly-rdf.github.io/1.0/"
	// Sections and bare pages cannot be rewritten.
	entries[1].Target = "ignored"
	entries[4].Target = "ignored"

	changed, err := doc.Apply(entries)
	require.NoError(t, err)
	require.Equal(t, 1, changed)

	var buf bytes.Buffer
	require.NoError(t, doc.Encode(&buf))

	out := buf.String()
	require.Contains(t, out, "# Navigation of the whole site.")
	require.Contains(t, out, "- Jelly Protocol: https://jelly-rdf.github.io/1.0/")
	require.Contains(t, out, "- Apache Jena: getting-started-jena.md")
	require.Contains(t, out, "- changelog.md")
	require.Contains(t, out, "!!python/name:material.extensions.emoji.twemoji")
	require.NotContains(t, out, "ignored")

	reparsed, err := Parse(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, entries[2], reparsed.Entries()[2])
	require.Len(t, reparsed.Entries(), 5)
}

// TestApply_LengthMismatch rejects lists that do not match the document.
func TestApply_LengthMismatch(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	_, err = doc.Apply(doc.Entries()[:2])
	require.ErrorIs(t, err, errEntriesMismatch)
}

package site

import (
	"context"
	"fmt"
	"io"

	"github.com/jelly-rdf/docs-version/internal/logger"
	"github.com/jelly-rdf/docs-version/internal/repository/mkdocs"
)

// NavOptions controls the navigation rewrite.
type NavOptions struct {
	// MkDocsPath overrides the configured MkDocs file.
	MkDocsPath string
	// OutputPath writes the result elsewhere instead of in place.
	OutputPath string
	// DryRun prints the result instead of writing any file.
	DryRun bool
}

// RunNav points every placeholder navigation entry at the schema site.
func RunNav(ctx context.Context, opts *Options, navOpts *NavOptions, w io.Writer) error {
	ctx = logger.WithName(ctx, "nav")

	session, err := NewSession(ctx, opts)
	if err != nil {
		return err
	}

	if navOpts == nil {
		navOpts = new(NavOptions)
	}

	path := navOpts.MkDocsPath
	if path == "" {
		path = session.Config.MkDocsFile
	}

	source := mkdocs.NewFileRepository(path)

	doc, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load navigation: %w", err)
	}

	entries := session.Resolver.TransformNav(ctx, doc.Entries())

	changed, err := doc.Apply(entries)
	if err != nil {
		return fmt.Errorf("apply navigation: %w", err)
	}

	if navOpts.DryRun {
		return doc.Encode(w)
	}

	target := source
	if navOpts.OutputPath != "" {
		target = mkdocs.NewFileRepository(navOpts.OutputPath)
	}

	if err = target.Save(ctx, doc); err != nil {
		return fmt.Errorf("save navigation: %w", err)
	}

	logger.InfoKV(ctx, "Navigation updated", "file", target.Path(), "changed", changed)

	return nil
}

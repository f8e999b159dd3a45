package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jelly-rdf/docs-version/internal/logger"
	"github.com/jelly-rdf/docs-version/internal/render"
)

// pageExtension selects the files rendered when a directory is given.
const pageExtension = ".md"

// errNoOutput is returned when no output directory is configured.
var errNoOutput = errors.New("output directory must be provided")

// RenderOptions controls macro expansion.
type RenderOptions struct {
	// Inputs lists pages or directories of pages.
	Inputs []string
	// OutDir receives the rendered pages.
	OutDir string
}

// RunRender expands the version macros of every input page into OutDir.
// Directories are walked and their Markdown pages keep their relative paths.
func RunRender(ctx context.Context, opts *Options, renderOpts *RenderOptions) error {
	ctx = logger.WithName(ctx, "render")

	if renderOpts == nil || renderOpts.OutDir == "" {
		return errNoOutput
	}

	session, err := NewSession(ctx, opts)
	if err != nil {
		return err
	}

	rendered := 0

	for _, input := range renderOpts.Inputs {
		pages, err := collectPages(input)
		if err != nil {
			return err
		}

		for src, rel := range pages {
			dst := filepath.Join(renderOpts.OutDir, rel)
			if err = render.RenderFile(ctx, src, dst, session.Resolver); err != nil {
				return err
			}

			logger.DebugKV(ctx, "Page rendered", "src", src, "dst", dst)

			rendered++
		}
	}

	logger.InfoKV(ctx, "Pages rendered", "count", rendered, "out", renderOpts.OutDir)

	return nil
}

// collectPages maps every page under input to its path relative to the output directory.
func collectPages(input string) (map[string]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if !info.IsDir() {
		return map[string]string{input: filepath.Base(input)}, nil
	}

	pages := make(map[string]string)

	err = filepath.WalkDir(input, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), pageExtension) {
			return nil
		}

		rel, err := filepath.Rel(input, path)
		if err != nil {
			return err
		}

		pages[path] = rel

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", input, err)
	}

	return pages, nil
}

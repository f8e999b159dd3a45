package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/jelly-rdf/docs-version/internal/domain/docs"
)

const (
	// fileMode is applied to rendered pages.
	fileMode os.FileMode = 0o644
	// dirMode is applied to directories created for rendered pages.
	dirMode os.FileMode = 0o755
)

// FuncMap returns the macros backed by the resolver. Warnings raised while
// deriving versions are logged through the logger carried by ctx.
func FuncMap(ctx context.Context, r *docs.Resolver) template.FuncMap {
	return template.FuncMap{
		"jvm_version": func() string {
			return r.RuntimeVersion(ctx)
		},
		"git_tag":  r.TagLabel,
		"git_link": r.SourceLink,
		"proto_version": func() string {
			return r.SchemaVersion(ctx)
		},
		"proto_link": func(page string) string {
			return r.SchemaLink(ctx, page)
		},
	}
}

// Render expands the macros of a single page and writes the result to w.
func Render(ctx context.Context, w io.Writer, name, text string, r *docs.Resolver) error {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(FuncMap(ctx, r)).
		Parse(text)
	if err != nil {
		return fmt.Errorf("parse page %s: %w", name, err)
	}

	if err = tmpl.Execute(w, nil); err != nil {
		return fmt.Errorf("render page %s: %w", name, err)
	}

	return nil
}

// RenderFile renders the page at src into dst, creating parent directories.
// dst is only written when rendering succeeds.
func RenderFile(ctx context.Context, src, dst string, r *docs.Resolver) error {
	contents, err := os.ReadFile(filepath.Clean(src))
	if err != nil {
		return fmt.Errorf("read page: %w", err)
	}

	var buf bytes.Buffer
	if err = Render(ctx, &buf, filepath.Base(src), string(contents), r); err != nil {
		return err
	}

	dst = filepath.Clean(dst)
	if err = os.MkdirAll(filepath.Dir(dst), dirMode); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err = os.WriteFile(dst, buf.Bytes(), fileMode); err != nil {
		return fmt.Errorf("write page: %w", err)
	}

	return nil
}

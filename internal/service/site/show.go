package site

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// FormatYAML prints the summary as a YAML mapping.
	FormatYAML = "yaml"
	// FormatDotenv prints the summary as KEY="value" lines.
	FormatDotenv = "dotenv"
)

// errUnknownFormat is returned for unsupported output formats.
var errUnknownFormat = errors.New("unknown output format")

// RunShow prints every derived version and link.
func RunShow(ctx context.Context, opts *Options, format string, w io.Writer) error {
	switch format {
	case "", FormatYAML, FormatDotenv:
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}

	session, err := NewSession(ctx, opts)
	if err != nil {
		return err
	}

	summary := session.Resolver.Summarize(ctx)

	if format == FormatDotenv {
		contents, err := godotenv.Marshal(summary.Env())
		if err != nil {
			return fmt.Errorf("marshal dotenv: %w", err)
		}

		_, err = fmt.Fprintln(w, contents)

		return err
	}

	encoder := yaml.NewEncoder(w)
	if err = encoder.Encode(summary); err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	return encoder.Close()
}

// RunLink prints the source repository link for file.
func RunLink(ctx context.Context, opts *Options, file string, w io.Writer) error {
	session, err := NewSession(ctx, opts)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, session.Resolver.SourceLink(file))

	return err
}

// RunSchemaLink prints the schema site link for page.
func RunSchemaLink(ctx context.Context, opts *Options, page string, w io.Writer) error {
	session, err := NewSession(ctx, opts)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, session.Resolver.SchemaLink(ctx, page))

	return err
}

package site

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/jelly-rdf/docs-version/internal/config"
	"github.com/jelly-rdf/docs-version/internal/domain/docs"
	"github.com/jelly-rdf/docs-version/internal/logger"
	"github.com/jelly-rdf/docs-version/internal/vcs"
)

// Options holds the inputs shared by every command.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Environ is the environment to read; the process environment when nil.
	Environ map[string]string
	// Describer overrides the git tag lookup, mainly for tests.
	Describer vcs.Describer
}

// Session is the state every command works with once initialized.
type Session struct {
	// Config is the effective configuration.
	Config *config.Config
	// Resolver derives versions and links.
	Resolver *docs.Resolver
}

// NewSession loads configuration, fetches the schema tag and builds the resolver.
func NewSession(ctx context.Context, opts *Options) (*Session, error) {
	if opts == nil {
		opts = new(Options)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	environ := opts.Environ
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	if err = config.ApplyEnv(cfg, environ); err != nil {
		return nil, fmt.Errorf("apply environment: %w", err)
	}

	describer := opts.Describer
	if describer == nil {
		describer = vcs.NewGitDescriber(cfg.GitBinary, cfg.SchemaRepoDir)
	}

	schemaTag, err := fetchSchemaTag(ctx, describer, cfg.SchemaRepoDir)
	if err != nil {
		return nil, err
	}

	value, ok := environ[cfg.TagEnvVar]
	envTag := docs.EnvTag{Value: value, Set: ok}

	logger.DebugKV(ctx, "Resolver ready",
		"tag_env_var", cfg.TagEnvVar,
		"tag_set", envTag.Set,
		"schema_tag", schemaTag,
	)

	return &Session{
		Config:   cfg,
		Resolver: docs.NewResolver(envTag, schemaTag, cfg.Links()),
	}, nil
}

// fetchSchemaTag runs the tag lookup once and logs git's exit code and
// stderr when it fails.
func fetchSchemaTag(ctx context.Context, describer vcs.Describer, dir string) (string, error) {
	tag, err := describer.LatestTag(ctx)
	if err == nil {
		return tag, nil
	}

	var cmdErr *vcs.CommandError
	if errors.As(err, &cmdErr) {
		logger.ErrorKV(ctx, "Failed to call git",
			"dir", cmdErr.Dir,
			"exit_code", cmdErr.ExitCode,
			"stderr", cmdErr.Stderr,
		)
	} else {
		logger.ErrorKV(ctx, "Failed to call git", "dir", dir, "error", err)
	}

	return "", fmt.Errorf("fetch schema tag: %w", err)
}

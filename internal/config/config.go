package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/jelly-rdf/docs-version/internal/domain/docs"
)

// Config holds the settings shared by all subcommands.
type Config struct {
	// SchemaRepoDir is the working tree whose latest tag versions the schema site.
	SchemaRepoDir string `yaml:"schema_repo_dir" env:"SCHEMA_REPO_DIR"`
	// GitBinary is the git executable.
	GitBinary string `yaml:"git_binary" env:"GIT_BINARY"`
	// TagEnvVar names the environment variable holding the build tag.
	TagEnvVar string `yaml:"tag_env_var" env:"TAG_ENV_VAR"`
	// MkDocsFile is the MkDocs configuration whose navigation is rewritten.
	MkDocsFile string `yaml:"mkdocs_file" env:"MKDOCS_FILE"`
	// SourceBase is the prefix of links into the source repository.
	SourceBase string `yaml:"source_base" env:"SOURCE_BASE"`
	// SchemaBase is the prefix of links into the schema site.
	SchemaBase string `yaml:"schema_base" env:"SCHEMA_BASE"`
	// Placeholder is the navigation target replaced by the schema site link.
	Placeholder string `yaml:"placeholder" env:"PLACEHOLDER"`
}

const (
	// DefaultConfigFilename is the settings file looked up when none is given.
	DefaultConfigFilename = "docs-version.yaml"

	// DefaultSchemaRepoDir is the schema submodule relative to the docs directory.
	DefaultSchemaRepoDir = "../core/src/main/protobuf_shared"

	// DefaultTagEnvVar is the variable CI sets to the tag being built.
	DefaultTagEnvVar = "TAG"

	// DefaultMkDocsFile is the MkDocs configuration file name.
	DefaultMkDocsFile = "mkdocs.yml"

	// DefaultFilePermissions is the default file permission for written files.
	DefaultFilePermissions = 0o644

	// EnvPrefix prefixes every override variable.
	EnvPrefix = "DOCS_VERSION_"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidTagEnvVar is returned when the tag variable name cannot be an env key.
	errInvalidTagEnvVar = errors.New("invalid tag env var name")
	// errBaseSlash is returned when a link base does not end with a slash.
	errBaseSlash = errors.New("link base must end with a slash")
)

// Default returns the settings of the published documentation.
func Default() *Config {
	links := docs.DefaultLinks()

	return &Config{
		SchemaRepoDir: DefaultSchemaRepoDir,
		GitBinary:     "git",
		TagEnvVar:     DefaultTagEnvVar,
		MkDocsFile:    DefaultMkDocsFile,
		SourceBase:    links.SourceBase,
		SchemaBase:    links.SchemaBase,
		Placeholder:   links.Placeholder,
	}
}

// Load reads configuration from the provided path on top of the defaults.
// An empty path yields the defaults, unless DefaultConfigFilename exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFilename); err != nil {
			return cfg, nil
		}

		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// ApplyEnv overrides settings from DOCS_VERSION_* variables found in environ.
// Blank variables are ignored.
func ApplyEnv(cfg *Config, environ map[string]string) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	var overrides Config

	//nolint:exhaustruct // Only the prefix and the environment are relevant.
	opts := env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}
	if err := env.ParseWithOptions(&overrides, opts); err != nil {
		return fmt.Errorf("parse env overrides: %w", err)
	}

	override(cfg, &overrides)

	return Validate(cfg)
}

// Links returns the link prefixes as used by the resolver.
func (c *Config) Links() docs.Links {
	return docs.Links{
		SourceBase:  c.SourceBase,
		SchemaBase:  c.SchemaBase,
		Placeholder: c.Placeholder,
	}
}

// Validate fills blank settings with defaults and checks link formatting.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	fillDefaults(cfg)

	if strings.ContainsAny(cfg.TagEnvVar, "= \t") {
		return fmt.Errorf("%w: %q", errInvalidTagEnvVar, cfg.TagEnvVar)
	}

	for name, base := range map[string]string{
		"source_base": cfg.SourceBase,
		"schema_base": cfg.SchemaBase,
	} {
		if _, err := url.ParseRequestURI(base); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}

		if !strings.HasSuffix(base, "/") {
			return fmt.Errorf("invalid %s %q: %w", name, base, errBaseSlash)
		}
	}

	if _, err := url.ParseRequestURI(cfg.Placeholder); err != nil {
		return fmt.Errorf("invalid placeholder: %w", err)
	}

	return nil
}

// fillDefaults sets every blank field of cfg from Default.
func fillDefaults(cfg *Config) {
	defaults := Default()

	fill := func(field *string, value string) {
		if strings.TrimSpace(*field) == "" {
			*field = value
		}
	}

	fill(&cfg.SchemaRepoDir, defaults.SchemaRepoDir)
	fill(&cfg.GitBinary, defaults.GitBinary)
	fill(&cfg.TagEnvVar, defaults.TagEnvVar)
	fill(&cfg.MkDocsFile, defaults.MkDocsFile)
	fill(&cfg.SourceBase, defaults.SourceBase)
	fill(&cfg.SchemaBase, defaults.SchemaBase)
	fill(&cfg.Placeholder, defaults.Placeholder)
}

// override copies every non-blank field of src into cfg.
func override(cfg, src *Config) {
	set := func(field *string, value string) {
		if strings.TrimSpace(value) != "" {
			*field = value
		}
	}

	set(&cfg.SchemaRepoDir, src.SchemaRepoDir)
	set(&cfg.GitBinary, src.GitBinary)
	set(&cfg.TagEnvVar, src.TagEnvVar)
	set(&cfg.MkDocsFile, src.MkDocsFile)
	set(&cfg.SourceBase, src.SourceBase)
	set(&cfg.SchemaBase, src.SchemaBase)
	set(&cfg.Placeholder, src.Placeholder)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefault matches the published documentation settings.
func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, Validate(cfg))
	require.Equal(t, "../core/src/main/protobuf_shared", cfg.SchemaRepoDir)
	require.Equal(t, "TAG", cfg.TagEnvVar)
	require.Equal(t, "https://github.com/Jelly-RDF/jelly-jvm/blob/", cfg.Links().SourceBase)
	require.Equal(t, "https://jelly-rdf.github.io/", cfg.Links().SchemaBase)
	require.Equal(t, "https://jelly-rdf.github.io/", cfg.Links().Placeholder)
}

// TestValidate checks defaults filling and link format validations.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Blank settings are filled in.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, Default(), cfg)

	// Relative link base.
	cfg = &Config{SchemaBase: "jelly-rdf.github.io/"}
	require.Error(t, Validate(cfg))

	// Missing trailing slash.
	cfg = &Config{SourceBase: "https://example.org/blob"}
	require.ErrorIs(t, Validate(cfg), errBaseSlash)

	// Bad env var name.
	cfg = &Config{TagEnvVar: "MY TAG"}
	require.ErrorIs(t, Validate(cfg), errInvalidTagEnvVar)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := Default()
	cfg.SchemaRepoDir = "../proto"
	cfg.TagEnvVar = "DOCS_TAG"

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	_, err = os.Stat(path)
	require.NoError(t, err)

	require.Error(t, Save(path, nil))
}

// TestLoad_PartialFileKeepsDefaults only overrides keys present in the file.
func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mkdocs_file: site/mkdocs.yml\n"), DefaultFilePermissions))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "site/mkdocs.yml", cfg.MkDocsFile)
	require.Equal(t, DefaultSchemaRepoDir, cfg.SchemaRepoDir)
}

// TestLoad_Errors covers missing and malformed files.
func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("source_base: [unterminated\n"), DefaultFilePermissions))

	_, err = Load(bad)
	require.Error(t, err)
}

// TestApplyEnv overrides from prefixed variables and ignores blank ones.
func TestApplyEnv(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := ApplyEnv(cfg, map[string]string{
		"DOCS_VERSION_SCHEMA_REPO_DIR": "/src/proto",
		"DOCS_VERSION_TAG_ENV_VAR":     "RELEASE",
		"DOCS_VERSION_MKDOCS_FILE":     "",
		"SCHEMA_REPO_DIR":              "/ignored",
	})
	require.NoError(t, err)
	require.Equal(t, "/src/proto", cfg.SchemaRepoDir)
	require.Equal(t, "RELEASE", cfg.TagEnvVar)
	require.Equal(t, DefaultMkDocsFile, cfg.MkDocsFile)

	err = ApplyEnv(cfg, map[string]string{"DOCS_VERSION_SCHEMA_BASE": "https://spec.example.org"})
	require.ErrorIs(t, err, errBaseSlash)

	require.Error(t, ApplyEnv(nil, nil))
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jelly-rdf/docs-version/internal/service/site"
)

var (
	// showFormat selects the output format of the show command.
	showFormat string
	// navOptions collects the flags of the nav command.
	navOptions site.NavOptions
	// renderOutDir is the output directory of the render command.
	renderOutDir string

	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Print every derived version and link.",
		Long: `Print the runtime version, tag label, schema tag, schema version and the
root links of the source repository and the schema site.

With --format dotenv the output can be sourced by shell scripts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return site.RunShow(cmd.Context(), siteOptions(), showFormat, cmd.OutOrStdout())
		},
	}

	linkCmd = &cobra.Command{
		Use:   "link <file>",
		Short: "Print the source repository link of a file at the current tag.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return site.RunLink(cmd.Context(), siteOptions(), args[0], cmd.OutOrStdout())
		},
	}

	schemaLinkCmd = &cobra.Command{
		Use:   "schema-link [page]",
		Short: "Print the schema site link of a page for the current schema version.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var page string
			if len(args) > 0 {
				page = args[0]
			}

			return site.RunSchemaLink(cmd.Context(), siteOptions(), page, cmd.OutOrStdout())
		},
	}

	navCmd = &cobra.Command{
		Use:   "nav",
		Short: "Point the placeholder navigation entry at the versioned schema site.",
		Long: `Rewrite the top-level nav of the MkDocs configuration. Every entry whose link
is exactly the schema site placeholder is replaced by the schema site root for
the current schema version. All other entries, comments and keys are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return site.RunNav(cmd.Context(), siteOptions(), &navOptions, cmd.OutOrStdout())
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render <page or directory>...",
		Short: "Expand version macros in documentation pages.",
		Long: `Expand jvm_version, git_tag, git_link, proto_version and proto_link in the
given pages. Directories are walked for Markdown files, keeping their layout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return site.RunRender(cmd.Context(), siteOptions(), &site.RenderOptions{
				Inputs: args,
				OutDir: renderOutDir,
			})
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", site.FormatYAML, "output format: yaml or dotenv")

	navCmd.Flags().StringVarP(&navOptions.MkDocsPath, "mkdocs", "m", "", "MkDocs configuration file (default from settings)")
	navCmd.Flags().StringVarP(&navOptions.OutputPath, "output", "o", "", "write the result here instead of in place")
	navCmd.Flags().BoolVar(&navOptions.DryRun, "dry-run", false, "print the result instead of writing it")

	renderCmd.Flags().StringVarP(&renderOutDir, "out", "o", "", "output directory for rendered pages")

	if err := renderCmd.MarkFlagRequired("out"); err != nil {
		panic(err)
	}
}

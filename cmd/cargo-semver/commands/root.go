// Package commands implements the CLI commands for cargo-semver.
package commands

import (
	"context"
	"strings"

	"github.com/rust-dev-tools/rust-semverver/internal/app"
	"github.com/rust-dev-tools/rust-semverver/internal/build"
	"github.com/rust-dev-tools/rust-semverver/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for cargo-semver.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	onQuiet func()
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "cargo-semver",
		Short:         "Check a crate's API changes against semantic versioning",
		Long:          "Compiles the stable and current versions of a crate and reports the semver-relevant changes between them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.NoArgs,
		RunE:          c.runCompare,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.Flags()
	flags.BoolP("explain", "e", false, "print detailed error explanations")
	flags.BoolP("quiet", "q", false, "surpress regular cargo output, print only important messages")
	flags.Bool("show-public", false, "print the public types in the current crate given by -c or -C and exit")
	flags.BoolP("debug", "d", false, "print command to debug and exit")
	flags.BoolP("api-guidelines", "a", false, "report only changes that are breaking according to the API-guidelines")
	flags.String("features", "", "Space-separated list of features to activate")
	flags.Bool("all-features", false, "Activate all available features")
	flags.Bool("no-default-features", false, "Do not activate the `default` feature")
	flags.Bool("compact", false, "Only output the suggested version on stdout for further processing")
	flags.BoolP("json", "j", false, "Output a JSON-formatted description of all collected data on stdout.")
	flags.StringP("stable-path", "s", "", "use local path as stable/old crate")
	flags.StringP("current-path", "c", "", "use local path as current/new crate")
	flags.StringP("stable-pkg", "S", "", "use a `name:version` string as stable/old crate")
	flags.StringP("current-pkg", "C", "", "use a `name:version` string as current/new crate")
	flags.Bool("offline", false, "Run without accessing the network.")
	flags.String("target", "", "Build for the target triple")

	rootCmd.MarkFlagsMutuallyExclusive("stable-path", "stable-pkg")
	rootCmd.MarkFlagsMutuallyExclusive("current-path", "current-pkg")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetQuietHook registers fn to be called before the run when --quiet is set.
func (c *CLI) SetQuietHook(fn func()) {
	c.onQuiet = fn
}

func (c *CLI) runCompare(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	quiet, _ := flags.GetBool("quiet")
	if quiet && c.onQuiet != nil {
		c.onQuiet()
	}

	opts := app.Options{}
	opts.Explain, _ = flags.GetBool("explain")
	opts.ShowPublic, _ = flags.GetBool("show-public")
	opts.Debug, _ = flags.GetBool("debug")
	opts.APIGuidelines, _ = flags.GetBool("api-guidelines")
	opts.Compact, _ = flags.GetBool("compact")
	opts.JSON, _ = flags.GetBool("json")
	opts.StablePath, _ = flags.GetString("stable-path")
	opts.CurrentPath, _ = flags.GetString("current-path")
	opts.StablePkg, _ = flags.GetString("stable-pkg")
	opts.CurrentPkg, _ = flags.GetString("current-pkg")
	opts.Offline, _ = flags.GetBool("offline")

	features, _ := flags.GetString("features")
	opts.Build = domain.BuildOptions{Features: strings.Fields(features)}
	opts.Build.AllFeatures, _ = flags.GetBool("all-features")
	opts.Build.NoDefaultFeatures, _ = flags.GetBool("no-default-features")
	opts.Build.Target, _ = flags.GetString("target")

	return c.app.Run(cmd.Context(), opts)
}

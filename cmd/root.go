// Package cmd implements the pj command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"thoreinstein.com/pj/pkg/bootstrap"
	"thoreinstein.com/pj/pkg/config"
	pjerrors "thoreinstein.com/pj/pkg/errors"
	"thoreinstein.com/pj/pkg/state"
)

// version is injected at build time via -ldflags.
var version = "dev"

var (
	cfgFile    string
	verbose    bool
	listMode   bool
	initConfig bool
	setPrev    string
)

// rootCmd represents the base command. pj has no subcommands: the pattern
// rides on the root invocation so a jump stays two keystrokes plus the
// abbreviation.
var rootCmd = &cobra.Command{
	Use:   "pj [pattern]",
	Short: "Project Jump - fast project directory jumper",
	Long: `Project Jump locates project directories under your configured scan paths
and resolves a fuzzy pattern to a single one of them.

The chosen absolute path is printed to stdout for the shell wrapper to cd
into; everything else goes to stderr. With multiple matches pj opens an
fzf picker when a terminal is attached and prints the ranked list otherwise.
The pattern "-" bounces back to the previously departed project.

Examples:
  pj dec          jump to the best match for "dec"
  pj ai/dec       prefer matches whose path segments line up
  pj -            bounce to the previous project
  pj --list dec   print every match instead of picking
  pj              pick from all discovered projects`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The maintenance flags run before any config load so they keep
		// working when the config file itself is the problem.
		if setPrev != "" {
			return runSetPrev(setPrev)
		}
		if initConfig {
			return runInitConfig(cmd)
		}

		cfg, _, err := bootstrap.InitConfig(cfgFile, verbose)
		if err != nil {
			return err
		}

		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}
		return runJump(cmd, cfg, pattern)
	},
}

// Execute runs the root command and maps the outcome to the process exit
// code the shell wrapper depends on. Called by main.main().
func Execute() {
	cfgFile, verbose = bootstrap.PreParseGlobalFlags(os.Args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pjerrors.FormatUserError(err))
		os.Exit(pjerrors.ExitCode(err))
	}
}

func init() {
	// pj has no subcommands, so the globals live on the root flag set. This
	// also keeps -v for verbose; cobra's version flag then takes long form
	// only.
	rootCmd.Flags().StringVarP(&cfgFile, "config", "C", "", "config file (default is $HOME/.config/pj/config.toml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().BoolVarP(&listMode, "list", "l", false, "List all matches without interactive picker")
	rootCmd.Flags().BoolVar(&initConfig, "init-config", false, "Generate default config file")
	rootCmd.Flags().StringVar(&setPrev, "set-prev", "", "Set the previous directory (used by shell wrapper)")
	_ = rootCmd.Flags().MarkHidden("set-prev")
}

// runSetPrev records the previous directory for the bounce pattern.
func runSetPrev(path string) error {
	store, err := state.NewFileStore()
	if err != nil {
		return err
	}
	return store.Set(path)
}

// runInitConfig writes the default config file and reports where it went.
func runInitConfig(cmd *cobra.Command) error {
	path, err := config.WriteDefault()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Created default config at:", path)
	return nil
}

// resetConfig clears cached configuration state between tests.
func resetConfig() {
	bootstrap.Reset()
	viper.Reset()
}

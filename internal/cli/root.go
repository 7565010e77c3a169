package cli

import (
	"github.com/ralt/fontpkg/internal/builder"
	"github.com/ralt/fontpkg/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var config models.BuildConfig

	rootCmd := &cobra.Command{
		Use:   "fontpkg [flags] font-file...",
		Short: "Package TrueType/OpenType font files as installable packages",
		Long: `Fontpkg stages TTF/OTF font files into a temporary build directory,
generates a PKGBUILD recipe and a font-cache install hook, then drives
updpkgsums and makepkg to produce an installable package in the current
directory.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config.FontPaths = args
			return builder.New().Run(cmd.Context(), &config)
		},
	}

	// Build mode flags
	rootCmd.Flags().BoolVarP(&config.Install, "install", "i", false, "Build and install the package immediately")
	rootCmd.Flags().BoolVarP(&config.SourceOnly, "source", "s", false, "Produce a source archive instead of a binary package")
	rootCmd.MarkFlagsMutuallyExclusive("install", "source")

	// Package metadata flags
	rootCmd.Flags().StringVarP(&config.Name, "name", "n", "", "Override the derived package name")
	rootCmd.Flags().StringVar(&config.VersionSpec, "ver", "1.0-1", "Package version and optional release (VER[-REL])")
	rootCmd.Flags().StringVar(&config.Description, "desc", "Custom font", "Package description")

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	return rootCmd
}

// NormalizeArgs rewrites the historical -S spelling of the source flag
// into --source; pflag only allows a single shorthand per flag.
func NormalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if a == "-S" {
			a = "--source"
		}
		out[i] = a
	}
	return out
}

// Root command for the factseek CLI.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/factseek/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagOutDir    string
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configOutDir    string
	configStorePath string
)

var rootCmd = &cobra.Command{
	Use:     "factseek",
	Short:   "factseek scans for factorial solutions of nPr and C(n,r)",
	Long: `factseek enumerates nonnegative integers searching for solutions to
the Permutation–Factorial relation (nPr = c!) and the Binomial–Factorial
relation (C(n,r) = c!), classifying each discovered solution as trivial,
PF_F3, or exceptional. Exceptional solutions are the research output.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configOutDir = cfg.GetString(cfgKeyOutDir)
		configStorePath = cfg.GetString(cfgKeyStorePath)

		level, err := logrus.ParseLevel(cfg.GetString(cfgKeyLogLevel))
		if err != nil {
			level = logrus.InfoLevel
		}
		logrus.SetLevel(level)
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagOutDir, "out-dir", "", "output directory for CSV files (default: current directory)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(scanCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > FACTSEEK_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveOutDir returns the output directory following the precedence:
// --out-dir flag > config.yaml out_dir > FACTSEEK_OUT_DIR env > CWD.
func resolveOutDir() (string, error) {
	return paths.ResolveOutDir(flagOutDir, configOutDir)
}

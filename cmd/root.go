package cmd

import (
	"fmt"
	"os"

	"github.com/abctools/abcctl/internal/abc"
	"github.com/abctools/abcctl/internal/config"
	"github.com/abctools/abcctl/internal/observability"
	"github.com/abctools/abcctl/internal/output"
	"github.com/abctools/abcctl/internal/uia"
	"github.com/abctools/abcctl/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "abcctl",
	Short: "Automate the ABC Accounting Client through its accessibility tree",
	Long: "abcctl drives the legacy ABC Accounting Client (Client4) by locating screens " +
		"and controls in its accessibility tree, injecting keystroke macros, and reading " +
		"field values back by their ordinal position.",
}

func Execute() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml or json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $HOME/.abcctl.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Override configured log level (debug, info, warn, error)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if pretty, _ := rootCmd.PersistentFlags().GetBool("pretty"); pretty {
			output.PrettyOutput = true
		}

		cfgPath, _ := rootCmd.PersistentFlags().GetString("config")
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
			cfg.Logger.Level = level
		}

		logger, err = observability.NewLogger(cfg.Logger)
		return err
	}
}

// newClient builds an abc.Client over the registered accessibility provider.
func newClient() (*abc.Client, error) {
	prov, err := uia.NewProvider()
	if err != nil {
		return nil, err
	}
	return abc.New(prov, abc.WithTiming(cfg.EngineTiming()), abc.WithLogger(logger)), nil
}

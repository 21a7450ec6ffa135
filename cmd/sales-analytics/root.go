package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"sales-analytics/internal/config"
)

const defaultConfigFile = "config.yaml"

type globalOptions struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "sales-analytics",
		Short: "Validate, analyze and enrich a pipe-delimited sales transaction log",
		Long: `sales-analytics reads a pipe-delimited sales log, drops malformed lines,
validates and filters the transactions, computes revenue, region, product,
customer and daily analytics, enriches each transaction from a product catalog
and writes a plain-text report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to the YAML configuration file (default is ./config.yaml when present)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newAnalyzeCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig reads the configured file, falling back to ./config.yaml and then to defaults.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	path := o.configFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not inspect %s: %w", defaultConfigFile, err)
		}
	}
	return config.Load(path)
}

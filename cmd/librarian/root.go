package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/config"
)

type rootOptions struct {
	logLvl     string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "librarian",
		Short:         "Library catalog with books, members and loans",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLvl, "log-lvl", "", "log level [fatal|error|warn|info|debug], overrides log.level of the config")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path of the config file, built-in defaults without one")

	rootCmd.AddCommand(
		newDemoCmd(opts),
		newReportCmd(opts),
		newGenConfigCmd(),
	)

	return rootCmd
}

// load reads and validates the config and builds the logger it asks for.
func (o *rootOptions) load(logOut io.Writer) (config.Config, zerolog.Logger, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, zerolog.Logger{}, err
		}
	}

	if o.logLvl != "" {
		cfg.Log.Level = o.logLvl
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, zerolog.Logger{}, err
	}

	lvl, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return config.Config{}, zerolog.Logger{}, fmt.Errorf("invalid log lvl [%s]. %w", cfg.Log.Level, err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: logOut, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return cfg, logger, nil
}

package main

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	defaultLogFormatter = &log.TextFormatter{}
)

// infoFormatter overrides the default format for Info() log events to
// provide an easier to read output
type infoFormatter struct {
}

func (f *infoFormatter) Format(entry *log.Entry) ([]byte, error) {
	if entry.Level == log.InfoLevel {
		return append([]byte(entry.Message), '\n'), nil
	}
	return defaultLogFormatter.Format(entry)
}

func setupLogging(quiet, verbose bool) error {
	log.SetFormatter(new(infoFormatter))
	log.SetLevel(log.InfoLevel)
	if quiet && verbose {
		return errors.New("can't set quiet and verbose flag at the same time")
	}
	if quiet {
		log.SetLevel(log.ErrorLevel)
	}
	if verbose {
		// Switch back to the standard formatter
		log.SetFormatter(defaultLogFormatter)
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

func newCmd() *cobra.Command {
	var (
		flagQuiet     bool
		flagVerbose   bool
		flagConfig    string
		flagFormat    string
		flagNodeLimit int
		cfg           Config
	)
	cmd := &cobra.Command{
		Use:           "prunes [STRING...]",
		Short:         "Print the runes of each input in ascending order",
		Long:          "Print the distinct runes of each STRING (or of stdin) in ascending order, one per line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(flagQuiet, flagVerbose); err != nil {
				return err
			}
			var err error
			if cfg, err = readConfig(flagConfig); err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = flagFormat
			}
			if cmd.Flags().Changed("node-limit") {
				cfg.NodeLimit = flagNodeLimit
			}
			log.Debugf("config: format=%q node-limit=%d", cfg.Format, cfg.NodeLimit)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return prunesAll(cmd.OutOrStdout(), inputs, cfg)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Quiet execution")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose execution")
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default $HOME/.config/prunes/config.yml)")
	cmd.Flags().StringVar(&flagFormat, "format", defaultFormat, "fmt format used to print each rune")
	cmd.Flags().IntVar(&flagNodeLimit, "node-limit", 0, "Maximum number of tree nodes per input, 0 for no limit")

	return cmd
}

func main() {
	if err := newCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

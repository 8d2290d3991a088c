package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	records "github.com/goliatone/go-records"
	"github.com/goliatone/go-records/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type cli struct {
	levelsPath string
	verbose    bool
	logger     *zap.Logger

	inputPath string
	verbosity string
	format    string
	engine    string
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "records",
		Short:         "Filter leveled diagnostic records by verbosity",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.OutputPaths = []string{"stderr"}
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&c.levelsPath, "levels", "", "YAML level table (defaults to critical/important/unimportant/trivial)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log every deferred resolution")

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Print the records visible at a verbosity",
		RunE:  c.runGet,
	}
	getCmd.Flags().StringVarP(&c.inputPath, "input", "i", "-", "YAML records file, - for stdin")
	getCmd.Flags().StringVar(&c.verbosity, "verbosity", "", "Level name or number (defaults to the table default)")
	getCmd.Flags().StringVarP(&c.format, "format", "f", "json", "Output format: json or yaml")
	getCmd.Flags().StringVar(&c.engine, "engine", "expr", "Expression engine: expr or cel")

	traceCmd := &cobra.Command{
		Use:   "trace NAME",
		Short: "Show which levels hold a record",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runTrace,
	}
	traceCmd.Flags().StringVarP(&c.inputPath, "input", "i", "-", "YAML records file, - for stdin")
	traceCmd.Flags().StringVar(&c.verbosity, "verbosity", "", "Level name or number (defaults to the table default)")

	levelsCmd := &cobra.Command{
		Use:   "levels",
		Short: "List the configured level names",
		RunE:  c.runLevels,
	}

	root.AddCommand(getCmd, traceCmd, levelsCmd)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (c *cli) levelConfig() (records.LevelConfig, error) {
	if c.levelsPath == "" {
		return records.LoadLevelConfig(nil)
	}
	return records.LoadLevelConfigFile(c.levelsPath)
}

func (c *cli) keeper(cmd *cobra.Command) (*records.NamedKeeper, error) {
	cfg, err := c.levelConfig()
	if err != nil {
		return nil, err
	}
	opts := []records.Option{records.WithResolveLogger(logging.Zap(c.logger))}
	switch strings.ToLower(c.engine) {
	case "", "expr":
	case "cel":
		opts = append(opts, records.WithEvaluator(records.NewCELEvaluator()))
	default:
		return nil, fmt.Errorf("unknown engine %q", c.engine)
	}
	k, err := cfg.NewKeeper(opts...)
	if err != nil {
		return nil, err
	}
	in, err := readInput(c.inputPath, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	if err := in.load(k); err != nil {
		return nil, err
	}
	return k, nil
}

func (c *cli) runGet(cmd *cobra.Command, args []string) error {
	k, err := c.keeper(cmd)
	if err != nil {
		return err
	}
	out, err := k.GetRecords(records.ParseVerbosity(c.verbosity))
	if err != nil {
		return err
	}
	return writeRecords(cmd.OutOrStdout(), out, c.format)
}

func (c *cli) runTrace(cmd *cobra.Command, args []string) error {
	k, err := c.keeper(cmd)
	if err != nil {
		return err
	}
	trace, err := k.Trace(args[0], records.ParseVerbosity(c.verbosity))
	if err != nil {
		return err
	}
	payload, err := trace.ToJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return err
}

func (c *cli) runLevels(cmd *cobra.Command, args []string) error {
	cfg, err := c.levelConfig()
	if err != nil {
		return err
	}
	def := cfg.Define()
	w := cmd.OutOrStdout()
	for _, name := range def.Names() {
		level, _ := def.Lookup(name)
		marker := ""
		if cfg.Default == records.Named(name) {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%-12s %d%s\n", name, level, marker)
	}
	return nil
}

func writeRecords(w io.Writer, out records.Records, format string) error {
	switch strings.ToLower(format) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(out)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

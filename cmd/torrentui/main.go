// Package main is the entry point for torrentui.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fucaluca/torrentui/internal/app"
	"github.com/fucaluca/torrentui/internal/config"
	"github.com/fucaluca/torrentui/internal/input/action"
	"github.com/fucaluca/torrentui/internal/input/key"
	"github.com/fucaluca/torrentui/internal/input/mode"
	"github.com/fucaluca/torrentui/internal/logging"
	"github.com/fucaluca/torrentui/internal/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	mode       string
	noWatch    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "torrentui",
		Short: "Terminal UI for a torrent client",
		Long: `torrentui is a terminal interface driven by configurable multi-key bindings.

Bindings are read from config.toml (or config.yaml) in the XDG config
directory unless --config is given, and the file is reloaded when it changes.

Examples:
  torrentui                          # Start with the default config
  torrentui --config ./keys.yaml     # Use a specific config file
  torrentui --log-level debug        # Verbose log file
  torrentui keys                     # List the effective key bindings
  torrentui keys "<Ctrl-a><t>"       # Show what a key sequence does`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd.Context(), flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (default: XDG config dir)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Log file path (default: XDG state dir)")
	cmd.Flags().StringVarP(&flags.mode, "mode", "m", "", "Initial key mode (TorrentList, AddTorrent)")
	cmd.Flags().BoolVar(&flags.noWatch, "no-watch", false, "Do not reload the config file when it changes")

	cmd.AddCommand(newKeysCmd(&flags))
	return cmd
}

func configPath(flags rootFlags) string {
	if flags.configPath != "" {
		return flags.configPath
	}
	return config.DefaultPath()
}

func runUI(ctx context.Context, flags rootFlags) error {
	logPath := flags.logFile
	if logPath == "" {
		p, err := config.LogPath()
		if err != nil {
			return fmt.Errorf("resolving log path: %w", err)
		}
		logPath = p
	}
	logFile, err := logging.OpenFile(logPath)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logger := logging.New(logging.Config{
		Level:  logging.LevelInfo,
		Output: logFile,
		Prefix: config.AppName,
	})

	screen, err := terminal.New()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}

	application, err := app.New(app.Options{
		Config:   config.Options{Path: configPath(flags)},
		LogLevel: flags.logLevel,
		Mode:     flags.mode,
		Watch:    !flags.noWatch,
		Logger:   logger,
	}, screen)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}

func newKeysCmd(flags *rootFlags) *cobra.Command {
	var modeName string

	cmd := &cobra.Command{
		Use:   "keys [sequence]",
		Short: "List the effective key bindings",
		Long: `List the key bindings after merging the defaults, the config file and
environment overrides. Loading fails on the same errors as startup, so this
also validates a config file.

With a sequence argument such as "<Ctrl-a><t>", show what that sequence
does in each mode instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(config.Options{Path: configPath(*flags)})
			if err != nil {
				return err
			}

			modes := mode.All()
			if modeName != "" {
				m, err := mode.Parse(modeName)
				if err != nil {
					return err
				}
				modes = []mode.Mode{m}
			}
			if len(args) == 1 {
				return describeSequence(cmd.OutOrStdout(), settings, modes, args[0])
			}
			return printBindings(cmd.OutOrStdout(), settings, modes)
		},
	}
	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "Only list bindings for this mode")
	return cmd
}

// describeSequence prints what raw resolves to in each mode.
func describeSequence(out io.Writer, settings *config.Settings, modes []mode.Mode, raw string) error {
	seq, err := key.ParseSequence(raw)
	if err != nil {
		return err
	}
	if len(seq) == 0 {
		return fmt.Errorf("empty key sequence")
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, m := range modes {
		tree, ok := settings.Table.Tree(m)
		if !ok {
			continue
		}
		id, ok := tree.Lookup(seq)
		switch {
		case !ok:
			fmt.Fprintf(tw, "%s\t%s\tnot bound\n", m, seq)
		case !tree.IsLeaf(id):
			fmt.Fprintf(tw, "%s\t%s\tprefix\t%s\n", m, seq, tree.Value(id).Description)
		default:
			v := tree.Value(id)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m, seq, v.Action, v.Description)
		}
	}
	return tw.Flush()
}

func printBindings(out io.Writer, settings *config.Settings, modes []mode.Mode) error {
	if settings.Path != "" {
		fmt.Fprintf(out, "# %s\n", settings.Path)
	} else {
		fmt.Fprintln(out, "# defaults")
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, m := range modes {
		tree, ok := settings.Table.Tree(m)
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "\n[%s]\n", m)
		for _, b := range tree.Bindings() {
			act := b.Value.Action.String()
			if b.Value.Action == action.NoOp {
				act = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Keys, act, b.Value.Description)
		}
	}
	return tw.Flush()
}

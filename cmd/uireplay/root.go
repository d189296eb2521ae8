package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/uievents"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

type rootOptions struct {
	verbose bool
	cfgFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "uireplay",
		Short: "Replay scripted input against a UI event tree",
		Long: titleStyle.Render("uireplay") + mutedStyle.Render(" - replay scripted input against a UI event tree") + `

A script declares a tree of nodes with hit rectangles and a list of input
steps (move, press, release, click, drag, touch, key, axis, scroll, wait).
Each step is fed to the standalone input module one frame at a time and
the events delivered to traced nodes are printed.

Scripts are JSON or TOML, chosen by file extension.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				uievents.SetLogger(log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
					Prefix: "uievents",
					Level:  log.DebugLevel,
				}))
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "event system config file (toml, yaml or json)")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newValidateCmd(opts))
	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func (o *rootOptions) loadConfig() (uievents.Config, error) {
	if o.cfgFile == "" {
		return uievents.DefaultConfig(), nil
	}
	return uievents.LoadConfig(o.cfgFile)
}

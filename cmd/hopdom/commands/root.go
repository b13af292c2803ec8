// Package commands wires the hopdom CLI: cobra for commands and flags,
// viper for layered configuration, zap for logs.
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/hopdom/config"
	"github.com/katalvlaran/hopdom/logging"
)

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	v        *viper.Viper
	cfgFile  string
	cfg      config.Config
	log      *zap.Logger
	closeLog logging.CloseFunc
}

// Execute runs the root command and exits 1 on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	root, a := newRoot()
	err := root.ExecuteContext(ctx)
	a.close()
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()

	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{v: config.NewViper(), log: zap.NewNop()}
	d := config.Default()

	root := &cobra.Command{
		Use:   "hopdom",
		Short: "Hop Italian domination heuristics",
		Long: `hopdom labels every vertex of an undirected graph with 0, 1 or 2 so that
each 0-vertex sees weight at least 2 at exactly two hops, using two greedy
heuristics (H1, H2) run side by side. The lighter labeling wins.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.Int64(config.KeySeed, d.Seed, "random seed for both heuristics (0 = time based)")
	pf.String("log-level", d.Log.Level, "debug, info, warn or error")
	pf.String("log-file", "", "also write logs to this file, rotated")
	pf.Bool("log-dev", false, "human-readable console logs")
	mustBind(a.v, config.KeySeed, pf.Lookup(config.KeySeed))
	mustBind(a.v, config.KeyLogLevel, pf.Lookup("log-level"))
	mustBind(a.v, config.KeyLogFile, pf.Lookup("log-file"))
	mustBind(a.v, config.KeyLogDev, pf.Lookup("log-dev"))

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a))

	return root, a
}

func (a *app) init() error {
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log, a.closeLog = cfg, log, closeLog

	return nil
}

// close flushes the logger and releases the log file. Safe to call twice;
// PersistentPostRun is skipped when RunE fails, so Execute calls it too.
func (a *app) close() {
	if a.closeLog == nil {
		return
	}
	if err := a.closeLog(); err != nil {
		fmt.Fprintln(os.Stderr, "hopdom: closing log:", err)
	}
	a.closeLog = nil
	a.log = zap.NewNop()
}

// mustBind panics only on a nil flag, i.e. a typo in the flag name.
func mustBind(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

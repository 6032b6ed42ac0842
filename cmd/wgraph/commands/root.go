// Package commands implements the wgraph command tree.
package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/algorithms"
)

// envPrefix namespaces environment overrides, e.g. WGRAPH_LOG_LEVEL.
const envPrefix = "WGRAPH"

// defaultConfigName is looked up in the user's home directory.
const defaultConfigName = ".wgraph.yaml"

// app carries the state shared by every subcommand of one root.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

// Execute runs the root command against os.Args.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "wgraph",
		Short: "Weighted undirected graph toolkit",
		Long: `wgraph generates, inspects and converts weighted undirected graphs.

Graphs are stored as YAML (.yaml, .yml), JSON (.json) or SQLite
(.db, .sqlite, .sqlite3; append #name to pick a snapshot, default "main").`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().String("config", "", "config file (default $HOME/"+defaultConfigName+")")
	root.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	_ = a.v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newGenerateCmd(a),
		newStatsCmd(a),
		newConnectedCmd(a),
		newPathCmd(a),
		newConvertCmd(a),
	)

	return root
}

// init reads configuration and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	cfgFile, _ := cmd.Flags().GetString("config")
	if err := a.readConfig(cfgFile); err != nil {
		return err
	}

	log, err := newLogger(a.v.GetString("log-level"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("config loaded", zap.String("path", used))
	}

	return nil
}

// readConfig loads an explicit config file, or the default one when it exists.
func (a *app) readConfig(cfgFile string) error {
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		cfgFile = filepath.Join(home, defaultConfigName)
		if _, err := os.Stat(cfgFile); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}
	a.v.SetConfigFile(cfgFile)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %q: %w", cfgFile, err)
	}

	return nil
}

// algorithms returns a facade wired to the command logger.
func (a *app) algorithms() *algorithms.Algorithms {
	return algorithms.New(nil, algorithms.WithLogger(a.log))
}

// load binds the graph stored at path.
func (a *app) load(path string) (*algorithms.Algorithms, error) {
	alg := a.algorithms()
	if err := alg.Load(path); err != nil {
		return nil, err
	}

	return alg, nil
}

// Package cli implements the vfs command line.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/jmgilman/go/vfs/errors"
	"github.com/jmgilman/go/vfs/internal/logging"
	"github.com/jmgilman/go/vfs/mount"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Environment variables read by the root command.
const (
	EnvConfig   = "VFS_CONFIG"
	EnvLogLevel = "VFS_LOG_LEVEL"
)

// DefaultConfigFile is used when neither --config nor VFS_CONFIG is set.
const DefaultConfigFile = "vfs.yaml"

type app struct {
	configPath string
	logLevel   string
	table      *mount.Table
	logger     *slog.Logger
}

// NewRootCommand returns the vfs command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "vfs",
		Short: "Inspect and copy files across mounted storage backends",
		Long: `vfs mounts native directories, in-memory trees, chrooted disk trees and
bridged content providers under one name space and operates on them through
the same view interface the game runtime uses.

References have the form mount:path. Without a mount name the first mount
in the configuration is used.

Configuration is read from --config, $VFS_CONFIG or ./vfs.yaml. Without a
configuration file the current directory is mounted natively as "cwd".
A .env file in the working directory is loaded first.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (env "+EnvConfig+")")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (env "+EnvLogLevel+")")

	cmd.AddCommand(
		newMountsCommand(a),
		newLsCommand(a),
		newStatCommand(a),
		newCatCommand(a),
		newCpCommand(a),
		newProbeCommand(a),
	)
	return cmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	if a.configPath == "" {
		a.configPath = os.Getenv(EnvConfig)
	}
	if a.logLevel == "" {
		a.logLevel = os.Getenv(EnvLogLevel)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}
	a.logger, err = settings.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.table, err = mount.Mount(cfg, mount.WithLogger(a.logger))
	return err
}

func (a *app) loadConfig() (*mount.Config, error) {
	path := a.configPath
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	cfg, err := mount.Load(path)
	if err == nil {
		return cfg, nil
	}
	if explicit || !errors.HasCode(err, errors.CodeNotFound) {
		return nil, err
	}

	cfg = mount.Default()
	cfg.Mounts = []mount.MountConfig{{Name: "cwd", Backend: "native", Root: "."}}
	return cfg, nil
}

func (a *app) log() *slog.Logger {
	return logging.OrNop(a.logger)
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}

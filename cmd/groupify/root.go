package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"groupify/internal/config"
)

// cli 命令行全局状态
type cli struct {
	verbose    bool
	configPath string

	cfg    *config.AppConfig
	info   config.LoadConfigInfo
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "groupify",
		Short: "Groupify - split a student roster into branch-aware groups",
		Long: `Groupify reads a roster (.xlsx or .csv with a "Roll" column), extracts the
branch code from every roll number and builds groups with one of three methods:

  Full Branchwise     one list per branch
  Branchwise Mixed    round-robin counts per group
  Branchwise Uniform  proportional counts per group

Run without arguments to start the web UI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config.toml path (default: next to the executable)")

	serve := newServeCmd(c)
	root.AddCommand(serve, newGroupCmd(c))
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

// init 加载配置并初始化日志
func (c *cli) init() error {
	path := c.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, info, err := config.LoadConfigFrom(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.cfg, c.info = cfg, info

	zc := zap.NewProductionConfig()
	if c.verbose || cfg.Server.DevMode {
		zc = zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	c.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.logger.Debug("config loaded",
		zap.String("path", info.Path),
		zap.Bool("found", info.Found),
	)
	return nil
}

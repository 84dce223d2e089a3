package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"groupify/internal/server"
	"groupify/internal/util"
)

func newServeCmd(c *cli) *cobra.Command {
	var (
		port      int
		devMode   bool
		noBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			// 命令行参数覆盖配置（config.toml 中显式配置的端口优先）
			if port > 0 && !c.info.PortSpecified {
				c.cfg.Server.Port = port
			}
			if devMode {
				c.cfg.Server.DevMode = true
			}
			if noBrowser {
				c.cfg.Server.OpenBrowser = false
			}
			return serve(c)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (ignored when config.toml sets server.port)")
	cmd.Flags().BoolVar(&devMode, "dev", false, "development mode")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "do not open a browser window")

	return cmd
}

func serve(c *cli) error {
	srv := server.NewServer(c.cfg, c.logger, version)

	addr := fmt.Sprintf(":%d", c.cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", c.cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		c.logger.Info("server starting", zap.String("addr", addr), zap.String("version", version))
		errCh <- srv.Run(addr)
	}()

	if c.cfg.Server.OpenBrowser && !c.cfg.Server.DevMode {
		if err := util.OpenBrowser(url); err != nil {
			c.logger.Warn("could not open browser, visit manually", zap.String("url", url), zap.Error(err))
		}
	} else {
		c.logger.Info("visit", zap.String("url", url))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	c.logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Command faker serves and generates deterministic synthetic values. The
// serve command exposes the HTTP API; the gen command prints values
// straight to stdout.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/Evavic44/faker/errors"
	"github.com/Evavic44/faker/logging"
	"github.com/Evavic44/faker/pprof"
	"github.com/Evavic44/faker/safe"
	"github.com/Evavic44/faker/server"
)

// BuildDate: Binary file compilation time
// BuildVersion: Binary compiled GIT version
var (
	BuildDate    string
	BuildVersion string
)

func main() {
	app := cli.NewApp()
	app.Name = "faker"
	app.Description = "Deterministic synthesis of typed random values, over HTTP or stdout."
	app.Version = BuildVersion
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:     "config,c",
			Usage:    "config file",
			Required: false,
			Value:    "config/config.yaml",
		},
	}
	app.Before = initConfig
	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "run the HTTP API server",
			Action: serve,
		},
		{
			Name:   "gen",
			Usage:  "generate values to stdout",
			Flags:  genFlags,
			Action: generate,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.Default().Error("application failed", logging.ErrAttr(err))
		os.Exit(1)
	}
}

func serve(_ *cli.Context) error {
	logging.NewLogger(
		logging.WithLevel(cfg.Logging.Level),
		logging.WithIsJSON(cfg.Logging.JSON),
	)

	srv, err := server.NewServer(server.NewConfig(
		server.WithHost(cfg.Server.Host),
		server.WithPort(cfg.Server.Port),
		server.WithAlgorithm(cfg.Server.Algorithm),
	))
	if err != nil {
		return errors.Wrap(err, "serve: configure")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, ctx := safe.WithContext(ctx)
	group.Go(srv.Run)

	if cfg.Pprof.Enable {
		pprofSrv := pprof.NewServer(pprof.NewConfig(
			pprof.WithHost(cfg.Pprof.Host),
			pprof.WithPort(cfg.Pprof.Port),
		))
		group.Go(func(ctx context.Context) error {
			if err := pprofSrv.Run(ctx); !errors.Is(err, http.ErrServerClosed) {
				return errors.Wrap(err, "serve: pprof")
			}
			return nil
		})
		group.Go(func(ctx context.Context) error {
			<-ctx.Done()
			return pprofSrv.Close()
		})
	}

	group.Go(func(ctx context.Context) error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			logging.L(ctx).Info("received shutdown signal, initiating graceful shutdown",
				logging.StringAttr("signal", sig.String()),
			)
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	return group.Wait()
}

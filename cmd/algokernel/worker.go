package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-kernel/internal/logger"
	"github.com/cwbudde/algo-kernel/internal/worker"
)

func workerCmd() *cli.Command {
	var maxLine int

	return &cli.Command{
		Name:  "worker",
		Usage: "Serve JSON-lines requests on stdin, replies on stdout",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "max-line-bytes",
				Value:       64 << 20,
				Usage:       "maximum size of one request line",
				Destination: &maxLine,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx).With("component", "worker")
			log.Info("worker started")

			w := worker.New(
				worker.WithLogger(log),
				worker.WithMaxLineBytes(maxLine),
			)
			if err := w.Serve(ctx, cmd.Root().Reader, cmd.Root().Writer); err != nil {
				log.Error("worker stopped", "error", err)
				return err
			}

			log.Info("worker finished")
			return nil
		},
	}
}

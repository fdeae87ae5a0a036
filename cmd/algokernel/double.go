package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-kernel/internal/logger"
	"github.com/cwbudde/algo-kernel/internal/worker"
	"github.com/cwbudde/algo-kernel/kernel"
)

func doubleCmd() *cli.Command {
	var input string

	return &cli.Command{
		Name:      "double",
		Usage:     "Apply the elementwise transform",
		ArgsUsage: "[value ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Value:       "-",
				Usage:       "JSON array file when no values are given (- for stdin)",
				Destination: &input,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			var (
				values []float64
				err    error
			)
			if cmd.Args().Len() > 0 {
				values, err = parseArgs(cmd.Args().Slice())
			} else {
				values, err = readArray(input, cmd.Root().Reader)
			}
			if err != nil {
				return err
			}

			log.Debug("transform", "n", len(values), "kernel", kernel.Implementation())
			return writeJSON(cmd.Root().Writer, worker.Values(kernel.ComputeDouble(values)))
		},
	}
}

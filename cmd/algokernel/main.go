// Command algokernel runs the numeric kernel from the command line.
//
// Usage:
//
//	algokernel [--log-level LEVEL] [--log-format text|json] <command> [flags]
//
// Examples:
//
//	algokernel double 1 2 3
//	echo '[1, 0, -1]' | algokernel double
//	algokernel vwap --prices '[1,2]' --volumes '[10,10]'
//	algokernel vwap --checked --prices '[5]' --volumes '[0]'
//	algokernel worker < requests.jsonl
//	algokernel info
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-kernel/internal/logger"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "algokernel",
		Usage: "Numeric kernel: elementwise transform and weighted average",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: "text",
				Usage: "log format (text, json)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			log := logger.ForFormat(cmd.String("log-format"), cmd.Root().ErrWriter, logger.ParseLevel(cmd.String("log-level")))
			return logger.WithContext(ctx, log), nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			doubleCmd(),
			vwapCmd(),
			workerCmd(),
			infoCmd(),
		},
	}
}

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-kernel/internal/logger"
	"github.com/cwbudde/algo-kernel/internal/worker"
	"github.com/cwbudde/algo-kernel/kernel"
)

type checkedOutput struct {
	OK          bool         `json:"ok"`
	Value       worker.Float `json:"value"`
	TotalWeight worker.Float `json:"totalWeight"`
	Pairs       int          `json:"pairs"`
	Skipped     int          `json:"skipped"`
	Error       string       `json:"error,omitempty"`
}

func vwapCmd() *cli.Command {
	var (
		pricesJSON  string
		volumesJSON string
		checked     bool
	)

	return &cli.Command{
		Name:  "vwap",
		Usage: "Compute the volume-weighted average price",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "prices",
				Aliases:     []string{"p"},
				Usage:       "prices as a JSON array",
				Destination: &pricesJSON,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "volumes",
				Aliases:     []string{"v", "vols"},
				Usage:       "volumes as a JSON array",
				Destination: &volumesJSON,
				Required:    true,
			},
			&cli.BoolFlag{
				Name:        "checked",
				Usage:       "report invalid input as an error instead of 0",
				Destination: &checked,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			prices, err := parseArray("prices", []byte(pricesJSON))
			if err != nil {
				return err
			}
			volumes, err := parseArray("volumes", []byte(volumesJSON))
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			if !checked {
				v := kernel.ComputeVWAP(prices, volumes)[0]
				_, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))
				return err
			}

			res, err := kernel.WeightedAverage(prices, volumes)
			out := checkedOutput{
				OK:          err == nil,
				Value:       worker.Float(res.Value),
				TotalWeight: worker.Float(res.TotalWeight),
				Pairs:       res.Pairs,
				Skipped:     res.Skipped,
			}
			if err != nil {
				log.Debug("weighted average rejected", "error", err)
				out.Error = err.Error()
			}
			if werr := writeJSON(w, out); werr != nil {
				return werr
			}
			if err != nil {
				return fmt.Errorf("vwap: %w", err)
			}
			return nil
		},
	}
}

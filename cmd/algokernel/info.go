package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-kernel/kernel"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show the selected transform backend and CPU features",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f := cpu.DetectFeatures()

			tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Selected\t%s\n", kernel.Implementation())
			fmt.Fprintf(tw, "Architecture\t%s\n", f.Architecture)
			fmt.Fprintf(tw, "SSE2\t%t\n", f.HasSSE2)
			fmt.Fprintf(tw, "AVX2\t%t\n", f.HasAVX2)
			fmt.Fprintf(tw, "NEON\t%t\n", f.HasNEON)
			fmt.Fprintf(tw, "ForceGeneric\t%t\n", f.ForceGeneric)

			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "Backend\tPriority\tSIMD")
			fmt.Fprintln(tw, "-------\t--------\t----")
			for _, b := range kernel.Backends() {
				fmt.Fprintf(tw, "%s\t%d\t%v\n", b.Name, b.Priority, b.SIMDLevel)
			}
			return tw.Flush()
		},
	}
}

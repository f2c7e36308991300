// Package main provides the grad CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grad-ml/grad/forward"
	"github.com/grad-ml/grad/reverse"
)

const version = "v0.1.0-dev"

var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "grad",
		Short: "Exact derivatives by forward- and reverse-mode automatic differentiation",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("grad %s\n", version)
			},
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Differentiate a sample function with both engines and cross-check",
			RunE:  runDemo,
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck
	}
	reverse.SetLogger(logger)

	// f(x, y) = exp(sin(x)) * tanh(y) / sqrt(x + y²) at (1.5, 0.5).
	const xv, yv = 1.5, 0.5

	duals, err := forward.FromSlice([]float64{xv, yv})
	if err != nil {
		return err
	}
	dx, dy := duals[0], duals[1]
	fd := forward.Exp(forward.Sin(dx)).
		Mul(forward.Tanh(dy)).
		Div(forward.Sqrt(dx.Add(dy.Mul(dy))))

	g := reverse.NewGraph()
	nodes, err := g.FromSlice([]float64{xv, yv})
	if err != nil {
		return err
	}
	nx, ny := nodes[0], nodes[1]
	fn := reverse.Exp(reverse.Sin(nx)).
		Mul(reverse.Tanh(ny)).
		Div(reverse.Sqrt(nx.Add(ny.Mul(ny))))

	logger.Debug("graph built", zap.Int("nodes", g.Len()))

	fmt.Println("f(x, y) = exp(sin(x)) * tanh(y) / sqrt(x + y²)")
	fmt.Printf("at (x, y) = (%g, %g)\n\n", xv, yv)
	fmt.Printf("forward:  f = %.12f  df/dx = %.12f  df/dy = %.12f\n",
		fd.Value(), fd.Deriv()[0], fd.Deriv()[1])
	fmt.Printf("reverse:  f = %.12f  df/dx = %.12f  df/dy = %.12f\n",
		fn.Value(), nx.Grad(), ny.Grad())
	return nil
}

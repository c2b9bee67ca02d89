package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "estimator",
		Short: "Project cost estimator for the agency website",
		Long: `estimator prices software projects from the website's estimator form.

It serves the JSON API used by the form and can price a single project
from the command line.

Examples:
  estimator serve
  estimator estimate --type web --complexity standard --pages 5
  estimator estimate --type mobile --complexity mvp --feature camera --feature gps --tech flutter -o json`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newEstimateCmd())

	return root
}

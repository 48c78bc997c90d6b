package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"decisionengine/cmd"
	"decisionengine/internal/service"
)

func main() {
	root := &cobra.Command{
		Use:   "rde",
		Short: "The Rational Decision Engine",
	}
	root.AddCommand(analyzeCommand(), serveCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func analyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <TICKER> [thesis]",
		Short: "Run the relay for one ticker and print the decision report",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			handler, _, cleanup, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cleanup()

			thesis := ""
			if len(args) > 1 {
				thesis = args[1]
			}

			result, err := handler.AnalyzeService.Analyze(c.Context(), args[0], thesis)
			if err != nil {
				return err
			}
			fmt.Println(service.FormatReport(result, thesis))
			return nil
		},
	}
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(c *cobra.Command, args []string) error {
			handler, secrets, cleanup, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cleanup()

			return handler.StartApi(secrets.Port)
		},
	}
}

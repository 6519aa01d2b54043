// Command lifeplan projects Singapore personal finances over a lifetime:
// CPF balances, housing, life events and scenario comparisons.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgplan/lifeplan/internal/calculation"
	"github.com/sgplan/lifeplan/internal/config"
	"github.com/sgplan/lifeplan/internal/domain"
	"github.com/sgplan/lifeplan/internal/output"
	"github.com/sgplan/lifeplan/internal/server"
)

var (
	inputFile  string
	formatName string
	outputDir  string
	debugMode  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lifeplan",
	Short: "Singapore life-plan projection calculator",
	Long: `lifeplan simulates personal finances from the current age to 123:
salary growth, CPF contributions and interest, housing with CPF usage,
children, insurance and retirement, with branching what-if scenarios.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	projectCmd.Flags().StringVarP(&inputFile, "input", "i", "", "profile file (YAML or JSON)")
	projectCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format (console, csv, json)")
	projectCmd.Flags().StringVarP(&outputDir, "output", "o", "", "write a timestamped report file to this directory instead of stdout")
	projectCmd.MarkFlagRequired("input")

	compareCmd.Flags().StringVarP(&inputFile, "input", "i", "", "profile file (YAML or JSON)")
	compareCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format (console, csv, json)")
	compareCmd.Flags().StringVarP(&outputDir, "output", "o", "", "write a timestamped report file to this directory instead of stdout")
	compareCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(projectCmd, compareCmd, serveCmd, exampleCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newEngine(log *slog.Logger) *calculation.Engine {
	engine := calculation.NewEngine()
	engine.SetLogger(calculation.NewSlogLogger(log))
	return engine
}

func runComparison(file, format string, activeOnly bool) error {
	parser := config.NewInputParser()
	profile, err := parser.LoadFromFile(file)
	if err != nil {
		return err
	}
	if activeOnly {
		for _, s := range profile.Scenarios {
			if s.ID == profile.ActiveScenarioID {
				profile.Scenarios = []domain.Scenario{s}
				break
			}
		}
	}

	log := newLogger()
	engine := newEngine(log)

	comparison, err := engine.CompareScenarios(context.Background(), profile)
	if err != nil {
		return err
	}

	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", format, output.AvailableFormatterNames())
	}

	if outputDir != "" {
		path, err := output.WriteFormatted(formatter, comparison, outputDir)
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", path)
		return nil
	}

	data, err := formatter.Format(comparison)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project the active scenario year by year",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComparison(inputFile, formatName, true)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all scenarios in a profile side by side",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComparison(inputFile, formatName, false)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := server.LoadConfig()
		if err != nil {
			return err
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
		srv := server.New(newEngine(log), log)
		return srv.ListenAndServe(cfg.Addr)
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example [file]",
	Short: "Write a starter profile to a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "lifeplan.yaml"
		if len(args) == 1 {
			filename = args[0]
		}
		parser := config.NewInputParser()
		if err := parser.SaveToFile(parser.CreateExampleProfile(), filename); err != nil {
			return err
		}
		fmt.Printf("Example profile written to %s\n", filename)
		return nil
	},
}

package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/accolaben-a11y/three-buckets/internal/calculation"
	"github.com/accolaben-a11y/three-buckets/internal/config"
	"github.com/accolaben-a11y/three-buckets/internal/output"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "three-buckets",
	Short: "Retirement cash flow calculator",
	Long:  "Models a retiree's monthly cash flow across recurring income, nest egg accounts and home equity (HECM)",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [client-file]",
	Short: "Run the full three-bucket calculation for a client file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		doc, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewCalculationEngine()
		result := engine.RunFullCalculation(&doc.Client, doc.Settings)

		format, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			log.Fatalf("unsupported format: %s", format)
		}
		data, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [client-file]",
	Short: "Validate a client file without running calculations",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s is valid\n", args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "three-buckets %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

func init() {
	calculateCmd.Flags().String("format", "console", "Output format: console, json, csv")
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

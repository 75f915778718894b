package main

import (
	"encoding/json"
	"fmt"
	"os"

	"bizlens/pkg/core/benchmark"
	"bizlens/pkg/core/report"
	"bizlens/pkg/core/validate"
	"bizlens/pkg/models"

	"github.com/spf13/cobra"
)

var (
	businessPath string
	economicPath string
	asHTML       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a one-off business performance analysis from JSON files",
		RunE:  runAnalyze,
	}
	rootCmd.Flags().StringVarP(&businessPath, "business", "b", "",
		"Path to a business snapshot JSON file (required)")
	rootCmd.Flags().StringVarP(&economicPath, "economic", "e", "",
		"Path to an economic snapshot JSON file (optional)")
	rootCmd.Flags().BoolVar(&asHTML, "html", false,
		"Render the report as HTML instead of Markdown")
	rootCmd.MarkFlagRequired("business")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	business, err := readBusiness(businessPath)
	if err != nil {
		return err
	}

	var economic *models.EconomicSnapshot
	if economicPath != "" {
		economic, err = readEconomic(economicPath)
		if err != nil {
			return err
		}
	}

	if err := validate.BusinessSnapshot(business); err != nil {
		return fmt.Errorf("invalid business snapshot: %w", err)
	}
	if err := validate.EconomicSnapshot(economic); err != nil {
		return fmt.Errorf("invalid economic snapshot: %w", err)
	}

	benchmarks, err := benchmark.Load()
	if err != nil {
		return fmt.Errorf("failed to load benchmark tables: %w", err)
	}

	rep, err := report.NewAssembler(benchmarks).Assemble(business, economic)
	if err != nil {
		return err
	}

	if asHTML {
		html, err := rep.HTML()
		if err != nil {
			return err
		}
		fmt.Println(html)
		return nil
	}
	fmt.Println(rep.Markdown())
	return nil
}

func readBusiness(path string) (*models.BusinessSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read business snapshot: %w", err)
	}
	var snapshot models.BusinessSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse business snapshot: %w", err)
	}
	return &snapshot, nil
}

func readEconomic(path string) (*models.EconomicSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read economic snapshot: %w", err)
	}
	var snapshot models.EconomicSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse economic snapshot: %w", err)
	}
	return &snapshot, nil
}

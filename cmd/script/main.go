package main

import (
	"coindash/cmd"
	"coindash/internal/calculator"
	"coindash/internal/domain"
	"coindash/internal/repository"
	"coindash/internal/service"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coindash-script",
	Short: "one-off operational tasks for coindash",
}

var refreshTrendingCmd = &cobra.Command{
	Use:   "refresh-trending",
	Short: "pull the current trending list and store it",
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		return apiHandler.TrendingService.Refresh(context.Background())
	},
}

var analyzeWindowDays int

// analyze runs the engine directly against live prices without needing
// a database, e.g. `coindash-script analyze bitcoin=0.6 ethereum=0.4`
var analyzeCmd = &cobra.Command{
	Use:   "analyze coinId=weight [coinId=weight ...]",
	Short: "run portfolio risk analytics and print the result",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		allocations := make([]domain.Allocation, 0, len(args))
		for _, arg := range args {
			parts := strings.SplitN(arg, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("expected coinId=weight, got %q", arg)
			}
			weight, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return fmt.Errorf("invalid weight in %q: %w", arg, err)
			}
			allocations = append(allocations, domain.Allocation{
				AssetID: parts[0],
				Weight:  weight,
			})
		}

		analyticsService := service.NewAnalyticsService(
			repository.NewCoinGeckoRepository(os.Getenv("COINGECKO_API_KEY")),
			calculator.NewRandomWalkSynthesizer(),
		)
		analytics, err := analyticsService.Analyze(context.Background(), allocations, analyzeWindowDays)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(analytics, "", "    ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func main() {
	analyzeCmd.Flags().IntVar(&analyzeWindowDays, "window", 30, "lookback window in days")
	rootCmd.AddCommand(refreshTrendingCmd)
	rootCmd.AddCommand(analyzeCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

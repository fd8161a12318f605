package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func exchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange",
		Short: "Show current exchange rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Market.FetchCurrencies(cmd.Context()); err != nil {
				return err
			}
			for _, c := range wire.Market.Currencies() {
				fmt.Printf("%-6s %12.4f  %s\n", c.Code, c.Rate, c.Description)
			}
			return nil
		},
	}
}

func trendsCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show market analytics for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the last 30 days.
			if to == "" {
				to = time.Now().Format("2006-01-02")
			}
			if from == "" {
				from = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
			}

			trends, err := wire.Market.FetchTrends(cmd.Context(), from, to)
			if err != nil {
				return err
			}

			fmt.Println("average price:")
			for _, p := range trends.PriceTrend {
				fmt.Printf("  %-12s %12.0f\n", p.Date, p.AvgPrice)
			}
			fmt.Println("sales volume:")
			for _, p := range trends.SalesVolume {
				fmt.Printf("  %-12s %6d\n", p.Date, p.SalesVolume)
			}
			fmt.Println("regions:")
			for _, r := range trends.PopularityRegion {
				fmt.Printf("  %-20s %6d\n", r.Region, r.SalesCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}

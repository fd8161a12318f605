package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"turak/internal/domain"
)

func predictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Price and rent predictions",
	}
	cmd.AddCommand(
		predictFormCmd("price", "Predict the sale price", func() domain.PredictionWorkflow { return wire.Price }),
		predictFormCmd("rent", "Predict the monthly rent", func() domain.PredictionWorkflow { return wire.Rent }),
		predictHistoryCmd(),
		predictGraphCmd(),
	)
	return cmd
}

// predictFormCmd builds one submit command over a workflow. Price and rent
// differ only in which workflow instance they drive.
func predictFormCmd(use, short string, workflow func() domain.PredictionWorkflow) *cobra.Command {
	var bedrooms, bathrooms, floors, sqft, propertyType, region string
	var hasPool bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := workflow()
			fields := map[string]string{
				"bedrooms":  bedrooms,
				"bathrooms": bathrooms,
				"floors":    floors,
				"sqft":      sqft,
				"has_pool":  strconv.FormatBool(hasPool),
			}
			if propertyType != "" {
				fields["property_type"] = propertyType
			}
			if region != "" {
				fields["region"] = region
			}
			for name, value := range fields {
				if err := w.SetField(name, value); err != nil {
					return err
				}
			}

			value, err := w.Submit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s: %.2f\n", use, value)
			return nil
		},
	}

	cmd.Flags().StringVar(&bedrooms, "bedrooms", "", "number of bedrooms")
	cmd.Flags().StringVar(&bathrooms, "bathrooms", "", "number of bathrooms")
	cmd.Flags().StringVar(&floors, "floors", "", "number of floors")
	cmd.Flags().StringVar(&sqft, "sqft", "", "area in square feet")
	cmd.Flags().BoolVar(&hasPool, "pool", false, "has a pool")
	cmd.Flags().StringVar(&propertyType, "type", "", "property type (House, Apartment)")
	cmd.Flags().StringVar(&region, "region", "", "region")
	return cmd
}

func predictHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List your past predictions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := wire.History.Fetch(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range records {
				fmt.Printf("%6d  %-6s %12.2f  %-12s %s\n",
					r.ID, r.Kind, r.Result, r.Region, r.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func predictGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph <history-id>",
		Short: "Show the trend samples for one prediction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("history id: %w", err)
			}
			points, err := wire.History.Graph(cmd.Context(), id)
			if err != nil {
				return err
			}
			for _, p := range points {
				fmt.Printf("%-12s %12.2f\n", p.Label, p.Value)
			}
			return nil
		},
	}
}

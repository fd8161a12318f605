package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"turak/internal/domain"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Moderation: pending houses, users, stats",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "pending",
			Short: "List houses awaiting verification",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := wire.Moderation.FetchPending(cmd.Context()); err != nil {
					return err
				}
				for _, h := range wire.Moderation.Pending() {
					fmt.Printf("%6d  %-30s %s\n", h.ID, h.Name, h.Location)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "verify <house-id>",
			Short: "Publish a pending house",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseHouseID(args[0])
				if err != nil {
					return err
				}
				return wire.Moderation.VerifyHouse(cmd.Context(), id)
			},
		},
		&cobra.Command{
			Use:   "reject <house-id>",
			Short: "Reject and delete a pending house",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseHouseID(args[0])
				if err != nil {
					return err
				}
				return wire.Moderation.RejectHouse(cmd.Context(), id)
			},
		},
		&cobra.Command{
			Use:   "users",
			Short: "List accounts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := wire.Moderation.FetchUsers(cmd.Context()); err != nil {
					return err
				}
				for _, u := range wire.Moderation.Users() {
					flag := ""
					if u.IsBlocked {
						flag = " (blocked)"
					}
					fmt.Printf("%-24s %s <%s>%s\n", u.ID, u.Username, u.Email, flag)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "block <user-id>",
			Short: "Block an account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return wire.Moderation.BlockUser(cmd.Context(), domain.UserID(args[0]))
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show dashboard counters",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				stats, err := wire.Moderation.FetchStats(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("users: %d (agents: %d)\nhouses: %d (pending: %d)\nposts: %d\n",
					stats.TotalUsers, stats.TotalAgents,
					stats.TotalHouses, stats.PendingHouses, stats.TotalPosts)
				return nil
			},
		},
	)
	return cmd
}

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"turak/internal/domain"
)

func housesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "houses",
		Short: "Browse and interact with listings",
	}
	cmd.AddCommand(housesListCmd(), housesShowCmd(), housesCommentCmd(),
		housesUncommentCmd(), housesLikeCmd(), housesContactCmd())
	return cmd
}

func housesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the public catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Listing.FetchHouses(cmd.Context()); err != nil {
				return err
			}
			for _, h := range wire.Listing.Houses() {
				fmt.Printf("%6d  %-30s %-20s %12.0f  %d rooms\n",
					h.ID, h.Name, h.Location, h.Price, h.Rooms)
			}
			return nil
		},
	}
}

func housesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one listing with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseHouseID(args[0])
			if err != nil {
				return err
			}
			if err := wire.Listing.FetchHouses(cmd.Context()); err != nil {
				return err
			}
			h, ok := wire.Listing.House(id)
			if !ok {
				return fmt.Errorf("house %d not found", id)
			}
			fmt.Printf("%s (%s)\n%s\n", h.Name, h.Location, h.Description)
			fmt.Printf("price %.0f, %d rooms, %.0f m², pool: %v, views: %d, likes: %d\n",
				h.Price, h.Rooms, h.Square, h.HasPool, h.Views, len(h.Likes))

			if err := wire.Listing.FetchComments(cmd.Context(), id); err != nil {
				return err
			}
			for _, c := range wire.Listing.Comments(id) {
				fmt.Printf("  [%d] %s: %s\n", c.ID, c.Author, c.Content)
			}
			return nil
		},
	}
}

func housesCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <house-id> <content>",
		Short: "Comment on a listing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseHouseID(args[0])
			if err != nil {
				return err
			}
			return wire.Listing.SubmitComment(cmd.Context(), id, args[1])
		},
	}
}

func housesUncommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uncomment <house-id> <comment-id>",
		Short: "Delete one of your comments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			house, err := parseHouseID(args[0])
			if err != nil {
				return err
			}
			comment, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("comment id: %w", err)
			}
			return wire.Listing.DeleteComment(cmd.Context(), domain.CommentID(comment), house)
		},
	}
}

func housesLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <house-id>",
		Short: "Toggle your like on a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseHouseID(args[0])
			if err != nil {
				return err
			}
			status, err := wire.Listing.ToggleLike(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("liked: %v, likes: %d\n", status.Liked, status.LikeCount)
			return nil
		},
	}
}

func housesContactCmd() *cobra.Command {
	var req domain.ContactRequest
	var code string

	cmd := &cobra.Command{
		Use:   "contact <house-id>",
		Short: "Contact the seller after verifying your email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseHouseID(args[0])
			if err != nil {
				return err
			}
			if code == "" {
				// First step: request a verification code for the address.
				return wire.Listing.SendContactCode(cmd.Context(), req.Email)
			}
			if err := wire.Listing.VerifyContactCode(cmd.Context(), req.Email, code); err != nil {
				return err
			}
			return wire.Listing.ContactSeller(cmd.Context(), id, req)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "your name")
	cmd.Flags().StringVar(&req.Email, "email", "", "your email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "your phone")
	cmd.Flags().StringVar(&req.Message, "message", "", "message to the seller")
	cmd.Flags().StringVar(&code, "code", "", "verification code from the first run")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func parseHouseID(s string) (domain.HouseID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("house id: %w", err)
	}
	return domain.HouseID(id), nil
}

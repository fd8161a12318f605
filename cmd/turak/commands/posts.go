package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"turak/internal/domain"
)

func postsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Blog posts",
	}

	var draft domain.PostDraft
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Posts.CreatePost(cmd.Context(), draft)
		},
	}
	create.Flags().StringVar(&draft.Title, "title", "", "post title")
	create.Flags().StringVar(&draft.Content, "content", "", "post body")
	create.Flags().StringVar(&draft.Image, "image", "", "image URL")
	_ = create.MarkFlagRequired("title")

	var update domain.PostDraft
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Posts.UpdatePost(cmd.Context(), domain.PostID(args[0]), update)
		},
	}
	updateCmd.Flags().StringVar(&update.Title, "title", "", "post title")
	updateCmd.Flags().StringVar(&update.Content, "content", "", "post body")
	updateCmd.Flags().StringVar(&update.Image, "image", "", "image URL")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List posts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := wire.Posts.FetchPosts(cmd.Context()); err != nil {
					return err
				}
				for _, p := range wire.Posts.Posts() {
					fmt.Printf("%-24s %-40s %s\n", p.ID, p.Title, p.Author)
				}
				return nil
			},
		},
		create,
		updateCmd,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a post",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return wire.Posts.DeletePost(cmd.Context(), domain.PostID(args[0]))
			},
		},
	)
	return cmd
}

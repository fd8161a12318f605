package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"turak/internal/domain"
)

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Direct messages",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "users",
			Short: "List conversations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := wire.Chat.FetchUsers(cmd.Context()); err != nil {
					return err
				}
				for _, u := range wire.Chat.ChatUsers() {
					marker := " "
					if u.HasUnread {
						marker = "*"
					}
					fmt.Printf("%s %-24s %s\n", marker, u.ID, u.Username)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "log <user-id>",
			Short: "Show one conversation",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				peer := domain.UserID(args[0])
				wire.Chat.SelectUser(peer)
				if err := wire.Chat.FetchMessages(cmd.Context(), peer); err != nil {
					return err
				}
				for _, m := range wire.Chat.Messages() {
					read := " "
					if m.IsRead {
						read = "✓"
					}
					fmt.Printf("%s %s %s: %s\n",
						m.CreatedAt.Format("15:04"), read, m.SenderID, m.Text)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "send <user-id> <text>",
			Short: "Send a message",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				wire.Chat.SelectUser(domain.UserID(args[0]))
				return wire.Chat.SendMessage(cmd.Context(), args[1], "")
			},
		},
		&cobra.Command{
			Use:   "watch <user-id>",
			Short: "Stream a conversation live",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				peer := domain.UserID(args[0])
				wire.Chat.SelectUser(peer)
				if err := wire.Chat.FetchMessages(cmd.Context(), peer); err != nil {
					return err
				}
				if err := wire.Chat.Subscribe(cmd.Context()); err != nil {
					return err
				}
				defer wire.Chat.Unsubscribe()

				// Print what we have, then follow until interrupted.
				seen := 0
				for _, m := range wire.Chat.Messages() {
					fmt.Printf("%s %s: %s\n", m.CreatedAt.Format("15:04"), m.SenderID, m.Text)
					seen++
				}
				ticker := time.NewTicker(500 * time.Millisecond)
				defer ticker.Stop()
				for {
					select {
					case <-cmd.Context().Done():
						return nil
					case <-ticker.C:
					}
					msgs := wire.Chat.Messages()
					for ; seen < len(msgs); seen++ {
						m := msgs[seen]
						fmt.Printf("%s %s: %s\n", m.CreatedAt.Format("15:04"), m.SenderID, m.Text)
					}
				}
			},
		},
	)
	return cmd
}

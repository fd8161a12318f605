package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"turak/internal/domain"
)

func assistantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assistant",
		Short: "Talk to the property assistant bot",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List your assistant threads",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := wire.Assistant.FetchThreads(cmd.Context()); err != nil {
					return err
				}
				for _, th := range wire.Assistant.Threads() {
					fmt.Printf("%6d  %s\n", th.ID, th.Name)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "new",
			Short: "Start a fresh thread",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := wire.Assistant.CreateThread(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("thread %d\n", id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "rename <thread-id> <name>",
			Short: "Rename a thread",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseThreadID(args[0])
				if err != nil {
					return err
				}
				return wire.Assistant.RenameThread(cmd.Context(), id, args[1])
			},
		},
		&cobra.Command{
			Use:   "log <thread-id>",
			Short: "Show a thread's transcript",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseThreadID(args[0])
				if err != nil {
					return err
				}
				if err := wire.Assistant.FetchMessages(cmd.Context(), id); err != nil {
					return err
				}
				for _, m := range wire.Assistant.Messages() {
					who := "bot"
					if m.IsUser {
						who = "you"
					}
					fmt.Printf("%s: %s\n", who, m.Text)
					if m.Image != "" {
						fmt.Printf("     %s\n", m.Image)
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "ask <thread-id> <text>",
			Short: "Send a prompt and print the reply",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseThreadID(args[0])
				if err != nil {
					return err
				}
				wire.Assistant.SelectThread(id)
				reply, err := wire.Assistant.Send(cmd.Context(), args[1])
				if err != nil {
					return err
				}
				fmt.Println(reply.Text)
				if reply.Image != "" {
					fmt.Println(reply.Image)
				}
				return nil
			},
		},
	)
	return cmd
}

func parseThreadID(s string) (domain.ThreadID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("thread id: %w", err)
	}
	return domain.ThreadID(id), nil
}

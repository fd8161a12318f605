package commands

import (
	"github.com/spf13/cobra"
)

// The reset steps (request, verify, complete) share the session service's
// continuation state, so they must run in order within one process or be
// driven by an embedding UI.
func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Password-reset flow",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "request <email>",
			Short: "Email a reset code",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return wire.Session.RequestPasswordReset(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "verify <code>",
			Short: "Verify the emailed code",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return wire.Session.VerifyResetCode(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "complete <code> <new-password>",
			Short: "Verify the code and set the new password",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := wire.Session.VerifyResetCode(cmd.Context(), args[0]); err != nil {
					return err
				}
				return wire.Session.ResetPassword(cmd.Context(), args[1], args[1])
			},
		},
	)
	return cmd
}

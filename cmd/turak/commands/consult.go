package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"turak/internal/domain"
)

func consultCmd() *cobra.Command {
	var name, city, phone, message string

	cmd := &cobra.Command{
		Use:   "consult",
		Short: "Request a free consultation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for field, value := range map[string]string{
				"name": name, "city": city, "phone": phone, "message": message,
			} {
				if err := wire.Consult.SetField(field, value); err != nil {
					return err
				}
			}
			return wire.Consult.Submit(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&city, "city", "", "your city")
	cmd.Flags().StringVar(&phone, "phone", "", "your phone")
	cmd.Flags().StringVar(&message, "message", "", "what you need")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func applyCmd() *cobra.Command {
	var form domain.AgentApplicationForm

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply to become an agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Agents.Apply(cmd.Context(), form)
		},
	}

	cmd.Flags().StringVar(&form.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "phone")
	cmd.Flags().StringVar(&form.PassportNumber, "passport", "", "passport number")
	cmd.Flags().StringVar(&form.PassportIssuedBy, "issued-by", "", "passport issuing authority")
	cmd.Flags().StringVar(&form.PassportIssueDate, "issue-date", "", "passport issue date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.Address, "address", "", "home address")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("passport")
	return cmd
}

func applicationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applications",
		Short: "Review agent applications",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List submitted applications",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := wire.Agents.FetchApplications(cmd.Context()); err != nil {
					return err
				}
				for _, a := range wire.Agents.Applications() {
					fmt.Printf("%6d  %-24s %-12s %s\n", a.ID, a.FullName, a.Status, a.Phone)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "approve <id>",
			Short: "Approve an application",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseApplicationID(args[0])
				if err != nil {
					return err
				}
				return wire.Agents.Approve(cmd.Context(), id)
			},
		},
		&cobra.Command{
			Use:   "reject <id>",
			Short: "Reject an application",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseApplicationID(args[0])
				if err != nil {
					return err
				}
				return wire.Agents.Reject(cmd.Context(), id)
			},
		},
	)
	return cmd
}

func parseApplicationID(s string) (domain.ApplicationID, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("application id: %w", err)
	}
	return domain.ApplicationID(id), nil
}

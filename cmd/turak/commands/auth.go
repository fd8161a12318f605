package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in and store the issued tokens",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Session.Login(cmd.Context(), args[0], args[1])
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the refresh token and clear local state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Session.Logout(cmd.Context())
		},
	}
}

func signupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup <username> <email> <password>",
		Short: "Register a new account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Session.Signup(cmd.Context(), args[0], args[1], args[2])
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Session.CheckAuth(cmd.Context()); err != nil {
				return err
			}
			user, ok := wire.Session.User()
			if !ok {
				fmt.Println("not logged in")
				return nil
			}
			fmt.Printf("%s <%s>\n", user.Username, user.Email)
			if user.IsSuperuser {
				fmt.Println("role: admin")
			} else if user.IsAgent {
				fmt.Println("role: agent")
			}
			if claims, ok := wire.Session.TokenInfo(); ok && !claims.ExpiresAt.IsZero() {
				fmt.Printf("token expires: %s\n", claims.ExpiresAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func confirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm <email> <code>",
		Short: "Confirm a new account's email",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Session.ConfirmEmail(cmd.Context(), args[0], args[1])
		},
	}
}

func resendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resend <email>",
		Short: "Resend the confirmation code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Session.ResendCode(cmd.Context(), args[0])
		},
	}
}

func profileCmd() *cobra.Command {
	var username, email, avatar string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the profile, optionally uploading an avatar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := map[string]string{}
			if username != "" {
				fields["username"] = username
			}
			if email != "" {
				fields["email"] = email
			}

			if avatar == "" {
				return wire.Session.UpdateProfile(cmd.Context(), fields, "", nil)
			}
			f, err := os.Open(avatar)
			if err != nil {
				return err
			}
			defer f.Close()
			return wire.Session.UpdateProfile(cmd.Context(), fields, filepath.Base(avatar), f)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "new username")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&avatar, "avatar", "", "path to an avatar image")
	return cmd
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tair/storefront/internal/storefront/api"
)

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}

			user, err := e.client.Register(cmd.Context(), name, email, password)
			if err != nil {
				e.notifier.Failure(cmd.Context(), "Registration failed", err)
				return err
			}
			return e.printer.print(user, func(w io.Writer) {
				fmt.Fprintf(w, "Registered %s <%s>, run `shopper login` to sign in\n", user.Name, user.Email)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password, at least 6 characters")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session in the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}

			session, user, err := e.client.Login(cmd.Context(), email, password)
			if err != nil {
				e.notifier.Failure(cmd.Context(), "Login failed", err)
				return err
			}

			e.profile.Session = session
			e.profile.Email = user.Email
			if rootOpts.API != "" {
				e.profile.API = rootOpts.API
			}
			if err := e.save(); err != nil {
				return err
			}

			return e.printer.print(user, func(w io.Writer) {
				fmt.Fprintf(w, "Logged in as %s\n", user.Email)
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := LoadProfile(rootOpts.Profile)
			if err != nil {
				return err
			}
			profile.Session.UserID = 0
			profile.Session.Token = ""
			profile.Email = ""
			return profile.Save(rootOpts.Profile)
		},
	}
}

// NewProfileCommand creates the profile command. With any of the update
// flags set it changes the profile, otherwise it shows it.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	var name, email, image string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the account profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}
			session, err := e.session()
			if err != nil {
				return err
			}

			var update api.ProfileUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("email") {
				update.Email = &email
			}
			if cmd.Flags().Changed("image") {
				update.ProfileImage = &image
			}

			var user *api.User
			if update.Name == nil && update.Email == nil && update.ProfileImage == nil {
				user, err = e.client.Profile(cmd.Context(), session)
			} else {
				user, err = e.client.UpdateProfile(cmd.Context(), session, update)
				if err == nil {
					e.notifier.Success(cmd.Context(), "Profile updated")
				}
			}
			if err != nil {
				e.notifier.Failure(cmd.Context(), "Could not load the profile", err)
				return err
			}

			return e.printer.print(user, func(w io.Writer) {
				fmt.Fprintf(w, "ID\t%d\n", user.ID)
				fmt.Fprintf(w, "Name\t%s\n", user.Name)
				fmt.Fprintf(w, "Email\t%s\n", user.Email)
				if user.ProfileImage != "" {
					fmt.Fprintf(w, "Image\t%s\n", user.ProfileImage)
				}
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&image, "image", "", "new profile image URL")

	return cmd
}

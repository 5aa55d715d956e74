// hotelguest is the customer-facing front-end. Registered customers sign in
// with a CUSTOMER account; anonymous guests manage single resources through
// the mailed link token plus an emailed one-time passcode.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/api"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/apierror"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/app"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/guest"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/policy"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, "hotelguest", policy.CustomerAdmission)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "hotelguest",
		Short:         "Hotel booking site for customers and guests",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		bookingCmd(a),
		serviceCmd(a),
		housekeepingCmd(a),
		feedbackCmd(a),
	)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

// renderError keeps guest-flow errors that already carry their own guidance
// verbatim; everything else goes through the shared human-readable mapping.
func renderError(err error) string {
	if errors.Is(err, guest.ErrAccessDenied) || errors.Is(err, guest.ErrInvalidOTP) {
		return err.Error()
	}
	return apierror.UserMessage(err)
}

func loginCmd(a *app.App) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = prompt("Username: ")
			}
			if password == "" {
				password = prompt("Password: ")
			}
			user, err := a.Session.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Printf("Welcome back, %s\n", user.FullName)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func logoutCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.Session.CurrentUser()
			if user == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s <%s>\n", user.FullName, user.Email)
			return nil
		},
	}
}

func bookingCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{Use: "booking", Short: "View and manage bookings"}

	var token string

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a booking (use --token for a mailed link)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, err := a.Bookings.Get(cmd.Context(), id, token)
			if err != nil {
				return err
			}
			return printJSON(b)
		},
	}

	var notes string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withBookingAccess(cmd.Context(), a, id, token, guest.ActionEdit, func(ctx context.Context, guestToken string) error {
				_, err := a.Bookings.Update(ctx, id, &domain.BookingUpdateRequest{Notes: &notes}, guestToken)
				if err != nil {
					return err
				}
				fmt.Printf("Booking %d updated\n", id)
				return nil
			})
		},
	}
	update.Flags().StringVar(&notes, "notes", "", "updated booking notes")

	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withBookingAccess(cmd.Context(), a, id, token, guest.ActionCancel, func(ctx context.Context, guestToken string) error {
				if err := a.Bookings.Cancel(ctx, id, guestToken); err != nil {
					return err
				}
				fmt.Printf("Booking %d canceled\n", id)
				return nil
			})
		},
	}

	cmd.PersistentFlags().StringVar(&token, "token", "", "guest access token from the emailed link")
	cmd.AddCommand(show, update, cancel)
	return cmd
}

func serviceCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{Use: "service", Short: "Manage in-stay service orders"}

	var token string

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a service order (use --token for a mailed link)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			sr, err := a.Services.Get(cmd.Context(), id, token)
			if err != nil {
				return err
			}
			return printJSON(sr)
		},
	}

	var notes string
	var quantity int
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a service order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withServiceAccess(cmd.Context(), a, id, token, guest.ActionEdit, func(ctx context.Context, guestToken string) error {
				req := &domain.RequestUpdate{}
				if notes != "" {
					req.Notes = &notes
				}
				if quantity != 0 {
					req.Quantity = &quantity
				}
				_, err := a.Services.Update(ctx, id, req, guestToken)
				if err != nil {
					return err
				}
				fmt.Printf("Service order %d updated\n", id)
				return nil
			})
		},
	}
	update.Flags().StringVar(&notes, "notes", "", "updated order notes")
	update.Flags().IntVar(&quantity, "quantity", 0, "updated quantity")

	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a service order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withServiceAccess(cmd.Context(), a, id, token, guest.ActionCancel, func(ctx context.Context, guestToken string) error {
				if err := a.Services.Cancel(ctx, id, guestToken); err != nil {
					return err
				}
				fmt.Printf("Service order %d canceled\n", id)
				return nil
			})
		},
	}

	cmd.PersistentFlags().StringVar(&token, "token", "", "guest access token from the emailed link")
	cmd.AddCommand(show, update, cancel)
	return cmd
}

func housekeepingCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{Use: "housekeeping", Short: "Manage room-cleaning requests"}

	var token string

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a cleaning request (use --token for a mailed link)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			hr, err := a.Housekeeping.Get(cmd.Context(), id, token)
			if err != nil {
				return err
			}
			return printJSON(hr)
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a cleaning request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withHousekeepingAccess(cmd.Context(), a, id, token, guest.ActionCancel, func(ctx context.Context, guestToken string) error {
				if err := a.Housekeeping.Cancel(ctx, id, guestToken); err != nil {
					return err
				}
				fmt.Printf("Cleaning request %d canceled\n", id)
				return nil
			})
		},
	}

	cmd.PersistentFlags().StringVar(&token, "token", "", "guest access token from the emailed link")
	cmd.AddCommand(show, cancel)
	return cmd
}

func feedbackCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{Use: "feedback", Short: "Manage a review"}

	var token string

	var rating int
	var comment string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fb, err := a.Feedback.Get(cmd.Context(), id, token)
			if err != nil {
				return err
			}
			res := guest.Resource{Type: api.ResourceFeedback, ID: id, CustomerID: fb.CustomerID, GuestEmail: fb.GuestEmail}
			return withGuestAccess(cmd.Context(), a, res, token, guest.ActionEdit, func(ctx context.Context, guestToken string) error {
				req := &domain.FeedbackUpdateRequest{}
				if rating != 0 {
					req.Rating = &rating
				}
				if comment != "" {
					req.Comment = &comment
				}
				_, err := a.Feedback.Update(ctx, id, req, guestToken)
				return err
			})
		},
	}
	update.Flags().IntVar(&rating, "rating", 0, "rating 1-5")
	update.Flags().StringVar(&comment, "comment", "", "review text")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fb, err := a.Feedback.Get(cmd.Context(), id, token)
			if err != nil {
				return err
			}
			res := guest.Resource{Type: api.ResourceFeedback, ID: id, CustomerID: fb.CustomerID, GuestEmail: fb.GuestEmail}
			return withGuestAccess(cmd.Context(), a, res, token, guest.ActionDelete, func(ctx context.Context, guestToken string) error {
				return a.Feedback.Delete(ctx, id, guestToken)
			})
		},
	}

	cmd.PersistentFlags().StringVar(&token, "token", "", "guest access token from the emailed link")
	cmd.AddCommand(update, del)
	return cmd
}

func withBookingAccess(ctx context.Context, a *app.App, id int64, token string, action guest.Action, do func(context.Context, string) error) error {
	b, err := a.Bookings.Get(ctx, id, token)
	if err != nil {
		return err
	}
	res := guest.Resource{Type: api.ResourceBookings, ID: id, CustomerID: b.CustomerID, GuestEmail: b.GuestEmail}
	return withGuestAccess(ctx, a, res, token, action, do)
}

func withServiceAccess(ctx context.Context, a *app.App, id int64, token string, action guest.Action, do func(context.Context, string) error) error {
	sr, err := a.Services.Get(ctx, id, token)
	if err != nil {
		return err
	}
	res := guest.Resource{Type: api.ResourceServices, ID: id, CustomerID: sr.CustomerID, GuestEmail: sr.GuestEmail}
	return withGuestAccess(ctx, a, res, token, action, do)
}

func withHousekeepingAccess(ctx context.Context, a *app.App, id int64, token string, action guest.Action, do func(context.Context, string) error) error {
	hr, err := a.Housekeeping.Get(ctx, id, token)
	if err != nil {
		return err
	}
	res := guest.Resource{Type: api.ResourceHousekeeping, ID: id, CustomerID: hr.CustomerID, GuestEmail: hr.GuestEmail}
	return withGuestAccess(ctx, a, res, token, action, do)
}

// withGuestAccess runs the access decision and, for guest-owned resources,
// the OTP challenge, before handing control to the action.
func withGuestAccess(ctx context.Context, a *app.App, res guest.Resource, urlToken string, action guest.Action, do func(context.Context, string) error) error {
	resolver := guest.NewResolver(a.GuestOps, a.Session, a.Store)

	mode, _ := resolver.Resolve(ctx, res, urlToken, false, "")
	switch mode {
	case guest.ModeDirect:
		return do(ctx, "")
	case guest.ModeDenied:
		return fmt.Errorf("%w; you must be signed in as the owner of this %s to %s it. Log in at %s or use the link from your confirmation email",
			guest.ErrAccessDenied, res.Type, action, a.Config.App.LoginURL)
	}

	verified, err := resolver.AlreadyVerified(ctx)
	if err == nil && verified {
		if err := do(ctx, resolver.GuestToken()); err != nil {
			return err
		}
		resolver.ConfirmAction(ctx)
		return nil
	}

	if err := resolver.BeginAction(ctx, action); err != nil {
		return err
	}
	fmt.Printf("A 6-digit code was emailed to %s.\n", res.GuestEmail)

	for {
		code := prompt("Enter code (blank to cancel): ")
		if code == "" {
			resolver.CancelChallenge()
			return fmt.Errorf("verification canceled")
		}
		ok, err := resolver.SubmitCode(ctx, code)
		if err != nil {
			if errors.Is(err, guest.ErrInvalidOTP) {
				fmt.Fprintln(os.Stderr, err)
			} else {
				fmt.Fprintln(os.Stderr, apierror.UserMessage(err))
			}
			continue
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "Invalid code, try again.")
			continue
		}
		break
	}

	if err := do(ctx, resolver.GuestToken()); err != nil {
		return err
	}
	resolver.ConfirmAction(ctx)
	return nil
}

func parseID(s string) (int64, error) {
	var id int64
	if _, err := fmt.Sscanf(s, "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// hoteldesk is the staff dashboard front-end. Logins with the CUSTOMER role
// are rejected; available commands follow the role capability table.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/apierror"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/app"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/policy"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, "hoteldesk", policy.StaffAdmission)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "hoteldesk",
		Short:         "Hotel staff dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		bookingsCmd(a),
		roomsCmd(a),
		housekeepingCmd(a),
		servicesCmd(a),
		foliosCmd(a),
		feedbackCmd(a),
	)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, apierror.UserMessage(err))
		os.Exit(1)
	}
}

func loginCmd(a *app.App) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a staff account",
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
			fmt.Printf("Logged in as %s (%s)\n", user.FullName, user.Role)
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
		Short: "Show the signed-in user and capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.Session.CurrentUser()
			if user == nil {
				fmt.Println("Not logged in")
				return nil
			}
			fmt.Printf("%s <%s> role=%s\n", user.FullName, user.Email, user.Role)
			for _, c := range policy.Capabilities(user.Role) {
				fmt.Printf("  %s\n", c)
			}
			return nil
		},
	}
}

// requireCap gates a command on the signed-in role's capability grant.
func requireCap(a *app.App, cap policy.Capability) error {
	user := a.Session.CurrentUser()
	if user == nil {
		return fmt.Errorf("not logged in; run hoteldesk login")
	}
	if !policy.Can(user.Role, cap) {
		return fmt.Errorf("role %s may not %s", user.Role, cap)
	}
	return nil
}

func bookingsCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{Use: "bookings", Short: "Manage bookings"}

	var status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapViewBookings); err != nil {
				return err
			}
			bookings, err := a.Bookings.List(cmd.Context(), domain.BookingListOptions{Status: status})
			if err != nil {
				return err
			}
			for _, b := range bookings {
				fmt.Printf("%6d  %-12s room %-5s %s -> %s\n",
					b.ID, b.Status, b.RoomNumber,
					b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"))
			}
			return nil
		},
	}
	list.Flags().StringVar(&status, "status", "", "filter by status")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapViewBookings); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			b, err := a.Bookings.Get(cmd.Context(), id, "")
			if err != nil {
				return err
			}
			return printJSON(b)
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapManageBookings); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.Bookings.Cancel(cmd.Context(), id, ""); err != nil {
				return err
			}
			fmt.Printf("Booking %d canceled\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, show, cancel)
	return cmd
}

func roomsCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{Use: "rooms", Short: "Room inventory"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapViewRooms); err != nil {
				return err
			}
			rooms, err := a.Rooms.List(cmd.Context(), domain.RoomListOptions{})
			if err != nil {
				return err
			}
			for _, r := range rooms {
				fmt.Printf("%-5s floor %d  %-10s %s\n", r.RoomNumber, r.Floor, r.RoomType, r.Status)
			}
			return nil
		},
	}

	setStatus := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Change a room's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapManageRooms); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			room, err := a.Rooms.UpdateStatus(cmd.Context(), id, domain.RoomStatus(strings.ToUpper(args[1])))
			if err != nil {
				return err
			}
			fmt.Printf("Room %s is now %s\n", room.RoomNumber, room.Status)
			return nil
		},
	}

	cmd.AddCommand(list, setStatus)
	return cmd
}

func housekeepingCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{Use: "housekeeping", Short: "Housekeeping queue"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List open housekeeping requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapWorkHousekeeping); err != nil {
				if err2 := requireCap(a, policy.CapManageHousekeeping); err2 != nil {
					return err
				}
			}
			reqs, err := a.Housekeeping.List(cmd.Context(), domain.RequestListOptions{Status: string(domain.RequestOpen)})
			if err != nil {
				return err
			}
			for _, r := range reqs {
				fmt.Printf("%6d  room %-5s %-12s %s\n", r.ID, r.RoomNumber, r.Status, r.Notes)
			}
			return nil
		},
	}

	done := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a request completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapWorkHousekeeping); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status := domain.RequestCompleted
			_, err = a.Housekeeping.Update(cmd.Context(), id, &domain.RequestUpdate{Status: &status}, "")
			return err
		},
	}

	cmd.AddCommand(list, done)
	return cmd
}

func servicesCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{Use: "services", Short: "Service order queue"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List open service orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapServeOrders); err != nil {
				if err2 := requireCap(a, policy.CapManageServices); err2 != nil {
					return err
				}
			}
			orders, err := a.Services.List(cmd.Context(), domain.RequestListOptions{Status: string(domain.RequestOpen)})
			if err != nil {
				return err
			}
			for _, o := range orders {
				fmt.Printf("%6d  x%-3d %-20s %-12s %s\n", o.ID, o.Quantity, o.ServiceName, o.Status, o.Notes)
			}
			return nil
		},
	}

	done := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark an order completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapServeOrders); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			status := domain.RequestCompleted
			_, err = a.Services.Update(cmd.Context(), id, &domain.RequestUpdate{Status: &status}, "")
			return err
		},
	}

	cmd.AddCommand(list, done)
	return cmd
}

func foliosCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{Use: "folios", Short: "Guest billing"}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a folio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapManageFolios); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			f, err := a.Folios.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(f)
		},
	}

	var desc string
	var amount float64
	charge := &cobra.Command{
		Use:   "charge <id>",
		Short: "Post a charge to a folio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapManageFolios); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			f, err := a.Folios.PostCharge(cmd.Context(), id, &domain.PostChargeRequest{
				Description: desc,
				Amount:      amount,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Folio %d balance: %.2f\n", f.ID, f.Balance)
			return nil
		},
	}
	charge.Flags().StringVar(&desc, "description", "", "charge description")
	charge.Flags().Float64Var(&amount, "amount", 0, "charge amount")

	closeCmd := &cobra.Command{
		Use:   "close <id>",
		Short: "Close a folio at checkout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapManageFolios); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			_, err = a.Folios.Close(cmd.Context(), id)
			return err
		},
	}

	cmd.AddCommand(show, charge, closeCmd)
	return cmd
}

func feedbackCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{Use: "feedback", Short: "Guest feedback"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireCap(a, policy.CapViewFeedback); err != nil {
				return err
			}
			items, err := a.Feedback.List(cmd.Context(), domain.FeedbackListOptions{})
			if err != nil {
				return err
			}
			for _, f := range items {
				fmt.Printf("%6d  booking %d  %d/5  %s\n", f.ID, f.BookingID, f.Rating, f.Comment)
			}
			return nil
		},
	}

	cmd.AddCommand(list)
	return cmd
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

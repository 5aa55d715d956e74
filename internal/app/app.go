package app

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/api"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/httpclient"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/policy"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/session"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/store"
	"github.com/ThieuDV091002/hotel-management-system-sub002/pkg/config"
)

// App wires one front-end instance: config, token store, session controller
// and the API clients riding on the authenticated HTTP client.
type App struct {
	Config  *config.Config
	Store   store.Store
	Session *session.Controller

	Auth         *api.AuthClient
	Bookings     *api.BookingsClient
	Rooms        *api.RoomsClient
	Housekeeping *api.HousekeepingClient
	Services     *api.ServicesClient
	Folios       *api.FoliosClient
	Feedback     *api.FeedbackClient
	GuestOps     *api.GuestOps
}

func New(ctx context.Context, name string, admit policy.Admission) (*App, error) {
	_ = godotenv.Load()
	cfg := config.Load(name)

	st, err := store.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	base := httpclient.New(cfg.API.BaseURL, cfg.API.Timeout)
	auth := api.NewAuthClient(base)
	sess := session.New(ctx, st, auth, admit)
	authed := base.WithTokenSource(sess)

	return &App{
		Config:       cfg,
		Store:        st,
		Session:      sess,
		Auth:         auth,
		Bookings:     api.NewBookingsClient(authed),
		Rooms:        api.NewRoomsClient(authed),
		Housekeeping: api.NewHousekeepingClient(authed),
		Services:     api.NewServicesClient(authed),
		Folios:       api.NewFoliosClient(authed),
		Feedback:     api.NewFeedbackClient(authed),
		GuestOps:     api.NewGuestOps(authed),
	}, nil
}

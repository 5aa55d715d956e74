package guest

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/policy"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/store"
	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/utils"
	"github.com/ThieuDV091002/hotel-management-system-sub002/pkg/logger"
)

// API is the guest-capable slice of a resource endpoint: trigger an emailed
// code, verify it, probe whether this flow already verified.
type API interface {
	RequestOTP(ctx context.Context, resource string, id int64, guestToken string) error
	VerifyOTP(ctx context.Context, resource string, id int64, guestToken, code string) (bool, error)
	OTPStatus(ctx context.Context, resource string, id int64, guestToken string) (bool, error)
}

// Identity is the slice of the session controller the resolver consults.
type Identity interface {
	IsAuthenticated() bool
	CurrentUser() *domain.UserProfile
}

// Resource carries the ownership fields the decision rule reads. A resource
// with CustomerID belongs to a registered account; one with only GuestEmail
// was created anonymously and is managed through the mailed token.
type Resource struct {
	Type       string
	ID         int64
	CustomerID int64
	GuestEmail string
}

func (r Resource) storeKey() store.GuestKey {
	return store.GuestKey{Resource: r.Type, ID: r.ID}
}

// Mode is the outcome of the access decision.
type Mode int

const (
	// ModeDirect: the caller owns the resource; act with the bearer token.
	ModeDirect Mode = iota
	// ModeOTP: guest-owned resource with a token present; an OTP challenge
	// must pass before the action runs.
	ModeOTP
	// ModeDenied: neither owner nor token holder; send to the login page.
	ModeDenied
)

// Action is the mutation the user asked for before the challenge started. It
// is remembered across the verify step so the right follow-up resumes.
type Action int

const (
	ActionEdit Action = iota
	ActionCancel
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionEdit:
		return "edit"
	case ActionCancel:
		return "cancel"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// FlowState is the OTP sub-flow state machine.
type FlowState int

const (
	StateIdle FlowState = iota
	StateOtpRequested
	StateOtpVerified
	StateActionConfirmed
)

var (
	ErrAccessDenied   = errors.New("access denied: not the owner and no guest token")
	ErrInvalidOTP     = errors.New("code must be 6 digits")
	ErrNotChallenging = errors.New("no OTP challenge in progress")
)

// Resolver decides whether the caller may act on a resource directly or must
// pass an OTP challenge, and drives that challenge. One resolver per
// resource-viewing flow.
type Resolver struct {
	api      API
	identity Identity
	store    store.Store

	resource Resource
	token    string
	state    FlowState
	pending  Action
}

func NewResolver(api API, identity Identity, st store.Store) *Resolver {
	return &Resolver{api: api, identity: identity, store: st}
}

// Resolve evaluates the decision rule for one resource. urlToken is the
// guest token taken from the page URL, possibly empty; when present it is
// cached so follow-up steps that lose the query string still find it.
// forView relaxes rule 1 to any staff role holding viewCap.
func (r *Resolver) Resolve(ctx context.Context, res Resource, urlToken string, forView bool, viewCap policy.Capability) (Mode, error) {
	r.resource = res
	r.state = StateIdle

	if urlToken != "" {
		if err := r.store.SetGuestToken(ctx, res.storeKey(), urlToken); err != nil {
			logger.WarnContext(ctx, "failed to cache guest token", "error", err)
		}
		r.token = urlToken
	} else {
		cached, err := r.store.GuestToken(ctx, res.storeKey())
		if err != nil {
			logger.WarnContext(ctx, "failed to read cached guest token", "error", err)
		}
		r.token = cached
	}

	if res.CustomerID != 0 {
		if r.identity.IsAuthenticated() {
			user := r.identity.CurrentUser()
			if user != nil && user.ID == res.CustomerID {
				return ModeDirect, nil
			}
			if forView && user != nil && policy.Can(user.Role, viewCap) {
				return ModeDirect, nil
			}
		}
		return ModeDenied, ErrAccessDenied
	}

	if res.GuestEmail != "" && r.token != "" {
		return ModeOTP, nil
	}

	return ModeDenied, ErrAccessDenied
}

// AlreadyVerified probes the backend for an existing verification in this
// flow, letting a reloaded page skip re-requesting a code. A positive probe
// moves the flow to OtpVerified so the action can finish with ConfirmAction.
func (r *Resolver) AlreadyVerified(ctx context.Context) (bool, error) {
	if r.token == "" {
		return false, ErrNotChallenging
	}
	ok, err := r.api.OTPStatus(ctx, r.resource.Type, r.resource.ID, r.token)
	if err != nil {
		return false, err
	}
	if ok {
		r.state = StateOtpVerified
	}
	return ok, nil
}

// BeginAction starts the challenge for one pending mutation. A failed OTP
// request leaves the flow in Idle so the user can retry.
func (r *Resolver) BeginAction(ctx context.Context, action Action) error {
	if r.token == "" {
		return ErrNotChallenging
	}
	if err := r.api.RequestOTP(ctx, r.resource.Type, r.resource.ID, r.token); err != nil {
		r.state = StateIdle
		return fmt.Errorf("failed to request verification code: %w", err)
	}
	r.pending = action
	r.state = StateOtpRequested
	logger.InfoContext(ctx, "otp requested",
		"resource", r.resource.Type, "id", r.resource.ID, "action", action.String())
	return nil
}

// SubmitCode verifies an entered code. A wrong code or a transport failure
// keeps the flow at OtpRequested so the entry UI stays open; progress is
// never reset. On success the remembered action becomes available through
// PendingAction.
func (r *Resolver) SubmitCode(ctx context.Context, code string) (bool, error) {
	if r.state != StateOtpRequested {
		return false, ErrNotChallenging
	}
	if !utils.IsValidOTP(code) {
		return false, ErrInvalidOTP
	}

	ok, err := r.api.VerifyOTP(ctx, r.resource.Type, r.resource.ID, r.token, code)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	r.state = StateOtpVerified
	return true, nil
}

// CancelChallenge abandons an in-progress challenge (escape/cancel in the
// entry UI). The issued code stays valid server-side.
func (r *Resolver) CancelChallenge() {
	if r.state == StateOtpRequested {
		r.state = StateIdle
	}
}

// ConfirmAction marks the resumed action as done and clears the cached
// token for this resource.
func (r *Resolver) ConfirmAction(ctx context.Context) {
	if r.state != StateOtpVerified {
		return
	}
	r.state = StateActionConfirmed
	if err := r.store.ClearGuestToken(ctx, r.resource.storeKey()); err != nil {
		logger.WarnContext(ctx, "failed to clear guest token", "error", err)
	}
}

func (r *Resolver) State() FlowState { return r.state }

// PendingAction is the mutation chosen before the challenge began.
func (r *Resolver) PendingAction() Action { return r.pending }

// GuestToken is the token in effect for this flow.
func (r *Resolver) GuestToken() string { return r.token }

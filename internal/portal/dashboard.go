package portal

import (
	"context"

	"flexzone/internal/api"
	"flexzone/internal/models"
	"flexzone/pkg/logger"

	"go.uber.org/zap"
)

// Phase is the lifecycle of a dashboard load
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseLoggedOut
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseLoggedOut:
		return "logged out"
	case PhaseErrored:
		return "errored"
	}
	return "unknown"
}

// ProfileErrorMessage is shown when the profile could not be loaded for a reason other than 401
const ProfileErrorMessage = "Error loading your profile"

// DashboardState is what a dashboard activation produced
type DashboardState struct {
	Phase   Phase
	Profile *models.MemberProfile

	// Barcode reference, set only for members with a completed payment
	Barcode            string
	BarcodeUnavailable bool

	Error    string
	Redirect Route
}

// Dashboard loads the member profile and, for paid members, the barcode
type Dashboard struct {
	backend Backend
	session *models.SessionStore

	// OnPhase observes every phase transition, including the initial Loading
	OnPhase func(Phase)
}

func NewDashboard(backend Backend, session *models.SessionStore) *Dashboard {
	return &Dashboard{backend: backend, session: session}
}

func (d *Dashboard) enter(state *DashboardState, phase Phase) {
	state.Phase = phase
	if d.OnPhase != nil {
		d.OnPhase(phase)
	}
}

// Load runs one activation of the dashboard
func (d *Dashboard) Load(ctx context.Context) (DashboardState, error) {
	var state DashboardState

	if d.session.GetToken() == "" {
		state.Redirect = RouteLogin
		d.enter(&state, PhaseLoggedOut)
		return state, nil
	}

	d.enter(&state, PhaseLoading)

	profile, err := d.backend.GetProfile(ctx)
	if closed(ctx) {
		return state, ErrViewClosed
	}
	if err != nil {
		if api.IsUnauthorized(err) {
			logger.Info("Session rejected by backend, clearing local session")
			if clearErr := d.session.ClearSession(); clearErr != nil {
				logger.LogError(clearErr, "Failed to clear session")
			}
			state.Redirect = RouteLogin
			d.enter(&state, PhaseLoggedOut)
			return state, nil
		}

		logger.LogError(err, "Failed to load profile")
		state.Error = ProfileErrorMessage
		d.enter(&state, PhaseErrored)
		return state, nil
	}

	state.Profile = profile
	if err := d.session.SetMemberID(profile.MembershipID); err != nil {
		logger.LogError(err, "Failed to persist member ID", zap.String("member_id", profile.MembershipID))
	}
	if err := d.session.SaveProfile(profile); err != nil {
		logger.LogError(err, "Failed to save profile snapshot")
	}

	if profile.HasCompletedPayment() {
		barcode, err := d.backend.GetBarcode(ctx, profile.MembershipID)
		if closed(ctx) {
			return state, ErrViewClosed
		}
		switch {
		case err != nil:
			logger.Warn("Barcode not available", zap.Error(err))
			state.BarcodeUnavailable = true
		case !barcode.Success || barcode.Barcode == "":
			state.BarcodeUnavailable = true
		default:
			state.Barcode = barcode.Barcode
		}
	}

	d.enter(&state, PhaseLoaded)
	return state, nil
}

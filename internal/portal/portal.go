// Package portal holds the member-facing views of the gym portal. Each view
// reads the session from an injected store, fetches what it needs through a
// Backend on every Load, and reports the outcome as a plain state value that
// the CLI and the terminal UI render.
package portal

import (
	"context"
	"errors"

	"flexzone/internal/models"
)

// ErrViewClosed is returned when a response arrives after the view's context ended
var ErrViewClosed = errors.New("view closed before the response arrived")

// Route names a screen the shell can switch to
type Route string

const (
	RouteNone             Route = ""
	RouteLogin            Route = "login"
	RouteRegister         Route = "register"
	RouteDashboard        Route = "dashboard"
	RoutePaymentHistory   Route = "payment-history"
	RouteTrainer          Route = "assigned-trainer"
	RouteNotifications    Route = "notifications"
	RouteSelectMembership Route = "select-membership"
)

// Backend is the set of backend calls the views make. *api.Client implements it.
type Backend interface {
	HandleLogin(ctx context.Context, email string) (*models.LoginResult, error)
	Register(ctx context.Context, form models.RegistrationForm) (*models.RegistrationResult, error)
	GetProfile(ctx context.Context) (*models.MemberProfile, error)
	GetBarcode(ctx context.Context, memberID string) (*models.Barcode, error)
	GetAssignedTrainer(ctx context.Context, memberID string) (*models.Trainer, error)
	GetPaymentDetails(ctx context.Context, memberID string) (*models.PaymentRecord, error)
	GetPlans(ctx context.Context) (*models.PlanCatalog, error)
	CreateOrder(ctx context.Context, memberID string, plan models.Plan) (*models.OrderResponse, error)
}

// MissingMemberMessage is shown by every view that needs a member ID the store does not have
const MissingMemberMessage = "Member ID is missing. Please log in again."

// closed reports whether ctx ended while a request was outstanding
func closed(ctx context.Context) bool {
	return ctx.Err() != nil
}

package portal

import (
	"flexzone/internal/models"
	"flexzone/pkg/logger"
)

// MenuItem is one entry of the navigation menu
type MenuItem struct {
	Label string
	Route Route
}

// Menu lists the navigation entries in display order
var Menu = []MenuItem{
	{Label: "Home", Route: RouteDashboard},
	{Label: "Payment History", Route: RoutePaymentHistory},
	{Label: "Assigned Trainer", Route: RouteTrainer},
	{Label: "Notifications", Route: RouteNotifications},
	{Label: "Select Membership", Route: RouteSelectMembership},
}

// Shell is the navigation frame around the views
type Shell struct {
	session *models.SessionStore
	current Route
}

func NewShell(session *models.SessionStore) *Shell {
	return &Shell{session: session, current: RouteDashboard}
}

// Navigate makes route the highlighted entry
func (s *Shell) Navigate(route Route) {
	s.current = route
}

func (s *Shell) Current() Route {
	return s.current
}

// Active reports whether the menu entry for route is highlighted
func (s *Shell) Active(route Route) bool {
	return s.current == route
}

// Member returns the last loaded profile snapshot, or nil before the first dashboard load
func (s *Shell) Member() *models.MemberProfile {
	profile, err := s.session.LoadProfile()
	if err != nil {
		logger.LogError(err, "Failed to read profile snapshot")
		return nil
	}
	return profile
}

// Logout clears the stored session and sends the member to the login screen
func (s *Shell) Logout() (Route, error) {
	if err := s.session.ClearSession(); err != nil {
		return RouteNone, err
	}
	logger.Info("Member logged out")
	s.current = RouteLogin
	return RouteLogin, nil
}

package ui

import (
	"context"
	"testing"

	"flexzone/internal/config"
	"flexzone/internal/models"
	"flexzone/internal/portal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend answers every call with fixed data
type stubBackend struct {
	profile *models.MemberProfile
}

func (s *stubBackend) HandleLogin(ctx context.Context, email string) (*models.LoginResult, error) {
	return &models.LoginResult{Token: "tok"}, nil
}

func (s *stubBackend) Register(ctx context.Context, form models.RegistrationForm) (*models.RegistrationResult, error) {
	return &models.RegistrationResult{Token: "tok"}, nil
}

func (s *stubBackend) GetProfile(ctx context.Context) (*models.MemberProfile, error) {
	return s.profile, nil
}

func (s *stubBackend) GetBarcode(ctx context.Context, memberID string) (*models.Barcode, error) {
	return &models.Barcode{Success: true, Barcode: "barcode.png"}, nil
}

func (s *stubBackend) GetAssignedTrainer(ctx context.Context, memberID string) (*models.Trainer, error) {
	return &models.Trainer{TrainerID: "T-1", TrainerName: "Asha"}, nil
}

func (s *stubBackend) GetPaymentDetails(ctx context.Context, memberID string) (*models.PaymentRecord, error) {
	return &models.PaymentRecord{}, nil
}

func (s *stubBackend) GetPlans(ctx context.Context) (*models.PlanCatalog, error) {
	return &models.PlanCatalog{Monthly: 1200, Quarterly: 4000, Annually: 11200}, nil
}

func (s *stubBackend) CreateOrder(ctx context.Context, memberID string, plan models.Plan) (*models.OrderResponse, error) {
	return &models.OrderResponse{URL: "https://pay.example.com/session/abc"}, nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	session := models.NewSessionStore(t.TempDir())
	require.NoError(t, session.SetSession("tok", "GYM-42"))

	backend := &stubBackend{profile: &models.MemberProfile{MembershipID: "GYM-42", FullName: "Ravi Kumar"}}
	m := NewModel(context.Background(), &config.Config{ServerURL: "http://localhost:5000"}, backend, session)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func TestModel_NavigateCancelsPreviousView(t *testing.T) {
	m := newTestModel(t)

	first, _ := m.navigate(portal.RouteDashboard)
	m = first.(Model)
	firstCtx := m.viewCtx

	second, cmd := m.navigate(portal.RouteTrainer)
	m = second.(Model)

	assert.Error(t, firstCtx.Err())
	assert.NoError(t, m.viewCtx.Err())
	assert.Equal(t, 2, m.seq)
	assert.True(t, m.IsLoading)
	assert.NotNil(t, cmd)
	assert.Equal(t, portal.RouteTrainer, m.shell.Current())
}

func TestModel_StaleResultsAreDropped(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.navigate(portal.RouteDashboard)
	m = next.(Model)
	next, _ = m.navigate(portal.RoutePaymentHistory)
	m = next.(Model)

	stale := dashboardLoadedMsg{seq: 1, state: portal.DashboardState{Phase: portal.PhaseErrored, Error: portal.ProfileErrorMessage}}
	updated, _ := m.Update(stale)
	m = updated.(Model)

	assert.Empty(t, m.ErrorMessage)
	assert.True(t, m.IsLoading)
}

func TestModel_LoadCommandProducesMessage(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.navigate(portal.RouteTrainer)
	m = next.(Model)
	require.NotNil(t, cmd)

	msg, ok := cmd().(trainerLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, m.seq, msg.seq)

	updated, _ := m.Update(msg)
	m = updated.(Model)
	assert.False(t, m.IsLoading)
	assert.Equal(t, "Trainer loaded", m.StatusMessage)
}

func TestModel_ClosedViewProducesNoMessage(t *testing.T) {
	session := models.NewSessionStore(t.TempDir())
	require.NoError(t, session.SetSession("tok", "GYM-42"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := loadTrainer(ctx, portal.NewTrainerView(&stubBackend{}, session), 1)
	assert.Nil(t, cmd())
}

func TestModel_RedirectToLoginEndsSession(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.navigate(portal.RouteDashboard)
	m = next.(Model)

	updated, _ := m.Update(dashboardLoadedMsg{seq: m.seq, state: portal.DashboardState{Phase: portal.PhaseLoggedOut, Redirect: portal.RouteLogin}})
	m = updated.(Model)
	assert.True(t, m.sessionGone)

	_, cmd := m.navigate(portal.RouteTrainer)
	assert.Nil(t, cmd)
}

func TestModel_LogoutClearsSession(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	m = updated.(Model)

	assert.True(t, m.sessionGone)
	assert.Empty(t, m.session.GetToken())
}

func TestModel_PlansLoadThenCheckout(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.navigate(portal.RouteSelectMembership)
	m = next.(Model)
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	require.NotNil(t, m.Plans.Selected)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	require.True(t, m.focusPlans)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)

	done, ok := cmd().(checkoutDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Equal(t, "https://pay.example.com/session/abc", done.url)
	assert.Equal(t, models.PlanMonthly, m.checkout.Selected())
}

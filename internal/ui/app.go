package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flexzone/internal/config"
	"flexzone/internal/models"
	"flexzone/internal/portal"
	"flexzone/internal/ui/components"
	"flexzone/internal/util"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/browser"
)

const sidebarWidth = 24

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Padding(0, 1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Padding(0, 1)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	sidebarStyle = lipgloss.NewStyle().Width(sidebarWidth).Padding(1, 1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("238"))
)

// Model represents the UI model
type Model struct {
	Viewport      viewport.Model
	Spinner       spinner.Model
	Plans         components.PlanListModel
	IsLoading     bool
	StatusMessage string
	ErrorMessage  string
	Config        *config.Config
	Width         int
	Height        int
	Ready         bool

	backend  portal.Backend
	session  *models.SessionStore
	shell    *portal.Shell
	checkout *portal.Checkout

	// parent is the program context; viewCtx and cancel belong to the active view
	parent  context.Context
	viewCtx context.Context
	cancel  context.CancelFunc

	// seq identifies the active load; messages from older loads are dropped
	seq int

	cursor      int
	focusPlans  bool
	paymentURL  string
	sessionGone bool
}

// NewModel creates the portal model. ctx bounds every load the portal starts.
func NewModel(ctx context.Context, cfg *config.Config, backend portal.Backend, session *models.SessionStore) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		Spinner:       s,
		Plans:         components.NewPlanListModel(40, 12),
		StatusMessage: "Ready",
		Config:        cfg,
		backend:       backend,
		session:       session,
		shell:         portal.NewShell(session),
		parent:        ctx,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, func() tea.Msg { return navigateMsg(portal.RouteDashboard) })
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focusPlans {
			return m.updatePlans(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.stopLoad()
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(portal.Menu)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			return m.navigate(portal.Menu[m.cursor].Route)
		case "r":
			return m.navigate(m.shell.Current())
		case "tab":
			if m.shell.Current() == portal.RouteSelectMembership && !m.IsLoading {
				m.focusPlans = true
				m.StatusMessage = "Choose a plan and press enter to pay, esc to go back"
			}
			return m, nil
		case "o":
			if m.paymentURL != "" {
				return m, openURL(m.paymentURL)
			}
			return m, nil
		case "l":
			return m.logout()
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		contentWidth := msg.Width - sidebarWidth - 2
		if !m.Ready {
			// First time initializing
			m.Viewport = viewport.New(contentWidth, msg.Height-6)
			m.Viewport.YPosition = 3
			m.Ready = true
		} else {
			m.Viewport.Width = contentWidth
			m.Viewport.Height = msg.Height - 6
		}
		m.Plans.SetSize(contentWidth, msg.Height-10)

		return m, nil

	case spinner.TickMsg:
		var spinnerCmd tea.Cmd
		m.Spinner, spinnerCmd = m.Spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)

	case navigateMsg:
		return m.navigate(portal.Route(msg))

	case dashboardLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.IsLoading = false
		switch msg.state.Phase {
		case portal.PhaseLoggedOut:
			return m.loggedOut(), nil
		case portal.PhaseErrored:
			m.ErrorMessage = msg.state.Error
			m.StatusMessage = "Error"
		default:
			m.StatusMessage = "Profile loaded"
		}
		m.Viewport.SetContent(renderDashboard(msg.state))
		return m, nil

	case trainerLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.IsLoading = false
		if msg.state.Redirect == portal.RouteLogin {
			return m.loggedOut(), nil
		}
		if msg.state.Outcome == portal.TrainerFailed {
			m.ErrorMessage = msg.state.Message
			m.StatusMessage = "Press r to retry"
		} else {
			m.StatusMessage = "Trainer loaded"
		}
		m.Viewport.SetContent(renderTrainer(msg.state))
		return m, nil

	case paymentsLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.IsLoading = false
		if msg.state.Redirect == portal.RouteLogin {
			return m.loggedOut(), nil
		}
		m.ErrorMessage = msg.state.Error
		m.StatusMessage = "Payment history loaded"
		m.Viewport.SetContent(renderPayment(msg.state))
		return m, nil

	case notificationsLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.IsLoading = false
		if msg.state.Redirect == portal.RouteLogin {
			return m.loggedOut(), nil
		}
		m.ErrorMessage = msg.state.Error
		m.StatusMessage = "Notifications loaded"
		m.Viewport.SetContent(renderNotifications(msg.state))
		return m, nil

	case plansLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.IsLoading = false
		if msg.err != nil {
			m.ErrorMessage = checkoutMessage(msg.err)
			m.StatusMessage = "Press r to retry"
			return m, nil
		}
		m.Plans.SetOptions(m.checkout.Options())
		m.StatusMessage = "Press tab to choose a plan"
		return m, nil

	case checkoutDoneMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.IsLoading = false
		if msg.err != nil {
			if errors.Is(msg.err, models.ErrMissingMemberID) {
				return m.loggedOut(), nil
			}
			m.ErrorMessage = checkoutMessage(msg.err)
			m.StatusMessage = "Choose a plan and press enter to pay, esc to go back"
			m.focusPlans = true
			return m, nil
		}
		m.paymentURL = msg.url
		m.StatusMessage = "Payment order created. Press o to open the payment page"
		return m, openURL(msg.url)

	case errorMsg:
		m.IsLoading = false
		m.ErrorMessage = string(msg)
		m.StatusMessage = "Error"
		return m, nil
	}

	if m.Ready {
		var viewportCmd tea.Cmd
		m.Viewport, viewportCmd = m.Viewport.Update(msg)
		cmds = append(cmds, viewportCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updatePlans(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.stopLoad()
		return m, tea.Quit
	case "esc", "tab":
		m.focusPlans = false
		m.StatusMessage = "Press tab to choose a plan"
		return m, nil
	case "enter":
		if m.Plans.Selected == nil {
			m.ErrorMessage = "Please select a membership plan"
			return m, nil
		}
		if err := m.checkout.Select(string(m.Plans.Selected.Plan)); err != nil {
			m.ErrorMessage = err.Error()
			return m, nil
		}
		m.focusPlans = false
		m.IsLoading = true
		m.ErrorMessage = ""
		m.StatusMessage = fmt.Sprintf("Creating payment order for the %s plan...", m.Plans.Selected.Plan.Title())
		return m, submitCheckout(m.viewCtx, m.checkout, m.seq)
	}

	var cmd tea.Cmd
	m.Plans, cmd = m.Plans.Update(msg)
	return m, cmd
}

// navigate switches to route, abandoning whatever the previous view was loading
func (m Model) navigate(route portal.Route) (tea.Model, tea.Cmd) {
	if m.sessionGone {
		return m, nil
	}

	m.stopLoad()
	ctx, cancel := context.WithCancel(m.parent)
	m.viewCtx = ctx
	m.cancel = cancel
	m.seq++

	m.shell.Navigate(route)
	for i, item := range portal.Menu {
		if item.Route == route {
			m.cursor = i
		}
	}

	m.IsLoading = true
	m.ErrorMessage = ""
	m.focusPlans = false
	m.paymentURL = ""
	m.Viewport.SetContent("")

	switch route {
	case portal.RoutePaymentHistory:
		m.StatusMessage = "Loading payment history..."
		return m, loadPayments(ctx, portal.NewPaymentHistory(m.backend, m.session), m.seq)
	case portal.RouteTrainer:
		m.StatusMessage = "Loading trainer..."
		return m, loadTrainer(ctx, portal.NewTrainerView(m.backend, m.session), m.seq)
	case portal.RouteNotifications:
		m.StatusMessage = "Loading notifications..."
		return m, loadNotifications(ctx, portal.NewNotifications(m.backend, m.session), m.seq)
	case portal.RouteSelectMembership:
		m.StatusMessage = "Loading membership plans..."
		m.checkout = portal.NewCheckout(m.backend, m.session)
		return m, loadPlans(ctx, m.checkout, m.seq)
	default:
		m.StatusMessage = "Loading profile..."
		return m, loadDashboard(ctx, portal.NewDashboard(m.backend, m.session), m.seq)
	}
}

func (m *Model) stopLoad() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	m.stopLoad()
	if _, err := m.shell.Logout(); err != nil {
		m.ErrorMessage = fmt.Sprintf("Error logging out: %v", err)
		return m, nil
	}
	return m.loggedOut(), nil
}

func (m Model) loggedOut() Model {
	m.IsLoading = false
	m.sessionGone = true
	m.focusPlans = false
	m.StatusMessage = "Logged out"
	m.Viewport.SetContent("You are not logged in.\n\nRun 'flexzone login' and reopen the portal.")
	return m
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	var status string
	if m.IsLoading {
		status = fmt.Sprintf("%s %s", m.Spinner.View(), m.StatusMessage)
	} else {
		status = m.StatusMessage
	}

	titleBar := titleStyle.Render(fmt.Sprintf("FlexZone Member Portal - %s", m.Config.ServerURL))
	statusBar := mutedStyle.Render(status)
	help := mutedStyle.Render("↑/↓ move  enter open  r reload  tab plans  o open payment  l logout  q quit")

	errorView := ""
	if m.ErrorMessage != "" {
		errorView = errorStyle.Render(m.ErrorMessage)
	}

	content := m.Viewport.View()
	if m.shell.Current() == portal.RouteSelectMembership && !m.sessionGone {
		content = m.Plans.View()
		if m.paymentURL != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, content, "", "Complete your payment at:", m.paymentURL)
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		statusBar,
		body,
		errorView,
		help,
	)
}

func (m Model) renderSidebar() string {
	var b strings.Builder

	if profile := m.shell.Member(); profile != nil && !m.sessionGone {
		b.WriteString(headingStyle.Render(profile.FullName))
		b.WriteString("\n\n")
	}

	for i, item := range portal.Menu {
		label := item.Label
		switch {
		case m.shell.Active(item.Route):
			label = activeStyle.Render(" " + label + " ")
		case i == m.cursor:
			label = "> " + label
		default:
			label = "  " + label
		}
		b.WriteString(label)
		b.WriteString("\n")
	}

	return sidebarStyle.Height(max(m.Height-6, 0)).Render(b.String())
}

// Messages
type navigateMsg portal.Route
type errorMsg string

type dashboardLoadedMsg struct {
	seq   int
	state portal.DashboardState
}

type trainerLoadedMsg struct {
	seq   int
	state portal.TrainerState
}

type paymentsLoadedMsg struct {
	seq   int
	state portal.PaymentState
}

type notificationsLoadedMsg struct {
	seq   int
	state portal.NotificationState
}

type plansLoadedMsg struct {
	seq int
	err error
}

type checkoutDoneMsg struct {
	seq int
	url string
	err error
}

// Commands. A load that returns ErrViewClosed produces no message.
func loadDashboard(ctx context.Context, view *portal.Dashboard, seq int) tea.Cmd {
	return func() tea.Msg {
		state, err := view.Load(ctx)
		if err != nil {
			return nil
		}
		return dashboardLoadedMsg{seq: seq, state: state}
	}
}

func loadTrainer(ctx context.Context, view *portal.TrainerView, seq int) tea.Cmd {
	return func() tea.Msg {
		state, err := view.Load(ctx)
		if err != nil {
			return nil
		}
		return trainerLoadedMsg{seq: seq, state: state}
	}
}

func loadPayments(ctx context.Context, view *portal.PaymentHistory, seq int) tea.Cmd {
	return func() tea.Msg {
		state, err := view.Load(ctx)
		if err != nil {
			return nil
		}
		return paymentsLoadedMsg{seq: seq, state: state}
	}
}

func loadNotifications(ctx context.Context, view *portal.Notifications, seq int) tea.Cmd {
	return func() tea.Msg {
		state, err := view.Load(ctx)
		if err != nil {
			return nil
		}
		return notificationsLoadedMsg{seq: seq, state: state}
	}
}

func loadPlans(ctx context.Context, checkout *portal.Checkout, seq int) tea.Cmd {
	return func() tea.Msg {
		err := checkout.Load(ctx)
		if errors.Is(err, portal.ErrViewClosed) {
			return nil
		}
		return plansLoadedMsg{seq: seq, err: err}
	}
}

func submitCheckout(ctx context.Context, checkout *portal.Checkout, seq int) tea.Cmd {
	return func() tea.Msg {
		url, err := checkout.Submit(ctx)
		if errors.Is(err, portal.ErrViewClosed) {
			return nil
		}
		return checkoutDoneMsg{seq: seq, url: url, err: err}
	}
}

func openURL(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.OpenURL(url); err != nil {
			return errorMsg("Could not open a browser. Open the payment URL manually.")
		}
		return nil
	}
}

// Helper functions
func checkoutMessage(err error) string {
	var checkoutErr *portal.CheckoutError
	switch {
	case errors.As(err, &checkoutErr):
		return checkoutErr.Message
	case errors.Is(err, models.ErrNoPlanSelected):
		return "Please select a membership plan"
	case errors.Is(err, models.ErrInvalidPrice):
		return "Invalid price for the selected plan"
	case errors.Is(err, models.ErrCheckoutInProgress):
		return "A payment order is already being created"
	default:
		return portal.CheckoutErrorMessage
	}
}

func renderDashboard(state portal.DashboardState) string {
	if state.Profile == nil {
		return ""
	}
	p := state.Profile

	var b strings.Builder
	b.WriteString(headingStyle.Render("Welcome, "+p.FullName) + "\n")
	b.WriteString(p.Email + "\n\n")

	b.WriteString(headingStyle.Render("Membership Details") + "\n")
	if p.IsActive() {
		b.WriteString("Status:  " + okStyle.Render("Active") + "\n")
	} else {
		b.WriteString("Status:  " + badStyle.Render("Inactive") + "\n")
	}
	b.WriteString("ID:      " + p.MembershipID + "\n")
	if p.MembershipPlan != "" {
		b.WriteString("Plan:    " + p.MembershipPlan + "\n")
	}
	if p.PaymentStatus != "" {
		b.WriteString("Payment: " + p.PaymentStatus + "\n")
	}
	switch {
	case state.Barcode != "":
		b.WriteString("Barcode: " + state.Barcode + "\n")
	case state.BarcodeUnavailable:
		b.WriteString(warnStyle.Render("Barcode not available") + "\n")
	}

	b.WriteString("\n" + headingStyle.Render("Personal Information") + "\n")
	b.WriteString("Age:     " + util.OrDash(p.Age.String()) + "\n")
	b.WriteString("Gender:  " + util.OrDash(p.Gender) + "\n")
	b.WriteString("Phone:   " + util.OrDash(p.PhoneNumber) + "\n")
	b.WriteString("Address: " + util.OrDash(p.Address) + "\n")
	return b.String()
}

func renderTrainer(state portal.TrainerState) string {
	if state.Outcome != portal.TrainerAssigned {
		if state.Outcome == portal.TrainerFailed {
			return ""
		}
		return mutedStyle.Render(state.Message)
	}

	t := state.Trainer
	var b strings.Builder
	b.WriteString(headingStyle.Render(t.TrainerName) + "\n")
	b.WriteString("Specialization: " + util.OrDash(t.Specialization) + "\n")
	b.WriteString("Phone:          " + util.OrDash(t.PhoneNumber) + "\n")
	if state.AvailableToday {
		b.WriteString(okStyle.Render("Available today") + "\n")
	} else {
		b.WriteString(warnStyle.Render("Not available today") + "\n")
	}

	schedule := t.Availability.Schedule()
	if len(schedule) > 0 {
		b.WriteString("\n" + headingStyle.Render("Weekly availability") + "\n")
		for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
			if available, ok := schedule[day]; ok {
				mark := badStyle.Render("no")
				if available {
					mark = okStyle.Render("yes")
				}
				b.WriteString(fmt.Sprintf("%-10s %s\n", util.Capitalize(day), mark))
			}
		}
	}
	return b.String()
}

func renderPayment(state portal.PaymentState) string {
	switch {
	case state.Error != "":
		return ""
	case state.Empty:
		return mutedStyle.Render(portal.NoPaymentMessage)
	}

	r := state.Record
	var b strings.Builder
	b.WriteString(headingStyle.Render("Payment History") + "\n")
	b.WriteString("Name:           " + util.OrDash(r.FullName) + "\n")
	b.WriteString("Email:          " + util.OrDash(r.Email) + "\n")
	b.WriteString("Plan:           " + util.OrDash(r.MembershipPlan) + "\n")
	b.WriteString("Amount Paid:    " + util.FormatRupees(r.AmountPaid) + "\n")
	b.WriteString("Payment Date:   " + util.OrDash(util.FormatDate(r.PaymentDate)) + "\n")
	b.WriteString("Renewal Date:   " + util.OrDash(util.FormatDate(r.RenewalDate)) + "\n")
	b.WriteString("Transaction ID: " + util.OrDash(r.TransactionID) + "\n")
	b.WriteString("Status:         " + util.OrDash(r.PaymentStatus) + "\n")
	return b.String()
}

func renderNotifications(state portal.NotificationState) string {
	switch {
	case state.Error != "":
		return ""
	case state.Empty:
		return mutedStyle.Render(portal.NoRenewalDateMessage)
	}
	return headingStyle.Render("Notifications") + "\n" +
		warnStyle.Render("Your membership is due for renewal on "+util.FormatDate(state.RenewalDate))
}

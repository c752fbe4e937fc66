package components

import (
	"fmt"

	"flexzone/internal/models"
	"flexzone/internal/util"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PlanItem represents a membership plan in the list
type PlanItem struct {
	Option models.PlanOption
}

// FilterValue returns the filter value for the plan item
func (i PlanItem) FilterValue() string {
	return string(i.Option.Plan)
}

// Title returns the plan name and price
func (i PlanItem) Title() string {
	if i.Option.Price <= 0 {
		return fmt.Sprintf("%s - price unavailable", i.Option.Plan.Title())
	}
	return fmt.Sprintf("%s - %s", i.Option.Plan.Title(), util.FormatRupees(i.Option.Price))
}

// Description returns the plan's pitch
func (i PlanItem) Description() string {
	return i.Option.Description
}

// PlanListModel represents the plan picker
type PlanListModel struct {
	List     list.Model
	Selected *models.PlanOption
}

// NewPlanListModel creates a new plan list model
func NewPlanListModel(width, height int) PlanListModel {
	listModel := list.New([]list.Item{}, list.NewDefaultDelegate(), width, height)
	listModel.Title = "Select Membership"
	listModel.SetShowStatusBar(false)
	listModel.SetFilteringEnabled(false)
	listModel.SetShowHelp(false)
	listModel.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true).
		MarginLeft(2)

	return PlanListModel{List: listModel}
}

// SetOptions replaces the plans shown, keeping display order
func (m *PlanListModel) SetOptions(options []models.PlanOption) {
	items := make([]list.Item, len(options))
	for i, option := range options {
		items[i] = PlanItem{Option: option}
	}

	m.List.SetItems(items)
	m.syncSelected()
}

// SetSize resizes the list
func (m *PlanListModel) SetSize(width, height int) {
	m.List.SetSize(width, height)
}

// Update handles plan list updates
func (m PlanListModel) Update(msg tea.Msg) (PlanListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	m.syncSelected()
	return m, cmd
}

func (m *PlanListModel) syncSelected() {
	if item, ok := m.List.SelectedItem().(PlanItem); ok {
		option := item.Option
		m.Selected = &option
	} else {
		m.Selected = nil
	}
}

// View renders the plan list
func (m PlanListModel) View() string {
	return m.List.View()
}

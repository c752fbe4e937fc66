package components

import (
	"testing"

	"flexzone/internal/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanListModel_SelectionFollowsCursor(t *testing.T) {
	catalog := &models.PlanCatalog{Monthly: 1200, Quarterly: 4000, Annually: 11200}

	m := NewPlanListModel(60, 20)
	m.SetOptions(catalog.Options())

	require.NotNil(t, m.Selected)
	assert.Equal(t, models.PlanMonthly, m.Selected.Plan)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.NotNil(t, m.Selected)
	assert.Equal(t, models.PlanQuarterly, m.Selected.Plan)
}

func TestPlanItem_Title(t *testing.T) {
	assert.Equal(t, "Monthly - ₹1200", PlanItem{Option: models.PlanOption{Plan: models.PlanMonthly, Price: 1200}}.Title())
	assert.Equal(t, "Annually - price unavailable", PlanItem{Option: models.PlanOption{Plan: models.PlanAnnually}}.Title())
}

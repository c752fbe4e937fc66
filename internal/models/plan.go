package models

import (
	"fmt"
	"strings"
)

// Plan identifies a membership billing tier
type Plan string

const (
	PlanMonthly   Plan = "monthly"
	PlanQuarterly Plan = "quarterly"
	PlanAnnually  Plan = "annually"
)

// Plans lists the tiers in display order
var Plans = []Plan{PlanMonthly, PlanQuarterly, PlanAnnually}

var planDescriptions = map[Plan]string{
	PlanMonthly:   "Perfect for short-term fitness goals",
	PlanQuarterly: "Ideal for consistent training over 3 months",
	PlanAnnually:  "Best value for long-term commitment",
}

// ParsePlan accepts a plan name in any case
func ParsePlan(name string) (Plan, error) {
	plan := Plan(strings.ToLower(strings.TrimSpace(name)))
	for _, p := range Plans {
		if p == plan {
			return p, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownPlan)
}

// Title returns the capitalized plan name
func (p Plan) Title() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

func (p Plan) Description() string {
	return planDescriptions[p]
}

// PlanCatalog holds the current price of each tier
type PlanCatalog struct {
	Monthly   float64 `json:"Monthly"`
	Quarterly float64 `json:"Quarterly"`
	Annually  float64 `json:"Annually"`
}

// Price returns the catalog price for a plan
func (c *PlanCatalog) Price(plan Plan) float64 {
	if c == nil {
		return 0
	}
	switch plan {
	case PlanMonthly:
		return c.Monthly
	case PlanQuarterly:
		return c.Quarterly
	case PlanAnnually:
		return c.Annually
	}
	return 0
}

// PlanOption is a catalog entry ready for display
type PlanOption struct {
	Plan        Plan
	Price       float64
	Description string
}

// Options returns the three tiers with their prices in display order
func (c *PlanCatalog) Options() []PlanOption {
	options := make([]PlanOption, 0, len(Plans))
	for _, plan := range Plans {
		options = append(options, PlanOption{
			Plan:        plan,
			Price:       c.Price(plan),
			Description: plan.Description(),
		})
	}
	return options
}

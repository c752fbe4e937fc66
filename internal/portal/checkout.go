package portal

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"flexzone/internal/api"
	"flexzone/internal/models"
	"flexzone/pkg/logger"

	"go.uber.org/zap"
)

const (
	CheckoutErrorMessage = "Failed to create payment order. Please try again."
	PlansErrorMessage    = "Failed to fetch membership plans. Please try again."
)

// CheckoutError is a failed create-order call. Message is what the member sees.
type CheckoutError struct {
	Message string
	Err     error
}

func (e *CheckoutError) Error() string {
	return e.Message
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// Checkout drives plan selection and the create-order call that yields the
// hosted payment page
type Checkout struct {
	backend Backend
	session *models.SessionStore

	mu         sync.Mutex
	catalog    *models.PlanCatalog
	selected   models.Plan
	submitting bool
}

func NewCheckout(backend Backend, session *models.SessionStore) *Checkout {
	return &Checkout{backend: backend, session: session}
}

// Load fetches the current plan catalog
func (c *Checkout) Load(ctx context.Context) error {
	catalog, err := c.backend.GetPlans(ctx)
	if closed(ctx) {
		return ErrViewClosed
	}
	if err != nil {
		logger.LogError(err, "Failed to fetch membership plans")
		return &CheckoutError{Message: PlansErrorMessage, Err: err}
	}

	c.mu.Lock()
	c.catalog = catalog
	c.mu.Unlock()
	return nil
}

// Options returns the plans with their current prices
func (c *Checkout) Options() []models.PlanOption {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog.Options()
}

// Select chooses a plan by name. No request is made.
func (c *Checkout) Select(name string) error {
	plan, err := models.ParsePlan(name)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.selected = plan
	c.mu.Unlock()
	return nil
}

func (c *Checkout) Selected() models.Plan {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Submitting reports whether a create-order call is outstanding
func (c *Checkout) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Submit validates the selection and creates a payment order, returning the
// URL of the hosted payment page. Validation failures never reach the backend.
func (c *Checkout) Submit(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return "", models.ErrCheckoutInProgress
	}

	memberID := c.session.GetMemberID()
	plan := c.selected
	price := c.catalog.Price(plan)

	switch {
	case memberID == "":
		c.mu.Unlock()
		return "", models.ErrMissingMemberID
	case plan == "":
		c.mu.Unlock()
		return "", models.ErrNoPlanSelected
	case price <= 0:
		c.mu.Unlock()
		return "", fmt.Errorf("%s plan: %w", plan.Title(), models.ErrInvalidPrice)
	}

	c.submitting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	order, err := c.backend.CreateOrder(ctx, memberID, plan)
	if closed(ctx) {
		return "", ErrViewClosed
	}
	if err != nil {
		logger.LogError(err, "Failed to create payment order",
			zap.String("member_id", memberID), zap.String("plan", string(plan)))
		message := api.ErrorMessage(err)
		if message == "" {
			message = CheckoutErrorMessage
		}
		return "", &CheckoutError{Message: message, Err: err}
	}

	if strings.TrimSpace(order.URL) == "" {
		if order.Error != "" {
			return "", &CheckoutError{Message: order.Error, Err: models.ErrMissingRedirectURL}
		}
		return "", models.ErrMissingRedirectURL
	}

	logger.Info("Payment order created", zap.String("member_id", memberID), zap.String("plan", string(plan)))
	return order.URL, nil
}

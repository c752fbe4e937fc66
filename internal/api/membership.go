package api

import (
	"context"
	"fmt"
	"net/http"

	"flexzone/internal/models"
)

// GetPlans fetches the current membership plan catalog
func (c *Client) GetPlans(ctx context.Context) (*models.PlanCatalog, error) {
	var response struct {
		Plans *models.PlanCatalog `json:"plans"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/api/membership/plans", nil, &response); err != nil {
		return nil, err
	}

	if response.Plans == nil {
		return nil, fmt.Errorf("plans response did not include a catalog")
	}

	return response.Plans, nil
}

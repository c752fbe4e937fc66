package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"flexzone/internal/models"
)

// GetProfile fetches the current member's profile
func (c *Client) GetProfile(ctx context.Context) (*models.MemberProfile, error) {
	var response struct {
		User *models.MemberProfile `json:"user"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/profile", nil, &response); err != nil {
		return nil, err
	}

	if response.User == nil {
		return nil, fmt.Errorf("profile response did not include a user")
	}

	return response.User, nil
}

// GetBarcode fetches the barcode reference of a member whose payment is complete
func (c *Client) GetBarcode(ctx context.Context, memberID string) (*models.Barcode, error) {
	var barcode models.Barcode
	if err := c.doJSON(ctx, http.MethodGet, "/api/payment/barcode/"+url.PathEscape(memberID), nil, &barcode); err != nil {
		return nil, err
	}
	return &barcode, nil
}
